package apierrors

const (
	MsgInvalidID          = "invalidId"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidZonePayload = "invalidZonePayload"
	MsgTaskNotFound       = "taskNotFound"
	MsgZoneNotFound       = "zoneNotFound"
	MsgTemplateNotFound   = "templateNotFound"
	MsgHierarchyCycle     = "hierarchyCycle"
	MsgInvalidSnapshot    = "invalidSnapshot"
	MsgInternalError      = "internalError"
	MsgRateLimited        = "rateLimited"
)
