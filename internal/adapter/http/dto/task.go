package dto

type TaskItem struct {
	ID                  string  `json:"id"`
	ZoneID              string  `json:"zone_id"`
	ParentID            *string `json:"parent_id,omitempty"`
	Title               string  `json:"title"`
	Description         string  `json:"description,omitempty"`
	Completed           bool    `json:"completed"`
	CompletedAt         *string `json:"completed_at,omitempty"`
	Priority            string  `json:"priority"`
	Deadline            *string `json:"deadline,omitempty"`
	DeadlineType        string  `json:"deadline_type"`
	Order               int     `json:"order"`
	CreatedAt           string  `json:"created_at"`
	OwnTimeSeconds      int64   `json:"own_time_seconds"`
	EstimatedMinutes    *int    `json:"estimated_minutes,omitempty"`
	IsCollapsed         bool    `json:"is_collapsed"`
	Expanded            bool    `json:"expanded"`
	PreventAutoComplete bool    `json:"prevent_auto_complete"`
}

type CreateTaskRequest struct {
	Title            string  `json:"title" binding:"required,max=255"`
	Description      *string `json:"description" binding:"omitempty,max=65535"`
	ZoneID           *string `json:"zone_id" binding:"omitempty,uuid"`
	ParentID         *string `json:"parent_id" binding:"omitempty,uuid"`
	Priority         *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Deadline         *string `json:"deadline"`
	DeadlineType     *string `json:"deadline_type" binding:"omitempty,oneof=exact today tomorrow week none"`
	EstimatedMinutes *int    `json:"estimated_minutes" binding:"omitempty,gt=0"`
}

type UpdateTaskRequest struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	Priority            *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Deadline            *string `json:"deadline"`
	DeadlineType        *string `json:"deadline_type" binding:"omitempty,oneof=exact today tomorrow week none"`
	EstimatedMinutes    *int    `json:"estimated_minutes" binding:"omitempty,gt=0"`
	PreventAutoComplete *bool   `json:"prevent_auto_complete"`
}

type MoveTaskRequest struct {
	ZoneID   *string `json:"zone_id" binding:"omitempty,uuid"`
	ParentID *string `json:"parent_id" binding:"omitempty,uuid"`
	AnchorID *string `json:"anchor_id" binding:"omitempty,uuid"`
}

type RepositionRequest struct {
	TargetID string  `json:"target_id" binding:"required,uuid"`
	OffsetPx int     `json:"offset_px"`
	ZoneID   *string `json:"zone_id" binding:"omitempty,uuid"`
	FocusID  *string `json:"focus_id" binding:"omitempty,uuid"`
}

type RepositionResponse struct {
	NewDepth    int     `json:"new_depth"`
	NewParentID *string `json:"new_parent_id,omitempty"`
	AnchorID    *string `json:"anchor_id,omitempty"`
	ZoneID      string  `json:"zone_id"`
}

type AccumulateTimeRequest struct {
	Seconds int64 `json:"seconds" binding:"required,gt=0"`
}

type CollapseRequest struct {
	Collapsed bool `json:"collapsed"`
}

type ExpandRequest struct {
	Expanded bool `json:"expanded"`
}
