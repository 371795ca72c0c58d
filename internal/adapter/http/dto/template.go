package dto

type TemplateItem struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	ZoneID              string `json:"zone_id"`
	Priority            string `json:"priority"`
	IntervalMinutes     int    `json:"interval_minutes"`
	LastTriggeredAt     string `json:"last_triggered_at"`
	DeadlineOffsetHours int    `json:"deadline_offset_hours"`
	IsActive            bool   `json:"is_active"`
	Scope               string `json:"scope"`
}

type CreateTemplateRequest struct {
	Title               string  `json:"title" binding:"required,max=255"`
	Description         *string `json:"description" binding:"omitempty,max=65535"`
	ZoneID              string  `json:"zone_id" binding:"required,uuid"`
	Priority            *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	IntervalMinutes     int     `json:"interval_minutes" binding:"required,gt=0"`
	DeadlineOffsetHours *int    `json:"deadline_offset_hours" binding:"omitempty,gte=0"`
	Scope               *string `json:"scope" binding:"omitempty,oneof=global workspace"`
}

type SetTemplateActiveRequest struct {
	Active bool `json:"active"`
}

type RecurringCheckResponse struct {
	Spawned int `json:"spawned"`
}
