package dto

type TreeRow struct {
	Task                  TaskItem `json:"task"`
	Depth                 int      `json:"depth"`
	TotalWorkSeconds      int64    `json:"total_work_seconds"`
	EstimatedMinutes      int      `json:"estimated_minutes"`
	EffectiveDeadline     *string  `json:"effective_deadline,omitempty"`
	EffectiveDeadlineType string   `json:"effective_deadline_type"`
}

type AggregatesItem struct {
	TotalWorkSeconds int64 `json:"total_work_seconds"`
	EstimatedMinutes int   `json:"estimated_minutes"`
}

type TreeViewResponse struct {
	Rows       []TreeRow                 `json:"rows"`
	Breadcrumb []TaskItem                `json:"breadcrumb"`
	Aggregates map[string]AggregatesItem `json:"aggregates"`
}

type SubtreeItem struct {
	Root        TaskItem   `json:"root"`
	Descendants []TaskItem `json:"descendants"`
}

type PasteSubtreeRequest struct {
	Subtree  SubtreeItem `json:"subtree" binding:"required"`
	ZoneID   *string     `json:"zone_id" binding:"omitempty,uuid"`
	ParentID *string     `json:"parent_id" binding:"omitempty,uuid"`
}

type SnapshotItem struct {
	Zones     []ZoneItem     `json:"zones"`
	Tasks     []TaskItem     `json:"tasks"`
	Templates []TemplateItem `json:"templates,omitempty"`
}
