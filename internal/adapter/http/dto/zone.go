package dto

type ZoneItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	Order     int    `json:"order"`
	CreatedAt string `json:"created_at"`
}

type CreateZoneRequest struct {
	Name  string  `json:"name" binding:"required,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

type UpdateZoneRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

type ReorderZonesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1,dive,uuid"`
}
