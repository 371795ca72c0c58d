package domain

import (
	"time"

	"github.com/gofrs/uuid"
)

// Zone is a named top-level bucket owning a set of root tasks.
type Zone struct {
	ID        uuid.UUID
	Name      string
	Color     string
	Order     int
	CreatedAt time.Time
}

type CreateZoneInput struct {
	Name  string
	Color string
}

type UpdateZoneInput struct {
	Name  *string
	Color *string
}
