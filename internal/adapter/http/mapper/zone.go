package mapper

import (
	"time"

	"github.com/gofrs/uuid"

	"focusflow/internal/adapter/http/dto"
	"focusflow/internal/core/domain"
)

func ToZoneItems(zones []domain.Zone) []dto.ZoneItem {
	items := make([]dto.ZoneItem, 0, len(zones))
	for _, zone := range zones {
		items = append(items, ToZoneItem(zone))
	}
	return items
}

func ToZoneItem(zone domain.Zone) dto.ZoneItem {
	return dto.ZoneItem{
		ID:        zone.ID.String(),
		Name:      zone.Name,
		Color:     zone.Color,
		Order:     zone.Order,
		CreatedAt: zone.CreatedAt.Format(time.RFC3339),
	}
}

func ToZone(item dto.ZoneItem) (domain.Zone, error) {
	id, err := uuid.FromString(item.ID)
	if err != nil {
		return domain.Zone{}, err
	}
	zone := domain.Zone{
		ID:    id,
		Name:  item.Name,
		Color: item.Color,
		Order: item.Order,
	}
	if item.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, item.CreatedAt)
		if err != nil {
			return domain.Zone{}, err
		}
		zone.CreatedAt = createdAt
	}
	return zone, nil
}
