package seed

import (
	"context"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"focusflow/internal/core/domain"
	"focusflow/internal/core/ports"
)

type templateSpec struct {
	Title               string `yaml:"title"`
	Description         string `yaml:"description"`
	Zone                string `yaml:"zone"`
	ZoneColor           string `yaml:"zone_color"`
	Priority            string `yaml:"priority"`
	IntervalMinutes     int    `yaml:"interval_minutes"`
	DeadlineOffsetHours int    `yaml:"deadline_offset_hours"`
	Scope               string `yaml:"scope"`
}

type seedFile struct {
	Templates []templateSpec `yaml:"templates"`
}

// Apply loads recurring template definitions from a YAML file into a
// fresh workspace. Zones are matched by name and created on demand. The
// seed is skipped entirely when any template already exists, so restoring
// a snapshot wins over re-seeding.
func Apply(ctx context.Context, path string, zones ports.ZoneService, scheduler ports.SchedulerService) error {
	if path == "" {
		return nil
	}
	existing, err := scheduler.ListTemplates(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}

	for _, spec := range file.Templates {
		if spec.Title == "" || spec.Zone == "" || spec.IntervalMinutes <= 0 {
			zap.L().Warn("skipping malformed template seed entry", zap.String("title", spec.Title))
			continue
		}
		zone, err := findOrCreateZone(ctx, zones, spec.Zone, spec.ZoneColor)
		if err != nil {
			return err
		}
		_, err = scheduler.CreateTemplate(ctx, domain.CreateTemplateInput{
			Title:               spec.Title,
			Description:         spec.Description,
			ZoneID:              zone.ID,
			Priority:            domain.Priority(spec.Priority),
			IntervalMinutes:     spec.IntervalMinutes,
			DeadlineOffsetHours: spec.DeadlineOffsetHours,
			Scope:               domain.TemplateScope(spec.Scope),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func findOrCreateZone(ctx context.Context, zones ports.ZoneService, name, color string) (domain.Zone, error) {
	existing, err := zones.ListZones(ctx)
	if err != nil {
		return domain.Zone{}, err
	}
	for _, z := range existing {
		if z.Name == name {
			return z, nil
		}
	}
	return zones.CreateZone(ctx, domain.CreateZoneInput{Name: name, Color: color})
}
