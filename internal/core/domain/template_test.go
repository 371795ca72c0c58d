package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"focusflow/internal/core/domain"
)

func TestTemplateDue(t *testing.T) {
	last := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tpl := domain.RecurringTemplate{IntervalMinutes: 60, LastTriggeredAt: last, IsActive: true}

	require.False(t, tpl.Due(last.Add(59*time.Minute)))
	require.True(t, tpl.Due(last.Add(60*time.Minute)))

	inactive := tpl
	inactive.IsActive = false
	require.False(t, inactive.Due(last.Add(2*time.Hour)))

	zeroInterval := tpl
	zeroInterval.IntervalMinutes = 0
	require.False(t, zeroInterval.Due(last.Add(2*time.Hour)))
}
