package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrailingWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	w := Trailing(now, time.Hour)

	assert.Equal(t, now.Add(-time.Hour), w.Since)
	assert.Equal(t, now, w.Until)
}

// consecutive ticks tile the timeline with no overlap and no gap
func TestTrailingWindowsTile(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first := Trailing(now, time.Hour)
	second := Trailing(now.Add(time.Hour), time.Hour)

	assert.Equal(t, first.Until, second.Since)
}

func TestLeadWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	w := Lead(now, 60*time.Minute, time.Minute)

	assert.Equal(t, now.Add(60*time.Minute), w.Since)
	assert.Equal(t, now.Add(61*time.Minute), w.Until)
}
