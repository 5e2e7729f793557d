package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
)

func hourlySlots(start time.Time, n int) []model.TimelineSlot {
	slots := make([]model.TimelineSlot, n)
	for i := range slots {
		v := float64(i)
		slots[i] = model.TimelineSlot{HourStart: start.Add(time.Duration(i) * time.Hour), Value: &v}
	}
	return slots
}

func TestSelectReturnsThirteenSlotsFromNow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tl := model.Timeline{Slots: hourlySlots(start, 20)}
	now := start.Add(5*time.Hour + 42*time.Minute)

	w := Select(tl, now, time.UTC)

	require.Len(t, w.Slots, Size)
	assert.Equal(t, 5.0, *w.Slots[0].Value)
	assert.Equal(t, 17.0, *w.Slots[Size-1].Value)
}

func TestSelectShortTimeline(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tl := model.Timeline{Slots: hourlySlots(start, 4)}

	w := Select(tl, start, time.UTC)

	assert.Len(t, w.Slots, 4)
}

func TestSelectFallsBackToStart(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tl := model.Timeline{Slots: hourlySlots(start, 5)}
	now := start.Add(48 * time.Hour)

	w := Select(tl, now, time.UTC)

	require.NotEmpty(t, w.Slots)
	assert.Equal(t, start, w.Slots[0].HourStart)
	assert.Len(t, w.Slots, 5)
}

func TestSelectSkipsSlotsBeforeNow(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tl := model.Timeline{Slots: hourlySlots(start, 20)}
	now := start.Add(2 * time.Hour)

	w := Select(tl, now, time.UTC)

	assert.Equal(t, start.Add(2*time.Hour), w.Slots[0].HourStart)
}

func TestSelectUntimedPassthrough(t *testing.T) {
	points := make([]model.SeriesPoint, 20)
	for i := range points {
		points[i] = model.SeriesPoint{Value: float64(i), OriginalIndex: i}
	}
	tl := model.Timeline{Points: points, Untimed: true}

	w := Select(tl, time.Now(), time.UTC)

	require.True(t, w.Untimed)
	require.Len(t, w.Points, Size)
	assert.Equal(t, 0.0, w.Points[0].Value)
	assert.Equal(t, 12.0, w.Points[Size-1].Value)
}

func TestSelectUntimedShort(t *testing.T) {
	tl := model.Timeline{Points: []model.SeriesPoint{{Value: 1}}, Untimed: true}

	w := Select(tl, time.Now(), time.UTC)

	assert.Len(t, w.Points, 1)
}

func TestSelectEmptyTimeline(t *testing.T) {
	w := Select(model.Timeline{}, time.Now(), time.UTC)
	assert.Zero(t, w.Len())
}
