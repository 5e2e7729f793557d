package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
)

func pointAt(t time.Time, value float64, index int) model.SeriesPoint {
	return model.SeriesPoint{Time: &t, Value: value, OriginalIndex: index}
}

func TestBuildFillsGaps(t *testing.T) {
	b := NewBuilder(time.UTC)
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tl := b.Build([]model.SeriesPoint{
		pointAt(day, 10, 0),
		pointAt(day.Add(2*time.Hour), 30, 1),
	})

	require.False(t, tl.Untimed)
	require.Len(t, tl.Slots, 3)

	assert.Equal(t, day, tl.Slots[0].HourStart)
	require.NotNil(t, tl.Slots[0].Value)
	assert.Equal(t, 10.0, *tl.Slots[0].Value)

	assert.Equal(t, day.Add(time.Hour), tl.Slots[1].HourStart)
	assert.Nil(t, tl.Slots[1].Value)

	assert.Equal(t, day.Add(2*time.Hour), tl.Slots[2].HourStart)
	require.NotNil(t, tl.Slots[2].Value)
	assert.Equal(t, 30.0, *tl.Slots[2].Value)
}

func TestBuildTruncatesToHourStart(t *testing.T) {
	b := NewBuilder(time.UTC)

	tl := b.Build([]model.SeriesPoint{
		pointAt(time.Date(2024, 1, 1, 14, 37, 12, 0, time.UTC), 5, 0),
	})

	require.Len(t, tl.Slots, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC), tl.Slots[0].HourStart)
}

func TestBuildLaterPointWinsWithinHour(t *testing.T) {
	b := NewBuilder(time.UTC)
	hour := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	tl := b.Build([]model.SeriesPoint{
		pointAt(hour, 1, 0),
		pointAt(hour.Add(30*time.Minute), 2, 1),
	})

	require.Len(t, tl.Slots, 1)
	require.NotNil(t, tl.Slots[0].Value)
	assert.Equal(t, 2.0, *tl.Slots[0].Value)
}

func TestBuildUntimedPassthrough(t *testing.T) {
	b := NewBuilder(time.UTC)
	points := []model.SeriesPoint{
		{Value: 1, OriginalIndex: 0},
		{Value: 2, OriginalIndex: 1},
		{Value: 3, OriginalIndex: 2},
	}

	tl := b.Build(points)

	assert.True(t, tl.Untimed)
	assert.Equal(t, points, tl.Points)
	assert.Empty(t, tl.Slots)
}

func TestBuildMixedTimestampsDropsUntimedPoints(t *testing.T) {
	b := NewBuilder(time.UTC)
	hour := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	tl := b.Build([]model.SeriesPoint{
		{Value: 99, OriginalIndex: 0},
		pointAt(hour, 1, 1),
	})

	require.False(t, tl.Untimed)
	require.Len(t, tl.Slots, 1)
	assert.Equal(t, 1.0, *tl.Slots[0].Value)
}

func TestBuildEmptyInput(t *testing.T) {
	b := NewBuilder(time.UTC)

	tl := b.Build(nil)

	assert.True(t, tl.Untimed)
	assert.Zero(t, tl.Len())
}

func TestBuildNilLocationDefaultsToLocal(t *testing.T) {
	b := NewBuilder(nil)
	hour := time.Date(2024, 1, 1, 8, 0, 0, 0, time.Local)

	tl := b.Build([]model.SeriesPoint{pointAt(hour, 1, 0)})

	require.Len(t, tl.Slots, 1)
	assert.Equal(t, hour, tl.Slots[0].HourStart)
}
