// Package timeline turns extracted series points into a contiguous hourly
// sequence ready for windowing.
package timeline

import (
	"sort"
	"time"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
)

// Builder buckets series points into local-hour slots.
type Builder struct {
	location *time.Location
}

// NewBuilder creates a builder bucketing in the given location. A nil
// location falls back to the process-local timezone.
func NewBuilder(location *time.Location) *Builder {
	if location == nil {
		location = time.Local
	}
	return &Builder{location: location}
}

// hourStart truncates t to the start of its hour in the builder's location.
func (b *Builder) hourStart(t time.Time) time.Time {
	local := t.In(b.location)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, b.location)
}

// Build converts points into an hourly timeline. Hours between the earliest
// and latest bucket with no data are materialized as slots with a nil value,
// so the sequence is strictly increasing with no gaps. When several points
// land in the same hour the later one in source order wins.
//
// If no point carries a timestamp the points are passed through unchanged in
// original order and the timeline is marked untimed.
func (b *Builder) Build(points []model.SeriesPoint) model.Timeline {
	timed := false
	for _, p := range points {
		if p.Timed() {
			timed = true
			break
		}
	}
	if !timed {
		return model.Timeline{Points: points, Untimed: true}
	}

	buckets := make(map[int64]float64)
	for _, p := range points {
		if !p.Timed() {
			continue
		}
		key := b.hourStart(*p.Time).Unix()
		buckets[key] = p.Value
	}
	if len(buckets) == 0 {
		return model.Timeline{}
	}

	keys := make([]int64, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	first, last := keys[0], keys[len(keys)-1]
	slots := make([]model.TimelineSlot, 0, (last-first)/3600+1)
	for key := first; key <= last; key += 3600 {
		slot := model.TimelineSlot{HourStart: time.Unix(key, 0).In(b.location)}
		if v, ok := buckets[key]; ok {
			value := v
			slot.Value = &value
		}
		slots = append(slots, slot)
	}

	return model.Timeline{Slots: slots}
}
