package model

import (
	"time"
)

// SeriesPoint is one normalized entry of the raw price series.
// Time is nil when the source entry carried no parseable timestamp.
// Value is always finite; entries that fail numeric coercion are never
// turned into points.
type SeriesPoint struct {
	Time          *time.Time `json:"time,omitempty"`
	Value         float64    `json:"value"`
	OriginalIndex int        `json:"originalIndex"`
}

// Timed reports whether the point carries a known timestamp.
func (p SeriesPoint) Timed() bool {
	return p.Time != nil
}

// TimelineSlot is one whole local hour of the timeline. Value is nil for
// hours with no data, which is distinct from a numeric zero.
type TimelineSlot struct {
	HourStart time.Time `json:"hourStart"`
	Value     *float64  `json:"value"`
}

// Timeline is the contiguous hourly sequence built from a series. When no
// source point carried a timestamp the timeline degrades to the raw points
// in original order and Untimed is set.
type Timeline struct {
	Slots   []TimelineSlot `json:"slots,omitempty"`
	Points  []SeriesPoint  `json:"points,omitempty"`
	Untimed bool           `json:"untimed,omitempty"`
}

// Len returns the number of entries, slots or raw points.
func (t Timeline) Len() int {
	if t.Untimed {
		return len(t.Points)
	}
	return len(t.Slots)
}

// Window is the displayed sub-sequence of the timeline: the slot matching
// the current local hour plus up to twelve hours ahead. Rebuilt on every
// render, never persisted.
type Window struct {
	Slots   []TimelineSlot `json:"slots,omitempty"`
	Points  []SeriesPoint  `json:"points,omitempty"`
	Untimed bool           `json:"untimed,omitempty"`
}

// Len returns the number of window entries.
func (w Window) Len() int {
	if w.Untimed {
		return len(w.Points)
	}
	return len(w.Slots)
}

// Values returns the per-entry values in display order, nil for absent.
func (w Window) Values() []*float64 {
	if w.Untimed {
		out := make([]*float64, len(w.Points))
		for i, p := range w.Points {
			v := p.Value
			out[i] = &v
		}
		return out
	}
	out := make([]*float64, len(w.Slots))
	for i, s := range w.Slots {
		out[i] = s.Value
	}
	return out
}
