// Package window selects the displayed slice of the timeline: the slot for
// the current local hour plus the twelve hours after it.
package window

import (
	"time"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
)

// Size is the window length: the current hour and twelve ahead.
const Size = 13

// Select slices up to Size consecutive entries from the timeline, starting
// at the first slot whose hour is not before the local-hour start of now.
// When no slot qualifies the window starts at index 0.
//
// Untimed timelines carry no hour boundaries to compare against, so the
// window is simply the first Size raw points in original order.
func Select(tl model.Timeline, now time.Time, loc *time.Location) model.Window {
	if loc == nil {
		loc = time.Local
	}

	if tl.Untimed {
		return model.Window{Points: clip(tl.Points), Untimed: true}
	}

	local := now.In(loc)
	nowHour := time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), 0, 0, 0, loc)

	start := 0
	for i, slot := range tl.Slots {
		if !slot.HourStart.Before(nowHour) {
			start = i
			break
		}
	}

	end := start + Size
	if end > len(tl.Slots) {
		end = len(tl.Slots)
	}
	return model.Window{Slots: tl.Slots[start:end]}
}

func clip(points []model.SeriesPoint) []model.SeriesPoint {
	if len(points) > Size {
		return points[:Size]
	}
	return points
}
