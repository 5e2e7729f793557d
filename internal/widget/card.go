// Package widget holds the host-facing lifecycle object. The host pushes
// configuration and state snapshots in; every render is a pure re-derivation
// from the latest pair plus wall-clock time, with no state carried between
// renders.
package widget

import (
	"fmt"
	"sync"
	"time"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
	"github.com/thimo234/ha-energy-chard/internal/core/timeline"
	"github.com/thimo234/ha-energy-chard/internal/core/window"
	"github.com/thimo234/ha-energy-chard/internal/data/extract"
	"github.com/thimo234/ha-energy-chard/internal/presentation/render"
	"github.com/thimo234/ha-energy-chard/internal/util"
)

// TypeID identifies this card toward the hosting dashboard.
const TypeID = "energy-chard"

// Card is the widget instance. Configure and Update only store the latest
// inputs; Derive recomputes the chart in one synchronous pass.
type Card struct {
	mu       sync.RWMutex
	config   model.CardConfig
	snapshot model.Snapshot
	builder  *timeline.Builder
	location *time.Location
}

// New creates a card deriving in the given location. A nil location falls
// back to the process-local timezone.
func New(location *time.Location) *Card {
	if location == nil {
		location = time.Local
	}
	return &Card{
		builder:  timeline.NewBuilder(location),
		location: location,
	}
}

// Configure stores the latest configuration, last write wins.
func (c *Card) Configure(cfg model.CardConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config = cfg.WithDefaults()
}

// Update stores the latest snapshot, last write wins.
func (c *Card) Update(snap model.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snap
}

// Derive runs the full pipeline against the stored inputs: series
// extraction, hourly timeline build, window selection, summary. Missing
// entity or snapshot yields a placeholder chart, never an error.
func (c *Card) Derive(now time.Time) render.Chart {
	c.mu.RLock()
	cfg := c.config
	snap := c.snapshot
	c.mu.RUnlock()

	cfg = cfg.WithDefaults()

	if cfg.Entity == "" {
		return placeholder(cfg.Title, "no entity configured")
	}

	state, ok := snap.Entity(cfg.Entity)
	if !ok {
		return placeholder(cfg.Title, fmt.Sprintf("entity not found: %s", cfg.Entity))
	}

	series := extract.Series(state.Attributes, c.location)
	util.LogDebugf("Extracted %d series points for %s", len(series.Points), cfg.Entity)

	tl := c.builder.Build(series.Points)
	w := window.Select(tl, now, c.location)

	return render.Chart{
		Title:   cfg.Title,
		Unit:    series.Unit,
		Window:  w,
		Summary: render.Summarize(w),
	}
}

func placeholder(title, message string) render.Chart {
	return render.Chart{
		Title:       title,
		Placeholder: true,
		Message:     message,
	}
}
