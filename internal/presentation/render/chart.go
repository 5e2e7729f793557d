// Package render projects a selected window onto its display forms: a
// terminal bar row, an HTML fragment, or JSON. The projection is stateless;
// every render derives everything from the chart value it is handed.
package render

import (
	"github.com/samber/lo"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
)

// Chart is the fully derived render input for one invocation.
type Chart struct {
	Title       string       `json:"title"`
	Unit        string       `json:"unit,omitempty"`
	Window      model.Window `json:"window"`
	Summary     Summary      `json:"summary"`
	Placeholder bool         `json:"placeholder,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// Summary carries the min/now/max line. Now is nil when the first window
// entry has no value; HasRange is false when the window holds no values at
// all, in which case Min and Max are meaningless and must not be displayed.
type Summary struct {
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Now      *float64 `json:"now,omitempty"`
	HasRange bool     `json:"hasRange"`
}

// Summarize computes the summary over the window's present values.
func Summarize(w model.Window) Summary {
	values := lo.FilterMap(w.Values(), func(v *float64, _ int) (float64, bool) {
		return lo.FromPtr(v), v != nil
	})

	s := Summary{}
	if len(values) > 0 {
		s.Min = lo.Min(values)
		s.Max = lo.Max(values)
		s.HasRange = true
	}
	if all := w.Values(); len(all) > 0 {
		s.Now = all[0]
	}
	return s
}

// Bar is one displayed column of the chart.
type Bar struct {
	Label  string   `json:"label,omitempty"`
	Value  *float64 `json:"value"`
	Ratio  float64  `json:"ratio"`
	IsNow  bool     `json:"isNow"`
	Absent bool     `json:"absent"`
}

// Bars computes the normalized columns. Heights scale to (v-min)/(max-min),
// with a span of 1 when all values are equal. Bars matching the now value
// are flagged for highlighting.
func (c Chart) Bars() []Bar {
	values := c.Window.Values()
	bars := make([]Bar, len(values))

	span := c.Summary.Max - c.Summary.Min
	if span == 0 {
		span = 1
	}

	for i, v := range values {
		bar := Bar{Value: v, Label: c.barLabel(i), Absent: v == nil}
		if v != nil && c.Summary.HasRange {
			bar.Ratio = (*v - c.Summary.Min) / span
			bar.IsNow = c.Summary.Now != nil && *v == *c.Summary.Now
		}
		bars[i] = bar
	}
	return bars
}

func (c Chart) barLabel(i int) string {
	if c.Window.Untimed || i >= len(c.Window.Slots) {
		return ""
	}
	return c.Window.Slots[i].HourStart.Format("15")
}
