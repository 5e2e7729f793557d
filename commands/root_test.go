package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thimo234/ha-energy-chard/internal/core/model"
	"github.com/thimo234/ha-energy-chard/internal/presentation/render"
)

func sampleChart() render.Chart {
	v1, v2 := 1.5, 2.0
	w := model.Window{Slots: []model.TimelineSlot{
		{HourStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Value: &v1},
		{HourStart: time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), Value: &v2},
	}}
	return render.Chart{
		Title:   "Energy Graph Scheduler",
		Unit:    "€/kWh",
		Window:  w,
		Summary: render.Summarize(w),
	}
}

func TestRenderChartFormats(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		contains string
	}{
		{
			name:     "terminal",
			format:   "term",
			contains: "Min 1.500",
		},
		{
			name:     "terminal default",
			format:   "",
			contains: "Energy Graph Scheduler",
		},
		{
			name:     "html",
			format:   "html",
			contains: "ec-bars",
		},
		{
			name:     "json",
			format:   "json",
			contains: `"summary"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := renderChart(sampleChart(), tt.format)
			require.NoError(t, err)
			assert.Contains(t, out, tt.contains)
		})
	}
}

func TestRenderChartUnknownFormat(t *testing.T) {
	_, err := renderChart(sampleChart(), "yaml")
	assert.Error(t, err)
}

func TestExpandPath(t *testing.T) {
	expanded := expandPath("~/states.json")
	assert.False(t, strings.HasPrefix(expanded, "~"))
	assert.True(t, strings.HasSuffix(expanded, "states.json"))
}

func TestPollInterval(t *testing.T) {
	original := refresh
	defer func() { refresh = original }()

	refresh = ""
	assert.Equal(t, time.Duration(0), pollInterval())

	refresh = "90s"
	assert.Equal(t, 90*time.Second, pollInterval())

	refresh = "1h30m"
	assert.Equal(t, 90*time.Minute, pollInterval())

	refresh = "bogus"
	assert.Equal(t, time.Duration(0), pollInterval())
}
