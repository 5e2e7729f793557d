package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesAttributePriority(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{1.0, 2.0},
		"today":     []interface{}{9.0, 9.0, 9.0},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 2)
	assert.Equal(t, 1.0, result.Points[0].Value)
	assert.Equal(t, 2.0, result.Points[1].Value)
}

func TestSeriesSkipsEmptyArrayCandidates(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{},
		"today":     []interface{}{3.0},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 1)
	assert.Equal(t, 3.0, result.Points[0].Value)
}

func TestSeriesConcatenatesTodayAndTomorrow(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today":    []interface{}{1.0, 2.0},
		"raw_tomorrow": []interface{}{3.0, 4.0},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 4)
	for i, expected := range []float64{1, 2, 3, 4} {
		assert.Equal(t, expected, result.Points[i].Value)
		assert.Equal(t, i, result.Points[i].OriginalIndex)
	}
}

func TestSeriesTomorrowOnly(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_tomorrow": []interface{}{5.0},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 1)
	assert.Equal(t, 5.0, result.Points[0].Value)
	assert.Equal(t, 0, result.Points[0].OriginalIndex)
}

func TestSeriesRecordEntries(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{
			map[string]interface{}{"hour": "2024-01-01T00:00:00", "value": "1,5"},
			map[string]interface{}{"hour": "2024-01-01T01:00:00", "value": 2.0},
		},
		"unit_of_measurement": "€/kWh",
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 2)
	assert.Equal(t, "€/kWh", result.Unit)

	assert.InDelta(t, 1.5, result.Points[0].Value, 1e-9)
	require.NotNil(t, result.Points[0].Time)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), result.Points[0].Time.UTC())

	assert.Equal(t, 2.0, result.Points[1].Value)
	require.NotNil(t, result.Points[1].Time)
	assert.Equal(t, time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), result.Points[1].Time.UTC())
}

func TestSeriesValueFieldPriority(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{
			map[string]interface{}{"value": 1.0, "price": 9.0},
			map[string]interface{}{"price": 2.0, "val": 9.0},
			map[string]interface{}{"val": 3.0},
		},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 3)
	assert.Equal(t, 1.0, result.Points[0].Value)
	assert.Equal(t, 2.0, result.Points[1].Value)
	assert.Equal(t, 3.0, result.Points[2].Value)
}

func TestSeriesTimeFieldPriority(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{
			map[string]interface{}{"start": "2024-01-01T05:00:00", "time": "2024-01-01T23:00:00", "value": 1.0},
			map[string]interface{}{"hour": "not-a-date", "from": "2024-01-01T06:00:00", "value": 2.0},
		},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 2)
	require.NotNil(t, result.Points[0].Time)
	assert.Equal(t, 5, result.Points[0].Time.Hour())
	require.NotNil(t, result.Points[1].Time)
	assert.Equal(t, 6, result.Points[1].Time.Hour())
}

func TestSeriesDropsUnparseableValues(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{
			map[string]interface{}{"value": "garbage"},
			map[string]interface{}{"hour": "2024-01-01T00:00:00"},
			map[string]interface{}{"value": 4.0},
			"bare string",
			nil,
			[]interface{}{1.0},
		},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 1)
	assert.Equal(t, 4.0, result.Points[0].Value)
	assert.Equal(t, 2, result.Points[0].OriginalIndex)
}

func TestSeriesUnparseableTimestampKeepsPoint(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{
			map[string]interface{}{"hour": "???", "value": 1.0},
		},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 1)
	assert.Nil(t, result.Points[0].Time)
	assert.Equal(t, 1.0, result.Points[0].Value)
}

func TestSeriesEmptyBag(t *testing.T) {
	assert.Empty(t, Series(nil, time.UTC).Points)
	assert.Empty(t, Series(map[string]interface{}{}, time.UTC).Points)
	assert.Empty(t, Series(map[string]interface{}{"other": 1}, time.UTC).Points)
}

func TestSeriesDecimalCommaNormalization(t *testing.T) {
	attrs := map[string]interface{}{
		"raw_today": []interface{}{
			map[string]interface{}{"value": "12,345"},
		},
	}

	result := Series(attrs, time.UTC)

	require.Len(t, result.Points, 1)
	assert.InDelta(t, 12.345, result.Points[0].Value, 1e-9)
}
