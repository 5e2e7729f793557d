package util

import (
	"fmt"
	"math"
)

// FormatValue renders a price value with three decimal places.
// Non-finite values render as "-" so NaN never reaches the display.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

// FormatValueUnit appends a unit suffix when one is known.
func FormatValueUnit(v float64, unit string) string {
	s := FormatValue(v)
	if s == "-" || unit == "" {
		return s
	}
	return s + " " + unit
}

// FormatMaybe renders an optional value, using "-" for absent.
func FormatMaybe(v *float64) string {
	if v == nil {
		return "-"
	}
	return FormatValue(*v)
}
