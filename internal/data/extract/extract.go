// Package extract locates and normalizes the raw price series inside an
// entity's attribute bag. Integrations publish the series under different
// attribute names and entry shapes; the extractor reduces them all to an
// ordered sequence of SeriesPoint.
package extract

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/thimo234/ha-energy-chard/internal/core/coerce"
	"github.com/thimo234/ha-energy-chard/internal/core/model"
)

// Attribute and field name priority lists. Order matters: the first match
// wins and nothing is merged across names.
var (
	TodayAttrNames    = []string{"raw_today", "today", "prices_today", "prices", "data"}
	TomorrowAttrNames = []string{"raw_tomorrow", "tomorrow"}
	ValueFieldNames   = []string{"value", "price", "val"}
	TimeFieldNames    = []string{"hour", "start", "start_time", "startTime", "from", "time", "datetime"}
)

// UnitAttrName carries the display unit of the series values.
const UnitAttrName = "unit_of_measurement"

// Result is the extractor output: the normalized points in source order and
// the unit string, empty when the bag carries none.
type Result struct {
	Points []model.SeriesPoint
	Unit   string
}

// Series normalizes the price series found in attrs. Today's array comes
// first, tomorrow's entries continue its indexing. A nil or empty bag yields
// an empty result. Bare timestamp strings are read in loc.
func Series(attrs map[string]interface{}, loc *time.Location) Result {
	if len(attrs) == 0 {
		return Result{}
	}

	raw := findArray(attrs, TodayAttrNames)
	if tomorrow := findArray(attrs, TomorrowAttrNames); len(tomorrow) > 0 {
		raw = append(append([]interface{}{}, raw...), tomorrow...)
	}

	points := make([]model.SeriesPoint, 0, len(raw))
	for i, entry := range raw {
		if p, ok := normalizeEntry(entry, i, loc); ok {
			points = append(points, p)
		}
	}

	return Result{
		Points: points,
		Unit:   coerce.ToText(attrs[UnitAttrName]),
	}
}

// findArray returns the first non-empty array-valued attribute among names.
func findArray(attrs map[string]interface{}, names []string) []interface{} {
	name, found := lo.Find(names, func(n string) bool {
		arr, ok := attrs[n].([]interface{})
		return ok && len(arr) > 0
	})
	if !found {
		return nil
	}
	arr, _ := attrs[name].([]interface{})
	return arr
}

// normalizeEntry turns one raw series entry into a SeriesPoint. Entries
// whose value fails numeric coercion are dropped; entry shapes other than
// bare numbers and records are skipped.
func normalizeEntry(entry interface{}, index int, loc *time.Location) (model.SeriesPoint, bool) {
	switch e := entry.(type) {
	case map[string]interface{}:
		value, ok := entryValue(e)
		if !ok {
			return model.SeriesPoint{}, false
		}
		return model.SeriesPoint{
			Time:          entryTime(e, loc),
			Value:         value,
			OriginalIndex: index,
		}, true
	case string:
		// Bare strings are not a recognized entry shape.
		return model.SeriesPoint{}, false
	default:
		if value, ok := coerce.ToNumber(entry); ok {
			return model.SeriesPoint{Value: value, OriginalIndex: index}, true
		}
		return model.SeriesPoint{}, false
	}
}

// entryValue reads the numeric value of a record entry, first present field
// wins. Decimal commas in string values are repaired before coercion.
func entryValue(record map[string]interface{}) (float64, bool) {
	field, found := lo.Find(ValueFieldNames, func(n string) bool {
		_, ok := record[n]
		return ok
	})
	if !found {
		return 0, false
	}

	v := record[field]
	if s, ok := v.(string); ok {
		v = strings.Replace(s, ",", ".", 1)
	}
	return coerce.ToNumber(v)
}

// entryTime reads the entry timestamp, trying fields in priority order until
// one parses. Nil when none does.
func entryTime(record map[string]interface{}, loc *time.Location) *time.Time {
	for _, field := range TimeFieldNames {
		v, ok := record[field]
		if !ok {
			continue
		}
		if ts, ok := coerce.ToInstant(v, loc); ok {
			return &ts
		}
	}
	return nil
}
