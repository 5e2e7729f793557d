package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/thimo234/ha-energy-chard/internal/util"
)

// barGlyphs map a normalized height onto unicode block characters.
var barGlyphs = []rune("▁▂▃▄▅▆▇█")

const (
	absentGlyph   = '·'
	highlightOn   = "\x1b[7m"
	highlightOff  = "\x1b[0m"
	fallbackWidth = 80
)

// TerminalRenderer draws the chart as text for a terminal.
type TerminalRenderer struct {
	width int
	color bool
}

// NewTerminalRenderer creates a renderer sized to the attached terminal,
// falling back to 80 columns when stdout is not a terminal.
func NewTerminalRenderer() *TerminalRenderer {
	width := fallbackWidth
	color := false
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
		color = true
	}
	return &TerminalRenderer{width: width, color: color}
}

// NewTerminalRendererWidth creates a renderer with a fixed width and no
// highlight escapes, for tests and piped output.
func NewTerminalRendererWidth(width int) *TerminalRenderer {
	return &TerminalRenderer{width: width}
}

// Render produces the textual chart: title, summary line, bar row, and hour
// labels. Placeholder charts render their message instead.
func (r *TerminalRenderer) Render(c Chart) string {
	var sb strings.Builder

	title := runewidth.Truncate(c.Title, r.width, "…")
	sb.WriteString(title + "\n")

	if c.Placeholder {
		sb.WriteString(c.Message + "\n")
		return sb.String()
	}

	sb.WriteString(r.summaryLine(c) + "\n")

	bars := c.Bars()
	if len(bars) == 0 {
		sb.WriteString("no data\n")
		return sb.String()
	}

	cell := r.cellWidth(len(bars))
	sb.WriteString(r.barRow(bars, cell) + "\n")
	if labels := r.labelRow(bars, cell); labels != "" {
		sb.WriteString(labels + "\n")
	}
	return sb.String()
}

func (r *TerminalRenderer) summaryLine(c Chart) string {
	minStr, maxStr := "-", "-"
	if c.Summary.HasRange {
		minStr = util.FormatValue(c.Summary.Min)
		maxStr = util.FormatValue(c.Summary.Max)
	}
	line := fmt.Sprintf("Min %s  Now %s  Highest %s", minStr, util.FormatMaybe(c.Summary.Now), maxStr)
	if c.Unit != "" {
		line += " " + c.Unit
	}
	return line
}

// cellWidth widens bars when the terminal leaves room, one to four columns
// per bar.
func (r *TerminalRenderer) cellWidth(bars int) int {
	if bars == 0 {
		return 1
	}
	cell := r.width / bars
	if cell < 1 {
		cell = 1
	}
	if cell > 4 {
		cell = 4
	}
	return cell
}

func (r *TerminalRenderer) barRow(bars []Bar, cell int) string {
	var sb strings.Builder
	for _, bar := range bars {
		glyph := absentGlyph
		if !bar.Absent {
			idx := int(bar.Ratio * float64(len(barGlyphs)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(barGlyphs) {
				idx = len(barGlyphs) - 1
			}
			glyph = barGlyphs[idx]
		}
		segment := strings.Repeat(string(glyph), cell)
		if bar.IsNow && r.color {
			segment = highlightOn + segment + highlightOff
		}
		sb.WriteString(segment)
	}
	return sb.String()
}

// labelRow writes the hour of every bar under its column, dropping labels
// that do not fit the cell width.
func (r *TerminalRenderer) labelRow(bars []Bar, cell int) string {
	if cell < 2 {
		return ""
	}
	var sb strings.Builder
	for _, bar := range bars {
		label := runewidth.Truncate(bar.Label, cell, "")
		sb.WriteString(runewidth.FillRight(label, cell))
	}
	return strings.TrimRight(sb.String(), " ")
}
