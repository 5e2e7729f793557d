package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/thimo234/ha-energy-chard/internal/util"
)

const fragmentTmpl = `{{define "fragment"}}<div class="energy-chard">
<div class="ec-title">{{.Title}}</div>
{{if .Placeholder}}<div class="ec-placeholder">{{.Message}}</div>{{else}}<div class="ec-summary">{{.SummaryLine}}</div>
<div class="ec-bars">{{range .Bars}}<div class="ec-bar{{if .IsNow}} ec-now{{end}}{{if .Absent}} ec-absent{{end}}" style="height:{{.HeightPct}}%" title="{{.Tooltip}}"></div>{{end}}</div>{{end}}
</div>{{end}}`

const pageTmpl = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>{{.Title}}</title>
<style>
body{font-family:monospace,sans-serif;background:#0d1117;color:#c9d1d9;font-size:13px;padding:16px}
.energy-chard{background:#161b22;border:1px solid #30363d;border-radius:6px;padding:12px 16px;max-width:420px}
.ec-title{font-weight:700;color:#f0f6fc;margin-bottom:6px}
.ec-summary{color:#8b949e;font-size:11px;margin-bottom:8px}
.ec-placeholder{color:#8b949e;font-style:italic}
.ec-bars{display:flex;align-items:flex-end;gap:3px;height:80px}
.ec-bar{flex:1;background:#1f6feb;border-radius:2px 2px 0 0;opacity:.45;min-height:2px}
.ec-bar.ec-now{opacity:1}
.ec-bar.ec-absent{background:#30363d;opacity:.3}
</style>
</head>
<body>
{{template "fragment" .}}
</body>
</html>{{end}}`

var htmlTemplates = template.Must(template.Must(template.New("chart").Parse(fragmentTmpl)).Parse(pageTmpl))

// htmlBar is the template view of one bar.
type htmlBar struct {
	HeightPct int
	IsNow     bool
	Absent    bool
	Tooltip   string
}

// htmlChart is the template view of the chart.
type htmlChart struct {
	Title       string
	SummaryLine string
	Placeholder bool
	Message     string
	Bars        []htmlBar
}

// HTMLRenderer renders the chart as a markup fragment suitable for embedding
// in a dashboard, or as a standalone page.
type HTMLRenderer struct{}

// NewHTMLRenderer creates an HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// Fragment renders the bare widget fragment.
func (r *HTMLRenderer) Fragment(c Chart) (string, error) {
	return r.execute("fragment", c)
}

// Page renders a full standalone page embedding the fragment.
func (r *HTMLRenderer) Page(c Chart) (string, error) {
	return r.execute("page", c)
}

func (r *HTMLRenderer) execute(name string, c Chart) (string, error) {
	var buf bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&buf, name, r.view(c)); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func (r *HTMLRenderer) view(c Chart) htmlChart {
	view := htmlChart{
		Title:       c.Title,
		Placeholder: c.Placeholder,
		Message:     c.Message,
	}
	if c.Placeholder {
		return view
	}

	minStr, maxStr := "-", "-"
	if c.Summary.HasRange {
		minStr = util.FormatValue(c.Summary.Min)
		maxStr = util.FormatValue(c.Summary.Max)
	}
	view.SummaryLine = fmt.Sprintf("Min %s · Now %s · Highest %s", minStr, util.FormatMaybe(c.Summary.Now), maxStr)
	if c.Unit != "" {
		view.SummaryLine += " " + c.Unit
	}

	for _, bar := range c.Bars() {
		hb := htmlBar{IsNow: bar.IsNow, Absent: bar.Absent, Tooltip: barTooltip(bar)}
		if !bar.Absent {
			hb.HeightPct = 5 + int(bar.Ratio*95)
		}
		view.Bars = append(view.Bars, hb)
	}
	return view
}

func barTooltip(bar Bar) string {
	value := util.FormatMaybe(bar.Value)
	if bar.Label == "" {
		return value
	}
	return fmt.Sprintf("%s:00 %s", bar.Label, value)
}
