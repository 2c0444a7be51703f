package dashboard

import (
	"fmt"
	"html/template"
	"strings"
)

// noDataSVG renders the placeholder shown when a chart has nothing to plot.
func noDataSVG(width, height int) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+
			`<text x="%d" y="%d" text-anchor="middle" fill="#999" font-size="11">No data</text></svg>`,
		width, height, width/2, height/2+4))
}

// SparklineSVG generates an inline SVG sparkline from a series of values.
// Empty or all-zero series render as a "No data" placeholder.
func SparklineSVG(values []float64, width, height int) template.HTML {
	allZero := true
	for _, v := range values {
		if v != 0 {
			allZero = false
			break
		}
	}
	if len(values) == 0 || allZero {
		return noDataSVG(width, height)
	}

	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	step := float64(width) / float64(max(len(values)-1, 1))
	points := make([]string, 0, len(values))
	for i, v := range values {
		x := float64(i) * step
		y := float64(height) - (v/maxVal)*float64(height-4) - 2
		points = append(points, fmt.Sprintf("%.1f,%.1f", x, y))
	}

	return template.HTML(fmt.Sprintf(
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+
			`<polyline points="%s" fill="none" stroke="#0d47a1" stroke-width="2" /></svg>`,
		width, height, strings.Join(points, " ")))
}

// BarChartSVG generates an inline SVG horizontal bar chart, one bar per label.
func BarChartSVG(labels []string, values []int, width, barHeight int) template.HTML {
	if len(labels) == 0 {
		return noDataSVG(width, 40)
	}

	maxVal := 1
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}

	const padding = 8
	const labelWidth = 80
	chartWidth := width - labelWidth - 60
	totalHeight := len(labels)*(barHeight+padding) + padding

	var bars strings.Builder
	for i, label := range labels {
		val := values[i]
		y := padding + i*(barHeight+padding)
		barW := max(float64(val)/float64(maxVal)*float64(chartWidth), 1)
		fmt.Fprintf(&bars,
			`<text x="%d" y="%d" text-anchor="end" fill="#333" font-size="12">%s</text>`,
			labelWidth-4, y+barHeight/2+4, template.HTMLEscapeString(label))
		fmt.Fprintf(&bars,
			`<rect x="%d" y="%d" width="%.1f" height="%d" fill="#0d47a1" rx="3" />`,
			labelWidth, y, barW, barHeight)
		fmt.Fprintf(&bars,
			`<text x="%.1f" y="%d" fill="#666" font-size="11">%d</text>`,
			float64(labelWidth)+barW+6, y+barHeight/2+4, val)
	}

	return template.HTML(fmt.Sprintf(
		`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">%s</svg>`,
		width, totalHeight, bars.String()))
}
