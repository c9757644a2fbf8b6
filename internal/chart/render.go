// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"bytes"
	"fmt"
	"math"
	"strings"
)

const (
	chartWidth    = 640
	chartHeight   = 320
	paddingTop    = 30
	paddingRight  = 16
	paddingBottom = 52
	paddingLeft   = 52
	legendWidth   = 110
)

// palette colors bars (single series) or series (stacked).
var palette = []string{"#5d86ff", "#f97316", "#10b981", "#e11d48", "#8b5cf6", "#eab308", "#0ea5e9", "#64748b"}

// RenderSVG renders c as a self-contained SVG document.
func RenderSVG(c Chart) ([]byte, error) {
	var buf bytes.Buffer
	stacked := len(c.Series) > 1
	width := chartWidth
	if stacked {
		width += legendWidth
	}

	fmt.Fprintf(&buf, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">", width, chartHeight, width, chartHeight)
	buf.WriteString("<rect width=\"100%\" height=\"100%\" fill=\"#ffffff\"/>")
	fmt.Fprintf(&buf, "<text x=\"%d\" y=\"18\" font-family=\"Arial, sans-serif\" font-size=\"14\" fill=\"#111827\">%s</text>", paddingLeft, escapeXML(c.Title))

	plotW := chartWidth - paddingLeft - paddingRight
	plotH := chartHeight - paddingTop - paddingBottom
	totals := stackTotals(c)
	maxVal := maxValue(totals)
	if maxVal <= 0 {
		maxVal = 1
	}

	drawAxes(&buf, plotW, plotH, maxVal, c)
	drawBars(&buf, plotW, plotH, maxVal, c)
	drawLabels(&buf, plotW, plotH, c.Labels)
	if stacked {
		drawLegend(&buf, c.Series)
	}
	buf.WriteString("</svg>")
	return buf.Bytes(), nil
}

func drawAxes(buf *bytes.Buffer, plotW, plotH int, maxVal float64, c Chart) {
	x0 := paddingLeft
	y0 := paddingTop + plotH
	fmt.Fprintf(buf, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"#d1d5db\" stroke-width=\"1\"/>", x0, y0, x0+plotW, y0)
	fmt.Fprintf(buf, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"#d1d5db\" stroke-width=\"1\"/>", x0, paddingTop, x0, y0)
	steps := 4
	for i := 0; i <= steps; i++ {
		val := maxVal * float64(i) / float64(steps)
		y := y0 - int((val/maxVal)*float64(plotH))
		fmt.Fprintf(buf, "<line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"#eef2f7\" stroke-width=\"1\"/>", x0, y, x0+plotW, y)
		fmt.Fprintf(buf, "<text x=\"%d\" y=\"%d\" font-family=\"Arial, sans-serif\" font-size=\"10\" fill=\"#6b7280\" text-anchor=\"end\">%s</text>", x0-6, y+4, formatNumber(val))
	}
	if strings.TrimSpace(c.YLabel) != "" {
		fmt.Fprintf(buf, "<text x=\"%d\" y=\"%d\" font-family=\"Arial, sans-serif\" font-size=\"11\" fill=\"#6b7280\">%s</text>", x0, paddingTop-2, escapeXML(c.YLabel))
	}
	if strings.TrimSpace(c.XLabel) != "" {
		fmt.Fprintf(buf, "<text x=\"%d\" y=\"%d\" font-family=\"Arial, sans-serif\" font-size=\"11\" fill=\"#6b7280\" text-anchor=\"end\">%s</text>", x0+plotW, y0+38, escapeXML(c.XLabel))
	}
}

// barGeometry returns the width of one bar and the gap between bars.
func barGeometry(plotW, count int) (float64, float64) {
	barGap := 6.0
	barW := (float64(plotW) - barGap*float64(count-1)) / float64(count)
	if barW < 6 {
		barW = 6
	}
	return barW, barGap
}

func drawBars(buf *bytes.Buffer, plotW, plotH int, maxVal float64, c Chart) {
	count := len(c.Labels)
	if count == 0 || len(c.Series) == 0 {
		return
	}
	barW, barGap := barGeometry(plotW, count)
	single := len(c.Series) == 1
	base := make([]float64, count)

	for si, s := range c.Series {
		for i := 0; i < count && i < len(s.Values); i++ {
			v := s.Values[i]
			if v <= 0 {
				continue
			}
			fill := palette[si%len(palette)]
			if single {
				fill = palette[i%len(palette)]
			}
			height := (v / maxVal) * float64(plotH)
			x := float64(paddingLeft) + float64(i)*(barW+barGap)
			y := float64(paddingTop) + float64(plotH) - base[i] - height
			fmt.Fprintf(buf, "<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\"><title>%s: %s</title></rect>",
				x, y, barW, height, fill, escapeXML(c.Labels[i]), formatNumber(v))
			base[i] += height
		}
	}
}

func drawLabels(buf *bytes.Buffer, plotW, plotH int, labels []string) {
	if len(labels) == 0 {
		return
	}
	barW, barGap := barGeometry(plotW, len(labels))
	y := paddingTop + plotH + 18
	for i, label := range labels {
		x := float64(paddingLeft) + float64(i)*(barW+barGap) + barW/2
		fmt.Fprintf(buf, "<text x=\"%.1f\" y=\"%d\" font-family=\"Arial, sans-serif\" font-size=\"10\" fill=\"#6b7280\" text-anchor=\"middle\">%s</text>", x, y, escapeXML(trimLabel(label, 12)))
	}
}

func drawLegend(buf *bytes.Buffer, series []Series) {
	x := chartWidth + 4
	for i, s := range series {
		y := paddingTop + i*18
		fmt.Fprintf(buf, "<rect x=\"%d\" y=\"%d\" width=\"10\" height=\"10\" fill=\"%s\"/>", x, y, palette[i%len(palette)])
		fmt.Fprintf(buf, "<text x=\"%d\" y=\"%d\" font-family=\"Arial, sans-serif\" font-size=\"10\" fill=\"#374151\">%s</text>", x+14, y+9, escapeXML(trimLabel(s.Name, 16)))
	}
}

// stackTotals sums every series per label.
func stackTotals(c Chart) []float64 {
	totals := make([]float64, len(c.Labels))
	for _, s := range c.Series {
		for i := 0; i < len(totals) && i < len(s.Values); i++ {
			if s.Values[i] > 0 {
				totals[i] += s.Values[i]
			}
		}
	}
	return totals
}

func trimLabel(label string, limit int) string {
	r := []rune(label)
	if len(r) <= limit {
		return label
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return string(r[:limit-3]) + "..."
}

func maxValue(values []float64) float64 {
	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

func formatNumber(val float64) string {
	if math.Abs(val-math.Round(val)) < 0.001 {
		return fmt.Sprintf("%.0f", val)
	}
	return fmt.Sprintf("%.1f", val)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func escapeXML(val string) string {
	return xmlEscaper.Replace(val)
}
