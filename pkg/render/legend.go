package render

import (
	"github.com/timoleistner/plotrna/pkg/colormap"
)

const (
	legendBarHeight = 12
	legendSteps     = 64
)

// LegendHeight is the extra vertical space a legend adds beneath a
// diagram, including its own margins.
func LegendHeight(th Theme) float64 {
	return legendBarHeight + th.FontSize + 3*th.Padding/2
}

// DrawLegend renders a horizontal gradient bar for the scale across the
// bottom of the canvas, with "0" and "1" anchors underneath the ends.
// The caller is responsible for having reserved LegendHeight of space.
func DrawLegend(c Canvas, width, height float64, scale colormap.Scale, th Theme) {
	barWidth := width - 2*th.Padding
	if barWidth <= 0 {
		return
	}
	x0 := th.Padding
	y0 := height - LegendHeight(th) + th.Padding/2

	step := barWidth / legendSteps
	for i := 0; i < legendSteps; i++ {
		v := (float64(i) + 0.5) / legendSteps
		c.FillRect(x0+float64(i)*step, y0, step+0.5, legendBarHeight, scale.Map(v))
	}

	// Thin frame around the bar.
	w := th.LineWidth / 2
	c.Line(x0, y0, x0+barWidth, y0, w, th.Outline)
	c.Line(x0, y0+legendBarHeight, x0+barWidth, y0+legendBarHeight, w, th.Outline)
	c.Line(x0, y0, x0, y0+legendBarHeight, w, th.Outline)
	c.Line(x0+barWidth, y0, x0+barWidth, y0+legendBarHeight, w, th.Outline)

	labelY := y0 + legendBarHeight + th.FontSize/2 + 2
	c.Text(x0, labelY, "0", th.FontSize, th.Text)
	c.Text(x0+barWidth, labelY, "1", th.FontSize, th.Text)
}
