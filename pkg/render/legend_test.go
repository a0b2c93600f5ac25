package render

import (
	"testing"

	"github.com/timoleistner/plotrna/pkg/colormap"
)

func TestDrawLegend(t *testing.T) {
	scale, err := colormap.Get("heat")
	if err != nil {
		t.Fatal(err)
	}
	th := DefaultTheme()

	rec := &recorder{}
	DrawLegend(rec, 300, 200, scale, th)

	if got := rec.count("rect"); got != legendSteps {
		t.Errorf("gradient rect count = %d, want %d", got, legendSteps)
	}
	if got := rec.count("line"); got != 4 {
		t.Errorf("frame line count = %d, want 4", got)
	}
	if got := rec.count("text"); got != 2 {
		t.Errorf("anchor label count = %d, want 2", got)
	}
}

func TestDrawLegendTooNarrow(t *testing.T) {
	scale, _ := colormap.Get("")
	rec := &recorder{}
	DrawLegend(rec, 10, 50, scale, DefaultTheme())
	if len(rec.ops) != 0 {
		t.Errorf("ops = %v, want none on a canvas narrower than the padding", rec.ops)
	}
}
