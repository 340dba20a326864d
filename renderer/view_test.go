package renderer

import (
	"testing"

	"github.com/etnz/perfcompare"
)

func TestRender(t *testing.T) {
	d := perfcompare.Default()

	state := perfcompare.DefaultViewState()
	v := Render(d, state, DefaultOptions())
	if v.Range != d.FullRange() {
		t.Errorf("Range = %v, want full range", v.Range)
	}
	if v.Chart.Type != perfcompare.Line || len(v.Chart.Series) != 6 {
		t.Errorf("default view should be a line chart of 6 series")
	}
	if len(v.KPIs) != 6 {
		t.Errorf("len(KPIs) = %d", len(v.KPIs))
	}

	// changing a control only requires rendering again
	state = state.WithPeriod(perfcompare.LastYears(3)).WithChartType(perfcompare.Bar)
	v = Render(d, state, DefaultOptions())
	if v.Range != (perfcompare.YearRange{Start: 2023, End: 2025}) {
		t.Errorf("Range = %v, want 2023-2025", v.Range)
	}
	if v.Chart.Type != perfcompare.Bar || len(v.Chart.Bars) != 6 {
		t.Errorf("view should be a bar chart of 6 bars")
	}
	if v.Chart.Range != v.Range {
		t.Errorf("chart range %v differs from view range %v", v.Chart.Range, v.Range)
	}
}

func TestRender_PeriodLongerThanAxis(t *testing.T) {
	d := perfcompare.Default()
	v := Render(d, perfcompare.DefaultViewState().WithPeriod(perfcompare.LastYears(50)), DefaultOptions())
	if v.Range != d.FullRange() {
		t.Errorf("Range = %v, want the full range", v.Range)
	}
}
