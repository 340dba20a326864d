package renderer

import "github.com/etnz/perfcompare"

// View is what a change of the controls redraws: the growth chart and the
// KPI grid, both over the selected period.
type View struct {
	State perfcompare.ViewState `json:"state"`
	Range perfcompare.YearRange `json:"range"`
	Chart ChartSpec             `json:"chart"`
	KPIs  []KPICard             `json:"kpis"`
}

// Render computes the view of state. It is the only entry point of a control
// change: call it again with the new state.
func Render(d *perfcompare.Dataset, state perfcompare.ViewState, opts Options) View {
	r := perfcompare.ResolvePeriod(state.Period, d.Years)
	v := View{State: state, Range: r, KPIs: KPICards(d, r, opts)}
	switch state.ChartType {
	case perfcompare.Bar:
		v.Chart = BarChart(d, r, state.Scale)
	default:
		v.Chart = LineChart(d, r, state.Scale, opts)
	}
	return v
}
