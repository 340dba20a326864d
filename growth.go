package perfcompare

import "math"

// GrowthBase is the normalized value every growth curve starts from.
const GrowthBase = 100.0

// GrowthCurve is the value of GrowthBase invested before the first year of a
// range, followed by its compounded value at the end of each year.
type GrowthCurve []float64

// Final returns the last value of the curve, 0 for an empty curve.
func (g GrowthCurve) Final() float64 {
	if len(g) == 0 {
		return 0
	}
	return g[len(g)-1]
}

// Return converts a growth value back to its percentage return.
func Return(value float64) Percent { return Percent((value/GrowthBase - 1) * 100) }

// indices locates the range on the year axis. ok is false if the asset is
// unknown or a bound is not on the axis.
func (d *Dataset) indices(key AssetKey, start, end int) (a Asset, from, to int, ok bool) {
	a, ok = d.Asset(key)
	if !ok {
		return
	}
	from, to = d.IndexOf(start), d.IndexOf(end)
	ok = from != -1 && to != -1
	return
}

// Growth compounds the asset returns from start to end, both included.
// It returns an empty curve when the range is not on the year axis.
func (d *Dataset) Growth(key AssetKey, start, end int) GrowthCurve {
	a, from, to, ok := d.indices(key, start, end)
	if !ok || from > to {
		return GrowthCurve{}
	}
	values := make(GrowthCurve, 1, to-from+2)
	values[0] = GrowthBase
	for i := from; i <= to; i++ {
		prev := values[len(values)-1]
		values = append(values, Percent(a.Returns[i]).Compound(prev))
	}
	return values
}

// TotalReturn is the cumulative return over the range, 0 if there is no data.
func (d *Dataset) TotalReturn(key AssetKey, start, end int) Percent {
	g := d.Growth(key, start, end)
	if len(g) < 2 {
		return 0
	}
	return Return(g.Final())
}

// CAGR is the compound annual growth rate over the range.
// A total loss (or worse) is reported as exactly -100%.
func (d *Dataset) CAGR(key AssetKey, start, end int) Percent {
	from, to := d.IndexOf(start), d.IndexOf(end)
	years := to - from + 1
	if from == -1 || to == -1 || years <= 0 {
		return 0
	}
	multiple := d.TotalReturn(key, start, end).Multiple()
	if multiple <= 0 {
		return -100
	}
	return Percent((math.Pow(multiple, 1/float64(years)) - 1) * 100)
}

// BestWorstYear scans the range for its highest and lowest yearly return.
// On ties the earliest year is kept.
func (d *Dataset) BestWorstYear(key AssetKey, start, end int) (best, worst YearReturn) {
	a, from, to, ok := d.indices(key, start, end)
	if !ok || from > to {
		return
	}
	best = YearReturn{Year: d.Years[from], Value: Percent(a.Returns[from])}
	worst = best
	for i := from; i <= to; i++ {
		v := Percent(a.Returns[i])
		if v > best.Value {
			best = YearReturn{Year: d.Years[i], Value: v}
		}
		if v < worst.Value {
			worst = YearReturn{Year: d.Years[i], Value: v}
		}
	}
	return
}

// Summary computes every aggregate of one asset over r.
func (d *Dataset) Summary(key AssetKey, r YearRange) PerformanceSummary {
	best, worst := d.BestWorstYear(key, r.Start, r.End)
	return PerformanceSummary{
		Key:         key,
		Range:       r,
		TotalReturn: d.TotalReturn(key, r.Start, r.End),
		CAGR:        d.CAGR(key, r.Start, r.End),
		Best:        best,
		Worst:       worst,
	}
}

// Summaries computes the summary of every asset, in dataset order.
func (d *Dataset) Summaries(r YearRange) []PerformanceSummary {
	res := make([]PerformanceSummary, 0, len(d.Assets))
	for _, a := range d.Assets {
		res = append(res, d.Summary(a.Key, r))
	}
	return res
}
