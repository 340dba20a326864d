package renderer

import (
	"fmt"

	"github.com/etnz/perfcompare"
)

// unknownMultiple is reported when no other asset has a positive CAGR.
const unknownMultiple = "?"

// Insights are the headline facts about the distinguished asset over the
// whole year axis.
type Insights struct {
	Name         string `json:"name"`
	BaselineName string `json:"baselineName"`
	Years        int    `json:"years"`
	// InvestedYear is the year before the axis starts, when $100 is invested.
	InvestedYear int `json:"investedYear"`

	// TopCount is the number of years the asset was the yearly leader.
	TopCount int `json:"topCount"`

	// Final values of $100 invested in InvestedYear.
	Final         float64 `json:"final"`
	BaselineFinal float64 `json:"baselineFinal"`

	CAGR perfcompare.Percent `json:"cagr"`
	// BestOtherName is empty when no other asset has a positive CAGR.
	BestOtherName string              `json:"bestOtherName"`
	BestOtherCAGR perfcompare.Percent `json:"bestOtherCAGR"`
	// Multiple is CAGR / BestOtherCAGR rounded to an integer, or "?".
	Multiple string `json:"multiple"`
}

// NewInsights computes the insights of opts.Distinguished.
func NewInsights(d *perfcompare.Dataset, opts Options) Insights {
	full := d.FullRange()
	in := Insights{
		Name:         nameOf(d, opts.Distinguished),
		BaselineName: nameOf(d, opts.Baseline),
		Years:        len(d.Years),
		InvestedYear: full.Start - 1,
	}
	if len(d.Assets) == 0 {
		in.Multiple = unknownMultiple
		return in
	}
	in.TopCount = d.LeaderCount(opts.Distinguished)
	in.Final = d.Growth(opts.Distinguished, full.Start, full.End).Final()
	in.BaselineFinal = d.Growth(opts.Baseline, full.Start, full.End).Final()

	in.CAGR = d.CAGR(opts.Distinguished, full.Start, full.End)
	for _, a := range d.Assets {
		if a.Key == opts.Distinguished {
			continue
		}
		if c := d.CAGR(a.Key, full.Start, full.End); c > in.BestOtherCAGR {
			in.BestOtherCAGR = c
			in.BestOtherName = a.Name
		}
	}
	in.Multiple = unknownMultiple
	if in.BestOtherCAGR > 0 {
		ratio := float64(in.CAGR) / float64(in.BestOtherCAGR)
		in.Multiple = perfcompare.FormatFixed(ratio, 0)
	}
	return in
}

// InsightCard is a display-ready insight.
type InsightCard struct {
	Icon        string `json:"icon"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// Cards returns the three insight cards.
func (in Insights) Cards() []InsightCard {
	bestOther := in.BestOtherName
	if bestOther == "" {
		bestOther = "none"
	}
	return []InsightCard{
		{
			Icon:        "🏆",
			Value:       fmt.Sprintf("%d of %d Years", in.TopCount, in.Years),
			Description: fmt.Sprintf("%s was the #1 performing asset class, outperforming every other tracked asset.", in.Name),
		},
		{
			Icon:  "💰",
			Value: FormatDollar(in.Final),
			Description: fmt.Sprintf("What $100 invested in %s in %d would be worth today, compared to %s in the %s.",
				in.Name, in.InvestedYear, FormatDollar(in.BaselineFinal), in.BaselineName),
		},
		{
			Icon:  "🚀",
			Value: in.Multiple + "x Higher CAGR",
			Description: fmt.Sprintf("%s's compound annual growth rate of %s is %sx higher than the next best asset (%s at %s).",
				in.Name, FormatPercent(in.CAGR), in.Multiple, bestOther, FormatPercent(in.BestOtherCAGR)),
		},
	}
}

// Hero holds the headline numbers of the distinguished asset.
type Hero struct {
	Name        string                 `json:"name"`
	TotalReturn perfcompare.Percent    `json:"totalReturn"`
	Best        perfcompare.YearReturn `json:"bestYear"`
	TopCount    int                    `json:"topCount"`
	Years       int                    `json:"years"`
}

// NewHero computes the headline numbers over the whole year axis.
func NewHero(d *perfcompare.Dataset, opts Options) Hero {
	full := d.FullRange()
	best, _ := d.BestWorstYear(opts.Distinguished, full.Start, full.End)
	h := Hero{
		Name:        nameOf(d, opts.Distinguished),
		TotalReturn: d.TotalReturn(opts.Distinguished, full.Start, full.End),
		Best:        best,
		Years:       len(d.Years),
	}
	if len(d.Assets) > 0 {
		h.TopCount = d.LeaderCount(opts.Distinguished)
	}
	return h
}

func (h Hero) TotalReturnText() string { return FormatPercent(h.TotalReturn) }
func (h Hero) BestYearText() string {
	return fmt.Sprintf("%s (%d)", FormatPercent(h.Best.Value), h.Best.Year)
}
func (h Hero) TopCountText() string { return fmt.Sprintf("%d of %d", h.TopCount, h.Years) }

// nameOf returns the display name of key in d, or its default name.
func nameOf(d *perfcompare.Dataset, key perfcompare.AssetKey) string {
	if a, ok := d.Asset(key); ok {
		return a.Name
	}
	return key.Name()
}
