package renderer

import (
	"fmt"

	"github.com/etnz/perfcompare"
)

// Tone tells how a metric should be styled.
type Tone int

const (
	ToneNegative Tone = iota
	TonePositive
)

func (t Tone) String() string {
	if t == TonePositive {
		return "positive"
	}
	return "negative"
}

func (t Tone) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

func toneOf(p perfcompare.Percent) Tone {
	if p.IsGain() {
		return TonePositive
	}
	return ToneNegative
}

// Metric is a labelled, formatted value.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Tone  Tone   `json:"tone"`
}

func percentMetric(label string, p perfcompare.Percent) Metric {
	return Metric{Label: label, Value: FormatPercent(p), Tone: toneOf(p)}
}

func yearMetric(label string, y perfcompare.YearReturn) Metric {
	return Metric{Label: label, Value: fmt.Sprintf("%s (%d)", FormatPercent(y.Value), y.Year), Tone: toneOf(y.Value)}
}

// KPICard is the display-ready performance of one asset over the selected range.
type KPICard struct {
	Key           perfcompare.AssetKey `json:"asset"`
	Name          string               `json:"name"`
	Color         string               `json:"color"`
	Distinguished bool                 `json:"distinguished"`
	TotalReturn   Metric               `json:"totalReturn"`
	CAGR          Metric               `json:"cagr"`
	BestYear      Metric               `json:"bestYear"`
	WorstYear     Metric               `json:"worstYear"`
}

// Metrics returns the card metrics in display order.
func (c KPICard) Metrics() []Metric {
	return []Metric{c.TotalReturn, c.CAGR, c.BestYear, c.WorstYear}
}

// KPICards builds one card per asset, in dataset order.
func KPICards(d *perfcompare.Dataset, r perfcompare.YearRange, opts Options) []KPICard {
	cards := make([]KPICard, 0, len(d.Assets))
	for _, a := range d.Assets {
		s := d.Summary(a.Key, r)
		cards = append(cards, KPICard{
			Key:           a.Key,
			Name:          a.Name,
			Color:         a.Color,
			Distinguished: a.Key == opts.Distinguished,
			TotalReturn:   percentMetric("Total Return", s.TotalReturn),
			CAGR:          percentMetric("CAGR", s.CAGR),
			BestYear:      yearMetric("Best Year", s.Best),
			WorstYear:     yearMetric("Worst Year", s.Worst),
		})
	}
	return cards
}
