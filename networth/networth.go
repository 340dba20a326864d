// Package networth computes a personal net worth from assets and
// liabilities, and how it moves with the bitcoin price.
package networth

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/perfcompare"
	"github.com/shopspring/decimal"
)

// Targets are the bitcoin prices net worth is projected at.
var Targets = []decimal.Decimal{
	decimal.NewFromInt(150_000),
	decimal.NewFromInt(250_000),
	decimal.NewFromInt(500_000),
	decimal.NewFromInt(1_000_000),
	decimal.NewFromInt(2_000_000),
}

// Asset is an amount held in a category. Bitcoin amounts are in BTC, every
// other amount is in USD.
type Asset struct {
	Category Category        `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Liability is an amount owed, in USD.
type Liability struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// Inputs are the entries of the calculator. A category may hold several assets.
type Inputs struct {
	Assets      []Asset     `json:"assets"`
	Liabilities []Liability `json:"liabilities,omitempty"`
}

// DecodeInputs reads inputs in JSON.
func DecodeInputs(r io.Reader) (Inputs, error) {
	var in Inputs
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return Inputs{}, fmt.Errorf("cannot decode net worth inputs: %w", err)
	}
	return in, nil
}

// Slice is the share of a category in total assets.
type Slice struct {
	Category Category            `json:"category"`
	Value    perfcompare.Money   `json:"value"`
	Percent  perfcompare.Percent `json:"percent"`
}

// Projection is the net worth if bitcoin reached Target.
type Projection struct {
	Target   decimal.Decimal   `json:"target"`
	BTCValue perfcompare.Money `json:"btcValue"`
	NetWorth perfcompare.Money `json:"netWorth"`
	// Change is the difference with the current net worth.
	Change perfcompare.Money `json:"change"`
}

// Result is the computed net worth.
type Result struct {
	BTCPrice  decimal.Decimal `json:"btcPrice"`
	BTCAmount decimal.Decimal `json:"btcAmount"`

	ByCategory       map[Category]perfcompare.Money `json:"byCategory"`
	TotalAssets      perfcompare.Money              `json:"totalAssets"`
	TotalLiabilities perfcompare.Money              `json:"totalLiabilities"`
	NetWorth         perfcompare.Money              `json:"netWorth"`

	// NetWorthBTC is only known when the price is.
	NetWorthBTC *decimal.Decimal `json:"netWorthBTC,omitempty"`
	// Allocation is the bitcoin share of total assets, nil without bitcoin.
	Allocation *perfcompare.Percent `json:"allocation,omitempty"`
	// Breakdown holds the categories with a positive value.
	Breakdown   []Slice      `json:"breakdown,omitempty"`
	Projections []Projection `json:"projections,omitempty"`
}

func percentOf(part, total perfcompare.Money) perfcompare.Percent {
	return perfcompare.Percent(part.Decimal().Div(total.Decimal()).Mul(decimal.NewFromInt(100)).InexactFloat64())
}

// Compute sums the inputs, converting bitcoin at btcPrice. A null price
// values bitcoin at zero and disables every bitcoin denominated figure.
func Compute(in Inputs, btcPrice decimal.Decimal) Result {
	r := Result{
		BTCPrice:   btcPrice,
		ByCategory: make(map[Category]perfcompare.Money, len(Categories)),
	}
	for _, c := range Categories {
		r.ByCategory[c] = perfcompare.USD(0)
	}
	for _, a := range in.Assets {
		v := a.Amount
		if a.Category == Bitcoin {
			r.BTCAmount = r.BTCAmount.Add(a.Amount)
			v = a.Amount.Mul(btcPrice)
		}
		r.ByCategory[a.Category] = r.ByCategory[a.Category].Add(perfcompare.USD(v))
	}
	for _, c := range Categories {
		r.TotalAssets = r.TotalAssets.Add(r.ByCategory[c])
	}
	for _, l := range in.Liabilities {
		r.TotalLiabilities = r.TotalLiabilities.Add(perfcompare.USD(l.Amount))
	}
	r.NetWorth = r.TotalAssets.Sub(r.TotalLiabilities)

	if btcPrice.IsPositive() {
		nw := r.NetWorth.Decimal().Div(btcPrice)
		r.NetWorthBTC = &nw
	}

	if r.TotalAssets.IsPositive() {
		if btc := r.ByCategory[Bitcoin]; btc.IsPositive() {
			pct := percentOf(btc, r.TotalAssets)
			r.Allocation = &pct
		}
		for _, c := range Categories {
			if v := r.ByCategory[c]; v.IsPositive() {
				r.Breakdown = append(r.Breakdown, Slice{Category: c, Value: v, Percent: percentOf(v, r.TotalAssets)})
			}
		}
	}

	if r.BTCAmount.IsPositive() && btcPrice.IsPositive() {
		nonBTC := r.TotalAssets.Sub(r.ByCategory[Bitcoin])
		for _, target := range Targets {
			btcValue := perfcompare.USD(r.BTCAmount.Mul(target))
			nw := nonBTC.Add(btcValue).Sub(r.TotalLiabilities)
			r.Projections = append(r.Projections, Projection{
				Target:   target,
				BTCValue: btcValue,
				NetWorth: nw,
				Change:   nw.Sub(r.NetWorth),
			})
		}
	}
	return r
}
