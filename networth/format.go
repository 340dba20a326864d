package networth

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/perfcompare"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount to the dollar: "$1,234" or "-$1,234".
func FormatUSD(m perfcompare.Money) string { return m.Whole() }

// FormatBTC formats a bitcoin amount with 4 decimals: "₿ 0.1234".
func FormatBTC(v decimal.Decimal) string {
	f := money.NewFormatter(4, ".", ",", "", "1")
	s := f.Format(v.Abs().Round(4).Shift(4).IntPart())
	if v.Round(4).IsNegative() {
		s = "-" + s
	}
	return "₿ " + s
}

// FormatCompact formats an amount briefly: "$1.5M", "$250K" or "$999".
func FormatCompact(m perfcompare.Money) string {
	sign := ""
	if m.IsNegative() {
		sign = "-"
	}
	v := m.Decimal().Abs()
	switch {
	case v.GreaterThanOrEqual(decimal.NewFromInt(1e6)):
		return sign + "$" + v.Shift(-6).StringFixed(1) + "M"
	case v.GreaterThanOrEqual(decimal.NewFromInt(1e3)):
		return sign + "$" + v.Shift(-3).StringFixed(0) + "K"
	default:
		return sign + "$" + v.StringFixed(0)
	}
}

// FormatTargetPrice formats a price target: "$150K" or "$2M".
func FormatTargetPrice(v decimal.Decimal) string {
	if v.GreaterThanOrEqual(decimal.NewFromInt(1e6)) {
		return "$" + v.Shift(-6).StringFixed(0) + "M"
	}
	return "$" + v.Shift(-3).StringFixed(0) + "K"
}

// ChangeText describes the change of net worth: "▲ +$50K" or "▼ -$20K".
func (p Projection) ChangeText() string {
	if p.Change.IsNegative() {
		return "▼ " + FormatCompact(p.Change)
	}
	return "▲ +" + FormatCompact(p.Change)
}

// Hint describes the bitcoin holding at the live price.
func (r Result) Hint() string {
	switch {
	case r.BTCAmount.IsPositive() && r.BTCPrice.IsPositive():
		return fmt.Sprintf("%s BTC = %s", r.BTCAmount.StringFixed(8), FormatUSD(r.ByCategory[Bitcoin]))
	case r.BTCPrice.IsPositive():
		return "Live BTC price: " + FormatUSD(perfcompare.USD(r.BTCPrice))
	default:
		return "Fetching live BTC price..."
	}
}

// Markdown renders the result.
func (r Result) Markdown() string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	btc := "₿ --"
	if r.NetWorthBTC != nil {
		btc = FormatBTC(*r.NetWorthBTC)
	}
	doc.H2("Net Worth")
	doc.BulletList(
		"Net worth: "+md.Bold(FormatUSD(r.NetWorth)),
		"In bitcoin: "+btc,
		"Total assets: "+FormatUSD(r.TotalAssets),
		"Total liabilities: "+FormatUSD(r.TotalLiabilities),
		r.Hint(),
	)
	if r.Allocation != nil {
		doc.PlainText("Bitcoin allocation: " + md.Bold(perfcompare.FormatFixed(float64(*r.Allocation), 1)+"%"))
	}

	if len(r.Breakdown) > 0 {
		doc.H2("Breakdown")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Category", "Value", "Share"},
			Rows:      [][]string{},
		}
		for _, s := range r.Breakdown {
			share := perfcompare.FormatFixed(float64(s.Percent), 0) + "%"
			table.Rows = append(table.Rows, []string{s.Category.Label(), FormatUSD(s.Value), share})
		}
		doc.Table(table)
	}

	doc.H2("Projections")
	if len(r.Projections) == 0 {
		doc.PlainText("Enter your Bitcoin amount to see how your net worth changes at different BTC price targets.")
		return strings.TrimSpace(doc.String()) + "\n"
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"If BTC reaches", "BTC value", "Net worth", "Change"},
		Rows:      [][]string{},
	}
	for _, p := range r.Projections {
		table.Rows = append(table.Rows, []string{
			FormatTargetPrice(p.Target),
			fmt.Sprintf("%s BTC = %s", r.BTCAmount.StringFixed(4), FormatUSD(p.BTCValue)),
			FormatUSD(p.NetWorth),
			p.ChangeText(),
		})
	}
	doc.Table(table)
	return strings.TrimSpace(doc.String()) + "\n"
}
