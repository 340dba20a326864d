package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/perfcompare/networth"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// networthCmd holds the flags for the 'networth' subcommand.
type networthCmd struct {
	amounts     map[networth.Category]*decimal.Decimal
	liabilities []networth.Liability
	inputs      string
	price       string
	json        bool
}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "compute net worth at the live bitcoin price" }
func (*networthCmd) Usage() string {
	return `perf networth [-cash <usd>] [-investments <usd>] [-realestate <usd>] [-btc <btc>] [-other <usd>]
              [-liability <name>=<usd>]... [-i <inputs.json>] [-price <usd>] [-json]

  Computes the net worth, its bitcoin allocation, and its value if bitcoin
  reached $150K, $250K, $500K, $1M and $2M. Bitcoin is given in BTC and
  valued at the live price unless -price is set.
  Amounts from flags are added to the ones of the inputs file.

Usage Examples:
$ perf networth -cash 20000 -btc 0.5 -liability mortgage=150000 -realestate 300000

`
}

func (c *networthCmd) SetFlags(f *flag.FlagSet) {
	c.amounts = make(map[networth.Category]*decimal.Decimal, len(networth.Categories))
	for _, cat := range networth.Categories {
		v := decimal.Zero
		c.amounts[cat] = &v
		name, unit := cat.String(), "USD"
		if cat == networth.Bitcoin {
			name, unit = "btc", "BTC"
		}
		f.Func(name, fmt.Sprintf("%s amount, in %s.", cat.Label(), unit), func(s string) error {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return err
			}
			v = v.Add(d)
			return nil
		})
	}
	f.Func("liability", "Liability as <name>=<usd>. Can be repeated.", func(s string) error {
		l, err := parseLiability(s)
		if err != nil {
			return err
		}
		c.liabilities = append(c.liabilities, l)
		return nil
	})
	f.StringVar(&c.inputs, "i", "", "Inputs file. See 'perf topic networth'.")
	f.StringVar(&c.price, "price", "", "Bitcoin price in USD. Fetched live if empty.")
	f.BoolVar(&c.json, "json", false, "Print the result as JSON.")
}

func (c *networthCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := newLogger()
	defer logger.Sync()

	var in networth.Inputs
	if c.inputs != "" {
		var err error
		if in, err = loadInputs(c.inputs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	for _, cat := range networth.Categories {
		if v := *c.amounts[cat]; !v.IsZero() {
			in.Assets = append(in.Assets, networth.Asset{Category: cat, Amount: v})
		}
	}
	in.Liabilities = append(in.Liabilities, c.liabilities...)

	price := decimal.Zero
	if c.price != "" {
		var err error
		if price, err = decimal.NewFromString(c.price); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid -price: %v\n", err)
			return subcommands.ExitUsageError
		}
	} else {
		u, err := newFeed(logger).Fetch(ctx)
		if err != nil {
			logger.Warn("bitcoin is valued at zero", zap.Error(err))
		} else {
			price = decimal.NewFromFloat(u.Price)
		}
	}

	r := networth.Compute(in, price)
	if c.json {
		if err := printJSON(r); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(r.Markdown())
	return subcommands.ExitSuccess
}

// parseLiability parses <name>=<amount>.
func parseLiability(s string) (networth.Liability, error) {
	name, amount, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(name) == "" {
		return networth.Liability{}, fmt.Errorf("liability %q is not <name>=<amount>", s)
	}
	v, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return networth.Liability{}, fmt.Errorf("liability %q: %w", s, err)
	}
	return networth.Liability{Name: strings.TrimSpace(name), Amount: v}, nil
}

// loadInputs reads the net worth inputs file.
func loadInputs(filename string) (networth.Inputs, error) {
	f, err := os.Open(filename)
	if err != nil {
		return networth.Inputs{}, err
	}
	defer f.Close()
	in, err := networth.DecodeInputs(f)
	if err != nil {
		return in, fmt.Errorf("%s: %w", filename, err)
	}
	return in, nil
}
