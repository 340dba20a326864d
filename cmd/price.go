package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfcompare/pricefeed"
	"github.com/google/subcommands"
)

type priceCmd struct {
	json bool
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the live bitcoin price" }
func (*priceCmd) Usage() string {
	return `perf price [-json]

  Fetches the bitcoin price, its 24h change, market cap and volume from
  CoinGecko, or CoinCap when CoinGecko does not answer.
  See 'perf topic price' to configure the sources.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "Print the quote as JSON.")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := newLogger()
	defer logger.Sync()

	u, err := newFeed(logger).Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		if err := printJSON(u); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	fmt.Println(u)
	fmt.Printf("volume 24h %s  from %s\n", pricefeed.FormatLargeNumber(u.Volume24h), u.Source)
	return subcommands.ExitSuccess
}
