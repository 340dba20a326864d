package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/perfcompare/networth"
	"github.com/etnz/perfcompare/pricefeed"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type watchCmd struct {
	inputs string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "follow the bitcoin price and its effect on net worth" }
func (*watchCmd) Usage() string {
	return `perf watch [-i <inputs.json>]

  Polls the bitcoin price until interrupted, printing every update. With -i,
  the net worth of the inputs file is recomputed at each new price.
  Intervals are set by $PERF_UPDATE_INTERVAL and $PERF_RETRY_INTERVAL.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputs, "i", "", "Net worth inputs file. See 'perf topic networth'.")
}

func (c *watchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := newLogger()
	defer logger.Sync()

	var in *networth.Inputs
	if c.inputs != "" {
		loaded, err := loadInputs(c.inputs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		in = &loaded
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	feed := newFeed(logger)
	updates := feed.Subscribe()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return feed.Run(ctx) })
	g.Go(func() error {
		for u := range updates {
			fmt.Printf("%s  %s\n", u, pricefeed.TimeSince(time.Since(u.At)))
			if in != nil {
				r := networth.Compute(*in, decimal.NewFromFloat(u.Price))
				fmt.Printf("  net worth %s  %s\n", networth.FormatUSD(r.NetWorth), r.Hint())
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watch stopped", zap.Error(err))
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// newFeed returns a price feed configured from the environment.
func newFeed(logger *zap.Logger) *pricefeed.Feed {
	feed := pricefeed.New(logger, config.Sources()...)
	feed.UpdateInterval = config.UpdateInterval
	feed.RetryInterval = config.RetryInterval
	return feed
}
