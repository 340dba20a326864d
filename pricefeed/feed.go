// Package pricefeed polls public market APIs for the live bitcoin price.
//
// Sources are queried in order until one answers. A Feed refreshes the quote
// every UpdateInterval and retries after RetryInterval when every source failed.
// Each new quote is published to the subscribers.
package pricefeed

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Default polling intervals.
const (
	DefaultUpdateInterval = 60 * time.Second
	DefaultRetryInterval  = 15 * time.Second
)

// Update is a quote and where and when it was fetched.
type Update struct {
	Quote
	Source string    `json:"source"`
	At     time.Time `json:"at"`
}

// Feed polls its sources for quotes.
type Feed struct {
	Sources        []Source
	Client         *http.Client
	Logger         *zap.Logger
	UpdateInterval time.Duration
	RetryInterval  time.Duration

	// group coalesces concurrent fetches.
	group       singleflight.Group
	mu          sync.Mutex
	latest      *Update
	subscribers []chan Update
}

// New returns a Feed over sources with the default intervals.
// A nil logger logs nothing.
func New(logger *zap.Logger, sources ...Source) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		Sources:        sources,
		Client:         &http.Client{Timeout: 10 * time.Second},
		Logger:         logger,
		UpdateInterval: DefaultUpdateInterval,
		RetryInterval:  DefaultRetryInterval,
	}
}

// Fetch queries the sources in order and returns the first quote.
// When every source fails the error joins each failure.
//
// Concurrent calls share the same queries. A caller whose ctx is done
// returns early, the shared queries go on for the others, bounded by the
// client timeout.
func (f *Feed) Fetch(ctx context.Context) (Update, error) {
	shared := context.WithoutCancel(ctx)
	ch := f.group.DoChan("quote", func() (any, error) { return f.fetch(shared) })
	select {
	case <-ctx.Done():
		return Update{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Update{}, res.Err
		}
		return res.Val.(Update), nil
	}
}

func (f *Feed) fetch(ctx context.Context) (Update, error) {
	if len(f.Sources) == 0 {
		return Update{}, errors.New("no price source configured")
	}
	var errs []error
	for _, s := range f.Sources {
		q, err := s.fetch(ctx, f.Client)
		if err != nil {
			f.Logger.Debug("price source failed", zap.String("source", s.Name), zap.Error(err))
			errs = append(errs, err)
			if ctx.Err() != nil {
				break
			}
			continue
		}
		f.Logger.Debug("price fetched", zap.String("source", s.Name), zap.Float64("price", q.Price))
		return Update{Quote: q, Source: s.Name, At: time.Now()}, nil
	}
	return Update{}, fmt.Errorf("cannot fetch bitcoin price: %w", errors.Join(errs...))
}

// Latest returns the last published update, if any.
func (f *Feed) Latest() (Update, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latest == nil {
		return Update{}, false
	}
	return *f.latest, true
}

// Subscribe returns a channel receiving every new update. It is closed when
// Run returns. A subscriber that does not keep up only sees the newest update.
func (f *Feed) Subscribe() <-chan Update {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan Update, 1)
	f.subscribers = append(f.subscribers, ch)
	return ch
}

func (f *Feed) publish(u Update) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.latest = &u
	for _, ch := range f.subscribers {
		select {
		case ch <- u:
		default:
			// drop the stale update
			select {
			case <-ch:
			default:
			}
			ch <- u
		}
	}
}

func (f *Feed) close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subscribers {
		close(ch)
	}
	f.subscribers = nil
}

// Run polls the sources until ctx is done, then closes the subscriber
// channels and returns the context error.
func (f *Feed) Run(ctx context.Context) error {
	defer f.close()
	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		next := f.UpdateInterval
		u, err := f.Fetch(ctx)
		switch {
		case ctx.Err() != nil:
			return ctx.Err()
		case err != nil:
			f.Logger.Warn("price update failed", zap.Error(err), zap.Duration("retry", f.RetryInterval))
			next = f.RetryInterval
		default:
			f.publish(u)
		}
		timer.Reset(next)
	}
}
