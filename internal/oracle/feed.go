package oracle

import (
	"context"
	"fmt"
	"sync"
	"time"

	"MarginEngine/internal/group"
)

// Tick is one oracle price observation for a token symbol.
type Tick struct {
	Symbol    string
	Price     float64
	Sequence  int64
	Timestamp time.Time
}

// Feed is a Source backed by a stream of oracle ticks (NATS in production,
// direct Apply calls in tests). It caches the latest tick per symbol and
// serves Price from the cache, rejecting entries older than MaxAge.
//
// Apply is safe for concurrent use with Price.
type Feed struct {
	maxAge time.Duration
	now    func() time.Time

	mu    sync.RWMutex
	ticks map[string]Tick
}

// NewFeed creates a feed cache. maxAge <= 0 disables the staleness check.
func NewFeed(maxAge time.Duration) *Feed {
	return &Feed{
		maxAge: maxAge,
		now:    time.Now,
		ticks:  make(map[string]Tick),
	}
}

// Apply records a tick, keeping the newest observation per symbol.
// Out-of-order ticks (lower sequence than the cached one) are dropped;
// Apply reports whether the tick was recorded.
func (f *Feed) Apply(t Tick) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if prev, ok := f.ticks[t.Symbol]; ok && t.Sequence < prev.Sequence {
		return false
	}
	f.ticks[t.Symbol] = t
	return true
}

// Price implements Source. An uncached or stale symbol is a fetch failure.
func (f *Feed) Price(_ context.Context, token group.Token) (float64, error) {
	f.mu.RLock()
	t, ok := f.ticks[token.Symbol]
	f.mu.RUnlock()

	if !ok {
		return 0, fmt.Errorf("no tick for %s", token.Symbol)
	}
	if f.maxAge > 0 && f.now().Sub(t.Timestamp) > f.maxAge {
		return 0, fmt.Errorf("tick for %s is stale (age %s)", token.Symbol, f.now().Sub(t.Timestamp))
	}
	return t.Price, nil
}
