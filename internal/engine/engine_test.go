package engine_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"MarginEngine/internal/account"
	"MarginEngine/internal/engine"
	"MarginEngine/internal/group"
	"MarginEngine/internal/oracle"
	"MarginEngine/internal/pnl"
	"MarginEngine/internal/risk"

	"github.com/google/uuid"
)

type mapSource map[string]float64

func (m mapSource) Price(_ context.Context, tok group.Token) (float64, error) {
	p, ok := m[tok.Symbol]
	if !ok {
		return 0, errors.New("no price")
	}
	return p, nil
}

// blockOnceSource parks the next Price call after Arm, letting a test
// interleave two recomputations deterministically.
type blockOnceSource struct {
	inner   oracle.Source
	armed   atomic.Bool
	entered chan struct{}
	release chan struct{}
}

func (b *blockOnceSource) Price(ctx context.Context, tok group.Token) (float64, error) {
	if b.armed.CompareAndSwap(true, false) {
		b.entered <- struct{}{}
		<-b.release
	}
	return b.inner.Price(ctx, tok)
}

func testGroup() *group.Group {
	return group.DefaultGroup()
}

func newRaw(id uuid.UUID) *account.RawAccountState {
	return &account.RawAccountState{
		AccountID: id,
		Deposits:  []int64{150_000_000, 0, 0}, // 150 BTC at 6 decimals
		Borrows:   []int64{0, 0, 0},
	}
}

func prices() mapSource {
	return mapSource{"BTC": 50_000, "ETH": 3_000, "USDC": 1}
}

func newEngine(t *testing.T, src oracle.Source, persist, projection chan engine.Update) *engine.Engine {
	t.Helper()
	e, err := engine.New(testGroup(), src, risk.DefaultThresholds(), persist, projection, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func TestEngine_ApplyAccountState(t *testing.T) {
	persist := make(chan engine.Update, 4)
	e := newEngine(t, prices(), persist, nil)
	id := uuid.New()

	update, err := e.ApplyAccountState(context.Background(), newRaw(id))
	if err != nil {
		t.Fatalf("ApplyAccountState failed: %v", err)
	}

	if got, want := update.Snapshot.AssetsValue, 7_500_000.0; got != want {
		t.Errorf("assets: got %v, want %v", got, want)
	}
	if update.Snapshot.Version != 1 {
		t.Errorf("version: got %d, want 1", update.Snapshot.Version)
	}
	if update.Status != risk.StatusHealthy {
		t.Errorf("status: got %s, want Healthy", update.Status)
	}
	if update.Snapshot.ComputedAt.IsZero() {
		t.Error("ComputedAt not set")
	}

	select {
	case got := <-persist:
		if got.Snapshot.AccountID != id {
			t.Errorf("persisted account: got %s, want %s", got.Snapshot.AccountID, id)
		}
	default:
		t.Error("no update on persist channel")
	}

	latest, ok := e.Latest(id)
	if !ok {
		t.Fatal("Latest: no committed update")
	}
	if latest.Snapshot.Version != update.Snapshot.Version {
		t.Errorf("Latest version: got %d, want %d", latest.Snapshot.Version, update.Snapshot.Version)
	}
}

func TestEngine_VersionsAreMonotonic(t *testing.T) {
	persist := make(chan engine.Update, 8)
	e := newEngine(t, prices(), persist, nil)
	id := uuid.New()

	if _, err := e.ApplyAccountState(context.Background(), newRaw(id)); err != nil {
		t.Fatal(err)
	}
	for want := uint64(2); want <= 4; want++ {
		update, err := e.Recompute(context.Background(), id)
		if err != nil {
			t.Fatalf("Recompute %d failed: %v", want, err)
		}
		if update.Snapshot.Version != want {
			t.Errorf("got version %d, want %d", update.Snapshot.Version, want)
		}
	}
}

func TestEngine_StaleRecomputeDiscarded(t *testing.T) {
	src := &blockOnceSource{
		inner:   prices(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	persist := make(chan engine.Update, 8)
	e := newEngine(t, src, persist, nil)
	id := uuid.New()

	if _, err := e.ApplyAccountState(context.Background(), newRaw(id)); err != nil {
		t.Fatal(err)
	}

	// Slow recompute takes its version tag, then parks in the price resolve.
	src.armed.Store(true)
	slowErr := make(chan error, 1)
	go func() {
		_, err := e.Recompute(context.Background(), id)
		slowErr <- err
	}()
	<-src.entered

	// Fast recompute starts later but commits first.
	fast, err := e.Recompute(context.Background(), id)
	if err != nil {
		t.Fatalf("fast recompute failed: %v", err)
	}

	// The slow one finishes with an older tag and must be discarded.
	close(src.release)
	if err := <-slowErr; !errors.Is(err, engine.ErrStaleSnapshot) {
		t.Errorf("slow recompute: got %v, want ErrStaleSnapshot", err)
	}

	latest, ok := e.Latest(id)
	if !ok || latest.Snapshot.Version != fast.Snapshot.Version {
		t.Error("Latest does not reflect the committed recompute")
	}
}

func TestEngine_ApplyFills(t *testing.T) {
	persist := make(chan engine.Update, 8)
	e := newEngine(t, prices(), persist, nil)
	id := uuid.New()

	if _, err := e.ApplyAccountState(context.Background(), newRaw(id)); err != nil {
		t.Fatal(err)
	}

	fill := pnl.Trade{
		Market:                 "BTC/USDC",
		OrderID:                "o-1",
		Side:                   pnl.SideSell,
		Size:                   1,
		Price:                  51_000,
		NativeQuantityReleased: 51_000_000_000,
	}
	buy := pnl.Trade{
		Market:             "BTC/USDC",
		OrderID:            "o-0",
		Side:               pnl.SideBuy,
		Size:               1,
		Price:              50_000,
		NativeQuantityPaid: 50_000_000_000,
	}

	update, err := e.ApplyFills(context.Background(), id, []pnl.Trade{buy, fill})
	if err != nil {
		t.Fatalf("ApplyFills failed: %v", err)
	}
	if got, want := update.PNL, 1_000.0; got != want {
		t.Errorf("pnl: got %v, want %v", got, want)
	}

	// Re-delivering the same fills must not double-count.
	update, err = e.ApplyFills(context.Background(), id, []pnl.Trade{buy, fill})
	if err != nil {
		t.Fatalf("ApplyFills redelivery failed: %v", err)
	}
	if got, want := update.PNL, 1_000.0; got != want {
		t.Errorf("pnl after redelivery: got %v, want %v", got, want)
	}
}

func TestEngine_UnknownAccount(t *testing.T) {
	e := newEngine(t, prices(), nil, nil)

	_, err := e.Recompute(context.Background(), uuid.New())
	if !errors.Is(err, engine.ErrUnknownAccount) {
		t.Errorf("got %v, want ErrUnknownAccount", err)
	}
}

func TestEngine_FillsBeforeStateRetained(t *testing.T) {
	e := newEngine(t, prices(), nil, nil)
	id := uuid.New()

	fill := pnl.Trade{
		Market: "BTC/USDC", OrderID: "o-1", Side: pnl.SideBuy,
		Size: 1, Price: 50_000, NativeQuantityPaid: 50_000_000_000,
	}
	if _, err := e.ApplyFills(context.Background(), id, []pnl.Trade{fill}); !errors.Is(err, engine.ErrUnknownAccount) {
		t.Fatalf("got %v, want ErrUnknownAccount", err)
	}

	// Once state arrives the retained fill participates in PNL.
	update, err := e.ApplyAccountState(context.Background(), newRaw(id))
	if err != nil {
		t.Fatalf("ApplyAccountState failed: %v", err)
	}
	if got, want := update.PNL, 0.0; got != want {
		// buy 1 BTC valued at 50k minus 50k quote paid nets to zero
		t.Errorf("pnl: got %v, want %v", got, want)
	}
}

func TestEngine_PriceFailureFailsRecompute(t *testing.T) {
	src := mapSource{"BTC": 50_000, "USDC": 1} // no ETH
	e := newEngine(t, src, nil, nil)
	id := uuid.New()

	_, err := e.ApplyAccountState(context.Background(), newRaw(id))
	if !errors.Is(err, oracle.ErrPriceUnavailable) {
		t.Errorf("got %v, want ErrPriceUnavailable", err)
	}
	if _, ok := e.Latest(id); ok {
		t.Error("failed recompute must not commit a snapshot")
	}
}

func TestEngine_RecomputeAll(t *testing.T) {
	persist := make(chan engine.Update, 8)
	e := newEngine(t, prices(), persist, nil)

	a, b := uuid.New(), uuid.New()
	if _, err := e.ApplyAccountState(context.Background(), newRaw(a)); err != nil {
		t.Fatal(err)
	}
	if _, err := e.ApplyAccountState(context.Background(), newRaw(b)); err != nil {
		t.Fatal(err)
	}

	if err := e.RecomputeAll(context.Background()); err != nil {
		t.Fatalf("RecomputeAll failed: %v", err)
	}
	for _, id := range []uuid.UUID{a, b} {
		latest, ok := e.Latest(id)
		if !ok || latest.Snapshot.Version != 2 {
			t.Errorf("account %s: want version 2 after RecomputeAll", id)
		}
	}
}
