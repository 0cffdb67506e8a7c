package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"MarginEngine/internal/account"
	"MarginEngine/internal/group"
	"MarginEngine/internal/observability"
	"MarginEngine/internal/oracle"
	"MarginEngine/internal/pnl"
	"MarginEngine/internal/risk"
	"MarginEngine/internal/valuation"

	"github.com/google/uuid"
)

// ErrStaleSnapshot is returned when a recomputation loses the race against
// a newer one for the same account. The stale result is discarded, never
// published.
var ErrStaleSnapshot = errors.New("engine: stale snapshot discarded")

// ErrUnknownAccount is returned when an account has no raw state yet.
var ErrUnknownAccount = errors.New("engine: unknown account")

// Update is one committed per-account recomputation: the valuation
// snapshot, its risk classification, and realized PNL over the account's
// deduplicated fill history at the same prices.
type Update struct {
	Snapshot *valuation.Snapshot
	Status   risk.Status
	PNL      float64

	// Position is the aggregated UI-unit position the snapshot was computed
	// from, exposed for balance displays alongside the valuation.
	Position *account.Position
}

type accountEntry struct {
	raw    *account.RawAccountState
	trades []pnl.Trade
	seen   map[string]bool

	nextVersion uint64
	committed   uint64
	latest      *Update
}

// Engine owns the latest raw state and fill history per account and
// recomputes full snapshots against freshly resolved price vectors.
//
// Recomputations may run concurrently; each one takes a version tag at
// start and commits only if no newer tag has committed since. Committed
// updates go to the persist channel (blocking, backpressure) and the
// projection channel (non-blocking, drop on full).
type Engine struct {
	group      *group.Group
	source     oracle.Source
	thresholds risk.Thresholds
	metrics    *observability.Metrics
	now        func() time.Time

	persistChan    chan<- Update
	projectionChan chan<- Update

	mu       sync.Mutex
	accounts map[uuid.UUID]*accountEntry
}

func New(
	g *group.Group,
	source oracle.Source,
	thresholds risk.Thresholds,
	persistChan, projectionChan chan<- Update,
	metrics *observability.Metrics,
) (*Engine, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if err := thresholds.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return &Engine{
		group:          g,
		source:         source,
		thresholds:     thresholds,
		metrics:        metrics,
		now:            time.Now,
		persistChan:    persistChan,
		projectionChan: projectionChan,
		accounts:       make(map[uuid.UUID]*accountEntry),
	}, nil
}

func (e *Engine) entry(id uuid.UUID) *accountEntry {
	ent, ok := e.accounts[id]
	if !ok {
		ent = &accountEntry{seen: make(map[string]bool)}
		e.accounts[id] = ent
		if e.metrics != nil {
			e.metrics.AccountsTracked.Set(float64(len(e.accounts)))
		}
	}
	return ent
}

// ApplyAccountState replaces the stored raw state for the account and
// recomputes its snapshot.
func (e *Engine) ApplyAccountState(ctx context.Context, raw *account.RawAccountState) (*Update, error) {
	e.mu.Lock()
	e.entry(raw.AccountID).raw = raw
	e.mu.Unlock()

	return e.Recompute(ctx, raw.AccountID)
}

// ApplyFills appends fills to the account's history, skipping any whose
// market/order/side key was seen before, and recomputes. Fills for
// accounts with no raw state yet are retained; the recompute fails with
// ErrUnknownAccount until the state arrives.
func (e *Engine) ApplyFills(ctx context.Context, accountID uuid.UUID, fills []pnl.Trade) (*Update, error) {
	e.mu.Lock()
	ent := e.entry(accountID)
	applied := 0
	for i := range fills {
		key := fills[i].Key()
		if ent.seen[key] {
			if e.metrics != nil {
				e.metrics.FillsDeduplicated.Inc()
			}
			continue
		}
		ent.seen[key] = true
		ent.trades = append(ent.trades, fills[i])
		applied++
	}
	e.mu.Unlock()

	if e.metrics != nil && applied > 0 {
		e.metrics.FillsApplied.Add(float64(applied))
	}
	return e.Recompute(ctx, accountID)
}

// Recompute runs the full pipeline for one account: resolve a price
// vector, aggregate the raw state, value it, classify risk, and fold the
// fill history into realized PNL — all against the same vector. The
// result commits only if it is still the newest recomputation for the
// account.
func (e *Engine) Recompute(ctx context.Context, accountID uuid.UUID) (*Update, error) {
	start := e.now()

	e.mu.Lock()
	ent, ok := e.accounts[accountID]
	if !ok || ent.raw == nil {
		e.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
	}
	ent.nextVersion++
	version := ent.nextVersion
	raw := ent.raw
	trades := ent.trades
	e.mu.Unlock()

	update, err := e.compute(ctx, raw, trades)
	if err != nil {
		if e.metrics != nil {
			e.metrics.RecomputeErrors.Inc()
		}
		return nil, err
	}
	update.Snapshot.Version = version
	update.Snapshot.ComputedAt = e.now()

	e.mu.Lock()
	if committed := ent.committed; version <= committed {
		e.mu.Unlock()
		if e.metrics != nil {
			e.metrics.StaleSnapshotsDiscarded.Inc()
		}
		return nil, fmt.Errorf("%w: account %s version %d <= committed %d",
			ErrStaleSnapshot, accountID, version, committed)
	}
	ent.committed = version
	ent.latest = update
	e.mu.Unlock()

	e.emit(*update)

	if e.metrics != nil {
		e.metrics.RecomputesTotal.Inc()
		e.metrics.RecomputeDuration.Observe(e.now().Sub(start).Seconds())
	}
	return update, nil
}

// RecomputeAll recomputes every tracked account with raw state. Accounts
// that fail are reported together; the rest still commit.
func (e *Engine) RecomputeAll(ctx context.Context) error {
	e.mu.Lock()
	ids := make([]uuid.UUID, 0, len(e.accounts))
	for id, ent := range e.accounts {
		if ent.raw != nil {
			ids = append(ids, id)
		}
	}
	e.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if _, err := e.Recompute(ctx, id); err != nil && !errors.Is(err, ErrStaleSnapshot) {
			errs = append(errs, fmt.Errorf("account %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

// Restore seeds an account from persisted state without recomputing:
// version counters resume above the last persisted snapshot and restored
// fills keep their dedup keys. Called once per account on warm start,
// before ingestion begins.
func (e *Engine) Restore(accountID uuid.UUID, version uint64, fills []pnl.Trade) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ent := e.entry(accountID)
	if version > ent.nextVersion {
		ent.nextVersion = version
		ent.committed = version
	}
	for i := range fills {
		key := fills[i].Key()
		if ent.seen[key] {
			continue
		}
		ent.seen[key] = true
		ent.trades = append(ent.trades, fills[i])
	}
}

// Latest returns the last committed update for the account, if any.
func (e *Engine) Latest(accountID uuid.UUID) (*Update, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent, ok := e.accounts[accountID]
	if !ok || ent.latest == nil {
		return nil, false
	}
	return ent.latest, true
}

func (e *Engine) compute(ctx context.Context, raw *account.RawAccountState, trades []pnl.Trade) (*Update, error) {
	prices, err := oracle.Resolve(ctx, e.source, e.group)
	if err != nil {
		return nil, err
	}

	pos, err := account.AggregatePosition(raw, e.group)
	if err != nil {
		return nil, err
	}

	snap, err := valuation.Compute(pos, prices)
	if err != nil {
		return nil, err
	}

	realized, err := pnl.Accumulate(trades, prices, e.group)
	if err != nil {
		return nil, err
	}

	return &Update{
		Snapshot: snap,
		Status:   risk.Classify(snap, e.thresholds),
		PNL:      realized,
		Position: pos,
	}, nil
}

// emit publishes a committed update. The persist send blocks so no
// committed snapshot is lost; the projection send drops on full since a
// reader can always re-query the latest state.
func (e *Engine) emit(u Update) {
	if e.persistChan != nil {
		e.persistChan <- u
	}
	if e.projectionChan != nil {
		select {
		case e.projectionChan <- u:
		default:
			if e.metrics != nil {
				e.metrics.ProjectionDrops.Inc()
			}
		}
	}
}
