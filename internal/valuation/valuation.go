package valuation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"MarginEngine/internal/account"
	"MarginEngine/internal/oracle"
)

// ErrMissingPrice is returned when a position references a token index that
// the supplied price vector does not cover. A missing price is never
// treated as zero; that would silently report infinite leverage or zero
// equity and mask a real data problem.
var ErrMissingPrice = errors.New("valuation: missing price for token index")

// RatioInfinite is the sentinel collateral ratio for an account with zero
// liabilities. It doubles as the leverage sentinel for an account whose
// leverage is undefined (no positive equity against non-zero liabilities).
// The sentinel is deliberate and documented; NaN is never produced. How it
// renders (e.g. ">200") is a display concern.
var RatioInfinite = math.Inf(1)

// Snapshot is the full valuation of one account at one instant. It is
// computed fresh from a single consistent (position, prices) pair and
// always replaced wholesale, never patched field by field.
type Snapshot struct {
	AccountID   uuid.UUID
	AssetsValue float64
	LiabsValue  float64
	Equity      float64

	// CollateralRatio is AssetsValue / LiabsValue, or RatioInfinite when
	// LiabsValue is zero.
	CollateralRatio float64

	// Leverage is 1 / (CollateralRatio - 1). Zero when the account has no
	// liabilities; RatioInfinite when equity is non-positive or the ratio
	// is exactly 1.
	Leverage float64

	// Version is the engine-assigned monotonic tag used to discard stale
	// recomputations. Zero for snapshots computed outside an engine.
	Version uint64

	ComputedAt time.Time
}

// RatioIsInfinite reports whether the collateral ratio is the zero-liability
// sentinel.
func (s *Snapshot) RatioIsInfinite() bool {
	return math.IsInf(s.CollateralRatio, 1)
}

// LeverageIsInfinite reports whether leverage carries the undefined
// sentinel.
func (s *Snapshot) LeverageIsInfinite() bool {
	return math.IsInf(s.Leverage, 1)
}

// Compute values a position against a price vector.
//
// assetsValue sums deposits and both legs of every open-orders sub-account
// at current prices; liabsValue sums borrows. Summation walks token indices
// and the position's market list in order, so identical inputs produce
// bit-identical snapshots.
func Compute(pos *account.Position, prices oracle.PriceVector) (*Snapshot, error) {
	if max := pos.MaxTokenIndex(); max >= len(prices) {
		return nil, fmt.Errorf("%w: index %d, vector covers %d tokens", ErrMissingPrice, max, len(prices))
	}

	var assets float64
	for i, dep := range pos.Deposits {
		if dep > 0 {
			assets += dep * prices[i]
		}
	}
	for _, oo := range pos.OpenOrders {
		assets += (oo.BaseFree + oo.BaseLocked) * prices[oo.BaseIndex]
		assets += (oo.QuoteFree + oo.QuoteLocked) * prices[oo.QuoteIndex]
	}

	var liabs float64
	for i, bor := range pos.Borrows {
		if bor > 0 {
			liabs += bor * prices[i]
		}
	}

	snap := &Snapshot{
		AccountID:   pos.AccountID,
		AssetsValue: assets,
		LiabsValue:  liabs,
		Equity:      assets - liabs,
	}

	switch {
	case liabs == 0:
		snap.CollateralRatio = RatioInfinite
		snap.Leverage = 0
	default:
		snap.CollateralRatio = assets / liabs
		if snap.Equity <= 0 || snap.CollateralRatio <= 1 {
			// Ratio exactly 1 would divide by zero below; surface the
			// sentinel instead of a silent Inf/NaN.
			snap.Leverage = RatioInfinite
		} else {
			snap.Leverage = 1 / (snap.CollateralRatio - 1)
		}
	}

	return snap, nil
}
