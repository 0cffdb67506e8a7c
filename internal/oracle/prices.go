package oracle

import (
	"context"
	"errors"
	"fmt"

	"MarginEngine/internal/group"
)

// ErrPriceUnavailable is returned when an oracle read fails, returns a
// non-positive value, or is too stale to use. A missing price is a fetch
// failure, never a zero price.
var ErrPriceUnavailable = errors.New("oracle: price unavailable")

// PriceVector maps token index to a positive price in the group's common
// quote unit. A resolved vector always has one entry per group token.
type PriceVector []float64

// Price returns the price for a token index, or false if the vector does
// not cover it.
func (pv PriceVector) Price(index int) (float64, bool) {
	if index < 0 || index >= len(pv) {
		return 0, false
	}
	return pv[index], true
}

// Clone returns an independent copy. Resolved vectors are treated as
// immutable snapshots; callers that need to hold one across recomputations
// copy it first.
func (pv PriceVector) Clone() PriceVector {
	out := make(PriceVector, len(pv))
	copy(out, pv)
	return out
}

// Source supplies one oracle price per token. Implementations own retries,
// caching and staleness policy; Resolve makes a single attempt per token.
type Source interface {
	Price(ctx context.Context, token group.Token) (float64, error)
}

// Resolve reads one price per group token from src. It fails with a
// wrapped ErrPriceUnavailable if any constituent read fails or returns a
// non-positive value; a partial vector is never returned.
func Resolve(ctx context.Context, src Source, g *group.Group) (PriceVector, error) {
	pv := make(PriceVector, g.NumTokens())
	for _, tok := range g.Tokens {
		p, err := src.Price(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrPriceUnavailable, tok.Symbol, err)
		}
		if p <= 0 {
			return nil, fmt.Errorf("%w: %s: non-positive price %v", ErrPriceUnavailable, tok.Symbol, p)
		}
		pv[tok.Index] = p
	}
	return pv, nil
}
