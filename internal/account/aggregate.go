package account

import (
	"errors"
	"fmt"

	"MarginEngine/internal/group"
	"MarginEngine/internal/numeric"
)

// ErrInvalidPosition is returned when the raw account state is malformed:
// negative native quantities, free exceeding total, vector lengths that do
// not match the group's token list, or an open-orders market unknown to
// the group.
var ErrInvalidPosition = errors.New("account: invalid raw account state")

// AggregatePosition reduces one consistent read of raw account state into a
// normalized UI-unit position vector for the given group. The input is
// never mutated; the output is a fresh structure.
//
// Native quantities convert to UI units through numeric.ToUI, so a quantity
// that cannot round-trip through float64 fails with
// numeric.ErrPrecisionOverflow rather than silently losing precision.
func AggregatePosition(raw *RawAccountState, g *group.Group) (*Position, error) {
	n := g.NumTokens()
	if len(raw.Deposits) != n {
		return nil, fmt.Errorf("%w: %d deposit entries for %d tokens", ErrInvalidPosition, len(raw.Deposits), n)
	}
	if len(raw.Borrows) != n {
		return nil, fmt.Errorf("%w: %d borrow entries for %d tokens", ErrInvalidPosition, len(raw.Borrows), n)
	}

	pos := &Position{
		AccountID: raw.AccountID,
		Deposits:  make([]float64, n),
		Borrows:   make([]float64, n),
	}

	for i, tok := range g.Tokens {
		if raw.Deposits[i] < 0 {
			return nil, fmt.Errorf("%w: negative deposit %d for %s", ErrInvalidPosition, raw.Deposits[i], tok.Symbol)
		}
		if raw.Borrows[i] < 0 {
			return nil, fmt.Errorf("%w: negative borrow %d for %s", ErrInvalidPosition, raw.Borrows[i], tok.Symbol)
		}

		dep, err := numeric.ToUI(raw.Deposits[i], tok.Decimals)
		if err != nil {
			return nil, fmt.Errorf("deposit %s: %w", tok.Symbol, err)
		}
		bor, err := numeric.ToUI(raw.Borrows[i], tok.Decimals)
		if err != nil {
			return nil, fmt.Errorf("borrow %s: %w", tok.Symbol, err)
		}
		pos.Deposits[i] = dep
		pos.Borrows[i] = bor
	}

	for _, oo := range raw.OpenOrders {
		mkt, ok := g.MarketByName(oo.Market)
		if !ok {
			return nil, fmt.Errorf("%w: unknown market %s", ErrInvalidPosition, oo.Market)
		}

		bal, err := convertOpenOrders(oo, mkt, g)
		if err != nil {
			return nil, err
		}
		pos.OpenOrders = append(pos.OpenOrders, bal)
	}

	return pos, nil
}

func convertOpenOrders(oo RawOpenOrders, mkt group.Market, g *group.Group) (OpenOrdersBalance, error) {
	if oo.BaseTotal < 0 || oo.BaseFree < 0 || oo.QuoteTotal < 0 || oo.QuoteFree < 0 {
		return OpenOrdersBalance{}, fmt.Errorf("%w: negative open-orders quantity on %s", ErrInvalidPosition, oo.Market)
	}
	if oo.BaseFree > oo.BaseTotal {
		return OpenOrdersBalance{}, fmt.Errorf("%w: base free %d exceeds total %d on %s",
			ErrInvalidPosition, oo.BaseFree, oo.BaseTotal, oo.Market)
	}
	if oo.QuoteFree > oo.QuoteTotal {
		return OpenOrdersBalance{}, fmt.Errorf("%w: quote free %d exceeds total %d on %s",
			ErrInvalidPosition, oo.QuoteFree, oo.QuoteTotal, oo.Market)
	}

	baseDec := g.Tokens[mkt.BaseIndex].Decimals
	quoteDec := g.Tokens[mkt.QuoteIndex].Decimals

	baseFree, err := numeric.ToUI(oo.BaseFree, baseDec)
	if err != nil {
		return OpenOrdersBalance{}, fmt.Errorf("open orders %s base free: %w", oo.Market, err)
	}
	baseLocked, err := numeric.ToUI(oo.BaseTotal-oo.BaseFree, baseDec)
	if err != nil {
		return OpenOrdersBalance{}, fmt.Errorf("open orders %s base locked: %w", oo.Market, err)
	}
	quoteFree, err := numeric.ToUI(oo.QuoteFree, quoteDec)
	if err != nil {
		return OpenOrdersBalance{}, fmt.Errorf("open orders %s quote free: %w", oo.Market, err)
	}
	quoteLocked, err := numeric.ToUI(oo.QuoteTotal-oo.QuoteFree, quoteDec)
	if err != nil {
		return OpenOrdersBalance{}, fmt.Errorf("open orders %s quote locked: %w", oo.Market, err)
	}

	return OpenOrdersBalance{
		Market:      oo.Market,
		BaseIndex:   mkt.BaseIndex,
		QuoteIndex:  mkt.QuoteIndex,
		BaseFree:    baseFree,
		BaseLocked:  baseLocked,
		QuoteFree:   quoteFree,
		QuoteLocked: quoteLocked,
	}, nil
}
