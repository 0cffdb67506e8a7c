package pnl

import (
	"errors"
	"fmt"

	"MarginEngine/internal/group"
	"MarginEngine/internal/numeric"
	"MarginEngine/internal/oracle"
	"MarginEngine/internal/valuation"
)

// ErrUnknownMarket is returned when a fill references a market outside the
// group's market list. Token indices for PNL are always resolved from the
// group, never hard-coded per market.
var ErrUnknownMarket = errors.New("pnl: market not in group")

// Accumulate folds a deduplicated trade list into total realized PNL at
// current prices.
//
// Per market, fill sizes net into a signed position delta (+buy, -sell)
// valued at the base token's current price. Separately, the signed native
// quote flow (paid on buys, released on sells) converts to UI units through
// the quote token's decimals. The total is the sum of both terms.
//
// Folding is idempotent over a fixed input list; iteration over the
// group's market and token order keeps the result deterministic.
func Accumulate(trades []Trade, prices oracle.PriceVector, g *group.Group) (float64, error) {
	deltas := make(map[string]float64)
	quoteFlows := make(map[int]int64)

	for i := range trades {
		t := &trades[i]
		mkt, ok := g.MarketByName(t.Market)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownMarket, t.Market)
		}

		switch t.Side {
		case SideBuy:
			deltas[t.Market] += t.Size
			quoteFlows[mkt.QuoteIndex] -= t.NativeQuantityPaid
		case SideSell:
			deltas[t.Market] -= t.Size
			quoteFlows[mkt.QuoteIndex] += t.NativeQuantityReleased
		default:
			return 0, fmt.Errorf("pnl: fill %s has unknown side %d", t.Key(), t.Side)
		}
	}

	var total float64

	for _, mkt := range g.Markets {
		delta, ok := deltas[mkt.Name]
		if !ok {
			continue
		}
		price, ok := prices.Price(mkt.BaseIndex)
		if !ok {
			return 0, fmt.Errorf("%w: index %d (market %s)", valuation.ErrMissingPrice, mkt.BaseIndex, mkt.Name)
		}
		total += delta * price
	}

	for _, tok := range g.Tokens {
		flow, ok := quoteFlows[tok.Index]
		if !ok {
			continue
		}
		ui, err := numeric.SignedToUI(flow, tok.Decimals)
		if err != nil {
			return 0, fmt.Errorf("quote flow %s: %w", tok.Symbol, err)
		}
		total += ui
	}

	return total, nil
}
