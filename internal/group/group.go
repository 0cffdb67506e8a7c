package group

import (
	"fmt"

	"MarginEngine/internal/numeric"
)

// Token is one asset in a group's fixed token list. Index is the token's
// position in that list and is the array key for every per-token vector in
// the engine (deposits, borrows, prices).
type Token struct {
	Symbol   string
	Decimals int
	Index    int
}

// Market is one spot market in the group, identified by its base and quote
// token indices.
type Market struct {
	Name       string
	BaseIndex  int
	QuoteIndex int
}

// Group is the fixed set of tradable tokens and markets configured for one
// instance of the venue. Loaded once and immutable for the engine's
// lifetime; reconfiguring a group requires a fresh engine instance.
type Group struct {
	Name    string
	Tokens  []Token
	Markets []Market
}

// DefaultGroup returns the stock BTC_ETH_USDC group.
func DefaultGroup() *Group {
	return &Group{
		Name: "BTC_ETH_USDC",
		Tokens: []Token{
			{Symbol: "BTC", Decimals: 6, Index: 0},
			{Symbol: "ETH", Decimals: 6, Index: 1},
			{Symbol: "USDC", Decimals: 6, Index: 2},
		},
		Markets: []Market{
			{Name: "BTC/USDC", BaseIndex: 0, QuoteIndex: 2},
			{Name: "ETH/USDC", BaseIndex: 1, QuoteIndex: 2},
		},
	}
}

// NumTokens returns the size of the group's token list.
func (g *Group) NumTokens() int {
	return len(g.Tokens)
}

// TokenBySymbol looks up a token by its symbol.
func (g *Group) TokenBySymbol(symbol string) (Token, bool) {
	for _, t := range g.Tokens {
		if t.Symbol == symbol {
			return t, true
		}
	}
	return Token{}, false
}

// MarketByName looks up a market by its name (e.g. "BTC/USDC").
func (g *Group) MarketByName(name string) (Market, bool) {
	for _, m := range g.Markets {
		if m.Name == name {
			return m, true
		}
	}
	return Market{}, false
}

// Validate checks group structural invariants: non-empty token list, stable
// contiguous indices, unique symbols, supported decimals, and markets whose
// legs reference known tokens.
func (g *Group) Validate() error {
	if len(g.Tokens) == 0 {
		return fmt.Errorf("group %s: empty token list", g.Name)
	}

	seen := make(map[string]bool, len(g.Tokens))
	for i, t := range g.Tokens {
		if t.Index != i {
			return fmt.Errorf("group %s: token %s has index %d, want %d", g.Name, t.Symbol, t.Index, i)
		}
		if t.Symbol == "" {
			return fmt.Errorf("group %s: token at index %d has empty symbol", g.Name, i)
		}
		if seen[t.Symbol] {
			return fmt.Errorf("group %s: duplicate token symbol %s", g.Name, t.Symbol)
		}
		seen[t.Symbol] = true
		if t.Decimals < 0 || t.Decimals > numeric.MaxDecimals {
			return fmt.Errorf("group %s: token %s has unsupported decimals %d", g.Name, t.Symbol, t.Decimals)
		}
	}

	names := make(map[string]bool, len(g.Markets))
	for _, m := range g.Markets {
		if m.Name == "" {
			return fmt.Errorf("group %s: market with empty name", g.Name)
		}
		if names[m.Name] {
			return fmt.Errorf("group %s: duplicate market %s", g.Name, m.Name)
		}
		names[m.Name] = true
		if m.BaseIndex < 0 || m.BaseIndex >= len(g.Tokens) {
			return fmt.Errorf("group %s: market %s base index %d out of range", g.Name, m.Name, m.BaseIndex)
		}
		if m.QuoteIndex < 0 || m.QuoteIndex >= len(g.Tokens) {
			return fmt.Errorf("group %s: market %s quote index %d out of range", g.Name, m.Name, m.QuoteIndex)
		}
		if m.BaseIndex == m.QuoteIndex {
			return fmt.Errorf("group %s: market %s base and quote are the same token", g.Name, m.Name)
		}
	}

	return nil
}
