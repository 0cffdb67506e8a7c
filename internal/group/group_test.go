package group_test

import (
	"testing"

	"MarginEngine/internal/group"
)

func TestDefaultGroup_Valid(t *testing.T) {
	g := group.DefaultGroup()
	if err := g.Validate(); err != nil {
		t.Errorf("default group should validate: %v", err)
	}
	if g.NumTokens() != 3 {
		t.Errorf("got %d tokens, want 3", g.NumTokens())
	}
}

func TestTokenBySymbol(t *testing.T) {
	g := group.DefaultGroup()

	btc, ok := g.TokenBySymbol("BTC")
	if !ok {
		t.Fatal("BTC should be in the default group")
	}
	if btc.Index != 0 || btc.Decimals != 6 {
		t.Errorf("BTC: got index=%d decimals=%d", btc.Index, btc.Decimals)
	}

	if _, ok := g.TokenBySymbol("DOGE"); ok {
		t.Error("DOGE should not be in the default group")
	}
}

func TestMarketByName(t *testing.T) {
	g := group.DefaultGroup()

	m, ok := g.MarketByName("BTC/USDC")
	if !ok {
		t.Fatal("BTC/USDC should be in the default group")
	}
	if m.BaseIndex != 0 || m.QuoteIndex != 2 {
		t.Errorf("BTC/USDC: got base=%d quote=%d, want 0/2", m.BaseIndex, m.QuoteIndex)
	}

	if _, ok := g.MarketByName("SOL/USDC"); ok {
		t.Error("SOL/USDC should not be in the default group")
	}
}

func TestValidate_NonContiguousIndex(t *testing.T) {
	g := &group.Group{
		Name: "bad",
		Tokens: []group.Token{
			{Symbol: "BTC", Decimals: 6, Index: 1},
		},
	}
	if err := g.Validate(); err == nil {
		t.Error("expected error for non-contiguous token index")
	}
}

func TestValidate_DuplicateSymbol(t *testing.T) {
	g := &group.Group{
		Name: "bad",
		Tokens: []group.Token{
			{Symbol: "BTC", Decimals: 6, Index: 0},
			{Symbol: "BTC", Decimals: 6, Index: 1},
		},
	}
	if err := g.Validate(); err == nil {
		t.Error("expected error for duplicate symbol")
	}
}

func TestValidate_MarketLegOutOfRange(t *testing.T) {
	g := &group.Group{
		Name: "bad",
		Tokens: []group.Token{
			{Symbol: "BTC", Decimals: 6, Index: 0},
			{Symbol: "USDC", Decimals: 6, Index: 1},
		},
		Markets: []group.Market{
			{Name: "BTC/USDC", BaseIndex: 0, QuoteIndex: 5},
		},
	}
	if err := g.Validate(); err == nil {
		t.Error("expected error for out-of-range quote index")
	}
}

func TestValidate_SelfMarket(t *testing.T) {
	g := &group.Group{
		Name: "bad",
		Tokens: []group.Token{
			{Symbol: "BTC", Decimals: 6, Index: 0},
			{Symbol: "USDC", Decimals: 6, Index: 1},
		},
		Markets: []group.Market{
			{Name: "BTC/BTC", BaseIndex: 0, QuoteIndex: 0},
		},
	}
	if err := g.Validate(); err == nil {
		t.Error("expected error for market with identical legs")
	}
}

func TestValidate_EmptyGroup(t *testing.T) {
	g := &group.Group{Name: "empty"}
	if err := g.Validate(); err == nil {
		t.Error("expected error for empty token list")
	}
}
