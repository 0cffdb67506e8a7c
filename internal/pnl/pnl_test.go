package pnl_test

import (
	"errors"
	"math"
	"testing"

	"MarginEngine/internal/group"
	"MarginEngine/internal/oracle"
	"MarginEngine/internal/pnl"
)

var testPrices = oracle.PriceVector{50_000, 3_000, 1}

func TestAccumulate_RoundTripTrade(t *testing.T) {
	// Buy 1 BTC at 50000, sell 1 BTC at 51000: flat position, +1000 quote.
	trades := []pnl.Trade{
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideBuy, Size: 1, Price: 50_000, NativeQuantityPaid: 50_000_000_000},
		{Market: "BTC/USDC", OrderID: "2", Side: pnl.SideSell, Size: 1, Price: 51_000, NativeQuantityReleased: 51_000_000_000},
	}

	total, err := pnl.Accumulate(trades, testPrices, group.DefaultGroup())
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	if math.Abs(total-1_000) > 1e-9 {
		t.Errorf("got %v, want 1000", total)
	}
}

func TestAccumulate_OpenPositionValuedAtCurrentPrice(t *testing.T) {
	// Buy 2 BTC at 48000 each; position delta 2 valued at current 50000.
	trades := []pnl.Trade{
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideBuy, Size: 2, Price: 48_000, NativeQuantityPaid: 96_000_000_000},
	}

	total, err := pnl.Accumulate(trades, testPrices, group.DefaultGroup())
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	// 2*50000 - 96000 = +4000 unrealized gain at current price.
	if math.Abs(total-4_000) > 1e-9 {
		t.Errorf("got %v, want 4000", total)
	}
}

func TestAccumulate_MultiMarket(t *testing.T) {
	trades := []pnl.Trade{
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideBuy, Size: 1, Price: 50_000, NativeQuantityPaid: 50_000_000_000},
		{Market: "BTC/USDC", OrderID: "2", Side: pnl.SideSell, Size: 1, Price: 50_500, NativeQuantityReleased: 50_500_000_000},
		{Market: "ETH/USDC", OrderID: "3", Side: pnl.SideBuy, Size: 10, Price: 2_900, NativeQuantityPaid: 29_000_000_000},
	}

	total, err := pnl.Accumulate(trades, testPrices, group.DefaultGroup())
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	// BTC: +500. ETH: 10*3000 - 29000 = +1000.
	if math.Abs(total-1_500) > 1e-9 {
		t.Errorf("got %v, want 1500", total)
	}
}

func TestAccumulate_Idempotent(t *testing.T) {
	trades := []pnl.Trade{
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideBuy, Size: 1, Price: 50_000, NativeQuantityPaid: 50_000_000_000},
		{Market: "ETH/USDC", OrderID: "2", Side: pnl.SideSell, Size: 3, Price: 3_100, NativeQuantityReleased: 9_300_000_000},
	}
	g := group.DefaultGroup()

	a, err := pnl.Accumulate(trades, testPrices, g)
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	b, err := pnl.Accumulate(trades, testPrices, g)
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	if a != b {
		t.Errorf("re-running over the same list changed the result: %v vs %v", a, b)
	}
}

func TestAccumulate_DedupeBoundary(t *testing.T) {
	base := []pnl.Trade{
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideBuy, Size: 1, Price: 50_000, NativeQuantityPaid: 50_000_000_000},
		{Market: "BTC/USDC", OrderID: "2", Side: pnl.SideSell, Size: 1, Price: 51_000, NativeQuantityReleased: 51_000_000_000},
	}
	// Exact duplicate of the sell: same market, orderID, side.
	withDup := append(append([]pnl.Trade{}, base...), base[1])
	g := group.DefaultGroup()

	clean, err := pnl.Accumulate(base, testPrices, g)
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}

	deduped, err := pnl.Accumulate(pnl.Dedupe(withDup), testPrices, g)
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	if deduped != clean {
		t.Errorf("deduped total %v differs from clean total %v", deduped, clean)
	}

	// Skipping dedupe double-counts: the duplicate sell adds -1 delta and
	// +51000 quote flow, increasing PNL magnitude.
	skipped, err := pnl.Accumulate(withDup, testPrices, g)
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	if skipped == clean {
		t.Error("skipping dedupe should change the total")
	}
	if math.Abs(skipped) <= math.Abs(clean) {
		t.Errorf("duplicate should increase magnitude: clean %v, skipped %v", clean, skipped)
	}
}

func TestDedupe_PreservesOrder(t *testing.T) {
	trades := []pnl.Trade{
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideBuy},
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideSell}, // same order, other side: kept
		{Market: "BTC/USDC", OrderID: "1", Side: pnl.SideBuy},  // duplicate: dropped
		{Market: "ETH/USDC", OrderID: "1", Side: pnl.SideBuy},  // other market: kept
	}

	out := pnl.Dedupe(trades)
	if len(out) != 3 {
		t.Fatalf("got %d trades, want 3", len(out))
	}
	if out[0].Side != pnl.SideBuy || out[1].Side != pnl.SideSell || out[2].Market != "ETH/USDC" {
		t.Errorf("order not preserved: %+v", out)
	}
}

func TestAccumulate_UnknownMarket(t *testing.T) {
	trades := []pnl.Trade{
		{Market: "SOL/USDC", OrderID: "1", Side: pnl.SideBuy, Size: 1},
	}
	_, err := pnl.Accumulate(trades, testPrices, group.DefaultGroup())
	if !errors.Is(err, pnl.ErrUnknownMarket) {
		t.Errorf("got %v, want ErrUnknownMarket", err)
	}
}

func TestAccumulate_Empty(t *testing.T) {
	total, err := pnl.Accumulate(nil, testPrices, group.DefaultGroup())
	if err != nil {
		t.Fatalf("Accumulate failed: %v", err)
	}
	if total != 0 {
		t.Errorf("got %v, want 0", total)
	}
}

func TestTrade_Liquidity(t *testing.T) {
	maker := pnl.Trade{Maker: true}
	taker := pnl.Trade{}
	if maker.Liquidity() != "Maker" {
		t.Errorf("got %q, want Maker", maker.Liquidity())
	}
	if taker.Liquidity() != "Taker" {
		t.Errorf("got %q, want Taker", taker.Liquidity())
	}
}
