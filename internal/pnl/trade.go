package pnl

import (
	"fmt"
	"time"
)

// Side represents trade direction.
type Side int32

const (
	SideBuy Side = iota
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "buy"
	case SideSell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseSide is the inverse of Side.String.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	default:
		return 0, fmt.Errorf("unknown side %q", s)
	}
}

// Trade is one executed fill from the trade-history source. Immutable once
// recorded; used only as an accumulation input.
type Trade struct {
	Market  string
	OrderID string
	Side    Side
	Size    float64
	Price   float64
	Maker   bool

	// Native quote-currency quantities moved by the fill: paid on a buy,
	// released on a sell.
	NativeQuantityPaid     int64
	NativeQuantityReleased int64

	Timestamp time.Time
}

// Key is the stable dedup/row key for a fill: market + orderID + side.
func (t *Trade) Key() string {
	return t.Market + ":" + t.OrderID + ":" + t.Side.String()
}

// Liquidity returns the display liquidity flag.
func (t *Trade) Liquidity() string {
	if t.Maker {
		return "Maker"
	}
	return "Taker"
}

// Dedupe drops exact duplicate fills by Key, preserving first-occurrence
// order. Accumulate assumes its input has passed through this (or an
// equivalent caller-side dedupe); feeding duplicates double-counts.
func Dedupe(trades []Trade) []Trade {
	seen := make(map[string]bool, len(trades))
	out := make([]Trade, 0, len(trades))
	for _, t := range trades {
		k := t.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, t)
	}
	return out
}
