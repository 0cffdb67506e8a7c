package ingestion

import (
	"encoding/json"
	"fmt"
	"time"

	"MarginEngine/internal/account"
	"MarginEngine/internal/oracle"
	"MarginEngine/internal/pnl"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParsedEvent is the typed result of parsing one raw message. Exactly one
// of the payload fields is set, matching Kind.
type ParsedEvent struct {
	Kind string

	Tick      *oracle.Tick
	State     *account.RawAccountState
	AccountID uuid.UUID
	Fill      *pnl.Trade
}

// ParseRawEvent converts a RawEvent into a typed payload. Prices arrive as
// decimal strings; they are parsed exactly and converted to float64 once,
// so "50000.25" never picks up string-formatting drift upstream.
func ParseRawEvent(raw RawEvent, kind string) (*ParsedEvent, error) {
	switch kind {
	case KindPriceTick:
		tick, err := parsePriceTick(raw.Data)
		if err != nil {
			return nil, err
		}
		return &ParsedEvent{Kind: kind, Tick: tick}, nil
	case KindAccountState:
		state, err := parseAccountState(raw.Data)
		if err != nil {
			return nil, err
		}
		return &ParsedEvent{Kind: kind, State: state, AccountID: state.AccountID}, nil
	case KindFill:
		accountID, fill, err := parseFill(raw.Data)
		if err != nil {
			return nil, err
		}
		return &ParsedEvent{Kind: kind, AccountID: accountID, Fill: fill}, nil
	default:
		return nil, fmt.Errorf("unknown payload kind: %s", kind)
	}
}

// --- JSON wire formats ---
// These structs represent the JSON payloads received from NATS.
// Field names use snake_case to match upstream producers.

type priceTickJSON struct {
	Symbol      string `json:"symbol"`
	Price       string `json:"price"`
	Sequence    int64  `json:"sequence"`
	TimestampUs int64  `json:"timestamp_us"`
}

func parsePriceTick(data []byte) (*oracle.Tick, error) {
	var j priceTickJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse PriceTick: %w", err)
	}
	if j.Symbol == "" {
		return nil, fmt.Errorf("parse PriceTick: empty symbol")
	}

	price, err := decimal.NewFromString(j.Price)
	if err != nil {
		return nil, fmt.Errorf("parse price %q: %w", j.Price, err)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("parse PriceTick: non-positive price %s", price)
	}

	return &oracle.Tick{
		Symbol:    j.Symbol,
		Price:     price.InexactFloat64(),
		Sequence:  j.Sequence,
		Timestamp: time.UnixMicro(j.TimestampUs),
	}, nil
}

type openOrdersJSON struct {
	Market     string `json:"market"`
	BaseTotal  int64  `json:"base_total"`
	BaseFree   int64  `json:"base_free"`
	QuoteTotal int64  `json:"quote_total"`
	QuoteFree  int64  `json:"quote_free"`
}

type accountStateJSON struct {
	AccountID   string           `json:"account_id"`
	Deposits    []int64          `json:"deposits"`
	Borrows     []int64          `json:"borrows"`
	OpenOrders  []openOrdersJSON `json:"open_orders"`
	Sequence    int64            `json:"sequence"`
	TimestampUs int64            `json:"timestamp_us"`
}

func parseAccountState(data []byte) (*account.RawAccountState, error) {
	var j accountStateJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parse AccountState: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return nil, fmt.Errorf("parse account_id: %w", err)
	}

	raw := &account.RawAccountState{
		AccountID: accountID,
		Deposits:  j.Deposits,
		Borrows:   j.Borrows,
	}
	for _, oo := range j.OpenOrders {
		raw.OpenOrders = append(raw.OpenOrders, account.RawOpenOrders{
			Market:     oo.Market,
			BaseTotal:  oo.BaseTotal,
			BaseFree:   oo.BaseFree,
			QuoteTotal: oo.QuoteTotal,
			QuoteFree:  oo.QuoteFree,
		})
	}
	return raw, nil
}

type fillJSON struct {
	AccountID              string  `json:"account_id"`
	Market                 string  `json:"market"`
	OrderID                string  `json:"order_id"`
	Side                   string  `json:"side"` // "buy" or "sell"
	Size                   float64 `json:"size"`
	Price                  string  `json:"price"`
	Maker                  bool    `json:"maker"`
	NativeQuantityPaid     int64   `json:"native_quantity_paid"`
	NativeQuantityReleased int64   `json:"native_quantity_released"`
	TimestampUs            int64   `json:"timestamp_us"`
}

func parseFill(data []byte) (uuid.UUID, *pnl.Trade, error) {
	var j fillJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return uuid.Nil, nil, fmt.Errorf("parse Fill: %w", err)
	}
	accountID, err := uuid.Parse(j.AccountID)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("parse account_id: %w", err)
	}
	if j.OrderID == "" {
		return uuid.Nil, nil, fmt.Errorf("parse Fill: empty order_id")
	}

	side, err := pnl.ParseSide(j.Side)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("parse Fill: %w", err)
	}

	if j.Size < 0 {
		return uuid.Nil, nil, fmt.Errorf("parse Fill: negative size %v", j.Size)
	}
	if j.NativeQuantityPaid < 0 || j.NativeQuantityReleased < 0 {
		return uuid.Nil, nil, fmt.Errorf("parse Fill: negative native quantity")
	}

	price, err := decimal.NewFromString(j.Price)
	if err != nil {
		return uuid.Nil, nil, fmt.Errorf("parse price %q: %w", j.Price, err)
	}

	return accountID, &pnl.Trade{
		Market:                 j.Market,
		OrderID:                j.OrderID,
		Side:                   side,
		Size:                   j.Size,
		Price:                  price.InexactFloat64(),
		Maker:                  j.Maker,
		NativeQuantityPaid:     j.NativeQuantityPaid,
		NativeQuantityReleased: j.NativeQuantityReleased,
		Timestamp:              time.UnixMicro(j.TimestampUs),
	}, nil
}
