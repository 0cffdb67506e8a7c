package query

import (
	"time"

	"github.com/google/uuid"
)

// AccountUpdateResponse represents one committed valuation snapshot for
// API queries. CollateralRatio serializes as +Inf for accounts with no
// liabilities; JSON consumers receive it via the string form of the
// ratio fields on the gRPC surface.
type AccountUpdateResponse struct {
	AccountID       uuid.UUID `json:"account_id"`
	Version         int64     `json:"version"`
	AssetsValue     float64   `json:"assets_value"`
	LiabsValue      float64   `json:"liabs_value"`
	Equity          float64   `json:"equity"`
	CollateralRatio float64   `json:"collateral_ratio"`
	Leverage        float64   `json:"leverage"`
	RiskStatus      string    `json:"risk_status"`
	PNL             float64   `json:"pnl"`
	ComputedAt      time.Time `json:"computed_at"`
}

// TradeHistoryEntry represents one executed fill for API queries.
type TradeHistoryEntry struct {
	Market                 string    `json:"market"`
	OrderID                string    `json:"order_id"`
	Side                   string    `json:"side"`
	AccountID              uuid.UUID `json:"account_id"`
	Size                   float64   `json:"size"`
	Price                  float64   `json:"price"`
	Liquidity              string    `json:"liquidity"`
	NativeQuantityPaid     int64     `json:"native_quantity_paid"`
	NativeQuantityReleased int64     `json:"native_quantity_released"`
	ExecutedAt             time.Time `json:"executed_at"`
}

// RiskOverviewEntry summarizes one account for risk dashboards.
type RiskOverviewEntry struct {
	AccountID       uuid.UUID `json:"account_id"`
	CollateralRatio float64   `json:"collateral_ratio"`
	Equity          float64   `json:"equity"`
	RiskStatus      string    `json:"risk_status"`
	Version         int64     `json:"version"`
	ComputedAt      time.Time `json:"computed_at"`
}
