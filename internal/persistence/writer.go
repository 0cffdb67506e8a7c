package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Writer writes committed account updates and trade fills to Postgres
// using multi-row INSERT. All writes are idempotent: updates conflict on
// (account_id, version), trades on (market, order_id, side).
type Writer struct {
	db *sql.DB
}

// UpdateRow represents a row in margin.account_updates.
type UpdateRow struct {
	AccountID       string
	Version         int64
	AssetsValue     float64
	LiabsValue      float64
	Equity          float64
	CollateralRatio float64
	Leverage        float64
	RiskStatus      string
	PNL             float64
	ComputedAt      time.Time
}

// TradeRow represents a row in margin.trade_history.
type TradeRow struct {
	Market                 string
	OrderID                string
	Side                   string
	AccountID              string
	Size                   float64
	Price                  float64
	Liquidity              string
	NativeQuantityPaid     int64
	NativeQuantityReleased int64
	ExecutedAt             time.Time
}

func NewWriter(db *sql.DB) *Writer {
	return &Writer{db: db}
}

// DB exposes the underlying handle for transaction control.
func (w *Writer) DB() *sql.DB {
	return w.db
}

// WriteUpdateBatch appends update rows to the history table and advances
// the per-account latest projection. The latest upsert carries a version
// guard so a delayed batch can never roll an account backwards.
func (w *Writer) WriteUpdateBatch(ctx context.Context, tx *sql.Tx, updates []UpdateRow) error {
	if len(updates) == 0 {
		return nil
	}

	const cols = 10
	values := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)*cols)

	for i, u := range updates {
		base := i * cols
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10,
		))
		args = append(args,
			u.AccountID, u.Version, u.AssetsValue, u.LiabsValue, u.Equity,
			u.CollateralRatio, u.Leverage, u.RiskStatus, u.PNL, u.ComputedAt,
		)
	}

	query := `INSERT INTO margin.account_updates
		(account_id, version, assets_value, liabs_value, equity, collateral_ratio, leverage, risk_status, pnl, computed_at)
		VALUES ` + strings.Join(values, ", ") + `
		ON CONFLICT (account_id, version) DO NOTHING`

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write account_updates: %w", err)
	}

	// One row per account in the upsert: a single statement may not touch
	// the same conflict target twice.
	newest := make(map[string]UpdateRow, len(updates))
	for _, u := range updates {
		if prev, ok := newest[u.AccountID]; !ok || u.Version > prev.Version {
			newest[u.AccountID] = u
		}
	}
	values = values[:0]
	args = args[:0]
	i := 0
	for _, u := range newest {
		base := i * cols
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10,
		))
		args = append(args,
			u.AccountID, u.Version, u.AssetsValue, u.LiabsValue, u.Equity,
			u.CollateralRatio, u.Leverage, u.RiskStatus, u.PNL, u.ComputedAt,
		)
		i++
	}

	latest := `INSERT INTO margin.account_latest
		(account_id, version, assets_value, liabs_value, equity, collateral_ratio, leverage, risk_status, pnl, computed_at)
		VALUES ` + strings.Join(values, ", ") + `
		ON CONFLICT (account_id) DO UPDATE SET
			version = EXCLUDED.version,
			assets_value = EXCLUDED.assets_value,
			liabs_value = EXCLUDED.liabs_value,
			equity = EXCLUDED.equity,
			collateral_ratio = EXCLUDED.collateral_ratio,
			leverage = EXCLUDED.leverage,
			risk_status = EXCLUDED.risk_status,
			pnl = EXCLUDED.pnl,
			computed_at = EXCLUDED.computed_at
		WHERE EXCLUDED.version > account_latest.version`

	if _, err := tx.ExecContext(ctx, latest, args...); err != nil {
		return fmt.Errorf("write account_latest: %w", err)
	}
	return nil
}

// WriteTradeBatch writes trade fills. Duplicate keys are silently dropped,
// which makes redelivered NATS messages harmless.
func (w *Writer) WriteTradeBatch(ctx context.Context, tx *sql.Tx, trades []TradeRow) error {
	if len(trades) == 0 {
		return nil
	}

	const cols = 10
	values := make([]string, 0, len(trades))
	args := make([]interface{}, 0, len(trades)*cols)

	for i, t := range trades {
		base := i * cols
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9, base+10,
		))
		args = append(args,
			t.Market, t.OrderID, t.Side, t.AccountID, t.Size,
			t.Price, t.Liquidity, t.NativeQuantityPaid, t.NativeQuantityReleased, t.ExecutedAt,
		)
	}

	query := `INSERT INTO margin.trade_history
		(market, order_id, side, account_id, size, price, liquidity, native_quantity_paid, native_quantity_released, executed_at)
		VALUES ` + strings.Join(values, ", ") + `
		ON CONFLICT (market, order_id, side) DO NOTHING`

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("write trade_history: %w", err)
	}
	return nil
}
