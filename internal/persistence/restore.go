package persistence

import (
	"context"
	"database/sql"
	"fmt"
)

// RestoreManager loads persisted state on startup so a warm restart
// continues where the previous process stopped: fill histories keep their
// dedup keys and PNL baselines, and version counters resume above the
// last persisted snapshot instead of restarting at zero.
type RestoreManager struct {
	db *sql.DB
}

func NewRestoreManager(db *sql.DB) *RestoreManager {
	return &RestoreManager{db: db}
}

// LoadLatestVersions returns the last persisted snapshot version per
// account.
func (rm *RestoreManager) LoadLatestVersions(ctx context.Context) (map[string]int64, error) {
	rows, err := rm.db.QueryContext(ctx, `
		SELECT account_id, version FROM margin.account_latest
	`)
	if err != nil {
		return nil, fmt.Errorf("load latest versions: %w", err)
	}
	defer rows.Close()

	versions := make(map[string]int64)
	for rows.Next() {
		var accountID string
		var version int64
		if err := rows.Scan(&accountID, &version); err != nil {
			return nil, err
		}
		versions[accountID] = version
	}
	return versions, rows.Err()
}

// LoadTradeHistory returns every persisted fill grouped by account, in
// execution order.
func (rm *RestoreManager) LoadTradeHistory(ctx context.Context) (map[string][]TradeRow, error) {
	rows, err := rm.db.QueryContext(ctx, `
		SELECT market, order_id, side, account_id, size, price, liquidity,
		       native_quantity_paid, native_quantity_released, executed_at
		FROM margin.trade_history
		ORDER BY executed_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("load trade history: %w", err)
	}
	defer rows.Close()

	history := make(map[string][]TradeRow)
	for rows.Next() {
		var t TradeRow
		if err := rows.Scan(
			&t.Market, &t.OrderID, &t.Side, &t.AccountID, &t.Size, &t.Price,
			&t.Liquidity, &t.NativeQuantityPaid, &t.NativeQuantityReleased, &t.ExecutedAt,
		); err != nil {
			return nil, err
		}
		history[t.AccountID] = append(history[t.AccountID], t)
	}
	return history, rows.Err()
}
