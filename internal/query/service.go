package query

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an account has no persisted state.
var ErrNotFound = errors.New("query: not found")

// Service provides read-only access to the margin projection tables.
// Queries are served via gRPC and HTTP/JSON (gRPC-Gateway), reading from
// PostgreSQL. Every response carries the snapshot version it was read at,
// so callers can reason about freshness.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// GetLatest returns the newest committed snapshot for an account.
func (s *Service) GetLatest(ctx context.Context, accountID uuid.UUID) (*AccountUpdateResponse, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT account_id, version, assets_value, liabs_value, equity,
		       collateral_ratio, leverage, risk_status, pnl, computed_at
		FROM margin.account_latest
		WHERE account_id = $1
	`, accountID)

	var r AccountUpdateResponse
	err := row.Scan(
		&r.AccountID, &r.Version, &r.AssetsValue, &r.LiabsValue, &r.Equity,
		&r.CollateralRatio, &r.Leverage, &r.RiskStatus, &r.PNL, &r.ComputedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: account %s", ErrNotFound, accountID)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetUpdateHistory returns snapshots for an account, newest first, with
// cursor-based pagination on version.
func (s *Service) GetUpdateHistory(
	ctx context.Context,
	accountID uuid.UUID,
	limit int,
	beforeVersion *int64,
) ([]AccountUpdateResponse, error) {
	query := `
		SELECT account_id, version, assets_value, liabs_value, equity,
		       collateral_ratio, leverage, risk_status, pnl, computed_at
		FROM margin.account_updates
		WHERE account_id = $1
	`
	args := []interface{}{accountID}
	argIdx := 2

	if beforeVersion != nil {
		query += fmt.Sprintf(" AND version < $%d", argIdx)
		args = append(args, *beforeVersion)
		argIdx++
	}

	query += " ORDER BY version DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []AccountUpdateResponse
	for rows.Next() {
		var r AccountUpdateResponse
		if err := rows.Scan(
			&r.AccountID, &r.Version, &r.AssetsValue, &r.LiabsValue, &r.Equity,
			&r.CollateralRatio, &r.Leverage, &r.RiskStatus, &r.PNL, &r.ComputedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, r)
	}
	return history, rows.Err()
}

// GetTradeHistory returns executed fills for an account, newest first,
// optionally filtered by market, with cursor-based pagination on
// execution time.
func (s *Service) GetTradeHistory(
	ctx context.Context,
	accountID uuid.UUID,
	market *string,
	limit int,
	before *time.Time,
) ([]TradeHistoryEntry, error) {
	query := `
		SELECT market, order_id, side, account_id, size, price, liquidity,
		       native_quantity_paid, native_quantity_released, executed_at
		FROM margin.trade_history
		WHERE account_id = $1
	`
	args := []interface{}{accountID}
	argIdx := 2

	if market != nil {
		query += fmt.Sprintf(" AND market = $%d", argIdx)
		args = append(args, *market)
		argIdx++
	}

	if before != nil {
		query += fmt.Sprintf(" AND executed_at < $%d", argIdx)
		args = append(args, *before)
		argIdx++
	}

	query += " ORDER BY executed_at DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []TradeHistoryEntry
	for rows.Next() {
		var t TradeHistoryEntry
		if err := rows.Scan(
			&t.Market, &t.OrderID, &t.Side, &t.AccountID, &t.Size, &t.Price,
			&t.Liquidity, &t.NativeQuantityPaid, &t.NativeQuantityReleased, &t.ExecutedAt,
		); err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

// ListAccountsByStatus returns accounts currently carrying the given risk
// status, worst collateral ratio first.
func (s *Service) ListAccountsByStatus(
	ctx context.Context,
	status string,
	limit int,
) ([]RiskOverviewEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT account_id, collateral_ratio, equity, risk_status, version, computed_at
		FROM margin.account_latest
		WHERE risk_status = $1
		ORDER BY collateral_ratio ASC
		LIMIT $2
	`, status, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []RiskOverviewEntry
	for rows.Next() {
		var e RiskOverviewEntry
		if err := rows.Scan(
			&e.AccountID, &e.CollateralRatio, &e.Equity, &e.RiskStatus, &e.Version, &e.ComputedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
