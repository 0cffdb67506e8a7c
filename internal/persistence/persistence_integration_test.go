package persistence_test

import (
	"MarginEngine/internal/persistence"
	"MarginEngine/internal/query"
	"MarginEngine/internal/testutil"
	"MarginEngine/migrations"
	"context"
	"database/sql"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
)

func setupDB(t *testing.T) (*sql.DB, func()) {
	t.Helper()
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)

	migrator := persistence.NewMigrator(db, migrations.FS)
	if err := migrator.Up(context.Background()); err != nil {
		cleanup()
		t.Fatalf("migrate up: %v", err)
	}
	return db, cleanup
}

func writeBatch(t *testing.T, db *sql.DB, w *persistence.Writer, updates []persistence.UpdateRow, trades []persistence.TradeRow) {
	t.Helper()
	ctx := context.Background()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	if err := w.WriteUpdateBatch(ctx, tx, updates); err != nil {
		tx.Rollback()
		t.Fatalf("write updates: %v", err)
	}
	if err := w.WriteTradeBatch(ctx, tx, trades); err != nil {
		tx.Rollback()
		t.Fatalf("write trades: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func updateRow(accountID uuid.UUID, version int64, ratio float64, status string) persistence.UpdateRow {
	return persistence.UpdateRow{
		AccountID:       accountID.String(),
		Version:         version,
		AssetsValue:     7500,
		LiabsValue:      5000,
		Equity:          2500,
		CollateralRatio: ratio,
		Leverage:        1 / (ratio - 1),
		RiskStatus:      status,
		PNL:             125.5,
		ComputedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func TestWriteAndQueryRoundTrip(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	ctx := context.Background()
	w := persistence.NewWriter(db)
	accountID := uuid.New()

	writeBatch(t, db, w,
		[]persistence.UpdateRow{
			updateRow(accountID, 1, 1.5, "Healthy"),
			updateRow(accountID, 2, 1.25, "Warning"),
		},
		[]persistence.TradeRow{
			{
				Market: "BTC/USDC", OrderID: "o-1", Side: "buy",
				AccountID: accountID.String(), Size: 0.5, Price: 50_000,
				Liquidity: "Taker", NativeQuantityPaid: 25_000_000_000,
				ExecutedAt: time.Now().UTC().Truncate(time.Microsecond),
			},
		},
	)

	qs := query.NewService(db)

	latest, err := qs.GetLatest(ctx, accountID)
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if latest.Version != 2 {
		t.Errorf("latest version = %d, want 2", latest.Version)
	}
	if latest.RiskStatus != "Warning" {
		t.Errorf("latest status = %q, want Warning", latest.RiskStatus)
	}

	history, err := qs.GetUpdateHistory(ctx, accountID, 10, nil)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].Version != 2 || history[1].Version != 1 {
		t.Errorf("history not newest-first: %d, %d", history[0].Version, history[1].Version)
	}

	trades, err := qs.GetTradeHistory(ctx, accountID, nil, 10, nil)
	if err != nil {
		t.Fatalf("get trades: %v", err)
	}
	if len(trades) != 1 || trades[0].OrderID != "o-1" {
		t.Fatalf("trades = %+v, want one row o-1", trades)
	}

	warned, err := qs.ListAccountsByStatus(ctx, "Warning", 10)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(warned) != 1 || warned[0].AccountID != accountID {
		t.Errorf("warning accounts = %+v, want [%s]", warned, accountID)
	}
}

func TestRewritingBatchIsIdempotent(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	ctx := context.Background()
	w := persistence.NewWriter(db)
	accountID := uuid.New()

	updates := []persistence.UpdateRow{updateRow(accountID, 1, 1.5, "Healthy")}
	trades := []persistence.TradeRow{
		{
			Market: "ETH/USDC", OrderID: "o-7", Side: "sell",
			AccountID: accountID.String(), Size: 2, Price: 3_000,
			Liquidity: "Maker", NativeQuantityReleased: 6_000_000_000,
			ExecutedAt: time.Now().UTC().Truncate(time.Microsecond),
		},
	}

	// Redelivery: same rows written twice must not error or duplicate
	writeBatch(t, db, w, updates, trades)
	writeBatch(t, db, w, updates, trades)

	qs := query.NewService(db)
	history, err := qs.GetUpdateHistory(ctx, accountID, 10, nil)
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if len(history) != 1 {
		t.Errorf("history length = %d, want 1", len(history))
	}

	rows, err := qs.GetTradeHistory(ctx, accountID, nil, 10, nil)
	if err != nil {
		t.Fatalf("get trades: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("trade rows = %d, want 1", len(rows))
	}
}

func TestStaleVersionDoesNotRegressLatest(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	ctx := context.Background()
	w := persistence.NewWriter(db)
	accountID := uuid.New()

	writeBatch(t, db, w, []persistence.UpdateRow{updateRow(accountID, 5, 1.5, "Healthy")}, nil)
	// A late flush of an older version must not win the latest row
	writeBatch(t, db, w, []persistence.UpdateRow{updateRow(accountID, 3, 1.05, "Liquidatable")}, nil)

	latest, err := query.NewService(db).GetLatest(ctx, accountID)
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if latest.Version != 5 {
		t.Errorf("latest version = %d, want 5", latest.Version)
	}
	if latest.RiskStatus != "Healthy" {
		t.Errorf("latest status = %q, want Healthy", latest.RiskStatus)
	}
}

func TestInfiniteRatioSurvivesRoundTrip(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	ctx := context.Background()
	w := persistence.NewWriter(db)
	accountID := uuid.New()

	row := updateRow(accountID, 1, 1.5, "Healthy")
	row.LiabsValue = 0
	row.CollateralRatio = math.Inf(1)
	row.Leverage = 0
	writeBatch(t, db, w, []persistence.UpdateRow{row}, nil)

	latest, err := query.NewService(db).GetLatest(ctx, accountID)
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if !math.IsInf(latest.CollateralRatio, 1) {
		t.Errorf("collateral ratio = %v, want +Inf", latest.CollateralRatio)
	}
}

func TestRestoreManagerLoadsVersionsAndTrades(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	ctx := context.Background()
	w := persistence.NewWriter(db)
	a := uuid.New()
	b := uuid.New()

	base := time.Now().UTC().Truncate(time.Microsecond)
	writeBatch(t, db, w,
		[]persistence.UpdateRow{
			updateRow(a, 4, 1.5, "Healthy"),
			updateRow(b, 9, 1.2, "Warning"),
		},
		[]persistence.TradeRow{
			{
				Market: "BTC/USDC", OrderID: "o-2", Side: "sell",
				AccountID: a.String(), Size: 1, Price: 51_000,
				Liquidity: "Taker", NativeQuantityReleased: 51_000_000_000,
				ExecutedAt: base.Add(time.Second),
			},
			{
				Market: "BTC/USDC", OrderID: "o-1", Side: "buy",
				AccountID: a.String(), Size: 1, Price: 50_000,
				Liquidity: "Taker", NativeQuantityPaid: 50_000_000_000,
				ExecutedAt: base,
			},
		},
	)

	rm := persistence.NewRestoreManager(db)

	versions, err := rm.LoadLatestVersions(ctx)
	if err != nil {
		t.Fatalf("load versions: %v", err)
	}
	if versions[a.String()] != 4 || versions[b.String()] != 9 {
		t.Errorf("versions = %+v, want a=4 b=9", versions)
	}

	trades, err := rm.LoadTradeHistory(ctx)
	if err != nil {
		t.Fatalf("load trades: %v", err)
	}
	got := trades[a.String()]
	if len(got) != 2 {
		t.Fatalf("trade count = %d, want 2", len(got))
	}
	// Ordered by execution time so restored dedup keys replay in order
	if got[0].OrderID != "o-1" || got[1].OrderID != "o-2" {
		t.Errorf("trade order = %s, %s; want o-1, o-2", got[0].OrderID, got[1].OrderID)
	}
}

func TestGetLatestUnknownAccount(t *testing.T) {
	db, cleanup := setupDB(t)
	defer cleanup()

	_, err := query.NewService(db).GetLatest(context.Background(), uuid.New())
	if !errors.Is(err, query.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
