package ingestion_test

import (
	"encoding/json"
	"testing"
	"time"

	"MarginEngine/internal/ingestion"
	"MarginEngine/internal/pnl"

	"github.com/google/uuid"
)

func rawFromJSON(t *testing.T, v interface{}) ingestion.RawEvent {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return ingestion.RawEvent{
		Subject:   "test",
		Data:      data,
		Timestamp: time.Now(),
		AckFunc:   func() {},
		NakFunc:   func() {},
	}
}

func TestParsePriceTick(t *testing.T) {
	payload := map[string]interface{}{
		"symbol":       "BTC",
		"price":        "50000.25",
		"sequence":     int64(42),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, ingestion.KindPriceTick)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if evt.Tick == nil {
		t.Fatal("expected tick payload")
	}

	if evt.Tick.Symbol != "BTC" {
		t.Errorf("symbol: got %s, want BTC", evt.Tick.Symbol)
	}
	if evt.Tick.Price != 50000.25 {
		t.Errorf("price: got %v, want 50000.25", evt.Tick.Price)
	}
	if evt.Tick.Sequence != 42 {
		t.Errorf("sequence: got %d, want 42", evt.Tick.Sequence)
	}
	if got := evt.Tick.Timestamp.UnixMicro(); got != 1700000000000000 {
		t.Errorf("timestamp: got %d", got)
	}
}

func TestParsePriceTick_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"zero price", map[string]interface{}{"symbol": "BTC", "price": "0"}},
		{"negative price", map[string]interface{}{"symbol": "BTC", "price": "-1"}},
		{"garbage price", map[string]interface{}{"symbol": "BTC", "price": "fifty"}},
		{"empty symbol", map[string]interface{}{"symbol": "", "price": "50000"}},
	}
	for _, tc := range cases {
		raw := rawFromJSON(t, tc.payload)
		if _, err := ingestion.ParseRawEvent(raw, ingestion.KindPriceTick); err == nil {
			t.Errorf("%s: expected parse error", tc.name)
		}
	}
}

func TestParseAccountState(t *testing.T) {
	payload := map[string]interface{}{
		"account_id": "550e8400-e29b-41d4-a716-446655440000",
		"deposits":   []int64{150_000_000, 0, 0},
		"borrows":    []int64{0, 0, 500_000},
		"open_orders": []map[string]interface{}{
			{
				"market":      "BTC/USDC",
				"base_total":  int64(1_000_000),
				"base_free":   int64(400_000),
				"quote_total": int64(2_000_000),
				"quote_free":  int64(2_000_000),
			},
		},
		"sequence":     int64(7),
		"timestamp_us": int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, ingestion.KindAccountState)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if evt.State == nil {
		t.Fatal("expected state payload")
	}

	want := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
	if evt.State.AccountID != want {
		t.Errorf("account_id: got %s, want %s", evt.State.AccountID, want)
	}
	if evt.AccountID != want {
		t.Errorf("envelope account_id: got %s, want %s", evt.AccountID, want)
	}
	if len(evt.State.Deposits) != 3 || evt.State.Deposits[0] != 150_000_000 {
		t.Errorf("deposits: got %v", evt.State.Deposits)
	}
	if len(evt.State.Borrows) != 3 || evt.State.Borrows[2] != 500_000 {
		t.Errorf("borrows: got %v", evt.State.Borrows)
	}
	if len(evt.State.OpenOrders) != 1 {
		t.Fatalf("open_orders: got %d entries, want 1", len(evt.State.OpenOrders))
	}
	oo := evt.State.OpenOrders[0]
	if oo.Market != "BTC/USDC" || oo.BaseTotal != 1_000_000 || oo.BaseFree != 400_000 {
		t.Errorf("open_orders[0]: got %+v", oo)
	}
}

func TestParseAccountState_BadAccountID(t *testing.T) {
	raw := rawFromJSON(t, map[string]interface{}{
		"account_id": "not-a-uuid",
		"deposits":   []int64{},
		"borrows":    []int64{},
	})
	if _, err := ingestion.ParseRawEvent(raw, ingestion.KindAccountState); err == nil {
		t.Error("expected parse error for bad account_id")
	}
}

func TestParseFill(t *testing.T) {
	payload := map[string]interface{}{
		"account_id":               "550e8400-e29b-41d4-a716-446655440000",
		"market":                   "BTC/USDC",
		"order_id":                 "o-123",
		"side":                     "sell",
		"size":                     1.5,
		"price":                    "51000",
		"maker":                    true,
		"native_quantity_paid":     int64(0),
		"native_quantity_released": int64(76_500_000_000),
		"timestamp_us":             int64(1700000000000000),
	}

	raw := rawFromJSON(t, payload)
	evt, err := ingestion.ParseRawEvent(raw, ingestion.KindFill)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if evt.Fill == nil {
		t.Fatal("expected fill payload")
	}

	f := evt.Fill
	if f.Side != pnl.SideSell {
		t.Errorf("side: got %s, want Sell", f.Side)
	}
	if f.Size != 1.5 {
		t.Errorf("size: got %v, want 1.5", f.Size)
	}
	if f.Price != 51000 {
		t.Errorf("price: got %v, want 51000", f.Price)
	}
	if !f.Maker {
		t.Error("maker flag lost")
	}
	if f.NativeQuantityReleased != 76_500_000_000 {
		t.Errorf("released: got %d", f.NativeQuantityReleased)
	}
	if got, want := f.Key(), "BTC/USDC:o-123:sell"; got != want {
		t.Errorf("key: got %s, want %s", got, want)
	}
}

func TestParseFill_Rejections(t *testing.T) {
	base := func() map[string]interface{} {
		return map[string]interface{}{
			"account_id": "550e8400-e29b-41d4-a716-446655440000",
			"market":     "BTC/USDC",
			"order_id":   "o-123",
			"side":       "buy",
			"size":       1.0,
			"price":      "50000",
		}
	}

	badSide := base()
	badSide["side"] = "long"
	badOrder := base()
	badOrder["order_id"] = ""
	badSize := base()
	badSize["size"] = -1.0
	badNative := base()
	badNative["native_quantity_paid"] = int64(-1)

	for name, payload := range map[string]map[string]interface{}{
		"unknown side":    badSide,
		"empty order_id":  badOrder,
		"negative size":   badSize,
		"negative native": badNative,
	} {
		raw := rawFromJSON(t, payload)
		if _, err := ingestion.ParseRawEvent(raw, ingestion.KindFill); err == nil {
			t.Errorf("%s: expected parse error", name)
		}
	}
}

func TestKindForSubject(t *testing.T) {
	subjects := ingestion.DefaultSubjects()

	cases := []struct {
		subject string
		want    string
		ok      bool
	}{
		{"margin.prices.BTC", ingestion.KindPriceTick, true},
		{"margin.accounts.550e8400", ingestion.KindAccountState, true},
		{"margin.fills.BTC-USDC", ingestion.KindFill, true},
		{"margin.unknown.x", "", false},
	}
	for _, tc := range cases {
		got, ok := ingestion.KindForSubject(tc.subject, subjects)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: got (%s, %v), want (%s, %v)", tc.subject, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParseRawEvent_UnknownKind(t *testing.T) {
	raw := rawFromJSON(t, map[string]interface{}{})
	if _, err := ingestion.ParseRawEvent(raw, "Bogus"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
