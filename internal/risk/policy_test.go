package risk_test

import (
	"math"
	"testing"

	"MarginEngine/internal/pnl"
	"MarginEngine/internal/risk"
	"MarginEngine/internal/valuation"
)

func snapWith(assets, liabs float64) *valuation.Snapshot {
	s := &valuation.Snapshot{
		AssetsValue: assets,
		LiabsValue:  liabs,
		Equity:      assets - liabs,
	}
	if liabs == 0 {
		s.CollateralRatio = valuation.RatioInfinite
	} else {
		s.CollateralRatio = assets / liabs
	}
	return s
}

func TestClassify_NoLiabilitiesAlwaysHealthy(t *testing.T) {
	snap := snapWith(1_000, 0)

	// Healthy even under absurdly strict thresholds.
	th := risk.Thresholds{Maintenance: 100, Initial: 200, WarningBuffer: 1.1, MaxLeverage: 6}
	if got := risk.Classify(snap, th); got != risk.StatusHealthy {
		t.Errorf("got %s, want Healthy", got)
	}
}

func TestClassify_Liquidatable(t *testing.T) {
	// ratio 1.1 against maintenance 1.15.
	snap := snapWith(1_100, 1_000)
	th := risk.Thresholds{Maintenance: 1.15, Initial: 1.30, WarningBuffer: 1.1, MaxLeverage: 6}

	if got := risk.Classify(snap, th); got != risk.StatusLiquidatable {
		t.Errorf("got %s, want Liquidatable", got)
	}
}

func TestClassify_WarningBand(t *testing.T) {
	// ratio 1.1 with maintenance 1.05: above maintenance, inside the
	// buffered initial band (1.2 * 1.1 = 1.32).
	snap := snapWith(1_100, 1_000)
	th := risk.Thresholds{Maintenance: 1.05, Initial: 1.20, WarningBuffer: 1.1, MaxLeverage: 6}

	if got := risk.Classify(snap, th); got != risk.StatusWarning {
		t.Errorf("got %s, want Warning", got)
	}
}

func TestClassify_Healthy(t *testing.T) {
	snap := snapWith(2_000, 1_000) // ratio 2.0
	th := risk.DefaultThresholds()

	if got := risk.Classify(snap, th); got != risk.StatusHealthy {
		t.Errorf("got %s, want Healthy", got)
	}
}

func TestClassify_MaintenanceBoundaryIsLiquidatable(t *testing.T) {
	snap := snapWith(1_100, 1_000)
	th := risk.Thresholds{Maintenance: 1.1, Initial: 1.2, WarningBuffer: 1.1, MaxLeverage: 6}

	if got := risk.Classify(snap, th); got != risk.StatusLiquidatable {
		t.Errorf("ratio == maintenance: got %s, want Liquidatable", got)
	}
}

func TestMaxOrderSize_Buy(t *testing.T) {
	snap := snapWith(1_000, 0) // equity 1000
	th := risk.DefaultThresholds()

	// (1000 / 50000) * 6 - 0.01 existing = 0.12 - 0.01.
	size, err := risk.MaxOrderSize(snap, pnl.SideBuy, 50_000, 0.01, th)
	if err != nil {
		t.Fatalf("MaxOrderSize failed: %v", err)
	}
	if math.Abs(size-0.11) > 1e-12 {
		t.Errorf("got %v, want 0.11", size)
	}
}

func TestMaxOrderSize_SellExtendsByExisting(t *testing.T) {
	snap := snapWith(1_000, 0)
	th := risk.DefaultThresholds()

	size, err := risk.MaxOrderSize(snap, pnl.SideSell, 50_000, 0.01, th)
	if err != nil {
		t.Fatalf("MaxOrderSize failed: %v", err)
	}
	if math.Abs(size-0.13) > 1e-12 {
		t.Errorf("got %v, want 0.13", size)
	}
}

func TestMaxOrderSize_ClampedToZero(t *testing.T) {
	snap := snapWith(1_000, 0)
	th := risk.DefaultThresholds()

	// Existing base already exceeds the leveraged bound.
	size, err := risk.MaxOrderSize(snap, pnl.SideBuy, 50_000, 1.0, th)
	if err != nil {
		t.Fatalf("MaxOrderSize failed: %v", err)
	}
	if size != 0 {
		t.Errorf("got %v, want 0", size)
	}
}

func TestMaxOrderSize_NoEquity(t *testing.T) {
	snap := snapWith(500, 1_000)
	th := risk.DefaultThresholds()

	size, err := risk.MaxOrderSize(snap, pnl.SideSell, 50_000, 2.0, th)
	if err != nil {
		t.Fatalf("MaxOrderSize failed: %v", err)
	}
	if size != 0 {
		t.Errorf("got %v, want 0 for non-positive equity", size)
	}
}

func TestMaxOrderSize_BadPrice(t *testing.T) {
	snap := snapWith(1_000, 0)
	if _, err := risk.MaxOrderSize(snap, pnl.SideBuy, 0, 0, risk.DefaultThresholds()); err == nil {
		t.Error("expected error for zero market price")
	}
}

func TestThresholds_Validate(t *testing.T) {
	if err := risk.DefaultThresholds().Validate(); err != nil {
		t.Errorf("default thresholds should validate: %v", err)
	}

	bad := []risk.Thresholds{
		{Maintenance: 1.0, Initial: 1.2, WarningBuffer: 1.1, MaxLeverage: 6},  // maintenance not > 1
		{Maintenance: 1.2, Initial: 1.1, WarningBuffer: 1.1, MaxLeverage: 6},  // initial <= maintenance
		{Maintenance: 1.1, Initial: 1.2, WarningBuffer: 0.9, MaxLeverage: 6},  // buffer < 1
		{Maintenance: 1.1, Initial: 1.2, WarningBuffer: 1.1, MaxLeverage: 0},  // no leverage
	}
	for i, th := range bad {
		if err := th.Validate(); err == nil {
			t.Errorf("case %d should fail validation: %+v", i, th)
		}
	}
}

func TestStatus_String(t *testing.T) {
	if risk.StatusHealthy.String() != "Healthy" ||
		risk.StatusWarning.String() != "Warning" ||
		risk.StatusLiquidatable.String() != "Liquidatable" {
		t.Error("unexpected status strings")
	}
}
