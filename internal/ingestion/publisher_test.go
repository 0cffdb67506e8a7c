package ingestion_test

import (
	"MarginEngine/internal/ingestion"
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestPublishableUpdateInfinityMarshals(t *testing.T) {
	u := ingestion.PublishableUpdate{
		AccountID:       uuid.New().String(),
		Version:         3,
		AssetsValue:     7500,
		LiabsValue:      0,
		Equity:          7500,
		CollateralRatio: ingestion.SentinelFloat(math.Inf(1)),
		Leverage:        0,
		RiskStatus:      "Healthy",
		Deposits:        []float64{150, 0, 0},
		Borrows:         []float64{0, 0, 0},
		ComputedAt:      time.Now().UTC(),
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"collateral_ratio":"Infinity"`) {
		t.Errorf("payload missing Infinity sentinel: %s", data)
	}

	var back ingestion.PublishableUpdate
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !math.IsInf(float64(back.CollateralRatio), 1) {
		t.Errorf("collateral ratio = %v, want +Inf", back.CollateralRatio)
	}
	if back.Leverage != 0 {
		t.Errorf("leverage = %v, want 0", back.Leverage)
	}
}

func TestPublishableUpdateFiniteMarshalsAsNumber(t *testing.T) {
	u := ingestion.PublishableUpdate{
		CollateralRatio: 1.5,
		Leverage:        2,
	}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"collateral_ratio":1.5`) {
		t.Errorf("finite ratio not encoded as number: %s", data)
	}
}
