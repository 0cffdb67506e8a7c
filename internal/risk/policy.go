package risk

import (
	"fmt"

	"MarginEngine/internal/pnl"
	"MarginEngine/internal/valuation"
)

// Status classifies an account's margin health.
type Status int32

const (
	StatusHealthy Status = iota
	StatusWarning
	StatusLiquidatable
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "Healthy"
	case StatusWarning:
		return "Warning"
	case StatusLiquidatable:
		return "Liquidatable"
	default:
		return "Unknown"
	}
}

// Thresholds are the per-group risk constants, loaded once and read-only
// thereafter. Ratios are expressed as collateral ratios (> 1), matching the
// on-chain program's group parameters.
type Thresholds struct {
	// Maintenance is the collateral ratio at or below which the account is
	// liquidatable.
	Maintenance float64

	// Initial is the collateral ratio required to open new exposure.
	Initial float64

	// WarningBuffer widens the warning band above Initial. An account with
	// maintenance < ratio <= Initial*WarningBuffer classifies as Warning.
	// Tunable, not a hard contract.
	WarningBuffer float64

	// MaxLeverage is the order-sizing multiplier applied to equity when
	// computing the maximum safe order size. Configuration, not an
	// invariant of the venue.
	MaxLeverage float64
}

// DefaultThresholds returns the stock group parameters: 110% maintenance,
// 120% initial collateral, a 1.1x warning buffer, and 6x order sizing.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Maintenance:   1.10,
		Initial:       1.20,
		WarningBuffer: 1.1,
		MaxLeverage:   6,
	}
}

// Validate checks threshold invariants: maintenance > 1, initial >
// maintenance, warning buffer >= 1, max leverage > 0.
func (t Thresholds) Validate() error {
	if t.Maintenance <= 1 {
		return fmt.Errorf("risk: maintenance ratio must be > 1, got %v", t.Maintenance)
	}
	if t.Initial <= t.Maintenance {
		return fmt.Errorf("risk: initial ratio (%v) must be > maintenance (%v)", t.Initial, t.Maintenance)
	}
	if t.WarningBuffer < 1 {
		return fmt.Errorf("risk: warning buffer must be >= 1, got %v", t.WarningBuffer)
	}
	if t.MaxLeverage <= 0 {
		return fmt.Errorf("risk: max leverage must be > 0, got %v", t.MaxLeverage)
	}
	return nil
}

// Classify maps a valuation snapshot onto the margin health scale. An
// account with no liabilities (infinite collateral ratio) is always
// Healthy regardless of thresholds.
func Classify(snap *valuation.Snapshot, t Thresholds) Status {
	if snap.RatioIsInfinite() {
		return StatusHealthy
	}
	if snap.CollateralRatio <= t.Maintenance {
		return StatusLiquidatable
	}
	if snap.CollateralRatio <= t.Initial*t.WarningBuffer {
		return StatusWarning
	}
	return StatusHealthy
}

// MaxOrderSize computes the largest base-token order size the account can
// safely place on the given side at marketPrice. existingBase is the
// account's current base-token deposit (UI units): a buy is reduced by it,
// a sell is extended by it. The result is clamped to >= 0 so a fully
// extended account gets zero, never a negative size.
func MaxOrderSize(
	snap *valuation.Snapshot,
	side pnl.Side,
	marketPrice float64,
	existingBase float64,
	t Thresholds,
) (float64, error) {
	if marketPrice <= 0 {
		return 0, fmt.Errorf("risk: non-positive market price %v", marketPrice)
	}

	if snap.Equity <= 0 {
		return 0, nil
	}

	bound := snap.Equity / marketPrice * t.MaxLeverage

	var size float64
	switch side {
	case pnl.SideBuy:
		size = bound - existingBase
	case pnl.SideSell:
		size = bound + existingBase
	default:
		return 0, fmt.Errorf("risk: unknown side %d", side)
	}

	if size < 0 {
		return 0, nil
	}
	return size, nil
}
