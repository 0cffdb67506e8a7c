package numeric

import (
	"errors"
	"fmt"
	"math"
)

// ErrPrecisionOverflow is returned when a native integer quantity cannot be
// converted to UI units without losing the ability to recover the original
// integer. Within int64 range this only happens once the quantity exceeds
// float64's exact-integer range (2^53).
var ErrPrecisionOverflow = errors.New("numeric: native quantity exceeds float64 precision")

// MaxDecimals bounds the supported token decimal precision. 10^18 still
// fits in an int64 scale factor.
const MaxDecimals = 18

var pow10 = func() [MaxDecimals + 1]float64 {
	var t [MaxDecimals + 1]float64
	t[0] = 1
	for i := 1; i <= MaxDecimals; i++ {
		t[i] = t[i-1] * 10
	}
	return t
}()

// ToUI converts a non-negative native integer quantity to UI units by
// dividing by 10^decimals. The conversion is rejected with
// ErrPrecisionOverflow unless the result round-trips back to the exact
// original integer, which holds for all quantities below 2^53.
func ToUI(native int64, decimals int) (float64, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return 0, fmt.Errorf("numeric: unsupported decimals %d", decimals)
	}
	if native < 0 {
		return 0, fmt.Errorf("numeric: negative native quantity %d", native)
	}
	if native == 0 {
		return 0, nil
	}

	scale := pow10[decimals]
	ui := float64(native) / scale

	if back := int64(math.Round(ui * scale)); back != native {
		return 0, fmt.Errorf("%w: %d at %d decimals", ErrPrecisionOverflow, native, decimals)
	}
	return ui, nil
}

// ToNative converts a UI quantity back to native units, rounding to the
// nearest integer. Inverse of ToUI for all quantities ToUI accepts.
func ToNative(ui float64, decimals int) (int64, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return 0, fmt.Errorf("numeric: unsupported decimals %d", decimals)
	}
	scaled := math.Round(ui * pow10[decimals])
	if scaled > float64(math.MaxInt64) || scaled < float64(math.MinInt64) {
		return 0, fmt.Errorf("%w: %g at %d decimals", ErrPrecisionOverflow, ui, decimals)
	}
	return int64(scaled), nil
}

// SignedToUI converts a signed native flow (e.g. a net quote-currency flow
// accumulated from fills) to UI units. The sign is preserved; the magnitude
// is subject to the same round-trip requirement as ToUI.
func SignedToUI(native int64, decimals int) (float64, error) {
	if native == math.MinInt64 {
		return 0, fmt.Errorf("%w: %d at %d decimals", ErrPrecisionOverflow, native, decimals)
	}
	if native < 0 {
		ui, err := ToUI(-native, decimals)
		return -ui, err
	}
	return ToUI(native, decimals)
}
