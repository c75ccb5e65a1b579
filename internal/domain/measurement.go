package domain

import (
	"errors"
	"fmt"
	"math"
)

// ErrDegenerateRange is returned when a range does not satisfy Min < Max.
var ErrDegenerateRange = errors.New("degenerate measurement range")

// Range is the closed domain [Min, Max] a reading is expected to fall in.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Domain ranges of the three readings.
var (
	SeaIceConcentrationRange = Range{Min: 0, Max: 100}
	DriftSpeedRange          = Range{Min: 0, Max: 30}
	WindSpeedRange           = Range{Min: 0, Max: 25}
)

// Validate reports ErrDegenerateRange unless Min < Max. NaN bounds fail the comparison.
func (r Range) Validate() error {
	if !(r.Min < r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: [%g, %g]", ErrDegenerateRange, r.Min, r.Max)
	}
	return nil
}

// Clamp bounds v to [Min, Max]. NaN clamps to Min.
func (r Range) Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v), v < r.Min:
		return r.Min
	case v > r.Max:
		return r.Max
	default:
		return v
	}
}

// Measurement is a raw reading paired with its domain range.
type Measurement struct {
	Value float64
	Range Range
}

// Score returns the measurement normalized onto 0–100.
func (m Measurement) Score() (float64, error) {
	return Normalize(m.Value, m.Range)
}

// Normalize clamps value into r and rescales it linearly onto [0, 100].
// Out-of-range values are absorbed by clamping; only a degenerate range is an error.
func Normalize(value float64, r Range) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	clamped := r.Clamp(value)
	return 100 * (clamped - r.Min) / (r.Max - r.Min), nil
}
