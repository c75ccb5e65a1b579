package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Index weights. They sum to 1.0, which keeps the index within [0, 100].
const (
	SeaIceWeight = 0.4
	DriftWeight  = 0.3
	WindWeight   = 0.3
)

// Readings holds one set of raw environmental inputs.
type Readings struct {
	SeaIceConcentration float64 `json:"sea_ice_concentration"`
	DriftSpeed          float64 `json:"drift_speed"`
	WindSpeed           float64 `json:"wind_speed"`
}

// Measurements pairs each reading with its domain range.
func (r Readings) Measurements() (sic, drift, wind Measurement) {
	return Measurement{Value: r.SeaIceConcentration, Range: SeaIceConcentrationRange},
		Measurement{Value: r.DriftSpeed, Range: DriftSpeedRange},
		Measurement{Value: r.WindSpeed, Range: WindSpeedRange}
}

// ComputeRiskIndex normalizes the readings and combines them into the 0–100 risk index.
func ComputeRiskIndex(r Readings) (float64, error) {
	sic, drift, wind := r.Measurements()

	sicScore, err := sic.Score()
	if err != nil {
		return 0, fmt.Errorf("sea ice concentration: %w", err)
	}
	driftScore, err := drift.Score()
	if err != nil {
		return 0, fmt.Errorf("drift speed: %w", err)
	}
	windScore, err := wind.Score()
	if err != nil {
		return 0, fmt.Errorf("wind speed: %w", err)
	}

	index := SeaIceWeight*sicScore + DriftWeight*driftScore + WindWeight*windScore
	return indexRange.Clamp(index), nil
}

var indexRange = Range{Min: 0, Max: 100}

// Assessment is the tuple handed to the presentation layer.
type Assessment struct {
	Date      time.Time `json:"-"`
	RiskIndex float64   `json:"risk_index"`
	Status    Status    `json:"status"`
	Guidance  string    `json:"guidance"`
	Readings  Readings  `json:"readings"`
}

// DateString formats the assessment date as YYYY-MM-DD.
func (a Assessment) DateString() string {
	return a.Date.Format(time.DateOnly)
}

// MarshalJSON renders the date as YYYY-MM-DD and adds the status color.
func (a Assessment) MarshalJSON() ([]byte, error) {
	type plain Assessment
	return json.Marshal(struct {
		Date  string `json:"date"`
		Color string `json:"color"`
		plain
	}{
		Date:  a.DateString(),
		Color: a.Status.Color(),
		plain: plain(a),
	})
}

// Assess evaluates a set of readings and stamps the result with today's UTC date.
func Assess(r Readings) (Assessment, error) {
	index, err := ComputeRiskIndex(r)
	if err != nil {
		return Assessment{}, fmt.Errorf("compute risk index: %w", err)
	}
	status, msg := Classify(index)

	now := clock.Now().UTC()
	return Assessment{
		Date:      time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		RiskIndex: index,
		Status:    status,
		Guidance:  msg,
		Readings:  r,
	}, nil
}
