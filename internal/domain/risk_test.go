package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultReadings = Readings{SeaIceConcentration: 65, DriftSpeed: 12, WindSpeed: 8}

func TestComputeRiskIndex(t *testing.T) {
	tests := []struct {
		name     string
		readings Readings
		want     float64
	}{
		{"all maximum saturates", Readings{100, 30, 25}, 100},
		{"all minimum floors", Readings{0, 0, 0}, 0},
		{"documented defaults", defaultReadings, 47.6},
		{"out of range inputs clamp", Readings{250, -5, 99}, 70},
		{"ice only", Readings{100, 0, 0}, 40},
		{"drift only", Readings{0, 30, 0}, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeRiskIndex(tt.readings)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestComputeRiskIndex_Idempotent(t *testing.T) {
	first, err := ComputeRiskIndex(defaultReadings)
	require.NoError(t, err)
	for range 10 {
		again, err := ComputeRiskIndex(defaultReadings)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, SeaIceWeight+DriftWeight+WindWeight, 1e-12)
}

func TestAssess(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.January, 15, 22, 30, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })

	a, err := Assess(defaultReadings)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), a.Date)
	assert.Equal(t, "2026-01-15", a.DateString())
	assert.InDelta(t, 47.6, a.RiskIndex, 1e-9)
	assert.Equal(t, StatusModerate, a.Status)
	assert.Equal(t, "Conditions are generally manageable, but localized or short-term risks may be present.", a.Guidance)
	assert.Equal(t, defaultReadings, a.Readings)
}

func TestAssess_Repeatable(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)))
	t.Cleanup(func() { SetClock(nil) })

	first, err := Assess(defaultReadings)
	require.NoError(t, err)
	second, err := Assess(defaultReadings)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssessment_MarshalJSON(t *testing.T) {
	a := Assessment{
		Date:      time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC),
		RiskIndex: 72.5,
		Status:    StatusExtreme,
		Guidance:  StatusExtreme.Guidance(),
		Readings:  Readings{SeaIceConcentration: 90, DriftSpeed: 20, WindSpeed: 20},
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"date": "2026-10-18",
		"color": "red",
		"risk_index": 72.5,
		"status": "Extreme",
		"guidance": "Extreme risk conditions detected. Operational avoidance is strongly advised.",
		"readings": {"sea_ice_concentration": 90, "drift_speed": 20, "wind_speed": 20}
	}`, string(data))
}
