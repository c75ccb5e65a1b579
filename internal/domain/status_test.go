package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		index float64
		want  Status
	}{
		{0, StatusLow},
		{29.999, StatusLow},
		{30, StatusModerate},
		{47.6, StatusModerate},
		{49.999, StatusModerate},
		{50, StatusHigh},
		{65, StatusHigh},
		{69.999, StatusHigh},
		{70, StatusExtreme},
		{100, StatusExtreme},
		{-1, StatusLow},
		{140, StatusExtreme},
	}

	for _, tt := range tests {
		status, msg := Classify(tt.index)
		assert.Equal(t, tt.want, status, "index %g", tt.index)
		assert.Equal(t, tt.want.Guidance(), msg, "index %g", tt.index)
	}
}

func TestClassify_HighGuidance(t *testing.T) {
	status, msg := Classify(65)
	assert.Equal(t, StatusHigh, status)
	assert.Equal(t, "Elevated risk detected. Conservative operational decisions are recommended.", msg)
}

func TestStatus_Guidance(t *testing.T) {
	assert.Equal(t, "Current conditions indicate low operational risk.", StatusLow.Guidance())
	assert.Equal(t, "Conditions are generally manageable, but localized or short-term risks may be present.", StatusModerate.Guidance())
	assert.Equal(t, "Elevated risk detected. Conservative operational decisions are recommended.", StatusHigh.Guidance())
	assert.Equal(t, "Extreme risk conditions detected. Operational avoidance is strongly advised.", StatusExtreme.Guidance())
	assert.Empty(t, Status(42).Guidance())
}

func TestStatus_StringAndColor(t *testing.T) {
	want := map[Status][2]string{
		StatusLow:      {"Low", "green"},
		StatusModerate: {"Moderate", "green"},
		StatusHigh:     {"High", "orange"},
		StatusExtreme:  {"Extreme", "red"},
	}
	for _, s := range Statuses() {
		assert.Equal(t, want[s][0], s.String())
		assert.Equal(t, want[s][1], s.Color())
	}
	assert.Equal(t, "Status(9)", Status(9).String())
}

func TestParseStatus(t *testing.T) {
	for _, s := range Statuses() {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseStatus("Severe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Severe")
}

func TestStatus_JSON(t *testing.T) {
	data, err := json.Marshal(StatusHigh)
	require.NoError(t, err)
	assert.JSONEq(t, `"High"`, string(data))

	var s Status
	require.NoError(t, json.Unmarshal([]byte(`"Extreme"`), &s))
	assert.Equal(t, StatusExtreme, s)

	require.Error(t, json.Unmarshal([]byte(`"Unknown"`), &s))
	require.Error(t, json.Unmarshal([]byte(`3`), &s))

	_, err = json.Marshal(Status(-1))
	require.Error(t, err)
}
