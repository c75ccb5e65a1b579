package domain

import (
	"encoding/json"
	"fmt"
)

// Status is the ordinal risk level derived from the index.
type Status int

const (
	StatusLow Status = iota
	StatusModerate
	StatusHigh
	StatusExtreme
)

// Lower bounds of the Moderate, High and Extreme buckets.
const (
	ModerateThreshold = 30.0
	HighThreshold     = 50.0
	ExtremeThreshold  = 70.0
)

var statusNames = [...]string{
	StatusLow:      "Low",
	StatusModerate: "Moderate",
	StatusHigh:     "High",
	StatusExtreme:  "Extreme",
}

var guidance = [...]string{
	StatusLow:      "Current conditions indicate low operational risk.",
	StatusModerate: "Conditions are generally manageable, but localized or short-term risks may be present.",
	StatusHigh:     "Elevated risk detected. Conservative operational decisions are recommended.",
	StatusExtreme:  "Extreme risk conditions detected. Operational avoidance is strongly advised.",
}

var colors = [...]string{
	StatusLow:      "green",
	StatusModerate: "green",
	StatusHigh:     "orange",
	StatusExtreme:  "red",
}

// Statuses lists every status in ascending order.
func Statuses() []Status {
	return []Status{StatusLow, StatusModerate, StatusHigh, StatusExtreme}
}

// Classify maps a risk index onto its status and guidance message.
// Boundary values belong to the upper bucket. The function is total: values
// below 0 are Low and values above 100 are Extreme.
func Classify(index float64) (Status, string) {
	var s Status
	switch {
	case index >= ExtremeThreshold:
		s = StatusExtreme
	case index >= HighThreshold:
		s = StatusHigh
	case index >= ModerateThreshold:
		s = StatusModerate
	default:
		s = StatusLow
	}
	return s, s.Guidance()
}

func (s Status) valid() bool {
	return s >= StatusLow && s <= StatusExtreme
}

func (s Status) String() string {
	if !s.valid() {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// Guidance returns the fixed operator guidance for the status.
func (s Status) Guidance() string {
	if !s.valid() {
		return ""
	}
	return guidance[s]
}

// Color is the display tint for the status label.
func (s Status) Color() string {
	if !s.valid() {
		return ""
	}
	return colors[s]
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown risk status %q", name)
}

// MarshalJSON encodes the status by name, e.g. "High".
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("marshal risk status: invalid value %d", int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the names produced by MarshalJSON.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("unmarshal risk status: %w", err)
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
