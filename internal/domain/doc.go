// Package domain computes the Polar Risk Index from sea-ice readings.
//
// # Inputs
//
// Three readings feed the index, each with a fixed domain range:
//
//	Sea-ice concentration   0–100  percent of ocean surface covered by ice
//	Ice drift speed         0–30   km/day-equivalent
//	Wind speed              0–25   m/s
//
// Readings outside their range are clamped, never rejected. The upstream feed is
// allowed to be stale or slightly out of range.
//
// # Index
//
// Each reading is rescaled onto 0–100 and combined with fixed weights:
//
//	index = 0.4*sic + 0.3*drift + 0.3*wind
//
// The weights sum to 1.0 so the index stays within 0–100. Both the weights and the
// status thresholds below are provisional and must not be recalibrated here.
//
// # Status
//
// Half-open, lower-inclusive buckets:
//
//	[0, 30)    Low
//	[30, 50)   Moderate
//	[50, 70)   High
//	[70, 100]  Extreme
//
// Each status carries one fixed guidance sentence shown next to the index.
package domain
