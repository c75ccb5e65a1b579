package assessment

import (
	"context"

	"github.com/couchcryptid/polar-risk-service/internal/config"
	"github.com/couchcryptid/polar-risk-service/internal/domain"
)

// StaticSource serves a fixed set of readings. It stands in for a live sensor
// feed and implements ReadingSource.
type StaticSource struct {
	readings domain.Readings
}

// NewStaticSource returns a source that always yields r.
func NewStaticSource(r domain.Readings) *StaticSource {
	return &StaticSource{readings: r}
}

// SourceFromConfig builds a StaticSource from the configured readings.
func SourceFromConfig(cfg *config.Config) *StaticSource {
	return NewStaticSource(domain.Readings{
		SeaIceConcentration: cfg.SeaIceConcentration,
		DriftSpeed:          cfg.DriftSpeed,
		WindSpeed:           cfg.WindSpeed,
	})
}

// Readings returns the fixed readings unless ctx is already done.
func (s *StaticSource) Readings(ctx context.Context) (domain.Readings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Readings{}, err
	}
	return s.readings, nil
}
