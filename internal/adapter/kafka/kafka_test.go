package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/polar-risk-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
	a := domain.Assessment{
		Date:      time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC),
		RiskIndex: 58.2,
		Status:    domain.StatusHigh,
		Guidance:  domain.StatusHigh.Guidance(),
	}

	msg, err := serializeToMessage(a, now)
	require.NoError(t, err)

	assert.Equal(t, []byte("2026-10-18"), msg.Key)
	assert.Contains(t, string(msg.Value), `"status":"High"`)
	assert.Contains(t, string(msg.Value), `"date":"2026-10-18"`)
	assert.Len(t, msg.Headers, 2)
	assert.Equal(t, "status", msg.Headers[0].Key)
	assert.Equal(t, []byte("High"), msg.Headers[0].Value)
	assert.Equal(t, "assessed_at", msg.Headers[1].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[1].Value)
}

func TestSerializeToMessage_InvalidStatus(t *testing.T) {
	_, err := serializeToMessage(domain.Assessment{Status: domain.Status(7)}, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serialize assessment")
}
