package middleware

import (
	"net/http"
	"testing"

	"github.com/Ayush5112006/dduhack-sub002/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterWriteTierIsTighter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		ReadPerMinute:  100,
		ReadBurst:      5,
		WritePerMinute: 10,
		WriteBurst:     2,
	})

	for i := 0; i < 2; i++ {
		assert.True(t, rl.Allow("10.0.0.1", http.MethodPost))
	}
	assert.False(t, rl.Allow("10.0.0.1", http.MethodPost))

	// Reads draw from their own bucket, unaffected by the exhausted writes
	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("10.0.0.1", http.MethodGet))
	}
	assert.False(t, rl.Allow("10.0.0.1", http.MethodGet))
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		ReadPerMinute:  100,
		ReadBurst:      1,
		WritePerMinute: 10,
		WriteBurst:     1,
	})

	assert.True(t, rl.Allow("10.0.0.1", http.MethodGet))
	assert.False(t, rl.Allow("10.0.0.1", http.MethodGet))
	assert.True(t, rl.Allow("10.0.0.2", http.MethodGet))
}
