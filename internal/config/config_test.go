package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfig_Defaults(t *testing.T) {
	cfg := LoadRateLimitConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 30, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Second, cfg.RefillInterval)
	assert.Equal(t, 10*time.Minute, cfg.TTL)
	assert.Equal(t, "rl", cfg.Prefix)
}

func TestLoadRateLimitConfig_FromEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")

	cfg := LoadRateLimitConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 5, cfg.Capacity)
	assert.Equal(t, 2*time.Second, cfg.RefillInterval)
}

func TestLoadRateLimitConfig_TTLClampedToRefillCycle(t *testing.T) {
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "30s")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestLoadCacheConfig_Defaults(t *testing.T) {
	cfg := LoadCacheConfig()

	assert.True(t, cfg.Enabled)
	assert.True(t, cfg.Methods["GET"])
	assert.False(t, cfg.Methods["POST"])
	assert.Equal(t, 5*time.Minute, cfg.TTL)
	assert.Equal(t, 1<<20, cfg.MaxBodyBytes)
}

func TestParseMethods(t *testing.T) {
	m := parseMethods("get, Head ,")
	assert.True(t, m["GET"])
	assert.True(t, m["HEAD"])
	assert.Len(t, m, 2)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "val")
	t.Setenv("X_INT", "7")
	t.Setenv("X_BAD_INT", "seven")
	t.Setenv("X_BOOL", "yes")
	t.Setenv("X_DUR", "250ms")

	assert.Equal(t, "val", envStr("X_STR", "d"))
	assert.Equal(t, "d", envStr("X_MISSING", "d"))
	assert.Equal(t, 7, envInt("X_INT", 1))
	assert.Equal(t, 1, envInt("X_BAD_INT", 1))
	assert.True(t, envBool("X_BOOL", false))
	assert.Equal(t, 250*time.Millisecond, envDur("X_DUR", time.Second))
}
