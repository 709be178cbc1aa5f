package testkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEST_REDIS_ADDR", "localhost:6399")
	t.Setenv("TEST_STARTUP_TIMEOUT", "45")
	t.Setenv("KEEP_CONTAINERS", "nope")

	cfg := LoadConfig()
	assert.Equal(t, "localhost:6399", cfg.RedisAddr)
	assert.Equal(t, "redis:8.4.0-alpine", cfg.RedisImage)
	assert.Equal(t, 45*time.Second, cfg.StartupTimeout)
	assert.False(t, cfg.KeepContainers)
}

func TestExtractAddr(t *testing.T) {
	addr, err := extractAddr("redis://localhost:32768")
	assert.NoError(t, err)
	assert.Equal(t, "localhost:32768", addr)
}
