package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "payment-confirmations", cfg.Kafka.Topic)
	assert.Equal(t, 7*time.Second, cfg.Funnel.AnalysisMinWait)
	assert.Equal(t, 9*time.Second, cfg.Funnel.AgentSearchWait)
	assert.Equal(t, 3*time.Second, cfg.Funnel.AgentFoundWait)
	assert.Equal(t, int64(13990), cfg.Funnel.EntryAmountCents)
	assert.Equal(t, 5*time.Second, cfg.Gateway.PollInterval)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FUNNEL_SERVER_PORT", "9999")
	t.Setenv("FUNNEL_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Funnel.EntryAmountCents = 0
	assert.Error(t, cfg.Validate())

	cfg.Funnel.EntryAmountCents = 13990
	cfg.Kafka.Brokers = nil
	assert.Error(t, cfg.Validate())

	cfg.Kafka.Brokers = []string{"localhost:9092"}
	cfg.Server.Port = ""
	assert.Error(t, cfg.Validate())
}
