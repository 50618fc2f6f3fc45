package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Redis       RedisConfig
	Kafka       KafkaConfig
	Gateway     GatewayConfig
	Attribution AttributionConfig
	Lookup      LookupConfig
	Chat        ChatConfig
	Funnel      FunnelConfig
}

type ServerConfig struct {
	Port            string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// GatewayConfig holds the PIX gateway settings. The credentialed endpoint
// lives only here, server-side; it is never handed to a client.
type GatewayConfig struct {
	URL          string
	Timeout      time.Duration
	QRCodeURL    string
	PollInterval time.Duration
}

type AttributionConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

type LookupConfig struct {
	URL     string
	Timeout time.Duration
}

// ChatConfig identifies the embedded chat widget the funnel hands off to.
type ChatConfig struct {
	WidgetID string
	APIHost  string
}

// FunnelConfig carries the timed-wait durations and the fixed entry amount
// charged on the payment step.
type FunnelConfig struct {
	AnalysisMinWait  time.Duration
	AgentSearchWait  time.Duration
	AgentFoundWait   time.Duration
	EntryAmountCents int64
	SessionTTL       time.Duration
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FUNNEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.requesttimeout", 30*time.Second)
	v.SetDefault("server.shutdowntimeout", 10*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "payment-confirmations")
	v.SetDefault("kafka.groupid", "funnel-confirm-consumer")

	v.SetDefault("gateway.url", "")
	v.SetDefault("gateway.timeout", 30*time.Second)
	v.SetDefault("gateway.qrcodeurl", "https://api.qrserver.com/v1/create-qr-code/")
	v.SetDefault("gateway.pollinterval", 5*time.Second)

	v.SetDefault("attribution.url", "https://api.utmify.com.br/api-credentials/orders")
	v.SetDefault("attribution.token", "")
	v.SetDefault("attribution.timeout", 30*time.Second)

	v.SetDefault("lookup.url", "")
	v.SetDefault("lookup.timeout", 30*time.Second)

	v.SetDefault("chat.widgetid", "")
	v.SetDefault("chat.apihost", "")

	v.SetDefault("funnel.analysisminwait", 7*time.Second)
	v.SetDefault("funnel.agentsearchwait", 9*time.Second)
	v.SetDefault("funnel.agentfoundwait", 3*time.Second)
	v.SetDefault("funnel.entryamountcents", int64(13990))
	v.SetDefault("funnel.sessionttl", 24*time.Hour)
}

// Validate checks settings a misconfigured deployment would trip over at runtime.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.Funnel.EntryAmountCents <= 0 {
		return fmt.Errorf("entry amount must be positive, got %d", c.Funnel.EntryAmountCents)
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("at least one kafka broker is required")
	}
	return nil
}
