// Package config loads client settings from defaults, an optional config
// file and WORLDSIM_ prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "WORLDSIM"

type WorldConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	// ID 0 asks the simulator for a new world.
	ID int64 `mapstructure:"id"`
}

type ConnectionConfig struct {
	WorkerThreads       int           `mapstructure:"worker_threads"`
	ConnectTimeout      time.Duration `mapstructure:"connect_timeout"`
	HandshakeTimeout    time.Duration `mapstructure:"handshake_timeout"`
	WriteTimeout        time.Duration `mapstructure:"write_timeout"`
	ReadIdleTimeout     time.Duration `mapstructure:"read_idle_timeout"`
	KeepAlive           bool          `mapstructure:"keep_alive"`
	TCPNoDelay          bool          `mapstructure:"tcp_no_delay"`
	OutgoingQueueLength int           `mapstructure:"outgoing_queue_length"`
}

type ReconnectConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// MaxAttempts -1 retries forever.
	MaxAttempts       int           `mapstructure:"max_attempts"`
	InitialDelay      time.Duration `mapstructure:"initial_delay"`
	MaxDelay          time.Duration `mapstructure:"max_delay"`
	BackoffMultiplier float64       `mapstructure:"backoff_multiplier"`
}

type MessageConfig struct {
	ResponseTimeout     time.Duration `mapstructure:"response_timeout"`
	QueryTimeout        time.Duration `mapstructure:"query_timeout"`
	MaxPendingResponses int           `mapstructure:"max_pending_responses"`
	AckInbound          bool          `mapstructure:"ack_inbound"`
}

type SimulationConfig struct {
	// Speed 0 leaves the simulator default alone.
	Speed uint32 `mapstructure:"speed"`
}

type DebugFeedConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	ListenAddress  string   `mapstructure:"listen_address"`
	Endpoint       string   `mapstructure:"endpoint"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RecentBuffer   int      `mapstructure:"recent_buffer"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type FleetConfig struct {
	Path string `mapstructure:"path"`
}

type Config struct {
	World      WorldConfig      `mapstructure:"world"`
	Connection ConnectionConfig `mapstructure:"connection"`
	Reconnect  ReconnectConfig  `mapstructure:"reconnect"`
	Message    MessageConfig    `mapstructure:"message"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	DebugFeed  DebugFeedConfig  `mapstructure:"debug_feed"`
	Log        LogConfig        `mapstructure:"log"`
	Fleet      FleetConfig      `mapstructure:"fleet"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("world.host", "localhost")
	v.SetDefault("world.port", 12345)
	v.SetDefault("world.id", 0)

	v.SetDefault("connection.worker_threads", 1)
	v.SetDefault("connection.connect_timeout", 10*time.Second)
	v.SetDefault("connection.handshake_timeout", 30*time.Second)
	v.SetDefault("connection.write_timeout", 5*time.Second)
	v.SetDefault("connection.read_idle_timeout", 0)
	v.SetDefault("connection.keep_alive", true)
	v.SetDefault("connection.tcp_no_delay", true)
	v.SetDefault("connection.outgoing_queue_length", 256)

	v.SetDefault("reconnect.enabled", true)
	v.SetDefault("reconnect.max_attempts", 10)
	v.SetDefault("reconnect.initial_delay", time.Second)
	v.SetDefault("reconnect.max_delay", 30*time.Second)
	v.SetDefault("reconnect.backoff_multiplier", 2.0)

	v.SetDefault("message.response_timeout", 30*time.Second)
	v.SetDefault("message.query_timeout", 10*time.Second)
	v.SetDefault("message.max_pending_responses", 1000)
	v.SetDefault("message.ack_inbound", true)

	v.SetDefault("simulation.speed", 0)

	v.SetDefault("debug_feed.enabled", false)
	v.SetDefault("debug_feed.listen_address", ":3000")
	v.SetDefault("debug_feed.endpoint", "/ws/debug")
	v.SetDefault("debug_feed.allowed_origins", []string{})
	v.SetDefault("debug_feed.recent_buffer", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)

	v.SetDefault("fleet.path", "")
}

// Default is the configuration with no file and no environment overrides.
func Default() Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("config defaults do not decode: %v", err))
	}
	return cfg
}

// Load reads path (if non-empty) on top of the defaults, then applies
// environment overrides such as WORLDSIM_WORLD_HOST.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []string

	if c.World.Host == "" {
		problems = append(problems, "world.host is empty")
	}
	if c.World.Port <= 0 || c.World.Port > 65535 {
		problems = append(problems, fmt.Sprintf("world.port %d is out of range", c.World.Port))
	}
	if c.World.ID < 0 {
		problems = append(problems, "world.id must not be negative")
	}
	if c.Connection.WorkerThreads < 1 {
		problems = append(problems, "connection.worker_threads must be at least 1")
	}
	if c.Reconnect.MaxAttempts < -1 {
		problems = append(problems, "reconnect.max_attempts must be -1 or more")
	}
	if c.Reconnect.BackoffMultiplier < 1 {
		problems = append(problems, "reconnect.backoff_multiplier must be at least 1")
	}
	if c.Message.ResponseTimeout <= 0 || c.Message.QueryTimeout <= 0 {
		problems = append(problems, "message timeouts must be positive")
	}
	if c.Message.MaxPendingResponses < 1 {
		problems = append(problems, "message.max_pending_responses must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// WorldIDOrNil maps the "create a new world" id 0 to nil.
func (c Config) WorldIDOrNil() *int64 {
	if c.World.ID == 0 {
		return nil
	}
	id := c.World.ID
	return &id
}
