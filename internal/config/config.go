package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. FOLIO_SERVER_PORT.
const EnvPrefix = "FOLIO"

type Config struct {
	Server ServerConfig

	// Content source. An empty Dir serves the embedded content.
	ContentDir   string
	ContentWatch bool

	LogLevel  string
	LogFormat string

	// Live tracker sessions
	SessionTTL time.Duration
	SessionMax int

	HighlightMaxBytes int64

	ExportWorkers int
}

type ServerConfig struct {
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

// Addr is the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SetDefaults registers every key so AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 2*time.Minute)
	v.SetDefault("server.allowed_origins", []string{})

	v.SetDefault("content.dir", "")
	v.SetDefault("content.watch", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.max", 1000)

	v.SetDefault("highlight.max_bytes", 1<<20)

	v.SetDefault("export.workers", 4)
}

// New returns a viper instance wired for FOLIO_* environment overrides.
// A non-empty file is read as YAML; a missing file is an error.
func New(file string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return v, nil
}

func Load(v *viper.Viper) Config {
	cfg := Config{
		Server: ServerConfig{
			Host:           v.GetString("server.host"),
			Port:           v.GetInt("server.port"),
			ReadTimeout:    v.GetDuration("server.read_timeout"),
			WriteTimeout:   v.GetDuration("server.write_timeout"),
			IdleTimeout:    v.GetDuration("server.idle_timeout"),
			AllowedOrigins: splitList(v.GetStringSlice("server.allowed_origins")),
		},

		ContentDir:   v.GetString("content.dir"),
		ContentWatch: v.GetBool("content.watch"),

		LogLevel:  strings.ToLower(v.GetString("log.level")),
		LogFormat: strings.ToLower(v.GetString("log.format")),

		SessionTTL: v.GetDuration("session.ttl"),
		SessionMax: v.GetInt("session.max"),

		HighlightMaxBytes: v.GetInt64("highlight.max_bytes"),

		ExportWorkers: v.GetInt("export.workers"),
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8090
	}
	if cfg.Server.ReadTimeout <= 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout <= 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = 2 * time.Minute
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * time.Minute
	}
	if cfg.SessionMax < 0 {
		cfg.SessionMax = 0
	}
	if cfg.HighlightMaxBytes <= 0 {
		cfg.HighlightMaxBytes = 1 << 20
	}
	if cfg.ExportWorkers <= 0 {
		cfg.ExportWorkers = 4
	}

	return cfg
}

func (c Config) Validate() error {
	if c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q must be debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("log.format %q must be json or text", c.LogFormat)
	}
	if c.ContentWatch && c.ContentDir == "" {
		return fmt.Errorf("content.watch requires content.dir")
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
