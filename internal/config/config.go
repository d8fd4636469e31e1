package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/whiteelite/ixservice/pkg/logger"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBindAddr     = "127.0.0.1:8090"
	DefaultMaxBodyBytes = 1 << 20
	DefaultMetricsPath  = "/metrics"
	DefaultAuditBuffer  = 1024
)

type LogConfig struct {
	Format   string `yaml:"format"`   // console | json
	LogDir   string `yaml:"log_dir"`  // empty logs to stderr
	Level    string `yaml:"level"`    // debug / info / warn / error
	Compress bool   `yaml:"compress"` // gzip rotated files
}

func (c *LogConfig) ToLogOption() logger.LogOption {
	return logger.LogOption{
		Format:   c.Format,
		LogDir:   c.LogDir,
		Level:    c.Level,
		Compress: c.Compress,
	}
}

// HTTPConfig holds server timeouts in milliseconds.
type HTTPConfig struct {
	ReadHeaderTimeoutMs int   `yaml:"read_header_timeout_ms"`
	ReadTimeoutMs       int   `yaml:"read_timeout_ms"`
	WriteTimeoutMs      int   `yaml:"write_timeout_ms"`
	ShutdownTimeoutMs   int   `yaml:"shutdown_timeout_ms"`
	MaxBodyBytes        int64 `yaml:"max_body_bytes"`
}

func (c HTTPConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutMs) * time.Millisecond
}

func (c HTTPConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutMs) * time.Millisecond
}

func (c HTTPConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutMs) * time.Millisecond
}

func (c HTTPConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMs) * time.Millisecond
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// AuditConfig enables the kafka audit stream when Brokers is non-empty.
type AuditConfig struct {
	Brokers    string `yaml:"brokers"` // comma separated
	Topic      string `yaml:"topic"`
	BufferSize int    `yaml:"buffer_size"`
}

func (c AuditConfig) Enabled() bool {
	return len(c.BrokerList()) > 0
}

func (c AuditConfig) BrokerList() []string {
	var out []string
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

// Config is built once at startup and passed by value afterwards.
type Config struct {
	BindAddr  string        `yaml:"bind_addr"`
	LogConf   LogConfig     `yaml:"logger"`
	HTTPConf  HTTPConfig    `yaml:"http"`
	Metrics   MetricsConfig `yaml:"metrics"`
	AuditConf AuditConfig   `yaml:"audit"`
}

func Default() Config {
	c := Config{Metrics: MetricsConfig{Enabled: true}}
	c.Normalize()
	return c
}

// Load reads a yaml file. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	c := Config{Metrics: MetricsConfig{Enabled: true}}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) Normalize() {
	c.BindAddr = strings.TrimSpace(c.BindAddr)
	if c.BindAddr == "" {
		c.BindAddr = DefaultBindAddr
	}
	if c.HTTPConf.ReadHeaderTimeoutMs <= 0 {
		c.HTTPConf.ReadHeaderTimeoutMs = 5000
	}
	if c.HTTPConf.ReadTimeoutMs <= 0 {
		c.HTTPConf.ReadTimeoutMs = 10000
	}
	if c.HTTPConf.WriteTimeoutMs <= 0 {
		c.HTTPConf.WriteTimeoutMs = 10000
	}
	if c.HTTPConf.ShutdownTimeoutMs <= 0 {
		c.HTTPConf.ShutdownTimeoutMs = 5000
	}
	if c.HTTPConf.MaxBodyBytes <= 0 {
		c.HTTPConf.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
	if c.AuditConf.BufferSize <= 0 {
		c.AuditConf.BufferSize = DefaultAuditBuffer
	}
}

func (c Config) Validate() error {
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with '/': %q", c.Metrics.Path)
	}
	if c.AuditConf.Enabled() && strings.TrimSpace(c.AuditConf.Topic) == "" {
		return fmt.Errorf("audit.topic is required when audit.brokers is set")
	}
	return nil
}
