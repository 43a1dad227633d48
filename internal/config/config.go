package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/LdDl/mot-postprocessor/mot"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultSocketPath is used when neither argument nor environment sets the socket
const DefaultSocketPath = "/tmp/tracker-postprocessor.sock"

// ConfigFileEnv names the environment variable pointing to an optional YAML file
const ConfigFileEnv = "TRACKER_CONFIG"

type Config struct {
	SocketPath string `yaml:"socket_path" env:"TRACKER_SOCKET_PATH"`
	LogLevel   string `yaml:"log_level"   env:"TRACKER_LOG_LEVEL"`
	Matcher    string `yaml:"matcher"     env:"TRACKER_MATCHER"`
	// 0 keeps tracks forever
	MaxMisses     int `yaml:"max_misses"     env:"TRACKER_MAX_MISSES"`
	MaxConcurrent int `yaml:"max_concurrent" env:"TRACKER_MAX_CONCURRENT"`
	// Bytes
	MaxMessageSize int           `yaml:"max_message_size" env:"TRACKER_MAX_MESSAGE_SIZE"`
	IOTimeout      time.Duration `yaml:"io_timeout"       env:"TRACKER_IO_TIMEOUT"`
	// 0 disables metrics server
	MetricsPort int `yaml:"metrics_port" env:"TRACKER_METRICS_PORT"`
}

// Default returns configuration the plugin runs with when nothing is set
func Default() *Config {
	return &Config{
		SocketPath:     DefaultSocketPath,
		LogLevel:       "info",
		Matcher:        mot.MatcherGreedy,
		MaxMisses:      0,
		MaxConcurrent:  4,
		MaxMessageSize: 64 * 1024 * 1024,
		IOTimeout:      5 * time.Second,
		MetricsPort:    0,
	}
}

// Load reads configuration from process environment and arguments (without program name)
func Load(args []string) (*Config, error) {
	return LoadFrom(args, env.ToMap(os.Environ()))
}

// LoadFrom applies, in order: defaults, YAML file named by TRACKER_CONFIG, environment,
// first positional argument as socket path.
func LoadFrom(args []string, environ map[string]string) (*Config, error) {
	cfg := Default()
	if path := environ[ConfigFileEnv]; path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if len(args) > 0 && args[0] != "" {
		cfg.SocketPath = args[0]
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) loadFile(path string) error {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension, got %q", ext)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	// Fields omitted from the file keep their current values
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", cleanPath, err)
	}
	return nil
}

// Validate checks values which can not be used as is
func (cfg *Config) Validate() error {
	if cfg.SocketPath == "" {
		return fmt.Errorf("socket path is empty")
	}
	if _, err := mot.MatcherByName(cfg.Matcher); err != nil {
		return fmt.Errorf("matcher: %w", err)
	}
	if cfg.MaxMisses < 0 {
		return fmt.Errorf("max_misses must not be negative, got %d", cfg.MaxMisses)
	}
	if cfg.MaxConcurrent <= 0 {
		return fmt.Errorf("max_concurrent must be positive, got %d", cfg.MaxConcurrent)
	}
	if cfg.MaxMessageSize <= 0 || int64(cfg.MaxMessageSize) > int64(^uint32(0)) {
		return fmt.Errorf("max_message_size out of range: %d", cfg.MaxMessageSize)
	}
	if cfg.IOTimeout < 0 {
		return fmt.Errorf("io_timeout must not be negative, got %s", cfg.IOTimeout)
	}
	if cfg.MetricsPort < 0 || cfg.MetricsPort > 65535 {
		return fmt.Errorf("metrics_port out of range: %d", cfg.MetricsPort)
	}
	return nil
}
