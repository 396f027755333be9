package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"techsnap/internal/log"
)

type Config struct {
	Env         string `mapstructure:"env"`
	ListenAddr  string `mapstructure:"listen_addr"`
	DatabaseURL string `mapstructure:"database_url"`
	APIURL      string `mapstructure:"api_url"`

	ScanWorkers  int           `mapstructure:"scan_workers"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	ClaimLease   time.Duration `mapstructure:"claim_lease"`
	MaxAttempts  int           `mapstructure:"max_attempts"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
	FetchRate    float64       `mapstructure:"fetch_rate"`
	UserAgent    string        `mapstructure:"user_agent"`
	DNSServer    string        `mapstructure:"dns_server"`
	WhoisServer  string        `mapstructure:"whois_server"`

	Log       log.Config `mapstructure:"log"`
	Reconcile Reconcile  `mapstructure:"reconcile"`
}

// Reconcile tunes how a client waits for a scan to show up in results.
type Reconcile struct {
	InitialDelay time.Duration `mapstructure:"initial_delay"`
	MaxDelay     time.Duration `mapstructure:"max_delay"`
	Multiplier   float64       `mapstructure:"multiplier"`
	MaxPolls     int           `mapstructure:"max_polls"`
}

var ErrNoDatabase = errors.New("DATABASE_URL not set")

// New returns a viper instance with defaults and TECHSNAP_* environment binding.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix("TECHSNAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("database_url", "TECHSNAP_DATABASE_URL", "DATABASE_URL")
	return v
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("api_url", "http://127.0.0.1:8080")
	v.SetDefault("scan_workers", 0)
	v.SetDefault("poll_interval", "500ms")
	v.SetDefault("claim_lease", "2m")
	v.SetDefault("max_attempts", 3)
	v.SetDefault("fetch_timeout", "15s")
	v.SetDefault("fetch_rate", 1.0)
	v.SetDefault("user_agent", "Mozilla/5.0 (compatible; techsnap/1.0)")
	v.SetDefault("dns_server", "")
	v.SetDefault("whois_server", "whois.iana.org:43")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("reconcile.initial_delay", "5s")
	v.SetDefault("reconcile.max_delay", "1m")
	v.SetDefault("reconcile.multiplier", 2.0)
	v.SetDefault("reconcile.max_polls", 6)
}

// ReadFile merges an optional YAML config file. An empty path looks for
// techsnap.yaml in the working directory and tolerates its absence.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("techsnap")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes v. A missing database URL is reported as ErrNoDatabase alongside
// a usable Config so commands that do not need the store can carry on.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.Reconcile.MaxPolls < 1 {
		cfg.Reconcile.MaxPolls = 1
	}
	if cfg.DatabaseURL == "" {
		return cfg, ErrNoDatabase
	}
	return cfg, nil
}
