package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/any-keys/app"
	"github.com/anyproto/any-keys/app/filelog"
	"github.com/anyproto/any-keys/app/logger"
	"github.com/anyproto/any-keys/keystore"
	"github.com/anyproto/any-keys/metric"
)

const CName = "config"

const (
	EnvHome       = "ANYKEYS_HOME"
	EnvLogLevel   = "ANYKEYS_LOG_LEVEL"
	EnvMetricAddr = "ANYKEYS_METRIC_ADDR"
	EnvPassphrase = "ANYKEYS_PASSPHRASE"
	EnvAuditLog   = "ANYKEYS_AUDIT_LOG"
)

const defaultHomeDir = ".anykeys"

var log = logger.NewNamed(CName)

// New returns a config with default values rooted at home
func New(home string) *Config {
	return &Config{Home: home}
}

func NewFromFile(path string) (c *Config, err error) {
	c = &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

// DefaultHome returns ~/.anykeys, or a relative .anykeys when the user home is unknown
func DefaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return defaultHomeDir
	}
	return filepath.Join(dir, defaultHomeDir)
}

// LoadEnvFiles loads variables from the given .env files without overriding already set ones, missing files are skipped
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}
	return nil
}

type Config struct {
	Home     string          `yaml:"home"`
	Log      logger.Config   `yaml:"log"`
	Metric   metric.Config   `yaml:"metric"`
	KeyStore keystore.Config `yaml:"keyStore"`
	FileLog  filelog.Config  `yaml:"auditLog"`
}

// ApplyEnv overrides file values with ANYKEYS_* environment variables
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvHome); v != "" {
		c.Home = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Levels = logger.LevelsFromStr(v)
	}
	if v := os.Getenv(EnvMetricAddr); v != "" {
		c.Metric.Addr = v
	}
	if v := os.Getenv(EnvAuditLog); v != "" {
		c.FileLog.Path = v
	}
}

func (c *Config) Init(a *app.App) (err error) {
	if c.Home == "" {
		c.Home = DefaultHome()
	}
	if c.KeyStore.Path == "" {
		c.KeyStore.Path = filepath.Join(c.Home, "keys")
	}
	log.Debug("config loaded", zap.String("home", c.Home), zap.String("keyStore", c.KeyStore.Path), zap.String("metricAddr", c.Metric.Addr))
	return
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetLogger() logger.Config {
	return c.Log
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetKeyStore() keystore.Config {
	return c.KeyStore
}

func (c *Config) GetFileLog() filelog.Config {
	return c.FileLog
}
