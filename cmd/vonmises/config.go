package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/comalice/circstatx"
)

// Config is the environment-level configuration. Command-line flags take
// precedence over it.
type Config struct {
	Terms       int    `env:"VONMISES_TERMS" envDefault:"100"`
	Domain      string `env:"VONMISES_DOMAIN" envDefault:"reject"`
	Format      string `env:"VONMISES_FORMAT" envDefault:"text"`
	LogLevel    string `env:"VONMISES_LOG_LEVEL" envDefault:"warn"`
	Concurrency int    `env:"VONMISES_CONCURRENCY" envDefault:"0"`
}

// LoadConfig reads envFile into the process environment (existing variables
// win) and parses Config. A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options translates the config into evaluator options.
func (c Config) Options() ([]circstatx.Option, error) {
	policy, err := circstatx.ParseDomainPolicy(c.Domain)
	if err != nil {
		return nil, err
	}
	return []circstatx.Option{
		circstatx.WithTerms(c.Terms),
		circstatx.WithDomainPolicy(policy),
		circstatx.WithConcurrency(c.Concurrency),
	}, nil
}

func newLogger(level string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	logger.SetLevel(lvl)
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})
	if err != nil && level != "" {
		logger.WithField("level", level).Warn("unknown log level, using warn")
	}
	return logger
}
