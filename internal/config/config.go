package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Theme    string `env:"ITEMLIST_THEME" envDefault:"classic"`
	NoColor  bool   `env:"ITEMLIST_NO_COLOR"`
	SeedFile string `env:"ITEMLIST_SEED_FILE"`
	LogLevel string `env:"ITEMLIST_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"ITEMLIST_LOG_FILE"`
	Version  bool   `env:"-"` // flag only
}

var themes = map[string]bool{"classic": true, "neon": true, "mono": true}

// Load reads .env, then the environment, then the root flags in args.
// Flags override env. The remaining positional args are returned.
func Load(args []string, usage io.Writer) (*Config, []string, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, nil, fmt.Errorf("env: %w", err)
	}

	fs := flag.NewFlagSet("itemlist", flag.ContinueOnError)
	if usage != nil {
		fs.SetOutput(usage)
	}
	fs.StringVar(&cfg.Theme, "theme", cfg.Theme, "color theme: classic|neon|mono")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable ANSI colors")
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "JSON or YAML file with the initial items")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file (default: no logs)")
	fs.BoolVar(&cfg.Version, "version", cfg.Version, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	cfg.Theme = strings.ToLower(strings.TrimSpace(cfg.Theme))
	if !themes[cfg.Theme] {
		cfg.Theme = "classic"
	}
	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	return cfg, fs.Args(), nil
}
