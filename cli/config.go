package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/reoring/godecode/i18n"
	"github.com/reoring/godecode/source"
)

// Config holds CLI settings read from a TOML file.
//
//	format = "yaml"        # json, yaml or toml; empty infers from the file name
//	max_depth = 64
//	duplicates = "error"   # last_wins, warn or error
//	language = "en"        # message language for --issues
type Config struct {
	Format     string `toml:"format"`
	MaxDepth   int    `toml:"max_depth"`
	Duplicates string `toml:"duplicates"`
	Language   string `toml:"language"`
}

// DefaultConfig is used when no config file is given.
func DefaultConfig() Config {
	return Config{Duplicates: "last_wins", Language: "en"}
}

// LoadConfig reads a TOML config file. Missing settings keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(os.ExpandEnv(path), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if _, err := cfg.options(); err != nil {
		return Config{}, err
	}
	if cfg.Format != "" {
		if _, err := parseFormat(cfg.Format); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func (c Config) options() (source.Options, error) {
	opts := source.Options{MaxDepth: c.MaxDepth}
	switch c.Duplicates {
	case "", "last_wins":
		opts.OnDuplicateKey = source.DuplicateLastWins
	case "warn":
		opts.OnDuplicateKey = source.DuplicateWarn
	case "error":
		opts.OnDuplicateKey = source.DuplicateError
	default:
		return source.Options{}, fmt.Errorf("invalid duplicates setting %q", c.Duplicates)
	}
	return opts, nil
}

func (c Config) apply() {
	i18n.SetLanguage(c.Language)
}

func parseFormat(s string) (source.Format, error) {
	switch f := source.Format(s); f {
	case source.JSON, source.YAML, source.TOML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}
