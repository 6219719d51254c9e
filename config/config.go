// Package config loads urlkit settings.
// Precedence (highest wins): explicit flags > env > config file > defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gaurav-prasanna/urlkit/logging"
	"github.com/gaurav-prasanna/urlkit/rewrite"
)

// EnvPrefix prefixes every environment variable, e.g. URLKIT_LOG_LEVEL.
const EnvPrefix = "URLKIT"

// Config holds the settings shared by all urlkit commands.
type Config struct {
	Env      string `mapstructure:"env"`       // "dev" | "prod"
	LogLevel string `mapstructure:"log_level"` // debug, info, warn, error …

	// RewriteTargets lists tag@attr pairs rewritten by the rewrite command.
	RewriteTargets []string `mapstructure:"rewrite_targets"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"env":       "env",
	"log_level": "log_level",
	"target":    "rewrite_targets",
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config file. When empty, urlkit.{yaml,yml,json,toml}
	// in the working directory is merged if present.
	ConfigFile string
	// Flags are the parsed command flags; only flags the user set override.
	Flags *pflag.FlagSet
	// DotEnv loads .env from the working directory first. Real env still wins.
	DotEnv bool
}

// Load merges defaults → config file → env vars → explicit flags into one Config.
func Load(opts Options, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	// 0) Optional .env
	if opts.DotEnv {
		if err := godotenv.Load(); err == nil {
			logger.Debug("loaded .env file")
		}
	}

	// 1) Viper + env
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for _, k := range allKeys() {
		_ = v.BindEnv(k)
	}

	// 2) Config file
	if err := mergeConfigFile(v, opts.ConfigFile, logger); err != nil {
		return nil, err
	}

	// 3) Defaults (lowest precedence)
	setDefaults(v)

	// 4) Explicit flags (highest precedence)
	if opts.Flags != nil {
		opts.Flags.VisitAll(func(f *pflag.Flag) {
			key, ok := flagKeys[f.Name]
			if ok && f.Changed {
				_ = v.BindPFlag(key, f)
			}
		})
	}

	// 5) Env and files may carry lists as strings
	if err := normalizeListKeys(v, "rewrite_targets"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var invalid []string

	if c.Env != "dev" && c.Env != "prod" {
		invalid = append(invalid, `env must be "dev" or "prod"`)
	}
	if !logging.IsValidLogLevel(c.LogLevel) {
		invalid = append(invalid, "log_level must be one of "+strings.Join(logging.ValidLogLevels, ", "))
	}
	if _, err := rewrite.ParseTargets(c.RewriteTargets); err != nil {
		invalid = append(invalid, "rewrite_targets: "+err.Error())
	}

	if len(invalid) == 0 {
		return nil
	}
	return fmt.Errorf("configuration errors: %s", strings.Join(invalid, ", "))
}

func allKeys() []string {
	return []string{"env", "log_level", "rewrite_targets"}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "warn")
	v.SetDefault("rewrite_targets", rewrite.DefaultTargets)
}

func mergeConfigFile(v *viper.Viper, explicit string, logger *zap.Logger) error {
	if explicit != "" {
		v.SetConfigFile(explicit)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", explicit, err)
		}
		logger.Debug("loaded config file", zap.String("file", explicit))
		return nil
	}

	for _, ext := range [...]string{"yaml", "yml", "json", "toml"} {
		file := "urlkit." + ext
		f, err := os.Open(file)
		if err != nil {
			continue
		}
		v.SetConfigType(ext)
		err = v.MergeConfig(f)
		f.Close()
		if err != nil {
			logger.Warn("cannot decode config file", zap.String("file", file), zap.Error(err))
			continue
		}
		logger.Debug("loaded config file", zap.String("file", file))
	}
	return nil
}

// normalizeListKeys coerces string values into []string for the given keys.
// Strings may be JSON arrays or comma-separated lists.
func normalizeListKeys(v *viper.Viper, keys ...string) error {
	for _, key := range keys {
		switch t := v.Get(key).(type) {
		case string:
			s := strings.TrimSpace(t)
			if s == "" {
				v.Set(key, []string{})
				continue
			}
			var arr []string
			if strings.HasPrefix(s, "[") {
				if err := json.Unmarshal([]byte(s), &arr); err != nil {
					return fmt.Errorf("config key %q expects a JSON array string, got %q: %w", key, s, err)
				}
			} else {
				for _, part := range strings.Split(s, ",") {
					if part = strings.TrimSpace(part); part != "" {
						arr = append(arr, part)
					}
				}
			}
			v.Set(key, arr)
		case []interface{}:
			arr := make([]string, 0, len(t))
			for _, e := range t {
				arr = append(arr, fmt.Sprint(e))
			}
			v.Set(key, arr)
		}
	}
	return nil
}
