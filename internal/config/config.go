package config

import (
	"errors"
	"io"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/xgx-io/xgx-checked"
)

const (
	// EnvPrefix prefixes every environment override, e.g. PATHCHECK_MAX_SIZE.
	EnvPrefix = "PATHCHECK"

	DefaultLogLevel = "warn"
	DefaultEnvFile  = ".env"
)

type Config struct {
	MaxSize      int64  `mapstructure:"max-size"`
	AllowMissing bool   `mapstructure:"allow-missing"`
	LogLevel     string `mapstructure:"log-level"`
	Paths        []string
}

var kindConfig = checked.LazyKind("config", nil)

// Error reports unusable settings: bad flags, bad values, no paths.
type Error struct {
	checked.NoCode
	Key string
	Msg string
}

func (*Error) Kind() *checked.Kind { return kindConfig() }

func (e *Error) Error() string {
	if e.Key == "" {
		return e.Msg
	}
	return e.Key + ": " + e.Msg
}

// Load reads settings from, lowest precedence first: defaults, an optional
// config file (--config), the .env file, PATHCHECK_* variables, and flags.
// Positional arguments are the paths to check.
func Load(args []string) *checked.Expected[*Config] {
	flags := pflag.NewFlagSet("pathcheck", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	configFile := flags.String("config", "", "Read settings from this file")
	envFile := flags.String("env-file", "", "Load environment variables from this file")
	flags.Int64("max-size", 0, "Largest acceptable file size in bytes (0 disables the check)")
	flags.Bool("allow-missing", false, "Do not fail on paths that do not exist")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")

	if err := flags.Parse(args); err != nil {
		return checked.FailWith[*Config](&Error{Msg: err.Error()})
	}

	if err := loadEnv(*envFile); err.Failed() {
		return checked.FromError[*Config](err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-level", DefaultLogLevel)
	if err := v.BindPFlags(flags); err != nil {
		return checked.FromError[*Config](checked.FromStd(err))
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return checked.FromError[*Config](checked.WithFile(*configFile, checked.FromStd(err)))
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return checked.FromError[*Config](checked.FromStd(err))
	}
	cfg.Paths = flags.Args()

	if err := cfg.validate(); err.Failed() {
		return checked.FromError[*Config](err)
	}
	return checked.Value(cfg)
}

// loadEnv loads name, or the default .env if name is empty. Only the default
// file may be absent.
func loadEnv(name string) *checked.Error {
	if name != "" {
		if err := godotenv.Load(name); err != nil {
			return checked.WithFile(name, checked.FromStd(err))
		}
		return nil
	}
	if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return checked.WithFile(DefaultEnvFile, checked.FromStd(err))
	}
	return nil
}

// validate joins every problem found, so one run reports all of them.
func (c *Config) validate() *checked.Error {
	var errs []*checked.Error
	if c.MaxSize < 0 {
		errs = append(errs, checked.Fail(&Error{Key: "max-size", Msg: "must not be negative"}))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, checked.Fail(&Error{Key: "log-level", Msg: "unknown level " + strings.TrimSpace(c.LogLevel)}))
	}
	if len(c.Paths) == 0 {
		errs = append(errs, checked.Fail(&Error{Msg: "no paths given"}))
	}
	return checked.Join(errs...)
}
