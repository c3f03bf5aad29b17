package config

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Default values for configuration
const (
	DefaultTickRate = 60
	MaxTickRate     = 240
	DefaultLogLevel = "info"
	EnvPrefix       = "TERMPONG"
)

// PlayerType selects who drives a paddle
type PlayerType string

const (
	Human PlayerType = "human"
	AI    PlayerType = "ai"
)

// ParsePlayerType accepts "human" or "ai" in any case
func ParsePlayerType(s string) (PlayerType, error) {
	switch PlayerType(strings.ToLower(strings.TrimSpace(s))) {
	case Human:
		return Human, nil
	case AI:
		return AI, nil
	}
	return "", errors.Errorf("player type must be %q or %q, got %q", Human, AI, s)
}

// Config holds the application configuration
type Config struct {
	Left     PlayerType
	Right    PlayerType
	TickRate int
	Seed     uint64
	Mute     bool
	LogFile  string
	LogLevel string
}

// ParseArgs parses command line arguments, then fills anything not given on
// the command line from TERMPONG_* environment variables and the optional
// --config file.
func ParseArgs(args []string) (*Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "bind flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	return fromViper(v)
}

// Usage returns the option summary printed by the command
func Usage() string {
	return newFlagSet().FlagUsages()
}

// newFlagSet declares every option. Output is discarded: the caller decides
// how to report errors and usage.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("termpong", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	fs.StringP("left", "l", string(Human), "left player type (human|ai)")
	fs.StringP("right", "r", string(AI), "right player type (human|ai)")
	fs.Int("fps", DefaultTickRate, "simulation ticks per second")
	fs.Uint64("seed", 0, "random seed for serves (0 = random)")
	fs.Bool("mute", false, "disable sound effects")
	fs.String("log-file", "", "write logs to this file")
	fs.String("log-level", DefaultLogLevel, "log level (debug|info|warn|error)")
	fs.String("config", "", "config file (yaml, toml or json)")

	return fs
}

func fromViper(v *viper.Viper) (*Config, error) {
	left, err := ParsePlayerType(v.GetString("left"))
	if err != nil {
		return nil, errors.Wrap(err, "left")
	}
	right, err := ParsePlayerType(v.GetString("right"))
	if err != nil {
		return nil, errors.Wrap(err, "right")
	}

	fps := v.GetInt("fps")
	if fps < 1 || fps > MaxTickRate {
		return nil, errors.Errorf("fps must be between 1 and %d, got %d", MaxTickRate, fps)
	}

	level := strings.ToLower(v.GetString("log-level"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.Errorf("unknown log level %q", level)
	}

	cfg := &Config{
		Left:     left,
		Right:    right,
		TickRate: fps,
		Seed:     v.GetUint64("seed"),
		Mute:     v.GetBool("mute"),
		LogFile:  v.GetString("log-file"),
		LogLevel: level,
	}

	return cfg, nil
}
