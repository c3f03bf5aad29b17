package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)

	assert.Equal(t, Human, cfg.Left)
	assert.Equal(t, AI, cfg.Right)
	assert.Equal(t, DefaultTickRate, cfg.TickRate)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.False(t, cfg.Mute)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--left", "ai", "--right", "Human", "--fps", "30", "--seed", "99",
		"--mute", "--log-file", "/tmp/pong.log", "--log-level", "DEBUG"}
	cfg, err := ParseArgs(args)
	require.NoError(t, err)

	assert.Equal(t, AI, cfg.Left)
	assert.Equal(t, Human, cfg.Right)
	assert.Equal(t, 30, cfg.TickRate)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.Mute)
	assert.Equal(t, "/tmp/pong.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseArgs_Shorthands(t *testing.T) {
	cfg, err := ParseArgs([]string{"-l", "ai", "-r", "ai"})
	require.NoError(t, err)

	assert.Equal(t, AI, cfg.Left)
	assert.Equal(t, AI, cfg.Right)
}

func TestParseArgs_Environment(t *testing.T) {
	t.Setenv("TERMPONG_RIGHT", "human")
	t.Setenv("TERMPONG_LOG_LEVEL", "warn")
	t.Setenv("TERMPONG_FPS", "120")

	cfg, err := ParseArgs([]string{"--fps", "50"})
	require.NoError(t, err)

	assert.Equal(t, Human, cfg.Right)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 50, cfg.TickRate, "flags take precedence over the environment")
}

func TestParseArgs_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "termpong.yaml")
	content := "left: ai\nfps: 90\nmute: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := ParseArgs([]string{"--config", path, "--right", "human"})
	require.NoError(t, err)

	assert.Equal(t, AI, cfg.Left)
	assert.Equal(t, Human, cfg.Right)
	assert.Equal(t, 90, cfg.TickRate)
	assert.True(t, cfg.Mute)
}

func TestParseArgs_MissingConfigFile(t *testing.T) {
	_, err := ParseArgs([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestParseArgs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown left player", []string{"--left", "robot"}},
		{"unknown right player", []string{"--right", ""}},
		{"fps zero", []string{"--fps", "0"}},
		{"fps too high", []string{"--fps", "241"}},
		{"fps not a number", []string{"--fps", "fast"}},
		{"bad log level", []string{"--log-level", "loud"}},
		{"unknown flag", []string{"--server"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseArgs(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	_, err := ParseArgs([]string{"--help"})
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestParseArgs_FPSBoundaries(t *testing.T) {
	tests := []struct {
		name string
		fps  string
		want int
	}{
		{"minimum", "1", 1},
		{"maximum", "240", MaxTickRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseArgs([]string{"--fps", tt.fps})
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.TickRate)
		})
	}
}

func TestParsePlayerType(t *testing.T) {
	pt, err := ParsePlayerType(" AI ")
	require.NoError(t, err)
	assert.Equal(t, AI, pt)

	_, err = ParsePlayerType("cpu")
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	usage := Usage()

	for _, flag := range []string{"--left", "--right", "--fps", "--seed", "--mute", "--log-file", "--log-level", "--config"} {
		assert.Contains(t, usage, flag)
	}
}
