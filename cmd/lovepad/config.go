package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/lovepotion/love/renderstate"
)

// envPrefix prefixes the environment overrides, e.g. LOVEPAD_DEADZONE.
const envPrefix = "LOVEPAD"

type config struct {
	LogLevel       slog.Level
	Deadzone       float32
	AxisThreshold  float32
	Rumble         bool
	RumbleDuration time.Duration
	Blend          renderstate.BlendMode
	Script         string
}

// loadConfig merges, from lowest to highest precedence, the defaults, the
// --config file, LOVEPAD_* variables and the command line.
func loadConfig(args []string) (config, error) {
	fs := pflag.NewFlagSet("lovepad", pflag.ContinueOnError)
	fs.String("config", "", "config file (yaml, toml or json)")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.Float32("deadzone", 0.1, "stick deadzone in [0, 1]")
	fs.Float32("axis-threshold", 0.01, "smallest axis change reported")
	fs.Bool("rumble", false, "vibrate a gamepad while a button is pressed")
	fs.Duration("rumble-duration", 200*time.Millisecond, "vibration length, negative for endless")
	fs.String("blend", "alpha", "blend mode of the event log overlay")
	fs.String("script", "", "Lua file whose love.* callbacks receive the events")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return config{}, err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg config
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return config{}, fmt.Errorf("log-level: %w", err)
	}
	blend, ok := renderstate.BlendModeByName(v.GetString("blend"))
	if !ok {
		return config{}, fmt.Errorf("blend: unknown mode %q (want one of %s)",
			v.GetString("blend"), strings.Join(renderstate.BlendModeNames(), ", "))
	}
	cfg.Blend = blend
	cfg.Deadzone = float32(v.GetFloat64("deadzone"))
	if cfg.Deadzone < 0 || cfg.Deadzone >= 1 {
		return config{}, errors.New("deadzone: must be in [0, 1)")
	}
	cfg.AxisThreshold = float32(v.GetFloat64("axis-threshold"))
	cfg.Rumble = v.GetBool("rumble")
	cfg.RumbleDuration = v.GetDuration("rumble-duration")
	cfg.Script = v.GetString("script")
	return cfg, nil
}

// newLogger writes text to a terminal and JSON otherwise.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
