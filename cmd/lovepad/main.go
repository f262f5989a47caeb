// Command lovepad opens a window and prints the normalized input events of
// every connected gamepad and touch screen.
//
// Usage:
//
//	lovepad [--config file] [--rumble] [--script main.lua] ...
//
// Every flag can also be set in the config file or as LOVEPAD_<FLAG>, with
// dashes replaced by underscores.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	lua "github.com/yuin/gopher-lua"

	"github.com/lovepotion/love"
	"github.com/lovepotion/love/platform"
	"github.com/lovepotion/love/script"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "lovepad:", err)
		os.Exit(2)
	}
	logger := newLogger(os.Stderr, cfg.LogLevel)
	love.SetLogger(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("lovepad stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := platform.New(platform.Native{})
	if err != nil {
		return err
	}

	var L *lua.LState
	if cfg.Script != "" {
		L = lua.NewState()
		defer L.Close()
		script.Open(L)
		if err := L.DoFile(cfg.Script); err != nil {
			return fmt.Errorf("load %s: %w", cfg.Script, err)
		}
	}

	g, err := newGame(ctx, cfg, p, L, logger)
	if err != nil {
		return err
	}
	defer g.close()

	ebiten.SetWindowTitle("lovepad")
	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Info("lovepad started", "platform", p.Name, "graphics", p.Graphics.Name(), "joysticks", p.Joysticks.MaxJoysticks())
	return ebiten.RunGame(g)
}
