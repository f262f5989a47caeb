package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	lua "github.com/yuin/gopher-lua"

	ebitenbackend "github.com/lovepotion/love/backend/ebiten"
	"github.com/lovepotion/love/hid"
	"github.com/lovepotion/love/joystick"
	"github.com/lovepotion/love/platform"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/script"
	"github.com/lovepotion/love/texture"
)

const (
	screenWidth  = 400
	screenHeight = 240

	// logLines is how many events the overlay keeps.
	logLines = 14
)

type game struct {
	ctx     context.Context
	cfg     config
	logger  *slog.Logger
	plat    *platform.Platform
	manager *joystick.Manager
	pump    *hid.Pump
	lua     *lua.LState

	gfx      *ebitenbackend.Backend
	tracker  *renderstate.Tracker
	textures *texture.Cache[*ebiten.Image]

	lines   []string
	overlay *ebiten.Image
}

// overlayFilter keeps the debug font crisp when the window is scaled.
var overlayFilter = texture.Filter{
	Min:        texture.FilterNearest,
	Mag:        texture.FilterNearest,
	Mipmap:     texture.FilterNone,
	Anisotropy: 1,
}

func newGame(ctx context.Context, cfg config, p *platform.Platform, L *lua.LState, logger *slog.Logger) (*game, error) {
	gfx, ok := p.Graphics.(*ebitenbackend.Backend)
	if !ok {
		return nil, fmt.Errorf("graphics backend %q cannot draw the overlay", p.Graphics.Name())
	}
	textures, ok := platform.NewTextureCache[*ebiten.Image](p)
	if !ok {
		return nil, fmt.Errorf("graphics backend %q has no image sampler", p.Graphics.Name())
	}
	m := p.NewManager()
	g := &game{
		ctx:      ctx,
		cfg:      cfg,
		logger:   logger,
		plat:     p,
		manager:  m,
		pump:     p.NewPump(m, hid.WithDeadzone(cfg.Deadzone), hid.WithAxisThreshold(cfg.AxisThreshold)),
		lua:      L,
		gfx:      gfx,
		tracker:  p.NewTracker(),
		textures: textures,
	}
	g.tracker.SetBlendMode(cfg.Blend, renderstate.AlphaMultiply)
	return g, nil
}

func (g *game) close() { g.manager.Close() }

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	for {
		e, ok := g.pump.Poll()
		if !ok {
			break
		}
		g.handle(e)
	}
	return nil
}

func (g *game) handle(e hid.Event) {
	g.logger.Debug("event", "event", e.String())
	if e.Type != hid.GamepadAxis {
		g.println(e.String())
	}

	if g.cfg.Rumble {
		g.rumble(e)
	}
	if g.lua != nil {
		if _, err := script.Dispatch(g.lua, e); err != nil {
			g.logger.Warn("script callback failed", "err", err)
		}
	}
}

func (g *game) rumble(e hid.Event) {
	if e.Type != hid.GamepadPressed && e.Type != hid.GamepadReleased {
		return
	}
	j, ok := g.manager.Joystick(e.Which)
	if !ok || !j.IsVibrationSupported() {
		return
	}
	if e.Type == hid.GamepadReleased {
		j.StopVibration()
		return
	}
	if !j.SetVibration(1, 0.5, g.cfg.RumbleDuration) {
		g.logger.Debug("vibration failed", "joystick", e.Which)
	}
}

func (g *game) println(s string) {
	g.lines = append(g.lines, s)
	if n := len(g.lines) - logLines; n > 0 {
		g.lines = g.lines[n:]
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x28, 0xff})

	if g.overlay == nil {
		g.overlay = ebiten.NewImage(screenWidth, screenHeight)
		if err := g.textures.SetTextureFilter(g.overlay, overlayFilter); err != nil {
			g.logger.Warn("overlay filter", "err", err)
		}
	}
	g.overlay.Fill(color.RGBA{0, 0, 0, 0x80})
	ebitenutil.DebugPrintAt(g.overlay, g.status()+"\n"+strings.Join(g.lines, "\n"), 4, 2)

	g.tracker.SetBlendMode(g.cfg.Blend, renderstate.AlphaMultiply)
	g.gfx.Target(screen).DrawImage(g.overlay, g.gfx.DrawImageOptions(g.overlay))
}

func (g *game) status() string {
	var b strings.Builder
	info := g.plat.SystemInfo()
	fmt.Fprintf(&b, "joysticks: %d  blend: %s  power: %s\n", g.manager.Count(), g.cfg.Blend, info.Power)
	for _, j := range g.manager.Joysticks() {
		if !j.IsConnected() {
			continue
		}
		fmt.Fprintf(&b, "#%d %s lx=%+.2f ly=%+.2f\n", j.ID(), j.GamepadType(),
			j.GamepadAxis(joystick.AxisLeftX), j.GamepadAxis(joystick.AxisLeftY))
	}
	return b.String()
}

func (g *game) Layout(int, int) (int, int) { return screenWidth, screenHeight }
