package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	ebitenbackend "github.com/lovepotion/love/backend/ebiten"
	"github.com/lovepotion/love/hid"
	"github.com/lovepotion/love/joystick"
	"github.com/lovepotion/love/platform"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/script"
)

type emptyDriver struct{}

func (emptyDriver) Name() string      { return "empty" }
func (emptyDriver) MaxJoysticks() int { return 0 }

func (emptyDriver) NewJoystick(int, *joystick.VibrationRegistry) joystick.Joystick { return nil }

func newTestGame(t *testing.T, cfg config, L *lua.LState) (*game, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := &platform.Platform{Name: "test", Joysticks: emptyDriver{}, Graphics: ebitenbackend.New()}
	g, err := newGame(context.Background(), cfg, p, L, logger)
	if err != nil {
		t.Fatal(err)
	}
	return g, &buf
}

type otherGraphics struct{ renderstate.Driver }

func (otherGraphics) Name() string { return "other" }

func TestGameBlendThroughTracker(t *testing.T) {
	g, _ := newTestGame(t, config{Blend: renderstate.BlendMultiply}, nil)
	want, ok := ebitenbackend.Blend(renderstate.ComputeBlendState(renderstate.BlendMultiply, renderstate.AlphaMultiply))
	if !ok {
		t.Fatal("multiply has no ebiten blend")
	}
	if got := g.gfx.Blend(); got != want {
		t.Errorf("backend blend = %+v, want %+v", got, want)
	}
	if mode, _ := g.tracker.BlendMode(); mode != renderstate.BlendMultiply {
		t.Errorf("tracker mode = %v", mode)
	}
	if g.tracker.SetBlendMode(renderstate.BlendMultiply, renderstate.AlphaMultiply) {
		t.Error("per-frame SetBlendMode reached the backend again")
	}
}

func TestGameNeedsEbitenGraphics(t *testing.T) {
	p := &platform.Platform{Name: "test", Joysticks: emptyDriver{}, Graphics: otherGraphics{}}
	if _, err := newGame(context.Background(), config{}, p, nil, slog.Default()); err == nil {
		t.Error("newGame accepted a backend that cannot draw the overlay")
	}
}

func TestGameLogTrims(t *testing.T) {
	g, _ := newTestGame(t, config{Blend: renderstate.BlendAlpha}, nil)
	for i := range logLines + 5 {
		g.handle(hid.Event{Type: hid.GamepadPressed, Which: i, Button: joystick.ButtonA})
	}
	g.handle(hid.Event{Type: hid.GamepadAxis, Axis: joystick.AxisLeftX, Value: 1})
	if len(g.lines) != logLines {
		t.Fatalf("len(lines) = %d, want %d", len(g.lines), logLines)
	}
	if want := fmt.Sprintf("gamepadpressed(%d, a)", logLines+4); g.lines[logLines-1] != want {
		t.Errorf("last line = %q, want %q", g.lines[logLines-1], want)
	}
}

func TestGameScriptErrorsLogged(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	script.Open(L)
	if err := L.DoString(`function love.gamepadpressed() error("bad pad") end`); err != nil {
		t.Fatal(err)
	}
	g, buf := newTestGame(t, config{Blend: renderstate.BlendAdd}, L)
	g.handle(hid.Event{Type: hid.GamepadPressed, Button: joystick.ButtonStart})
	if !strings.Contains(buf.String(), "script callback failed") {
		t.Errorf("log = %q", buf.String())
	}
}

func TestGameUpdateStops(t *testing.T) {
	g, _ := newTestGame(t, config{Blend: renderstate.BlendAlpha}, nil)
	if err := g.Update(); err != nil {
		t.Fatalf("Update() = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g.ctx = ctx
	if err := g.Update(); err == nil {
		t.Error("Update() after cancel = nil, want termination")
	}
}
