package rush

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/registry"
)

func newGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345})
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"rush", "rush_fixed"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestFixedVariantDisablesRamp(t *testing.T) {
	g := NewFixed()
	g.Reset(core.DefaultConfig())
	if g.Engine().Config().Speed.RampEnabled {
		t.Error("rush_fixed should disable the speed ramp")
	}
}

func TestGameStepMapsActions(t *testing.T) {
	g := newGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	g.Step(frame, in)
	if g.Snapshot().Lane != LaneLeft {
		t.Errorf("Lane = %v, want left", g.Snapshot().Lane)
	}

	in.Clear()
	in.Set(core.ActionRight)
	in.Set(core.ActionRight)
	g.Step(frame, in)
	if g.Snapshot().Lane != LaneRight {
		t.Errorf("Lane = %v, want right after two shifts in one frame", g.Snapshot().Lane)
	}

	in.Clear()
	in.Set(core.ActionPause)
	res := g.Step(frame, in)
	if !res.State.Paused {
		t.Error("expected paused state")
	}

	in.Clear()
	in.Set(core.ActionConfirm)
	res = g.Step(frame, in)
	if res.State.Paused {
		t.Error("confirm should resume a paused game")
	}
}

func TestGameConfirmRestarts(t *testing.T) {
	g := newGame(t)
	g.engine.state = StateGameOver
	g.engine.lives = 0

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	res := g.Step(frame, in)
	if res.State.GameOver {
		t.Error("confirm should restart a finished game")
	}
}

func TestGameNotices(t *testing.T) {
	g := newGame(t)
	g.engine.effects.Shield = true
	g.engine.obstacles = append(g.engine.obstacles, Obstacle{ID: 500, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80})

	res := g.Step(frame, core.NewInputFrame())
	if len(res.Notices) != 1 || res.Notices[0] != "COMBO x1" {
		t.Errorf("Notices = %v, want [COMBO x1]", res.Notices)
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t)
	g.engine.effects.Shield = true
	g.engine.powerUps = append(g.engine.powerUps, PowerUp{ID: 9, Lane: LaneLeft, Pos: 200, Kind: PowerUpCoin})
	g.engine.obstacles = append(g.engine.obstacles, Obstacle{ID: 10, Lane: LaneRight, Pos: 100, Kind: ObstacleTruck, Height: 120})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"SCORE 0", "DISTANCE: 0m", "SPEED: 5.0x", "SHIELD ACTIVE", "♥♥♥", "[●]", "▲"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.engine.state = StateGameOver
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newGame(t)
	screen := core.NewScreen(10, 5)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}
