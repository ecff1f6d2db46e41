package rush

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-rush/internal/config"
	"github.com/vovakirdan/neon-rush/internal/core"
	"github.com/vovakirdan/neon-rush/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var (
	keeper ScoreKeeper
	logger *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetScoreKeeper sets where new games persist their best score.
func SetScoreKeeper(k ScoreKeeper) {
	keeper = k
}

// SetLogger sets the logger handed to new engines.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts the Engine to the platform's registry.Game interface.
type Game struct {
	id     string
	title  string
	fixed  bool // Speed ramp disabled regardless of preset
	preset config.DifficultyPreset

	engine  *Engine
	runtime core.RuntimeConfig
	notices []string
}

// New creates a new Neon Rush game instance.
func New() *Game {
	return &Game{id: "rush", title: "Neon Rush"}
}

// NewFixed creates a Neon Rush instance whose speed never ramps up.
func NewFixed() *Game {
	return &Game{id: "rush_fixed", title: "Neon Rush (Fixed Speed)", fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// SetDifficulty overrides the package-wide preset for this instance.
// It takes effect on the next Reset.
func (g *Game) SetDifficulty(preset config.DifficultyPreset) {
	g.preset = preset
}

// Reset builds a fresh engine. Restarting after game over goes through
// the engine instead, so the in-memory best score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRush(configPath)
	if err != nil {
		cfg = config.DefaultRushConfig()
		if logger != nil {
			logger.Warn("using default config", "path", configPath, "err", err)
		}
	}

	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyRushPreset(&cfg, preset)
	if g.fixed {
		config.ApplyRushPreset(&cfg, config.DifficultyFixed)
	}

	g.engine = NewEngine(cfg, Options{
		Seed:   runtime.Seed,
		Logger: logger,
		Keeper: keeper,
	})
	g.notices = nil
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Snapshot returns the current engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Step maps the frame's actions to commands, then ticks the engine.
func (g *Game) Step(elapsed time.Duration, in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		g.engine.Apply(g.command(a))
	}

	res := g.engine.Tick(elapsed)
	notices := make([]string, 0, len(res.Events))
	for _, ev := range res.Events {
		if n := notice(ev); n != "" {
			notices = append(notices, n)
		}
	}
	g.notices = notices

	return core.StepResult{State: g.State(), Notices: notices}
}

// command maps a platform action to an engine command.
// Confirm pauses a running game, resumes a paused one and restarts a
// finished one.
func (g *Game) command(a core.Action) Command {
	switch a {
	case core.ActionLeft:
		return CmdShiftLeft
	case core.ActionRight:
		return CmdShiftRight
	case core.ActionPause:
		return CmdPauseToggle
	case core.ActionRestart:
		return CmdRestart
	case core.ActionConfirm:
		if g.engine.State() == StateGameOver {
			return CmdRestart
		}
		return CmdPauseToggle
	default:
		return CmdNone
	}
}

func notice(ev Event) string {
	switch ev.Type {
	case EventComboTriggered:
		return fmt.Sprintf("COMBO x%d", ev.Value)
	case EventSpeedUp:
		return fmt.Sprintf("SPEED %.1fx", ev.Speed)
	case EventPowerUpCollected:
		return ev.PowerUp.String()
	case EventGameOver:
		if ev.NewBest {
			return "NEW BEST"
		}
		return "GAME OVER"
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	s := g.engine.State()
	return core.GameState{
		Score:     g.engine.score.Score,
		BestScore: g.engine.BestScore(),
		GameOver:  s == StateGameOver,
		Paused:    s == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("rush", func() registry.Game {
		return New()
	})
	registry.Register("rush_fixed", func() registry.Game {
		return NewFixed()
	})
}
