package rush

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-rush/internal/config"
)

// BestScoreKey is the storage key the best score is persisted under.
const BestScoreKey = "neonRushHighScore"

// RunState is the top-level state of a run.
type RunState uint8

const (
	StatePlaying RunState = iota
	StatePaused
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Command is an abstract player command. Unknown values are ignored.
type Command uint8

const (
	CmdNone Command = iota
	CmdShiftLeft
	CmdShiftRight
	CmdPauseToggle
	CmdRestart
)

func (c Command) String() string {
	switch c {
	case CmdShiftLeft:
		return "shift_left"
	case CmdShiftRight:
		return "shift_right"
	case CmdPauseToggle:
		return "pause_toggle"
	case CmdRestart:
		return "restart"
	default:
		return "none"
	}
}

// ScoreKeeper persists the best score under a named key.
// A missing key reads as zero without error.
type ScoreKeeper interface {
	BestScore(key string) (int, error)
	SaveBestScore(key string, score int) error
}

// Options configures an Engine. The zero value is usable.
type Options struct {
	Seed   int64       // Seed for the default SimpleRNG
	RNG    RNG         // Overrides Seed when set
	Logger *log.Logger // Nil discards logs
	Keeper ScoreKeeper // Nil keeps the best score in memory only
	Key    string      // Storage key, defaults to BestScoreKey
}

// TickResult reports what a call to Tick did.
type TickResult struct {
	Ran    bool      // False when the run was not Playing
	Input  TickInput // Clock advance, zero when Ran is false
	Events []Event   // Events since the previous Tick, including those raised by Apply
}

// Engine is the Neon Rush simulation. It owns all run state and is
// mutated only by Apply and Tick; it is not safe for concurrent use.
type Engine struct {
	cfg    config.RushConfig
	log    *log.Logger
	keeper ScoreKeeper
	key    string
	bus    *EventBus

	clock      Clock
	rng        RNG
	spawner    *Spawner
	effects    Effects
	score      ScoreEngine
	difficulty DifficultyController

	state     RunState
	lane      Lane
	lives     int
	obstacles []Obstacle
	powerUps  []PowerUp
	tick      uint64

	best      int
	finalized bool // Game over bookkeeping done for this run

	pending []Event
}

// NewEngine creates an engine with a fresh run in the Playing state.
// The best score is read once from the keeper; a read failure counts as 0.
func NewEngine(cfg config.RushConfig, opts Options) *Engine {
	cfg.Validate()

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.RNG
	if rng == nil {
		rng = NewSimpleRNG(opts.Seed)
	}
	key := opts.Key
	if key == "" {
		key = BestScoreKey
	}

	e := &Engine{
		cfg:     cfg,
		log:     logger,
		keeper:  opts.Keeper,
		key:     key,
		bus:     NewEventBus(),
		clock:   NewClock(cfg.Timing.ReferenceFPS),
		rng:     rng,
		spawner: NewSpawner(cfg, rng),
		difficulty: NewDifficultyController(
			cfg.Speed.Initial, cfg.Speed.Max, cfg.Speed.Step,
			cfg.Speed.Threshold, cfg.Speed.RampEnabled,
		),
	}
	e.best = e.loadBest()
	e.resetRun()
	e.log.Debug("run started", "seed", opts.Seed, "best", e.best)
	return e
}

func (e *Engine) loadBest() int {
	if e.keeper == nil {
		return 0
	}
	best, err := e.keeper.BestScore(e.key)
	if err != nil {
		e.log.Warn("failed to load best score", "key", e.key, "err", err)
		return 0
	}
	return max(best, 0)
}

// resetRun reinitializes everything except the best score and RNG stream.
func (e *Engine) resetRun() {
	e.clock.Reset()
	e.spawner.Reset()
	e.effects = Effects{}
	e.score = ScoreEngine{}
	e.difficulty.Reset()

	e.state = StatePlaying
	e.lane = LaneCenter
	e.lives = e.cfg.Player.Lives
	e.obstacles = e.obstacles[:0]
	e.powerUps = e.powerUps[:0]
	e.tick = 0
	e.finalized = false
}

// Subscribe registers fn for events of type t.
// Handlers run synchronously inside Apply or Tick.
func (e *Engine) Subscribe(t EventType, fn EventHandler) {
	e.bus.Subscribe(t, fn)
}

// Apply executes one command. Commands the current state does not
// accept are ignored.
func (e *Engine) Apply(cmd Command) {
	switch cmd {
	case CmdShiftLeft:
		if e.state == StatePlaying {
			e.lane = e.lane.Shift(-1)
		}
	case CmdShiftRight:
		if e.state == StatePlaying {
			e.lane = e.lane.Shift(1)
		}
	case CmdPauseToggle:
		switch e.state {
		case StatePlaying:
			e.state = StatePaused
			e.emit(Event{Type: EventPaused})
		case StatePaused:
			e.state = StatePlaying
			e.emit(Event{Type: EventResumed})
		}
	case CmdRestart:
		if e.state == StateGameOver {
			e.resetRun()
			e.log.Debug("run restarted", "best", e.best)
			e.emit(Event{Type: EventRestarted})
		}
	}
}

// Tick advances the simulation by elapsed wall time. Only a Playing run
// moves: spawn, motion, collision, effect expiry, scoring and difficulty
// run in that order. Paused and finished runs do not advance the clock.
func (e *Engine) Tick(elapsed time.Duration) TickResult {
	if e.state != StatePlaying {
		return TickResult{Events: e.flush()}
	}

	in := e.clock.Advance(elapsed)
	e.tick++
	now := in.Now

	obs, pus := e.spawner.Update(now, e.difficulty.Speed())
	e.obstacles = append(e.obstacles, obs...)
	e.powerUps = append(e.powerUps, pus...)

	speed := e.EffectiveSpeed()
	dist := speed * in.Scale
	t := e.cfg.Track
	e.obstacles = advanceObstacles(e.obstacles, dist, t.Length+t.ObstacleMargin)
	e.powerUps = advancePowerUps(e.powerUps, dist, t.Length+t.PowerUpMargin)

	e.resolveCollisions(now)
	if e.state == StateGameOver {
		e.finishRun()
		return TickResult{Ran: true, Input: in, Events: e.flush()}
	}

	e.effects.Expire(now)

	e.score.Accrue(speed, e.effects.ScoreMultiplier(e.cfg.Scoring.ComboFactor), in.Scale)

	if e.difficulty.Update(e.score.Distance) {
		e.emit(Event{Type: EventSpeedUp, Speed: e.difficulty.Speed()})
	}

	return TickResult{Ran: true, Input: in, Events: e.flush()}
}

// finishRun records the final score exactly once per run.
func (e *Engine) finishRun() {
	if e.finalized {
		return
	}
	e.finalized = true

	final := e.score.Score
	newBest := final > e.best
	if newBest {
		e.best = final
		if e.keeper != nil {
			if err := e.keeper.SaveBestScore(e.key, final); err != nil {
				e.log.Warn("failed to save best score", "key", e.key, "score", final, "err", err)
			}
		}
	}

	e.log.Info("run over", "score", final, "best", e.best, "distance", int(e.score.Distance), "coins", e.score.Coins)
	e.emit(Event{Type: EventGameOver, Value: final, Best: e.best, NewBest: newBest})
}

func (e *Engine) emit(ev Event) {
	ev.Tick = e.tick
	e.pending = append(e.pending, ev)
	e.bus.Emit(ev)
}

func (e *Engine) flush() []Event {
	if len(e.pending) == 0 {
		return nil
	}
	out := e.pending
	e.pending = nil
	return out
}

// EffectiveSpeed returns base speed scaled by the boost, if active.
func (e *Engine) EffectiveSpeed() float64 {
	return e.difficulty.Speed() * e.effects.SpeedMultiplier(e.clock.Now(), e.cfg.Speed.BoostMultiplier)
}

// State returns the current run state.
func (e *Engine) State() RunState {
	return e.state
}

// BestScore returns the best score seen, including the current run
// once it has ended.
func (e *Engine) BestScore() int {
	return e.best
}

// Config returns the validated configuration the engine runs with.
func (e *Engine) Config() config.RushConfig {
	return e.cfg
}
