package rush

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/neon-rush/internal/config"
)

// frame is one reference frame at the default 60 fps.
const frame = time.Second / 60

// quiet disables both spawn cadences so tests place entities by hand.
func quiet(c *config.RushConfig) {
	c.Spawn.ObstacleIntervalMs = 1_000_000_000
	c.Spawn.ObstacleFloorMs = 1_000_000_000
	c.Spawn.PowerUpIntervalMs = 1_000_000_000
}

func noRamp(c *config.RushConfig) {
	c.Speed.RampEnabled = false
}

func newEngine(opts Options, muts ...func(*config.RushConfig)) *Engine {
	cfg := config.DefaultRushConfig()
	for _, m := range muts {
		m(&cfg)
	}
	if opts.Seed == 0 && opts.RNG == nil {
		opts.Seed = 42
	}
	return NewEngine(cfg, opts)
}

// onPlayer returns a position at which an entity in the player's lane
// overlaps the hitbox after one reference frame of motion at speed 5.
const onPlayer = 450.0

type memKeeper struct {
	vals    map[string]int
	loadErr error
	saveErr error
	saves   int
}

func (k *memKeeper) BestScore(key string) (int, error) {
	if k.loadErr != nil {
		return 0, k.loadErr
	}
	return k.vals[key], nil
}

func (k *memKeeper) SaveBestScore(key string, score int) error {
	k.saves++
	if k.saveErr != nil {
		return k.saveErr
	}
	if k.vals == nil {
		k.vals = make(map[string]int)
	}
	k.vals[key] = max(k.vals[key], score)
	return nil
}

func eventsOf(res TickResult, t EventType) []Event {
	var out []Event
	for _, ev := range res.Events {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func TestNewEngineDefaults(t *testing.T) {
	e := newEngine(Options{})
	snap := e.Snapshot()

	if snap.State != StatePlaying {
		t.Errorf("State = %v, want playing", snap.State)
	}
	if snap.Lane != LaneCenter {
		t.Errorf("Lane = %v, want center", snap.Lane)
	}
	if snap.Lives != 3 || snap.Score != 0 || snap.Coins != 0 || snap.Distance != 0 {
		t.Errorf("unexpected initial player state: %+v", snap)
	}
	if snap.Speed != 5 {
		t.Errorf("Speed = %v, want 5", snap.Speed)
	}
	if len(snap.Obstacles) != 0 || len(snap.PowerUps) != 0 {
		t.Error("new run should have no entities")
	}
}

func TestTenTicksAccrual(t *testing.T) {
	e := newEngine(Options{}, quiet)
	for range 10 {
		e.Tick(frame)
	}

	snap := e.Snapshot()
	if snap.Distance != 50 {
		t.Errorf("Distance = %v, want 50", snap.Distance)
	}
	if snap.Score != 50 {
		t.Errorf("Score = %d, want 50", snap.Score)
	}
}

func TestAccrualPerTick(t *testing.T) {
	tests := []struct {
		name  string
		setup func(e *Engine)
		want  []int // Score gained on each successive tick
	}{
		{
			name:  "base speed",
			setup: func(e *Engine) {},
			want:  []int{5, 5, 5, 5},
		},
		{
			name:  "combo 1",
			setup: func(e *Engine) { e.effects.Combo = 1 },
			want:  []int{7, 7, 7, 7}, // floor(5 * 1.5)
		},
		{
			name:  "combo 2",
			setup: func(e *Engine) { e.effects.Combo = 2 },
			want:  []int{10, 10, 10, 10},
		},
		{
			name:  "boost",
			setup: func(e *Engine) { e.effects.ActivateBoost(e.clock.Now(), time.Hour) },
			want:  []int{7, 7, 7, 7}, // floor(7.5)
		},
		{
			name: "boost with combo 1",
			setup: func(e *Engine) {
				e.effects.ActivateBoost(e.clock.Now(), time.Hour)
				e.effects.Combo = 1
			},
			want: []int{11, 11, 11, 11}, // floor(7.5 * 1.5)
		},
		{
			name:  "after threshold crossing",
			setup: func(e *Engine) { e.score.Distance = 496 },
			want:  []int{5, 5, 5, 5}, // first tick at 5, then floor(5.5)
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(Options{}, quiet)
			tc.setup(e)

			for i, want := range tc.want {
				before := e.score.Score
				e.Tick(frame)
				if got := e.score.Score - before; got != want {
					t.Errorf("tick %d: gained %d, want %d", i+1, got, want)
				}
			}
		})
	}
}

func TestAccrualAfterThresholdUsesNewSpeed(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.score.Distance = 496

	e.Tick(frame)
	if e.difficulty.Speed() != 5.5 {
		t.Fatalf("Speed = %v, want 5.5 after crossing 500", e.difficulty.Speed())
	}

	start := e.score.Score
	for range 4 {
		e.Tick(frame)
	}
	if got := e.score.Score - start; got != 20 {
		t.Errorf("score over four ticks at 5.5 = %d, want 20", got)
	}
	if want := 501 + 4*5.5; e.score.Distance != want {
		t.Errorf("Distance = %v, want %v", e.score.Distance, want)
	}
}

func TestLaneStaysInBounds(t *testing.T) {
	e := newEngine(Options{}, quiet)
	rng := NewSimpleRNG(7)

	for i := range 500 {
		if rng.Intn(2) == 0 {
			e.Apply(CmdShiftLeft)
		} else {
			e.Apply(CmdShiftRight)
		}
		if !e.lane.Valid() {
			t.Fatalf("step %d: lane %d out of range", i, e.lane)
		}
	}

	e.lane = LaneCenter
	e.Apply(CmdShiftLeft)
	e.Apply(CmdShiftLeft)
	e.Apply(CmdShiftLeft)
	if e.lane != LaneLeft {
		t.Errorf("lane = %v, want left after repeated shifts", e.lane)
	}
}

func TestShieldAbsorbsHit(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.effects.Shield = true
	e.obstacles = append(e.obstacles, Obstacle{ID: 100, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80})

	res := e.Tick(frame)
	snap := e.Snapshot()

	if snap.Shield {
		t.Error("shield should be consumed")
	}
	if snap.Combo != 1 {
		t.Errorf("Combo = %d, want 1", snap.Combo)
	}
	if snap.Lives != 3 {
		t.Errorf("Lives = %d, want 3", snap.Lives)
	}
	if len(snap.Obstacles) != 0 {
		t.Error("absorbed obstacle should be removed")
	}
	if !snap.ComboHint {
		t.Error("combo hint should be visible right after the hit")
	}

	combos := eventsOf(res, EventComboTriggered)
	if len(combos) != 1 || combos[0].Value != 1 {
		t.Fatalf("combo events = %+v, want one with value 1", combos)
	}
	if want := e.clock.Now() + 500*time.Millisecond; combos[0].HintUntil != want {
		t.Errorf("HintUntil = %v, want %v", combos[0].HintUntil, want)
	}
}

func TestUnshieldedHit(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.effects.Combo = 2
	e.obstacles = append(e.obstacles, Obstacle{ID: 100, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80})

	res := e.Tick(frame)
	snap := e.Snapshot()

	if snap.Lives != 2 {
		t.Errorf("Lives = %d, want 2", snap.Lives)
	}
	if snap.Combo != 0 {
		t.Errorf("Combo = %d, want 0", snap.Combo)
	}
	if len(snap.Obstacles) != 0 {
		t.Error("obstacle should be removed")
	}
	if lost := eventsOf(res, EventLifeLost); len(lost) != 1 || lost[0].Value != 2 {
		t.Errorf("life_lost events = %+v", lost)
	}
}

func TestNeighbourLaneMisses(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.obstacles = append(e.obstacles, Obstacle{ID: 100, Lane: LaneLeft, Pos: onPlayer, Kind: ObstacleCar, Height: 80})

	e.Tick(frame)
	if e.lives != 3 {
		t.Errorf("Lives = %d, want 3", e.lives)
	}
	if len(e.obstacles) != 1 {
		t.Error("obstacle in another lane should stay")
	}
}

func TestShieldOnlyAbsorbsFirstOfSimultaneousHits(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.effects.Shield = true
	e.obstacles = append(e.obstacles,
		Obstacle{ID: 1, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80},
		Obstacle{ID: 2, Lane: LaneCenter, Pos: onPlayer + 40, Kind: ObstacleBarrier, Height: 50},
	)

	e.Tick(frame)
	if e.effects.Shield {
		t.Error("shield should be consumed")
	}
	if e.lives != 2 {
		t.Errorf("Lives = %d, want 2 (second obstacle hits)", e.lives)
	}
	if e.effects.Combo != 0 {
		t.Errorf("Combo = %d, want 0 after unshielded hit", e.effects.Combo)
	}
	if len(e.obstacles) != 0 {
		t.Errorf("both obstacles should be removed, %d left", len(e.obstacles))
	}
}

func TestMultiHitCanEndRun(t *testing.T) {
	e := newEngine(Options{}, quiet, func(c *config.RushConfig) { c.Player.Lives = 1 })
	e.obstacles = append(e.obstacles,
		Obstacle{ID: 1, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80},
		Obstacle{ID: 2, Lane: LaneCenter, Pos: onPlayer + 40, Kind: ObstacleCar, Height: 80},
	)

	res := e.Tick(frame)
	if e.State() != StateGameOver {
		t.Fatalf("State = %v, want gameover", e.State())
	}
	if e.lives != 0 {
		t.Errorf("Lives = %d, want 0", e.lives)
	}
	if len(eventsOf(res, EventLifeLost)) != 1 {
		t.Error("resolution should stop once the run is over")
	}
}

func TestCoinCollected(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.powerUps = append(e.powerUps, PowerUp{ID: 7, Lane: LaneCenter, Pos: onPlayer, Kind: PowerUpCoin})

	res := e.Tick(frame)
	snap := e.Snapshot()

	if snap.Coins != 1 {
		t.Errorf("Coins = %d, want 1", snap.Coins)
	}
	if snap.Score != 105 {
		t.Errorf("Score = %d, want 105 (100 coin + 5 accrual)", snap.Score)
	}
	if len(snap.PowerUps) != 0 {
		t.Error("coin should be removed")
	}
	if got := eventsOf(res, EventPowerUpCollected); len(got) != 1 || got[0].PowerUp != PowerUpCoin {
		t.Errorf("powerup events = %+v", got)
	}

	// A consumed power-up never applies twice.
	e.Tick(frame)
	if e.score.Coins != 1 {
		t.Errorf("Coins = %d after second tick, want 1", e.score.Coins)
	}
}

func TestShieldPowerUp(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.powerUps = append(e.powerUps, PowerUp{ID: 7, Lane: LaneCenter, Pos: onPlayer, Kind: PowerUpShield})

	e.Tick(frame)
	if !e.effects.Shield {
		t.Error("shield should be active")
	}
}

func TestBoostLifecycle(t *testing.T) {
	e := newEngine(Options{}, quiet, noRamp)
	e.powerUps = append(e.powerUps, PowerUp{ID: 7, Lane: LaneCenter, Pos: onPlayer, Kind: PowerUpBoost})

	e.Tick(frame)
	if got := e.EffectiveSpeed() / e.difficulty.Speed(); got != 1.5 {
		t.Fatalf("boost multiplier = %v, want 1.5", got)
	}

	before := e.score.Distance
	e.Tick(frame)
	if d := e.score.Distance - before; d != 7.5 {
		t.Errorf("boosted distance per frame = %v, want 7.5", d)
	}

	// 3s boost; run well past the deadline without touching effects.
	for range 200 {
		e.Tick(frame)
	}
	if got := e.EffectiveSpeed(); got != 5 {
		t.Errorf("EffectiveSpeed = %v after expiry, want 5", got)
	}
	if e.effects.Boost.Active {
		t.Error("expired boost should be cleared by the tick")
	}
}

func TestBoostReactivationResetsDeadline(t *testing.T) {
	var fx Effects
	fx.ActivateBoost(time.Second, 3*time.Second)
	fx.ActivateBoost(2*time.Second, 3*time.Second)

	if fx.Boost.ExpiresAt != 5*time.Second {
		t.Errorf("ExpiresAt = %v, want 5s", fx.Boost.ExpiresAt)
	}
	if !fx.Boosting(4900 * time.Millisecond) {
		t.Error("boost should still be active before the reset deadline")
	}
	fx.Expire(5 * time.Second)
	if fx.Boost.Active {
		t.Error("boost should expire at the deadline")
	}
}

func TestPauseFreezesEffects(t *testing.T) {
	e := newEngine(Options{}, quiet, noRamp)
	e.effects.ActivateBoost(0, 3*time.Second)

	e.Apply(CmdPauseToggle)
	if e.State() != StatePaused {
		t.Fatalf("State = %v, want paused", e.State())
	}

	before := e.Snapshot()
	for range 600 {
		if res := e.Tick(frame); res.Ran {
			t.Fatal("paused tick should not run")
		}
	}
	after := e.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused ticks changed the run state")
	}

	e.Apply(CmdPauseToggle)
	e.Tick(frame)
	if !e.effects.Boosting(e.clock.Now()) {
		t.Error("boost should survive a pause longer than its duration")
	}
}

func TestPausedIgnoresMovement(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.Apply(CmdPauseToggle)
	e.Apply(CmdShiftLeft)
	if e.lane != LaneCenter {
		t.Errorf("lane = %v, movement should be ignored while paused", e.lane)
	}

	// Restart only applies to a finished run.
	e.Apply(CmdRestart)
	if e.State() != StatePaused {
		t.Errorf("State = %v, restart should be ignored while paused", e.State())
	}
}

func TestSpeedRampOncePerThreshold(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.score.Distance = 498

	res := e.Tick(frame)
	if e.difficulty.Speed() != 5.5 {
		t.Fatalf("Speed = %v, want 5.5 after crossing 500", e.difficulty.Speed())
	}
	if ups := eventsOf(res, EventSpeedUp); len(ups) != 1 || ups[0].Speed != 5.5 {
		t.Errorf("speed_up events = %+v", ups)
	}

	for range 40 {
		e.Tick(frame)
	}
	if e.score.Distance >= 1000 {
		t.Fatalf("test setup: distance %v reached the next threshold", e.score.Distance)
	}
	if e.difficulty.Speed() != 5.5 {
		t.Errorf("Speed = %v, want 5.5 until the next threshold", e.difficulty.Speed())
	}
}

func TestSpeedRampLargeDelta(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.score.Distance = 490

	// One tick of 300 frames travels 1500 units and crosses 500, 1000 and 1500.
	e.Tick(300 * frame)
	if got := e.difficulty.Speed(); got != 6.5 {
		t.Errorf("Speed = %v, want 6.5", got)
	}
	e.Tick(frame)
	if got := e.difficulty.Speed(); got != 6.5 {
		t.Errorf("Speed = %v, crossing must not be rewarded twice", got)
	}
}

func TestSpeedBounds(t *testing.T) {
	e := newEngine(Options{}, quiet)
	prev := e.difficulty.Speed()
	for i := range 1000 {
		e.Tick(10 * frame)
		s := e.difficulty.Speed()
		if s < prev {
			t.Fatalf("tick %d: speed decreased %v -> %v", i, prev, s)
		}
		if s < 5 || s > 15 {
			t.Fatalf("tick %d: speed %v out of [5, 15]", i, s)
		}
		prev = s
	}
	if prev != 15 {
		t.Errorf("Speed = %v, want capped at 15", prev)
	}
}

func TestFixedSpeed(t *testing.T) {
	e := newEngine(Options{}, quiet, noRamp)
	for range 500 {
		e.Tick(frame)
	}
	if e.difficulty.Speed() != 5 {
		t.Errorf("Speed = %v, want 5 with ramp disabled", e.difficulty.Speed())
	}
}

func TestFrameRateIndependence(t *testing.T) {
	a := newEngine(Options{}, quiet, noRamp)
	b := newEngine(Options{}, quiet, noRamp)

	for range 60 {
		a.Tick(frame)
	}
	for range 240 {
		b.Tick(frame / 4)
	}

	if d := math.Abs(a.score.Distance - b.score.Distance); d > 1e-3 {
		t.Errorf("distance differs by %v (a=%v b=%v)", d, a.score.Distance, b.score.Distance)
	}
	if d := a.score.Score - b.score.Score; d < 0 || d > 1 {
		t.Errorf("score a=%d b=%d", a.score.Score, b.score.Score)
	}
}

func TestGameOverPersistsBestOnce(t *testing.T) {
	k := &memKeeper{vals: map[string]int{BestScoreKey: 300}}
	e := newEngine(Options{Keeper: k}, quiet, func(c *config.RushConfig) { c.Player.Lives = 1 })
	if e.BestScore() != 300 {
		t.Fatalf("BestScore = %d, want 300 loaded from keeper", e.BestScore())
	}

	var overs []Event
	e.Subscribe(EventGameOver, func(ev Event) { overs = append(overs, ev) })

	e.score.Score = 500
	e.obstacles = append(e.obstacles, Obstacle{ID: 1, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleTruck, Height: 120})
	e.Tick(frame)

	if e.State() != StateGameOver {
		t.Fatalf("State = %v, want gameover", e.State())
	}
	if e.BestScore() != 500 {
		t.Errorf("BestScore = %d, want 500", e.BestScore())
	}
	if k.vals[BestScoreKey] != 500 || k.saves != 1 {
		t.Errorf("keeper = %v after %d saves, want 500 after 1", k.vals, k.saves)
	}

	for range 10 {
		e.Tick(frame)
	}
	if k.saves != 1 {
		t.Errorf("saves = %d, best score must be written once per run", k.saves)
	}
	if len(overs) != 1 || overs[0].Value != 500 || !overs[0].NewBest {
		t.Errorf("game_over events = %+v", overs)
	}
}

func TestGameOverBelowBestDoesNotWrite(t *testing.T) {
	k := &memKeeper{vals: map[string]int{BestScoreKey: 900}}
	e := newEngine(Options{Keeper: k}, quiet, func(c *config.RushConfig) { c.Player.Lives = 1 })
	e.score.Score = 100
	e.obstacles = append(e.obstacles, Obstacle{ID: 1, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80})

	e.Tick(frame)
	if k.saves != 0 {
		t.Errorf("saves = %d, want 0", k.saves)
	}
	if e.BestScore() != 900 {
		t.Errorf("BestScore = %d, want 900", e.BestScore())
	}
}

func TestKeeperFailures(t *testing.T) {
	boom := errors.New("disk on fire")

	e := newEngine(Options{Keeper: &memKeeper{loadErr: boom}})
	if e.BestScore() != 0 {
		t.Errorf("BestScore = %d, want 0 on load failure", e.BestScore())
	}

	k := &memKeeper{saveErr: boom}
	e = newEngine(Options{Keeper: k}, quiet, func(c *config.RushConfig) { c.Player.Lives = 1 })
	e.score.Score = 250
	e.obstacles = append(e.obstacles, Obstacle{ID: 1, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80})
	e.Tick(frame)

	if e.State() != StateGameOver {
		t.Fatalf("State = %v, want gameover", e.State())
	}
	if e.BestScore() != 250 {
		t.Errorf("BestScore = %d, in-memory best must survive a failed write", e.BestScore())
	}
}

func TestRestart(t *testing.T) {
	e := newEngine(Options{}, func(c *config.RushConfig) { c.Player.Lives = 1 })

	// Play a while so entities and effects exist.
	for range 120 {
		e.Tick(frame)
	}
	e.effects.ActivateBoost(e.clock.Now(), 3*time.Second)
	e.effects.Shield = true
	e.score.Coins = 4
	e.score.Score = 777
	e.difficulty.speed = 9

	// Restart is ignored while playing.
	e.Apply(CmdRestart)
	if e.score.Score != 777 {
		t.Fatal("restart should be ignored while playing")
	}

	e.effects.Shield = false
	e.obstacles = append(e.obstacles, Obstacle{ID: 999, Lane: LaneCenter, Pos: onPlayer, Kind: ObstacleCar, Height: 80})
	for e.State() != StateGameOver {
		e.Tick(frame)
	}
	best := e.BestScore()
	if best < 777 {
		t.Fatalf("BestScore = %d, want >= final score", best)
	}

	e.Apply(CmdRestart)
	snap := e.Snapshot()
	if snap.State != StatePlaying {
		t.Errorf("State = %v, want playing", snap.State)
	}
	if snap.Lives != 1 || snap.Score != 0 || snap.Distance != 0 || snap.Coins != 0 {
		t.Errorf("player state not reset: %+v", snap)
	}
	if snap.Speed != 5 {
		t.Errorf("Speed = %v, want 5", snap.Speed)
	}
	if len(snap.Obstacles) != 0 || len(snap.PowerUps) != 0 {
		t.Error("entity collections should be empty")
	}
	if snap.Boost || snap.Shield || snap.Combo != 0 {
		t.Error("effects should be cancelled by restart")
	}
	if snap.BestScore != best {
		t.Errorf("BestScore = %d, want %d preserved", snap.BestScore, best)
	}
}

func TestRestartDefaultLives(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.state = StateGameOver
	e.lives = 0
	e.Apply(CmdRestart)
	if e.lives != 3 {
		t.Errorf("Lives = %d, want 3", e.lives)
	}
}

func TestFirstObstacleAfterOneInterval(t *testing.T) {
	e := newEngine(Options{})
	// Interval at speed 5 is 1500 - 5*50 = 1250ms, i.e. 75 frames.
	for range 75 {
		e.Tick(frame)
	}
	if len(e.obstacles) != 0 {
		t.Fatalf("obstacles spawned early: %d", len(e.obstacles))
	}
	e.Tick(frame)
	if len(e.obstacles) == 0 {
		t.Error("expected an obstacle batch once the interval elapsed")
	}
}

func TestEntityIDsIncrease(t *testing.T) {
	e := newEngine(Options{Seed: 3})
	var last uint64
	seen := make(map[uint64]bool)
	for range 3000 {
		e.Tick(frame)
		if e.State() == StateGameOver {
			break
		}
		snap := e.Snapshot()
		for _, ent := range snap.Entities() {
			id := ent.EntityID()
			if !seen[id] {
				if id <= last {
					t.Fatalf("new id %d not above %d", id, last)
				}
				seen[id] = true
				last = id
			}
		}
	}
	if len(seen) == 0 {
		t.Error("no entities spawned")
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := newEngine(Options{Seed: 12345})
		for i := range 3000 {
			switch {
			case i%97 == 0:
				e.Apply(CmdShiftLeft)
			case i%61 == 0:
				e.Apply(CmdShiftRight)
			}
			e.Tick(frame)
			if e.State() == StateGameOver {
				e.Apply(CmdRestart)
			}
		}
		return e.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", s1.Score, s2.Score, s1.Tick, s2.Tick)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.obstacles = append(e.obstacles, Obstacle{ID: 1, Lane: LaneLeft, Pos: 10, Kind: ObstacleCar, Height: 80})

	snap := e.Snapshot()
	snap.Obstacles[0].Pos = 999
	if e.obstacles[0].Pos != 10 {
		t.Error("mutating a snapshot changed engine state")
	}
}

func TestObstaclesDespawnPastTrack(t *testing.T) {
	e := newEngine(Options{}, quiet)
	e.obstacles = append(e.obstacles, Obstacle{ID: 1, Lane: LaneLeft, Pos: 696, Kind: ObstacleCar, Height: 80})
	e.powerUps = append(e.powerUps, PowerUp{ID: 2, Lane: LaneRight, Pos: 646, Kind: PowerUpCoin})

	e.Tick(frame)
	if len(e.obstacles) != 0 {
		t.Error("obstacle past length+margin should be removed")
	}
	if len(e.powerUps) != 0 {
		t.Error("power-up past length+margin should be removed")
	}
}
