package rush

import (
	"time"

	"github.com/vovakirdan/neon-rush/internal/config"
)

// Spawner emits obstacles and power-ups on two independent cadences.
// Both cadences are measured in simulation time from the last emission;
// a fresh spawner counts from time zero.
type Spawner struct {
	cfg  config.RushConfig
	rng  RNG
	next uint64 // Next entity id, shared by obstacles and power-ups

	lastObstacle time.Duration
	lastPowerUp  time.Duration
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.RushConfig, rng RNG) *Spawner {
	return &Spawner{cfg: cfg, rng: rng, next: 1}
}

// Reset clears both cadence timers. Ids keep increasing across resets.
func (s *Spawner) Reset() {
	s.lastObstacle = 0
	s.lastPowerUp = 0
}

// ObstacleInterval returns the obstacle cadence for the given base speed.
func (s *Spawner) ObstacleInterval(speed float64) time.Duration {
	sp := s.cfg.Spawn
	interval := sp.ObstacleInterval() - time.Duration(speed*float64(sp.ObstacleDecay()))
	if floor := sp.ObstacleFloor(); interval < floor {
		interval = floor
	}
	return interval
}

// Update emits whatever is due at simulation time now.
// The returned batch never places two obstacles in the same lane.
func (s *Spawner) Update(now time.Duration, speed float64) ([]Obstacle, []PowerUp) {
	var obstacles []Obstacle
	var powerUps []PowerUp

	if now-s.lastObstacle > s.ObstacleInterval(speed) {
		obstacles = s.spawnObstacles()
		s.lastObstacle = now
	}

	if now-s.lastPowerUp > s.cfg.Spawn.PowerUpInterval() {
		powerUps = append(powerUps, s.spawnPowerUp())
		s.lastPowerUp = now
	}

	return obstacles, powerUps
}

// spawnObstacles builds one batch, drawing lanes without replacement.
func (s *Spawner) spawnObstacles() []Obstacle {
	count := 1
	if s.rng.Float64() < s.cfg.Spawn.PairChance {
		count = 2
	}

	free := Lanes
	remaining := len(free)
	batch := make([]Obstacle, 0, count)
	for range count {
		i := s.rng.Intn(remaining)
		lane := free[i]
		free[i] = free[remaining-1]
		remaining--

		kind := ObstacleKind(s.rng.Intn(int(obstacleKindCount))) //#nosec G115 -- bounded by sentinel
		height := s.obstacleHeight(kind)
		batch = append(batch, Obstacle{
			ID:     s.nextID(),
			Lane:   lane,
			Pos:    -height,
			Kind:   kind,
			Height: height,
		})
	}
	return batch
}

func (s *Spawner) spawnPowerUp() PowerUp {
	lane := Lanes[s.rng.Intn(len(Lanes))]
	return PowerUp{
		ID:   s.nextID(),
		Lane: lane,
		Pos:  -s.cfg.Track.PowerUpSize,
		Kind: s.rollPowerUpKind(),
	}
}

// rollPowerUpKind selects a power-up kind based on configured weights.
func (s *Spawner) rollPowerUpKind() PowerUpKind {
	sp := s.cfg.Spawn
	total := sp.ShieldWeight + sp.BoostWeight + sp.CoinWeight
	if total <= 0 {
		return PowerUpCoin
	}

	roll := s.rng.Intn(total)
	if roll < sp.ShieldWeight {
		return PowerUpShield
	}
	roll -= sp.ShieldWeight
	if roll < sp.BoostWeight {
		return PowerUpBoost
	}
	return PowerUpCoin
}

func (s *Spawner) obstacleHeight(kind ObstacleKind) float64 {
	switch kind {
	case ObstacleBarrier:
		return s.cfg.Track.BarrierHeight
	case ObstacleTruck:
		return s.cfg.Track.TruckHeight
	default:
		return s.cfg.Track.CarHeight
	}
}

func (s *Spawner) nextID() uint64 {
	id := s.next
	s.next++
	return id
}
