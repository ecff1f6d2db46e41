package rush

// ObstacleKind represents the type of an obstacle.
type ObstacleKind uint8

const (
	ObstacleCar ObstacleKind = iota
	ObstacleBarrier
	ObstacleTruck
	obstacleKindCount // Sentinel for uniform draws
)

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleCar:
		return "car"
	case ObstacleBarrier:
		return "barrier"
	case ObstacleTruck:
		return "truck"
	default:
		return "?"
	}
}

// PowerUpKind represents the type of a power-up.
type PowerUpKind uint8

const (
	PowerUpShield PowerUpKind = iota
	PowerUpBoost
	PowerUpCoin
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpShield:
		return "shield"
	case PowerUpBoost:
		return "boost"
	case PowerUpCoin:
		return "coin"
	default:
		return "?"
	}
}

// Entity is a live object on the track: either an Obstacle or a PowerUp.
// The set of implementations is closed; switch on the concrete type.
type Entity interface {
	EntityID() uint64
	EntityLane() Lane
	Position() float64
	entity()
}

// Obstacle is a hazard that costs a life (or the shield) on contact.
// Pos is the top edge and grows toward the player.
type Obstacle struct {
	ID     uint64       `msgpack:"id"`
	Lane   Lane         `msgpack:"lane"`
	Pos    float64      `msgpack:"pos"`
	Kind   ObstacleKind `msgpack:"kind"`
	Height float64      `msgpack:"height"`
}

// PowerUp is a collectible applied once on contact.
type PowerUp struct {
	ID   uint64      `msgpack:"id"`
	Lane Lane        `msgpack:"lane"`
	Pos  float64     `msgpack:"pos"`
	Kind PowerUpKind `msgpack:"kind"`
}

func (o Obstacle) EntityID() uint64  { return o.ID }
func (o Obstacle) EntityLane() Lane  { return o.Lane }
func (o Obstacle) Position() float64 { return o.Pos }
func (Obstacle) entity()             {}

func (p PowerUp) EntityID() uint64  { return p.ID }
func (p PowerUp) EntityLane() Lane  { return p.Lane }
func (p PowerUp) Position() float64 { return p.Pos }
func (PowerUp) entity()             {}
