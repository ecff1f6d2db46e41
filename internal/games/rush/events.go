package rush

import "time"

// EventType identifies a one-shot engine notification.
type EventType string

const (
	EventComboTriggered   EventType = "combo_triggered"
	EventGameOver         EventType = "game_over"
	EventLifeLost         EventType = "life_lost"
	EventPowerUpCollected EventType = "powerup_collected"
	EventSpeedUp          EventType = "speed_up"
	EventPaused           EventType = "paused"
	EventResumed          EventType = "resumed"
	EventRestarted        EventType = "restarted"
)

// Event is emitted by the engine. Only the fields relevant to Type are set.
type Event struct {
	Type EventType
	Tick uint64

	// Value carries the combo count (combo_triggered), final score
	// (game_over) or remaining lives (life_lost).
	Value int

	Best    int         // game_over: best score after the run
	NewBest bool        // game_over: run beat the previous best
	PowerUp PowerUpKind // powerup_collected
	Speed   float64     // speed_up: new base speed

	HintUntil time.Duration // combo_triggered: banner deadline in simulation time
}

// EventHandler reacts to an emitted event.
type EventHandler func(Event)

// EventBus dispatches events to subscribers synchronously, in
// subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

// NewEventBus creates an empty bus.
func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

// Subscribe registers fn for events of type t.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// Emit delivers e to every handler subscribed to its type.
func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
