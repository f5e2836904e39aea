package sim

import "github.com/go-gl/mathgl/mgl64"

type EventType int

const (
	EventShotFired EventType = iota
	EventEnemyDestroyed
	EventPlayerHit
	EventGameStarted
	EventGameOver
	EventMenuSelect
	EventPaused
	EventShotImpact // a projectile struck terrain
)

type Event struct {
	Type        EventType
	Pos         mgl64.Vec3
	PlayerOwned bool
	Value       int // score for kills and game over, remaining health for hits
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every listed event type.
func (eb *EventBus) SubscribeAll(fn EventHandler, types ...EventType) {
	for _, t := range types {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}

// firingSink forwards shots to the projectile set and announces them.
type firingSink struct {
	set *ProjectileSet
	bus *EventBus
}

func (s firingSink) Enqueue(origin, velocity mgl64.Vec3, playerOwned, clampToWater bool) {
	s.set.Enqueue(origin, velocity, playerOwned, clampToWater)
	s.bus.Emit(Event{Type: EventShotFired, Pos: origin, PlayerOwned: playerOwned})
}
