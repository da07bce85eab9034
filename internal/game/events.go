package game

type EventType int

const (
	EventShotFired EventType = iota
	EventAnimalHit
	EventAnimalKilled
	EventWeatherChanged
	EventLightning
	EventObjectiveDone
)

// Event carries the payload of a gameplay happening. Fields are used
// per-type: Species/Score for kills, Weather for weather changes.
type Event struct {
	Type    EventType
	Species Species
	Score   int
	Weather WeatherKind
}

type EventHandler func(Event)

// EventBus is a minimal synchronous pub/sub: handlers run on the caller's
// goroutine in subscription order.
type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{handlers: make(map[EventType][]EventHandler)}
}

func (b *EventBus) Subscribe(t EventType, h EventHandler) {
	b.handlers[t] = append(b.handlers[t], h)
}

func (b *EventBus) Publish(e Event) {
	for _, h := range b.handlers[e.Type] {
		h(e)
	}
}
