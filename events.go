package glide

// EventType identifies a tween lifecycle event.
type EventType uint8

const (
	EventBegin    EventType = iota // first tick after the delay, start values captured
	EventUpdate                    // a tick applied eased progress
	EventComplete                  // the end values were applied
	EventStopped                   // the tween left the scheduler
)

func (e EventType) String() string {
	switch e {
	case EventBegin:
		return "begin"
	case EventUpdate:
		return "update"
	case EventComplete:
		return "complete"
	case EventStopped:
		return "stopped"
	}
	return "unknown"
}

// EventStore is the interface for optional ECS integration. When set on an
// Animator, every tween lifecycle event is forwarded to it after the
// tween's own handlers run.
type EventStore interface {
	EmitEvent(event TweenEvent)
}

// TweenEvent carries one lifecycle event for the ECS bridge.
type TweenEvent struct {
	Type     EventType
	TweenID  uint32
	Target   any
	Progress float64
}
