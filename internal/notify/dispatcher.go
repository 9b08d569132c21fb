package notify

import "log"

type Event struct {
	UserID    uint
	CompanyID uint
	Message   string
	Type      string
}

// Sink is what producers of notification events depend on.
type Sink interface {
	Dispatch(Event)
}

// Dispatcher decouples notification creation from the request path. Events
// are handed to a single worker goroutine; the caller never blocks on the
// notification write and never fails because of it.
type Dispatcher struct {
	notifier *Notifier
	queue    chan Event
}

func NewDispatcher(notifier *Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.notifier.Notify(
			ev.UserID,
			ev.CompanyID,
			ev.Message,
			ev.Type,
		); err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// full queue drops the event; notifications never break the API
		log.Println("notification queue full, dropping event")
	}
}

var _ Sink = (*Dispatcher)(nil)
