package notify

import "log"

// The actual email sender is an external collaborator; this boundary is
// fire-and-forget and must never fail a request.

type Message struct {
	Event      string
	FormalID   string
	GuestEmail string
	Detail     string
}

type Sender interface {
	Send(msg Message) error
}

type LogSender struct{}

func (LogSender) Send(msg Message) error {
	log.Printf("notify %s: reservation %s -> %s (%s)", msg.Event, msg.FormalID, msg.GuestEmail, msg.Detail)
	return nil
}

type Dispatcher struct {
	sender Sender
	queue  chan Message
}

func NewDispatcher(sender Sender) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(msg); err != nil {
			log.Println("notify error:", err)
		}
	}
}

// Dispatch is nil-safe so callers wired without notifications stay silent.
func (d *Dispatcher) Dispatch(msg Message) {
	if d == nil {
		return
	}
	select {
	case d.queue <- msg:
	default:
		log.Println("notify queue full, dropping message")
	}
}
