package audit

import "go.uber.org/zap"

// Actions recorded by this service.
const (
	ActionAppointmentCreated = "appointment_created"
	ActionChatFallback       = "chat_fallback"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Writer persists one audit record. *Logger is the gorm-backed
// implementation.
type Writer interface {
	Log(action, entity, entityID string, metadata any) error
}

// Dispatcher decouples audit writes from the request path: events go
// through a buffered queue and a single worker. A full queue drops the
// event rather than blocking the API.
type Dispatcher struct {
	writer Writer
	log    *zap.Logger
	queue  chan Event
}

func NewDispatcher(writer Writer, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.writer.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
