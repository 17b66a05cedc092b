// Package notification turns notification requests into queued messages and
// delivers them off the request path.
package notification

import (
	"context"
	"errors"
	"sync"
	"time"

	"instant_offer/internal/domain/entities"
	"instant_offer/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQueueFull = errors.New("notification queue full")
	ErrClosed    = errors.New("notification dispatcher closed")
)

type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceAdmin    Audience = "admin"
)

// Message is a snapshot of everything a sender needs. It does not reference
// the quote so later mutations cannot leak into a queued message.
type Message struct {
	Kind     interfaces.NotificationKind
	Audience Audience
	To       string
	Subject  string
	QuoteID  string
	Fields   map[string]string
	QueuedAt time.Time
}

// Sender delivers one message. Implementations may block.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Dispatcher is a bounded queue drained by a fixed set of workers.
type Dispatcher struct {
	queue       chan Message
	sender      Sender
	adminEmail  string
	workers     int
	sendTimeout time.Duration
	logger      *zap.Logger
	onFailure   func(interfaces.NotificationKind)

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

var _ interfaces.INotifier = (*Dispatcher)(nil)

type Options struct {
	QueueSize   int
	Workers     int
	SendTimeout time.Duration
	AdminEmail  string
	// OnFailure is called for every message that could not be delivered.
	OnFailure func(interfaces.NotificationKind)
}

func NewDispatcher(sender Sender, opts Options, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 10 * time.Second
	}
	return &Dispatcher{
		queue:       make(chan Message, opts.QueueSize),
		sender:      sender,
		adminEmail:  opts.AdminEmail,
		workers:     opts.Workers,
		sendTimeout: opts.SendTimeout,
		logger:      logger,
		onFailure:   opts.OnFailure,
	}
}

// Start launches the workers. They exit once Close has drained the queue.
func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
}

// Close stops accepting messages and waits for queued ones to be sent or for
// ctx to end, whichever comes first.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) NotifyCustomer(_ context.Context, kind interfaces.NotificationKind, q entities.Quote, extra map[string]string) error {
	return d.enqueue(buildMessage(kind, AudienceCustomer, q.Contact.Email, q, extra))
}

func (d *Dispatcher) NotifyAdmin(_ context.Context, kind interfaces.NotificationKind, q entities.Quote, extra map[string]string) error {
	return d.enqueue(buildMessage(kind, AudienceAdmin, d.adminEmail, q, extra))
}

func (d *Dispatcher) enqueue(m Message) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	select {
	case d.queue <- m:
		return nil
	default:
		return ErrQueueFull
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for m := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
		err := d.sender.Send(ctx, m)
		cancel()
		if err != nil {
			d.logger.Error("[notification][send] delivery failed",
				zap.String("quote_id", m.QuoteID),
				zap.String("kind", string(m.Kind)),
				zap.String("audience", string(m.Audience)),
				zap.Error(err))
			if d.onFailure != nil {
				d.onFailure(m.Kind)
			}
		}
	}
}

func buildMessage(kind interfaces.NotificationKind, audience Audience, to string, q entities.Quote, extra map[string]string) Message {
	fields := make(map[string]string, len(extra)+4)
	for k, v := range extra {
		fields[k] = v
	}
	fields["customer_name"] = q.Contact.Name
	fields["vehicle"] = vehicleLabel(q.Vehicle)
	fields["status"] = string(q.Status)
	if q.Pickup != nil {
		fields["pickup_date"] = q.Pickup.ScheduledDate
		fields["pickup_window"] = q.Pickup.ScheduledTime
	}
	return Message{
		Kind:     kind,
		Audience: audience,
		To:       to,
		Subject:  subject(kind, q),
		QuoteID:  q.QuoteID,
		Fields:   fields,
		QueuedAt: time.Now().UTC(),
	}
}
