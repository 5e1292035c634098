package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"
	"sync"
	"time"
)

var ErrQueueFull = errors.New("notification queue full")

// Confirmation is the outbound task emitted once a booking is stored.
type Confirmation struct {
	BookingID   string `json:"booking_id"`
	To          string `json:"to"`
	UserName    string `json:"user_name"`
	ServiceName string `json:"service_name"`
	ArtistName  string `json:"artist_name"`
	Date        string `json:"appointment_date"`
	Time        string `json:"appointment_time"`
}

// ConfirmationQueue accepts confirmation tasks for later delivery.
type ConfirmationQueue interface {
	Enqueue(ctx context.Context, c Confirmation) error
}

const confirmationSubject = "Your Neax Tattoos Appointment Confirmation"

var confirmationTemplate = template.Must(template.New("confirmation").Parse(`<html>
<body style="font-family: Arial, sans-serif; background: #0F0F0F; color: #E5E5E5; padding: 40px;">
    <div style="max-width: 600px; margin: 0 auto; background: #1A1A1A; border: 1px solid rgba(255,255,255,0.1); padding: 40px;">
        <h1 style="color: #D4AF37; font-size: 32px; margin-bottom: 20px;">Booking Confirmed</h1>
        <p style="font-size: 16px; line-height: 1.6;">Hi {{.UserName}},</p>
        <p style="font-size: 16px; line-height: 1.6;">Your appointment at <strong>Neax Tattoos</strong> has been confirmed!</p>
        <div style="background: #0F0F0F; padding: 20px; margin: 20px 0; border-left: 3px solid #D4AF37;">
            <p style="margin: 5px 0;"><strong>Service:</strong> {{.ServiceName}}</p>
            <p style="margin: 5px 0;"><strong>Artist:</strong> {{.ArtistName}}</p>
            <p style="margin: 5px 0;"><strong>Date:</strong> {{.Date}}</p>
            <p style="margin: 5px 0;"><strong>Time:</strong> {{.Time}}</p>
        </div>
        <p style="font-size: 14px; line-height: 1.6; color: #A3A3A3;">Please arrive 10 minutes early. If you need to reschedule, contact us at least 24 hours in advance.</p>
        <p style="margin-top: 30px;">See you soon,<br><strong style="color: #D4AF37;">Neax Tattoos Team</strong></p>
    </div>
</body>
</html>
`))

// ComposeConfirmation renders the confirmation email for c.
func ComposeConfirmation(from string, c Confirmation) (Email, error) {
	var body bytes.Buffer
	if err := confirmationTemplate.Execute(&body, c); err != nil {
		return Email{}, fmt.Errorf("render confirmation: %w", err)
	}
	return Email{
		From:    from,
		To:      []string{c.To},
		Subject: confirmationSubject,
		HTML:    body.String(),
	}, nil
}

type NotifierConfig struct {
	From      string
	Workers   int
	QueueSize int
	Timeout   time.Duration
}

// Notifier delivers booking confirmations from an in-process queue. Delivery
// is at most once: a full queue drops the task and a failed send is logged
// and never retried.
type Notifier struct {
	mailer Mailer
	cfg    NotifierConfig

	queue  chan Confirmation
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewNotificationService(mailer Mailer, cfg NotifierConfig) *Notifier {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 1 {
		cfg.QueueSize = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	n := &Notifier{
		mailer: mailer,
		cfg:    cfg,
		queue:  make(chan Confirmation, cfg.QueueSize),
	}
	for i := 0; i < cfg.Workers; i++ {
		n.wg.Add(1)
		go n.worker()
	}
	return n
}

func (n *Notifier) worker() {
	defer n.wg.Done()
	for c := range n.queue {
		n.Deliver(context.Background(), c)
	}
}

// Enqueue never blocks.
func (n *Notifier) Enqueue(_ context.Context, c Confirmation) error {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return errors.New("notifier is closed")
	}

	select {
	case n.queue <- c:
		return nil
	default:
		log.Printf("Notification queue full, dropping confirmation for booking %s", c.BookingID)
		return ErrQueueFull
	}
}

// Deliver renders and sends one confirmation. Failures are logged only.
func (n *Notifier) Deliver(ctx context.Context, c Confirmation) {
	email, err := ComposeConfirmation(n.cfg.From, c)
	if err != nil {
		log.Printf("Failed to compose confirmation email for booking %s: %v", c.BookingID, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, n.cfg.Timeout)
	defer cancel()
	if err := n.mailer.Send(ctx, email); err != nil {
		log.Printf("Failed to send confirmation email for booking %s: %v", c.BookingID, err)
		return
	}
	log.Printf("Sent confirmation email for booking %s", c.BookingID)
}

// Close stops accepting tasks and waits for queued ones to be delivered.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	close(n.queue)
	n.mu.Unlock()

	n.wg.Wait()
}
