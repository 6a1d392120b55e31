package mail

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type notification struct {
	name  string
	email string
}

// Notifier decouples contact creation from the mail provider: submissions
// are enqueued onto a buffered channel and delivered by a background worker
// with a per-send timeout, so a slow provider never delays an HTTP response.
type Notifier struct {
	sender  Sender
	queue   chan notification
	timeout time.Duration
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewNotifier(sender Sender, queueSize int, timeout time.Duration) *Notifier {
	if queueSize <= 0 {
		queueSize = 64
	}
	n := &Notifier{
		sender:  sender,
		queue:   make(chan notification, queueSize),
		timeout: timeout,
	}
	n.wg.Add(1)
	go n.run()
	return n
}

func (n *Notifier) run() {
	defer n.wg.Done()
	for msg := range n.queue {
		ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
		err := n.sender.SendContactNotification(ctx, msg.name, msg.email)
		cancel()
		if err != nil {
			log.Error().Err(err).Str("email", msg.email).Msg("contact notification failed")
			continue
		}
		log.Info().Str("email", msg.email).Msg("contact notification sent")
	}
}

// Enqueue reports whether the notification was accepted. A full queue or a
// closed notifier drops the notification; the contact itself is already
// persisted, so delivery is strictly best effort.
func (n *Notifier) Enqueue(name, email string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return false
	}
	select {
	case n.queue <- notification{name: name, email: email}:
		return true
	default:
		return false
	}
}

// Close stops accepting notifications and waits for the worker to drain
// what was already queued.
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
