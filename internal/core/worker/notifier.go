package worker

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"retailbank/internal/core/domain"
	"retailbank/internal/core/notifications"
)

const maxAttempts = 5

type job struct {
	payload  map[string]any
	attempts int
}

// Notifier delivers webhook events for transactions that reached a
// terminal state. Delivery is fire-and-forget from the request path's
// point of view: failures are retried here, never surfaced to callers.
type Notifier struct {
	url     string
	secret  string
	jobs    chan job
	backoff func(attempts int) time.Duration
}

func NewNotifier(url, secret string) *Notifier {
	return &Notifier{
		url:    url,
		secret: secret,
		jobs:   make(chan job, 64),
		backoff: func(attempts int) time.Duration {
			return time.Duration(attempts*10+10) * time.Second
		},
	}
}

// Start launches the delivery loop.
func (n *Notifier) Start() {
	if n.url == "" {
		slog.Info("No webhook URL configured, notifier disabled")
		return
	}
	go func() {
		slog.Info("👷 Webhook notifier started", "url", n.url)
		for j := range n.jobs {
			n.process(j)
		}
	}()
}

// TransactionFinished enqueues a webhook event for a terminal transaction.
func (n *Notifier) TransactionFinished(txn *domain.Transaction) {
	if n.url == "" {
		return
	}
	payload := map[string]any{
		"event_id":  uuid.NewString(),
		"event":     "transaction." + strings.ToLower(string(txn.Status)),
		"data":      txn,
		"timestamp": time.Now().UTC(),
	}
	select {
	case n.jobs <- job{payload: payload}:
	default:
		slog.Warn("Notifier queue full, dropping event", "transaction_id", txn.ID)
	}
}

func (n *Notifier) process(j job) {
	err := notifications.SendWebhook(n.url, j.payload, n.secret)
	if err == nil {
		slog.Info("✅ Webhook delivered", "event_id", j.payload["event_id"])
		return
	}

	attempts := j.attempts + 1
	if attempts >= maxAttempts {
		slog.Error("Webhook abandoned, max attempts reached", "event_id", j.payload["event_id"], "error", err)
		return
	}

	delay := n.backoff(attempts)
	slog.Warn("Webhook failed, scheduling retry", "event_id", j.payload["event_id"], "attempts", attempts, "next_try_in", delay)
	time.AfterFunc(delay, func() {
		select {
		case n.jobs <- job{payload: j.payload, attempts: attempts}:
		default:
			slog.Warn("Notifier queue full, dropping retry", "event_id", j.payload["event_id"])
		}
	})
}
