package worker

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"retailbank/internal/core/domain"
	"retailbank/internal/core/notifications"
)

func terminalTransaction(status domain.TransactionStatus) *domain.Transaction {
	now := time.Now().UTC()
	return &domain.Transaction{
		ID:          "TXN-000001",
		AccountID:   "ACC-001",
		Amount:      100,
		Kind:        domain.Debit,
		Status:      status,
		CreatedAt:   now,
		CompletedAt: &now,
	}
}

func TestNotifierDeliversSignedEvent(t *testing.T) {
	received := make(chan *http.Request, 1)
	bodies := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies <- body
		received <- r
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "topsecret")
	n.Start()
	n.TransactionFinished(terminalTransaction(domain.StatusCompleted))

	select {
	case r := <-received:
		body := <-bodies

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "transaction.completed", payload["event"])
		assert.NotEmpty(t, payload["event_id"])

		data, ok := payload["data"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "TXN-000001", data["transaction_id"])

		assert.Equal(t, notifications.Sign(body, "topsecret"), r.Header.Get("X-Webhook-Signature"))
		assert.Equal(t, "RetailBank-Webhook/1.0", r.Header.Get("User-Agent"))
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never delivered")
	}
}

func TestNotifierFailedStatusEventName(t *testing.T) {
	bodies := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies <- body
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "")
	n.Start()
	n.TransactionFinished(terminalTransaction(domain.StatusFailed))

	select {
	case body := <-bodies:
		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "transaction.failed", payload["event"])
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never delivered")
	}
}

func TestNotifierRetriesUntilDelivered(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		close(done)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "topsecret")
	n.backoff = func(attempts int) time.Duration { return 10 * time.Millisecond }
	n.Start()
	n.TransactionFinished(terminalTransaction(domain.StatusCompleted))

	select {
	case <-done:
		assert.Equal(t, int32(3), calls.Load())
	case <-time.After(2 * time.Second):
		t.Fatal("webhook was never retried to success")
	}
}

func TestNotifierDisabledWithoutURL(t *testing.T) {
	n := NewNotifier("", "secret")
	n.Start()
	// Must not block or panic with no delivery loop running
	n.TransactionFinished(terminalTransaction(domain.StatusCompleted))
}
