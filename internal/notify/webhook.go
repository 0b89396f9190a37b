package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/wesboland/bolandindex/internal/assessment"
)

const payloadSource = "Boland Index Terminal App"

const (
	eventSignup      = "signup"
	eventScoreUpdate = "score_update"
)

// Webhook delivers events to a configured HTTP endpoint. A single worker
// goroutine drains a bounded queue, so enqueueing never blocks and
// emission order is preserved. Transport errors are swallowed; in
// development mode they are noted on stderr.
type Webhook struct {
	cfg    Config
	client *http.Client

	events chan map[string]any
	done   chan struct{}
	once   sync.Once
}

var _ Notifier = (*Webhook)(nil)

// NewWebhook creates a Webhook and starts its delivery worker.
func NewWebhook(cfg Config) *Webhook {
	w := &Webhook{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		events: make(chan map[string]any, cfg.QueueSize),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

func (w *Webhook) Signup(email string) {
	w.enqueue(eventSignup, map[string]any{
		"email": email,
	})
}

func (w *Webhook) ScoreUpdate(email string, total int, rank assessment.Rank, scores assessment.Scores) {
	fields := map[string]any{
		"email":       email,
		"total_score": total,
		"rank":        string(rank),
	}
	for _, c := range assessment.AllCategories() {
		fields[c.Key()] = scores[c]
	}
	w.enqueue(eventScoreUpdate, fields)
}

// Close stops accepting events and waits for queued ones to drain.
// Safe to call more than once.
func (w *Webhook) Close() {
	w.once.Do(func() {
		close(w.events)
		<-w.done
	})
}

// enqueue stamps the envelope fields and hands the payload to the worker.
// The timestamp is taken here so delivery lag never skews it.
func (w *Webhook) enqueue(eventType string, fields map[string]any) {
	payload := map[string]any{
		"source":      payloadSource,
		"environment": w.cfg.Environment,
		"event_type":  eventType,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	}
	for k, v := range fields {
		payload[k] = v
	}

	select {
	case w.events <- payload:
	default:
		w.debugf("event queue full, dropping %s", eventType)
	}
}

func (w *Webhook) run() {
	defer close(w.done)
	for p := range w.events {
		w.send(p)
	}
}

// send performs one best-effort delivery. Every failure path returns
// without error: the quiz flow must not degrade when the endpoint is
// slow, misconfigured, or gone.
func (w *Webhook) send(payload map[string]any) {
	if w.cfg.WebhookURL == "" {
		return
	}

	if err := validatePayload(payload); err != nil {
		w.debugf("invalid payload, not sending: %v", err)
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		w.debugf("marshal payload: %v", err)
		return
	}

	resp, err := w.client.Post(w.cfg.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		w.debugf("deliver %s: %v", payload["event_type"], err)
		return
	}
	// Write-only delivery: status and body are not inspected.
	resp.Body.Close()
}

func (w *Webhook) debugf(format string, args ...any) {
	if !w.cfg.Development() {
		return
	}
	fmt.Fprintf(os.Stderr, "webhook: "+format+"\n", args...)
}
