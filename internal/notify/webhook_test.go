package notify

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesboland/bolandindex/internal/assessment"
)

type capture struct {
	mu     sync.Mutex
	bodies []map[string]any
}

func (c *capture) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var payload map[string]any
		require.NoError(t, json.Unmarshal(body, &payload))

		c.mu.Lock()
		c.bodies = append(c.bodies, payload)
		c.mu.Unlock()
	}
}

func (c *capture) payloads() []map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]map[string]any, len(c.bodies))
	copy(out, c.bodies)
	return out
}

func testConfig(url string) Config {
	cfg := DefaultConfig()
	cfg.WebhookURL = url
	cfg.Environment = EnvDevelopment
	cfg.Timeout = 2 * time.Second
	return cfg
}

func scoresWith(n int) assessment.Scores {
	s := assessment.NewScores()
	for _, c := range assessment.AllCategories() {
		s[c] = n
	}
	return s
}

func TestWebhookSignupPayload(t *testing.T) {
	var c capture
	srv := httptest.NewServer(c.handler(t))
	defer srv.Close()

	w := NewWebhook(testConfig(srv.URL))
	w.Signup("alice@example.com")
	w.Close()

	payloads := c.payloads()
	require.Len(t, payloads, 1)

	p := payloads[0]
	assert.Equal(t, "Boland Index Terminal App", p["source"])
	assert.Equal(t, "development", p["environment"])
	assert.Equal(t, "signup", p["event_type"])
	assert.Equal(t, "alice@example.com", p["email"])

	ts, ok := p["timestamp"].(string)
	require.True(t, ok, "timestamp must be a string")
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err, "timestamp must be RFC 3339")
}

func TestWebhookScoreUpdatePayload(t *testing.T) {
	var c capture
	srv := httptest.NewServer(c.handler(t))
	defer srv.Close()

	scores := assessment.NewScores()
	scores[assessment.CategoryNutrition] = 40
	scores[assessment.CategoryMovement] = 38
	scores[assessment.CategorySleep] = 45
	scores[assessment.CategorySocial] = 30
	scores[assessment.CategoryPurpose] = 47

	w := NewWebhook(testConfig(srv.URL))
	w.ScoreUpdate("alice@example.com", scores.Total(), assessment.Classify(scores.Total()), scores)
	w.Close()

	payloads := c.payloads()
	require.Len(t, payloads, 1)

	p := payloads[0]
	assert.Equal(t, "score_update", p["event_type"])
	assert.Equal(t, "alice@example.com", p["email"])
	assert.EqualValues(t, 200, p["total_score"])
	assert.Equal(t, "Excellent", p["rank"])
	assert.EqualValues(t, 40, p["nutrition"])
	assert.EqualValues(t, 38, p["movement"])
	assert.EqualValues(t, 45, p["sleep"])
	assert.EqualValues(t, 30, p["social"])
	assert.EqualValues(t, 47, p["purpose"])
}

func TestWebhookPreservesEmissionOrder(t *testing.T) {
	var c capture
	srv := httptest.NewServer(c.handler(t))
	defer srv.Close()

	w := NewWebhook(testConfig(srv.URL))
	w.Signup("alice@example.com")
	w.ScoreUpdate("alice@example.com", 200, assessment.RankExcellent, scoresWith(40))
	w.Close()

	payloads := c.payloads()
	require.Len(t, payloads, 2)
	assert.Equal(t, "signup", payloads[0]["event_type"])
	assert.Equal(t, "score_update", payloads[1]["event_type"])
}

func TestWebhookSwallowsEndpointFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // endpoint is gone before the first event

	w := NewWebhook(testConfig(url))

	// Neither call may panic, block, or report anything to the caller.
	done := make(chan struct{})
	go func() {
		w.Signup("alice@example.com")
		w.ScoreUpdate("alice@example.com", 200, assessment.RankExcellent, scoresWith(40))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notifier blocked the caller")
	}
	w.Close()
}

func TestWebhookDisabledByEmptyURL(t *testing.T) {
	var c capture
	srv := httptest.NewServer(c.handler(t))
	defer srv.Close()

	w := NewWebhook(testConfig(""))
	w.Signup("alice@example.com")
	w.Close()

	assert.Empty(t, c.payloads())
}

func TestWebhookCloseIsIdempotent(t *testing.T) {
	w := NewWebhook(testConfig(""))
	w.Close()
	w.Close()
}

func TestValidatePayload(t *testing.T) {
	base := func() map[string]any {
		return map[string]any{
			"source":      payloadSource,
			"environment": "production",
			"event_type":  "signup",
			"timestamp":   "2026-08-31T12:00:00Z",
			"email":       "alice@example.com",
		}
	}

	t.Run("valid signup", func(t *testing.T) {
		assert.NoError(t, validatePayload(base()))
	})

	t.Run("score update missing fields", func(t *testing.T) {
		p := base()
		p["event_type"] = "score_update"
		assert.Error(t, validatePayload(p))
	})

	t.Run("unknown event type", func(t *testing.T) {
		p := base()
		p["event_type"] = "pageview"
		assert.Error(t, validatePayload(p))
	})

	t.Run("valid score update", func(t *testing.T) {
		p := base()
		p["event_type"] = "score_update"
		p["total_score"] = 200
		p["rank"] = "Excellent"
		p["nutrition"] = 40
		p["movement"] = 38
		p["sleep"] = 45
		p["social"] = 30
		p["purpose"] = 47
		assert.NoError(t, validatePayload(p))
	})
}
