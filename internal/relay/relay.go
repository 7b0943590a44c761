// Package relay forwards chat messages to an external notification webhook.
//
// Forwarding is best effort: there are no retries and no delivery guarantee.
// Callers get a Result describing what happened and are expected to show the
// user a normal reply whatever the outcome.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/tifyai/website/internal/models"
)

// FallbackMessage is shown to the user whenever the webhook gives no reply.
const FallbackMessage = "Thank you for your message! Our team will get back to you shortly."

// DefaultTimeout bounds a single webhook call.
const DefaultTimeout = 5 * time.Second

// Outcome classifies a forwarding attempt.
type Outcome string

const (
	// OutcomeSkipped means no webhook is configured.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeReplied means the webhook accepted the message and sent a reply.
	OutcomeReplied Outcome = "replied"
	// OutcomeNoReply means the webhook accepted the message without a usable reply.
	OutcomeNoReply Outcome = "no_reply"
	// OutcomeFailed covers transport errors, timeouts and non-2xx statuses.
	OutcomeFailed Outcome = "failed"
)

// Result is the outcome of Forward. Reply is empty unless Outcome is OutcomeReplied.
type Result struct {
	Outcome Outcome
	Reply   string
	Err     error
}

// ReplyOrFallback returns the webhook's reply, or FallbackMessage if there is none.
func (r Result) ReplyOrFallback() string {
	if r.Reply != "" {
		return r.Reply
	}
	return FallbackMessage
}

type Config struct {
	URL        string
	AuthHeader string
	Timeout    time.Duration
}

// Enabled reports whether both the target URL and its credential are set.
func (c Config) Enabled() bool {
	return c.URL != "" && c.AuthHeader != ""
}

type Client struct {
	cfg      Config
	http     *http.Client
	log      *zap.Logger
	outcomes *prometheus.CounterVec
}

// NewClient builds a webhook client. reg may be nil, in which case outcomes
// are not exported as metrics.
func NewClient(cfg Config, httpClient *http.Client, log *zap.Logger, reg prometheus.Registerer) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	outcomes := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tify",
		Subsystem: "chat_relay",
		Name:      "forwards_total",
		Help:      "Chat messages handled by the webhook relay, by outcome.",
	}, []string{"outcome"})
	if reg != nil {
		reg.MustRegister(outcomes)
	}

	return &Client{cfg: cfg, http: httpClient, log: log, outcomes: outcomes}
}

// Enabled reports whether Forward will call the webhook.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled()
}

type webhookPayload struct {
	Message    string `json:"message"`
	PageSource string `json:"page_source"`
	Timestamp  string `json:"timestamp"`
}

// Forward sends msg to the webhook. The call is detached from ctx
// cancellation, so a client that disconnects does not abort it, but it
// never runs longer than the configured timeout.
func (c *Client) Forward(ctx context.Context, msg models.ChatMessage) Result {
	res := c.forward(ctx, msg)
	c.outcomes.WithLabelValues(string(res.Outcome)).Inc()

	switch res.Outcome {
	case OutcomeSkipped:
		c.log.Debug("Chat webhook not configured, skipping relay")
	case OutcomeFailed:
		c.log.Error("Chat webhook relay failed", zap.String("page_source", msg.PageSource), zap.Error(res.Err))
	case OutcomeNoReply:
		c.log.Warn("Chat webhook returned no usable reply", zap.Error(res.Err))
	default:
		c.log.Debug("Chat message relayed", zap.String("page_source", msg.PageSource))
	}
	return res
}

func (c *Client) forward(ctx context.Context, msg models.ChatMessage) Result {
	if !c.cfg.Enabled() {
		return Result{Outcome: OutcomeSkipped}
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
	defer cancel()

	payload, err := json.Marshal(webhookPayload{
		Message:    msg.Message,
		PageSource: msg.PageSource,
		Timestamp:  msg.Timestamp,
	})
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("failed to build webhook request: %w", err)}
	}
	req.Header.Set("Authorization", c.cfg.AuthHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: err}
	}
	body, err := readAndClose(resp.Body)
	if err != nil {
		return Result{Outcome: OutcomeFailed, Err: fmt.Errorf("failed to read webhook response: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{Outcome: OutcomeFailed, Err: &HTTPError{
			Method:     req.Method,
			URL:        req.URL.Redacted(),
			StatusCode: resp.StatusCode,
			Body:       body,
		}}
	}

	var reply struct {
		Message interface{} `json:"message"`
	}
	if err := json.Unmarshal(body, &reply); err != nil {
		return Result{Outcome: OutcomeNoReply, Err: fmt.Errorf("json parse error: %w body=%s", err, snippet(body, 300))}
	}
	text, ok := reply.Message.(string)
	if !ok || text == "" {
		return Result{Outcome: OutcomeNoReply}
	}
	return Result{Outcome: OutcomeReplied, Reply: text}
}
