// Package notify delivers outbox notifications to affected parties.
//
// Two senders exist: NtfySender posts to an ntfy topic over HTTP, and
// LogSender only writes the alert to the service log. NewSender picks one from
// configuration.
package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"workorders/internal/core/ports"
)

const (
	userAgent      = "workorders/1.0"
	defaultTimeout = 10 * time.Second
)

// NewSender returns an ntfy sender when endpoint is set and a log-only sender otherwise.
func NewSender(endpoint string, timeout time.Duration, logger *slog.Logger) ports.NotificationSender {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return NewLogSender(logger)
	}
	return NewNtfySender(endpoint, timeout)
}

// NtfySender publishes each notification as one ntfy message.
type NtfySender struct {
	endpoint string
	client   *http.Client
}

func NewNtfySender(endpoint string, timeout time.Duration) *NtfySender {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &NtfySender{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send posts the message. Any response status of 300 or above is an error
// carrying the start of the response body.
func (n *NtfySender) Send(ctx context.Context, recipient, message string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	req.Header.Set("Title", "Work order conflict - "+recipient)
	req.Header.Set("Tags", "workorders,conflict,warning")
	req.Header.Set("Priority", "high")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// LogSender writes alerts to the log. It never fails.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSender{logger: logger.With("component", "notify")}
}

func (l *LogSender) Send(ctx context.Context, recipient, message string) error {
	l.logger.WarnContext(ctx, "alert to affected party", "recipient", recipient, "message", message)
	return nil
}
