package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"copydesk/internal/config"
)

const userAgent = "copydesk/0.1.0"

// Service delivers workflow events to an out-of-band channel.
type Service interface {
	NotifySubmitted(ctx context.Context, title, author string) error
	NotifyApproved(ctx context.Context, title, editor string) error
	NotifyRejected(ctx context.Context, title, editor string) error
	NotifyScheduled(ctx context.Context, count int) error
	NotifyPublished(ctx context.Context, title, url string) error
	NotifyError(ctx context.Context, err error, context string) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifySubmitted(ctx context.Context, title, author string) error {
	data := payload{
		title:   "copydesk - Submitted",
		message: fmt.Sprintf("%q submitted for review by %s", strings.TrimSpace(title), strings.TrimSpace(author)),
		tags:    []string{"copydesk", "review", "submitted"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyApproved(ctx context.Context, title, editor string) error {
	data := payload{
		title:   "copydesk - Approved",
		message: fmt.Sprintf("%q approved by %s", strings.TrimSpace(title), strings.TrimSpace(editor)),
		tags:    []string{"copydesk", "review", "approved"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyRejected(ctx context.Context, title, editor string) error {
	data := payload{
		title:   "copydesk - Rejected",
		message: fmt.Sprintf("%q sent back to draft by %s", strings.TrimSpace(title), strings.TrimSpace(editor)),
		tags:    []string{"copydesk", "review", "rejected"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyScheduled(ctx context.Context, count int) error {
	data := payload{
		title:   "copydesk - Scheduled",
		message: fmt.Sprintf("Scheduled %d items for publication", count),
		tags:    []string{"copydesk", "schedule"},
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyPublished(ctx context.Context, title, url string) error {
	message := fmt.Sprintf("Published: %s", strings.TrimSpace(title))
	if url = strings.TrimSpace(url); url != "" {
		message = fmt.Sprintf("%s\n%s", message, url)
	}
	data := payload{
		title:    "copydesk - Published",
		message:  message,
		tags:     []string{"copydesk", "publish"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) NotifyError(ctx context.Context, err error, contextLabel string) error {
	var builder strings.Builder
	builder.WriteString("Error")
	if contextLabel = strings.TrimSpace(contextLabel); contextLabel != "" {
		builder.WriteString(" with ")
		builder.WriteString(contextLabel)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}

	data := payload{
		title:    "copydesk - Error",
		message:  builder.String(),
		tags:     []string{"copydesk", "error", "alert"},
		priority: "high",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	data := payload{
		title:    "copydesk - Test",
		message:  "Notification system test",
		tags:     []string{"copydesk", "test"},
		priority: "low",
	}
	return n.send(ctx, data)
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

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

type noopService struct{}

func (noopService) NotifySubmitted(context.Context, string, string) error { return nil }
func (noopService) NotifyApproved(context.Context, string, string) error  { return nil }
func (noopService) NotifyRejected(context.Context, string, string) error  { return nil }
func (noopService) NotifyScheduled(context.Context, int) error            { return nil }
func (noopService) NotifyPublished(context.Context, string, string) error { return nil }
func (noopService) NotifyError(context.Context, error, string) error      { return nil }
func (noopService) TestNotification(context.Context) error                { return nil }
