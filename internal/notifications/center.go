package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Severity classifies a user-facing notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification is the single message shown to the user at a time.
type Notification struct {
	Message  string
	Severity Severity
	At       time.Time
}

// Center holds the single in-flight user notification and fans workflow
// events out to a push Service. Publishing a new notification replaces the
// current one. Push delivery is best effort; a failed push never fails the
// workflow operation that triggered it.
type Center struct {
	mu      sync.Mutex
	current *Notification
	push    Service
	logger  *slog.Logger
}

// NewCenter builds a Center forwarding events to the given push service.
// A nil service disables push delivery.
func NewCenter(push Service, logger *slog.Logger) *Center {
	if push == nil {
		push = noopService{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{push: push, logger: logger.With("component", "notifications")}
}

// Current returns a copy of the displayed notification, or nil.
func (c *Center) Current() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

// Clear dismisses the displayed notification.
func (c *Center) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = nil
}

func (c *Center) set(severity Severity, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = &Notification{
		Message:  message,
		Severity: severity,
		At:       time.Now().UTC(),
	}
}

func (c *Center) forward(op string, err error) {
	if err != nil {
		c.logger.Warn("push notification failed", "op", op, "error", err)
	}
}

// Submitted reports a draft entering review.
func (c *Center) Submitted(ctx context.Context, title, author string) {
	c.set(SeverityInfo, fmt.Sprintf("%q submitted for review by %s", title, author))
	c.forward("submitted", c.push.NotifySubmitted(ctx, title, author))
}

// Approved reports an editor approving an item.
func (c *Center) Approved(ctx context.Context, title, editor string) {
	c.set(SeveritySuccess, fmt.Sprintf("%q approved by %s", title, editor))
	c.forward("approved", c.push.NotifyApproved(ctx, title, editor))
}

// Rejected reports an editor sending an item back to draft.
func (c *Center) Rejected(ctx context.Context, title, editor string) {
	c.set(SeverityInfo, fmt.Sprintf("%q sent back to draft by %s", title, editor))
	c.forward("rejected", c.push.NotifyRejected(ctx, title, editor))
}

// Scheduled reports the aggregate result of a bulk scheduling run.
func (c *Center) Scheduled(ctx context.Context, count int) {
	c.set(SeveritySuccess, fmt.Sprintf("Scheduled %d items for publication", count))
	c.forward("scheduled", c.push.NotifyScheduled(ctx, count))
}

// Published reports a successful publish to a content site.
func (c *Center) Published(ctx context.Context, title, url string) {
	message := fmt.Sprintf("Published %q", title)
	if strings.TrimSpace(url) != "" {
		message = fmt.Sprintf("%s (%s)", message, url)
	}
	c.set(SeveritySuccess, message)
	c.forward("published", c.push.NotifyPublished(ctx, title, url))
}

// Error reports a failed operation. The underlying message is passed through
// verbatim.
func (c *Center) Error(ctx context.Context, err error, label string) {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	if label = strings.TrimSpace(label); label != "" {
		message = fmt.Sprintf("%s: %s", label, message)
	}
	c.set(SeverityError, message)
	c.forward("error", c.push.NotifyError(ctx, err, label))
}
