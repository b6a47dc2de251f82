package notifications_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"copydesk/internal/notifications"
)

func TestCenterKeepsOnlyLatestNotification(t *testing.T) {
	center := notifications.NewCenter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	if center.Current() != nil {
		t.Fatal("expected no notification initially")
	}

	center.Submitted(ctx, "First", "maria@example.com")
	center.Approved(ctx, "First", "jon@example.com")
	center.Scheduled(ctx, 3)

	note := center.Current()
	if note == nil {
		t.Fatal("expected a notification")
	}
	if note.Message != "Scheduled 3 items for publication" {
		t.Fatalf("expected latest notification to win, got %q", note.Message)
	}
	if note.Severity != notifications.SeveritySuccess {
		t.Fatalf("expected success severity, got %s", note.Severity)
	}
	if note.At.IsZero() {
		t.Fatal("expected notification timestamp")
	}
}

func TestCenterCurrentReturnsCopy(t *testing.T) {
	center := notifications.NewCenter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	center.Published(context.Background(), "Guide", "https://demo.example.com/guide")

	first := center.Current()
	first.Message = "tampered"

	second := center.Current()
	if second.Message == "tampered" {
		t.Fatal("Current must return an independent copy")
	}
}

func TestCenterClear(t *testing.T) {
	center := notifications.NewCenter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	center.Submitted(context.Background(), "Draft", "maria@example.com")

	center.Clear()
	if center.Current() != nil {
		t.Fatal("expected cleared notification")
	}
}

func TestCenterErrorPassesMessageVerbatim(t *testing.T) {
	center := notifications.NewCenter(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))

	center.Error(context.Background(), errors.New("cms: publish \"Guide\": http 502: bad gateway"), "publish")

	note := center.Current()
	if note == nil || note.Severity != notifications.SeverityError {
		t.Fatalf("expected error notification, got %#v", note)
	}
	if note.Message != "publish: cms: publish \"Guide\": http 502: bad gateway" {
		t.Fatalf("unexpected message: %q", note.Message)
	}
}
