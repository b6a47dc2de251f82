package workflow_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"copydesk/internal/store"
	"copydesk/internal/testsupport"
	"copydesk/internal/workflow"
)

func TestScheduleBatchStaggersTimestamps(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()

	a := testsupport.SeedItemWithStatus(t, fx.store, "A", fx.writer, store.StatusApproved)
	b := testsupport.SeedItemWithStatus(t, fx.store, "B", fx.writer, store.StatusApproved)
	c := testsupport.SeedItemWithStatus(t, fx.store, "C", fx.writer, store.StatusApproved)

	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	count, err := fx.engine.ScheduleBatch(ctx, []string{a.ID, b.ID, c.ID}, start, 2, *fx.editor)
	if err != nil {
		t.Fatalf("ScheduleBatch failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 scheduled, got %d", count)
	}

	wantTimes := []time.Time{start, start.AddDate(0, 0, 2), start.AddDate(0, 0, 4)}
	for i, id := range []string{a.ID, b.ID, c.ID} {
		item, err := fx.store.GetItem(ctx, id)
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if item.Status != store.StatusScheduled {
			t.Fatalf("item %d not scheduled: %s", i, item.Status)
		}
		if item.ScheduledFor == nil || !item.ScheduledFor.Equal(wantTimes[i]) {
			t.Fatalf("item %d scheduled for %v, want %v", i, item.ScheduledFor, wantTimes[i])
		}
	}
}

func TestScheduleBatchSkipsWithoutAdvancingCursor(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()

	a := testsupport.SeedItemWithStatus(t, fx.store, "A", fx.writer, store.StatusApproved)
	b := testsupport.SeedDraft(t, fx.store, "B", fx.writer)
	c := testsupport.SeedItemWithStatus(t, fx.store, "C", fx.writer, store.StatusApproved)

	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	count, err := fx.engine.ScheduleBatch(ctx, []string{a.ID, b.ID, "missing", c.ID}, start, 3, *fx.editor)
	if err != nil {
		t.Fatalf("ScheduleBatch failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 scheduled, got %d", count)
	}

	// The draft and the unknown id are skipped without consuming a slot, so
	// C lands one interval after A.
	second, err := fx.store.GetItem(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	want := start.AddDate(0, 0, 3)
	if second.ScheduledFor == nil || !second.ScheduledFor.Equal(want) {
		t.Fatalf("C scheduled for %v, want %v", second.ScheduledFor, want)
	}

	skipped, err := fx.store.GetItem(ctx, b.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if skipped.Status != store.StatusDraft || skipped.ScheduledFor != nil {
		t.Fatalf("skipped item mutated: %#v", skipped)
	}
}

func TestScheduleBatchEmitsOneAggregateNotification(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()

	a := testsupport.SeedItemWithStatus(t, fx.store, "A", fx.writer, store.StatusApproved)
	b := testsupport.SeedItemWithStatus(t, fx.store, "B", fx.writer, store.StatusApproved)

	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	if _, err := fx.engine.ScheduleBatch(ctx, []string{a.ID, b.ID}, start, 1, *fx.editor); err != nil {
		t.Fatalf("ScheduleBatch failed: %v", err)
	}

	if len(fx.push.events) != 1 || fx.push.events[0] != "scheduled" {
		t.Fatalf("expected a single aggregate push event, got %v", fx.push.events)
	}
	note := fx.center.Current()
	if note == nil || note.Message != "Scheduled 2 items for publication" {
		t.Fatalf("unexpected notification: %#v", note)
	}
}

func TestScheduleBatchValidation(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()
	item := testsupport.SeedItemWithStatus(t, fx.store, "A", fx.writer, store.StatusApproved)
	start := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	if _, err := fx.engine.ScheduleBatch(ctx, []string{item.ID}, start, 1, *fx.writer); !errors.Is(err, workflow.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for writer, got %v", err)
	}
	if _, err := fx.engine.ScheduleBatch(ctx, []string{item.ID}, start, 0, *fx.editor); !errors.Is(err, workflow.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	if _, err := fx.engine.ScheduleBatch(ctx, []string{item.ID}, start, -2, *fx.editor); !errors.Is(err, workflow.ErrInvalidInterval) {
		t.Fatalf("expected ErrInvalidInterval for negative interval, got %v", err)
	}
	if _, err := fx.engine.ScheduleBatch(ctx, []string{item.ID}, time.Time{}, 1, *fx.editor); !errors.Is(err, workflow.ErrInvalidStartDate) {
		t.Fatalf("expected ErrInvalidStartDate, got %v", err)
	}

	// None of the failed attempts may touch the item.
	fetched, err := fx.store.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if fetched.Status != store.StatusApproved || fetched.ScheduledFor != nil {
		t.Fatalf("failed scheduling mutated the item: %#v", fetched)
	}
	if len(fx.push.events) != 0 {
		t.Fatalf("failed scheduling must not notify, got %v", fx.push.events)
	}
}
