package workflow_test

import (
	"context"
	"errors"
	"testing"

	"copydesk/internal/notifications"
	"copydesk/internal/store"
	"copydesk/internal/testsupport"
	"copydesk/internal/workflow"
)

type fakePublisher struct {
	result workflow.PublishResult
	err    error

	calls  int
	gotID  string
	during func()
}

func (f *fakePublisher) Publish(_ context.Context, _ string, item *store.Item, _ workflow.PublishOptions) (workflow.PublishResult, error) {
	f.calls++
	f.gotID = item.ID
	if f.during != nil {
		f.during()
	}
	return f.result, f.err
}

func TestPublishRecordsExternalReferences(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()
	item := testsupport.SeedItemWithStatus(t, fx.store, "Ready", fx.writer, store.StatusApproved)

	publisher := &fakePublisher{result: workflow.PublishResult{PostID: "42", URL: "https://demo.example.com/ready"}}
	engine := fx.build(publisher)

	published, err := engine.Publish(ctx, item.ID, "demo", workflow.PublishOptions{}, *fx.editor)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if published.Status != store.StatusPublished {
		t.Fatalf("expected published status, got %s", published.Status)
	}
	if published.SiteID != "demo" || published.ExternalPostID != "42" || published.ExternalURL != "https://demo.example.com/ready" {
		t.Fatalf("external references not recorded: %#v", published)
	}
	if publisher.calls != 1 || publisher.gotID != item.ID {
		t.Fatalf("unexpected publisher invocation: %#v", publisher)
	}

	note := fx.center.Current()
	if note == nil || note.Severity != notifications.SeveritySuccess {
		t.Fatalf("expected success notification, got %#v", note)
	}
}

func TestPublishFailureLeavesItemApproved(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()
	item := testsupport.SeedItemWithStatus(t, fx.store, "Flaky", fx.writer, store.StatusApproved)

	wantErr := errors.New("site rejected the post")
	engine := fx.build(&fakePublisher{err: wantErr})

	if _, err := engine.Publish(ctx, item.ID, "demo", workflow.PublishOptions{}, *fx.editor); !errors.Is(err, wantErr) {
		t.Fatalf("expected publisher error surfaced verbatim, got %v", err)
	}

	fetched, err := fx.store.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if fetched.Status != store.StatusApproved || fetched.ExternalPostID != "" {
		t.Fatalf("failed publish mutated the item: %#v", fetched)
	}

	note := fx.center.Current()
	if note == nil || note.Severity != notifications.SeverityError {
		t.Fatalf("expected error notification, got %#v", note)
	}
	if note.Message != "publish: site rejected the post" {
		t.Fatalf("expected verbatim error message, got %q", note.Message)
	}
}

func TestPublishChecksRoleAndStatusBeforeCalling(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()
	publisher := &fakePublisher{result: workflow.PublishResult{PostID: "1"}}
	engine := fx.build(publisher)

	draft := testsupport.SeedDraft(t, fx.store, "Not Ready", fx.writer)
	if _, err := engine.Publish(ctx, draft.ID, "demo", workflow.PublishOptions{}, *fx.editor); !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	approved := testsupport.SeedItemWithStatus(t, fx.store, "Ready", fx.writer, store.StatusApproved)
	if _, err := engine.Publish(ctx, approved.ID, "demo", workflow.PublishOptions{}, *fx.writer); !errors.Is(err, workflow.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if publisher.calls != 0 {
		t.Fatalf("publisher must not be called for rejected requests, got %d calls", publisher.calls)
	}
}

func TestPublishToleratesDeletionDuringCall(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()
	item := testsupport.SeedItemWithStatus(t, fx.store, "Racy", fx.writer, store.StatusApproved)

	publisher := &fakePublisher{result: workflow.PublishResult{PostID: "7", URL: "https://demo.example.com/racy"}}
	publisher.during = func() {
		if _, err := fx.store.RemoveItem(ctx, item.ID); err != nil {
			t.Fatalf("RemoveItem failed: %v", err)
		}
	}
	engine := fx.build(publisher)

	published, err := engine.Publish(ctx, item.ID, "demo", workflow.PublishOptions{}, *fx.editor)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if published != nil {
		t.Fatalf("expected nil item for skipped write-back, got %#v", published)
	}

	fetched, err := fx.store.GetItem(ctx, item.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if fetched != nil {
		t.Fatalf("item should stay deleted, got %#v", fetched)
	}
}

func TestRepublishUpdatesExistingPost(t *testing.T) {
	fx := newEngineFixture(t)
	ctx := context.Background()
	item := testsupport.SeedItemWithStatus(t, fx.store, "Classic", fx.writer, store.StatusApproved)

	publisher := &fakePublisher{result: workflow.PublishResult{PostID: "9", URL: "https://demo.example.com/classic"}}
	engine := fx.build(publisher)

	if _, err := engine.Publish(ctx, item.ID, "demo", workflow.PublishOptions{}, *fx.editor); err != nil {
		t.Fatalf("initial publish failed: %v", err)
	}

	// Without the update flag a published item is terminal.
	if _, err := engine.Publish(ctx, item.ID, "demo", workflow.PublishOptions{}, *fx.editor); !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for plain republish, got %v", err)
	}

	if _, err := engine.Publish(ctx, item.ID, "demo", workflow.PublishOptions{Update: true}, *fx.writer); !errors.Is(err, workflow.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for writer republish, got %v", err)
	}

	publisher.result.URL = "https://demo.example.com/classic-revised"
	updated, err := engine.Publish(ctx, item.ID, "demo", workflow.PublishOptions{Update: true}, *fx.editor)
	if err != nil {
		t.Fatalf("republish failed: %v", err)
	}
	if updated.Status != store.StatusPublished {
		t.Fatalf("republish must not change status, got %s", updated.Status)
	}
	if updated.ExternalURL != "https://demo.example.com/classic-revised" {
		t.Fatalf("external url not refreshed: %#v", updated)
	}
	if publisher.calls != 2 {
		t.Fatalf("expected 2 publisher calls, got %d", publisher.calls)
	}
}

func TestPublishWithoutConfiguredSite(t *testing.T) {
	fx := newEngineFixture(t)
	item := testsupport.SeedItemWithStatus(t, fx.store, "Nowhere", fx.writer, store.StatusApproved)

	if _, err := fx.engine.Publish(context.Background(), item.ID, "demo", workflow.PublishOptions{}, *fx.editor); err == nil {
		t.Fatal("expected error when no publisher is configured")
	}
}
