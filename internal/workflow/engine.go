package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"copydesk/internal/notifications"
	"copydesk/internal/store"
	"copydesk/internal/users"
)

// Publisher is the content-management site collaborator consumed by the
// engine. Implementations live in internal/services/cms.
type Publisher interface {
	Publish(ctx context.Context, site string, item *store.Item, opts PublishOptions) (PublishResult, error)
}

// PublishOptions carry per-publish settings for the external site.
type PublishOptions struct {
	CategoryIDs []int64
	// Update republishes to the existing external post instead of creating
	// a new one.
	Update bool
}

// PublishResult is the external reference returned by a successful publish.
type PublishResult struct {
	PostID string
	URL    string
}

// Engine drives content items through the workflow state machine. All
// mutations pass through it so role checks, the transition table, and
// notifications stay consistent.
type Engine struct {
	store     *store.Store
	center    *notifications.Center
	publisher Publisher
	directory users.Directory
	logger    *slog.Logger
}

// New constructs an engine. The publisher may be nil when no content site is
// configured; Publish then reports a configuration error before any check.
func New(s *store.Store, center *notifications.Center, publisher Publisher, directory users.Directory, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		store:     s,
		center:    center,
		publisher: publisher,
		directory: directory,
		logger:    logger.With("component", "workflow"),
	}
}

// RequestTransition moves an item to target on behalf of actor. On success
// the item's status and UpdatedAt are persisted atomically and exactly one
// notification is emitted; on failure nothing is mutated and no notification
// fires.
func (e *Engine) RequestTransition(ctx context.Context, itemID string, target store.Status, actor store.User) (*store.Item, error) {
	if _, ok := store.ParseStatus(string(target)); !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, target)
	}

	item, err := e.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	if err := checkTransition(item, target, actor, routeDirect); err != nil {
		return nil, fmt.Errorf("%w: %s -> %s", err, item.Status, target)
	}

	from := item.Status
	item.Status = target
	existed, err := e.store.UpdateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	kind := transitionKind(from, target)
	actorName := users.DisplayName(e.directory, actor.ID)
	e.logger.Info("transition applied",
		"item", item.ID, "title", item.Title, "from", string(from), "to", string(target), "kind", kind, "actor", actorName)

	switch kind {
	case "submitted":
		e.center.Submitted(ctx, item.Title, actorName)
	case "approved":
		e.center.Approved(ctx, item.Title, actorName)
	case "rejected":
		e.center.Rejected(ctx, item.Title, actorName)
	}
	return item, nil
}

// Delete removes an item. Editors may delete anything; a writer may delete
// only their own items while still in draft.
func (e *Engine) Delete(ctx context.Context, itemID string, actor store.User) error {
	item, err := e.store.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	if actor.Role != store.RoleEditor {
		if actor.Role != store.RoleWriter || item.AuthorID != actor.ID || item.Status != store.StatusDraft {
			return fmt.Errorf("%w: delete %s", ErrUnauthorized, itemID)
		}
	}

	if _, err := e.store.RemoveItem(ctx, itemID); err != nil {
		return err
	}
	e.logger.Info("item deleted", "item", itemID, "title", item.Title)
	return nil
}
