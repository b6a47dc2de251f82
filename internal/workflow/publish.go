package workflow

import (
	"context"
	"errors"
	"fmt"

	"copydesk/internal/store"
)

// Publish pushes an approved item to the given content site and records the
// external references. Only editors may publish, and only approved items,
// except that an already-published item may be republished with opts.Update
// to refresh its existing external post.
//
// The external call is the one operation that crosses an async boundary: the
// status update is applied only after the call resolves. If the publisher
// fails, the item stays approved and the error is surfaced verbatim. If the
// item was deleted while the call was in flight, the write-back is a silent
// no-op.
func (e *Engine) Publish(ctx context.Context, itemID, siteID string, opts PublishOptions, actor store.User) (*store.Item, error) {
	if e.publisher == nil {
		return nil, errors.New("no content site configured")
	}

	item, err := e.store.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	// Republishing updates the external post of an already-published item
	// and never changes status. Everything else must pass the transition
	// table.
	republish := opts.Update && item.Status == store.StatusPublished && item.ExternalPostID != ""
	if republish {
		if actor.Role != store.RoleEditor {
			return nil, fmt.Errorf("%w: republish %s", ErrUnauthorized, itemID)
		}
	} else if err := checkTransition(item, store.StatusPublished, actor, routePublish); err != nil {
		return nil, fmt.Errorf("%w: %s -> %s", err, item.Status, store.StatusPublished)
	}

	result, err := e.publisher.Publish(ctx, siteID, item.Clone(), opts)
	if err != nil {
		e.center.Error(ctx, err, "publish")
		return nil, err
	}

	item.Status = store.StatusPublished
	item.SiteID = siteID
	item.ExternalPostID = result.PostID
	item.ExternalURL = result.URL
	existed, err := e.store.UpdateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	if !existed {
		// Deleted mid-publish; the external post exists but there is no
		// local row to update.
		e.logger.Warn("item removed during publish, skipping write-back",
			"item", itemID, "post", result.PostID)
		return nil, nil
	}

	e.logger.Info("item published",
		"item", item.ID, "title", item.Title, "site", siteID, "post", result.PostID, "url", result.URL)
	e.center.Published(ctx, item.Title, result.URL)
	return item, nil
}
