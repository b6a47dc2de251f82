package workflow

import (
	"copydesk/internal/store"
)

// route identifies which engine entry point may perform a transition.
// Publishing crosses an external boundary and scheduling assigns timestamps,
// so neither is reachable through a plain transition request.
type route int

const (
	routeDirect route = iota
	routePublish
	routeScheduler
)

type rule struct {
	from           store.Status
	to             store.Status
	role           store.Role
	requiresAuthor bool
	via            route
}

// transitionTable is the complete set of legal status transitions. Every
// (from, to) pair absent from this table is invalid.
var transitionTable = []rule{
	{from: store.StatusDraft, to: store.StatusNeedsReview, role: store.RoleWriter, requiresAuthor: true, via: routeDirect},
	{from: store.StatusNeedsReview, to: store.StatusApproved, role: store.RoleEditor, via: routeDirect},
	{from: store.StatusNeedsReview, to: store.StatusDraft, role: store.RoleEditor, via: routeDirect},
	{from: store.StatusApproved, to: store.StatusPublished, role: store.RoleEditor, via: routePublish},
	{from: store.StatusApproved, to: store.StatusScheduled, role: store.RoleEditor, via: routeScheduler},
}

func findRule(from, to store.Status) (rule, bool) {
	for _, r := range transitionTable {
		if r.from == from && r.to == to {
			return r, true
		}
	}
	return rule{}, false
}

// checkTransition verifies that the actor may move the item from its current
// status to target through the given route. It returns ErrInvalidTransition
// for pairs outside the table (or reachable only through another route) and
// ErrUnauthorized when the role or ownership requirement fails.
func checkTransition(item *store.Item, target store.Status, actor store.User, via route) error {
	r, ok := findRule(item.Status, target)
	if !ok || r.via != via {
		return ErrInvalidTransition
	}
	if actor.Role != r.role {
		return ErrUnauthorized
	}
	if r.requiresAuthor && item.AuthorID != actor.ID {
		return ErrUnauthorized
	}
	return nil
}

// transitionKind names the user-visible event for a direct transition.
func transitionKind(from, to store.Status) string {
	switch {
	case from == store.StatusDraft && to == store.StatusNeedsReview:
		return "submitted"
	case from == store.StatusNeedsReview && to == store.StatusApproved:
		return "approved"
	case from == store.StatusNeedsReview && to == store.StatusDraft:
		return "rejected"
	default:
		return string(to)
	}
}
