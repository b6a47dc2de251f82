package store

import (
	"strings"
	"time"
)

// Status represents the workflow lifecycle of a content item.
type Status string

const (
	StatusDraft       Status = "draft"
	StatusNeedsReview Status = "needs-review"
	StatusApproved    Status = "approved"
	StatusScheduled   Status = "scheduled"
	StatusPublished   Status = "published"
)

var allStatuses = []Status{
	StatusDraft,
	StatusNeedsReview,
	StatusApproved,
	StatusScheduled,
	StatusPublished,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// Kind distinguishes the content variants copydesk manages.
type Kind string

const (
	KindArticle Kind = "article"
	KindProduct Kind = "product"
)

// ParseKind converts a string into a known Kind.
func ParseKind(value string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindArticle:
		return KindArticle, true
	case KindProduct:
		return KindProduct, true
	default:
		return "", false
	}
}

// Role controls which workflow transitions a user may invoke.
type Role string

const (
	RoleWriter Role = "writer"
	RoleEditor Role = "editor"
)

// ParseRole converts a string into a known Role.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleWriter:
		return RoleWriter, true
	case RoleEditor:
		return RoleEditor, true
	default:
		return "", false
	}
}

// User is a member of the content team.
type User struct {
	ID    string
	Email string
	Role  Role
}

// Item represents one piece of writable content persisted in SQLite.
//
// ScheduledFor is set if and only if Status is StatusScheduled.
// SiteID, ExternalPostID, and ExternalURL are set only once the item has
// been published to a content-management site.
type Item struct {
	ID               string
	Kind             Kind
	Title            string
	MetaDescription  string
	Body             string
	LongDescription  string
	ShortDescription string
	Status           Status
	AuthorID         string
	SiteID           string
	ExternalPostID   string
	ExternalURL      string
	ScheduledFor     *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsPublished reports whether the item has ever reached a content site.
func (i Item) IsPublished() bool {
	return i.ExternalPostID != ""
}

// Clone returns a deep copy so callers can stage mutations without
// touching shared state.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	cp := *i
	if i.ScheduledFor != nil {
		t := *i.ScheduledFor
		cp.ScheduledFor = &t
	}
	return &cp
}
