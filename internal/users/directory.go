package users

import (
	"context"

	"copydesk/internal/store"
)

// UnknownAuthor is the placeholder rendered when an author id cannot be
// resolved. Resolution failures are never an error.
const UnknownAuthor = "unknown author"

// Identity is the human-readable view of a user.
type Identity struct {
	Email string
	Role  store.Role
}

// Directory resolves user identifiers to identities for display and search.
type Directory interface {
	Resolve(id string) (Identity, bool)
}

// DisplayName returns the author email for an id, or UnknownAuthor.
func DisplayName(dir Directory, id string) string {
	if dir != nil {
		if ident, ok := dir.Resolve(id); ok && ident.Email != "" {
			return ident.Email
		}
	}
	return UnknownAuthor
}

// StoreDirectory resolves identities from the persistent user table,
// memoizing lookups for the lifetime of the directory.
type StoreDirectory struct {
	store *store.Store
	cache map[string]Identity
}

// NewStoreDirectory builds a directory backed by the given store.
func NewStoreDirectory(s *store.Store) *StoreDirectory {
	return &StoreDirectory{store: s, cache: make(map[string]Identity)}
}

func (d *StoreDirectory) Resolve(id string) (Identity, bool) {
	if d == nil || d.store == nil || id == "" {
		return Identity{}, false
	}
	if ident, ok := d.cache[id]; ok {
		return ident, ok
	}
	user, err := d.store.GetUser(context.Background(), id)
	if err != nil || user == nil {
		return Identity{}, false
	}
	ident := Identity{Email: user.Email, Role: user.Role}
	d.cache[id] = ident
	return ident, true
}

// StaticDirectory is a fixed id-to-identity map, handy for tests and pure
// query evaluation.
type StaticDirectory map[string]Identity

func (d StaticDirectory) Resolve(id string) (Identity, bool) {
	ident, ok := d[id]
	return ident, ok
}
