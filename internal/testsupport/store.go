package testsupport

import (
	"context"
	"testing"

	"copydesk/internal/config"
	"copydesk/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedUser creates a user for tests.
func SeedUser(t testing.TB, st *store.Store, email string, role store.Role) *store.User {
	t.Helper()

	user, err := st.CreateUser(context.Background(), email, role)
	if err != nil {
		t.Fatalf("store.CreateUser: %v", err)
	}
	return user
}

// SeedDraft creates a draft item for tests.
func SeedDraft(t testing.TB, st *store.Store, title string, author *store.User) *store.Item {
	t.Helper()

	item, err := st.CreateDraft(context.Background(), store.Draft{
		Kind:     store.KindArticle,
		Title:    title,
		AuthorID: author.ID,
	})
	if err != nil {
		t.Fatalf("store.CreateDraft: %v", err)
	}
	return item
}

// SeedItemWithStatus creates a draft and forces it into the given status.
func SeedItemWithStatus(t testing.TB, st *store.Store, title string, author *store.User, status store.Status) *store.Item {
	t.Helper()

	item := SeedDraft(t, st, title, author)
	item.Status = status
	if _, err := st.UpdateItem(context.Background(), item); err != nil {
		t.Fatalf("store.UpdateItem: %v", err)
	}
	return item
}
