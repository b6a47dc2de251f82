package store_test

import (
	"context"
	"testing"

	"copydesk/internal/store"
	"copydesk/internal/testsupport"
)

func TestSessionLifecycle(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	writer := testsupport.SeedUser(t, st, "writer@example.com", store.RoleWriter)
	editor := testsupport.SeedUser(t, st, "editor@example.com", store.RoleEditor)

	ctx := context.Background()
	current, err := st.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current != nil {
		t.Fatalf("expected no session, got %#v", current)
	}

	if err := st.Login(ctx, writer.ID); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	current, err = st.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current == nil || current.ID != writer.ID {
		t.Fatalf("expected writer session, got %#v", current)
	}

	// Logging in again replaces the single session row.
	if err := st.Login(ctx, editor.ID); err != nil {
		t.Fatalf("Login as editor failed: %v", err)
	}
	current, err = st.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current == nil || current.ID != editor.ID {
		t.Fatalf("expected editor session, got %#v", current)
	}

	if err := st.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	current, err = st.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser failed: %v", err)
	}
	if current != nil {
		t.Fatalf("expected cleared session, got %#v", current)
	}

	// Logout with no session is a no-op.
	if err := st.Logout(ctx); err != nil {
		t.Fatalf("repeat Logout failed: %v", err)
	}
}

func TestUsersRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	created, err := st.CreateUser(ctx, "Mixed.Case@Example.com", store.RoleEditor)
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if created.Email != "mixed.case@example.com" {
		t.Fatalf("expected lowercased email, got %s", created.Email)
	}

	found, err := st.FindUserByEmail(ctx, "MIXED.CASE@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail failed: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Fatalf("expected to find created user, got %#v", found)
	}

	missing, err := st.GetUser(ctx, "nope")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing user, got %#v", missing)
	}

	if _, err := st.CreateUser(ctx, "mixed.case@example.com", store.RoleWriter); err == nil {
		t.Fatal("expected duplicate email to be rejected")
	}
}
