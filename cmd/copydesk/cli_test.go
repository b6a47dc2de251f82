package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"copydesk/internal/config"
	"copydesk/internal/store"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	contents := `
[paths]
data_dir = "` + filepath.Join(base, "data") + `"
log_dir = "` + filepath.Join(base, "logs") + `"

[logging]
format = "console"
level = "error"
`
	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func requireContains(t *testing.T, out, want string) {
	t.Helper()
	if !strings.Contains(out, want) {
		t.Fatalf("output %q does not contain %q", out, want)
	}
}

// seed opens the store directly, runs fn, and releases the session lock so a
// following CLI invocation can take it.
func seed(t *testing.T, configPath string, fn func(*store.Store)) {
	t.Helper()

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	fn(st)
}

func TestUserAndSessionCommands(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := runCLI(t, configPath, "user", "add", "maria@example.com", "--role", "writer")
	if err != nil {
		t.Fatalf("user add: %v", err)
	}
	requireContains(t, out, "Added maria@example.com as writer")

	if _, err := runCLI(t, configPath, "user", "add", "bad@example.com", "--role", "admin"); err == nil {
		t.Fatal("expected unknown role to fail")
	}

	out, err = runCLI(t, configPath, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	requireContains(t, out, "Not signed in")

	out, err = runCLI(t, configPath, "login", "maria@example.com")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	requireContains(t, out, "Signed in as maria@example.com (writer)")

	out, err = runCLI(t, configPath, "whoami")
	if err != nil {
		t.Fatalf("whoami: %v", err)
	}
	requireContains(t, out, "maria@example.com (writer)")

	out, err = runCLI(t, configPath, "logout")
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	requireContains(t, out, "Signed out")
}

func TestWorkflowCommands(t *testing.T) {
	configPath := writeTestConfig(t)

	var writer, editor *store.User
	var itemID string
	seed(t, configPath, func(st *store.Store) {
		ctx := context.Background()
		var err error
		if writer, err = st.CreateUser(ctx, "writer@example.com", store.RoleWriter); err != nil {
			t.Fatalf("create writer: %v", err)
		}
		if editor, err = st.CreateUser(ctx, "editor@example.com", store.RoleEditor); err != nil {
			t.Fatalf("create editor: %v", err)
		}
		item, err := st.CreateDraft(ctx, store.Draft{
			Kind:     store.KindArticle,
			Title:    "Autumn Gear Guide",
			AuthorID: writer.ID,
		})
		if err != nil {
			t.Fatalf("create draft: %v", err)
		}
		itemID = item.ID
	})
	_ = editor

	if _, err := runCLI(t, configPath, "submit", itemID); err == nil {
		t.Fatal("submit without login should fail")
	}

	if _, err := runCLI(t, configPath, "login", "writer@example.com"); err != nil {
		t.Fatalf("login writer: %v", err)
	}
	out, err := runCLI(t, configPath, "submit", itemID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	requireContains(t, out, "Submitted Autumn Gear Guide for review")

	// A writer cannot approve.
	if _, err := runCLI(t, configPath, "approve", itemID); err == nil {
		t.Fatal("writer approve should fail")
	}

	if _, err := runCLI(t, configPath, "login", "editor@example.com"); err != nil {
		t.Fatalf("login editor: %v", err)
	}
	out, err = runCLI(t, configPath, "approve", itemID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	requireContains(t, out, "Approved Autumn Gear Guide")

	out, err = runCLI(t, configPath, "schedule", itemID, "--start", "2026-10-01", "--interval", "2")
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}
	requireContains(t, out, "Scheduled 1 item(s)")

	out, err = runCLI(t, configPath, "list", "--status", "scheduled")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Autumn Gear Guide")
	requireContains(t, out, "writer@example.com")

	out, err = runCLI(t, configPath, "show", itemID)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Status:    scheduled")
	requireContains(t, out, "Scheduled: 2026-10-01")
}

func TestListFilters(t *testing.T) {
	configPath := writeTestConfig(t)

	seed(t, configPath, func(st *store.Store) {
		ctx := context.Background()
		writer, err := st.CreateUser(ctx, "writer@example.com", store.RoleWriter)
		if err != nil {
			t.Fatalf("create writer: %v", err)
		}
		for _, draft := range []store.Draft{
			{Kind: store.KindArticle, Title: "Winter Checklist", AuthorID: writer.ID},
			{Kind: store.KindProduct, Title: "Trail Jacket", AuthorID: writer.ID},
		} {
			if _, err := st.CreateDraft(ctx, draft); err != nil {
				t.Fatalf("create draft: %v", err)
			}
		}
	})

	out, err := runCLI(t, configPath, "list", "--kind", "product")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Trail Jacket")
	if strings.Contains(out, "Winter Checklist") {
		t.Fatalf("kind filter leaked articles: %q", out)
	}

	out, err = runCLI(t, configPath, "list", "--search", "JACKET")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "Trail Jacket")

	out, err = runCLI(t, configPath, "list", "--search", "nothing-matches")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "No matching items")

	if _, err := runCLI(t, configPath, "list", "--status", "pending"); err == nil {
		t.Fatal("unknown status should fail")
	}
}

func TestStatusCommand(t *testing.T) {
	configPath := writeTestConfig(t)

	seed(t, configPath, func(st *store.Store) {
		ctx := context.Background()
		writer, err := st.CreateUser(ctx, "writer@example.com", store.RoleWriter)
		if err != nil {
			t.Fatalf("create writer: %v", err)
		}
		if _, err := st.CreateDraft(ctx, store.Draft{Kind: store.KindArticle, Title: "One", AuthorID: writer.ID}); err != nil {
			t.Fatalf("create draft: %v", err)
		}
	})

	out, err := runCLI(t, configPath, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "draft")
	requireContains(t, out, "total")
}

func TestConfigInitCommand(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, buf.String(), "Wrote sample configuration")

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	// Refuses to clobber without --overwrite.
	cmd = newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"config", "init", "--path", target})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected existing file to be preserved")
	}
}
