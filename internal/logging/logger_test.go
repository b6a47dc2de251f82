package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"copydesk/internal/logging"
)

func TestConsoleFormatCollapsesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.With("component", "workflow").Info("transition applied", "item", "abc-123", "to", "needs-review")

	line := strings.TrimSpace(buf.String())
	if !strings.Contains(line, " INFO workflow: transition applied") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "item=abc-123") || !strings.Contains(line, "to=needs-review") {
		t.Fatalf("missing attrs in line: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component attr should fold into the prefix: %q", line)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("item published", "title", "Autumn Gear Guide")

	if !strings.Contains(buf.String(), `title="Autumn Gear Guide"`) {
		t.Fatalf("expected quoted title, got %q", buf.String())
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("item deleted", "item", "abc")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "item deleted" || record["item"] != "abc" {
		t.Fatalf("unexpected record: %#v", record)
	}
	if record["level"] != "info" {
		t.Fatalf("expected lowercase level, got %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatalf("expected ts key, got %#v", record)
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}
