package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches the working directory for the test and restores it on
// cleanup. (t.Chdir requires Go 1.24; this toolchain is older.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestHandleMessageAppendsAuditLine(t *testing.T) {
	chdir(t, t.TempDir())

	ev := ContentChangedEvent{
		Entity:    "skill",
		ID:        7,
		Action:    ActionToggled,
		ChangedAt: "2026-08-30T12:00:00Z",
	}
	body, _ := json.Marshal(ev)
	if err := handleMessage(body); err != nil {
		t.Fatalf("handle: %v", err)
	}
	// A second event appends rather than truncates.
	ev.Action = ActionDeleted
	body, _ = json.Marshal(ev)
	if err := handleMessage(body); err != nil {
		t.Fatalf("handle second: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join("logs", "content.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 lines, got %d: %q", len(lines), raw)
	}
	if !strings.Contains(lines[0], "entity=skill") || !strings.Contains(lines[0], "action=toggled") {
		t.Errorf("first line content: %q", lines[0])
	}
	if !strings.Contains(lines[1], "action=deleted") {
		t.Errorf("second line content: %q", lines[1])
	}
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	chdir(t, t.TempDir())
	if err := handleMessage([]byte("{not json")); err == nil {
		t.Fatal("malformed payload accepted")
	}
}
