package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	u, err := NewUploads(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	url, err := u.Save("portrait.PNG", strings.NewReader("image bytes"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix) || !strings.HasSuffix(url, ".png") {
		t.Fatalf("url shape: %q", url)
	}
	path := filepath.Join(u.Dir(), filepath.Base(url))
	if body, err := os.ReadFile(path); err != nil || string(body) != "image bytes" {
		t.Fatalf("stored body: %q err=%v", body, err)
	}

	// Two saves of the same name must not collide.
	url2, err := u.Save("portrait.PNG", strings.NewReader("other"))
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if url2 == url {
		t.Fatal("generated names collided")
	}

	u.Remove(url)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err=%v", err)
	}
	// Removing again must not panic or error out.
	u.Remove(url)
}

func TestSaveRejectsEmpty(t *testing.T) {
	u, err := NewUploads(t.TempDir())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := u.Save("empty.png", strings.NewReader("")); err == nil {
		t.Fatal("empty upload accepted")
	}
	entries, _ := os.ReadDir(u.Dir())
	if len(entries) != 0 {
		t.Fatalf("rejected upload left files behind: %v", entries)
	}
}

func TestRemoveIgnoresTraversal(t *testing.T) {
	dir := t.TempDir()
	u, _ := NewUploads(filepath.Join(dir, "uploads"))

	outside := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(outside, []byte("keep"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	u.Remove("/uploads/../secret.txt")
	if _, err := os.Stat(outside); err != nil {
		t.Fatalf("file outside the uploads dir was touched: %v", err)
	}
}

func TestRemoveIgnoresExternalURLs(t *testing.T) {
	u, _ := NewUploads(t.TempDir())

	local := filepath.Join(u.Dir(), "x.png")
	if err := os.WriteFile(local, []byte("keep"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// An external URL sharing a basename with a local file must not
	// delete that file.
	u.Remove("https://cdn.example/x.png")
	u.Remove("x.png")
	if _, err := os.Stat(local); err != nil {
		t.Fatalf("local file removed for a foreign url: %v", err)
	}
}
