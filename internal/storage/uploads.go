// Package storage manages uploaded image files on local disk.  Uploads
// are stored flat under one directory and served statically under
// /uploads; records reference them by public URL path only.
package storage

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path prefix images are served under.
const URLPrefix = "/uploads/"

// Uploads saves and removes image files in a single directory.
type Uploads struct {
	dir string
}

// NewUploads ensures the upload directory exists and returns the store.
func NewUploads(dir string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Uploads{dir: dir}, nil
}

// Dir returns the directory files are written to.
func (u *Uploads) Dir() string { return u.dir }

// Save writes the file under a generated name that keeps the original
// extension, and returns its public URL path.
func (u *Uploads) Save(originalName string, body io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	target := filepath.Join(u.dir, name)

	f, err := os.Create(target)
	if err != nil {
		return "", err
	}
	size, err := io.Copy(f, body)
	_ = f.Close()
	if err != nil {
		_ = os.Remove(target)
		return "", err
	}
	if size == 0 {
		_ = os.Remove(target)
		return "", fmt.Errorf("empty upload %q", originalName)
	}
	return URLPrefix + name, nil
}

// Remove deletes the file behind an /uploads URL, best effort.  Missing
// files and other failures are logged, never surfaced: image cleanup is
// non-critical and must not fail the owning request.
func (u *Uploads) Remove(imageURL string) {
	// Only URLs this store issued are eligible.  An external image URL
	// can share a basename with a local file and must not delete it.
	if !strings.HasPrefix(imageURL, URLPrefix) {
		return
	}
	name := filepath.Base(imageURL)
	if name == "." || name == "/" || name == "" {
		return
	}
	path := filepath.Join(u.dir, name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			log.Printf("uploads: image already absent: %s", name)
		} else {
			log.Printf("uploads: could not remove %s: %v", name, err)
		}
		return
	}
	log.Printf("uploads: removed old image %s", name)
}
