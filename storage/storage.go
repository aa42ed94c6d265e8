package storage

import (
	"log"
	"os"
	"path/filepath"
)

// URLPrefix is the static mount blobs are served under.
const URLPrefix = "/uploads/"

var Dir = "data/uploads"

func Init() {
	if dir := os.Getenv("GALLERY_UPLOADS"); dir != "" {
		Dir = dir
	}
	if err := os.MkdirAll(Dir, 0755); err != nil {
		log.Fatal("Failed to create uploads directory:", err)
	}
}

// PathFor returns the on-disk path for a stored filename.
func PathFor(name string) string {
	return filepath.Join(Dir, name)
}

// URLFor returns the path the static file server resolves to the blob.
func URLFor(name string) string {
	return URLPrefix + name
}

// Remove deletes a blob, best effort. A missing or undeletable file is logged
// and otherwise ignored so the owning record can still be removed.
func Remove(name string) {
	if err := os.Remove(PathFor(name)); err != nil {
		log.Printf("Error deleting file %s: %v", name, err)
	}
}
