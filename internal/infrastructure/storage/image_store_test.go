package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T) *ImageStore {
	t.Helper()
	store, err := NewImageStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewImageStore failed: %v", err)
	}
	return store
}

func TestImageStore_Allowed(t *testing.T) {
	store := newTestStore(t)

	for _, name := range []string{"a.png", "b.jpg", "c.JPEG", "d.Gif"} {
		if !store.Allowed(name) {
			t.Fatalf("expected %q to be allowed", name)
		}
	}
	for _, name := range []string{"a.exe", "b.svg", "noext", "archive.tar.gz", ""} {
		if store.Allowed(name) {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestImageStore_SaveAndRemove(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.Save("product.png", strings.NewReader("not-really-a-png"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ref != "product.png" {
		t.Fatalf("unexpected reference: %q", ref)
	}

	data, err := os.ReadFile(filepath.Join(store.basePath, ref))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "not-really-a-png" {
		t.Fatalf("unexpected file content: %q", data)
	}

	if err := store.Remove(ref); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := store.Remove(ref); err != nil {
		t.Fatalf("removing a missing file should not error: %v", err)
	}
}

func TestImageStore_SaveRejectsBadExtension(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.Save("shell.sh", strings.NewReader("#!/bin/sh")); err == nil {
		t.Fatalf("expected error for disallowed extension")
	}
}

func TestImageStore_SaveStripsPath(t *testing.T) {
	store := newTestStore(t)

	ref, err := store.Save("../../etc/evil.png", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ref != "evil.png" {
		t.Fatalf("expected path components stripped, got %q", ref)
	}
}
