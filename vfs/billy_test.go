package vfs

import (
	"bytes"
	"testing"

	"github.com/go-git/go-billy/v5"
)

func writeFile(t *testing.T, bfs billy.Filesystem, path string, data []byte) {
	t.Helper()
	f, err := bfs.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

func TestBillyProvider_ReadAll(t *testing.T) {
	p := NewMemory()
	writeFile(t, p.Unwrap(), "textures/player.png", []byte("pixels"))

	blob := p.ReadAll("textures/player.png")
	if blob.IsEmpty() {
		t.Fatal("expected non-empty blob")
	}
	if !bytes.Equal(blob.Bytes(), []byte("pixels")) {
		t.Fatalf("blob = %q, want %q", blob.Bytes(), "pixels")
	}
	if blob.Len() != 6 {
		t.Fatalf("Len = %d, want 6", blob.Len())
	}
}

func TestBillyProvider_ReadAllNormalizesPath(t *testing.T) {
	p := NewMemory()
	writeFile(t, p.Unwrap(), "textures/player.png", []byte("pixels"))

	// Every spelling of the same path reads the same file.
	spellings := []string{
		"./textures/player.png",
		"textures/./player.png",
		"textures/unused/../player.png",
		`textures\player.png`,
	}
	for _, s := range spellings {
		if p.ReadAll(s).IsEmpty() {
			t.Errorf("ReadAll(%q) unexpectedly empty", s)
		}
	}
}

func TestBillyProvider_MissingFile(t *testing.T) {
	p := NewMemory()

	if p.Exists("nope.bin") {
		t.Error("Exists should be false for missing file")
	}
	if got := p.Size("nope.bin"); got != 0 {
		t.Errorf("Size = %d, want 0", got)
	}
	if !p.ReadAll("nope.bin").IsEmpty() {
		t.Error("ReadAll should return an empty blob for missing file")
	}
}

func TestBillyProvider_ExistsAndSize(t *testing.T) {
	p := NewMemory()
	writeFile(t, p.Unwrap(), "meshes/crate.obj", []byte("v 0 0 0\n"))

	if !p.Exists("meshes/crate.obj") {
		t.Fatal("Exists should be true")
	}
	if got := p.Size("meshes/crate.obj"); got != 8 {
		t.Fatalf("Size = %d, want 8", got)
	}
}

func TestBillyProvider_DirectoryIsNotAFile(t *testing.T) {
	p := NewMemory()
	writeFile(t, p.Unwrap(), "textures/player.png", []byte("pixels"))

	if p.Exists("textures") {
		t.Error("Exists should be false for a directory")
	}
	if got := p.Size("textures"); got != 0 {
		t.Errorf("Size = %d for a directory, want 0", got)
	}
}
