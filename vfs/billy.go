package vfs

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vpath"
)

// BillyProvider adapts a billy.Filesystem to the Provider contract.
// osfs gives the production local-disk provider and memfs the in-memory
// provider used by tests.
type BillyProvider struct {
	bfs billy.Filesystem
}

// NewLocal creates a provider rooted at the given local directory.
func NewLocal(root string) *BillyProvider {
	return &BillyProvider{bfs: osfs.New(root)}
}

// NewMemory creates a provider over an empty in-memory filesystem.
func NewMemory() *BillyProvider {
	return &BillyProvider{bfs: memfs.New()}
}

// NewBilly wraps an existing billy.Filesystem.
func NewBilly(bfs billy.Filesystem) *BillyProvider {
	return &BillyProvider{bfs: bfs}
}

// Unwrap returns the underlying billy.Filesystem, so callers can seed an
// in-memory provider or hand the filesystem to other billy-based APIs.
func (p *BillyProvider) Unwrap() billy.Filesystem {
	return p.bfs
}

// Normalize canonicalizes a path lexically.
func (p *BillyProvider) Normalize(path string) string {
	return vpath.Normalize(path)
}

// Exists reports whether the path names an existing regular file.
func (p *BillyProvider) Exists(path string) bool {
	fi, err := p.bfs.Stat(p.Normalize(path))
	return err == nil && !fi.IsDir()
}

// Size returns the file size, or 0 on any failure.
func (p *BillyProvider) Size(path string) uint64 {
	fi, err := p.bfs.Stat(p.Normalize(path))
	if err != nil || fi.IsDir() || fi.Size() < 0 {
		return 0
	}
	return uint64(fi.Size())
}

// ReadAll reads the whole file, returning an empty blob on any failure.
func (p *BillyProvider) ReadAll(path string) assetcache.Blob {
	f, err := p.bfs.Open(p.Normalize(path))
	if err != nil {
		return assetcache.Blob{}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return assetcache.Blob{}
	}
	return assetcache.NewBlob(data)
}
