package vfs

import (
	assetcache "github.com/pixelforge/assetcache"
)

// Provider abstracts the storage an asset cache loads from. All operations
// are synchronous and none return errors: failure is signaled through empty
// or zero sentinel results, so callers check emptiness instead of catching.
type Provider interface {
	// Exists reports whether the path names a readable file.
	Exists(path string) bool

	// Size returns the file size in bytes, or 0 if the path is missing,
	// is a directory, or cannot be inspected.
	Size(path string) uint64

	// ReadAll reads the whole file. The blob is empty when the path is
	// missing or unreadable; the caller owns the returned bytes.
	ReadAll(path string) assetcache.Blob

	// Normalize canonicalizes a path. Two spellings that normalize to the
	// same string address the same file.
	Normalize(path string) string
}
