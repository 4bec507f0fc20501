package loader

import (
	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vfs"
)

// RawAsset holds bytes verbatim for formats the engine consumes untouched
// (shaders, config blobs, level data).
type RawAsset struct {
	data   []byte
	loaded bool
}

func (a *RawAsset) OnLoad(data []byte) bool {
	a.data = data
	a.loaded = true
	return true
}

func (a *RawAsset) OnUnload() {
	a.data = nil
	a.loaded = false
}

func (a *RawAsset) IsLoaded() bool { return a.loaded }
func (a *RawAsset) Type() string   { return "raw" }

// MemoryUsage reports the retained size.
func (a *RawAsset) MemoryUsage() uint64 { return uint64(len(a.data)) }

// Bytes returns the raw content.
func (a *RawAsset) Bytes() []byte { return a.data }

// RawLoader passes file content through untouched for a caller-chosen set
// of extensions.
type RawLoader struct {
	exts []string
}

// NewRawLoader creates a pass-through loader claiming the given extensions
// (without the leading dot).
func NewRawLoader(exts ...string) *RawLoader {
	return &RawLoader{exts: exts}
}

func (l *RawLoader) CanLoad(path string) bool {
	return hasExtension(path, l.exts)
}

func (l *RawLoader) CreateEmpty() assetcache.Asset { return &RawAsset{} }

func (l *RawLoader) Load(path string, fs vfs.Provider) assetcache.Asset {
	return loadThrough(l, path, fs)
}

func (l *RawLoader) SupportedExtensions() []string {
	return append([]string(nil), l.exts...)
}
