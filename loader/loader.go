package loader

import (
	"strings"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vfs"
)

// Loader is the per-format decode contract. Implementations decide whether
// they handle a path, produce empty asset instances, and decode raw bytes
// into loaded instances.
type Loader interface {
	// CanLoad reports whether this loader handles the path. Matching is by
	// extension and case-insensitive.
	CanLoad(path string) bool

	// CreateEmpty returns a fresh unloaded asset instance.
	CreateEmpty() assetcache.Asset

	// Load produces a fully loaded asset, or nil on any failure: unclaimed
	// path, missing file, empty read, or rejected decode. It never returns
	// a partially initialized asset.
	Load(path string, fs vfs.Provider) assetcache.Asset

	// SupportedExtensions lists the extensions this loader claims, without
	// the leading dot.
	SupportedExtensions() []string
}

// Factory is an ordered collection of registered loaders. Registration
// order is the tie-break when several loaders claim the same extension:
// first registered wins. Extensions are deliberately allowed to overlap.
type Factory struct {
	loaders []Loader
}

// NewFactory creates an empty loader factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Register appends a loader. Callers control dispatch priority through
// registration order.
func (f *Factory) Register(l Loader) {
	if l == nil {
		return
	}
	f.loaders = append(f.loaders, l)
}

// FindLoader returns the first registered loader whose CanLoad accepts the
// path, or nil if none claims it.
func (f *Factory) FindLoader(path string) Loader {
	for _, l := range f.loaders {
		if l.CanLoad(path) {
			return l
		}
	}
	return nil
}

// IsExtensionSupported reports whether any registered loader claims the
// extension, case-insensitively and without regard to registration order.
// Used for capability queries, not dispatch.
func (f *Factory) IsExtensionSupported(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	for _, l := range f.loaders {
		for _, e := range l.SupportedExtensions() {
			if strings.ToLower(e) == ext {
				return true
			}
		}
	}
	return false
}

// Len returns the number of registered loaders.
func (f *Factory) Len() int {
	return len(f.loaders)
}

// hasExtension reports whether path ends in one of the extensions,
// case-insensitively.
func hasExtension(path string, exts []string) bool {
	lower := strings.ToLower(path)
	for _, ext := range exts {
		if strings.HasSuffix(lower, "."+strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// loadThrough runs the shared load discipline: re-check the claim and file
// existence, read, decode. Any failure yields nil, never a partial asset.
func loadThrough(l Loader, path string, fs vfs.Provider) assetcache.Asset {
	if !l.CanLoad(path) {
		return nil
	}
	if !fs.Exists(path) {
		return nil
	}
	blob := fs.ReadAll(path)
	if blob.IsEmpty() {
		return nil
	}
	a := l.CreateEmpty()
	if !a.OnLoad(blob.Bytes()) {
		return nil
	}
	return a
}
