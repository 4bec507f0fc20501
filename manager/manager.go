package manager

import (
	"sync"

	"go.uber.org/zap"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/errors"
	"github.com/pixelforge/assetcache/loader"
	"github.com/pixelforge/assetcache/registry"
	"github.com/pixelforge/assetcache/vfs"
)

// Manager composes a storage provider, a loader factory and a registry into
// the acquire/release API clients use. Construct one explicitly and pass it
// where it is needed; nothing in the cache depends on a process-wide
// singleton.
type Manager struct {
	mu       sync.Mutex
	fs       vfs.Provider
	loaders  *loader.Factory
	registry *registry.Registry
}

// New creates a manager over the given storage and loaders.
func New(fs vfs.Provider, loaders *loader.Factory) *Manager {
	return &Manager{
		fs:       fs,
		loaders:  loaders,
		registry: registry.New(),
	}
}

// Registry exposes the underlying record table for inspection and
// observer subscriptions.
func (m *Manager) Registry() *registry.Registry {
	return m.registry
}

// Acquire resolves the path to a cache record, loading it on first use, and
// returns a handle claiming one reference. On a hit the existing asset
// instance is returned; no decode runs twice for one identity.
//
// Failures are cached: acquiring a known-bad path again returns the stored
// error without touching storage. Evict the path to force a retry.
//
// One lock covers the whole acquire critical section; the record set is
// small and load latency dominates.
func (m *Manager) Acquire(path string) (*Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	normalized := m.fs.Normalize(path)
	guid := m.registry.GenerateGUID(normalized)

	if snap, ok := m.registry.Lookup(guid); ok {
		switch snap.State {
		case registry.StateLoaded:
			m.registry.AddRef(guid)
			asset, _ := m.registry.Asset(guid)
			Logger().Debug("cache hit",
				zap.String("path", normalized),
				zap.String("guid", guid))
			return &Handle{mgr: m, guid: guid, path: normalized, asset: asset}, nil
		case registry.StateFailed:
			Logger().Debug("cached failure",
				zap.String("path", normalized),
				zap.String("guid", guid))
			if snap.Err != nil {
				return nil, snap.Err
			}
			return nil, errors.NotFound(normalized)
		}
	}

	m.registry.Register(guid, normalized)

	ld := m.loaders.FindLoader(normalized)
	if ld == nil {
		return nil, m.fail(guid, normalized, errors.NoLoader(normalized))
	}

	m.registry.BeginLoading(guid)

	if !m.fs.Exists(normalized) {
		return nil, m.fail(guid, normalized, errors.NotFound(normalized))
	}

	asset := ld.Load(normalized, m.fs)
	if asset == nil {
		// The loader signals failure with nil; classify it for the
		// caller. An empty read is an I/O failure, anything else a
		// rejected decode.
		var cause *errors.Error
		if m.fs.Size(normalized) == 0 {
			cause = errors.IOFailure(normalized)
		} else {
			cause = errors.DecodeFailed(normalized, ld.CreateEmpty().Type())
		}
		return nil, m.fail(guid, normalized, cause)
	}

	memory := estimateMemory(asset, m.fs.Size(normalized))
	m.registry.MarkLoaded(guid, asset, memory)
	m.registry.AddRef(guid)

	Logger().Debug("loaded",
		zap.String("path", normalized),
		zap.String("guid", guid),
		zap.String("type", asset.Type()),
		zap.Uint64("memory", memory))

	return &Handle{mgr: m, guid: guid, path: normalized, asset: asset}, nil
}

// Release drops one reference from the record addressed by path and returns
// the new count, or registry.RefSentinel if the path was never acquired.
// It never evicts.
func (m *Manager) Release(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	guid := m.registry.GenerateGUID(m.fs.Normalize(path))
	return m.registry.RemoveRef(guid)
}

// releaseGUID backs Handle.Release.
func (m *Manager) releaseGUID(guid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registry.RemoveRef(guid)
}

// CollectUnused unregisters every zero-reference Loaded record and returns
// how many were evicted. This is the only path through which asset memory
// is actually freed.
func (m *Manager) CollectUnused() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	unused := m.registry.Unused()
	for _, guid := range unused {
		m.registry.Unregister(guid)
	}
	if len(unused) > 0 {
		Logger().Debug("collected unused records", zap.Int("count", len(unused)))
	}
	return len(unused)
}

// Evict unconditionally unregisters the record addressed by path, whatever
// its state or reference count. Use it to force a retry of a cached failure
// or to drop a record that outstanding handles no longer need.
func (m *Manager) Evict(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	normalized := m.fs.Normalize(path)
	guid := m.registry.GenerateGUID(normalized)
	ok := m.registry.Unregister(guid)
	if ok {
		Logger().Debug("evicted", zap.String("path", normalized), zap.String("guid", guid))
	}
	return ok
}

// TotalMemoryUsage returns the registry's aggregate tracked usage.
func (m *Manager) TotalMemoryUsage() uint64 {
	return m.registry.TotalMemoryUsage()
}

// ResourceCount returns the number of registered records, including Failed
// and zero-reference ones.
func (m *Manager) ResourceCount() int {
	return m.registry.Len()
}

// fail caches the error on the record and logs it.
func (m *Manager) fail(guid, path string, cause *errors.Error) error {
	m.registry.MarkFailed(guid, cause)
	Logger().Debug("load failed",
		zap.String("path", path),
		zap.String("guid", guid),
		zap.Error(cause))
	return cause
}

// estimateMemory prefers the asset's own footprint estimate and falls back
// to the source file size.
func estimateMemory(asset assetcache.Asset, fileSize uint64) uint64 {
	if s, ok := asset.(assetcache.Sizer); ok {
		return s.MemoryUsage()
	}
	return fileSize
}
