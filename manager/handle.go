package manager

import (
	"sync"

	assetcache "github.com/pixelforge/assetcache"
)

// Handle is a scoped claim on a cached asset. It carries a non-owning view
// of the asset plus one unit of the record's reference count; the registry
// keeps ownership.
//
// Release is idempotent, so a deferred release after an explicit one cannot
// drive the count down twice:
//
//	h, err := mgr.Acquire(path)
//	if err != nil {
//	    return err
//	}
//	defer h.Release()
type Handle struct {
	mgr   *Manager
	guid  string
	path  string
	asset assetcache.Asset
	once  sync.Once
}

// Asset returns the decoded asset. The registry owns it; callers must not
// retain it past Release.
func (h *Handle) Asset() assetcache.Asset {
	return h.asset
}

// Path returns the normalized path the handle was acquired under.
func (h *Handle) Path() string {
	return h.path
}

// GUID returns the registry identity.
func (h *Handle) GUID() string {
	return h.guid
}

// Release returns this handle's claim on the reference count. Only the
// first call has an effect. It never evicts: the record stays cached until
// the manager's CollectUnused sweep.
func (h *Handle) Release() {
	h.once.Do(func() {
		h.mgr.releaseGUID(h.guid)
	})
}
