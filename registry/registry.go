package registry

import (
	"sync"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vpath"
)

// Registry is the identity-keyed record table at the heart of the cache.
// It owns every loaded asset instance and tracks state, reference counts
// and the aggregate memory total; it holds no decoding logic.
//
// One exclusive lock covers each operation. Record sets are small and load
// latency dominates, so finer locking would buy nothing.
type Registry struct {
	mu        sync.Mutex
	records   map[string]*record
	total     uint64
	observers []Observer
	obsMu     sync.RWMutex
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		records: make(map[string]*record),
	}
}

// GenerateGUID derives the identity for an already-normalized path.
func (r *Registry) GenerateGUID(normalized string) string {
	return vpath.GUID(normalized)
}

// Register inserts a record for the identity, or fetches the existing one.
// It is idempotent: re-registering never changes an existing record's state
// or reference count. New records start Unloaded with zero references.
func (r *Registry) Register(guid, path string) Snapshot {
	r.mu.Lock()
	rec, exists := r.records[guid]
	if !exists {
		rec = &record{guid: guid, path: path, state: StateUnloaded}
		r.records[guid] = rec
	}
	snap := rec.snapshot()
	r.mu.Unlock()

	if !exists {
		r.notify(Event{Type: EventRegistered, GUID: guid, Path: path, State: StateUnloaded})
	}
	return snap
}

// Contains reports whether the identity is registered.
func (r *Registry) Contains(guid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.records[guid]
	return ok
}

// Lookup returns a snapshot of the record for the identity.
func (r *Registry) Lookup(guid string) (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[guid]
	if !ok {
		return Snapshot{}, false
	}
	return rec.snapshot(), true
}

// Asset returns the owned asset instance for a Loaded record. Callers get
// a non-owning reference; the registry remains the single owner.
func (r *Registry) Asset(guid string) (assetcache.Asset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[guid]
	if !ok || rec.state != StateLoaded {
		return nil, false
	}
	return rec.asset, true
}

// AddRef increments the record's reference count and returns the new count,
// or RefSentinel if the identity is unknown.
func (r *Registry) AddRef(guid string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[guid]
	if !ok {
		return RefSentinel
	}
	rec.refs++
	return rec.refs
}

// RemoveRef decrements the record's reference count, floored at zero, and
// returns the new count, or RefSentinel if the identity is unknown. It never
// deletes the record or the asset; eviction is a separate, explicit act.
func (r *Registry) RemoveRef(guid string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[guid]
	if !ok {
		return RefSentinel
	}
	if rec.refs > 0 {
		rec.refs--
	}
	return rec.refs
}

// BeginLoading moves an Unloaded record to Loading. It is held only for the
// duration of the synchronous load call.
func (r *Registry) BeginLoading(guid string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[guid]
	if !ok || rec.state != StateUnloaded {
		return false
	}
	rec.state = StateLoading
	return true
}

// MarkLoaded attaches the decoded asset, records its memory usage and moves
// the record to Loaded. The registry takes sole ownership of the asset.
func (r *Registry) MarkLoaded(guid string, asset assetcache.Asset, memory uint64) bool {
	r.mu.Lock()
	rec, ok := r.records[guid]
	if !ok {
		r.mu.Unlock()
		return false
	}
	rec.state = StateLoaded
	rec.asset = asset
	rec.err = nil
	r.total -= rec.memory
	r.total += memory
	rec.memory = memory
	path := rec.path
	r.mu.Unlock()

	r.notify(Event{Type: EventLoaded, GUID: guid, Path: path, State: StateLoaded})
	return true
}

// MarkFailed moves the record to Failed, caching the cause, so a known-bad
// path does not repeatedly hit storage and decoding.
func (r *Registry) MarkFailed(guid string, cause error) bool {
	r.mu.Lock()
	rec, ok := r.records[guid]
	if !ok {
		r.mu.Unlock()
		return false
	}
	rec.state = StateFailed
	rec.asset = nil
	rec.err = cause
	r.total -= rec.memory
	rec.memory = 0
	path := rec.path
	r.mu.Unlock()

	r.notify(Event{Type: EventFailed, GUID: guid, Path: path, State: StateFailed})
	return true
}

// UpdateMemoryUsage replaces the tracked usage for the identity and
// reconciles the aggregate total incrementally.
func (r *Registry) UpdateMemoryUsage(guid string, usage uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[guid]
	if !ok {
		return false
	}
	r.total -= rec.memory
	r.total += usage
	rec.memory = usage
	return true
}

// Unregister removes the record unconditionally, regardless of reference
// count, and releases the owned asset. This is the only operation that
// invokes OnUnload.
func (r *Registry) Unregister(guid string) bool {
	r.mu.Lock()
	rec, ok := r.records[guid]
	if !ok {
		r.mu.Unlock()
		return false
	}
	delete(r.records, guid)
	r.total -= rec.memory
	asset := rec.asset
	path := rec.path
	state := rec.state
	r.mu.Unlock()

	if asset != nil {
		asset.OnUnload()
	}
	r.notify(Event{Type: EventUnregistered, GUID: guid, Path: path, State: state})
	return true
}

// Unused returns the identities of all Loaded records with zero references.
// It is advisory: the caller decides whether and when to unregister them.
func (r *Registry) Unused() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var unused []string
	for guid, rec := range r.records {
		if rec.refs == 0 && rec.state == StateLoaded {
			unused = append(unused, guid)
		}
	}
	return unused
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// TotalMemoryUsage returns the aggregate of every record's tracked usage.
// The total is maintained incrementally, never recomputed from scratch.
func (r *Registry) TotalMemoryUsage() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total
}

// Each calls fn with a snapshot of every record until fn returns false.
// Iteration order is unspecified.
func (r *Registry) Each(fn func(Snapshot) bool) {
	r.mu.Lock()
	snaps := make([]Snapshot, 0, len(r.records))
	for _, rec := range r.records {
		snaps = append(snaps, rec.snapshot())
	}
	r.mu.Unlock()

	for _, s := range snaps {
		if !fn(s) {
			return
		}
	}
}

// Clear unregisters every record, releasing all owned assets.
func (r *Registry) Clear() {
	r.mu.Lock()
	guids := make([]string, 0, len(r.records))
	for guid := range r.records {
		guids = append(guids, guid)
	}
	r.mu.Unlock()

	for _, guid := range guids {
		r.Unregister(guid)
	}
}

// Subscribe adds an observer for record lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Registry) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnRecordEvent(e)
	}
}
