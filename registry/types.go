package registry

import (
	assetcache "github.com/pixelforge/assetcache"
)

// State tracks where a record is in its load lifecycle.
// Unloaded -> Loading -> {Loaded, Failed}. Loaded and Failed are terminal
// until the record is explicitly unregistered.
type State uint8

const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// RefSentinel is returned by AddRef and RemoveRef for unknown identities.
const RefSentinel = -1

// Snapshot is a point-in-time copy of a record's bookkeeping. It never
// carries the owned asset instance; the registry stays the single owner.
// Err holds the cached failure cause for Failed records.
type Snapshot struct {
	GUID        string
	Path        string
	State       State
	Refs        int
	MemoryUsage uint64
	Err         error
}

// Event types for record lifecycle notifications.
type EventType uint8

const (
	EventRegistered EventType = iota
	EventLoaded
	EventFailed
	EventUnregistered
)

// Event describes a record lifecycle transition.
type Event struct {
	Type  EventType
	GUID  string
	Path  string
	State State
}

// Observer receives notifications about record lifecycle events.
type Observer interface {
	OnRecordEvent(Event)
}

// record is the registry's unit of bookkeeping per identity.
type record struct {
	guid   string
	path   string
	state  State
	refs   int
	memory uint64
	asset  assetcache.Asset
	err    error
}

func (rec *record) snapshot() Snapshot {
	return Snapshot{
		GUID:        rec.guid,
		Path:        rec.path,
		State:       rec.state,
		Refs:        rec.refs,
		MemoryUsage: rec.memory,
		Err:         rec.err,
	}
}
