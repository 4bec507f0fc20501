// Package registry implements the identity-keyed cache table: one record
// per asset identity, tracking lifecycle state, reference count, memory
// usage and the owned asset instance.
//
// # Ownership
//
// The registry is the single owner of every asset it holds. Clients only
// ever see non-owning references plus a claim on the reference count.
// RemoveRef never frees anything: zero-reference records stay Loaded until
// an explicit sweep collects the identities from Unused and unregisters
// them. Unregister is the only operation that releases an asset, and it
// does so unconditionally, whatever the reference count says.
//
// # Aggregate invariant
//
// TotalMemoryUsage always equals the sum of every record's tracked usage.
// Registration, unregistration and usage updates reconcile the total
// incrementally.
//
// # Observers
//
// Subscribers receive registered/loaded/failed/unregistered events, which
// the CLI browser and engine-side audit hooks consume.
package registry
