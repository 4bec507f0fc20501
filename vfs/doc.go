// Package vfs provides the storage abstraction the asset cache reads from.
//
// The Provider interface is deliberately narrow: existence, size, whole-file
// read, and path normalization. Nothing else in the cache core touches the
// OS file API. Operations never return errors; a missing or unreadable file
// yields an empty blob, a zero size, or false.
//
// BillyProvider is the single implementation, layered over go-billy:
// NewLocal for disk-backed storage, NewMemory for tests.
package vfs
