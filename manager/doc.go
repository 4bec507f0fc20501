// Package manager composes storage, loaders and the registry into the
// public acquire/release API of the asset cache.
//
// A Manager is an explicitly constructed instance; inject it into the
// systems that need assets instead of reaching for a global. Acquire,
// Release, Evict and CollectUnused are safe for concurrent use: a single
// exclusive lock covers each full critical section.
//
// Handles returned by Acquire release their reference claim idempotently,
// so the usual pattern is a deferred Release right after the error check.
// Releasing every handle frees nothing by itself: records linger, fully
// loaded, until CollectUnused sweeps the zero-reference ones.
//
// Logging goes through the package logger (zap). It is a no-op unless the
// embedding application installs one with SetLogger.
package manager
