// Package assetcache provides a path-addressed, reference-counted cache for
// binary assets (textures, meshes, audio, scripts) loaded through pluggable
// format loaders.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	assetcache/          Root package with the Asset and Blob types
//	├── vpath/           Lexical path normalization and identity derivation
//	├── vfs/             Storage abstraction over go-billy (local disk, in-memory)
//	├── loader/          Per-format loader contract and the ordered loader factory
//	├── registry/        Identity-keyed record table: state, refcounts, memory totals
//	├── manager/         Orchestrator exposing the Acquire/Release/CollectUnused API
//	└── errors/          Structured error types shared across the packages
//
// # Quick Start
//
// Compose a manager from a storage provider and the loaders you need:
//
//	fs := vfs.NewLocal("assets")
//	factory := loader.NewFactory()
//	factory.Register(loader.NewImageLoader())
//	factory.Register(loader.NewMeshLoader())
//
//	mgr := manager.New(fs, factory)
//
//	h, err := mgr.Acquire("textures/player.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer h.Release()
//
//	tex := h.Asset().(*loader.ImageAsset)
//
// # Lifecycle
//
// Every successful Acquire increments the record's reference count; Release
// decrements it. Zero-reference records stay loaded until CollectUnused is
// called; "unused" and "evicted" are deliberately separate states, so a
// scene can drop all its references and still get cache hits on reload.
//
// Failed loads are cached too: acquiring a known-bad path again returns the
// cached failure without touching storage. Evict the path to force a retry.
//
// # Identity
//
// Paths are canonicalized by vpath.Normalize before anything else happens, so
// "./a/../b.png", "b.png" and "a\..\b.png" all resolve to the same record.
// The registry key is a short keyed-BLAKE3 digest of the normalized path;
// collisions across distinct normalized paths are an accepted residual risk
// and are not detected.
//
// # Concurrency
//
// A Manager and its registry are safe for concurrent use. The registry holds
// one exclusive lock across each operation; load latency dominates, so
// per-record locking would buy nothing.
package assetcache
