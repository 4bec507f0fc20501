// Package vpath implements lexical path canonicalization and identity
// derivation for the asset cache.
//
// Normalize is a pure, total function: it never fails and never touches
// storage. GUID hashes a normalized path into the short identity string the
// registry keys on, so two spellings of the same path always resolve to the
// same cache record:
//
//	vpath.GUID(vpath.Normalize("./a/../b.png")) == vpath.GUID(vpath.Normalize("b.png"))
package vpath
