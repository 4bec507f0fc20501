// Package loader defines the per-format decode contract and the ordered
// factory that resolves which loader handles a given path.
//
// A Loader claims paths by extension, produces empty asset instances, and
// decodes raw bytes read through a vfs.Provider. Load returns nil on any
// failure; the cache layers above never see partially initialized assets.
//
// The Factory dispatches by first-match over registration order, so a
// caller that registers a specialized loader before a general one gets the
// specialized behavior for overlapping extensions.
//
// The bundled loaders (image, mesh, audio, module, raw) keep their decoding
// shallow on purpose: the cache core only needs enough decoding to size and
// classify an asset. Engines with real format pipelines register their own
// Loader implementations instead.
package loader
