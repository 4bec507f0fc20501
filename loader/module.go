package loader

import (
	"context"

	"github.com/tetratelabs/wazero"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vfs"
)

// ModuleAsset is a validated WebAssembly script module. OnLoad compiles the
// binary once to verify it and to extract its export surface; the engine
// that executes scripts re-instantiates from the retained bytes.
type ModuleAsset struct {
	data    []byte
	exports []string
	loaded  bool
}

func (a *ModuleAsset) OnLoad(data []byte) bool {
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	defer r.Close(ctx)

	compiled, err := r.CompileModule(ctx, data)
	if err != nil {
		return false
	}
	defer compiled.Close(ctx)

	exports := make([]string, 0, len(compiled.ExportedFunctions()))
	for name := range compiled.ExportedFunctions() {
		exports = append(exports, name)
	}

	a.data = data
	a.exports = exports
	a.loaded = true
	return true
}

func (a *ModuleAsset) OnUnload() {
	a.data = nil
	a.exports = nil
	a.loaded = false
}

func (a *ModuleAsset) IsLoaded() bool { return a.loaded }
func (a *ModuleAsset) Type() string   { return "module" }

// MemoryUsage reports the retained binary size.
func (a *ModuleAsset) MemoryUsage() uint64 { return uint64(len(a.data)) }

// Bytes returns the validated wasm binary.
func (a *ModuleAsset) Bytes() []byte { return a.data }

// Exports lists the module's exported function names.
func (a *ModuleAsset) Exports() []string { return a.exports }

// ModuleLoader handles WebAssembly script modules.
type ModuleLoader struct{}

func NewModuleLoader() *ModuleLoader { return &ModuleLoader{} }

func (l *ModuleLoader) CanLoad(path string) bool {
	return hasExtension(path, l.SupportedExtensions())
}

func (l *ModuleLoader) CreateEmpty() assetcache.Asset { return &ModuleAsset{} }

func (l *ModuleLoader) Load(path string, fs vfs.Provider) assetcache.Asset {
	return loadThrough(l, path, fs)
}

func (l *ModuleLoader) SupportedExtensions() []string {
	return []string{"wasm"}
}
