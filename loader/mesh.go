package loader

import (
	"strings"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vfs"
)

// MeshAsset holds a line-scanned OBJ mesh: raw source plus vertex and face
// counts. Triangulation and attribute layout belong to the geometry
// pipeline, not the cache.
type MeshAsset struct {
	data     []byte
	vertices int
	faces    int
	loaded   bool
}

func (a *MeshAsset) OnLoad(data []byte) bool {
	vertices, faces := 0, 0
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "v "):
			vertices++
		case strings.HasPrefix(line, "f "):
			faces++
		}
	}
	if vertices == 0 {
		return false
	}
	a.data = data
	a.vertices = vertices
	a.faces = faces
	a.loaded = true
	return true
}

func (a *MeshAsset) OnUnload() {
	a.data = nil
	a.loaded = false
}

func (a *MeshAsset) IsLoaded() bool { return a.loaded }
func (a *MeshAsset) Type() string   { return "mesh" }

// MemoryUsage reports the retained source size.
func (a *MeshAsset) MemoryUsage() uint64 { return uint64(len(a.data)) }

// Bytes returns the raw OBJ source.
func (a *MeshAsset) Bytes() []byte { return a.data }

// VertexCount returns the number of "v" records.
func (a *MeshAsset) VertexCount() int { return a.vertices }

// FaceCount returns the number of "f" records.
func (a *MeshAsset) FaceCount() int { return a.faces }

// MeshLoader handles Wavefront OBJ files.
type MeshLoader struct{}

func NewMeshLoader() *MeshLoader { return &MeshLoader{} }

func (l *MeshLoader) CanLoad(path string) bool {
	return hasExtension(path, l.SupportedExtensions())
}

func (l *MeshLoader) CreateEmpty() assetcache.Asset { return &MeshAsset{} }

func (l *MeshLoader) Load(path string, fs vfs.Provider) assetcache.Asset {
	return loadThrough(l, path, fs)
}

func (l *MeshLoader) SupportedExtensions() []string {
	return []string{"obj"}
}
