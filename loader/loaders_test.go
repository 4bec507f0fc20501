package loader

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/go-git/go-billy/v5"

	"github.com/pixelforge/assetcache/vfs"
)

func writeFile(t *testing.T, bfs billy.Filesystem, path string, data []byte) {
	t.Helper()
	f, err := bfs.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if _, err := f.Write(data); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func wavBytes() []byte {
	// Minimal RIFF/WAVE header followed by no samples.
	return []byte("RIFF\x04\x00\x00\x00WAVE")
}

// emptyWasm is the smallest valid core module: magic + version.
var emptyWasm = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func TestImageLoader_Load(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "textures/player.png", pngBytes(t, 4, 2))

	l := NewImageLoader()
	a := l.Load("textures/player.png", p)
	if a == nil {
		t.Fatal("Load returned nil for a valid png")
	}
	img := a.(*ImageAsset)
	if !img.IsLoaded() {
		t.Fatal("asset should be loaded")
	}
	if img.Width() != 4 || img.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 4x2", img.Width(), img.Height())
	}
	if img.Format() != "png" {
		t.Fatalf("format = %q, want png", img.Format())
	}
	if img.MemoryUsage() != 4*2*4 {
		t.Fatalf("MemoryUsage = %d, want %d", img.MemoryUsage(), 4*2*4)
	}
	if img.Type() != "image" {
		t.Fatalf("Type = %q", img.Type())
	}
}

func TestImageLoader_DecodeFailure(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "textures/garbage.png", []byte("not a png"))

	if a := NewImageLoader().Load("textures/garbage.png", p); a != nil {
		t.Fatalf("Load should return nil on decode failure, got %T", a)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	p := vfs.NewMemory()
	if a := NewImageLoader().Load("textures/missing.png", p); a != nil {
		t.Fatal("Load should return nil for a missing file")
	}
}

func TestLoader_UnclaimedPath(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "data/level.bin", []byte("binary"))

	// Load re-checks CanLoad even when called directly.
	if a := NewImageLoader().Load("data/level.bin", p); a != nil {
		t.Fatal("Load should return nil for an unclaimed path")
	}
}

func TestMeshLoader_Load(t *testing.T) {
	p := vfs.NewMemory()
	obj := "# crate\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	writeFile(t, p.Unwrap(), "meshes/crate.obj", []byte(obj))

	a := NewMeshLoader().Load("meshes/crate.obj", p)
	if a == nil {
		t.Fatal("Load returned nil for a valid obj")
	}
	mesh := a.(*MeshAsset)
	if mesh.VertexCount() != 3 || mesh.FaceCount() != 1 {
		t.Fatalf("counts = %d vertices, %d faces; want 3, 1", mesh.VertexCount(), mesh.FaceCount())
	}
}

func TestMeshLoader_NoVertices(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "meshes/empty.obj", []byte("# nothing here\n"))

	if a := NewMeshLoader().Load("meshes/empty.obj", p); a != nil {
		t.Fatal("Load should reject an obj with no vertices")
	}
}

func TestAudioLoader_Load(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "audio/jump.wav", wavBytes())
	writeFile(t, p.Unwrap(), "audio/theme.ogg", []byte("OggS rest-of-stream"))
	writeFile(t, p.Unwrap(), "audio/fake.wav", []byte("MP3?"))

	l := NewAudioLoader()

	a := l.Load("audio/jump.wav", p)
	if a == nil {
		t.Fatal("Load returned nil for a valid wav")
	}
	if got := a.(*AudioAsset).Container(); got != "wav" {
		t.Fatalf("container = %q, want wav", got)
	}

	a = l.Load("audio/theme.ogg", p)
	if a == nil {
		t.Fatal("Load returned nil for a valid ogg")
	}
	if got := a.(*AudioAsset).Container(); got != "ogg" {
		t.Fatalf("container = %q, want ogg", got)
	}

	if l.Load("audio/fake.wav", p) != nil {
		t.Fatal("Load should reject a wav without a RIFF/WAVE header")
	}
}

func TestModuleLoader_Load(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "scripts/ai.wasm", emptyWasm)
	writeFile(t, p.Unwrap(), "scripts/broken.wasm", []byte("\x00asm garbage"))

	l := NewModuleLoader()

	a := l.Load("scripts/ai.wasm", p)
	if a == nil {
		t.Fatal("Load returned nil for a valid wasm module")
	}
	if !a.IsLoaded() || a.Type() != "module" {
		t.Fatalf("unexpected asset state: loaded=%v type=%q", a.IsLoaded(), a.Type())
	}

	if l.Load("scripts/broken.wasm", p) != nil {
		t.Fatal("Load should reject an invalid wasm binary")
	}
}

func TestRawLoader_Load(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "shaders/basic.glsl", []byte("void main() {}"))

	l := NewRawLoader("glsl", "hlsl")
	a := l.Load("shaders/basic.glsl", p)
	if a == nil {
		t.Fatal("Load returned nil")
	}
	raw := a.(*RawAsset)
	if string(raw.Bytes()) != "void main() {}" {
		t.Fatalf("Bytes = %q", raw.Bytes())
	}
	if raw.MemoryUsage() != uint64(len("void main() {}")) {
		t.Fatalf("MemoryUsage = %d", raw.MemoryUsage())
	}

	if l.Load("shaders/basic.wgsl", p) != nil {
		t.Fatal("RawLoader should only claim its configured extensions")
	}
}

func TestAssetUnload(t *testing.T) {
	p := vfs.NewMemory()
	writeFile(t, p.Unwrap(), "textures/player.png", pngBytes(t, 2, 2))

	a := NewImageLoader().Load("textures/player.png", p)
	if a == nil {
		t.Fatal("Load failed")
	}
	a.OnUnload()
	if a.IsLoaded() {
		t.Fatal("asset should report unloaded after OnUnload")
	}
	if a.(*ImageAsset).Bytes() != nil {
		t.Fatal("OnUnload should drop the retained bytes")
	}
}
