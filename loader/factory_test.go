package loader

import (
	"testing"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vfs"
)

// stubLoader claims a fixed extension set and records nothing else.
type stubLoader struct {
	name string
	exts []string
}

func (l *stubLoader) CanLoad(path string) bool            { return hasExtension(path, l.exts) }
func (l *stubLoader) CreateEmpty() assetcache.Asset       { return &RawAsset{} }
func (l *stubLoader) SupportedExtensions() []string       { return l.exts }
func (l *stubLoader) Load(path string, fs vfs.Provider) assetcache.Asset {
	return loadThrough(l, path, fs)
}

func TestFactory_FindLoader(t *testing.T) {
	f := NewFactory()
	f.Register(NewImageLoader())
	f.Register(NewMeshLoader())

	if l := f.FindLoader("textures/player.png"); l == nil {
		t.Fatal("expected image loader for .png")
	} else if _, ok := l.(*ImageLoader); !ok {
		t.Fatalf("FindLoader returned %T, want *ImageLoader", l)
	}

	if l := f.FindLoader("meshes/crate.obj"); l == nil {
		t.Fatal("expected mesh loader for .obj")
	} else if _, ok := l.(*MeshLoader); !ok {
		t.Fatalf("FindLoader returned %T, want *MeshLoader", l)
	}

	if l := f.FindLoader("unknown.xyz"); l != nil {
		t.Fatalf("expected nil for unclaimed path, got %T", l)
	}
}

func TestFactory_RegistrationOrderWins(t *testing.T) {
	first := &stubLoader{name: "first", exts: []string{"dat"}}
	second := &stubLoader{name: "second", exts: []string{"dat"}}

	f := NewFactory()
	f.Register(first)
	f.Register(second)

	if f.FindLoader("save.dat") != Loader(first) {
		t.Fatal("first-registered loader must win for overlapping extensions")
	}

	// Reverse order flips the winner.
	f = NewFactory()
	f.Register(second)
	f.Register(first)
	if f.FindLoader("save.dat") != Loader(second) {
		t.Fatal("registration order is the tie-break")
	}
}

func TestFactory_CaseInsensitiveMatch(t *testing.T) {
	f := NewFactory()
	f.Register(NewImageLoader())

	for _, p := range []string{"a.PNG", "a.Png", "b.JPEG", "c.GIF"} {
		if f.FindLoader(p) == nil {
			t.Errorf("FindLoader(%q) = nil, want image loader", p)
		}
	}
}

func TestFactory_IsExtensionSupported(t *testing.T) {
	f := NewFactory()
	f.Register(NewMeshLoader())
	f.Register(NewAudioLoader())

	for _, ext := range []string{"obj", "OBJ", ".obj", "wav", ".WAV", "ogg"} {
		if !f.IsExtensionSupported(ext) {
			t.Errorf("IsExtensionSupported(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{"png", "xyz", ""} {
		if f.IsExtensionSupported(ext) {
			t.Errorf("IsExtensionSupported(%q) = true, want false", ext)
		}
	}
}

func TestFactory_RegisterNil(t *testing.T) {
	f := NewFactory()
	f.Register(nil)
	if f.Len() != 0 {
		t.Fatal("nil loaders must not be registered")
	}
}
