package loader

import (
	"bytes"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vfs"
)

// AudioAsset retains encoded audio bytes after a container header check.
// Sample decoding happens in the audio backend at playback time.
type AudioAsset struct {
	data      []byte
	container string
	loaded    bool
}

func (a *AudioAsset) OnLoad(data []byte) bool {
	switch {
	case len(data) >= 12 && bytes.Equal(data[:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		a.container = "wav"
	case len(data) >= 4 && bytes.Equal(data[:4], []byte("OggS")):
		a.container = "ogg"
	default:
		return false
	}
	a.data = data
	a.loaded = true
	return true
}

func (a *AudioAsset) OnUnload() {
	a.data = nil
	a.loaded = false
}

func (a *AudioAsset) IsLoaded() bool { return a.loaded }
func (a *AudioAsset) Type() string   { return "audio" }

// MemoryUsage reports the retained encoded size.
func (a *AudioAsset) MemoryUsage() uint64 { return uint64(len(a.data)) }

// Bytes returns the encoded audio bytes.
func (a *AudioAsset) Bytes() []byte { return a.data }

// Container returns the detected container ("wav", "ogg").
func (a *AudioAsset) Container() string { return a.container }

// AudioLoader handles wav and ogg files.
type AudioLoader struct{}

func NewAudioLoader() *AudioLoader { return &AudioLoader{} }

func (l *AudioLoader) CanLoad(path string) bool {
	return hasExtension(path, l.SupportedExtensions())
}

func (l *AudioLoader) CreateEmpty() assetcache.Asset { return &AudioAsset{} }

func (l *AudioLoader) Load(path string, fs vfs.Provider) assetcache.Asset {
	return loadThrough(l, path, fs)
}

func (l *AudioLoader) SupportedExtensions() []string {
	return []string{"wav", "ogg"}
}
