package loader

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	assetcache "github.com/pixelforge/assetcache"
	"github.com/pixelforge/assetcache/vfs"
)

// ImageAsset holds a decoded image header plus the source bytes. The full
// pixel decode is left to the rendering layer; the cache only needs
// dimensions and a footprint estimate.
type ImageAsset struct {
	data   []byte
	format string
	width  int
	height int
	loaded bool
}

func (a *ImageAsset) OnLoad(data []byte) bool {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return false
	}
	a.data = data
	a.format = format
	a.width = cfg.Width
	a.height = cfg.Height
	a.loaded = true
	return true
}

func (a *ImageAsset) OnUnload() {
	a.data = nil
	a.loaded = false
}

func (a *ImageAsset) IsLoaded() bool { return a.loaded }
func (a *ImageAsset) Type() string   { return "image" }

// MemoryUsage estimates the decoded RGBA footprint.
func (a *ImageAsset) MemoryUsage() uint64 {
	return uint64(a.width) * uint64(a.height) * 4
}

// Bytes returns the encoded source bytes for the rendering layer to decode.
func (a *ImageAsset) Bytes() []byte { return a.data }

// Format returns the detected encoding ("png", "jpeg", "gif").
func (a *ImageAsset) Format() string { return a.format }

// Width returns the pixel width.
func (a *ImageAsset) Width() int { return a.width }

// Height returns the pixel height.
func (a *ImageAsset) Height() int { return a.height }

// ImageLoader handles png, jpg, jpeg and gif files.
type ImageLoader struct{}

func NewImageLoader() *ImageLoader { return &ImageLoader{} }

func (l *ImageLoader) CanLoad(path string) bool {
	return hasExtension(path, l.SupportedExtensions())
}

func (l *ImageLoader) CreateEmpty() assetcache.Asset { return &ImageAsset{} }

func (l *ImageLoader) Load(path string, fs vfs.Provider) assetcache.Asset {
	return loadThrough(l, path, fs)
}

func (l *ImageLoader) SupportedExtensions() []string {
	return []string{"png", "jpg", "jpeg", "gif"}
}
