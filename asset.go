package assetcache

// Asset is the decoded form of a cached resource. Implementations live in
// loader plugins; the cache core never inspects the bytes itself.
type Asset interface {
	// OnLoad decodes the raw bytes into the asset. It returns false if the
	// bytes cannot be decoded; the asset must then remain unloaded.
	OnLoad(data []byte) bool

	// OnUnload releases everything OnLoad allocated. Called exactly once,
	// when the owning registry record is unregistered.
	OnUnload()

	// IsLoaded reports whether OnLoad has succeeded.
	IsLoaded() bool

	// Type returns a short format tag such as "image" or "mesh".
	Type() string
}

// Sizer is optionally implemented by assets that can estimate their
// decoded memory footprint. Assets without it are tracked at the size
// of their source bytes.
type Sizer interface {
	MemoryUsage() uint64
}

// Blob is an immutable byte sequence read from storage. The caller that
// requested it is the sole owner; blobs are never shared.
type Blob struct {
	data []byte
}

// NewBlob wraps data in a Blob. The caller must not mutate data afterwards.
func NewBlob(data []byte) Blob {
	return Blob{data: data}
}

// Bytes returns the underlying bytes. Empty blobs return nil.
func (b Blob) Bytes() []byte {
	return b.data
}

// Len returns the byte length.
func (b Blob) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the blob holds no bytes. Storage failures are
// signaled through empty blobs, so callers check this instead of an error.
func (b Blob) IsEmpty() bool {
	return len(b.data) == 0
}
