package vpath

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// guidKey is the 32-byte key for BLAKE3 keyed hashing. Domain separation
// keeps identity hashes distinct from any other BLAKE3 use of the same
// bytes. The value is the ASCII domain name, zero-padded to 32 bytes, so it
// stays readable in hex dumps.
var guidKey = [32]byte{
	'a', 's', 's', 'e', 't', 'c', 'a', 'c', 'h', 'e', '.', 'v', 'p', 'a', 't', 'h',
	'.', 'g', 'u', 'i', 'd', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// GUIDSize is the identity length in bytes before hex encoding.
const GUIDSize = 8

// GUID derives the registry identity for an already-normalized path. It is
// deterministic: the same input always yields the same output. The digest is
// truncated to GUIDSize bytes; collisions across distinct normalized paths
// are an accepted residual risk and are not detected.
func GUID(normalized string) string {
	// NewKeyed requires exactly 32 bytes, which guidKey guarantees. The
	// error is only returned for wrong key length, so this cannot fail.
	hasher, err := blake3.NewKeyed(guidKey[:])
	if err != nil {
		panic("vpath: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(normalized))
	sum := hasher.Sum(nil)
	return hex.EncodeToString(sum[:GUIDSize])
}
