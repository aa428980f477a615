package project

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"modwrap/internal/version"
	"modwrap/internal/wrapper"
)

// Digest is a fixed 256-bit hash.
type Digest [32]byte

// String returns the hex form of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// HashBytes hashes data.
func HashBytes(data []byte) Digest {
	return sha256.Sum256(data)
}

// WrapperKey hashes everything that influences a rendered intro and outro,
// including the modwrap version that rendered them. globals must be the
// resolved global expressions, one per import, or nil for formats that do
// not reference globals.
func WrapperKey(format wrapper.Format, opts wrapper.Options, export string, imports []wrapper.Import, globals []string) Digest {
	var sb strings.Builder
	field := func(s string) {
		sb.WriteString(s)
		sb.WriteByte(0)
	}
	field(version.Version)
	field(format.String())
	field(opts.Name)
	field(opts.AMD.ID)
	field(export)
	for i, imp := range imports {
		field(imp.Name)
		field(imp.Source)
		if i < len(globals) {
			field(globals[i])
		}
	}
	return HashBytes([]byte(sb.String()))
}
