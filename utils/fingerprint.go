package utils

import (
	"hash"
	"hash/fnv"
)

// U64ToBytes encodes u big-endian.
func U64ToBytes(u uint64) []byte {
	return []byte{
		byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
		byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u),
	}
}

// Fingerprint accumulates node fingerprints into a single FNV-64a value.
// Strings are length-prefixed so that ("ab","c") and ("a","bc") differ.
type Fingerprint struct {
	h hash.Hash64
}

// NewFingerprint starts a fingerprint seeded with the node kind tag.
func NewFingerprint(tag string) *Fingerprint {
	f := &Fingerprint{h: fnv.New64a()}
	f.String(tag)
	return f
}

func (f *Fingerprint) String(s string) *Fingerprint {
	_, _ = f.h.Write(U64ToBytes(uint64(len(s))))
	_, _ = f.h.Write([]byte(s))
	return f
}

func (f *Fingerprint) Uint64(u uint64) *Fingerprint {
	_, _ = f.h.Write(U64ToBytes(u))
	return f
}

func (f *Fingerprint) Bool(b bool) *Fingerprint {
	if b {
		_, _ = f.h.Write([]byte{1})
	} else {
		_, _ = f.h.Write([]byte{0})
	}
	return f
}

func (f *Fingerprint) Sum() uint64 {
	return f.h.Sum64()
}
