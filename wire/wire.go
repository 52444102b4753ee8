// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wire serialises a solved potential field to the raw binary layout
// consumed by the renderer collaborator, and fingerprints it for the
// project-file reproducibility check (spec section 6).
package wire

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"math"

	"github.com/cpmech/gosl/chk"
)

// EncodePhi writes phi as contiguous little-endian float32, no header, to
// w. This is the exact contract consumed by the renderer collaborator.
func EncodePhi(w io.Writer, phi []float32) error {
	buf := make([]byte, 4*len(phi))
	for i, v := range phi {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	_, err := w.Write(buf)
	if err != nil {
		return chk.Err("wire: failed to write phi buffer: %v", err)
	}
	return nil
}

// DecodePhi reads a contiguous little-endian float32 buffer of exactly n
// elements from r.
func DecodePhi(r io.Reader, n int) ([]float32, error) {
	buf := make([]byte, 4*n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, chk.Err("wire: failed to read phi buffer: %v", err)
	}
	phi := make([]float32, n)
	for i := range phi {
		phi[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:]))
	}
	return phi, nil
}

// Fingerprint computes an 8-hex-digit FNV-1a fingerprint of phi for
// reproducibility checks (spec section 6, project file collaborator). The
// hash covers phi only, iterated as little-endian float32 bytes prefixed by
// the 4-byte little-endian length; it never covers grid or solver metadata.
func Fingerprint(phi []float32) string {
	h := fnv.New32a()
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(phi)))
	h.Write(lenBuf[:])
	var buf [4]byte
	for _, v := range phi {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		h.Write(buf[:])
	}
	return hex8(h.Sum32())
}

// Verify reports whether phi's fingerprint matches want, the reproducibility
// check named as the whole point of the project-file collaborator's
// fingerprint field (spec section 6; see SPEC_FULL.md section 12).
func Verify(phi []float32, want string) bool {
	return Fingerprint(phi) == want
}

func hex8(v uint32) string {
	const digits = "0123456789abcdef"
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = digits[v&0xf]
		v >>= 4
	}
	return string(b)
}
