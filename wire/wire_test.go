// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	phi := []float32{1.5, -2.25, 0, 3.125, -0.0001}

	var buf bytes.Buffer
	require.NoError(t, EncodePhi(&buf, phi))
	assert.Equal(t, len(phi)*4, buf.Len())

	got, err := DecodePhi(&buf, len(phi))
	require.NoError(t, err)
	assert.Equal(t, phi, got)
}

func TestFingerprint_StableAndSensitive(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2, 3}
	c := []float32{1, 2, 4}

	assert.Equal(t, Fingerprint(a), Fingerprint(b))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))
	assert.Len(t, Fingerprint(a), 8)
}

func TestVerify(t *testing.T) {
	phi := []float32{0.1, 0.2, 0.3}
	fp := Fingerprint(phi)
	assert.True(t, Verify(phi, fp))
	assert.False(t, Verify(phi, "deadbeef"))
}
