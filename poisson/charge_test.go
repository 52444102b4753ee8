// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeposit_Conserves(t *testing.T) {
	d := DomainBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Epsilon: 1}
	g, err := NewGrid(d, GridSpec{Nx: 101, Ny: 101})
	require.NoError(t, err)

	charges := []PointCharge{{X: 0.1, Y: -0.2, Q: 1.5}, {X: -0.4, Y: 0.3, Q: -0.7}}
	rho := Deposit(charges, g, 1.0)

	var sum float64
	for _, v := range rho {
		sum += float64(v)
	}
	sum *= g.Dx * g.Dy

	assert.InDelta(t, 0.8, sum, 1e-4)
}

func TestDeposit_OutOfDomainSkipped(t *testing.T) {
	d := DomainBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Epsilon: 1}
	g, err := NewGrid(d, GridSpec{Nx: 64, Ny: 64})
	require.NoError(t, err)

	charges := []PointCharge{{X: 100, Y: 100, Q: 1}}
	rho := Deposit(charges, g, 1.0)
	for _, v := range rho {
		assert.Zero(t, v)
	}
}

func TestDeposit_NonFiniteSkipped(t *testing.T) {
	d := DomainBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Epsilon: 1}
	g, err := NewGrid(d, GridSpec{Nx: 64, Ny: 64})
	require.NoError(t, err)

	charges := []PointCharge{{X: math.NaN(), Y: 0, Q: 1}, {X: 0, Y: 0, Q: math.Inf(1)}}
	rho := Deposit(charges, g, 1.0)
	for _, v := range rho {
		assert.Zero(t, v)
	}
}

func TestDeposit_CornerChargeClippedButConserves(t *testing.T) {
	d := DomainBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Epsilon: 1}
	g, err := NewGrid(d, GridSpec{Nx: 64, Ny: 64})
	require.NoError(t, err)

	charges := []PointCharge{{X: g.XMin, Y: g.YMin, Q: 2.0}}
	rho := Deposit(charges, g, 1.0)

	var sum float64
	for _, v := range rho {
		sum += float64(v)
	}
	sum *= g.Dx * g.Dy
	assert.InDelta(t, 2.0, sum, 1e-3)
}
