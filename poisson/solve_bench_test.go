// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import "testing"

func BenchmarkDeposit(b *testing.B) {
	d := DomainBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Epsilon: 1}
	g, _ := NewGrid(d, GridSpec{Nx: 201, Ny: 201})
	charges := []PointCharge{{X: 0.1, Y: 0.2, Q: 1}, {X: -0.3, Y: -0.1, Q: -1}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Deposit(charges, g, 1.0)
	}
}

func BenchmarkSolveSmallGrid(b *testing.B) {
	scene := Scene{
		Domain:  DomainBounds{XMin: -1, XMax: 1, YMin: -1, YMax: 1, Epsilon: 1},
		Charges: []PointCharge{{X: 0.2, Y: -0.1, Q: 1}},
	}
	spec := SolverSpec{MaxIters: 300, Tolerance: 1e-6, Omega: 1.7, ChargeSigmaCells: 1}
	grid := GridSpec{Nx: 65, Ny: 65}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Solve(scene, grid, spec, nil)
	}
}
