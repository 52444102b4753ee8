// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

// sweepSOR performs one lexicographic (row-major) Gauss-Seidel sweep with
// over-relaxation over the interior of phi, honouring mask. This couples
// updates within a single pass and is the reference semantics (spec section
// 4.4); a parallel implementation choosing red-black ordering must document
// the change (see DESIGN.md, "Sweep order").
func sweepSOR(phi, rho []float32, mask *Mask, grid *Grid, omega float32) {
	dx2 := float32(grid.Dx * grid.Dx)
	dy2 := float32(grid.Dy * grid.Dy)
	d := 2 * (1/dx2 + 1/dy2)
	eps := float32(grid.Epsilon)
	nx := grid.Nx

	for j := 1; j < grid.Ny-1; j++ {
		row := j * nx
		for i := 1; i < nx-1; i++ {
			k := row + i
			if mask.Fixed[k] {
				continue
			}
			phiE := phi[k+1]
			phiW := phi[k-1]
			phiN := phi[k+nx]
			phiS := phi[k-nx]
			star := ((phiE+phiW)/dx2 + (phiN+phiS)/dy2 + rho[k]/eps) / d
			phi[k] += omega * (star - phi[k])
		}
	}
}
