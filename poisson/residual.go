// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import "github.com/chewxy/math32"

// residual computes the discrete L2 norm of -laplacian(phi) - rho/epsilon
// over interior cells that are not masked (spec section 4.6). Returns 0
// when there are no sampled cells.
func residual(phi, rho []float32, mask *Mask, grid *Grid) float32 {
	dx2 := float32(grid.Dx * grid.Dx)
	dy2 := float32(grid.Dy * grid.Dy)
	eps := float32(grid.Epsilon)
	nx := grid.Nx

	var sumSq float32
	var n int
	for j := 1; j < grid.Ny-1; j++ {
		row := j * nx
		for i := 1; i < nx-1; i++ {
			k := row + i
			if mask.Fixed[k] {
				continue
			}
			lap := (phi[k+1]-2*phi[k]+phi[k-1])/dx2 + (phi[k+nx]-2*phi[k]+phi[k-nx])/dy2
			r := -lap - rho[k]/eps
			sumSq += r * r
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return math32.Sqrt(sumSq / float32(n))
}
