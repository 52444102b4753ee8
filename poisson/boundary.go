// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

// applyNeumann enforces homogeneous Neumann conditions on the outer ring of
// phi by copying the adjacent interior value (spec section 4.5). Corner
// cells inherit the top/bottom row assignment because the row pass runs
// after the column pass.
func applyNeumann(phi []float32, grid *Grid) {
	nx, ny := grid.Nx, grid.Ny

	for j := 0; j < ny; j++ {
		row := j * nx
		phi[row] = phi[row+1]
		phi[row+nx-1] = phi[row+nx-2]
	}
	for i := 0; i < nx; i++ {
		phi[i] = phi[nx+i]
		phi[(ny-1)*nx+i] = phi[(ny-2)*nx+i]
	}
}
