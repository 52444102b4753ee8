// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/cpmech/gosl/utl"
)

// Deposit rasterises point charges as normalised Gaussians into a charge
// density array of length grid.Size(). Charges whose nearest cell falls
// outside the grid, or whose position/charge is non-finite, are silently
// skipped (spec section 4.2). Multiple charges superpose additively.
func Deposit(charges []PointCharge, grid *Grid, sigmaCells float64) []float32 {
	rho := make([]float32, grid.Size())
	if sigmaCells <= 0 {
		sigmaCells = 0.25
	}
	dx, dy := grid.Dx, grid.Dy

	sigmaX := utl.Max(dx, 1e-9) * utl.Max(0.25, sigmaCells)
	sigmaY := utl.Max(dy, 1e-9) * utl.Max(0.25, sigmaCells)

	for _, c := range charges {
		if !finite(c.X) || !finite(c.Y) || !finite(c.Q) {
			continue
		}
		depositOne(rho, grid, c, sigmaX, sigmaY, dx, dy)
	}
	return rho
}

func depositOne(rho []float32, grid *Grid, c PointCharge, sigmaX, sigmaY, dx, dy float64) {
	i0 := roundToInt((c.X - grid.XMin) / dx)
	j0 := roundToInt((c.Y - grid.YMin) / dy)
	if i0 < 0 || i0 >= grid.Nx || j0 < 0 || j0 >= grid.Ny {
		return
	}

	ri := int(math.Ceil(3 * sigmaX / dx))
	rj := int(math.Ceil(3 * sigmaY / dy))

	iLo, iHi := clampInt(i0-ri, 0, grid.Nx-1), clampInt(i0+ri, 0, grid.Nx-1)
	jLo, jHi := clampInt(j0-rj, 0, grid.Ny-1), clampInt(j0+rj, 0, grid.Ny-1)

	sx2 := float32(sigmaX * sigmaX)
	sy2 := float32(sigmaY * sigmaY)
	cx := float32(c.X)
	cy := float32(c.Y)

	var weights []float32
	var w float32
	for j := jLo; j <= jHi; j++ {
		_, yj := grid.NodeXY(0, j)
		fyj := float32(yj)
		for i := iLo; i <= iHi; i++ {
			xi, _ := grid.NodeXY(i, 0)
			fxi := float32(xi)
			e := -0.5 * ((fxi-cx)*(fxi-cx)/sx2 + (fyj-cy)*(fyj-cy)/sy2)
			wij := math32.Exp(e)
			weights = append(weights, wij)
			w += wij
		}
	}
	if w <= 0 {
		return
	}
	scale := float32(c.Q) / (w * float32(dx) * float32(dy))

	idx := 0
	for j := jLo; j <= jHi; j++ {
		for i := iLo; i <= iHi; i++ {
			rho[grid.Index(i, j)] += scale * weights[idx]
			idx++
		}
	}
}

func roundToInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}
