// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

// Grid holds the derived geometry of a uniform Cartesian discretisation of a
// DomainBounds. dx, dy and the origin are computed once; nothing downstream
// recomputes them ad hoc (spec section 4.1).
type Grid struct {
	Nx, Ny     int
	Dx, Dy     float64
	XMin, YMin float64
	XMax, YMax float64
	Epsilon    float64
}

// NewGrid validates domain and derives grid geometry from a GridSpec. Nx and
// Ny are clamped to [32, 2048]. Epsilon is sanitised to 1 when non-positive
// or non-finite. Returns InvalidDomain when the bounds are inverted or
// non-finite.
func NewGrid(domain DomainBounds, spec GridSpec) (*Grid, error) {
	if err := validateDomain(domain); err != nil {
		return nil, err
	}
	nx := clampInt(spec.Nx, 32, 2048)
	ny := clampInt(spec.Ny, 32, 2048)
	g := &Grid{
		Nx:      nx,
		Ny:      ny,
		XMin:    domain.XMin,
		XMax:    domain.XMax,
		YMin:    domain.YMin,
		YMax:    domain.YMax,
		Epsilon: sanitizedEpsilon(domain.Epsilon),
	}
	g.Dx = (domain.XMax - domain.XMin) / float64(nx-1)
	g.Dy = (domain.YMax - domain.YMin) / float64(ny-1)
	return g, nil
}

// Size returns the number of cells in the row-major storage (Nx*Ny).
func (g *Grid) Size() int { return g.Nx * g.Ny }

// Index returns the row-major storage index k = j*Nx + i for node (i, j).
func (g *Grid) Index(i, j int) int { return j*g.Nx + i }

// NodeXY returns the world coordinates of node (i, j).
func (g *Grid) NodeXY(i, j int) (x, y float64) {
	return g.XMin + float64(i)*g.Dx, g.YMin + float64(j)*g.Dy
}
