// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

// Mask records, for every grid node, whether it lies inside a conductor and
// the fixed potential it must hold if so.
type Mask struct {
	Fixed []bool
	Value []float32
}

// BuildMask rebuilds the conductor mask for grid from scratch. For each grid
// node, conductors are tested in scene order; the last conductor containing
// the node wins (spec section 4.3). Rectangle containment is inclusive on
// all edges; circle containment is (x-cx)^2+(y-cy)^2 <= r^2.
func BuildMask(conductors []Conductor, grid *Grid) *Mask {
	n := grid.Size()
	m := &Mask{Fixed: make([]bool, n), Value: make([]float32, n)}
	if len(conductors) == 0 {
		return m
	}
	for j := 0; j < grid.Ny; j++ {
		for i := 0; i < grid.Nx; i++ {
			x, y := grid.NodeXY(i, j)
			k := grid.Index(i, j)
			for _, c := range conductors {
				if contains(c, x, y) {
					m.Fixed[k] = true
					m.Value[k] = float32(c.Potential)
				}
			}
		}
	}
	return m
}

func contains(c Conductor, x, y float64) bool {
	switch c.Kind {
	case Rectangle:
		return x >= c.XMin && x <= c.XMax && y >= c.YMin && y <= c.YMax
	case Circle:
		dx, dy := x-c.CX, y-c.CY
		return dx*dx+dy*dy <= c.Radius*c.Radius
	default:
		return false
	}
}
