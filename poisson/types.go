// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// DomainBounds describes the rectangular region the grid covers and the
// (dimensionless) permittivity of the medium filling it.
type DomainBounds struct {
	XMin, XMax float64
	YMin, YMax float64
	Epsilon    float64
}

// PointCharge is a point source of charge Q to be regularised into the charge density by
// Gaussian deposition (see Deposit). Q may be negative. A non-finite
// position or charge, or one whose nearest cell falls outside the grid, is
// silently dropped (spec section 3, PointCharge).
type PointCharge struct {
	X, Y, Q float64
}

// ConductorKind tags the shape payload carried by a Conductor.
type ConductorKind int

const (
	// Rectangle conductors are inclusive on all four edges.
	Rectangle ConductorKind = iota
	// Circle conductors use (x-cx)^2+(y-cy)^2 <= r^2, inclusive on the boundary.
	Circle
)

// Conductor is a tagged variant: Rectangle or Circle, each carrying a fixed
// potential. Adding a future shape is a new tag plus a new containment
// predicate (see conductor.go); no virtual dispatch table is required.
type Conductor struct {
	Kind      ConductorKind
	Potential float64

	// Rectangle payload.
	XMin, XMax float64
	YMin, YMax float64

	// Circle payload.
	CX, CY, Radius float64
}

// Scene bundles the domain, sources and conductors handed to Solve.
type Scene struct {
	Domain     DomainBounds
	Charges    []PointCharge
	Conductors []Conductor
}

// GridSpec requests a grid resolution; Nx and Ny are clamped to [32, 2048]
// by NewGrid.
type GridSpec struct {
	Nx, Ny int
}

// SolverSpec controls the SOR iteration. MaxIters is clamped to
// [1, 200000], Omega to [0.1, 1.99], Tolerance has a floor of 1e-10.
// ChargeSigmaCells sets the Gaussian deposition width in grid-cell units
// (floored at 0.25 cells, see Deposit).
type SolverSpec struct {
	MaxIters         int
	Tolerance        float64
	Omega            float64
	ChargeSigmaCells float64
}

// SolveResult is the scalar potential field plus grid metadata and
// convergence information returned by Solve.
type SolveResult struct {
	Phi                    []float32
	Nx, Ny                 int
	XMin, XMax, YMin, YMax float64
	PhiMin, PhiMax         float32
	Iterations             int
	Residual               float32
}

// Validate checks the scene's domain and conductors without running a
// solve. Solve calls this internally; it is exported so a caller (the CLI,
// or a future scene editor) can validate a scene before committing to the
// cost of a full SOR iteration (see SPEC_FULL.md section 12).
func (s Scene) Validate() error {
	if err := validateDomain(s.Domain); err != nil {
		return err
	}
	for i, c := range s.Conductors {
		if err := validateConductor(c); err != nil {
			return newErr(InvalidConductor, "conductor %d: %v", i, err)
		}
	}
	return nil
}

func validateDomain(d DomainBounds) error {
	if !finite(d.XMin) || !finite(d.XMax) || !finite(d.YMin) || !finite(d.YMax) {
		return newErr(InvalidDomain, "domain bounds must be finite: %+v", d)
	}
	if d.XMax <= d.XMin {
		return newErr(InvalidDomain, "xMax (%v) must be greater than xMin (%v)", d.XMax, d.XMin)
	}
	if d.YMax <= d.YMin {
		return newErr(InvalidDomain, "yMax (%v) must be greater than yMin (%v)", d.YMax, d.YMin)
	}
	return nil
}

func validateConductor(c Conductor) error {
	if !finite(c.Potential) {
		return newErr(InvalidConductor, "potential must be finite, got %v", c.Potential)
	}
	switch c.Kind {
	case Rectangle:
		if c.XMax <= c.XMin || c.YMax <= c.YMin {
			return newErr(InvalidConductor, "rectangle bounds inverted: x[%v,%v] y[%v,%v]", c.XMin, c.XMax, c.YMin, c.YMax)
		}
	case Circle:
		if c.Radius <= 0 || !finite(c.Radius) {
			return newErr(InvalidConductor, "circle radius must be positive and finite, got %v", c.Radius)
		}
	default:
		return newErr(InvalidConductor, "unknown conductor kind %d", c.Kind)
	}
	return nil
}

// sanitizedEpsilon replaces a non-positive or non-finite epsilon with 1, as
// required by spec section 3 (DomainBounds).
func sanitizedEpsilon(eps float64) float64 {
	if !finite(eps) || eps <= 0 {
		return 1
	}
	return eps
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clampInt(v, lo, hi int) int {
	return utl.Imax(lo, utl.Imin(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return utl.Max(lo, utl.Min(hi, v))
}
