// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import "github.com/chewxy/math32"

// Solve runs the full Poisson pipeline: grid geometry, charge deposition,
// conductor masking, and SOR iteration to convergence or maxIters (spec
// section 4.7). residualLog, if non-nil, receives every sampled residual in
// the order it was taken.
//
// Input:
//
//	scene        -- domain, point charges and conductors
//	gridSpec     -- requested resolution, clamped to [32, 2048] per axis
//	solverSpec   -- iteration controls, clamped per SolverSpec's doc comment
//	residualLog  -- optional destination for the residual history
//
// Output:
//
//	result -- the potential field plus convergence metadata
//	err    -- InvalidDomain or InvalidConductor from Scene.Validate, or
//	          InvalidParameter for a non-finite omega/tolerance
func Solve(scene Scene, gridSpec GridSpec, solverSpec SolverSpec, residualLog *[]float32) (*SolveResult, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}

	omega, tol, maxIters, err := sanitizeSolverSpec(solverSpec)
	if err != nil {
		return nil, err
	}

	grid, err := NewGrid(scene.Domain, gridSpec)
	if err != nil {
		return nil, err
	}

	mask := BuildMask(scene.Conductors, grid)
	phi := make([]float32, grid.Size())
	for k, fixed := range mask.Fixed {
		if fixed {
			phi[k] = mask.Value[k]
		}
	}

	rho := Deposit(scene.Charges, grid, solverSpec.ChargeSigmaCells)

	var lastResidual float32
	iterations := 0
	for it := 0; it < maxIters; it++ {
		applyNeumann(phi, grid)
		sweepSOR(phi, rho, mask, grid, omega)
		iterations = it + 1

		if it%10 == 0 || it == maxIters-1 {
			lastResidual = residual(phi, rho, mask, grid)
			if residualLog != nil {
				*residualLog = append(*residualLog, lastResidual)
			}
			if lastResidual < float32(tol) {
				break
			}
		}
	}
	applyNeumann(phi, grid)

	phiMin, phiMax := extrema(phi)
	if !math32IsFinite(phiMin) || !math32IsFinite(phiMax) {
		phiMin, phiMax = -1, 1
	} else if phiMax-phiMin < 1e-12 {
		phiMax = phiMin + 1e-6
	}

	return &SolveResult{
		Phi:        phi,
		Nx:         grid.Nx,
		Ny:         grid.Ny,
		XMin:       grid.XMin,
		XMax:       grid.XMax,
		YMin:       grid.YMin,
		YMax:       grid.YMax,
		PhiMin:     phiMin,
		PhiMax:     phiMax,
		Iterations: iterations,
		Residual:   lastResidual,
	}, nil
}

// sanitizeSolverSpec clamps omega, tolerance and maxIters per spec section
// 4.7/7, returning InvalidParameter when omega or tolerance is non-finite
// (a NaN/Inf value cannot be meaningfully clamped into its range).
func sanitizeSolverSpec(s SolverSpec) (omega float32, tol float64, maxIters int, err error) {
	if !finite(s.Omega) {
		return 0, 0, 0, newErr(InvalidParameter, "omega must be finite, got %v", s.Omega)
	}
	if !finite(s.Tolerance) {
		return 0, 0, 0, newErr(InvalidParameter, "tolerance must be finite, got %v", s.Tolerance)
	}
	omega = float32(clampFloat(s.Omega, 0.1, 1.99))
	tol = s.Tolerance
	if tol < 1e-10 {
		tol = 1e-10
	}
	maxIters = clampInt(s.MaxIters, 1, 200000)
	return omega, tol, maxIters, nil
}

func extrema(phi []float32) (min, max float32) {
	if len(phi) == 0 {
		return -1, 1
	}
	min, max = phi[0], phi[0]
	for _, v := range phi[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func math32IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
