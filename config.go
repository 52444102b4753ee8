// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/jonhef/electrosim/poisson"
)

// sceneFile is the on-disk JSON layout read by -scene (spec SPEC_FULL.md
// section 10.3). Its fields correspond to those of poisson.Scene/GridSpec/
// SolverSpec, except that a conductor's kind is the string "rectangle" or
// "circle"; readScene copies the fields across and maps the kind.
type sceneFile struct {
	Domain struct {
		XMin    float64 `json:"xMin"`
		XMax    float64 `json:"xMax"`
		YMin    float64 `json:"yMin"`
		YMax    float64 `json:"yMax"`
		Epsilon float64 `json:"epsilon"`
	} `json:"domain"`
	Grid struct {
		Nx int `json:"nx"`
		Ny int `json:"ny"`
	} `json:"grid"`
	Solver struct {
		MaxIters         int     `json:"maxIters"`
		Tolerance        float64 `json:"tolerance"`
		Omega            float64 `json:"omega"`
		ChargeSigmaCells float64 `json:"chargeSigmaCells"`
	} `json:"solver"`
	Charges []struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Q float64 `json:"q"`
	} `json:"charges"`
	Conductors []struct {
		Kind      string  `json:"kind"`
		Potential float64 `json:"potential"`
		XMin      float64 `json:"xMin"`
		XMax      float64 `json:"xMax"`
		YMin      float64 `json:"yMin"`
		YMax      float64 `json:"yMax"`
		CX        float64 `json:"cx"`
		CY        float64 `json:"cy"`
		Radius    float64 `json:"radius"`
	} `json:"conductors"`
}

// readScene loads and decodes a sceneFile, returning the poisson-domain
// types Solve expects.
func readScene(path string) (poisson.Scene, poisson.GridSpec, poisson.SolverSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return poisson.Scene{}, poisson.GridSpec{}, poisson.SolverSpec{}, chk.Err("cannot open scene file %q: %v", path, err)
	}
	defer f.Close()

	var sf sceneFile
	if err := json.NewDecoder(f).Decode(&sf); err != nil {
		return poisson.Scene{}, poisson.GridSpec{}, poisson.SolverSpec{}, chk.Err("cannot parse scene file %q: %v", path, err)
	}

	scene := poisson.Scene{
		Domain: poisson.DomainBounds{
			XMin: sf.Domain.XMin, XMax: sf.Domain.XMax,
			YMin: sf.Domain.YMin, YMax: sf.Domain.YMax,
			Epsilon: sf.Domain.Epsilon,
		},
	}
	for _, c := range sf.Charges {
		scene.Charges = append(scene.Charges, poisson.PointCharge{X: c.X, Y: c.Y, Q: c.Q})
	}
	for _, c := range sf.Conductors {
		cond := poisson.Conductor{Potential: c.Potential}
		switch c.Kind {
		case "rectangle":
			cond.Kind = poisson.Rectangle
			cond.XMin, cond.XMax, cond.YMin, cond.YMax = c.XMin, c.XMax, c.YMin, c.YMax
		case "circle":
			cond.Kind = poisson.Circle
			cond.CX, cond.CY, cond.Radius = c.CX, c.CY, c.Radius
		default:
			return poisson.Scene{}, poisson.GridSpec{}, poisson.SolverSpec{}, chk.Err("unknown conductor kind %q", c.Kind)
		}
		scene.Conductors = append(scene.Conductors, cond)
	}

	grid := poisson.GridSpec{Nx: sf.Grid.Nx, Ny: sf.Grid.Ny}
	solver := poisson.SolverSpec{
		MaxIters:         sf.Solver.MaxIters,
		Tolerance:        sf.Solver.Tolerance,
		Omega:            sf.Solver.Omega,
		ChargeSigmaCells: sf.Solver.ChargeSigmaCells,
	}
	return scene, grid, solver, nil
}
