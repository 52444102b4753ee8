// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/jonhef/electrosim/poisson"
	"github.com/jonhef/electrosim/wire"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// command-line flags
	scenePath := flag.String("scene", "", "path to a scene JSON file (required)")
	outPath := flag.String("out", "out.bin", "path to write the raw binary phi dump")
	maxIters := flag.Int("maxiters", 0, "override maxIters from the scene file (0 = use scene value)")
	tolerance := flag.Float64("tol", 0, "override tolerance from the scene file (0 = use scene value)")
	omega := flag.Float64("omega", 0, "override omega from the scene file (0 = use scene value)")
	sigma := flag.Float64("sigma", 0, "override chargeSigmaCells from the scene file (0 = use scene value)")
	verbose := flag.Bool("v", false, "print the sampled residual history after solving")
	flag.Parse()

	if *scenePath == "" {
		chk.Panic("Please provide a scene file. Ex.: -scene dipole.json")
	}

	io.Pf("electrosim -- 2D Poisson solver for point charges and conductors\n")

	scene, gridSpec, solverSpec, err := readScene(*scenePath)
	if err != nil {
		chk.Panic("%v", err)
	}
	if *maxIters > 0 {
		solverSpec.MaxIters = *maxIters
	}
	if *tolerance > 0 {
		solverSpec.Tolerance = *tolerance
	}
	if *omega > 0 {
		solverSpec.Omega = *omega
	}
	if *sigma > 0 {
		solverSpec.ChargeSigmaCells = *sigma
	}

	var residualLog []float32
	var logPtr *[]float32
	if *verbose {
		logPtr = &residualLog
	}

	result, err := poisson.Solve(scene, gridSpec, solverSpec, logPtr)
	if err != nil {
		chk.Panic("solve failed: %v", err)
	}

	if *verbose {
		for i, r := range residualLog {
			io.Pfcyan("  sample %3d: residual = %.6e\n", i, r)
		}
	}

	io.Pfgreen("finished after %d iterations, residual = %.6e\n", result.Iterations, result.Residual)
	io.Pf("phi range: [%.6g, %.6g]\n", result.PhiMin, result.PhiMax)

	f, err := os.Create(*outPath)
	if err != nil {
		chk.Panic("cannot create output file %q: %v", *outPath, err)
	}
	defer f.Close()
	if err := wire.EncodePhi(f, result.Phi); err != nil {
		chk.Panic("%v", err)
	}

	io.Pf("wrote %s (%d x %d float32), fingerprint=%s\n", *outPath, result.Nx, result.Ny, wire.Fingerprint(result.Phi))
}
