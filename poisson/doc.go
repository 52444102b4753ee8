// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package poisson solves the 2D Poisson equation -div(grad(phi)) = rho/epsilon
// on a uniform Cartesian grid by successive over-relaxation, with homogeneous
// Neumann conditions on the outer box and optional internal Dirichlet regions
// (conductors). Point charges are regularised into a continuous charge
// density by Gaussian deposition before the sweep begins.
package poisson
