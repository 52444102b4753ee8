// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import "github.com/cpmech/gosl/chk"

// ErrorKind classifies a validation failure raised during Scene or
// solver-parameter checking. See spec section 7 of the design notes.
type ErrorKind string

const (
	InvalidDomain    ErrorKind = "InvalidDomain"
	InvalidConductor ErrorKind = "InvalidConductor"
	InvalidParameter ErrorKind = "InvalidParameter"
)

// KindError wraps a gosl/chk formatted error with a classification tag so
// callers can distinguish domain, conductor and parameter failures without
// parsing message text.
type KindError struct {
	Kind ErrorKind
	err  error
}

func (e *KindError) Error() string { return e.err.Error() }
func (e *KindError) Unwrap() error { return e.err }

func newErr(kind ErrorKind, format string, args ...interface{}) error {
	return &KindError{Kind: kind, err: chk.Err(format, args...)}
}
