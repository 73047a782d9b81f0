// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

import (
	"errors"
	"fmt"
)

// ErrDivByZero is the panic value of division or inversion by zero.
// It's a caller bug, never a data problem.
var ErrDivByZero = errors.New("reedsolomon: division by zero in GF(2^8)")

// Input shape errors.
var (
	ErrLengthMismatch   = errors.New("reedsolomon: length mismatch")
	ErrCodewordTooShort = errors.New("reedsolomon: codeword too short")
	ErrIllegalParams    = errors.New("reedsolomon: illegal n/nsym: need 1 <= nsym < n <= 255")
)

// Uncorrectable corruption.
var (
	ErrTrivialLocator  = errors.New("reedsolomon: nonzero syndrome but trivial locator")
	ErrTooManyErrors   = errors.New("reedsolomon: too many errors")
	ErrLocatorMismatch = errors.New("reedsolomon: chien search found wrong number of roots")
	ErrVerifyFailed    = errors.New("reedsolomon: verification failed")
)

// LengthError reports a message or codeword whose length
// doesn't match (n, nsym).
type LengthError struct {
	Op   string // "encode" or "decode".
	Want int
	Got  int
	N    int
	NSym int
}

func (e *LengthError) Error() string {
	if e.Op == "encode" {
		return fmt.Sprintf("reedsolomon: message length %d does not match expected k=%d for (n=%d, nsym=%d)",
			e.Got, e.Want, e.N, e.NSym)
	}
	return fmt.Sprintf("reedsolomon: codeword length %d does not match expected n=%d (nsym=%d)",
		e.Got, e.Want, e.NSym)
}

func (e *LengthError) Unwrap() error { return ErrLengthMismatch }

// IsUncorrectable reports whether err means the codeword is corrupted
// beyond what the code can correct (as opposed to bad input shape).
func IsUncorrectable(err error) bool {
	return errors.Is(err, ErrTrivialLocator) ||
		errors.Is(err, ErrTooManyErrors) ||
		errors.Is(err, ErrLocatorMismatch) ||
		errors.Is(err, ErrVerifyFailed)
}
