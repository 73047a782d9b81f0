// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

// Polynomials are coefficient slices, p[i] is the coefficient of x^i.

// polyMul returns p*q, the result has len(p)+len(q)-1 coefficients.
func polyMul(p, q []byte) []byte {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make([]byte, len(p)+len(q)-1)
	for i, c := range p {
		mulVectXOR(c, q, r[i:i+len(q)])
	}
	return r
}

// polyEval evaluates p at x by Horner's method.
func polyEval(p []byte, x byte) byte {
	var y byte
	for i := len(p) - 1; i >= 0; i-- {
		y = gfMul(y, x) ^ p[i]
	}
	return y
}
