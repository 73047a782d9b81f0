// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

// invExp returns the exponent of X^-1 where X = α^e.
func invExp(e int) int {
	return (gfOrder - e%gfOrder) % gfOrder
}

// chienSearch returns the codeword positions pos (ascending) for which
// σ(X^-1) == 0 with X = α^(n-1-pos).
func chienSearch(sigma []byte, n int) []int {
	var positions []int
	for pos := 0; pos < n; pos++ {
		if polyEval(sigma, gfExp(invExp(posExp(n, pos)))) == 0 {
			positions = append(positions, pos)
		}
	}
	return positions
}
