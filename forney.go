// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

// evaluator returns Ω(x) = S(x)*σ(x) mod x^nsym.
func evaluator(syndromes, sigma []byte) []byte {
	nsym := len(syndromes)
	omega := make([]byte, nsym)
	for i := 0; i < nsym; i++ {
		for j := 0; j <= i && j < len(sigma); j++ {
			omega[i] ^= gfMul(syndromes[i-j], sigma[j])
		}
	}
	return omega
}

// derivative returns the formal derivative of p.
// In characteristic 2 the even powers vanish.
func derivative(p []byte) []byte {
	if len(p) < 2 {
		return nil
	}
	d := make([]byte, len(p)-1)
	for i := 1; i < len(p); i += 2 {
		d[i-1] = p[i]
	}
	return d
}

// forney returns the error magnitude for every position, in the same order.
// e_j = X_j * Ω(X_j^-1) / σ'(X_j^-1).
//
// A zero σ'(X_j^-1) yields magnitude 0 and leaves the verdict to the
// caller's final syndrome check.
func forney(syndromes, sigma []byte, positions []int, n int) []byte {
	omega := evaluator(syndromes, sigma)
	dsigma := derivative(sigma)

	mags := make([]byte, len(positions))
	for i, pos := range positions {
		e := posExp(n, pos)
		x := gfExp(e)
		xInv := gfExp(invExp(e))

		den := polyEval(dsigma, xInv)
		if den == 0 {
			continue
		}
		mags[i] = gfMul(x, gfDiv(polyEval(omega, xInv), den))
	}
	return mags
}
