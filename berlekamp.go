// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

// berlekampMassey finds the error locator σ(x) = Π(1 + X_j*x) of minimal
// degree which generates the syndromes.
// σ[0] is always 1 and trailing zero coefficients are trimmed,
// so len(σ)-1 is the number of errors.
func berlekampMassey(syndromes []byte) []byte {
	c := []byte{1} // Current locator.
	b := []byte{1} // Locator before the last length change.
	l := 0         // Current number of errors.
	m := 1         // Steps since the last length change.
	prev := byte(1)

	for r := range syndromes {
		delta := syndromes[r]
		for i := 1; i <= l && i < len(c); i++ {
			delta ^= gfMul(c[i], syndromes[r-i])
		}

		if delta == 0 {
			m++
			continue
		}

		var t []byte
		if 2*l <= r {
			t = make([]byte, len(c))
			copy(t, c)
		}

		// c(x) -= delta/prev * x^m * b(x)
		for len(c) < len(b)+m {
			c = append(c, 0)
		}
		mulVectXOR(gfDiv(delta, prev), b, c[m:m+len(b)])

		if t != nil {
			l = r + 1 - l
			b = t
			prev = delta
			m = 1
		} else {
			m++
		}
	}

	for len(c) > 1 && c[len(c)-1] == 0 {
		c = c[:len(c)-1]
	}
	return c
}
