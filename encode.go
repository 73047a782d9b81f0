// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

// encode makes a systematic codeword: message followed by
// message(x)*x^nsym mod g(x).
// gen must have degree nsym.
func encode(message []byte, nsym int, gen []byte) []byte {
	k := len(message)
	cw := make([]byte, k+nsym)
	copy(cw, message)

	// Codeword order is highest degree first, so walk g(x) backwards
	// (without its leading 1).
	tail := make([]byte, nsym)
	for j := 1; j <= nsym; j++ {
		tail[j-1] = gen[nsym-j]
	}

	// Synthetic division.
	for i := 0; i < k; i++ {
		mulVectXOR(cw[i], tail, cw[i+1:i+1+nsym])
	}

	copy(cw, message)
	return cw
}
