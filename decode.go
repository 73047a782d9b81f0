// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

import (
	xor "github.com/templexxx/xorsimd"
)

// decode corrects up to nsym/2 symbol errors in cw and returns the
// message part with the corrected positions (ascending).
// cw is never modified.
func decode(cw []byte, nsym int) ([]byte, []int, error) {
	n := len(cw)
	if n < nsym {
		return nil, nil, ErrCodewordTooShort
	}
	k := n - nsym

	syndromes := calcSyndromes(cw, nsym)
	if syndromesZero(syndromes) {
		msg := make([]byte, k)
		copy(msg, cw[:k])
		return msg, []int{}, nil
	}

	sigma := berlekampMassey(syndromes)
	errCnt := len(sigma) - 1
	if errCnt == 0 {
		return nil, nil, ErrTrivialLocator
	}
	if errCnt > nsym/2 {
		return nil, nil, ErrTooManyErrors
	}

	positions := chienSearch(sigma, n)
	if len(positions) != errCnt {
		return nil, nil, ErrLocatorMismatch
	}

	mags := forney(syndromes, sigma, positions, n)

	// Step1: lay magnitudes into an error vector.
	ev := make([]byte, n)
	for i, pos := range positions {
		ev[pos] = mags[i]
	}
	// Step2: received xor error vector.
	corrected := make([]byte, n)
	xor.Encode(corrected, [][]byte{cw, ev})

	if !syndromesZero(calcSyndromes(corrected, nsym)) {
		return nil, nil, ErrVerifyFailed
	}
	return corrected[:k:k], positions, nil
}
