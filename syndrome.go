// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

// posExp maps a codeword position to the power of x it carries:
// position 0 is the coefficient of x^(n-1), position n-1 of x^0.
func posExp(n, pos int) int {
	return n - 1 - pos
}

// calcSyndromes evaluates the received codeword at α^0...α^(nsym-1).
func calcSyndromes(cw []byte, nsym int) []byte {
	n := len(cw)
	s := make([]byte, nsym)
	for j := 0; j < nsym; j++ {
		var v byte
		for idx, c := range cw {
			v ^= gfMul(c, gfExp(j*posExp(n, idx)%gfOrder))
		}
		s[j] = v
	}
	return s
}

func syndromesZero(s []byte) bool {
	for _, v := range s {
		if v != 0 {
			return false
		}
	}
	return true
}
