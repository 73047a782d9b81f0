// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

// Primitive Polynomial: x^8+x^4+x^3+x^2+1.
const primitivePolynomial = 0x11d

// order of the multiplicative group.
const gfOrder = 255

var (
	// expTbl[i] = α^i, doubled so log(a)+log(b) never needs a modulo.
	expTbl [2 * 256]byte
	// logTbl[α^i] = i, logTbl[0] is unused.
	logTbl [256]byte
)

func init() {
	expTbl, logTbl = genTables()
}

func genTables() (exp [2 * 256]byte, log [256]byte) {
	x := 1
	for i := 0; i < gfOrder; i++ {
		exp[i] = byte(x)
		exp[i+gfOrder] = byte(x)
		log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= primitivePolynomial
		}
	}
	exp[gfOrder] = 1
	exp[2*gfOrder] = 1
	return
}

// a * b
func gfMul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return expTbl[int(logTbl[a])+int(logTbl[b])]
}

// a / b, b must not be 0.
func gfDiv(a, b byte) byte {
	if b == 0 {
		panic(ErrDivByZero)
	}
	if a == 0 {
		return 0
	}
	return expTbl[(int(logTbl[a])+gfOrder-int(logTbl[b]))%gfOrder]
}

func gfInv(a byte) byte {
	if a == 0 {
		panic(ErrDivByZero)
	}
	return expTbl[gfOrder-int(logTbl[a])]
}

// gfExp returns α^e, e >= 0.
func gfExp(e int) byte {
	return expTbl[e%gfOrder]
}

// Mul returns a*b in GF(2^8).
func Mul(a, b byte) byte { return gfMul(a, b) }

// Div returns a/b in GF(2^8). It panics with ErrDivByZero if b is 0.
func Div(a, b byte) byte { return gfDiv(a, b) }

// Inv returns the multiplicative inverse of a. It panics with ErrDivByZero if a is 0.
func Inv(a byte) byte { return gfInv(a) }

// Exp returns α^e for e >= 0.
func Exp(e int) byte { return gfExp(e) }

