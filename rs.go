// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package reedsolomon implements Reed-Solomon error correcting codes
// (systematic codes), it's based on:
// Reed-Solomon Codes over GF(2^8).
// Primitive Polynomial:  x^8+x^4+x^3+x^2+1.
//
// A codeword is n bytes: k message bytes followed by nsym parity bytes.
// Byte 0 is the coefficient of x^(n-1).
// Decode locates (Berlekamp-Massey, Chien search) and corrects (Forney)
// up to nsym/2 corrupted bytes at unknown positions.
//
// All functions are safe for concurrent use.
package reedsolomon

// RS Reed-Solomon Codes receiver with fixed (n, nsym).
type RS struct {
	n    int // Codeword length.
	nsym int // Number of parity symbols.
	k    int // Message length.

	gen []byte // Generator polynomial, shared.
}

// New creates an RS for n-byte codewords carrying nsym parity bytes.
// 1 <= nsym < n <= 255.
func New(n, nsym int) (*RS, error) {
	if err := checkParams(n, nsym); err != nil {
		return nil, err
	}
	return &RS{n: n, nsym: nsym, k: n - nsym, gen: generator(nsym)}, nil
}

func checkParams(n, nsym int) error {
	if nsym <= 0 || nsym >= n || n > gfOrder {
		return ErrIllegalParams
	}
	return nil
}

// N returns the codeword length.
func (r *RS) N() int { return r.n }

// DataNum returns the message length k.
func (r *RS) DataNum() int { return r.k }

// ParityNum returns the number of parity bytes.
func (r *RS) ParityNum() int { return r.nsym }

// Encode returns the n-byte codeword of a k-byte message.
func (r *RS) Encode(message []byte) ([]byte, error) {
	if len(message) != r.k {
		return nil, &LengthError{Op: "encode", Want: r.k, Got: len(message), N: r.n, NSym: r.nsym}
	}
	return encode(message, r.nsym, r.gen), nil
}

// Decode returns the corrected message of an n-byte codeword and
// the positions which were corrected.
func (r *RS) Decode(codeword []byte) ([]byte, []int, error) {
	if len(codeword) != r.n {
		return nil, nil, &LengthError{Op: "decode", Want: r.n, Got: len(codeword), N: r.n, NSym: r.nsym}
	}
	return decode(codeword, r.nsym)
}

// Check reports whether codeword is a valid codeword (all syndromes zero).
func (r *RS) Check(codeword []byte) bool {
	if len(codeword) != r.n {
		return false
	}
	return syndromesZero(calcSyndromes(codeword, r.nsym))
}

// Encode encodes message into a nsize-byte codeword with nsym parity bytes.
// len(message) must be nsize-nsym (0 if nsym > nsize).
// nsize is at most 255, longer codewords return ErrIllegalParams.
func Encode(nsym, nsize int, message []byte) ([]byte, error) {
	if nsym < 0 || nsize < 0 || nsize > gfOrder {
		return nil, ErrIllegalParams
	}
	k := nsize - nsym
	if k < 0 {
		k = 0
	}
	if len(message) != k {
		return nil, &LengthError{Op: "encode", Want: k, Got: len(message), N: nsize, NSym: nsym}
	}
	if nsym > nsize {
		return nil, ErrCodewordTooShort
	}
	return encode(message, nsym, generator(nsym)), nil
}

// Decode decodes a nsize-byte codeword with nsym parity bytes.
// It returns the nsize-nsym message bytes and every corrected position
// (empty if codeword was valid).
// nsize is at most 255: beyond that positions share locators and can't
// be told apart, so ErrIllegalParams is returned.
func Decode(nsym, nsize int, codeword []byte) ([]byte, []int, error) {
	if nsym < 0 || nsize < 0 || nsize > gfOrder {
		return nil, nil, ErrIllegalParams
	}
	if len(codeword) != nsize {
		return nil, nil, &LengthError{Op: "decode", Want: nsize, Got: len(codeword), N: nsize, NSym: nsym}
	}
	return decode(codeword, nsym)
}
