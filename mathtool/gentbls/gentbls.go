// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// This tool lists degree 8 primitive polynomials,
// and writes exponent & log tables of GF(2^8) for the chosen one.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
)

const (
	deg   = 8
	order = (1 << deg) - 1
)

var (
	poly = flag.String("poly", "0x11d", "primitive polynomial (with the x^8 bit)")
	out  = flag.String("out", "gf_tables", "output file")
)

func main() {
	flag.Parse()

	p, err := strconv.ParseUint(*poly, 0, 16)
	if err != nil || p>>deg != 1 {
		log.Fatalf("illegal polynomial: %s", *poly)
	}
	if !isPrimitive(uint16(p)) {
		log.Fatalf("%s is not primitive", formatPolynomial(uint16(p)))
	}

	f, err := os.OpenFile(*out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		log.Fatalln(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d degree primitive polynomial:\n", deg)
	for i, pp := range primitivePolynomials() {
		fmt.Fprintf(w, "%d. %s (%#x);\n", i+1, formatPolynomial(pp), pp)
	}

	exp := genExpTable(uint16(p))
	fmt.Fprintf(w, "\n// %s\n", formatPolynomial(uint16(p)))
	fmt.Fprintf(w, "expTbl: %#v\n", exp)
	fmt.Fprintf(w, "logTbl: %#v\n", genLogTable(exp))
	if err = w.Flush(); err != nil {
		log.Fatalln(err)
	}
}

// primitivePolynomials returns all degree 8 polynomials
// whose root generates the multiplicative group.
func primitivePolynomials() []uint16 {
	var ps []uint16
	// Constant term must be 1, or x divides it.
	for p := uint16(1<<deg | 1); p < 1<<(deg+1); p += 2 {
		if isPrimitive(p) {
			ps = append(ps, p)
		}
	}
	return ps
}

// isPrimitive reports whether x has order 2^deg-1 modulo p.
func isPrimitive(p uint16) bool {
	v := uint16(1)
	for i := 1; i <= order; i++ {
		v = mulX(v, p)
		if v == 1 {
			return i == order
		}
	}
	return false
}

func mulX(v, p uint16) uint16 {
	v <<= 1
	if v&(1<<deg) != 0 {
		v ^= p
	}
	return v
}

// genExpTable returns α^i for i in [0, 2*order],
// doubled so that log sums need no reduction.
func genExpTable(p uint16) []byte {
	table := make([]byte, 2*(order+1))
	v := uint16(1)
	for i := 0; i < order; i++ {
		table[i] = byte(v)
		table[i+order] = byte(v)
		v = mulX(v, p)
	}
	table[2*order] = 1
	return table
}

func genLogTable(exp []byte) []byte {
	table := make([]byte, 1<<deg)
	for i := 0; i < order; i++ {
		table[exp[i]] = byte(i)
	}
	return table
}

func formatPolynomial(p uint16) string {
	var terms []string
	for i := deg; i >= 0; i-- {
		if p&(1<<uint(i)) == 0 {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, "1")
		case 1:
			terms = append(terms, "x")
		default:
			terms = append(terms, "x^"+strconv.Itoa(i))
		}
	}
	return strings.Join(terms, "+")
}
