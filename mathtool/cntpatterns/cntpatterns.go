// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.
//
// Copyright ©2016 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This tool calculates the number of error patterns an RS(n, k) code
// over GF(2^8) is guaranteed to correct:
//
//	Σ_{i<=t} C(n, i) * 255^i, t = (n-k)/2
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
)

var codeLen = flag.Uint64("n", 72, "codeword length (data+parity), <= 255")
var data = flag.Uint64("k", 64, "number of data symbols")

func init() {
	flag.Usage = func() {
		fmt.Printf("Usage of %s:\n", os.Args[0])
		fmt.Println("  cntpatterns [-flags]")
		fmt.Println("  Valid flags:")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	n, k := *codeLen, *data
	if k == 0 || k >= n || n > 255 {
		fmt.Fprintln(os.Stderr, "need 0 < k < n <= 255")
		os.Exit(2)
	}
	t := (n - k) / 2

	lc := logCorrectable(float64(n), t)
	// Every non-zero error vector: 256^n - 1 ≈ 256^n.
	all := float64(n) * math.Log(256)
	fmt.Printf("RS(%d,%d), t: %d\n", n, k, t)
	fmt.Printf("correctable patterns ≈ %.6g (10^%.2f)\n", math.Exp(lc), lc/math.Ln10)
	fmt.Printf("share of all patterns ≈ 10^%.2f\n", (lc-all)/math.Ln10)
}

// logCorrectable returns log(Σ_{i<=t} C(n, i) * 255^i).
func logCorrectable(n float64, t uint64) float64 {
	terms := make([]float64, t+1)
	max := math.Inf(-1)
	for i := range terms {
		terms[i] = logGeneralizedBinomial(n, float64(i)) + float64(i)*math.Log(255)
		if terms[i] > max {
			max = terms[i]
		}
	}
	var sum float64
	for _, v := range terms {
		sum += math.Exp(v - max)
	}
	return max + math.Log(sum)
}

const (
	errNegInput = "combination: negative input"
	badSetSize  = "combination: n < k"
)

// logGeneralizedBinomial returns the log of the generalized binomial
// coefficient of (n, k), defined as
//
//	Γ(n+1) / (Γ(k+1) Γ(n-k+1))
//
// where Γ is the Gamma function.
//
// n and k must be non-negative with n >= k, otherwise logGeneralizedBinomial will panic.
func logGeneralizedBinomial(n, k float64) float64 {
	if n < 0 || k < 0 {
		panic(errNegInput)
	}
	if n < k {
		panic(badSetSize)
	}
	a, _ := math.Lgamma(n + 1)
	b, _ := math.Lgamma(k + 1)
	c, _ := math.Lgamma(n - k + 1)
	return a - b - c
}
