// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package main

import (
	"math"
	"testing"
)

func TestLogCorrectable(t *testing.T) {
	// RS(9,5): 1 + 9*255 + 36*255^2.
	got := math.Exp(logCorrectable(9, 2))
	if math.Abs(got-2343196)/2343196 > 1e-9 {
		t.Fatalf("mismatch: %f", got)
	}
	if got = math.Exp(logCorrectable(34, 0)); math.Abs(got-1) > 1e-9 {
		t.Fatalf("t=0 must give 1, got: %f", got)
	}
}

func TestLogGeneralizedBinomial(t *testing.T) {
	if v := math.Exp(logGeneralizedBinomial(72, 4)); math.Abs(v-1028790) > 1e-3 {
		t.Fatalf("C(72,4) mismatch: %f", v)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("n < k must panic")
		}
	}()
	logGeneralizedBinomial(3, 4)
}
