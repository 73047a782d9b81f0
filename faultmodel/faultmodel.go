// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package faultmodel generates symbol faults of a DRAM subarray fault model
// for Reed-Solomon codewords.
//
// Fault types:
//   - single_bit_1sym: one bit flipped in one symbol.
//   - 8bit_1sym: random 8-bit pattern in one symbol.
//   - 8bit_2sym: random patterns in 2 contiguous symbols, 2-aligned.
//   - 8bit_4sym: random patterns in 4 contiguous symbols, 4-aligned.
//   - out_of_model: 5-6 contiguous symbols (any start) or 4-8 scattered ones.
//
// With correlation enabled, primary faults (except single bit) hit the data
// region only, and with probability nsym/k a fault of the same width hits
// the parity region too.
package faultmodel

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	xor "github.com/templexxx/xorsimd"
)

// Type is a fault type.
type Type int

// Fault types, in sampling order.
const (
	SingleBit1Sym Type = iota
	EightBit1Sym
	EightBit2Sym
	EightBit4Sym
	OutOfModel
	typeCnt
)

var typeNames = [typeCnt]string{
	"single_bit_1sym",
	"8bit_1sym",
	"8bit_2sym",
	"8bit_4sym",
	"out_of_model",
}

var typeDescs = [typeCnt]string{
	"1 symbol, 1 bit flipped",
	"1 symbol, random 8-bit pattern",
	"2 contiguous symbols (2-aligned), random patterns",
	"4 contiguous symbols (4-aligned), random patterns",
	"5-6 contiguous or 4+ scattered symbols",
}

// Types returns all fault types in sampling order.
func Types() []Type {
	return []Type{SingleBit1Sym, EightBit1Sym, EightBit2Sym, EightBit4Sym, OutOfModel}
}

func (t Type) String() string {
	if t < 0 || t >= typeCnt {
		return "unknown"
	}
	return typeNames[t]
}

// Description returns a human readable description of t.
func (t Type) Description() string {
	if t < 0 || t >= typeCnt {
		return ""
	}
	return typeDescs[t]
}

// Distribution is a weight (count) per fault type.
type Distribution [typeCnt]int

// DefaultDistribution is 9000,800,100,50,50.
var DefaultDistribution = Distribution{9000, 800, 100, 50, 50}

var ErrIllegalDist = errors.New("faultmodel: distribution requires exactly 5 comma-separated non-negative integers: 1bit,1sym,2sym,4sym,other")

// ParseDistribution parses "9000,800,100,50,50".
func ParseDistribution(s string) (Distribution, error) {
	var d Distribution
	parts := strings.Split(s, ",")
	if len(parts) != int(typeCnt) {
		return d, ErrIllegalDist
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 {
			return d, ErrIllegalDist
		}
		d[i] = v
	}
	if d.Total() == 0 {
		return d, ErrIllegalDist
	}
	return d, nil
}

// Total returns the sum of all weights.
func (d Distribution) Total() int {
	var t int
	for _, c := range d {
		t += c
	}
	return t
}

// Count returns the weight of t.
func (d Distribution) Count(t Type) int {
	if t < 0 || t >= typeCnt {
		return 0
	}
	return d[t]
}

func (d Distribution) String() string {
	s := make([]string, len(d))
	for i, c := range d {
		s[i] = strconv.Itoa(c)
	}
	return strings.Join(s, ",")
}

// sample maps v in [1, Total] to a fault type by cumulative thresholds.
func (d Distribution) sample(v int) Type {
	acc := 0
	for i, c := range d {
		acc += c
		if v <= acc {
			return Type(i)
		}
	}
	return OutOfModel
}

// WriteSummary writes the distribution with percentages.
func (d Distribution) WriteSummary(w io.Writer) error {
	total := d.Total()
	if _, err := fmt.Fprintf(w, "Fault Distribution:\n  Total: %d\n", total); err != nil {
		return err
	}
	for _, t := range Types() {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(d.Count(t)) / float64(total)
		}
		if _, err := fmt.Fprintf(w, "  %s: %d (%.3f%%) - %s\n", t, d.Count(t), pct, t.Description()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Error is one corrupted symbol.
type Error struct {
	Pos     int
	Pattern byte // XOR pattern.
}

// Fault is a set of symbol errors of one fault type.
type Fault struct {
	Type   Type
	Errors []Error
}

// Positions returns the distinct corrupted positions, sorted.
func (f *Fault) Positions() []int {
	s := make([]int, 0, len(f.Errors))
	for _, e := range f.Errors {
		if e.Pattern != 0 {
			s = append(s, e.Pos)
		}
	}
	return dedup(s)
}

func randomSingleBit(rng *rand.Rand) byte {
	return 1 << uint(rng.Intn(8))
}

func random8BitNonZero(rng *rand.Rand) byte {
	return byte(rng.Intn(255) + 1)
}

// Generate draws a fault for an RS(n, k) codeword.
func Generate(n, k int, dist Distribution, rng *rand.Rand, correlated bool) Fault {
	nsym := n - k

	ft := OutOfModel
	if total := dist.Total(); total > 0 {
		ft = dist.sample(rng.Intn(total) + 1)
	}

	// Primary faults hit the data region only when correlated.
	region := n
	if correlated && ft != SingleBit1Sym {
		region = k
	}

	f := Fault{Type: ft}
	width := 1 // Width of fault (for correlation), 0 means scattered.

	switch ft {
	case SingleBit1Sym:
		f.Errors = []Error{{rng.Intn(region), randomSingleBit(rng)}}

	case EightBit1Sym:
		f.Errors = []Error{{rng.Intn(region), random8BitNonZero(rng)}}

	case EightBit2Sym:
		maxStart := ((region - 1) / 2) * 2
		if maxStart > region-2 {
			maxStart = region - 2
		}
		if maxStart < 0 {
			maxStart = 0
		}
		start := rng.Intn(maxStart/2+1) * 2
		f.Errors = contiguous(start, 2, region, rng)
		width = 2

	case EightBit4Sym:
		maxIdx := (region - 1) / 4
		if maxIdx < 0 {
			maxIdx = 0
		}
		start := rng.Intn(maxIdx+1) * 4
		f.Errors = contiguous(start, 4, region, rng)
		width = 4

	default:
		if rng.Float64() < 0.5 {
			cnt := 5 + rng.Intn(2)
			maxStart := region - cnt
			if maxStart < 0 {
				maxStart = 0
				if cnt > region {
					cnt = region
				}
			}
			start := 0
			if maxStart > 0 {
				start = rng.Intn(maxStart + 1)
			}
			f.Errors = contiguous(start, cnt, region, rng)
			width = cnt
		} else {
			hi := 8
			if region < hi {
				hi = region
			}
			cnt := hi
			if hi >= 4 {
				cnt = 4 + rng.Intn(hi-4+1)
			}
			for _, p := range rng.Perm(region)[:cnt] {
				f.Errors = append(f.Errors, Error{p, random8BitNonZero(rng)})
			}
			width = 0
		}
	}

	if correlated && ft != SingleBit1Sym && width > 0 && k > 0 {
		if rng.Float64() < float64(nsym)/float64(k) {
			f.Errors = append(f.Errors, correlatedErrors(n, k, width, rng)...)
		}
	}
	return f
}

func contiguous(start, cnt, region int, rng *rand.Rand) []Error {
	var errs []Error
	for i := 0; i < cnt; i++ {
		if start+i < region {
			errs = append(errs, Error{start + i, random8BitNonZero(rng)})
		}
	}
	return errs
}

// correlatedErrors returns a fault of the same width in the parity region [k, n).
func correlatedErrors(n, k, width int, rng *rand.Rand) []Error {
	nsym := n - k
	if nsym <= 0 {
		return nil
	}
	switch width {
	case 1:
		return []Error{{k + rng.Intn(nsym), random8BitNonZero(rng)}}
	case 2, 4:
		var starts []int
		for i := 0; i+width-1 < nsym; i += width {
			starts = append(starts, k+i)
		}
		if len(starts) > 0 {
			return contiguous(starts[rng.Intn(len(starts))], width, n, rng)
		}
		if width == 2 {
			return nil
		}
		// Not enough parity for 4-aligned; apply what we can.
		return contiguous(k, nsym, n, rng)
	default:
		cnt := width
		if cnt > nsym {
			cnt = nsym
		}
		return contiguous(k, cnt, n, rng)
	}
}

// Apply xors the fault into codeword in place.
// Out of range positions and zero patterns are ignored.
func Apply(codeword []byte, f Fault) {
	n := len(codeword)
	pattern := make([]byte, n)
	for _, e := range f.Errors {
		if e.Pos >= 0 && e.Pos < n && e.Pattern != 0 {
			pattern[e.Pos] ^= e.Pattern
		}
	}
	xor.Encode(codeword, [][]byte{codeword, pattern})
}

// dedup removes duplicates from a given slice
func dedup(s []int) []int {

	sort.Ints(s)

	cnt := len(s)
	cntDup := 0
	for i := 1; i < cnt; i++ {
		if s[i] == s[i-1] {
			cntDup++
		} else {
			s[i-cntDup] = s[i]
		}
	}

	return s[:cnt-cntDup]
}
