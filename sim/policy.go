// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	"bytes"
	"sort"

	reedsolomon "github.com/templexxx/rsecc"
)

// Decoder decodes one codeword into its message and corrected positions.
type Decoder interface {
	Decode(codeword []byte) ([]byte, []int, error)
}

// Policy is a set of decode-time guardrails.
type Policy struct {
	// EnforceContiguous marks a decode as suspect when the corrected
	// positions do not form a single run.
	EnforceContiguous bool `yaml:"enforce_contiguous"`
}

// Verdict is the class of a decode attempt.
type Verdict int

const (
	Corrected Verdict = iota
	Uncorrectable
	Silent // Decoder claimed success with a wrong or rejected message.
)

func (v Verdict) String() string {
	switch v {
	case Corrected:
		return "corrected"
	case Uncorrectable:
		return "uncorrected"
	case Silent:
		return "silent"
	}
	return "unknown"
}

// Outcome is the result of a decode attempt.
type Outcome struct {
	Verdict Verdict
	Suspect bool // Rejected by Policy.EnforceContiguous.
}

// PositionsContiguous reports whether positions form one contiguous run
// in any order. Fewer than two positions are contiguous.
func PositionsContiguous(positions []int) bool {
	if len(positions) < 2 {
		return true
	}
	s := append([]int(nil), positions...)
	sort.Ints(s)
	for i := 1; i < len(s); i++ {
		if s[i]-s[i-1] != 1 {
			return false
		}
	}
	return true
}

// Classify decodes received and compares the result with reference.
// Only uncorrectable decode errors are classified, others are returned.
func Classify(d Decoder, received, reference []byte, p Policy) (Outcome, error) {
	msg, positions, err := d.Decode(received)
	if err != nil {
		if reedsolomon.IsUncorrectable(err) {
			return Outcome{Verdict: Uncorrectable}, nil
		}
		return Outcome{}, err
	}
	if p.EnforceContiguous && !PositionsContiguous(positions) {
		return Outcome{Verdict: Silent, Suspect: true}, nil
	}
	if bytes.Equal(msg, reference) {
		return Outcome{Verdict: Corrected}, nil
	}
	return Outcome{Verdict: Silent}, nil
}
