// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

import (
	"runtime"

	"github.com/templexxx/cpu"
	"golang.org/x/sync/errgroup"
)

// DecodeResult is the outcome of decoding one codeword of a batch.
type DecodeResult struct {
	Data      []byte // Corrected message, nil if Err != nil.
	Positions []int  // Corrected positions.
	Err       error  // Uncorrectable error of this codeword.
}

// getBatchSize returns how many codewords one task handles.
// A task's codewords fit into half of L1 Data Cache,
// which won't pollute too much in the next round.
func getBatchSize(n int) int {
	l1d := cpu.X86.Cache.L1D
	if l1d <= 0 { // Cannot detect cache size(-1) or CPU is not X86(0).
		l1d = 32 * 1024
	}
	c := l1d / 2 / n
	if c < 1 {
		return 1
	}
	return c
}

// split calls f on [start, end) chunks of cnt items concurrently.
// Every codeword is independent, so chunks never share buffers.
func (r *RS) split(cnt int, f func(start, end int)) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	size := getBatchSize(r.n)
	for start := 0; start < cnt; start += size {
		end := start + size
		if end > cnt {
			end = cnt
		}
		start := start
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// EncodeBatch encodes independent messages concurrently.
// All messages must be k bytes, otherwise nothing is encoded.
func (r *RS) EncodeBatch(messages [][]byte) ([][]byte, error) {
	for _, m := range messages {
		if len(m) != r.k {
			return nil, &LengthError{Op: "encode", Want: r.k, Got: len(m), N: r.n, NSym: r.nsym}
		}
	}
	out := make([][]byte, len(messages))
	r.split(len(messages), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = encode(messages[i], r.nsym, r.gen)
		}
	})
	return out, nil
}

// DecodeBatch decodes independent codewords concurrently.
// It fails only when a codeword has the wrong length,
// corruption is reported per codeword in DecodeResult.Err.
func (r *RS) DecodeBatch(codewords [][]byte) ([]DecodeResult, error) {
	for _, cw := range codewords {
		if len(cw) != r.n {
			return nil, &LengthError{Op: "decode", Want: r.n, Got: len(cw), N: r.n, NSym: r.nsym}
		}
	}
	out := make([]DecodeResult, len(codewords))
	r.split(len(codewords), func(start, end int) {
		for i := start; i < end; i++ {
			d, pos, err := decode(codewords[i], r.nsym)
			out[i] = DecodeResult{Data: d, Positions: pos, Err: err}
		}
	})
	return out, nil
}
