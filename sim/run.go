// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	"math/rand"

	"github.com/pkg/errors"

	reedsolomon "github.com/templexxx/rsecc"
	"github.com/templexxx/rsecc/faultmodel"
)

// trialBase holds the message and codeword shared by consecutive trials.
type trialBase struct {
	rs         *reedsolomon.RS
	rng        *rand.Rand
	reuseEvery int

	msg []byte
	cw  []byte
}

func newTrialBase(code Code, seed int64, reuseEvery int) (*trialBase, error) {
	rs, err := reedsolomon.New(code.N, code.NSym())
	if err != nil {
		return nil, errors.Wrapf(err, "rs(%s)", code)
	}
	return &trialBase{
		rs:         rs,
		rng:        rand.New(rand.NewSource(seed)),
		reuseEvery: reuseEvery,
		msg:        make([]byte, code.K),
	}, nil
}

// next returns a fresh copy of the base codeword, regenerating the
// message on trial 0 and every reuseEvery trials.
func (b *trialBase) next(i int) ([]byte, error) {
	if b.cw == nil || (b.reuseEvery > 0 && i%b.reuseEvery == 0) {
		b.rng.Read(b.msg)
		cw, err := b.rs.Encode(b.msg)
		if err != nil {
			return nil, err
		}
		b.cw = cw
	}
	return append([]byte(nil), b.cw...), nil
}

// randomFault returns cnt errors at distinct positions of an n symbol
// codeword with non-zero patterns.
func randomFault(n, cnt int, rng *rand.Rand) faultmodel.Fault {
	if cnt > n {
		cnt = n
	}
	if cnt < 0 {
		cnt = 0
	}
	f := faultmodel.Fault{Type: faultmodel.OutOfModel}
	for _, p := range rng.Perm(n)[:cnt] {
		f.Errors = append(f.Errors, faultmodel.Error{Pos: p, Pattern: byte(rng.Intn(255) + 1)})
	}
	return f
}

// RunRandom runs trials with numErrors uniformly placed symbol errors each.
func RunRandom(code Code, trials int, seed int64, numErrors, reuseEvery int, p Policy) (*Counters, error) {
	b, err := newTrialBase(code, seed, reuseEvery)
	if err != nil {
		return nil, err
	}
	log.Debugf("rs(%s): random, trials: %d, errors: %d", code, trials, numErrors)

	c := new(Counters)
	for i := 0; i < trials; i++ {
		cw, err := b.next(i)
		if err != nil {
			return nil, err
		}
		faultmodel.Apply(cw, randomFault(code.N, numErrors, b.rng))
		o, err := Classify(b.rs, cw, b.msg, p)
		if err != nil {
			return nil, err
		}
		c.Add(o)
	}
	return c, nil
}

// RunExhaustive tries every non-zero pattern at every position of one
// random codeword.
func RunExhaustive(code Code, seed int64, p Policy) (*Counters, error) {
	b, err := newTrialBase(code, seed, 0)
	if err != nil {
		return nil, err
	}
	log.Debugf("rs(%s): exhaustive single symbol", code)

	base, err := b.next(0)
	if err != nil {
		return nil, err
	}
	c := new(Counters)
	cw := make([]byte, len(base))
	for pos := 0; pos < code.N; pos++ {
		for pat := 1; pat < 256; pat++ {
			copy(cw, base)
			cw[pos] ^= byte(pat)
			o, err := Classify(b.rs, cw, b.msg, p)
			if err != nil {
				return nil, err
			}
			c.Add(o)
		}
	}
	return c, nil
}

// RunFaultModel runs trials with faults drawn from dist.
func RunFaultModel(code Code, trials int, seed int64, dist faultmodel.Distribution, reuseEvery int, correlated bool, p Policy) (*FaultModelCounters, error) {
	b, err := newTrialBase(code, seed, reuseEvery)
	if err != nil {
		return nil, err
	}
	log.Debugf("rs(%s): fault model, trials: %d, dist: %s, correlated: %t", code, trials, dist, correlated)

	c := NewFaultModelCounters()
	for i := 0; i < trials; i++ {
		cw, err := b.next(i)
		if err != nil {
			return nil, err
		}
		f := faultmodel.Generate(code.N, code.K, dist, b.rng, correlated)
		faultmodel.Apply(cw, f)
		o, err := Classify(b.rs, cw, b.msg, p)
		if err != nil {
			return nil, err
		}
		c.Add(f.Type, o)
	}
	return c, nil
}

// Run runs the trials s describes for one code and returns its CSV rows.
// s must not change while Run is running, call Validate first to fix the seed.
func Run(code Code, s *Settings) ([][]string, error) {
	p := Policy{EnforceContiguous: s.Contiguous}
	seed := s.SeedValue()
	switch s.Mode {
	case ModeRandom:
		c, err := RunRandom(code, s.Trials, seed, s.Errors, s.ReuseEvery, p)
		if err != nil {
			return nil, err
		}
		return [][]string{c.Row(code)}, nil
	case ModeExhaustive:
		c, err := RunExhaustive(code, seed, p)
		if err != nil {
			return nil, err
		}
		return [][]string{c.Row(code)}, nil
	case ModeFaultModel:
		dist, err := s.Distribution()
		if err != nil {
			return nil, err
		}
		c, err := RunFaultModel(code, s.Trials, seed, dist, s.ReuseEvery, s.Correlated, p)
		if err != nil {
			return nil, err
		}
		for _, ts := range c.Summary() {
			log.Debugf("rs(%s): %s: trials: %d, corrected: %.6f, silent: %.6f",
				code, ts.Type, ts.Trials, ts.CorrectedRate, ts.SilentRate)
		}
		return c.Rows(code), nil
	}
	return nil, errors.Errorf("unknown mode: %q", s.Mode)
}
