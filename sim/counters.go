// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	"strconv"

	"github.com/templexxx/rsecc/faultmodel"
)

// Counters aggregates trial outcomes.
type Counters struct {
	Trials        int
	Corrected     int
	Uncorrectable int
	Silent        int
}

// Add records one outcome.
func (c *Counters) Add(o Outcome) {
	c.Trials++
	switch o.Verdict {
	case Corrected:
		c.Corrected++
	case Uncorrectable:
		c.Uncorrectable++
	default:
		c.Silent++
	}
}

// Rates returns corrected, uncorrectable and silent fractions.
// Zero trials give zero rates.
func (c *Counters) Rates() (corrected, uncorrectable, silent float64) {
	t := float64(c.Trials)
	if c.Trials == 0 {
		t = 1
	}
	return float64(c.Corrected) / t, float64(c.Uncorrectable) / t, float64(c.Silent) / t
}

func (c *Counters) cells() []string {
	cr, ur, sr := c.Rates()
	return []string{
		strconv.Itoa(c.Trials),
		strconv.Itoa(c.Corrected),
		strconv.Itoa(c.Uncorrectable),
		strconv.Itoa(c.Silent),
		formatRate(cr),
		formatRate(ur),
		formatRate(sr),
	}
}

// Row returns the CSV row of c for code.
func (c *Counters) Row(code Code) []string {
	return append(codeCells(code), c.cells()...)
}

// FaultModelCounters aggregates outcomes per fault type.
type FaultModelCounters struct {
	Trials int
	ByType map[faultmodel.Type]*Counters
}

// NewFaultModelCounters returns counters with every fault type present.
func NewFaultModelCounters() *FaultModelCounters {
	c := &FaultModelCounters{ByType: make(map[faultmodel.Type]*Counters)}
	for _, t := range faultmodel.Types() {
		c.ByType[t] = new(Counters)
	}
	return c
}

// Add records one outcome of fault type t.
// Unknown types count toward Trials only.
func (c *FaultModelCounters) Add(t faultmodel.Type, o Outcome) {
	c.Trials++
	if tc, ok := c.ByType[t]; ok {
		tc.Add(o)
	}
}

// Rows returns one CSV row per fault type, in sampling order.
func (c *FaultModelCounters) Rows(code Code) [][]string {
	rows := make([][]string, 0, len(c.ByType))
	for _, t := range faultmodel.Types() {
		tc, ok := c.ByType[t]
		if !ok {
			tc = new(Counters)
		}
		row := append(codeCells(code), t.String())
		rows = append(rows, append(row, tc.cells()...))
	}
	return rows
}

// TypeSummary is the aggregate of one fault type.
type TypeSummary struct {
	Type faultmodel.Type
	Counters
	CorrectedRate     float64
	UncorrectableRate float64
	SilentRate        float64
}

// Summary returns per type aggregates in sampling order.
func (c *FaultModelCounters) Summary() []TypeSummary {
	s := make([]TypeSummary, 0, len(c.ByType))
	for _, t := range faultmodel.Types() {
		tc, ok := c.ByType[t]
		if !ok {
			tc = new(Counters)
		}
		ts := TypeSummary{Type: t, Counters: *tc}
		ts.CorrectedRate, ts.UncorrectableRate, ts.SilentRate = tc.Rates()
		s = append(s, ts)
	}
	return s
}

func codeCells(code Code) []string {
	return []string{strconv.Itoa(code.N), strconv.Itoa(code.K), strconv.Itoa(code.NSym())}
}

func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', 6, 64)
}
