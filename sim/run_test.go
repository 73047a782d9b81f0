// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/templexxx/rsecc/faultmodel"
)

var _ = Describe("Trials", func() {
	rs3432 := Code{N: 34, K: 32}
	rs3632 := Code{N: 36, K: 32}

	Context("random", func() {
		It("corrects up to t errors", func() {
			c, err := RunRandom(rs3632, 500, 1, 2, 13, Policy{})
			Expect(err).ToNot(HaveOccurred())
			Expect(*c).To(Equal(Counters{Trials: 500, Corrected: 500}))
		})

		It("does not correct beyond t", func() {
			c, err := RunRandom(rs3432, 300, 7, 3, 13, Policy{})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Trials).To(Equal(300))
			Expect(c.Corrected).To(BeZero())
			Expect(c.Uncorrectable + c.Silent).To(Equal(300))
		})

		It("is deterministic for a seed", func() {
			a, err := RunRandom(rs3432, 200, 42, 2, 5, Policy{})
			Expect(err).ToNot(HaveOccurred())
			b, err := RunRandom(rs3432, 200, 42, 2, 5, Policy{})
			Expect(err).ToNot(HaveOccurred())
			Expect(a).To(Equal(b))
		})
	})

	Context("exhaustive", func() {
		It("corrects every single symbol error", func() {
			c, err := RunExhaustive(rs3432, 3, Policy{EnforceContiguous: true})
			Expect(err).ToNot(HaveOccurred())
			Expect(*c).To(Equal(Counters{Trials: 34 * 255, Corrected: 34 * 255}))
		})
	})

	Context("fault model", func() {
		It("corrects single bit faults", func() {
			dist := faultmodel.Distribution{1, 0, 0, 0, 0}
			c, err := RunFaultModel(rs3432, 300, 9, dist, 13, false, Policy{})
			Expect(err).ToNot(HaveOccurred())
			Expect(c.Trials).To(Equal(300))
			Expect(*c.ByType[faultmodel.SingleBit1Sym]).To(Equal(Counters{Trials: 300, Corrected: 300}))
		})

		It("corrects aligned symbol pairs within t", func() {
			dist := faultmodel.Distribution{0, 0, 1, 0, 0}
			c, err := RunFaultModel(rs3632, 300, 9, dist, 13, false, Policy{EnforceContiguous: true})
			Expect(err).ToNot(HaveOccurred())
			Expect(*c.ByType[faultmodel.EightBit2Sym]).To(Equal(Counters{Trials: 300, Corrected: 300}))
		})

		It("splits trials by fault type", func() {
			c, err := RunFaultModel(rs3632, 1000, 5, faultmodel.DefaultDistribution, 13, true, Policy{})
			Expect(err).ToNot(HaveOccurred())
			sum := 0
			for _, tc := range c.ByType {
				sum += tc.Trials
				Expect(tc.Corrected + tc.Uncorrectable + tc.Silent).To(Equal(tc.Trials))
			}
			Expect(sum).To(Equal(1000))
			Expect(c.Rows(rs3632)).To(HaveLen(len(faultmodel.Types())))
		})
	})

	Context("run", func() {
		It("returns one row per code in random mode", func() {
			s := DefaultSettings()
			s.Mode = ModeRandom
			s.Trials = 50
			Expect(s.Validate()).To(Succeed())
			rows, err := Run(rs3632, s)
			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(Equal([][]string{
				{"36", "32", "4", "50", "50", "0", "0", "1.000000", "0.000000", "0.000000"},
			}))
		})

		It("returns one row per fault type in fault model mode", func() {
			s := DefaultSettings()
			s.Trials = 50
			rows, err := Run(rs3432, s)
			Expect(err).ToNot(HaveOccurred())
			Expect(rows).To(HaveLen(5))
			for i, t := range faultmodel.Types() {
				Expect(rows[i][3]).To(Equal(t.String()))
			}
		})

		It("rejects unknown modes", func() {
			s := DefaultSettings()
			s.Mode = "burst"
			_, err := Run(rs3432, s)
			Expect(err).To(HaveOccurred())
		})
	})
})
