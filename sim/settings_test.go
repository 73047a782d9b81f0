// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	"encoding/csv"
	"io/ioutil"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Settings", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = ioutil.TempDir("", "rsecc-sim")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("overlays a YAML file on the defaults", func() {
		path := filepath.Join(dir, "sim.yaml")
		conf := "mode: random\ntrials: 77\nseed: 5\nerrors: 2\nrs_codes: [\"72,64\", \"34,32\"]\ncontiguous: true\n"
		Expect(ioutil.WriteFile(path, []byte(conf), 0644)).To(Succeed())

		s := DefaultSettings()
		Expect(LoadSettings(path, s)).To(Succeed())
		Expect(s.Validate()).To(Succeed())
		Expect(s.Mode).To(Equal(ModeRandom))
		Expect(s.Trials).To(Equal(77))
		Expect(s.Seed).ToNot(BeNil())
		Expect(*s.Seed).To(Equal(int64(5)))
		Expect(s.Errors).To(Equal(2))
		Expect(s.ReuseEvery).To(Equal(13))
		Expect(s.Contiguous).To(BeTrue())

		codes, err := SelectCodes(s.Codes)
		Expect(err).ToNot(HaveOccurred())
		Expect(codes).To(Equal([]Code{{N: 72, K: 64}, {N: 34, K: 32}}))
	})

	It("keeps an explicit zero seed", func() {
		path := filepath.Join(dir, "zero.yaml")
		Expect(ioutil.WriteFile(path, []byte("seed: 0\n"), 0644)).To(Succeed())

		s := DefaultSettings()
		Expect(LoadSettings(path, s)).To(Succeed())
		Expect(s.Validate()).To(Succeed())
		Expect(s.Seed).ToNot(BeNil())
		Expect(*s.Seed).To(BeZero())
		Expect(s.SeedValue()).To(BeZero())
	})

	It("picks a seed when none is set", func() {
		s := DefaultSettings()
		Expect(s.Seed).To(BeNil())
		Expect(s.Validate()).To(Succeed())
		Expect(s.Seed).ToNot(BeNil())
		seed := *s.Seed
		Expect(s.Validate()).To(Succeed())
		Expect(*s.Seed).To(Equal(seed))
	})

	It("fails on a missing file", func() {
		Expect(LoadSettings(filepath.Join(dir, "none.yaml"), DefaultSettings())).ToNot(Succeed())
	})

	It("validates", func() {
		s := DefaultSettings()
		s.Mode = ModeExhaustive
		s.Errors = 2
		Expect(s.Validate()).ToNot(Succeed())

		s = DefaultSettings()
		s.Dist = "1,2,3"
		Expect(s.Validate()).ToNot(Succeed())

		s = DefaultSettings()
		s.Codes = []string{"32,34"}
		Expect(s.Validate()).ToNot(Succeed())

		s = DefaultSettings()
		s.LogLevel = "LOUD"
		Expect(s.Validate()).ToNot(Succeed())

		s = DefaultSettings()
		s.ReuseEvery = 0
		s.Errors = 0
		Expect(s.Validate()).To(Succeed())
		Expect(s.ReuseEvery).To(Equal(1))
		Expect(s.Errors).To(Equal(1))
	})

	It("selects default codes", func() {
		codes, err := SelectCodes(nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(codes).To(Equal(DefaultCodes()))

		codes, err = SelectCodes([]string{"36,32", " 36, 32"})
		Expect(err).ToNot(HaveOccurred())
		Expect(codes).To(Equal([]Code{{N: 36, K: 32}}))
		Expect(codes[0].NSym()).To(Equal(4))
		Expect(codes[0].String()).To(Equal("36,32"))
	})

	It("writes CSV with headers", func() {
		path := filepath.Join(dir, "out.csv")
		c := &Counters{Trials: 4, Corrected: 3, Silent: 1}
		Expect(WriteCSV([][]string{c.Row(Code{N: 34, K: 32})}, path)).To(Succeed())

		f, err := os.Open(path)
		Expect(err).ToNot(HaveOccurred())
		defer f.Close()
		recs, err := csv.NewReader(f).ReadAll()
		Expect(err).ToNot(HaveOccurred())
		Expect(recs).To(Equal([][]string{
			csvHeaders,
			{"34", "32", "2", "4", "3", "0", "1", "0.750000", "0.000000", "0.250000"},
		}))
	})

	It("writes fault model CSV with headers", func() {
		path := filepath.Join(dir, "fm.csv")
		c := NewFaultModelCounters()
		Expect(WriteFaultModelCSV(c.Rows(Code{N: 68, K: 64}), path)).To(Succeed())

		f, err := os.Open(path)
		Expect(err).ToNot(HaveOccurred())
		defer f.Close()
		recs, err := csv.NewReader(f).ReadAll()
		Expect(err).ToNot(HaveOccurred())
		Expect(recs).To(HaveLen(6))
		Expect(recs[0]).To(Equal(faultModelCSVHeaders))
		Expect(recs[1]).To(Equal([]string{"68", "64", "4", "single_bit_1sym", "0", "0", "0", "0", "0.000000", "0.000000", "0.000000"}))
	})
})
