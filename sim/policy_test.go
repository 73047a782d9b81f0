// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package sim

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	reedsolomon "github.com/templexxx/rsecc"
)

type dummyDecoder struct {
	decoded   []byte
	positions []int
	err       error
}

func (d *dummyDecoder) Decode([]byte) ([]byte, []int, error) {
	return d.decoded, d.positions, d.err
}

var _ = Describe("Decode policy", func() {
	Context("positions", func() {
		It("accepts contiguous runs", func() {
			Expect(PositionsContiguous(nil)).To(BeTrue())
			Expect(PositionsContiguous([]int{5})).To(BeTrue())
			Expect(PositionsContiguous([]int{3, 4, 5})).To(BeTrue())
			Expect(PositionsContiguous([]int{9, 8, 7})).To(BeTrue())
		})

		It("rejects gaps", func() {
			Expect(PositionsContiguous([]int{1, 3})).To(BeFalse())
			Expect(PositionsContiguous([]int{0, 1, 3})).To(BeFalse())
			Expect(PositionsContiguous([]int{4, 6, 5, 8})).To(BeFalse())
		})

		It("does not reorder the input", func() {
			p := []int{9, 8, 7}
			PositionsContiguous(p)
			Expect(p).To(Equal([]int{9, 8, 7}))
		})
	})

	Context("classify", func() {
		It("detects suspect locations", func() {
			d := &dummyDecoder{decoded: []byte("OK"), positions: []int{0, 2}}
			o, err := Classify(d, nil, []byte("OK"), Policy{EnforceContiguous: true})
			Expect(err).ToNot(HaveOccurred())
			Expect(o).To(Equal(Outcome{Verdict: Silent, Suspect: true}))
		})

		It("corrects with contiguous locations", func() {
			d := &dummyDecoder{decoded: []byte("DATA"), positions: []int{5, 6}}
			o, err := Classify(d, nil, []byte("DATA"), Policy{EnforceContiguous: true})
			Expect(err).ToNot(HaveOccurred())
			Expect(o).To(Equal(Outcome{Verdict: Corrected}))
		})

		It("ignores locations without the guardrail", func() {
			d := &dummyDecoder{decoded: []byte("OK"), positions: []int{0, 2}}
			o, err := Classify(d, nil, []byte("OK"), Policy{})
			Expect(err).ToNot(HaveOccurred())
			Expect(o.Verdict).To(Equal(Corrected))
		})

		It("is uncorrectable on decoder failure", func() {
			d := &dummyDecoder{err: reedsolomon.ErrTooManyErrors}
			o, err := Classify(d, nil, nil, Policy{})
			Expect(err).ToNot(HaveOccurred())
			Expect(o).To(Equal(Outcome{Verdict: Uncorrectable}))
		})

		It("counts mismatches as silent", func() {
			d := &dummyDecoder{decoded: []byte("wrong")}
			o, err := Classify(d, nil, []byte("expected"), Policy{})
			Expect(err).ToNot(HaveOccurred())
			Expect(o).To(Equal(Outcome{Verdict: Silent}))
		})

		It("returns shape errors", func() {
			d := &dummyDecoder{err: reedsolomon.ErrLengthMismatch}
			_, err := Classify(d, nil, nil, Policy{})
			Expect(errors.Is(err, reedsolomon.ErrLengthMismatch)).To(BeTrue())
		})
	})
})
