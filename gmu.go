// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

import "github.com/templexxx/cpu"

// CPU Features.
const (
	featAVX512 = iota
	featAVX2
	featBase // No supported features, using basic way.
)

func getCPUFeature() int {
	if hasAVX512() {
		return featAVX512
	} else if cpu.X86.HasAVX2 {
		return featAVX2
	}
	return featBase
}

func hasAVX512() (ok bool) {
	return cpu.X86.HasAVX512VL &&
		cpu.X86.HasAVX512BW &&
		cpu.X86.HasAVX512F &&
		cpu.X86.HasAVX512DQ
}

func featToStr(f int) string {
	switch f {
	case featAVX512:
		return "AVX512"
	case featAVX2:
		return "AVX2"
	case featBase:
		return "Base"
	default:
		return "Unknown"
	}
}

// CPUFeature returns the name of the widest SIMD extension found on this CPU.
func CPUFeature() string {
	return featToStr(getCPUFeature())
}

// Coefficient multiply by vector(input).
// Then update result(output) by XOR old result(output).
func mulVectXOR(c byte, input, output []byte) {
	if c == 0 {
		return
	}
	for i := 0; i < len(input); i++ {
		output[i] ^= gfMul(c, input[i])
	}
}
