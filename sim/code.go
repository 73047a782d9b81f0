// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// Package sim runs Monte Carlo and exhaustive error correction trials
// against Reed-Solomon codes and aggregates the outcomes.
package sim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

var log = logging.MustGetLogger("rsecc/sim")

// Code is an RS(N, K) configuration.
type Code struct {
	N int
	K int
}

// NSym returns the parity symbol count.
func (c Code) NSym() int { return c.N - c.K }

// String returns "n,k".
func (c Code) String() string { return fmt.Sprintf("%d,%d", c.N, c.K) }

// DefaultCodes returns RS(34,32), RS(36,32), RS(68,64) and RS(72,64).
func DefaultCodes() []Code {
	return []Code{
		{N: 34, K: 32},
		{N: 36, K: 32},
		{N: 68, K: 64},
		{N: 72, K: 64},
	}
}

// ParseCode parses "n,k".
func ParseCode(s string) (Code, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Code{}, errors.Errorf("illegal rs code %q: want n,k", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Code{}, errors.Wrapf(err, "illegal rs code %q", s)
	}
	k, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Code{}, errors.Wrapf(err, "illegal rs code %q", s)
	}
	if k <= 0 || k >= n || n > 255 {
		return Code{}, errors.Errorf("illegal rs code %q: need 0 < k < n <= 255", s)
	}
	return Code{N: n, K: k}, nil
}

// SelectCodes returns the codes named by keys in the order given,
// duplicates removed. Empty keys select DefaultCodes.
func SelectCodes(keys []string) ([]Code, error) {
	if len(keys) == 0 {
		return DefaultCodes(), nil
	}
	seen := make(map[Code]bool, len(keys))
	codes := make([]Code, 0, len(keys))
	for _, key := range keys {
		c, err := ParseCode(key)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		codes = append(codes, c)
	}
	return codes, nil
}
