// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

package reedsolomon

import (
	lru "github.com/hashicorp/golang-lru"
)

// Every nsym in [1, 255) fits, so nothing is rebuilt once warmed up.
const genCacheSize = 256

var genCache *lru.Cache

func init() {
	c, err := lru.New(genCacheSize)
	if err != nil {
		panic(err)
	}
	genCache = c
}

// buildGenerator returns g(x) = (x+α^0)(x+α^1)...(x+α^(nsym-1)).
func buildGenerator(nsym int) []byte {
	g := []byte{1}
	for i := 0; i < nsym; i++ {
		g = polyMul(g, []byte{gfExp(i), 1})
	}
	return g
}

// generator returns the cached generator polynomial for nsym parity symbols.
// The result is shared, callers must not modify it.
func generator(nsym int) []byte {
	if v, ok := genCache.Get(nsym); ok {
		return v.([]byte)
	}
	g := buildGenerator(nsym)
	genCache.Add(nsym, g)
	return g
}
