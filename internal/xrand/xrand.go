// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package xrand implements the pinned pseudorandom source of the
// cpubabel draw protocol.
//
// The generator is splitmix64 (Steele, Lea, Flood 2014), chosen
// because it is trivially specified, has a single 64-bit word of
// state, and its reference outputs are easy to reproduce in any
// language. Bounded draws use the multiply-high reduction, so every
// primitive draw advances the state by exactly one step regardless of
// the bound. That fixed consumption is what makes the draw sequence a
// contract: any implementation that reproduces these two definitions
// reproduces every design point bit for bit.
//
package xrand

import "math/bits"

// Source is a splitmix64 generator. The zero value is a valid source
// seeded with 0.
//
type Source struct {
	state uint64
}

// New returns a source seeded with seed.
//
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// Uint64 returns the next output of the generator, advancing the
// state by one step.
//
func (s *Source) Uint64() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Uint64n returns a value in [0, n) using the multiply-high
// reduction: the high 64 bits of Uint64() * n. Exactly one generator
// step is consumed for any n. n must be > 0.
//
func (s *Source) Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("xrand: Uint64n with n == 0")
	}
	hi, _ := bits.Mul64(s.Uint64(), n)
	return hi
}

// Intn returns a value in [0, n) as an int. n must be > 0.
//
func (s *Source) Intn(n int) int {
	if n <= 0 {
		panic("xrand: Intn with n <= 0")
	}
	return int(s.Uint64n(uint64(n)))
}
