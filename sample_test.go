// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"strconv"
	"testing"

	bb "github.com/cpubabel/cpubabel"
)

func TestSampleDeterminism(t *testing.T) {
	cat := bb.DefaultCatalog()
	s1 := bb.NewSampler(cat)
	s2 := bb.NewSampler(cat)

	seeds := []string{"", "seed_0", "a", "the quick brown fox"}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		seeds = append(seeds, strconv.FormatUint(r.Uint64(), 36))
	}
	for _, seed := range seeds {
		p1, p2 := s1.Sample(seed), s2.Sample(seed)
		if !reflect.DeepEqual(p1, p2) {
			t.Fatalf("seed %q: %v != %v", seed, p1, p2)
		}
	}
}

func TestSampleValidity(t *testing.T) {
	cat := bb.DefaultCatalog()
	s := bb.NewSampler(cat)
	for i := 0; i < 2000; i++ {
		seed := "validity_" + strconv.Itoa(i)
		p := s.Sample(seed)
		if err := cat.Validate(p); err != nil {
			t.Fatalf("seed %q: %v", seed, err)
		}
		if len(p.AddressingModes) == 0 {
			t.Fatalf("seed %q: empty addressing mode set", seed)
		}
		if len(p.Instructions) != len(cat.Instructions) {
			t.Fatalf("seed %q: instruction set was sampled", seed)
		}
	}
}

// Pinned outputs of draw protocol v1 (SHA-256 digest + splitmix64).
// Recorded from the protocol definition; any change here is a
// protocol version bump, not a test update.
func TestSamplePinnedVectors(t *testing.T) {
	want := map[string]bb.DesignPoint{
		"":       point(8, []int{1, 2, 3}, bb.DecoderMicrocoded, 2, bb.ExecSingleALU, bb.MemoryCached),
		"seed_0": point(8, []int{1, 2, 3}, bb.DecoderHardwired, 2, bb.ExecSplitAGU, bb.MemoryCached),
		"seed_1": point(6, []int{2}, bb.DecoderHardwired, 3, bb.ExecSplitAGU, bb.MemoryFlat),
		"seed_2": point(6, []int{3}, bb.DecoderHardwired, 4, bb.ExecSingleALU, bb.MemoryCached),
		"seed_3": point(4, []int{2, 3}, bb.DecoderMicrocoded, 2, bb.ExecSingleALU, bb.MemoryCached),
		"seed_4": point(4, []int{1, 3}, bb.DecoderHardwired, 4, bb.ExecSingleALU, bb.MemoryFlat),
		"seed_5": point(4, []int{1, 2, 3}, bb.DecoderHardwired, 4, bb.ExecSplitAGU, bb.MemoryFlat),
		"seed_6": point(4, []int{3}, bb.DecoderMicrocoded, 4, bb.ExecSplitAGU, bb.MemoryFlat),
		"seed_7": point(6, []int{1, 2, 3}, bb.DecoderHardwired, 3, bb.ExecSplitAGU, bb.MemoryFlat),
		"seed_8": point(8, []int{1, 2, 3}, bb.DecoderHardwired, 2, bb.ExecSingleALU, bb.MemoryFlat),
		"seed_9": point(4, []int{1, 2}, bb.DecoderHardwired, 3, bb.ExecSingleALU, bb.MemoryFlat),
		"test":   point(6, []int{3}, bb.DecoderHardwired, 3, bb.ExecSingleALU, bb.MemoryFlat),
		"babel":  point(4, []int{1, 2}, bb.DecoderHardwired, 3, bb.ExecSingleALU, bb.MemoryFlat),
	}

	s := bb.NewSampler(bb.DefaultCatalog())
	for seed, w := range want {
		if got := s.Sample(seed); !reflect.DeepEqual(got, w) {
			t.Errorf("seed %q:\n got %v\nwant %v", seed, got, w)
		}
	}
}

func point(regs int, modes []int, d bb.DecoderStyle, depth int, e bb.ExecTopology, m bb.MemoryStyle) bb.DesignPoint {
	return bb.DesignPoint{
		RegisterCount:   regs,
		AddressingModes: modes,
		Decoder:         d,
		PipelineDepth:   depth,
		Exec:            e,
		Memory:          m,
		Instructions:    bb.DefaultCatalog().Instructions,
	}
}

func ExampleSampler_Sample() {
	s := bb.NewSampler(bb.DefaultCatalog())
	fmt.Println(s.Sample("seed_0"))
	// Output: regs=8 modes={1,2,3} decoder=hardwired depth=2 exec=split_agu_alu memory=cached
}
