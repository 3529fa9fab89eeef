// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel

import (
	"crypto/sha256"
	"encoding/binary"
	"sort"

	"github.com/cpubabel/cpubabel/internal/xrand"
)

// A Sampler deterministically maps seed strings to design points.
// Samplers are stateless and safe for concurrent use; independent
// seeds may be sampled in parallel without coordination.
//
// Draw protocol v1. The seed string is digested with SHA-256 and the
// first 8 digest bytes, read big-endian, seed a splitmix64 generator
// (see internal/xrand). The generator then performs the following
// bounded draws, in this exact order, each consuming one generator
// step:
//
//	1. register count: uniform index into Catalog.RegisterCounts
//	2. subset size k: uniform in [1, len(Catalog.AddressingModes)]
//	3. k partial Fisher-Yates selection draws over a copy of
//	   Catalog.AddressingModes (draw i picks a uniform index in
//	   [i, len) and swaps it into position i)
//	4. decoder style: uniform index into Catalog.DecoderStyles
//	5. pipeline depth: uniform index into Catalog.PipelineDepths
//	6. execution topology: uniform index into Catalog.ExecTopologies
//	7. memory style: uniform index into Catalog.MemoryStyles
//
// The selected addressing modes are then sorted ascending; ordering
// within the set carries no meaning and the canonical form keeps the
// content hash order independent. The instruction set is the catalog
// constant and consumes no draw.
//
// The protocol is the reproducibility contract of the whole system:
// digest, generator and draw order may only change together with a
// new protocol version.
//
type Sampler struct {
	cat *Catalog
}

// NewSampler returns a sampler drawing from cat. cat must not be
// mutated afterwards.
//
func NewSampler(cat *Catalog) *Sampler {
	return &Sampler{cat: cat}
}

// Sample derives the design point named by seed. It is a pure, total
// function: every seed string, including the empty string, maps to a
// valid point, and the same seed maps to the same point on every
// call, on every machine.
//
func (s *Sampler) Sample(seed string) DesignPoint {
	sum := sha256.Sum256([]byte(seed))
	src := xrand.New(binary.BigEndian.Uint64(sum[:8]))
	cat := s.cat

	regs := cat.RegisterCounts[src.Intn(len(cat.RegisterCounts))]

	k := 1 + src.Intn(len(cat.AddressingModes))
	pool := append([]int(nil), cat.AddressingModes...)
	for i := 0; i < k; i++ {
		j := i + src.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	modes := pool[:k]
	sort.Ints(modes)

	return DesignPoint{
		RegisterCount:   regs,
		AddressingModes: modes,
		Decoder:         cat.DecoderStyles[src.Intn(len(cat.DecoderStyles))],
		PipelineDepth:   cat.PipelineDepths[src.Intn(len(cat.PipelineDepths))],
		Exec:            cat.ExecTopologies[src.Intn(len(cat.ExecTopologies))],
		Memory:          cat.MemoryStyles[src.Intn(len(cat.MemoryStyles))],
		Instructions:    cat.Instructions,
	}
}
