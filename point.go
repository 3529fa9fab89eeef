// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// hashVersion tags the canonical encoding fed to the content hash.
// Bump it if the encoding or the field set ever changes.
const hashVersion = "cpubabel/v1"

// A DesignPoint is one fully specified point in the microarchitecture
// design space. Points are immutable values: they are derived fresh
// from a seed by Sampler.Sample and never modified afterwards.
//
type DesignPoint struct {
	// RegisterCount is the register file size.
	RegisterCount int
	// AddressingModes is the supported addressing mode set, kept in
	// ascending order (canonical form, the set is order independent).
	AddressingModes []int
	// Decoder, PipelineDepth, Exec and Memory select the
	// microarchitecture variants.
	Decoder       DecoderStyle
	PipelineDepth int
	Exec          ExecTopology
	Memory        MemoryStyle
	// Instructions is the instruction set. Always the catalog
	// constant; carried on the point so that the content hash covers
	// the complete architectural contract.
	Instructions []string
}

func (p DesignPoint) String() string {
	modes := make([]string, len(p.AddressingModes))
	for i, m := range p.AddressingModes {
		modes[i] = strconv.Itoa(m)
	}
	return fmt.Sprintf("regs=%d modes={%s} decoder=%s depth=%d exec=%s memory=%s",
		p.RegisterCount, strings.Join(modes, ","), p.Decoder,
		p.PipelineDepth, p.Exec, p.Memory)
}

// encode returns the canonical byte encoding of p, the input of the
// content hash. One line per field, fields in declaration order,
// addressing modes in their canonical ascending order.
//
func (p DesignPoint) encode() []byte {
	var b strings.Builder
	b.WriteString(hashVersion)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "regs=%d\n", p.RegisterCount)
	b.WriteString("modes=")
	for i, m := range p.AddressingModes {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(m))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "decoder=%s\n", p.Decoder)
	fmt.Fprintf(&b, "depth=%d\n", p.PipelineDepth)
	fmt.Fprintf(&b, "exec=%s\n", p.Exec)
	fmt.Fprintf(&b, "mem=%s\n", p.Memory)
	b.WriteString("isa=" + strings.Join(p.Instructions, ",") + "\n")
	return []byte(b.String())
}

// ContentHash returns the deterministic artifact identifier of p:
// the first 8 hex digits of the SHA-256 digest of the canonical
// encoding. Two seeds that collide on the same point share the same
// identifier, which is a defined merge, not a bug: identical points
// are the identical design.
//
func (p DesignPoint) ContentHash() string {
	sum := sha256.Sum256(p.encode())
	return hex.EncodeToString(sum[:4])
}
