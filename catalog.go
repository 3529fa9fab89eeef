// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// DecoderStyle selects the instruction decoder variant of a core.
//
type DecoderStyle uint8

// Decoder variants.
const (
	DecoderHardwired DecoderStyle = iota
	DecoderMicrocoded
)

func (d DecoderStyle) String() string {
	switch d {
	case DecoderHardwired:
		return "hardwired"
	case DecoderMicrocoded:
		return "microcoded"
	default:
		return "decoder(" + strconv.Itoa(int(d)) + ")"
	}
}

// ExecTopology selects the execution unit layout of a core.
//
type ExecTopology uint8

// Execution unit layouts.
const (
	// ExecSingleALU routes both arithmetic and address math through
	// one ALU.
	ExecSingleALU ExecTopology = iota
	// ExecSplitAGU adds a dedicated address generation unit next to
	// the ALU.
	ExecSplitAGU
)

func (e ExecTopology) String() string {
	switch e {
	case ExecSingleALU:
		return "single_alu"
	case ExecSplitAGU:
		return "split_agu_alu"
	default:
		return "exec(" + strconv.Itoa(int(e)) + ")"
	}
}

// MemoryStyle selects the memory interface variant of a core.
//
type MemoryStyle uint8

// Memory interface variants.
const (
	// MemoryFlat is a plain single cycle RAM interface.
	MemoryFlat MemoryStyle = iota
	// MemoryCached fronts the RAM with a small direct mapped I-cache.
	MemoryCached
)

func (m MemoryStyle) String() string {
	switch m {
	case MemoryFlat:
		return "flat"
	case MemoryCached:
		return "cached"
	default:
		return "memory(" + strconv.Itoa(int(m)) + ")"
	}
}

// A Catalog is the closed enumeration of every design axis, plus the
// search lexicon. It is built once by DefaultCatalog, never mutated
// afterwards, and shared by reference between the Sampler, the
// composer and the Ranker so that generation and search agree on the
// variant definitions.
//
type Catalog struct {
	// RegisterCounts are the selectable register file sizes.
	RegisterCounts []int
	// RegisterNames are the architectural register names, in
	// encoding order. The first RegisterCount names of a point are
	// its visible registers.
	RegisterNames []string
	// Instructions is the fixed instruction set shared by every
	// design point. It is a catalog constant, not a sampled axis.
	Instructions []string
	// AddressingModes are the selectable addressing mode codes:
	// 1: [reg], 2: [reg+imm], 3: [reg+reg].
	AddressingModes []int
	// DecoderStyles, PipelineDepths, ExecTopologies and MemoryStyles
	// enumerate the remaining microarchitecture axes.
	DecoderStyles  []DecoderStyle
	PipelineDepths []int
	ExecTopologies []ExecTopology
	MemoryStyles   []MemoryStyle

	// Lexicon maps descriptive query words to partial constraints.
	Lexicon Lexicon
}

// DefaultCatalog returns the catalog of the micro-x86-64 design
// space. Callers must treat the result as read-only.
//
func DefaultCatalog() *Catalog {
	return &Catalog{
		RegisterCounts: []int{4, 6, 8},
		RegisterNames: []string{
			"RAX", "RBX", "RCX", "RDX", "R8", "R9", "R10", "R11",
		},
		Instructions: []string{
			"ADD", "SUB", "AND", "OR", "XOR", "INC", "DEC",
			"MOV", "JMP", "CMP", "JE", "JNE", "PUSH", "POP",
		},
		AddressingModes: []int{1, 2, 3},
		DecoderStyles:   []DecoderStyle{DecoderHardwired, DecoderMicrocoded},
		PipelineDepths:  []int{2, 3, 4},
		ExecTopologies:  []ExecTopology{ExecSingleALU, ExecSplitAGU},
		MemoryStyles:    []MemoryStyle{MemoryFlat, MemoryCached},
		Lexicon:         defaultLexicon(),
	}
}

// Validate checks that every field of p lies within the catalog's
// enumerated options and that the addressing mode set is a non empty,
// strictly ascending subset of the catalog's modes. A non-nil error
// indicates a point that must not reach rendering.
//
func (cat *Catalog) Validate(p DesignPoint) error {
	if !containsInt(cat.RegisterCounts, p.RegisterCount) {
		return errors.Errorf("register count %d not in catalog", p.RegisterCount)
	}
	if len(p.AddressingModes) == 0 {
		return errors.New("empty addressing mode set")
	}
	if !sort.IntsAreSorted(p.AddressingModes) {
		return errors.Errorf("addressing modes %v not in canonical order", p.AddressingModes)
	}
	for i, m := range p.AddressingModes {
		if !containsInt(cat.AddressingModes, m) {
			return errors.Errorf("addressing mode %d not in catalog", m)
		}
		if i > 0 && p.AddressingModes[i-1] == m {
			return errors.Errorf("duplicate addressing mode %d", m)
		}
	}
	if !containsDecoder(cat.DecoderStyles, p.Decoder) {
		return errors.Errorf("decoder style %q not in catalog", p.Decoder)
	}
	if !containsInt(cat.PipelineDepths, p.PipelineDepth) {
		return errors.Errorf("pipeline depth %d not in catalog", p.PipelineDepth)
	}
	if !containsExec(cat.ExecTopologies, p.Exec) {
		return errors.Errorf("execution topology %q not in catalog", p.Exec)
	}
	if !containsMemory(cat.MemoryStyles, p.Memory) {
		return errors.Errorf("memory style %q not in catalog", p.Memory)
	}
	return nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsDecoder(s []DecoderStyle, v DecoderStyle) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsExec(s []ExecTopology, v ExecTopology) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func containsMemory(s []MemoryStyle, v MemoryStyle) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
