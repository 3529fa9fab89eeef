// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel_test

import (
	"testing"

	bb "github.com/cpubabel/cpubabel"
)

func TestValidateRejects(t *testing.T) {
	cat := bb.DefaultCatalog()
	good := point(4, []int{1, 3}, bb.DecoderHardwired, 2, bb.ExecSingleALU, bb.MemoryFlat)
	if err := cat.Validate(good); err != nil {
		t.Fatalf("valid point rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*bb.DesignPoint)
	}{
		{"register count", func(p *bb.DesignPoint) { p.RegisterCount = 5 }},
		{"empty modes", func(p *bb.DesignPoint) { p.AddressingModes = nil }},
		{"unknown mode", func(p *bb.DesignPoint) { p.AddressingModes = []int{1, 4} }},
		{"unsorted modes", func(p *bb.DesignPoint) { p.AddressingModes = []int{3, 1} }},
		{"duplicate mode", func(p *bb.DesignPoint) { p.AddressingModes = []int{1, 1} }},
		{"decoder", func(p *bb.DesignPoint) { p.Decoder = bb.DecoderStyle(9) }},
		{"depth", func(p *bb.DesignPoint) { p.PipelineDepth = 7 }},
		{"exec", func(p *bb.DesignPoint) { p.Exec = bb.ExecTopology(9) }},
		{"memory", func(p *bb.DesignPoint) { p.Memory = bb.MemoryStyle(9) }},
	}
	for _, c := range cases {
		p := good
		p.AddressingModes = append([]int(nil), good.AddressingModes...)
		c.mutate(&p)
		if err := cat.Validate(p); err == nil {
			t.Errorf("%s: corrupted point accepted", c.name)
		}
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	cat := bb.DefaultCatalog()
	if len(cat.Instructions) != 14 {
		t.Errorf("instruction set size %d, want 14", len(cat.Instructions))
	}
	if len(cat.RegisterNames) < cat.RegisterCounts[len(cat.RegisterCounts)-1] {
		t.Error("fewer register names than the largest register count")
	}
	for _, w := range []string{
		"cisc", "risc_like", "compact", "powerful",
		"fast_memory", "simple_memory", "deep_pipeline", "shallow_pipeline",
	} {
		if _, ok := cat.Lexicon[w]; !ok {
			t.Errorf("lexicon missing %q", w)
		}
	}
}
