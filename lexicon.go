// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package cpubabel

// A Constraint is a partial design point: the subset of fields a
// query cares about. Nil pointer fields and a nil AddressingModes
// slice mean "no preference".
//
type Constraint struct {
	RegisterCount *int
	// AddressingModes, when non-nil, is the set of modes a matching
	// point is allowed to use: the point's mode set must be contained
	// in it.
	AddressingModes []int
	Decoder         *DecoderStyle
	PipelineDepth   *int
	Exec            *ExecTopology
	Memory          *MemoryStyle
}

// Empty reports whether c constrains nothing.
//
func (c Constraint) Empty() bool {
	return c.RegisterCount == nil && c.AddressingModes == nil &&
		c.Decoder == nil && c.PipelineDepth == nil &&
		c.Exec == nil && c.Memory == nil
}

// merge overlays o onto c, field by field. Fields set in o win.
func (c *Constraint) merge(o Constraint) {
	if o.RegisterCount != nil {
		c.RegisterCount = o.RegisterCount
	}
	if o.AddressingModes != nil {
		c.AddressingModes = o.AddressingModes
	}
	if o.Decoder != nil {
		c.Decoder = o.Decoder
	}
	if o.PipelineDepth != nil {
		c.PipelineDepth = o.PipelineDepth
	}
	if o.Exec != nil {
		c.Exec = o.Exec
	}
	if o.Memory != nil {
		c.Memory = o.Memory
	}
}

// Distance returns the mismatch cost between c and p: the sum over
// constrained fields of a per-field cost that is 0 on a match and 1
// otherwise. Scalar fields match on equality; the addressing mode
// field matches when the point's mode set is contained in the
// constraint's allowed set. An empty constraint is at distance 0 from
// every point, which callers must read as "no preference", not
// "perfect match".
//
func (c Constraint) Distance(p DesignPoint) int {
	d := 0
	if c.RegisterCount != nil && p.RegisterCount != *c.RegisterCount {
		d++
	}
	if c.AddressingModes != nil && !modesWithin(p.AddressingModes, c.AddressingModes) {
		d++
	}
	if c.Decoder != nil && p.Decoder != *c.Decoder {
		d++
	}
	if c.PipelineDepth != nil && p.PipelineDepth != *c.PipelineDepth {
		d++
	}
	if c.Exec != nil && p.Exec != *c.Exec {
		d++
	}
	if c.Memory != nil && p.Memory != *c.Memory {
		d++
	}
	return d
}

// modesWithin reports whether every mode in got is present in allowed.
func modesWithin(got, allowed []int) bool {
	for _, m := range got {
		if !containsInt(allowed, m) {
			return false
		}
	}
	return true
}

// A Lexicon maps descriptive words to partial constraints.
//
type Lexicon map[string]Constraint

// Resolve composes the constraints of words into a single target
// constraint. Words are applied in input order and later words
// override earlier ones field by field, so "simple_memory
// fast_memory" means cached. Words missing from the lexicon
// contribute nothing; they are never an error.
//
func (l Lexicon) Resolve(words []string) Constraint {
	var c Constraint
	for _, w := range words {
		if e, ok := l[w]; ok {
			c.merge(e)
		}
	}
	return c
}

func intp(v int) *int { return &v }

func decoderp(v DecoderStyle) *DecoderStyle { return &v }

func memoryp(v MemoryStyle) *MemoryStyle { return &v }

func defaultLexicon() Lexicon {
	return Lexicon{
		"cisc":             {Decoder: decoderp(DecoderMicrocoded)},
		"risc_like":        {Decoder: decoderp(DecoderHardwired)},
		"compact":          {RegisterCount: intp(4), AddressingModes: []int{1}},
		"powerful":         {RegisterCount: intp(8), AddressingModes: []int{1, 2, 3}},
		"fast_memory":      {Memory: memoryp(MemoryCached)},
		"simple_memory":    {Memory: memoryp(MemoryFlat)},
		"deep_pipeline":    {PipelineDepth: intp(4)},
		"shallow_pipeline": {PipelineDepth: intp(2)},
	}
}
