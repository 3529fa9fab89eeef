// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vgen renders design points into Verilog module hierarchies.
//
// Each design axis owns a small library of module templates (register
// file, decoder, execution unit, memory interface); Compose selects
// the variant matching the point on every axis and wires the fixed
// top-level wrapper around them. The wrapper instantiates exactly the
// variant module names chosen here: the declared point and the
// instantiated submodules can never disagree, which is the structural
// invariant this package exists to keep.
//
// The rendered hierarchy is a structurally valid skeleton of the
// design, not a synthesizable, verified core; its textual syntax
// belongs to the external toolchain consuming it.
//
package vgen

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/cpubabel/cpubabel"
)

// A Module is one rendered Verilog module definition.
//
type Module struct {
	// Name is the Verilog module name, as declared in Source and as
	// instantiated by the top-level wrapper.
	Name string
	// Source is the complete module definition text.
	Source string
}

// A Hierarchy is the ordered composition of the modules rendered for
// one design point: register file, decoder, execution unit, memory
// interface, then the top-level wrapper instantiating all of them.
//
type Hierarchy struct {
	// Point is the design point the hierarchy was composed for.
	Point cpubabel.DesignPoint
	// Modules are the component modules, in render order.
	Modules []Module
	// Top is the top-level wrapper.
	Top Module
}

// Compose selects the matching template on every variant axis of p
// and builds the hierarchy around them. The point is validated
// against cat first: a point outside the catalog is a contract
// violation between sampler and composer and fails fast, it is never
// coerced.
//
func Compose(cat *cpubabel.Catalog, p cpubabel.DesignPoint) (*Hierarchy, error) {
	if err := cat.Validate(p); err != nil {
		return nil, errors.Wrap(err, "invalid design point")
	}

	rf := registerFile(p)
	dec := decoder(p)
	exec := execUnit(p)
	mem := memoryInterface(p)

	h := &Hierarchy{
		Point:   p,
		Modules: []Module{rf, dec, exec, mem},
	}
	// The wrapper takes the chosen module names, not the point, so a
	// naming mismatch is impossible by construction.
	h.Top = topLevel(cat, p, rf.Name, dec.Name, exec.Name, mem.Name)
	return h, nil
}

// ID returns the deterministic artifact identifier of the hierarchy:
// the content hash of the design point. Hashing the point rather than
// the seed or the rendered text makes generation idempotent, and
// merges distinct seeds that land on the same point into the same
// artifact.
//
func (h *Hierarchy) ID() string {
	return h.Point.ContentHash()
}

// FileName returns the content-addressed artifact file name.
//
func (h *Hierarchy) FileName() string {
	return "micro_core_" + h.ID() + ".v"
}

// Render returns the complete artifact text: every component module
// in order, then the top-level wrapper.
//
func (h *Hierarchy) Render() string {
	var b strings.Builder
	b.WriteString("// micro core " + h.ID() + "\n")
	b.WriteString("// " + h.Point.String() + "\n")
	for _, m := range h.Modules {
		b.WriteString(m.Source)
	}
	b.WriteString(h.Top.Source)
	return b.String()
}
