// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package cpubabel maps arbitrary seed strings onto points in a discrete
design space of simplified CPU microarchitectures, in the manner of a
Library of Babel: every seed names exactly one core, forever.

The package provides three cooperating pieces:

  - a Catalog enumerating every axis of variation (register counts,
    addressing modes, decoder styles, pipeline depths, execution
    topologies, memory styles) together with a Lexicon that translates
    descriptive words into partial constraints on that space,
  - a Sampler that derives a DesignPoint from a seed string through a
    pinned digest and a versioned sequence of pseudorandom draws,
  - a Ranker that scores a corpus of seeds against a word query and
    returns the closest designs.

Rendering a DesignPoint into a Verilog module hierarchy lives in the
vgen subpackage; the two sides share the same Catalog so that
generation and search always reason about identical variant
definitions.

Reproducibility is the contract that everything else hangs on: for a
fixed seed string, Sample returns a byte for byte identical
DesignPoint on every run and on every machine. See the Sampler
documentation for the exact digest and draw protocol.
*/
package cpubabel
