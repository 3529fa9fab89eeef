// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Package verify drives the external synthesis toolchain over a
// rendered artifact file. The toolchain is a collaborator, not a
// dependency: verify hands it a file path and reads back a pass/fail
// signal plus free-form diagnostics, nothing more. A missing or
// failing tool is a reported outcome, never a reason to discard the
// generated design.
//
package verify

import (
	"context"
	"fmt"
	"os/exec"
)

// A Result is the outcome of one verification run.
//
type Result struct {
	// Passed reports whether the toolchain accepted the artifact.
	Passed bool
	// Output is the free-form diagnostic text of the run.
	Output string
}

// Check runs a yosys syntax and hierarchy check on the artifact at
// path, followed by a synthesis size estimate. The returned result is
// informational: generation and search results remain valid whatever
// it says.
//
func Check(ctx context.Context, path string) Result {
	out, err := exec.CommandContext(ctx, "yosys", "-p",
		fmt.Sprintf("read_verilog %s; hierarchy -check;", path)).CombinedOutput()
	if err != nil {
		return Result{Passed: false, Output: "syntax check: " + err.Error() + "\n" + string(out)}
	}

	stat, err := exec.CommandContext(ctx, "yosys", "-p",
		fmt.Sprintf("read_verilog %s; synth -top micro_core; stat", path)).CombinedOutput()
	if err != nil {
		return Result{Passed: false, Output: "synthesis: " + err.Error() + "\n" + string(stat)}
	}
	return Result{Passed: true, Output: string(stat)}
}
