// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package vgen

import "github.com/cpubabel/cpubabel"

const aluSrc = `
module alu (
    input [3:0] op,
    input [63:0] a, b,
    output reg [63:0] result,
    output reg zero_flag
);
    always @(*) begin
        case (op)
            4'h1: result = a + b;  // ADD
            4'h2: result = a - b;  // SUB
            4'h3: result = a & b;  // AND
            4'h4: result = a | b;  // OR
            4'h5: result = a ^ b;  // XOR
            default: result = a;
        endcase
        zero_flag = (result == 64'h0);
    end
endmodule
`

const aguAluSrc = `
module agu_alu_separate (
    input [3:0] op,
    input [63:0] a, b,
    input is_memory_op,
    output reg [63:0] result,
    output reg [63:0] addr_calc,
    output reg zero_flag
);
    always @(*) begin
        if (is_memory_op) begin
            addr_calc = a + b;
            result = 64'h0;
        end else begin
            case (op)
                4'h1: result = a + b;  // ADD
                4'h2: result = a - b;  // SUB
                4'h3: result = a & b;  // AND
                4'h4: result = a | b;  // OR
                4'h5: result = a ^ b;  // XOR
                default: result = a;
            endcase
            addr_calc = 64'h0;
        end
        zero_flag = (result == 64'h0);
    end
endmodule
`

// execUnit renders the execution unit variant selected by p.Exec.
//
//	single_alu:    one ALU for arithmetic and address math
//	split_agu_alu: dedicated AGU next to the ALU
//
func execUnit(p cpubabel.DesignPoint) Module {
	if p.Exec == cpubabel.ExecSplitAGU {
		return Module{Name: "agu_alu_separate", Source: aguAluSrc}
	}
	return Module{Name: "alu", Source: aluSrc}
}
