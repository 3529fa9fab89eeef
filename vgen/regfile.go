// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package vgen

import (
	"fmt"
	"math/bits"

	"github.com/cpubabel/cpubabel"
)

// regWidth is the architectural register width in bits.
const regWidth = 64

// addrBits returns the number of address bits needed to index n
// entries.
func addrBits(n int) int {
	if n <= 1 {
		return 1
	}
	return bits.Len(uint(n - 1))
}

// registerFile renders the register file, parameterized directly by
// the point's register count rather than chosen from a variant set.
//
//	Inputs: clk, we, waddr, raddr1, raddr2, wdata
//	Outputs: rdata1, rdata2
//
func registerFile(p cpubabel.DesignPoint) Module {
	aw := addrBits(p.RegisterCount)
	src := fmt.Sprintf(`
module reg_file #(
    parameter NUM_REGS = %d,
    parameter REG_WIDTH = %d
)(
    input clk,
    input we,
    input [%d:0] waddr,
    input [%d:0] raddr1, raddr2,
    input [REG_WIDTH-1:0] wdata,
    output [REG_WIDTH-1:0] rdata1, rdata2
);
    reg [REG_WIDTH-1:0] regs [0:NUM_REGS-1];

    integer i;
    initial begin
        for (i = 0; i < NUM_REGS; i = i + 1) begin
            regs[i] = 64'h0;
        end
    end

    always @(posedge clk) begin
        if (we) begin
            regs[waddr] <= wdata;
        end
    end

    assign rdata1 = regs[raddr1];
    assign rdata2 = regs[raddr2];
endmodule
`, p.RegisterCount, regWidth, aw-1, aw-1)
	return Module{Name: "reg_file", Source: src}
}
