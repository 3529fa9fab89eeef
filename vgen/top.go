// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package vgen

import (
	"fmt"
	"strings"

	"github.com/cpubabel/cpubabel"
)

// topLevel renders the fixed top-level wrapper around the chosen
// variant modules. It receives the variant module names from Compose
// rather than re-deriving them from the point, so the instantiated
// names always match the rendered definitions.
//
func topLevel(cat *cpubabel.Catalog, p cpubabel.DesignPoint, rfName, decName, execName, memName string) Module {
	regNames := strings.Join(cat.RegisterNames[:p.RegisterCount], ", ")

	var decInst string
	if decName == "decoder_microcoded" {
		decInst = fmt.Sprintf(`    %s dec (
        .instr(instr),
        .clk(clk),
        .micro_addr(micro_addr),
        .micro_we(micro_we)
    );`, decName)
	} else {
		decInst = fmt.Sprintf(`    %s dec (
        .instr(instr),
        .opcode(opcode),
        .dest_reg(dest_reg),
        .src1_reg(src1_reg),
        .mode(mode),
        .imm(imm)
    );`, decName)
	}

	var execInst string
	if execName == "agu_alu_separate" {
		execInst = fmt.Sprintf(`    %s exec_inst (
        .op(opcode),
        .a(rdata1),
        .b(rdata2),
        .is_memory_op(1'b0),
        .result(alu_result),
        .addr_calc(addr_calc),
        .zero_flag(zero_flag)
    );`, execName)
	} else {
		execInst = fmt.Sprintf(`    %s exec_inst (
        .op(opcode),
        .a(rdata1),
        .b(rdata2),
        .result(alu_result),
        .zero_flag(zero_flag)
    );`, execName)
	}

	var memInst string
	if memName == "memory_cached" {
		memInst = fmt.Sprintf(`    %s mem_inst (
        .clk(clk),
        .addr(addr_calc),
        .wdata(rdata1),
        .we(1'b0),
        .rdata(mem_rdata),
        .hit(mem_hit)
    );`, memName)
	} else {
		memInst = fmt.Sprintf(`    %s mem_inst (
        .clk(clk),
        .addr(addr_calc),
        .wdata(rdata1),
        .we(1'b0),
        .rdata(mem_rdata)
    );`, memName)
	}

	aw := addrBits(p.RegisterCount)
	src := fmt.Sprintf(`
module micro_core #(
    parameter NUM_REGS = %d,
    parameter PIPELINE_DEPTH = %d
)(
    input clk,
    input reset,
    input [31:0] instr,
    output [63:0] pc_out
);

    wire [63:0] rdata1, rdata2;
    wire [3:0] opcode;
    wire [2:0] dest_reg, src1_reg;
    wire [3:0] mode;
    wire [13:0] imm;
    wire [15:0] micro_addr;
    wire micro_we;
    wire [63:0] alu_result;
    wire [63:0] addr_calc;
    wire [63:0] mem_rdata;
    wire mem_hit;
    wire zero_flag;

    %s rf (
        .clk(clk),
        .we(1'b0),
        .waddr(dest_reg[%d:0]),
        .raddr1(src1_reg[%d:0]),
        .raddr2(src1_reg[%d:0]),
        .wdata(alu_result),
        .rdata1(rdata1),
        .rdata2(rdata2)
    );

%s

%s

%s

    // Pipeline registers, one bank per stage.
    reg [63:0] pipeline_regs [0:PIPELINE_DEPTH-1];

    integer s;
    always @(posedge clk) begin
        pipeline_regs[0] <= alu_result;
        for (s = 1; s < PIPELINE_DEPTH; s = s + 1) begin
            pipeline_regs[s] <= pipeline_regs[s-1];
        end
    end

    reg [63:0] pc;
    always @(posedge clk) begin
        if (reset) pc <= 64'h0;
        else pc <= pc + 64'd4;
    end
    assign pc_out = pc;

    // Architectural registers: %s

endmodule
`, p.RegisterCount, p.PipelineDepth, rfName, aw-1, aw-1, aw-1,
		decInst, execInst, memInst, regNames)

	return Module{Name: "micro_core", Source: src}
}
