// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package vgen

import "github.com/cpubabel/cpubabel"

const decoderHardwiredSrc = `
module decoder_hardwired (
    input [31:0] instr,
    output reg [3:0] opcode,
    output reg [2:0] dest_reg,
    output reg [2:0] src1_reg,
    output reg [3:0] mode,
    output reg [13:0] imm
);
    always @(*) begin
        opcode   = instr[31:28];
        dest_reg = instr[27:25];
        src1_reg = instr[24:22];
        mode     = instr[21:18];
        imm      = instr[17:4];
    end
endmodule
`

const decoderMicrocodedSrc = `
module decoder_microcoded (
    input [31:0] instr,
    input clk,
    output reg [15:0] micro_addr,
    output reg micro_we
);
    // 256 entry microcode ROM, 32-bit microinstructions.
    reg [31:0] micro_rom [0:255];

    initial begin
        micro_rom[0] = 32'h0;
    end

    always @(*) begin
        micro_addr = instr[15:0];
        micro_we = 1'b0;
    end
endmodule
`

// decoder renders the decoder variant selected by p.Decoder.
//
//	hardwired:  single cycle field extraction
//	microcoded: microcode ROM lookup
//
func decoder(p cpubabel.DesignPoint) Module {
	if p.Decoder == cpubabel.DecoderMicrocoded {
		return Module{Name: "decoder_microcoded", Source: decoderMicrocodedSrc}
	}
	return Module{Name: "decoder_hardwired", Source: decoderHardwiredSrc}
}
