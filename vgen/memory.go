// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

package vgen

import "github.com/cpubabel/cpubabel"

const memoryFlatSrc = `
module memory_flat (
    input clk,
    input [63:0] addr,
    input [63:0] wdata,
    input we,
    output reg [63:0] rdata
);
    // 1K words of flat RAM.
    reg [63:0] mem [0:1023];

    always @(posedge clk) begin
        if (we) begin
            mem[addr[9:0]] <= wdata;
        end
        rdata <= mem[addr[9:0]];
    end
endmodule
`

const memoryCachedSrc = `
module memory_cached (
    input clk,
    input [63:0] addr,
    input [63:0] wdata,
    input we,
    output reg [63:0] rdata,
    output reg hit
);
    // Direct mapped I-cache, 16 lines of 4 words.
    reg [63:0] cache_data [0:15][0:3];
    reg [63:0] cache_tags [0:15];
    reg [3:0] valid [0:15];

    always @(*) begin
        hit = 1'b1;
        rdata = cache_data[addr[7:4]][addr[3:2]];
    end
endmodule
`

// memoryInterface renders the memory interface variant selected by
// p.Memory.
//
//	flat:   single cycle RAM
//	cached: RAM behind a small direct mapped I-cache
//
func memoryInterface(p cpubabel.DesignPoint) Module {
	if p.Memory == cpubabel.MemoryCached {
		return Module{Name: "memory_cached", Source: memoryCachedSrc}
	}
	return Module{Name: "memory_flat", Source: memoryFlatSrc}
}
