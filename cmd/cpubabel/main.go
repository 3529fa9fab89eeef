// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Command cpubabel generates the micro CPU core named by a seed
// string and, given query words, searches a demo seed corpus for the
// closest designs.
//
//	cpubabel [flags] <seed> [query words...]
//
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/cpubabel/cpubabel"
	"github.com/cpubabel/cpubabel/verify"
	"github.com/cpubabel/cpubabel/vgen"
)

func main() {
	log.SetFlags(0)

	outDir := flag.String("o", ".", "output directory for the artifact file")
	limit := flag.Int("n", cpubabel.DefaultLimit, "maximum number of search results")
	corpusSize := flag.Int("seeds", 10, "size of the demo seed corpus used for search")
	runVerify := flag.Bool("verify", false, "run the yosys toolchain on the artifact")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <seed> [query words...]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	seed, words := flag.Arg(0), flag.Args()[1:]

	cat := cpubabel.DefaultCatalog()
	point := cpubabel.NewSampler(cat).Sample(seed)
	fmt.Printf("seed %q -> %s\n", seed, point)

	h, err := vgen.Compose(cat, point)
	if err != nil {
		// Structural error: abort before anything is written.
		log.Fatalf("compose: %v", err)
	}
	path := filepath.Join(*outDir, h.FileName())
	if err := os.WriteFile(path, []byte(h.Render()), 0o644); err != nil {
		log.Fatalf("write artifact: %v", err)
	}
	fmt.Printf("generated %s\n", path)

	if len(words) > 0 {
		corpus := make([]string, *corpusSize)
		for i := range corpus {
			corpus[i] = fmt.Sprintf("seed_%d", i)
		}
		fmt.Printf("search %v over %d seeds:\n", words, len(corpus))
		for _, m := range cpubabel.Rank(cat, corpus, words, *limit) {
			fmt.Printf("  %-12s distance %d\n", m.Seed, m.Distance)
		}
	}

	if *runVerify {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		res := verify.Check(ctx, path)
		if res.Passed {
			fmt.Println("verification passed")
		} else {
			fmt.Println("verification failed (artifact kept)")
		}
		if res.Output != "" {
			fmt.Println(res.Output)
		}
	}
}
