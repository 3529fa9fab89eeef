// Copyright 2026 The cpubabel Authors
// Licensed under the MIT license. See license text in the LICENSE file.

// Command babel-browse is an interactive browser over a seed corpus:
// type lexicon words in the query field and the seed list re-ranks
// live; selecting a seed shows its design point and the rendered
// Verilog hierarchy.
//
//	babel-browse [-seeds N] [seed...]
//
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/cpubabel/cpubabel"
	"github.com/cpubabel/cpubabel/vgen"
)

type browser struct {
	app *tview.Application

	cat     *cpubabel.Catalog
	sampler *cpubabel.Sampler
	corpus  []string

	queryField *tview.InputField
	seedList   *tview.List
	pointView  *tview.TextView
	srcView    *tview.TextView
}

func newBrowser(cat *cpubabel.Catalog, corpus []string) *browser {
	b := &browser{
		app:     tview.NewApplication(),
		cat:     cat,
		sampler: cpubabel.NewSampler(cat),
		corpus:  corpus,
	}

	words := make([]string, 0, len(cat.Lexicon))
	for w := range cat.Lexicon {
		words = append(words, w)
	}

	b.queryField = tview.NewInputField().
		SetLabel("query: ").
		SetPlaceholder(strings.Join(words[:min(3, len(words))], " ") + " ...")
	b.queryField.SetBorder(true).SetTitle("lexicon words")

	b.seedList = tview.NewList().ShowSecondaryText(true)
	b.seedList.SetBorder(true).SetTitle("seeds by distance")

	b.pointView = tview.NewTextView().SetDynamicColors(true)
	b.pointView.SetBorder(true).SetTitle("design point")

	b.srcView = tview.NewTextView().SetWrap(false)
	b.srcView.SetBorder(true).SetTitle("verilog")

	b.queryField.SetChangedFunc(func(string) { b.rerank() })
	b.seedList.SetChangedFunc(func(int, string, string, rune) { b.showSelection() })

	leftPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.queryField, 3, 0, true).
		AddItem(b.seedList, 0, 1, false)
	rightPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.pointView, 0, 1, false).
		AddItem(b.srcView, 0, 3, false)
	flex := tview.NewFlex().
		AddItem(leftPane, 0, 1, true).
		AddItem(rightPane, 0, 2, false)

	flex.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			b.app.Stop()
			return nil
		case tcell.KeyTab:
			if b.queryField.HasFocus() {
				b.app.SetFocus(b.seedList)
			} else {
				b.app.SetFocus(b.queryField)
			}
			return nil
		}
		return event
	})

	b.app.SetRoot(flex, true)
	b.rerank()
	return b
}

// rerank re-scores the whole corpus against the current query and
// rebuilds the seed list.
func (b *browser) rerank() {
	words := strings.Fields(b.queryField.GetText())
	matches := cpubabel.Rank(b.cat, b.corpus, words, len(b.corpus))

	b.seedList.Clear()
	for _, m := range matches {
		b.seedList.AddItem(m.Seed, fmt.Sprintf("distance %d", m.Distance), 0, nil)
	}
	b.showSelection()
}

func (b *browser) showSelection() {
	if b.seedList.GetItemCount() == 0 {
		b.pointView.SetText("")
		b.srcView.SetText("")
		return
	}
	seed, _ := b.seedList.GetItemText(b.seedList.GetCurrentItem())
	p := b.sampler.Sample(seed)

	var pt strings.Builder
	fmt.Fprintf(&pt, "seed            %q\n", seed)
	fmt.Fprintf(&pt, "artifact        micro_core_%s.v\n\n", p.ContentHash())
	fmt.Fprintf(&pt, "register count  %d\n", p.RegisterCount)
	fmt.Fprintf(&pt, "addressing      %v\n", p.AddressingModes)
	fmt.Fprintf(&pt, "decoder         %s\n", p.Decoder)
	fmt.Fprintf(&pt, "pipeline depth  %d\n", p.PipelineDepth)
	fmt.Fprintf(&pt, "execution       %s\n", p.Exec)
	fmt.Fprintf(&pt, "memory          %s\n", p.Memory)
	fmt.Fprintf(&pt, "instructions    %s\n", strings.Join(p.Instructions, " "))
	b.pointView.SetText(pt.String())

	h, err := vgen.Compose(b.cat, p)
	if err != nil {
		b.srcView.SetText("compose: " + err.Error())
		return
	}
	b.srcView.SetText(h.Render())
	b.srcView.ScrollToBeginning()
}

func main() {
	log.SetFlags(0)

	corpusSize := flag.Int("seeds", 32, "size of the generated seed corpus (ignored if seeds are given)")
	flag.Parse()

	corpus := flag.Args()
	if len(corpus) == 0 {
		corpus = make([]string, *corpusSize)
		for i := range corpus {
			corpus[i] = fmt.Sprintf("seed_%d", i)
		}
	}

	b := newBrowser(cpubabel.DefaultCatalog(), corpus)
	if err := b.app.Run(); err != nil {
		log.Fatal(err)
	}
}
