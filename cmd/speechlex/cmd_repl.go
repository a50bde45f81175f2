package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/az-ai-labs/speechlex/catalog"
	"github.com/az-ai-labs/speechlex/graph"
	"github.com/az-ai-labs/speechlex/prefilter"
	"github.com/az-ai-labs/speechlex/termmodel"
	"github.com/az-ai-labs/speechlex/tokenizer"
)

var (
	replExplain bool
	replRaw     bool

	replCmd = &cobra.Command{
		Use:   "repl",
		Short: "Interactively tokenize phrases against a catalog",
		RunE:  runRepl,
	}
)

func init() {
	replCmd.Flags().BoolVar(&replExplain, "explain", false, "dump the lattice and the first few candidate paths")
	replCmd.Flags().BoolVar(&replRaw, "raw", false, "bypass NFC/homophone/filler normalization")
}

func runRepl(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	c, err := loadCatalog(catalogDir, logger)
	if err != nil {
		return err
	}
	if catalogDir != "" {
		w, err := catalog.Watch(c, catalogDir, logger)
		if err != nil {
			return err
		}
		defer w.Close()
	}

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprintln(os.Stdout, "speechlex repl. Ctrl-D to exit.")
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		runQuery(os.Stdout, c.Model(), c.Tokenizer(), line)
	}
	return scanner.Err()
}

func runQuery(out io.Writer, model *termmodel.Model, tok *tokenizer.Tokenizer, line string) {
	terms := queryTerms(line)
	if len(terms) == 0 {
		fmt.Fprintln(out, "(no words recognized)")
		return
	}

	hashes := make([]termmodel.Hash, len(terms))
	stems := make([]string, len(terms))
	for i, t := range terms {
		stems[i] = model.Stem(t)
		hashes[i] = model.StemAndHash(t)
	}

	lattice := tok.GenerateGraph(hashes, stems)
	w := graph.New(lattice, len(terms))

	if replExplain {
		explainLattice(out, lattice)
	}

	if !w.Complete() {
		fmt.Fprintln(out, "(no completion found)")
		return
	}
	fmt.Fprintln(out, formatPath(tok, w.Left()))

	if replExplain {
		explainAlternatives(out, tok, lattice, len(terms))
	}
}

func queryTerms(line string) []string {
	if replRaw {
		return rawTerms(line)
	}
	terms, _ := prefilter.Normalize(line)
	return terms
}

func rawTerms(line string) []string {
	spans := prefilter.Scan(prefilter.NFC(line))
	var out []string
	for _, sp := range spans {
		if sp.Kind == prefilter.WordSpan || sp.Kind == prefilter.NumberSpan {
			out = append(out, sp.Text)
		}
	}
	return out
}

func formatPath(tok *tokenizer.Tokenizer, path []tokenizer.Edge) string {
	toks := make([]string, len(path))
	for i, e := range path {
		toks[i] = tok.TokenFromEdge(e).String()
	}
	return strings.Join(toks, " ")
}

func explainLattice(out io.Writer, lattice tokenizer.Lattice) {
	fmt.Fprintln(out, "lattice:")
	for pos, edges := range lattice {
		fmt.Fprintf(out, "  %d:", pos)
		for _, e := range edges {
			fmt.Fprintf(out, " [%s len=%d score=%.3f label=%v]", e.Kind, e.Length, e.Score, e.Label)
		}
		fmt.Fprintln(out)
	}
}

// explainAlternatives enumerates up to three candidate full paths from
// the start of the query, best-score-first, for comparison against the
// walker's chosen completion.
func explainAlternatives(out io.Writer, tok *tokenizer.Tokenizer, lattice tokenizer.Lattice, n int) {
	const maxShown = 3
	paths := graph.EnumerateStatic(lattice, n)
	fmt.Fprintln(out, "candidate paths:")
	for i, p := range paths {
		if i >= maxShown {
			fmt.Fprintf(out, "  ... %d more\n", len(paths)-maxShown)
			break
		}
		fmt.Fprintf(out, "  %s\n", formatPath(tok, p))
	}
}
