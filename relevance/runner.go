package relevance

import (
	"log/slog"
	"strings"

	"github.com/az-ai-labs/speechlex/catalog"
	"github.com/az-ai-labs/speechlex/graph"
	"github.com/az-ai-labs/speechlex/prefilter"
	"github.com/az-ai-labs/speechlex/termmodel"
	"github.com/az-ai-labs/speechlex/tokenizer"
)

// maxAttempts bounds how many alternative completions a single case's
// backtracking search will try before it is declared a fail. A
// well-formed lattice always has a completion (the unknown-edge
// fallback never runs out), so this only guards against a case whose
// expected string can never be produced from its input at all.
const maxAttempts = 64

// Result is one case's outcome: whether some attempt matched, how many
// attempts it took, and the last attempt's token strings for
// diagnostics.
type Result struct {
	Case         Case
	Pass         bool
	Attempts     int
	Got          []string
	DivergeAt    int
	DivergeScore float64
}

// Runner drives the lattice/walker backtracking search against a
// catalog's current snapshot.
type Runner struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// NewRunner builds a Runner against c, logging at Info/Warn via logger
// (nil is accepted and silences reporting).
func NewRunner(c *catalog.Catalog, logger *slog.Logger) *Runner {
	return &Runner{catalog: c, logger: logger}
}

// Run executes every case in cases whose suites include suiteFilter (or
// every case, if suiteFilter is empty), returning an aggregate Report
// and logging a per-case diagnostic.
func (r *Runner) Run(cases []Case, suiteFilter string) Report {
	report := newReport()
	for _, c := range cases {
		if !c.InSuite(suiteFilter) {
			continue
		}
		result := r.runCase(c)
		report.record(result)
		r.log(result)
	}
	return report
}

func (r *Runner) runCase(c Case) Result {
	model := r.catalog.Model()
	tok := r.catalog.Tokenizer()

	terms, _ := prefilter.Normalize(c.Input)
	return search(tok, model, terms, c)
}

func (r *Runner) log(res Result) {
	if r.logger == nil {
		return
	}
	if res.Pass {
		r.logger.Info("relevance case passed", "input", res.Case.Input, "attempts", res.Attempts)
		return
	}
	r.logger.Warn("relevance case failed",
		"input", res.Case.Input,
		"expected", res.Case.Expected,
		"got", strings.Join(res.Got, " "),
		"attempts", res.Attempts,
		"diverge_at", res.DivergeAt,
		"diverge_score", res.DivergeScore,
	)
}

// search performs the bounded retreat/discard backtracking loop: build
// the lattice once, then repeatedly complete it greedily, discarding
// the edge at the first point of mismatch and retrying, until a
// completion matches expected or the attempt budget runs out.
func search(tok *tokenizer.Tokenizer, model *termmodel.Model, terms []string, c Case) Result {
	hashes := make([]termmodel.Hash, len(terms))
	stems := make([]string, len(terms))
	for i, t := range terms {
		stems[i] = model.Stem(t)
		hashes[i] = model.StemAndHash(t)
	}

	lattice := tok.GenerateGraph(hashes, stems)
	w := graph.New(lattice, len(terms))
	expected := strings.Fields(c.Expected)

	var last Result
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if !w.Complete() {
			last = Result{Case: c, Attempts: attempt + 1}
			break
		}
		got := stringifyPath(tok, w.Left())
		last = Result{Case: c, Attempts: attempt + 1, Got: got}

		diverge := firstMismatch(got, expected)
		if diverge < 0 {
			last.Pass = true
			return last
		}
		last.DivergeAt = diverge
		if diverge < len(w.Left()) {
			last.DivergeScore = w.Left()[diverge].Score
		}

		if diverge >= len(got) {
			// got is a strict prefix of expected: no edge to blame, so
			// there's no alternative that could add more tokens.
			break
		}
		if !backtrackTo(w, diverge) {
			break
		}
	}
	return last
}

// firstMismatch returns the index of the first differing token between
// got and expected, or -1 if they're identical.
func firstMismatch(got, expected []string) int {
	n := len(got)
	if len(expected) < n {
		n = len(expected)
	}
	for i := 0; i < n; i++ {
		if got[i] != expected[i] {
			return i
		}
	}
	if len(got) != len(expected) {
		return n
	}
	return -1
}

// backtrackTo retreats the walker until its committed path has exactly
// target edges, then discards the edge at that position so the next
// Complete call tries the next best alternative there. If every edge at
// target is already exhausted it keeps retreating further back before
// discarding; returns false once there's nowhere left to retreat.
func backtrackTo(w *graph.Walker, target int) bool {
	for len(w.Left()) > target+1 {
		if !w.Retreat(true) {
			return false
		}
	}
	if !w.Retreat(false) {
		return false
	}
	for !w.Discard() {
		if !w.Retreat(false) {
			return false
		}
	}
	return true
}

func stringifyPath(tok *tokenizer.Tokenizer, path []tokenizer.Edge) []string {
	out := make([]string, len(path))
	for i, e := range path {
		out[i] = tok.TokenFromEdge(e).String()
	}
	return out
}
