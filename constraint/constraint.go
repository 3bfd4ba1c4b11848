/*
Package constraint implements the two structural-diversity engines from
spec.md §4.3: homopolymer-run diversity and repeated-6-mer diversity.

Both engines pre-analyze the protein once, at construction, the way
poly's synthesis/fix.Cds pre-scans a sequence for problems before the
fix loop starts. If the pre-analysis finds nothing to watch, the engine
becomes a no-op and every incremental check trivially passes.
*/
package constraint

import "sync"

// HomopolymerRun is one contiguous run of >=4 identical amino acids
// (excluding M and W), per spec.md §3's HomopolymerRunTable.
type HomopolymerRun struct {
	Start     int
	Length    int
	AminoAcid byte
}

// Engine holds both engines' pre-analysis results for one protein and
// answers the incremental per-position questions the optimizers ask
// while extending a partial solution.
type Engine struct {
	runs []HomopolymerRun

	// repeats maps an AA 6-mer start position to every other start
	// position sharing the same 6-mer, for 6-mers that recur and are
	// not composed solely of M/W. A start absent from this map has no
	// duplicate and needs no check.
	repeats map[int][]int

	// completions maps a DNA-commit position (the AA index) to the
	// 6-mer start that finishes there (start+5 == position), for
	// positions that complete a tracked repeat group.
	completions map[int]int
}

// New runs both pre-analyses concurrently (poly's findProblems fan-out
// pattern: one goroutine per analysis, synchronized with a WaitGroup)
// and returns the combined engine.
func New(protein string) *Engine {
	e := &Engine{}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		e.runs = analyzeHomopolymerRuns(protein)
	}()
	go func() {
		defer wg.Done()
		e.repeats, e.completions = analyzeRepeats(protein)
	}()
	wg.Wait()

	return e
}

// isUnconstrainable reports whether a run of this amino acid, or a
// 6-mer built solely from it, can be ignored: M and W have exactly one
// codon each, so no alternate encoding exists to diversify with.
func isUnconstrainable(aa byte) bool {
	return aa == 'M' || aa == 'W'
}
