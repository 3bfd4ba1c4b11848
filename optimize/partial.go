package optimize

import (
	"sort"

	"github.com/vireobio/codonopt/constraint"
	"github.com/vireobio/codonopt/exclusion"
	"github.com/vireobio/codonopt/geneticcode"
	"github.com/vireobio/codonopt/score"
)

// defaultBeamWidth and defaultPathsPerState are spec.md §6's documented
// defaults.
const (
	defaultBeamWidth     = 100
	defaultPathsPerState = 8
)

// PartialSolution is the tuple from spec.md §3: an accumulated score, a
// DNA prefix, and the last two committed codon indices (used by the DP
// optimizer to bucket by state; unused, but harmless, in the beam
// optimizer).
type PartialSolution struct {
	Score     int
	DNA       string
	PrevIndex int // codon index two positions back; -1 if not yet set
	LastIndex int // codon index at the most recently committed position; -1 if empty
}

// emptyPartialSolution is the beam/DP seed: score zero, empty DNA, no
// committed codons yet.
func emptyPartialSolution() PartialSolution {
	return PartialSolution{PrevIndex: -1, LastIndex: -1}
}

// extend tries to append one candidate codon to a partial solution at
// AA position pos, applying the exclusion check and both structural
// constraint engines, then adding the 9-mer score once three codons
// have been committed. ok is false if any check rejected the
// extension.
func extend(
	ps PartialSolution,
	candidate geneticcode.Codon,
	pos int,
	protein string,
	table *geneticcode.Table,
	excl *exclusion.Set,
	cons *constraint.Engine,
	oracle *score.Oracle,
) (PartialSolution, bool) {
	newDNA := ps.DNA + candidate.Triplet

	if excl.Check(newDNA) != nil {
		return PartialSolution{}, false
	}

	codonIndexAt := func(p int) int {
		idx, _ := table.CodonIndex(newDNA[p*3 : p*3+3])
		return idx
	}
	if !cons.CheckHomopolymer(pos, codonIndexAt) {
		return PartialSolution{}, false
	}
	if !cons.CheckRepeat(pos, newDNA) {
		return PartialSolution{}, false
	}

	newScore := ps.Score
	if pos >= 2 {
		ninemer := newDNA[(pos-2)*3 : (pos+1)*3]
		triplet := protein[pos-2 : pos+1]
		newScore += oracle.Score(triplet, ninemer)
	}

	return PartialSolution{
		Score:     newScore,
		DNA:       newDNA,
		PrevIndex: ps.LastIndex,
		LastIndex: candidate.Index,
	}, true
}

// sortByScoreDescending orders partial solutions highest score first. Ties
// are broken deterministically by comparing the codon actually chosen at
// each position, left to right, and preferring the smaller canonical
// codon index at the first point of difference: spec.md §9's "earlier in
// the enumeration order of candidate codons wins" rule, applied directly
// to each solution's committed DNA rather than to whatever order the
// caller happened to enumerate solutions in. This keeps the result
// independent of map iteration order, which the DP optimizer's
// bucketing would otherwise leak into the tie-break.
func sortByScoreDescending(solutions []PartialSolution, table *geneticcode.Table) {
	sort.SliceStable(solutions, func(i, j int) bool {
		if solutions[i].Score != solutions[j].Score {
			return solutions[i].Score > solutions[j].Score
		}
		return lessByCanonicalEnumeration(solutions[i].DNA, solutions[j].DNA, table)
	})
}

// lessByCanonicalEnumeration reports whether DNA a precedes DNA b in
// candidate enumeration order: the first codon position where the two
// differ decides, comparing by canonical codon index rather than by
// nucleotide byte value, since the two need not agree (the genetic code
// table is built in T/C/A/G order, not alphabetical).
func lessByCanonicalEnumeration(a, b string, table *geneticcode.Table) bool {
	n := len(a) / 3
	if m := len(b) / 3; m < n {
		n = m
	}
	for p := 0; p < n; p++ {
		ia, _ := table.CodonIndex(a[p*3 : p*3+3])
		ib, _ := table.CodonIndex(b[p*3 : p*3+3])
		if ia != ib {
			return ia < ib
		}
	}
	return len(a) < len(b)
}
