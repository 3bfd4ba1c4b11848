package optimize

import (
	"time"

	"github.com/vireobio/codonopt/constraint"
	"github.com/vireobio/codonopt/exclusion"
	"github.com/vireobio/codonopt/geneticcode"
	"github.com/vireobio/codonopt/score"
)

// Beam implements the beam-search optimizer from spec.md §4.5: a
// frontier of partial solutions, extended one amino acid at a time and
// pruned to the top beamWidth by score after every position.
//
// excl and cons may be nil, meaning no exclusion set or no structural
// constraints are active for this job.
func Beam(
	protein string,
	table *geneticcode.Table,
	oracle *score.Oracle,
	excl *exclusion.Set,
	cons *constraint.Engine,
	beamWidth int,
) Result {
	start := time.Now()
	if beamWidth <= 0 {
		beamWidth = defaultBeamWidth
	}

	beam := []PartialSolution{emptyPartialSolution()}
	numExcluded := 0

	for pos := 0; pos < len(protein); pos++ {
		candidates := table.Candidates(protein[pos])

		var next []PartialSolution
		for _, ps := range beam {
			for _, c := range candidates {
				extended, ok := extend(ps, c, pos, protein, table, excl, cons, oracle)
				if !ok {
					numExcluded++
					continue
				}
				next = append(next, extended)
			}
		}

		if len(next) == 0 {
			return overConstrained(pos)
		}

		sortByScoreDescending(next, table)
		if len(next) > beamWidth {
			next = next[:beamWidth]
		}
		beam = next
	}

	best := beam[0]
	translated, err := geneticcode.Translate(best.DNA, table)
	if err != nil || translated != protein {
		return translationMismatch()
	}
	return success(best.DNA, best.Score, time.Since(start), numExcluded)
}
