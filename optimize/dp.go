package optimize

import (
	"sort"
	"time"

	"github.com/vireobio/codonopt/constraint"
	"github.com/vireobio/codonopt/exclusion"
	"github.com/vireobio/codonopt/geneticcode"
	"github.com/vireobio/codonopt/score"
)

// DP implements the state-grouping DP optimizer from spec.md §4.6.
// Partial solutions are bucketed by a 12-bit state key, the last two
// committed codon indices, so distinct prefixes with equivalent future
// effect on scoring are pruned together rather than crowding each other
// out of a single flat beam.
func DP(
	protein string,
	table *geneticcode.Table,
	oracle *score.Oracle,
	excl *exclusion.Set,
	cons *constraint.Engine,
	beamWidth int,
	pathsPerState int,
) Result {
	start := time.Now()
	if beamWidth <= 0 {
		beamWidth = defaultBeamWidth
	}
	if pathsPerState <= 0 {
		pathsPerState = defaultPathsPerState
	}
	if len(protein) < 2 {
		return overConstrained(0)
	}

	numExcluded := 0

	buckets := make(map[int][]PartialSolution)
	anyFirst := false
	for _, c0 := range table.Candidates(protein[0]) {
		ps0, ok := extend(emptyPartialSolution(), c0, 0, protein, table, excl, cons, oracle)
		if !ok {
			numExcluded++
			continue
		}
		anyFirst = true
		for _, c1 := range table.Candidates(protein[1]) {
			ps1, ok := extend(ps0, c1, 1, protein, table, excl, cons, oracle)
			if !ok {
				numExcluded++
				continue
			}
			key := geneticcode.StateKey(ps1.PrevIndex, ps1.LastIndex)
			buckets[key] = append(buckets[key], ps1)
		}
	}
	if !anyFirst {
		return overConstrained(0)
	}
	if len(buckets) == 0 {
		return overConstrained(1)
	}
	prunePerBucket(buckets, pathsPerState, table)
	buckets = pruneGlobalBuckets(buckets, beamWidth, table)

	for pos := 2; pos < len(protein); pos++ {
		candidates := table.Candidates(protein[pos])
		nextBuckets := make(map[int][]PartialSolution)

		for _, paths := range buckets {
			for _, ps := range paths {
				for _, c := range candidates {
					extended, ok := extend(ps, c, pos, protein, table, excl, cons, oracle)
					if !ok {
						numExcluded++
						continue
					}
					key := geneticcode.StateKey(extended.PrevIndex, extended.LastIndex)
					nextBuckets[key] = append(nextBuckets[key], extended)
				}
			}
		}

		if len(nextBuckets) == 0 {
			return overConstrained(pos)
		}
		prunePerBucket(nextBuckets, pathsPerState, table)
		buckets = pruneGlobalBuckets(nextBuckets, beamWidth, table)
	}

	best := bestInBuckets(buckets, table)
	translated, err := geneticcode.Translate(best.DNA, table)
	if err != nil || translated != protein {
		return translationMismatch()
	}
	return success(best.DNA, best.Score, time.Since(start), numExcluded)
}

// prunePerBucket sorts each bucket's partial solutions by descending
// score (ties broken deterministically, see sortByScoreDescending) in
// place and keeps only the top pathsPerState, per spec.md §4.6 step 2.
func prunePerBucket(buckets map[int][]PartialSolution, pathsPerState int, table *geneticcode.Table) {
	for key, paths := range buckets {
		sortByScoreDescending(paths, table)
		if len(paths) > pathsPerState {
			paths = paths[:pathsPerState]
		}
		buckets[key] = paths
	}
}

// pruneGlobalBuckets keeps only the beamWidth buckets whose best
// partial solution has the highest score, per spec.md §4.6 step 3.
// Buckets are assumed already sorted internally (their first entry is
// their best). Bucket iteration order is a Go map and therefore
// randomized, so the candidate list built below is sorted by score and
// then, on ties, by each bucket's best DNA in canonical enumeration
// order (the same rule sortByScoreDescending applies within a bucket)
// rather than by whatever order ranging over the map produced.
func pruneGlobalBuckets(buckets map[int][]PartialSolution, beamWidth int, table *geneticcode.Table) map[int][]PartialSolution {
	if len(buckets) <= beamWidth {
		return buckets
	}

	type keyedBest struct {
		key   int
		score int
		dna   string
	}
	bests := make([]keyedBest, 0, len(buckets))
	for key, paths := range buckets {
		if len(paths) == 0 {
			continue
		}
		bests = append(bests, keyedBest{key: key, score: paths[0].Score, dna: paths[0].DNA})
	}

	sort.SliceStable(bests, func(i, j int) bool {
		if bests[i].score != bests[j].score {
			return bests[i].score > bests[j].score
		}
		return lessByCanonicalEnumeration(bests[i].dna, bests[j].dna, table)
	})

	if len(bests) > beamWidth {
		bests = bests[:beamWidth]
	}

	pruned := make(map[int][]PartialSolution, len(bests))
	for _, b := range bests {
		pruned[b.key] = buckets[b.key]
	}
	return pruned
}

// bestInBuckets scans every surviving partial solution across every
// bucket and returns the one with the maximum score, per spec.md §4.6's
// final step. Ties are broken deterministically rather than by bucket
// map iteration order, same rule as sortByScoreDescending.
func bestInBuckets(buckets map[int][]PartialSolution, table *geneticcode.Table) PartialSolution {
	var best PartialSolution
	first := true
	for _, paths := range buckets {
		for _, ps := range paths {
			switch {
			case first:
				best = ps
				first = false
			case ps.Score > best.Score:
				best = ps
			case ps.Score == best.Score && lessByCanonicalEnumeration(ps.DNA, best.DNA, table):
				best = ps
			}
		}
	}
	return best
}
