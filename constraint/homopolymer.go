package constraint

// analyzeHomopolymerRuns finds every contiguous run of >=4 identical
// amino acids, excluding M and W (spec.md §3 HomopolymerRunTable).
func analyzeHomopolymerRuns(protein string) []HomopolymerRun {
	var runs []HomopolymerRun

	i := 0
	for i < len(protein) {
		aa := protein[i]
		j := i + 1
		for j < len(protein) && protein[j] == aa {
			j++
		}
		length := j - i
		if length >= 4 && !isUnconstrainable(aa) {
			runs = append(runs, HomopolymerRun{Start: i, Length: length, AminoAcid: aa})
		}
		i = j
	}

	return runs
}

// CheckHomopolymer implements spec.md §4.3's incremental homopolymer
// check: when the codon at AA position pos is committed, for every run
// overlapping pos, test the window of 4 consecutive positions ending at
// pos (if it lies fully within the run) and require at least 2 distinct
// codon indices among them.
//
// codonIndexAt(p) must return the committed codon index for AA
// position p <= pos.
func (e *Engine) CheckHomopolymer(pos int, codonIndexAt func(p int) int) bool {
	if e == nil || len(e.runs) == 0 {
		return true
	}

	for _, run := range e.runs {
		if pos < run.Start || pos >= run.Start+run.Length {
			continue
		}
		windowStart := pos - 3
		if windowStart < run.Start {
			continue
		}
		seen := make(map[int]bool, 4)
		for p := windowStart; p <= pos; p++ {
			seen[codonIndexAt(p)] = true
		}
		if len(seen) < 2 {
			return false
		}
	}

	return true
}
