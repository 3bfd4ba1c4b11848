package constraint

// sixMerLength is the AA window size the repeated-6-mer engine tracks,
// corresponding to an 18-nt DNA window (spec.md §3/§4.3).
const sixMerLength = 6

// analyzeRepeats finds every AA 6-mer that recurs in the protein,
// skipping 6-mers built solely from M and W (they have at most one
// codon each and so cannot be diversified). It returns:
//   - repeats: start position -> every other start position sharing
//     the same 6-mer
//   - completions: the AA position where each tracked 6-mer finishes
//     (start+5) -> its start, so the incremental checker knows which
//     position to fire on
func analyzeRepeats(protein string) (repeats map[int][]int, completions map[int]int) {
	if len(protein) < sixMerLength {
		return nil, nil
	}

	byContent := make(map[string][]int)
	for start := 0; start+sixMerLength <= len(protein); start++ {
		window := protein[start : start+sixMerLength]
		if onlyUnconstrainable(window) {
			continue
		}
		byContent[window] = append(byContent[window], start)
	}

	repeats = make(map[int][]int)
	completions = make(map[int]int)
	for _, starts := range byContent {
		if len(starts) < 2 {
			continue
		}
		for _, s := range starts {
			var others []int
			for _, o := range starts {
				if o != s {
					others = append(others, o)
				}
			}
			repeats[s] = others
			completions[s+sixMerLength-1] = s
		}
	}

	if len(repeats) == 0 {
		return nil, nil
	}
	return repeats, completions
}

func onlyUnconstrainable(window string) bool {
	for i := 0; i < len(window); i++ {
		if !isUnconstrainable(window[i]) {
			return false
		}
	}
	return true
}

// CheckRepeat implements spec.md §4.3's incremental repeated-6-mer
// check: when position pos completes a tracked 6-mer, compare its
// 18-nt encoding against every earlier occurrence already committed in
// dna, failing if any match.
//
// dna must contain at least the codons for AA positions [0, pos].
func (e *Engine) CheckRepeat(pos int, dna string) bool {
	if e == nil || len(e.completions) == 0 {
		return true
	}

	start, ok := e.completions[pos]
	if !ok {
		return true
	}
	others, ok := e.repeats[start]
	if !ok || len(others) == 0 {
		return true
	}

	current := dna[start*3 : (start+sixMerLength)*3]
	for _, other := range others {
		if other >= start {
			continue
		}
		earlier := dna[other*3 : (other+sixMerLength)*3]
		if earlier == current {
			return false
		}
	}

	return true
}
