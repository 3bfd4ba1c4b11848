package exclusion

// Check implements the incremental exclusion test from spec.md §4.4:
// given the DNA prefix after appending a codon, slide a window starting
// at max(0, len-MaxPatternLength) and test every compiled pattern. A
// codon-aligned pattern only counts when its absolute match offset is a
// multiple of 3; any other pattern counts on any match.
//
// Check returns the first violated pattern, or nil if the window is
// clean. Keeping the scan window bounded by MaxPatternLength keeps
// per-step cost independent of total sequence length, per spec.md §4.4.
func (s *Set) Check(dna string) *Pattern {
	if s == nil || len(s.Patterns) == 0 {
		return nil
	}

	windowStart := 0
	if len(dna) > s.MaxPatternLength {
		windowStart = len(dna) - s.MaxPatternLength
	}
	window := dna[windowStart:]

	for i := range s.Patterns {
		p := &s.Patterns[i]
		locs := p.Regexp.FindAllStringIndex(window, -1)
		for _, loc := range locs {
			if !p.CodonAligned {
				return p
			}
			absoluteOffset := windowStart + loc[0]
			if absoluteOffset%3 == 0 {
				return p
			}
		}
	}
	return nil
}
