package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeHomopolymerRunsFindsRunsOfFourOrMore(t *testing.T) {
	runs := analyzeHomopolymerRuns("MAAAA")
	require.Len(t, runs, 1)
	assert.Equal(t, HomopolymerRun{Start: 1, Length: 4, AminoAcid: 'A'}, runs[0])
}

func TestAnalyzeHomopolymerRunsSkipsShortRuns(t *testing.T) {
	runs := analyzeHomopolymerRuns("MAAAG")
	assert.Empty(t, runs)
}

func TestAnalyzeHomopolymerRunsSkipsMAndW(t *testing.T) {
	runs := analyzeHomopolymerRuns("MMMMWWWW")
	assert.Empty(t, runs)
}

func TestCheckHomopolymerRejectsFourIdenticalCodons(t *testing.T) {
	e := New("MAAAA")
	codons := []int{0, 5, 5, 5, 5} // four identical codon indices across the run
	lookup := func(p int) int { return codons[p] }

	assert.False(t, e.CheckHomopolymer(4, lookup))
}

func TestCheckHomopolymerAcceptsDiverseCodons(t *testing.T) {
	e := New("MAAAA")
	codons := []int{0, 5, 6, 7, 8}
	lookup := func(p int) int { return codons[p] }

	assert.True(t, e.CheckHomopolymer(4, lookup))
}

func TestCheckHomopolymerIgnoresPositionsOutsideAnyRun(t *testing.T) {
	e := New("MAAAAG")
	codons := []int{0, 5, 6, 7, 8, 10}
	lookup := func(p int) int { return codons[p] }

	assert.True(t, e.CheckHomopolymer(5, lookup))
}

func TestAnalyzeRepeatsFindsDuplicateSixMers(t *testing.T) {
	protein := "GSGSGSAAAAGSGSGS" // "GSGSGS" at position 0 and position 10
	repeats, completions := analyzeRepeats(protein)
	require.Contains(t, repeats, 0)
	require.Contains(t, repeats, 10)
	assert.ElementsMatch(t, []int{10}, repeats[0])
	assert.ElementsMatch(t, []int{0}, repeats[10])
	assert.Equal(t, 0, completions[5])
	assert.Equal(t, 10, completions[15])
}

func TestAnalyzeRepeatsSkipsMAndWOnlyWindows(t *testing.T) {
	protein := "MWMWMWAAAMWMWMW"
	repeats, _ := analyzeRepeats(protein)
	assert.Empty(t, repeats)
}

func TestCheckRepeatRejectsIdenticalEncodingAtSecondOccurrence(t *testing.T) {
	protein := "GSGSGSAAAAGSGSGS"
	e := New(protein)

	// Build a DNA prefix where positions 0..9 are committed with some
	// encoding, and positions 10..15 repeat the exact same 18-nt window
	// as positions 0..5.
	firstWindow := "GGATCCGGATCCGGATCC" // 6 codons, 18 nt (not biologically meaningful, just distinct bytes)
	middle := "AAAAAAAAAAAA"          // 4 codons for AAAA, 12 nt
	dna := firstWindow + middle + firstWindow

	assert.True(t, len(dna) >= (16)*3)
	assert.False(t, e.CheckRepeat(15, dna))
}

func TestCheckRepeatAcceptsDifferentEncodingAtSecondOccurrence(t *testing.T) {
	protein := "GSGSGSAAAAGSGSGS"
	e := New(protein)

	firstWindow := "GGATCCGGATCCGGATCC"
	middle := "AAAAAAAAAAAA"
	secondWindow := "GGCTCTGGCTCTGGCTCT" // same protein window, different codons
	dna := firstWindow + middle + secondWindow

	assert.True(t, e.CheckRepeat(15, dna))
}

func TestEmptyEngineAlwaysPasses(t *testing.T) {
	e := New("MAGSVK")
	lookup := func(p int) int { return 0 }
	assert.True(t, e.CheckHomopolymer(3, lookup))
	assert.True(t, e.CheckRepeat(5, "ATGGCTGGTTCTGTTAAA"))
}
