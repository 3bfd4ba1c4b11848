package geneticcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateStopsAtFirstInFrameStop(t *testing.T) {
	dna := "ATGGCTTAA" + "GGG" // Met-Ala-Stop, trailing codon must be ignored
	got, err := Translate(dna, Standard)
	require.NoError(t, err)
	assert.Equal(t, "MA", got)
}

func TestTranslateRoundTripsGfp(t *testing.T) {
	protein := "MASKGEELFTGVV"
	dna := "ATGGCTAGCAAAGGAGAAGAACTTTTCACTGGAGTTGTC"
	got, err := Translate(dna, Standard)
	require.NoError(t, err)
	assert.Equal(t, protein, got)
}

func TestTranslateRejectsEmptySequence(t *testing.T) {
	_, err := Translate("", Standard)
	assert.ErrorIs(t, err, errEmptySequence)
}

func TestTranslateRejectsUnknownCodon(t *testing.T) {
	_, err := Translate("XXX", Standard)
	assert.Error(t, err)
}

func TestCandidatesCoverAllTwentyAminoAcids(t *testing.T) {
	for _, letter := range "ACDEFGHIKLMNPQRSTVWY" {
		codons := Standard.Candidates(byte(letter))
		assert.NotEmptyf(t, codons, "amino acid %q should have at least one codon", letter)
	}
}

func TestCandidatesOrderIsDeterministic(t *testing.T) {
	first := Standard.Candidates('L')
	second := Standard.Candidates('L')
	assert.Equal(t, first, second)
	assert.Len(t, first, 6) // Leucine has six synonymous codons
}

func TestStateKeyPacksTwoCodonIndices(t *testing.T) {
	key := StateKey(5, 9)
	assert.Equal(t, (5<<6)|9, key)
	assert.Less(t, key, 1<<12)
}

func TestCodonIndexRoundTrips(t *testing.T) {
	idx, ok := Standard.CodonIndex("ATG")
	require.True(t, ok)
	assert.GreaterOrEqual(t, idx, 0)
	assert.Less(t, idx, NumCodons)

	_, ok = Standard.CodonIndex("ZZZ")
	assert.False(t, ok)
}
