package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vireobio/codonopt/constraint"
	"github.com/vireobio/codonopt/exclusion"
	"github.com/vireobio/codonopt/geneticcode"
)

func TestBeamProducesValidTranslationForSimpleProtein(t *testing.T) {
	result := Beam("MA", geneticcode.Standard, nil, nil, nil, 0)
	require.NotNil(t, result.Success)
	require.Nil(t, result.Failure)
	assert.Len(t, result.Success.DNA, 6)

	translated, err := geneticcode.Translate(result.Success.DNA, geneticcode.Standard)
	require.NoError(t, err)
	assert.Equal(t, "MA", translated)
}

func TestDPProducesValidTranslationForSimpleProtein(t *testing.T) {
	result := DP("MASK", geneticcode.Standard, nil, nil, nil, 0, 0)
	require.NotNil(t, result.Success)
	require.Nil(t, result.Failure)
	assert.Len(t, result.Success.DNA, 12)

	translated, err := geneticcode.Translate(result.Success.DNA, geneticcode.Standard)
	require.NoError(t, err)
	assert.Equal(t, "MASK", translated)
}

func TestBeamFailsOverConstrainedWhenEveryCodonExcluded(t *testing.T) {
	// M always encodes as ATG, its only codon. Excluding the literal
	// ATG (and its reverse complement CAT) leaves no admissible codon
	// at position 0.
	set, err := exclusion.Compile(nil, exclusion.Config{RawPatterns: []string{"ATG"}}, 0)
	require.NoError(t, err)

	result := Beam("MA", geneticcode.Standard, nil, set, nil, 0)
	require.Nil(t, result.Success)
	require.NotNil(t, result.Failure)
	assert.Equal(t, OverConstrained, result.Failure.Kind)
	assert.Equal(t, 0, result.Failure.Position)
}

func TestDPFailsOverConstrainedWhenEveryCodonExcluded(t *testing.T) {
	set, err := exclusion.Compile(nil, exclusion.Config{RawPatterns: []string{"ATG"}}, 0)
	require.NoError(t, err)

	result := DP("MA", geneticcode.Standard, nil, set, nil, 0, 0)
	require.Nil(t, result.Success)
	require.NotNil(t, result.Failure)
	assert.Equal(t, OverConstrained, result.Failure.Kind)
}

func TestBeamRespectsHomopolymerDiversity(t *testing.T) {
	protein := "MAAAA"
	cons := constraint.New(protein)
	result := Beam(protein, geneticcode.Standard, nil, nil, cons, 0)
	require.NotNil(t, result.Success)

	dna := result.Success.DNA
	codons := make([]string, len(protein))
	for i := range protein {
		codons[i] = dna[i*3 : i*3+3]
	}
	// No window of 4 consecutive positions within the AAAA run (AA
	// positions 1..4) may share a single repeated codon.
	for start := 1; start+3 <= 4; start++ {
		distinct := map[string]bool{}
		for p := start; p < start+4; p++ {
			distinct[codons[p]] = true
		}
		assert.True(t, len(distinct) >= 2, "positions %d..%d are not diverse: %v", start, start+3, codons[start:start+4])
	}
}

func TestDPRespectsRepeatedSixMerDiversity(t *testing.T) {
	protein := "GSGSGSAAAAGSGSGS"
	cons := constraint.New(protein)
	result := DP(protein, geneticcode.Standard, nil, nil, cons, 0, 0)
	require.NotNil(t, result.Success)

	dna := result.Success.DNA
	first := dna[0:18]
	second := dna[30:48]
	assert.NotEqual(t, first, second)
}

func TestDPAndBeamAgreeOnTrivialProtein(t *testing.T) {
	beamResult := Beam("MV", geneticcode.Standard, nil, nil, nil, 0)
	dpResult := DP("MV", geneticcode.Standard, nil, nil, nil, 0, 0)
	require.NotNil(t, beamResult.Success)
	require.NotNil(t, dpResult.Success)
	assert.Equal(t, beamResult.Success.Score, dpResult.Success.Score)
}

// TestDPIsDeterministicAcrossRepeatedRuns guards spec.md §8 Testable
// Property 7: with a nil oracle every candidate scores 0, so every
// extension at every position ties, and pruning must fall back to a
// deterministic tie-break rather than Go's randomized map iteration
// order. A protein with many amino acids carrying several candidate
// codons (e.g. L, R, S each have 6) produces enough same-state
// collisions across positions to exercise both prunePerBucket and
// pruneGlobalBuckets.
func TestDPIsDeterministicAcrossRepeatedRuns(t *testing.T) {
	protein := "MLRSLRSLRSLRSLRS"
	var first string
	for i := 0; i < 20; i++ {
		result := DP(protein, geneticcode.Standard, nil, nil, nil, 4, 2)
		require.NotNil(t, result.Success)
		if i == 0 {
			first = result.Success.DNA
			continue
		}
		assert.Equal(t, first, result.Success.DNA, "run %d produced a different DNA sequence than run 0", i)
	}
}
