package score

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackNinemerRoundTripsDistinctValues(t *testing.T) {
	a, ok := packNinemer("AAAAAAAAA")
	require.True(t, ok)
	assert.Equal(t, 0, a)

	t2, ok := packNinemer("TTTTTTTTT")
	require.True(t, ok)
	assert.Equal(t, ninemerIndexSpace-1, t2)

	mixed, ok := packNinemer("ACGTACGTA")
	require.True(t, ok)
	assert.True(t, mixed > 0 && mixed < ninemerIndexSpace)
}

func TestPackNinemerRejectsWrongLengthOrLetters(t *testing.T) {
	_, ok := packNinemer("ACGT")
	assert.False(t, ok)

	_, ok = packNinemer("ACGTNACGT")
	assert.False(t, ok)
}

func TestScoreReturnsZeroForMissingTripletOrNinemer(t *testing.T) {
	o := Build(map[string]map[string]int{
		"MAS": {"ATGGCTAGC": 42},
	})
	assert.Equal(t, 42, o.Score("MAS", "ATGGCTAGC"))
	assert.Equal(t, 0, o.Score("MAS", "ATGGCTAGT"))
	assert.Equal(t, 0, o.Score("XYZ", "ATGGCTAGC"))
}

func TestScoreOnNilOracleReturnsZero(t *testing.T) {
	var o *Oracle
	assert.Equal(t, 0, o.Score("MAS", "ATGGCTAGC"))
}

func TestBuildChoosesDenseBackingWhenPopulous(t *testing.T) {
	entries := make(map[string]int, denseThreshold+1)
	bases := "ACGT"
	count := 0
	// Generate enough distinct 9-mers to cross the dense threshold.
	for a := 0; a < 4 && count <= denseThreshold; a++ {
		for b := 0; b < 4 && count <= denseThreshold; b++ {
			for c := 0; c < 4 && count <= denseThreshold; c++ {
				for d := 0; d < 4 && count <= denseThreshold; d++ {
					for e := 0; e < 4 && count <= denseThreshold; e++ {
						for f := 0; f < 4 && count <= denseThreshold; f++ {
							ninemer := strings.Repeat("A", 0) +
								string(bases[a]) + string(bases[b]) + string(bases[c]) + string(bases[d]) + string(bases[e]) + string(bases[f]) +
								"AAA"
							entries[ninemer] = count
							count++
						}
					}
				}
			}
		}
	}

	o := Build(map[string]map[string]int{"AAA": entries})
	table := o.triplets["AAA"]
	assert.NotNil(t, table.dense)
	assert.Nil(t, table.sparse)
}

func TestBuildChoosesSparseBackingWhenScarce(t *testing.T) {
	o := Build(map[string]map[string]int{
		"AAA": {"AAAAAAAAA": 1, "CCCCCCCCC": 2},
	})
	table := o.triplets["AAA"]
	assert.Nil(t, table.dense)
	assert.NotNil(t, table.sparse)
}

func TestLoadParsesOnDiskFormat(t *testing.T) {
	r := strings.NewReader(`{"ninemer_scores": {"MAS": {"ATGGCTAGC": 7}}}`)
	o, err := Load(r)
	require.NoError(t, err)
	assert.Equal(t, 7, o.Score("MAS", "ATGGCTAGC"))
}
