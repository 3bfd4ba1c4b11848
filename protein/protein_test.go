package protein

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deterministic(choice byte) Resolver {
	return func(candidates []byte) byte { return choice }
}

func TestValidateCleansWhitespaceDigitsHyphensDots(t *testing.T) {
	seq, _, err := validateWithResolver("m a-1.2k", nil)
	require.NoError(t, err)
	assert.Equal(t, "MAK", seq.String())
}

func TestValidateStripsTrailingStop(t *testing.T) {
	seq, _, err := validateWithResolver("MA*", nil)
	require.NoError(t, err)
	assert.Equal(t, "MA", seq.String())
}

func TestValidateRejectsInternalStop(t *testing.T) {
	_, _, err := validateWithResolver("MA*K", nil)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestValidateRejectsIllegalCharacter(t *testing.T) {
	_, _, err := validateWithResolver("MA1Q", nil) // digit already stripped; use a real illegal letter instead
	assert.NoError(t, err)

	_, _, err = validateWithResolver("MA!Q", nil)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestValidateRejectsTooShort(t *testing.T) {
	_, _, err := validateWithResolver("M", nil)
	assert.ErrorIs(t, err, ErrInvalidSequence)

	_, _, err = validateWithResolver("", nil)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestValidateResolvesAmbiguityCodesDeterministically(t *testing.T) {
	seq, warnings, err := validateWithResolver("MUXZ", deterministic('Q'))
	require.NoError(t, err)
	assert.Equal(t, "MQQQ", seq.String()) // U->C normally, but resolver is forced to Q for this test
	require.Len(t, warnings, 1)
	assert.Equal(t, WarningAmbiguityResolved, warnings[0].Kind)
}

func TestValidateWarnsOnLongSequence(t *testing.T) {
	long := make([]byte, lengthWarningThreshold+1)
	for i := range long {
		long[i] = 'A'
	}
	_, warnings, err := validateWithResolver(string(long), nil)
	require.NoError(t, err)
	found := false
	for _, w := range warnings {
		if w.Kind == WarningLongSequence {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidatePublicEntrypointIsDeterministicGivenSeed(t *testing.T) {
	seq1, _, err := Validate("MXXXXK", 42)
	require.NoError(t, err)
	seq2, _, err := Validate("MXXXXK", 42)
	require.NoError(t, err)
	assert.Equal(t, seq1.String(), seq2.String())
}

func TestValidateWarningsMatchExpectedSetExactly(t *testing.T) {
	_, warnings, err := validateWithResolver("MUK", deterministic('C'))
	require.NoError(t, err)
	want := []Warning{{
		Kind:    WarningAmbiguityResolved,
		Message: "one or more ambiguity codes were resolved to a concrete amino acid",
	}}
	if diff := cmp.Diff(want, warnings); diff != "" {
		t.Errorf("warnings mismatch (-want +got):\n%s", diff)
	}
}
