package fasta

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParserReadsMultipleRecords(t *testing.T) {
	input := ">seq1 [first protein]\nMASKGEEL\n>seq2|second protein\nMVLSPADK\n"
	parser := NewParser(bufio.NewReader(strings.NewReader(input)))

	first, err := parser.Next()
	require.NoError(t, err)
	assert.Equal(t, "seq1", first.Name)
	assert.Equal(t, "first protein", first.Description)
	assert.Equal(t, "MASKGEEL", first.Sequence)

	second, err := parser.Next()
	require.NoError(t, err)
	assert.Equal(t, "seq2", second.Name)
	assert.Equal(t, "second protein", second.Description)
	assert.Equal(t, "MVLSPADK", second.Sequence)

	_, err = parser.Next()
	assert.ErrorIs(t, err, errEOF)
}

func TestParserRejectsMissingIdentifier(t *testing.T) {
	parser := NewParser(bufio.NewReader(strings.NewReader("MASKGEEL\n")))
	_, err := parser.Next()
	require.Error(t, err)
}

func TestParserSkipsCommentsAndBlankLines(t *testing.T) {
	input := ">seq1\n; a comment\n\nMASK\nGEEL\n"
	parser := NewParser(bufio.NewReader(strings.NewReader(input)))
	record, err := parser.Next()
	require.NoError(t, err)
	assert.Equal(t, "MASKGEEL", record.Sequence)
}

func TestParseHeaderRecognizesAllThreeForms(t *testing.T) {
	name, desc := ParseHeader("seq1 [a description]")
	assert.Equal(t, "seq1", name)
	assert.Equal(t, "a description", desc)

	name, desc = ParseHeader("seq2|another description")
	assert.Equal(t, "seq2", name)
	assert.Equal(t, "another description", desc)

	name, desc = ParseHeader("seq3 a space separated description")
	assert.Equal(t, "seq3", name)
	assert.Equal(t, "a space separated description", desc)

	name, desc = ParseHeader("bareName")
	assert.Equal(t, "bareName", name)
	assert.Equal(t, "", desc)
}

func TestCheckConventionsWarnsOnMissingStartAndStop(t *testing.T) {
	warnings := CheckConventions("ASKGEEL")
	assert.Len(t, warnings, 2)

	warnings = CheckConventions("MASKGEEL*")
	assert.Empty(t, warnings)
}
