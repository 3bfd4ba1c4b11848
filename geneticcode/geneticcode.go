/*
Package geneticcode provides the static mapping between codons and amino
acids that the rest of codonopt builds on.

The standard genetic code maps 64 codons onto 20 amino acids and 3 stop
signals. This package generates that table once, at package init, using
the same NCBI base1/base2/base3 trick poly's codon package uses to build
its translation tables, and exposes the canonical codon ordering that lets
the optimizers pack a codon into a 6-bit index and a pair of codons into a
12-bit state key.

Only NCBI table 1 (the standard code) is generated: codonopt's target
organism tag is bookkeeping only (see SPEC_FULL.md), not a table
selector.
*/
package geneticcode

import (
	"errors"
	"fmt"
	"strings"
)

// errEmptySequence is returned by Translate when given an empty DNA string.
var errEmptySequence = errors.New("geneticcode: empty sequence string")

// Codon is a single codon triplet.
type Codon struct {
	Triplet string
	// Index is the codon's position in the canonical ordering (0..63),
	// used to pack state keys for the DP optimizer.
	Index int
}

// AminoAcid holds the amino acid letter and its candidate codons, in
// canonical enumeration order. Candidate order is significant: spec.md's
// tie-break rule is "earlier in the enumeration order of candidate
// codons wins" when scores are equal.
type AminoAcid struct {
	Letter string
	Codons []Codon
}

// Table is the standard genetic code: every codon's amino acid, every
// amino acid's candidate codons, and the codon <-> index mapping needed
// to pack DP state keys.
type Table struct {
	aminoAcidToCodons map[string][]Codon
	codonToAminoAcid  map[string]string
	codonToIndex      map[string]int
	indexToCodon      []string
	stopCodons        map[string]bool
}

// NumCodons is the number of sense + stop codons in the standard code.
const NumCodons = 64

// Standard is the standard genetic code (NCBI translation table 1),
// built once at package init.
var Standard = buildStandardTable()

// buildStandardTable regenerates poly's translationTablesByNumber[1]
// entry directly: same base1/base2/base3 scan, same amino-acid and stop
// strings, reduced to just what codonopt needs (no start-codon tracking,
// since reverse translation always begins its DNA at position 0 and
// never needs to recognize a start codon in existing DNA).
func buildStandardTable() *Table {
	const (
		base1 = "TTTTTTTTTTTTTTTTCCCCCCCCCCCCCCCCAAAAAAAAAAAAAAAAGGGGGGGGGGGGGGGG"
		base2 = "TTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGGTTTTCCCCAAAAGGGG"
		base3 = "TCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAGTCAG"
		aas   = "FFLLSSSSYY**CC*WLLLLPPPPHHQQRRRRIIIMTTTTNNKKSSRRVVVVAAAADDEEGGGG"
	)

	t := &Table{
		aminoAcidToCodons: make(map[string][]Codon),
		codonToAminoAcid:  make(map[string]string),
		codonToIndex:      make(map[string]int, NumCodons),
		indexToCodon:      make([]string, NumCodons),
		stopCodons:        make(map[string]bool),
	}

	for i := 0; i < NumCodons; i++ {
		triplet := string([]byte{base1[i], base2[i], base3[i]})
		letter := string(aas[i])

		t.codonToIndex[triplet] = i
		t.indexToCodon[i] = triplet

		if letter == "*" {
			t.stopCodons[triplet] = true
			continue
		}

		t.codonToAminoAcid[triplet] = letter
		t.aminoAcidToCodons[letter] = append(t.aminoAcidToCodons[letter], Codon{Triplet: triplet, Index: i})
	}

	return t
}

// Candidates returns the candidate codons for a single-letter amino
// acid, in canonical (tie-break) order. Returns nil if the letter isn't
// one of the 20 standard amino acids.
func (t *Table) Candidates(aminoAcid byte) []Codon {
	return t.aminoAcidToCodons[string(aminoAcid)]
}

// HasAminoAcid reports whether the table has at least one codon for the
// given amino acid letter.
func (t *Table) HasAminoAcid(aminoAcid byte) bool {
	return len(t.aminoAcidToCodons[string(aminoAcid)]) > 0
}

// CodonIndex returns the canonical index (0..63) of a codon triplet.
func (t *Table) CodonIndex(triplet string) (int, bool) {
	idx, ok := t.codonToIndex[triplet]
	return idx, ok
}

// StateKey packs two consecutive codon indices into the 12-bit DP state
// key described in spec.md §4.6: (idx(codon_{p-1}) << 6) | idx(codon_p).
func StateKey(prev, curr int) int {
	return (prev << 6) | curr
}

// Translate turns a DNA string into the amino acid sequence implied by
// non-overlapping codon lookup, stopping at the first in-frame stop
// codon (TAA, TAG, TGA), exactly as spec.md §4.7 requires.
func Translate(dna string, t *Table) (string, error) {
	if len(dna) == 0 {
		return "", errEmptySequence
	}

	dna = strings.ToUpper(dna)
	var aminoAcids strings.Builder
	for i := 0; i+3 <= len(dna); i += 3 {
		codon := dna[i : i+3]
		if t.stopCodons[codon] {
			break
		}
		aa, ok := t.codonToAminoAcid[codon]
		if !ok {
			return "", fmt.Errorf("geneticcode: codon %q at position %d is not in the standard genetic code", codon, i)
		}
		aminoAcids.WriteString(aa)
	}
	return aminoAcids.String(), nil
}
