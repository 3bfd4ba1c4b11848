package exclusion

import "strings"

// complementBase maps a nucleotide to its complement, the same 1:1
// mapping poly's transform package uses for ReverseComplement.
var complementBase = map[rune]rune{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C',
	'R': 'Y', 'Y': 'R', 'S': 'S', 'W': 'W',
	'K': 'M', 'M': 'K', 'B': 'V', 'V': 'B',
	'D': 'H', 'H': 'D', 'N': 'N',
}

// reverseComplement mirrors poly's transform.ReverseComplement, reversing
// the sequence and complementing each base (including IUPAC degenerate
// letters, since enzyme recognition sites are often expressed with them).
func reverseComplement(sequence string) string {
	runes := []rune(strings.ToUpper(sequence))
	out := make([]rune, len(runes))
	for i, r := range runes {
		c, ok := complementBase[r]
		if !ok {
			c = r
		}
		out[len(out)-1-i] = c
	}
	return string(out)
}

// iupacBases maps each IUPAC degenerate nucleotide code to the literal
// bases it stands for, adapted from poly's
// transform/variants.AllVariantsIUPAC rune map.
var iupacBases = map[rune][]rune{
	'A': {'A'}, 'C': {'C'}, 'G': {'G'}, 'T': {'T'},
	'R': {'A', 'G'}, 'Y': {'C', 'T'}, 'M': {'A', 'C'}, 'K': {'G', 'T'},
	'S': {'G', 'C'}, 'W': {'A', 'T'},
	'H': {'A', 'C', 'T'}, 'B': {'G', 'T', 'C'}, 'V': {'G', 'C', 'A'}, 'D': {'G', 'A', 'T'},
	'N': {'A', 'C', 'G', 'T'},
}
