/*
Package protein validates and normalizes user-supplied protein strings
before they ever reach an optimizer.

The cleaning pipeline follows spec.md §4.1: strip whitespace/digits/
hyphens/dots, uppercase, reject anything outside the 20-letter alphabet
plus ambiguity codes, resolve ambiguity codes, strip trailing stops, and
fail on anything left shorter than two residues.

Ambiguity resolution is randomized, matching poly's own
`synthesis/codon/codon.go` `Optimize`, which takes an injectable
`rand.Source` rather than reaching for a global generator. Determinism
of the optimizers downstream is unaffected: once Validate has picked a
concrete amino acid for each ambiguity code, the resulting Sequence is
plain data, and DP/beam search over it is deterministic per spec.md §9.
*/
package protein

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ErrInvalidSequence is the sentinel wrapped by every validation failure,
// matching spec.md §7's InvalidSequence error kind.
var ErrInvalidSequence = errors.New("protein: invalid sequence")

// standardAminoAcids is the 20-letter alphabet a cleaned sequence must
// be drawn from once ambiguity codes have been resolved.
const standardAminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// ambiguityResolutions maps each ambiguity symbol to its candidate
// resolutions, per spec.md §4.1 step 3: U->C, O->K, B->{D,N}, Z->{E,Q},
// J->{L,I}, X->any of the 20.
var ambiguityResolutions = map[byte][]byte{
	'U': []byte("C"),
	'O': []byte("K"),
	'B': []byte("DN"),
	'Z': []byte("EQ"),
	'J': []byte("LI"),
	'X': []byte(standardAminoAcids),
}

// lengthWarningThreshold is the cleaned-length above which Validate
// emits a performance warning (spec.md §4.1 step 5).
const lengthWarningThreshold = 10_000

// Warning is a non-fatal observation produced while validating a raw
// protein string.
type Warning struct {
	Kind    string
	Message string
}

const (
	WarningAmbiguityResolved = "ambiguity_resolved"
	WarningLongSequence      = "long_sequence"
)

// Sequence is a validated, cleaned protein sequence: every byte is one
// of the 20 standard amino acid letters, and it is at least 2 residues
// long.
type Sequence struct {
	raw string
}

// String returns the cleaned amino acid string.
func (s Sequence) String() string { return s.raw }

// Len returns the number of amino acid residues.
func (s Sequence) Len() int { return len(s.raw) }

// Resolver picks one concrete amino acid out of a set of candidates for
// an ambiguity code. Validate always uses a randomized resolver, made
// reproducible by passing a seed; only the package's own tests supply
// a deterministic Resolver, through validateWithResolver.
type Resolver func(candidates []byte) byte

// randomResolver builds a Resolver backed by an injected rand.Source,
// mirroring the `randomState ...int` seeding style of poly's
// `TranslationTable.Optimize`.
func randomResolver(src rand.Source) Resolver {
	r := rand.New(src)
	return func(candidates []byte) byte {
		return candidates[r.Intn(len(candidates))]
	}
}

// Validate cleans, normalizes, and validates a raw protein string,
// following spec.md §4.1. randomSeed, if provided, seeds the ambiguity
// resolver deterministically (useful for tests); omitted, it seeds from
// the wall clock, matching poly's own Optimize default.
func Validate(raw string, randomSeed ...int64) (Sequence, []Warning, error) {
	var seed int64
	if len(randomSeed) > 0 {
		seed = randomSeed[0]
	} else {
		seed = time.Now().UTC().UnixNano()
	}
	return validateWithResolver(raw, randomResolver(rand.NewSource(seed)))
}

func validateWithResolver(raw string, resolve Resolver) (Sequence, []Warning, error) {
	var warnings []Warning

	cleaned := clean(raw)

	if err := rejectIllegalCharacters(cleaned); err != nil {
		return Sequence{}, nil, err
	}

	resolvedAny := false
	resolved := make([]byte, 0, len(cleaned))
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if candidates, ambiguous := ambiguityResolutions[c]; ambiguous {
			resolved = append(resolved, resolve(candidates))
			resolvedAny = true
			continue
		}
		resolved = append(resolved, c)
	}
	if resolvedAny {
		warnings = append(warnings, Warning{
			Kind:    WarningAmbiguityResolved,
			Message: "one or more ambiguity codes were resolved to a concrete amino acid",
		})
	}

	// Strip trailing stop markers (spec.md §4.1 step 4). Every trailing
	// '*' is cleaned away here rather than rejected, matching how FASTA
	// records commonly end with a stop marker; a '*' anywhere else is
	// rejected below.
	for len(resolved) > 0 && resolved[len(resolved)-1] == '*' {
		resolved = resolved[:len(resolved)-1]
	}
	if strings.IndexByte(string(resolved), '*') >= 0 {
		return Sequence{}, nil, fmt.Errorf("%w: internal stop marker is not allowed", ErrInvalidSequence)
	}

	if len(resolved) > lengthWarningThreshold {
		warnings = append(warnings, Warning{
			Kind:    WarningLongSequence,
			Message: fmt.Sprintf("sequence length %d exceeds %d residues; optimization may be slow", len(resolved), lengthWarningThreshold),
		})
	}

	if len(resolved) < 2 {
		return Sequence{}, nil, fmt.Errorf("%w: cleaned sequence length %d is below the minimum of 2", ErrInvalidSequence, len(resolved))
	}

	return Sequence{raw: string(resolved)}, warnings, nil
}

// clean strips whitespace, digits, hyphens, dots and uppercases the
// remainder, per spec.md §4.1 step 1.
func clean(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		case c >= '0' && c <= '9':
			continue
		case c == '-' || c == '.':
			continue
		default:
			b.WriteByte(c)
		}
	}
	return strings.ToUpper(b.String())
}

// rejectIllegalCharacters fails if any character of the cleaned string
// falls outside the 20-letter alphabet, the ambiguity codes, or the stop
// marker, per spec.md §4.1 step 2.
func rejectIllegalCharacters(cleaned string) error {
	for i := 0; i < len(cleaned); i++ {
		c := cleaned[i]
		if strings.IndexByte(standardAminoAcids, c) >= 0 {
			continue
		}
		if _, ambiguous := ambiguityResolutions[c]; ambiguous {
			continue
		}
		if c == '*' {
			continue
		}
		return fmt.Errorf("%w: illegal character %q at position %d", ErrInvalidSequence, c, i)
	}
	return nil
}
