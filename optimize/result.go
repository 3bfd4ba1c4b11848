/*
Package optimize implements the two reverse-translation search
variants from spec.md §4.5 (beam search) and §4.6 (DP with state
grouping), sharing the same scoring, exclusion, and constraint checks
and the same result shape.
*/
package optimize

import (
	"fmt"
	"time"
)

// FailureKind tags why a search failed to produce a DNA sequence, per
// spec.md §9's Success/Failure tagged union.
type FailureKind string

const (
	// OverConstrained means every candidate at Position was eliminated
	// by exclusion or the structural constraint engines.
	OverConstrained FailureKind = "OverConstrained"
	// TranslationMismatch means a completed search produced a DNA
	// string whose translation does not reproduce the input protein.
	// Per spec.md §9 this is an invariant violation, not a user error.
	TranslationMismatch FailureKind = "TranslationMismatch"
)

// Failure is the optimizer's failure half of the result union.
type Failure struct {
	Kind FailureKind
	// Position is meaningful only when Kind is OverConstrained.
	Position int
}

func (f *Failure) Error() string {
	if f.Kind == OverConstrained {
		return fmt.Sprintf("optimize: over-constrained at position %d", f.Position)
	}
	return fmt.Sprintf("optimize: %s", f.Kind)
}

// Success is the optimizer's success half of the result union.
type Success struct {
	DNA         string
	Score       int
	Elapsed     time.Duration
	NumExcluded int
}

// Result is the tagged union spec.md §9 calls for: exactly one of
// Success or Failure is non-nil.
type Result struct {
	Success *Success
	Failure *Failure
}

func success(dna string, dnaScore int, elapsed time.Duration, numExcluded int) Result {
	return Result{Success: &Success{DNA: dna, Score: dnaScore, Elapsed: elapsed, NumExcluded: numExcluded}}
}

func overConstrained(position int) Result {
	return Result{Failure: &Failure{Kind: OverConstrained, Position: position}}
}

func translationMismatch() Result {
	return Result{Failure: &Failure{Kind: TranslationMismatch}}
}
