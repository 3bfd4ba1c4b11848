/*
Package exclusion compiles the disallowed-motif configuration described
in spec.md §4.2 into a ready-to-check set of regular expressions.

Three sources merge, in order: a process-wide base pattern file, a
per-job list of enzyme names resolved through a static registry, and a
per-job list of raw literal/regex patterns. IUPAC degenerate letters are
expanded to character classes the way poly's `checks/patterns.go` and
`synthesis/fix/patterns.go` do it, and every literal site additionally
emits its reverse complement (skipping palindromes), exactly like poly's
`synthesis/fix.RemoveSequence`.
*/
package exclusion

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
)

// Pattern is one compiled exclusion motif.
type Pattern struct {
	Regexp       *regexp.Regexp
	CodonAligned bool
	Source       string // human-readable origin, for diagnostics/logging
}

// Set is the merged, compiled output of the exclusion compiler: every
// pattern the DNA must avoid, plus the window length needed to check it
// incrementally (spec.md §4.4).
type Set struct {
	Patterns         []Pattern
	MaxPatternLength int
}

// defaultMaxPatternLength is spec.md §6's default scanning window.
const defaultMaxPatternLength = 100

// BasePattern is one line of a parsed base exclusion file.
type BasePattern struct {
	Pattern      string
	CodonAligned bool
}

// ParseBaseFile parses the process-wide base exclusion file format from
// spec.md §6: one pattern per line, '#' starts a line comment, a
// trailing " @codon" marks the pattern codon-aligned, blank lines are
// ignored.
func ParseBaseFile(data []byte) ([]BasePattern, error) {
	var patterns []BasePattern
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	for scanner.Scan() {
		line := scanner.Text()
		if hash := strings.IndexByte(line, '#'); hash >= 0 {
			line = line[:hash]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		codonAligned := false
		if strings.HasSuffix(line, "@codon") {
			codonAligned = true
			line = strings.TrimSpace(strings.TrimSuffix(line, "@codon"))
		}
		if line == "" {
			continue
		}
		patterns = append(patterns, BasePattern{Pattern: line, CodonAligned: codonAligned})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("exclusion: parsing base file: %w", err)
	}
	return patterns, nil
}

// Config is a job's exclusion configuration (spec.md §6): enzyme names
// resolved through the registry, and raw literal/regex patterns.
type Config struct {
	EnzymeNames []string
	RawPatterns []string
}

// Compile merges the base file patterns, the job's enzyme list, and the
// job's raw patterns into a compiled Set, per spec.md §4.2.
//
// Each enzyme and raw literal additionally contributes its reverse
// complement unless it is palindromic, following poly's
// `synthesis/fix.RemoveSequence`. Codon alignment comes only from a
// base-file line's @codon suffix; enzyme and raw patterns are never
// codon-aligned (a submitter who needs that can add the sequence to
// the base file instead).
func Compile(basePatterns []BasePattern, cfg Config, maxPatternLength int) (*Set, error) {
	if maxPatternLength <= 0 {
		maxPatternLength = defaultMaxPatternLength
	}

	var patterns []Pattern

	for _, bp := range basePatterns {
		re, err := compileOne(bp.Pattern)
		if err != nil {
			return nil, fmt.Errorf("exclusion: base pattern %q: %w", bp.Pattern, err)
		}
		patterns = append(patterns, Pattern{Regexp: re, CodonAligned: bp.CodonAligned, Source: "base:" + bp.Pattern})
	}

	for _, name := range cfg.EnzymeNames {
		site, err := recognitionSequence(name)
		if err != nil {
			return nil, err
		}
		for _, literal := range literalAndReverseComplement(site) {
			re, err := compileOne(literal)
			if err != nil {
				return nil, fmt.Errorf("exclusion: enzyme %q site %q: %w", name, literal, err)
			}
			patterns = append(patterns, Pattern{Regexp: re, CodonAligned: false, Source: "enzyme:" + name})
		}
	}

	for _, raw := range cfg.RawPatterns {
		for _, literal := range literalAndReverseComplement(raw) {
			re, err := compileOne(literal)
			if err != nil {
				return nil, fmt.Errorf("exclusion: raw pattern %q: %w", raw, err)
			}
			patterns = append(patterns, Pattern{Regexp: re, CodonAligned: false, Source: "raw:" + raw})
		}
	}

	return &Set{Patterns: patterns, MaxPatternLength: maxPatternLength}, nil
}

// literalAndReverseComplement returns a pattern and its reverse
// complement, skipping the duplicate when the pattern is palindromic.
// Regex fragments (containing metacharacters) are passed through
// unchanged on the reverse-complement side is meaningless, so only
// sequences that look like plain IUPAC literals get the second entry.
func literalAndReverseComplement(pattern string) []string {
	if !looksLikeLiteral(pattern) {
		return []string{pattern}
	}
	rc := reverseComplement(pattern)
	if rc == strings.ToUpper(pattern) {
		return []string{pattern}
	}
	return []string{pattern, rc}
}

// looksLikeLiteral reports whether a pattern is composed solely of
// IUPAC nucleotide letters (as opposed to a regex fragment with
// metacharacters like `(`, `|`, `*`, `+`).
func looksLikeLiteral(pattern string) bool {
	for _, r := range strings.ToUpper(pattern) {
		if _, ok := iupacBases[r]; !ok {
			return false
		}
	}
	return true
}

// compileOne translates IUPAC degenerate letters to character classes
// and compiles the result as a case-insensitive regexp, the same
// approach as poly's checks/patterns.go and synthesis/fix/patterns.go.
func compileOne(pattern string) (*regexp.Regexp, error) {
	var buf strings.Builder
	buf.WriteString("(?i)")
	for _, r := range pattern {
		if bases, ok := iupacBases[r]; ok && len(bases) > 1 {
			buf.WriteByte('[')
			for _, b := range bases {
				buf.WriteRune(b)
			}
			buf.WriteByte(']')
			continue
		}
		buf.WriteRune(r)
	}
	return regexp.Compile(buf.String())
}
