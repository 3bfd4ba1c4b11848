/*
Package fasta parses the FASTA collaborator input described in
spec.md §6: a producer-side format supplying {name, description,
sequence} records, of which the optimizer consumes only the sequence.

The scanner is adapted from poly's bio/fasta.Parser: a single
bufio.Scanner walked line by line, buffering sequence lines until the
next header or EOF closes out a record.
*/
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Record is one parsed FASTA entry. Name and Description are derived
// from the header line by ParseHeader; Identifier is the raw header
// text with its leading '>' stripped.
type Record struct {
	Identifier  string
	Name        string
	Description string
	Sequence    string
}

// Parser reads FASTA-formatted records from an underlying reader, one
// at a time, the way poly's bio/fasta.Parser does.
type Parser struct {
	scanner    *bufio.Scanner
	buffer     bytes.Buffer
	identifier string
	start      bool
	line       uint
	more       bool
}

// NewParser returns a Parser reading from r.
func NewParser(r *bufio.Reader) *Parser {
	scanner := bufio.NewScanner(r)
	return &Parser{scanner: scanner, start: true, more: true}
}

// Next returns the next record in the underlying reader. Once every
// record has been returned, further calls return a nil record and the
// package's errEOF (not io.EOF); callers should stop on any non-nil
// error.
func (p *Parser) Next() (*Record, error) {
	if !p.more {
		return nil, errEOF
	}

	for p.scanner.Scan() {
		line := p.scanner.Bytes()
		p.line++

		switch {
		case len(line) == 0:
			continue
		case line[0] == ';':
			continue
		case line[0] != '>' && p.start:
			return nil, fmt.Errorf("fasta: missing sequence identifier for sequence starting at line %d", p.line)
		case line[0] != '>':
			p.buffer.Write(line)
		case !p.start:
			record, err := p.newRecord()
			p.identifier = string(line[1:])
			return record, err
		default:
			p.identifier = string(line[1:])
			p.start = false
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, fmt.Errorf("fasta: scanning input: %w", err)
	}

	p.more = false
	return p.newRecord()
}

func (p *Parser) newRecord() (*Record, error) {
	sequence := p.buffer.String()
	p.buffer.Reset()
	if sequence == "" {
		return nil, fmt.Errorf("fasta: %q has no sequence", p.identifier)
	}

	name, description := ParseHeader(p.identifier)
	return &Record{
		Identifier:  p.identifier,
		Name:        name,
		Description: description,
		Sequence:    sequence,
	}, nil
}

// errEOF is returned once every record has been consumed.
var errEOF = fmt.Errorf("fasta: no more records")

// ParseHeader recognizes the three header forms from spec.md §6:
// "Name [Description]", "Name|Description", and "Name Description".
// A bare name with none of these separators yields an empty
// description.
func ParseHeader(header string) (name, description string) {
	if idx := strings.Index(header, "["); idx >= 0 && strings.HasSuffix(header, "]") {
		name = strings.TrimSpace(header[:idx])
		description = strings.TrimSpace(header[idx+1 : len(header)-1])
		return name, description
	}
	if idx := strings.Index(header, "|"); idx >= 0 {
		name = strings.TrimSpace(header[:idx])
		description = strings.TrimSpace(header[idx+1:])
		return name, description
	}
	if idx := strings.IndexAny(header, " \t"); idx >= 0 {
		name = strings.TrimSpace(header[:idx])
		description = strings.TrimSpace(header[idx+1:])
		return name, description
	}
	return strings.TrimSpace(header), ""
}
