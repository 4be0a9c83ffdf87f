// The nuc package defines the nucleotide symbol type and its conversions
// to and from text.
package nuc

import (
	"fmt"
	"strings"
)

// Nuc represents one of the four DNA bases. The numeric value of a base
// is its 2-bit code in the packed representation; the packed encoder and
// decoder both depend on this assignment.
type Nuc byte

const (
	A Nuc = 0 // Adenine
	C Nuc = 1 // Cytosine
	G Nuc = 2 // Guanine
	T Nuc = 3 // Thymine
)

// The four bases in canonical order. Callers that print per-base
// summaries range over it to get a fixed output order.
var All = [4]Nuc{A, C, G, T}

var ntNames = "ACGT"

// ParseError lists every character of an input that is not a valid base.
type ParseError struct {
	Bad []rune

	// The input of a single-base parse was not one character long.
	// Bad then holds the whole input, valid bases included.
	WrongLen bool
}

func (e *ParseError) Error() string {
	if e.WrongLen {
		return fmt.Sprintf("expecting a single nucleotide, got %q", string(e.Bad))
	}

	switch len(e.Bad) {
	case 0:
		return "invalid nucleotide: empty input"

	case 1:
		return fmt.Sprintf("invalid nucleotide: %q", e.Bad[0])
	}

	bs := make([]string, len(e.Bad))
	for i, c := range e.Bad {
		bs[i] = fmt.Sprintf("%q", c)
	}

	return "invalid nucleotides: " + strings.Join(bs, ", ")
}

// Converts a single character to its nucleotide. The conversion is case
// insensitive. Characters outside of ACGT fail, they are never coerced
// to a default base.
func FromChar(c rune) (Nuc, error) {
	switch c {
	default:
		return 0, &ParseError{Bad: []rune{c}}
	case 'A', 'a':
		return A, nil
	case 'C', 'c':
		return C, nil
	case 'G', 'g':
		return G, nil
	case 'T', 't':
		return T, nil
	}
}

// Converts a single-character string to its nucleotide, with the same
// rules as FromChar. Strings of any other length fail.
func FromString(s string) (Nuc, error) {
	cs := []rune(s)
	if len(cs) != 1 {
		return 0, &ParseError{Bad: cs, WrongLen: true}
	}

	return FromChar(cs[0])
}

// Converts the nucleotide to its one-letter string value
func (n Nuc) String() string {
	if n > T {
		return "?"
	}

	return string(ntNames[n])
}

// Returns the uppercase ASCII letter of the nucleotide
func (n Nuc) Byte() byte {
	if n > T {
		return '?'
	}

	return ntNames[n]
}

// Returns the Watson-Crick complement of the nucleotide
func (n Nuc) Comp() Nuc {
	switch n {
	default:
		return T
	case C:
		return G
	case G:
		return C
	case T:
		return A
	}
}
