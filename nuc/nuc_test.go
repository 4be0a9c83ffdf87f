package nuc

import (
	"errors"
	"strings"
	"testing"
)

func TestFromChar(t *testing.T) {
	good := map[rune]Nuc{
		'A': A, 'a': A,
		'C': C, 'c': C,
		'G': G, 'g': G,
		'T': T, 't': T,
	}

	for c, want := range good {
		nt, err := FromChar(c)
		if err != nil {
			t.Fatalf("FromChar(%q) failed: %v", c, err)
		}

		if nt != want {
			t.Fatalf("FromChar(%q): got %v expected %v", c, nt, want)
		}
	}

	for _, c := range "XNU0 *u" {
		_, err := FromChar(c)
		if err == nil {
			t.Fatalf("FromChar(%q) should have failed", c)
		}

		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("FromChar(%q): expected ParseError, got %v", c, err)
		}

		if len(pe.Bad) != 1 || pe.Bad[0] != c {
			t.Fatalf("FromChar(%q): bad characters %q", c, pe.Bad)
		}

		if !strings.Contains(err.Error(), string(c)) {
			t.Fatalf("FromChar(%q): error does not name the character: %v", c, err)
		}
	}
}

func TestFromString(t *testing.T) {
	for _, s := range []string{"A", "c", "G", "t"} {
		nt, err := FromString(s)
		if err != nil {
			t.Fatalf("FromString(%q) failed: %v", s, err)
		}

		if nt.String() != strings.ToUpper(s) {
			t.Fatalf("FromString(%q): got %v", s, nt)
		}
	}

	for _, s := range []string{"", "AC", "X", "TT"} {
		if _, err := FromString(s); err == nil {
			t.Fatalf("FromString(%q) should have failed", s)
		}
	}
}

func TestFromStringWrongLength(t *testing.T) {
	// wrong-length inputs of valid bases are a length problem, the
	// bases themselves must not be reported as invalid
	for _, s := range []string{"", "AC", "TT", "acgt"} {
		_, err := FromString(s)
		if err == nil {
			t.Fatalf("FromString(%q) should have failed", s)
		}

		var pe *ParseError
		if !errors.As(err, &pe) || !pe.WrongLen {
			t.Fatalf("FromString(%q): expected a wrong-length ParseError, got %v", s, err)
		}

		if strings.Contains(err.Error(), "invalid") {
			t.Fatalf("FromString(%q): valid bases labeled invalid: %v", s, err)
		}

		if !strings.Contains(err.Error(), "single nucleotide") {
			t.Fatalf("FromString(%q): error does not name the length problem: %v", s, err)
		}
	}

	// a single invalid character is still an invalid-character error
	_, err := FromString("X")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.WrongLen {
		t.Fatalf("FromString(\"X\"): expected an invalid-character ParseError, got %v", err)
	}
}

func TestString(t *testing.T) {
	if A.String() != "A" || C.String() != "C" || G.String() != "G" || T.String() != "T" {
		t.Fatalf("bad string values: %v %v %v %v", A, C, G, T)
	}

	if Nuc(77).String() != "?" {
		t.Fatalf("out of range value should render as ?")
	}
}

func TestComp(t *testing.T) {
	pairs := map[Nuc]Nuc{A: T, C: G, G: C, T: A}
	for nt, want := range pairs {
		if nt.Comp() != want {
			t.Fatalf("%v complement: got %v expected %v", nt, nt.Comp(), want)
		}

		if nt.Comp().Comp() != nt {
			t.Fatalf("%v: double complement is not the identity", nt)
		}
	}
}

func TestParseErrorMessage(t *testing.T) {
	e := &ParseError{Bad: []rune{'X', 'Z'}}
	msg := e.Error()
	if !strings.Contains(msg, "'X'") || !strings.Contains(msg, "'Z'") {
		t.Fatalf("error does not name all offending characters: %s", msg)
	}
}
