// The packed package implements an immutable DNA sequence container
// that stores each nucleotide in 2 bits, four bases per byte.
package packed

import (
	"encoding/binary"
	"errors"

	"github.com/snksoft/crc"
	"github.com/sudharsg/packed-dna/nuc"
)

var Ebounds = errors.New("index out of bounds")
var Eempty = errors.New("empty sequence")

// Sequence is an ordered, fixed-length DNA sequence in packed form.
// It is immutable once built: there is no append or set, only
// whole-sequence construction and read-only queries. A Sequence is
// therefore safe for unsynchronized concurrent reads.
type Sequence struct {
	// Number of nucleotides stored
	nlen int

	// Packed bases, exactly (nlen+3)/4 bytes. The base at position
	// i occupies bits [(i%4)*2+1:(i%4)*2] of data[i/4], so the
	// earliest base sits in the lowest bits of the first byte.
	// Unused high bits of a final partial byte stay zero.
	data []byte
}

// packer accumulates bases into packed bytes during construction.
type packer struct {
	data []byte
	nlen int
	acc  byte
	fill int
}

func (p *packer) add(nt nuc.Nuc) {
	p.acc |= byte(nt&0x3) << (p.fill * 2)
	p.fill++
	if p.fill == 4 {
		p.data = append(p.data, p.acc)
		p.acc = 0
		p.fill = 0
	}

	p.nlen++
}

func (p *packer) seq() *Sequence {
	data := p.data
	if p.fill != 0 {
		data = append(data, p.acc)
	}

	return &Sequence{p.nlen, data}
}

// Converts a string representation of a DNA sequence to a Sequence.
// The conversion is case insensitive and scans the input once. The
// whole input is validated before anything is committed: if any
// character is not one of ACGT, the call fails with a nuc.ParseError
// listing every offending character and no sequence is produced.
// An empty string yields a valid zero-length Sequence.
func FromString(s string) (*Sequence, error) {
	var bad []rune

	p := packer{data: make([]byte, 0, (len(s)+3)/4)}
	for _, c := range s {
		nt, err := nuc.FromChar(c)
		if err != nil {
			bad = append(bad, c)
			continue
		}

		p.add(nt)
	}

	if bad != nil {
		return nil, &nuc.ParseError{Bad: bad}
	}

	return p.seq(), nil
}

// Builds a Sequence from already-validated nucleotides, encoding them
// in order with the same layout as FromString. It cannot fail: the
// element type admits no invalid base. An empty slice yields a
// zero-length Sequence.
func FromNucs(nts []nuc.Nuc) *Sequence {
	p := packer{data: make([]byte, 0, (len(nts)+3)/4)}
	for _, nt := range nts {
		p.add(nt)
	}

	return p.seq()
}

// Returns the number of nucleotides in the sequence
func (s *Sequence) Len() int {
	return s.nlen
}

// Returns the nucleotide at the zero-based position idx, or Ebounds
// if idx is outside the sequence.
func (s *Sequence) At(idx int) (nuc.Nuc, error) {
	if idx < 0 || idx >= s.nlen {
		return 0, Ebounds
	}

	return s.at(idx), nil
}

// at decodes without a bounds check; the callers have checked already.
func (s *Sequence) at(idx int) nuc.Nuc {
	return nuc.Nuc((s.data[idx/4] >> ((idx % 4) * 2)) & 0x3)
}

// Counts how many times each base occurs in the sequence. The returned
// map always carries all four bases, with zero counts for bases that
// never occur. Asking for the counts of a zero-length sequence fails
// with Eempty so the caller is told apart from an all-zero summary.
func (s *Sequence) Counts() (map[nuc.Nuc]int, error) {
	if s.nlen == 0 {
		return nil, Eempty
	}

	cnt := map[nuc.Nuc]int{nuc.A: 0, nuc.C: 0, nuc.G: 0, nuc.T: 0}
	for i := 0; i < s.nlen; i++ {
		cnt[s.at(i)]++
	}

	return cnt, nil
}

// Converts the sequence to its uppercase string value
func (s *Sequence) String() string {
	b := make([]byte, s.nlen)
	for i := range b {
		b[i] = s.at(i).Byte()
	}

	return string(b)
}

// Compares two sequences.
// Returns
//     -1 if the sequence comes before the other sequence
//     0 if the sequences are the same
//     1 if the sequence comes after the other sequence
// Note: if the sequences are of different lengths, the shorter one
// comes before the longer one
func (s *Sequence) Cmp(other *Sequence) int {
	if s.nlen < other.nlen {
		return -1
	} else if s.nlen > other.nlen {
		return 1
	}

	for i := 0; i < s.nlen; i++ {
		a, b := s.at(i), other.at(i)
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
	}

	return 0
}

// Returns the subsequence [start, end) as a new Sequence with its own
// storage, or Ebounds if the range is outside the sequence.
func (s *Sequence) Slice(start, end int) (*Sequence, error) {
	if start < 0 || end > s.nlen || start > end {
		return nil, Ebounds
	}

	p := packer{data: make([]byte, 0, (end-start+3)/4)}
	for i := start; i < end; i++ {
		p.add(s.at(i))
	}

	return p.seq(), nil
}

// Returns the reverse complement of the sequence as a new Sequence
func (s *Sequence) RevComp() *Sequence {
	p := packer{data: make([]byte, 0, len(s.data))}
	for i := s.nlen - 1; i >= 0; i-- {
		p.add(s.at(i).Comp())
	}

	return p.seq()
}

// Calculates the GC content of the sequence.
// Returns a value between 0 (no GC) and 1, and 0 for the empty sequence.
func (s *Sequence) GC() float64 {
	if s.nlen == 0 {
		return 0
	}

	var n int
	for i := 0; i < s.nlen; i++ {
		if nt := s.at(i); nt == nuc.C || nt == nuc.G {
			n++
		}
	}

	return float64(n) / float64(s.nlen)
}

// Returns a CRC-64 (ECMA) fingerprint of the sequence, calculated over
// the length followed by the packed bytes. The length is included so
// sequences that share packed bytes but not length (trailing A runs)
// fingerprint differently.
func (s *Sequence) Checksum() uint64 {
	buf := make([]byte, 8+len(s.data))
	binary.LittleEndian.PutUint64(buf, uint64(s.nlen))
	copy(buf[8:], s.data)

	return crc.CalculateCRC(crc.CRC64ECMA, buf)
}
