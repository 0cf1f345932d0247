// Package seq reads, writes, and sorts sequences of values stored one per line.
package seq

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"znkr.io/quicksort"
)

// Kind is the element type of a sequence.
type Kind string

const (
	Int    Kind = "int"
	Float  Kind = "float"
	String Kind = "string"
)

var ErrUnknownKind = errors.New("unknown element kind")

// ParseKind returns the kind called name.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case Int, Float, String:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// ParseError is returned for a line that can't be parsed as a value of the requested kind.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid value %q: %v", err.Line, err.Text, err.Err)
}

func (err *ParseError) Unwrap() error { return err.Err }

// Sequence is a list of values of one kind. Only the slice matching Kind is used.
type Sequence struct {
	Kind    Kind
	Ints    []int
	Floats  []float64
	Strings []string
}

// OfInts returns a sequence holding v.
func OfInts(v ...int) *Sequence { return &Sequence{Kind: Int, Ints: v} }

// OfFloats returns a sequence holding v.
func OfFloats(v ...float64) *Sequence { return &Sequence{Kind: Float, Floats: v} }

// OfStrings returns a sequence holding v.
func OfStrings(v ...string) *Sequence { return &Sequence{Kind: String, Strings: v} }

// Read reads one value per line from r. Blank lines are skipped and surrounding whitespace is
// removed from numbers, but not from strings.
func Read(r io.Reader, kind Kind) (*Sequence, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}

	s := &Sequence{Kind: kind}
	sc := bufio.NewScanner(r)
	sc.Buffer(nil, 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := s.appendText(text); err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %v", err)
	}
	return s, nil
}

func (s *Sequence) appendText(text string) error {
	switch s.Kind {
	case Int:
		v, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return err
		}
		s.Ints = append(s.Ints, v)
	case Float:
		v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return err
		}
		s.Floats = append(s.Floats, v)
	default:
		s.Strings = append(s.Strings, text)
	}
	return nil
}

// Len returns the number of values in s.
func (s *Sequence) Len() int {
	switch s.Kind {
	case Int:
		return len(s.Ints)
	case Float:
		return len(s.Floats)
	default:
		return len(s.Strings)
	}
}

// Lines returns the values of s formatted as text, one string per value.
func (s *Sequence) Lines() []string {
	switch s.Kind {
	case Int:
		ret := make([]string, 0, len(s.Ints))
		for _, v := range s.Ints {
			ret = append(ret, strconv.Itoa(v))
		}
		return ret
	case Float:
		ret := make([]string, 0, len(s.Floats))
		for _, v := range s.Floats {
			ret = append(ret, strconv.FormatFloat(v, 'g', -1, 64))
		}
		return ret
	default:
		return slices.Clone(s.Strings)
	}
}

// String formats s like a Go slice, e.g. [1 2 3].
func (s *Sequence) String() string {
	return "[" + strings.Join(s.Lines(), " ") + "]"
}

// Write writes s to w, one value per line.
func Write(w io.Writer, s *Sequence) error {
	bw := bufio.NewWriter(w)
	for _, line := range s.Lines() {
		bw.WriteString(line)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing output: %v", err)
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		Kind:    s.Kind,
		Ints:    slices.Clone(s.Ints),
		Floats:  slices.Clone(s.Floats),
		Strings: slices.Clone(s.Strings),
	}
}

// Equal reports whether s and t hold the same values in the same order.
func (s *Sequence) Equal(t *Sequence) bool {
	if s.Kind != t.Kind {
		return false
	}
	switch s.Kind {
	case Int:
		return slices.Equal(s.Ints, t.Ints)
	case Float:
		return slices.EqualFunc(s.Floats, t.Floats, func(a, b float64) bool { return cmp.Compare(a, b) == 0 })
	default:
		return slices.Equal(s.Strings, t.Strings)
	}
}

// Search looks for the value written as text in the sorted sequence s. It returns the index of the
// first value not less than it and whether that value is equal.
func (s *Sequence) Search(text string) (int, bool, error) {
	target := &Sequence{Kind: s.Kind}
	if err := target.appendText(text); err != nil {
		return 0, false, &ParseError{Line: 1, Text: text, Err: err}
	}
	switch s.Kind {
	case Int:
		i, ok := quicksort.Search(s.Ints, target.Ints[0])
		return i, ok, nil
	case Float:
		i, ok := quicksort.Search(s.Floats, target.Floats[0])
		return i, ok, nil
	default:
		i, ok := quicksort.Search(s.Strings, target.Strings[0])
		return i, ok, nil
	}
}
