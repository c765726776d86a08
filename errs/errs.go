// Package errs defines the sentinel errors returned by labelarray packages.
//
// Callers match errors with errors.Is. Errors that carry structured detail,
// such as CategoryMismatchError, can be extracted with errors.As.
package errs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Construction and type errors.
var (
	// ErrDirectConstruction is returned when an Array was created without going
	// through the encoder or a derivation from an existing Array.
	ErrDirectConstruction = errors.New("direct construction of label arrays is not supported")
	// ErrTypeKind is returned when input or storage has an element kind that
	// cannot back a label array.
	ErrTypeKind = errors.New("unsupported element kind")
	// ErrImmutableState is returned on an attempt to modify a finalized category table.
	ErrImmutableState = errors.New("category table is immutable")
	// ErrCodeOutOfRange is returned when a code does not index the category
	// table, which can only happen after raw writes through Codes.
	ErrCodeOutOfRange = errors.New("code out of category range")
)

// Comparison and assignment errors.
var (
	ErrCategoryMismatch          = errors.New("label array categories don't match")
	ErrShapeMismatch             = errors.New("shapes are not compatible")
	ErrNotComparable             = errors.New("operand is not comparable with a label array")
	ErrValueNotInCategories      = errors.New("value is not in label array categories")
	ErrUnsupportedAssignmentType = errors.New("unsupported assignment value type")
)

// Indexing errors.
var (
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidSelector  = errors.New("invalid selector")
	ErrInvalidDimension = errors.New("invalid dimension")
)

// Blob format errors.
var (
	ErrInvalidHeaderSize      = errors.New("invalid header size")
	ErrInvalidHeaderFlags     = errors.New("invalid header flags")
	ErrInvalidMagicNumber     = errors.New("invalid magic number")
	ErrInvalidShape           = errors.New("invalid shape section")
	ErrInvalidCategoryPayload = errors.New("invalid category payload")
	ErrInvalidCodePayload     = errors.New("invalid code payload")
	ErrHashMismatch           = errors.New("category fingerprint mismatch")
	ErrBlobTooLarge           = errors.New("label array too large for blob format")
)

// Mismatch describes one position where two category tables differ.
//
// LeftOK and RightOK are false when the position lies beyond the end of the
// corresponding table.
type Mismatch struct {
	Index   int
	Left    string
	Right   string
	LeftOK  bool
	RightOK bool
}

// CategoryMismatchError reports every index where two category tables differ.
type CategoryMismatchError struct {
	Mismatches []Mismatch
	LeftLen    int
	RightLen   int
}

// Indices returns the mismatched positions in ascending order.
func (e *CategoryMismatchError) Indices() []int {
	out := make([]int, len(e.Mismatches))
	for i, m := range e.Mismatches {
		out[i] = m.Index
	}

	return out
}

func (e *CategoryMismatchError) Error() string {
	var sb strings.Builder
	sb.WriteString(ErrCategoryMismatch.Error())
	sb.WriteString(":\nMismatched Indices: ")
	sb.WriteString(fmt.Sprint(e.Indices()))
	if e.LeftLen != e.RightLen {
		fmt.Fprintf(&sb, "\nLengths: left=%d right=%d", e.LeftLen, e.RightLen)
	}

	sb.WriteString("\nLeft: ")
	writeSide(&sb, e.Mismatches, func(m Mismatch) (string, bool) { return m.Left, m.LeftOK })
	sb.WriteString("\nRight: ")
	writeSide(&sb, e.Mismatches, func(m Mismatch) (string, bool) { return m.Right, m.RightOK })

	return sb.String()
}

// Is reports whether target is ErrCategoryMismatch.
func (e *CategoryMismatchError) Is(target error) bool {
	return target == ErrCategoryMismatch
}

func writeSide(sb *strings.Builder, ms []Mismatch, side func(Mismatch) (string, bool)) {
	sb.WriteByte('[')
	for i, m := range ms {
		if i > 0 {
			sb.WriteByte(' ')
		}
		v, ok := side(m)
		if !ok {
			sb.WriteString("<absent>")
			continue
		}
		sb.WriteString(strconv.Quote(v))
	}
	sb.WriteByte(']')
}
