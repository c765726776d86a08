package category

import (
	"slices"

	"github.com/arloliu/labelarray/errs"
)

// Builder collects values and produces a Table of their distinct members.
//
// A Builder is single use: once Build has returned, the table is frozen and
// every further Add or Build fails with errs.ErrImmutableState.
type Builder struct {
	seen  map[string]struct{}
	built bool
}

// NewBuilder creates a builder sized for about sizeHint distinct values.
func NewBuilder(sizeHint int) *Builder {
	return &Builder{seen: make(map[string]struct{}, max(sizeHint, 0))}
}

// Add records value as a category. Duplicates collapse into one entry.
func (b *Builder) Add(value string) error {
	if b.built {
		return errs.ErrImmutableState
	}
	b.seen[value] = struct{}{}

	return nil
}

// AddAll records every value of values.
func (b *Builder) AddAll(values []string) error {
	if b.built {
		return errs.ErrImmutableState
	}
	for _, v := range values {
		b.seen[v] = struct{}{}
	}

	return nil
}

// Len returns the number of distinct values collected so far.
func (b *Builder) Len() int {
	return len(b.seen)
}

// Build sorts the collected values ascending and returns them as a Table.
func (b *Builder) Build() (*Table, error) {
	if b.built {
		return nil, errs.ErrImmutableState
	}
	b.built = true

	if len(b.seen) == 0 {
		b.seen = nil
		return Empty(), nil
	}

	values := make([]string, 0, len(b.seen))
	for v := range b.seen {
		values = append(values, v)
	}
	slices.Sort(values)
	b.seen = nil

	return newTable(values), nil
}

// FromSorted builds a Table from values that are already strictly ascending.
// It reports false when values are out of order or contain duplicates.
func FromSorted(values []string) (*Table, bool) {
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return nil, false
		}
	}
	if len(values) == 0 {
		return Empty(), true
	}

	return newTable(slices.Clone(values)), true
}
