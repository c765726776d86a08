package labelarray

import (
	"fmt"

	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/ndarray"
)

// Index returns the label array selected by sel.
//
// Selectors follow ndarray.Array.Index: one per leading axis, integer
// selectors drop their axis and missing selectors keep whole axes. The result
// is a view sharing both the codes buffer and the category table of a.
func (a *Array) Index(sel ...ndarray.Selector) (*Array, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	view, err := a.codes.Index(sel...)
	if err != nil {
		return nil, err
	}

	return a.derive(view), nil
}

// Reshape returns the label array with a new shape and the same categories.
// See ndarray.Array.Reshape for when the result is a view.
func (a *Array) Reshape(shape ...int) (*Array, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}

	codes, err := a.codes.Reshape(shape...)
	if err != nil {
		return nil, err
	}

	return a.derive(codes), nil
}

// Reinterpret returns a view of a whose storage is viewed as elements of kind.
//
// Label array storage is always int64 codes, so only ndarray.KindInt64 is
// accepted and yields a new label array over the same buffer and categories.
// Every other kind fails with errs.ErrTypeKind.
func (a *Array) Reinterpret(kind ndarray.Kind) (*Array, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	if kind != a.codes.Kind() {
		return nil, fmt.Errorf("%w: cannot coerce categorical array storage to %s", errs.ErrTypeKind, kind)
	}

	return a.derive(a.codes), nil
}
