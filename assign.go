package labelarray

import (
	"fmt"

	"github.com/arloliu/labelarray/category"
	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/ndarray"
)

// Set assigns value to the elements selected by sel, in place.
//
// value may be a label array with compatible categories, whose codes are
// broadcast into the selection, or a string that is already a category.
// The category table is never modified, so:
//
//   - a label array with other categories fails with *errs.CategoryMismatchError
//   - a string outside the categories fails with errs.ErrValueNotInCategories
//   - any other value fails with errs.ErrUnsupportedAssignmentType
//
// The write is visible through every view sharing a's codes buffer.
func (a *Array) Set(value any, sel ...ndarray.Selector) error {
	if err := a.validate(); err != nil {
		return err
	}

	target, err := a.codes.Index(sel...)
	if err != nil {
		return err
	}

	switch v := value.(type) {
	case *Array:
		if err := v.validate(); err != nil {
			return err
		}
		if !category.Compatible(a.table, v.table) {
			return category.Mismatch(a.table, v.table)
		}

		return ndarray.Assign(target, v.codes)

	case string:
		code, ok := a.table.Lookup(v)
		if !ok {
			return fmt.Errorf("%w: %q", errs.ErrValueNotInCategories, v)
		}
		ndarray.Fill(target, code)

		return nil

	default:
		return fmt.Errorf("%w: setting into a label array with a value of type %T is not supported",
			errs.ErrUnsupportedAssignmentType, value)
	}
}
