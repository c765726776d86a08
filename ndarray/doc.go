// Package ndarray provides a small generic N-dimensional array used as the
// storage layer for label arrays.
//
// An Array[T] is a strided view over a flat buffer. Indexing with selectors,
// reshaping a contiguous array and broadcasting all produce views that share
// the buffer of their source; Clone and Flatten produce copies.
//
// # Selecting
//
//	a := ndarray.MustNew([]string{"", "a", "b", "a"}, 2, 2)
//	row, _ := a.Index(ndarray.At(0))                    // shape (2,)
//	col, _ := a.Index(ndarray.Full(), ndarray.At(1))    // shape (2,)
//	rev, _ := a.Index(ndarray.Reverse())                // rows reversed
//
// # Elementwise operations
//
// Map, Zip, Equal and NotEqual allocate their results. Zip, Equal, NotEqual
// and Assign follow the usual broadcasting rules: shapes are aligned from the
// right and each axis pair must match or contain a 1.
package ndarray
