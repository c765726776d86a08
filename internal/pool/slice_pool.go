package pool

import "sync"

// Scratch slice pools used while flattening and encoding label arrays.
var (
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	stringSlicePool = sync.Pool{
		New: func() any { return &[]string{} },
	}
)

func getSlice[T any](p *sync.Pool, size int) ([]T, func()) {
	ptr, _ := p.Get().(*[]T)
	if ptr == nil {
		ptr = &[]T{}
	}

	slice := (*ptr)[:0]
	if cap(slice) < size {
		slice = make([]T, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() {
		clear(*ptr)
		p.Put(ptr)
	}
}

// GetInt64Slice retrieves an int64 slice of exactly size elements from the pool.
//
// The caller must call the returned cleanup function once the slice is no
// longer referenced, typically with defer.
func GetInt64Slice(size int) ([]int64, func()) {
	return getSlice[int64](&int64SlicePool, size)
}

// GetStringSlice retrieves a string slice of exactly size elements from the pool.
//
// The slice is cleared before it goes back to the pool so pooled capacity does
// not keep strings alive.
//
// Example:
//
//	flat, cleanup := pool.GetStringSlice(raw.Size())
//	defer cleanup()
func GetStringSlice(size int) ([]string, func()) {
	return getSlice[string](&stringSlicePool, size)
}
