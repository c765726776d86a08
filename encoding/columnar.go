package encoding

type ColumnarEncoder[T any] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next Write, WriteSlice or Finish.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	Size() int

	// Finish returns the buffer to the pool. The encoder must not be used afterwards.
	Finish()

	// Write encodes a single value.
	Write(value T)

	// WriteSlice encodes values in order.
	WriteSlice(values []T)
}

type ColumnarDecoder[T any] interface {
	// DecodeInto decodes len(dst) values from the front of data into dst and
	// returns the unread remainder of data.
	DecodeInto(data []byte, dst []T) ([]byte, error)
}
