package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/internal/pool"
)

// CategoryEncoder encodes category values with a uvarint length prefix.
type CategoryEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[string] = (*CategoryEncoder)(nil)

// NewCategoryEncoder creates a category encoder backed by a pooled buffer.
func NewCategoryEncoder() *CategoryEncoder {
	return &CategoryEncoder{buf: pool.GetBlobBuffer()}
}

// Write encodes a single category value.
func (e *CategoryEncoder) Write(value string) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64 + len(value))
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(value)))
	e.buf.B = append(e.buf.B, value...)
}

// WriteSlice encodes values with a single buffer growth.
func (e *CategoryEncoder) WriteSlice(values []string) {
	total := 0
	for _, v := range values {
		total += uvarintLen(uint64(len(v))) + len(v)
	}
	e.buf.Grow(total)

	for _, v := range values {
		e.buf.B = binary.AppendUvarint(e.buf.B, uint64(len(v)))
		e.buf.B = append(e.buf.B, v...)
	}
	e.count += len(values)
}

func (e *CategoryEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *CategoryEncoder) Len() int {
	return e.count
}

func (e *CategoryEncoder) Size() int {
	return e.buf.Len()
}

func (e *CategoryEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// CategoryDecoder decodes values written by CategoryEncoder.
type CategoryDecoder struct{}

var _ ColumnarDecoder[string] = CategoryDecoder{}

func NewCategoryDecoder() CategoryDecoder {
	return CategoryDecoder{}
}

// DecodeInto decodes len(dst) values. The decoded strings do not alias data.
func (d CategoryDecoder) DecodeInto(data []byte, dst []string) ([]byte, error) {
	// every value takes at least its one-byte length prefix
	if len(dst) > len(data) {
		return nil, fmt.Errorf("%w: %d categories in %d bytes", errs.ErrInvalidCategoryPayload, len(dst), len(data))
	}

	for i := range dst {
		n, w := binary.Uvarint(data)
		if w <= 0 || n > uint64(len(data)-w) {
			return nil, fmt.Errorf("%w: truncated category %d", errs.ErrInvalidCategoryPayload, i)
		}
		end := w + int(n) //nolint:gosec
		dst[i] = string(data[w:end])
		data = data[end:]
	}

	return data, nil
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
