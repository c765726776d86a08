package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/internal/pool"
)

// CodeVarintEncoder stores every code as an unsigned varint.
// Codes are never negative, so no zigzag step is needed.
type CodeVarintEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[int64] = (*CodeVarintEncoder)(nil)

// NewCodeVarintEncoder creates a varint code encoder backed by a pooled buffer.
func NewCodeVarintEncoder() *CodeVarintEncoder {
	return &CodeVarintEncoder{buf: pool.GetBlobBuffer()}
}

func (e *CodeVarintEncoder) Write(code int64) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64)
	e.buf.B = binary.AppendUvarint(e.buf.B, uint64(code)) //nolint:gosec
}

func (e *CodeVarintEncoder) WriteSlice(codes []int64) {
	// one byte per code covers tables with up to 128 categories
	e.buf.Grow(len(codes))
	for _, code := range codes {
		e.buf.B = binary.AppendUvarint(e.buf.B, uint64(code)) //nolint:gosec
	}
	e.count += len(codes)
}

func (e *CodeVarintEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *CodeVarintEncoder) Len() int {
	return e.count
}

func (e *CodeVarintEncoder) Size() int {
	return e.buf.Len()
}

func (e *CodeVarintEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// CodeVarintDecoder decodes codes written by CodeVarintEncoder.
type CodeVarintDecoder struct{}

var _ ColumnarDecoder[int64] = CodeVarintDecoder{}

func NewCodeVarintDecoder() CodeVarintDecoder {
	return CodeVarintDecoder{}
}

func (d CodeVarintDecoder) DecodeInto(data []byte, dst []int64) ([]byte, error) {
	if len(dst) > len(data) {
		return nil, fmt.Errorf("%w: %d varint codes in %d bytes", errs.ErrInvalidCodePayload, len(dst), len(data))
	}

	for i := range dst {
		v, w := binary.Uvarint(data)
		if w <= 0 || v > uint64(maxCode) {
			return nil, fmt.Errorf("%w: malformed code %d", errs.ErrInvalidCodePayload, i)
		}
		dst[i] = int64(v)
		data = data[w:]
	}

	return data, nil
}

const maxCode = 1<<32 - 1
