package encoding

import (
	"fmt"

	"github.com/arloliu/labelarray/endian"
	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/internal/pool"
)

// CodeRawSize is the encoded size of one raw code.
const CodeRawSize = 4

// CodeRawEncoder stores every code as a fixed 4-byte unsigned integer.
//
// Raw codes allow random access with CodeRawDecoder.At. Codes must be in
// [0, 2^32); the blob encoder guarantees this by bounding the category count.
type CodeRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[int64] = (*CodeRawEncoder)(nil)

// NewCodeRawEncoder creates a raw code encoder writing in engine's byte order.
func NewCodeRawEncoder(engine endian.EndianEngine) *CodeRawEncoder {
	return &CodeRawEncoder{
		buf:    pool.GetBlobBuffer(),
		engine: engine,
	}
}

func (e *CodeRawEncoder) Write(code int64) {
	e.count++
	e.buf.Grow(CodeRawSize)
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(code)) //nolint:gosec
}

func (e *CodeRawEncoder) WriteSlice(codes []int64) {
	e.buf.Grow(len(codes) * CodeRawSize)
	for _, code := range codes {
		e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(code)) //nolint:gosec
	}
	e.count += len(codes)
}

func (e *CodeRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *CodeRawEncoder) Len() int {
	return e.count
}

func (e *CodeRawEncoder) Size() int {
	return e.buf.Len()
}

func (e *CodeRawEncoder) Finish() {
	if e.buf != nil {
		pool.PutBlobBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// CodeRawDecoder decodes codes written by CodeRawEncoder.
type CodeRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[int64] = CodeRawDecoder{}

func NewCodeRawDecoder(engine endian.EndianEngine) CodeRawDecoder {
	return CodeRawDecoder{engine: engine}
}

func (d CodeRawDecoder) DecodeInto(data []byte, dst []int64) ([]byte, error) {
	need := len(dst) * CodeRawSize
	if need > len(data) {
		return nil, fmt.Errorf("%w: %d raw codes in %d bytes", errs.ErrInvalidCodePayload, len(dst), len(data))
	}

	for i := range dst {
		off := i * CodeRawSize
		dst[i] = int64(d.engine.Uint32(data[off : off+CodeRawSize]))
	}

	return data[need:], nil
}

// At returns the code at index without decoding the others.
func (d CodeRawDecoder) At(data []byte, index int) (int64, bool) {
	off := index * CodeRawSize
	if index < 0 || off+CodeRawSize > len(data) {
		return 0, false
	}

	return int64(d.engine.Uint32(data[off : off+CodeRawSize])), true
}
