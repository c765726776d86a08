package section

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/labelarray/endian"
	"github.com/arloliu/labelarray/errs"
)

// LabelHeader is the fixed 32-byte header at the start of every label blob.
type LabelHeader struct {
	Flag LabelFlag // 4 bytes, offset 0-3

	// NDim is the number of entries in the shape section.
	NDim uint32 // 4 bytes, offset 4-7
	// CategoryCount is the number of values in the category table.
	CategoryCount uint32 // 4 bytes, offset 8-11
	// ElementCount is the product of the shape.
	ElementCount uint32 // 4 bytes, offset 12-15
	// PayloadSize is the size of the payload before compression.
	PayloadSize uint32 // 4 bytes, offset 16-19
	// Fingerprint is the hash of the category table.
	Fingerprint uint64 // 8 bytes, offset 20-27

	Reserved [4]byte // must be zero, offset 28-31
}

// NewLabelHeader creates a header with the default flag.
func NewLabelHeader(ndim, categoryCount, elementCount int) (*LabelHeader, error) {
	for _, n := range []int{ndim, categoryCount, elementCount} {
		if n < 0 || uint64(n) > MaxDimension {
			return nil, fmt.Errorf("%w: %d", errs.ErrBlobTooLarge, n)
		}
	}

	return &LabelHeader{
		Flag:          NewLabelFlag(),
		NDim:          uint32(ndim),          //nolint:gosec
		CategoryCount: uint32(categoryCount), //nolint:gosec
		ElementCount:  uint32(elementCount),  //nolint:gosec
	}, nil
}

// Parse decodes the header from exactly HeaderSize bytes and validates the flag.
//
// The Options field is always little-endian so the byte order can be read
// before the rest of the header.
func (h *LabelHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h.Flag.Options = binary.LittleEndian.Uint16(data[0:2])
	h.Flag.CodeEncoding = data[2]
	h.Flag.Compression = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	h.NDim = engine.Uint32(data[4:8])
	h.CategoryCount = engine.Uint32(data[8:12])
	h.ElementCount = engine.Uint32(data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.Fingerprint = engine.Uint64(data[20:28])
	copy(h.Reserved[:], data[28:32])

	if h.Reserved != [4]byte{} {
		return fmt.Errorf("%w: reserved bytes set", errs.ErrInvalidHeaderFlags)
	}

	return nil
}

// Bytes serializes the header.
func (h *LabelHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to b.
func (h *LabelHeader) AppendTo(b []byte) []byte {
	engine := h.GetEndianEngine()

	b = binary.LittleEndian.AppendUint16(b, h.Flag.Options)
	b = append(b, h.Flag.CodeEncoding, h.Flag.Compression)
	b = engine.AppendUint32(b, h.NDim)
	b = engine.AppendUint32(b, h.CategoryCount)
	b = engine.AppendUint32(b, h.ElementCount)
	b = engine.AppendUint32(b, h.PayloadSize)
	b = engine.AppendUint64(b, h.Fingerprint)

	return append(b, h.Reserved[:]...)
}

// GetEndianEngine returns the byte order selected by the flag.
func (h *LabelHeader) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
