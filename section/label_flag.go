package section

import (
	"fmt"

	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/format"
)

// LabelFlag is the first four bytes of a label blob header.
type LabelFlag struct {
	// Options packs the byte order and the magic number.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be zero.
	// Bits 4-15 hold the magic number 0xEC10.
	Options uint16

	// CodeEncoding is how codes are laid out in the payload.
	CodeEncoding uint8

	// Compression is the codec applied to the whole payload.
	Compression uint8
}

// NewLabelFlag returns a little-endian flag with varint codes and Zstd compression.
func NewLabelFlag() LabelFlag {
	return LabelFlag{
		Options:      MagicLabelV1Opt,
		CodeEncoding: uint8(format.TypeVarint),
		Compression:  uint8(format.CompressionZstd),
	}
}

func (f LabelFlag) IsLittleEndian() bool {
	return f.Options&EndiannessMask == 0
}

func (f LabelFlag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

func (f *LabelFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

func (f *LabelFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f LabelFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

func (f *LabelFlag) SetCodeEncoding(encoding format.EncodingType) {
	f.CodeEncoding = uint8(encoding)
}

func (f LabelFlag) GetCodeEncoding() format.EncodingType {
	return format.EncodingType(f.CodeEncoding)
}

func (f *LabelFlag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

func (f LabelFlag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, the reserved bits and both enumerations.
func (f LabelFlag) Validate() error {
	if f.GetMagicNumber() != MagicLabelV1Opt {
		return fmt.Errorf("%w: 0x%04X", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}

	if !f.GetCodeEncoding().IsValid() {
		return fmt.Errorf("%w: code encoding %d", errs.ErrInvalidHeaderFlags, f.CodeEncoding)
	}

	if !f.GetCompression().IsValid() {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidHeaderFlags, f.Compression)
	}

	return nil
}
