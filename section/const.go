package section

import "math"

const (
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	MagicLabelV1Opt = 0xEC10 // MagicLabelV1Opt is the version 1 magic number for label blobs.
)

const (
	HeaderSize     = 32             // fixed header size in bytes
	ShapeEntrySize = 4              // size of one dimension in the shape section
	ShapeOffset    = HeaderSize     // byte offset where the shape section starts
	MaxDimension   = math.MaxUint32 // largest dimension, element count or category count
)
