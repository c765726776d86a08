// Package format defines the identifiers stored in label blob headers.
package format

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw    EncodingType = 0x1 // TypeRaw stores every code as a fixed 4-byte integer.
	TypeVarint EncodingType = 0x2 // TypeVarint stores every code as an unsigned varint.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeVarint:
		return "Varint"
	default:
		return "Unknown"
	}
}

// IsValid reports whether e is a known code encoding.
func (e EncodingType) IsValid() bool {
	return e == TypeRaw || e == TypeVarint
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a known compression algorithm.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}
