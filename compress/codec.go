package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/labelarray/format"
)

// Compressor compresses an encoded label payload.
//
// The returned slice is owned by the caller. The input is never modified,
// although the no-op codec returns it as is.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor using the same algorithm.
//
// Decompress returns an error when data is corrupted or was produced by a
// different algorithm. Implementations in this package are safe for
// concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// ErrSizeLimitExceeded is returned by DecompressBounded when the decoded data
// would be larger than the caller's limit.
var ErrSizeLimitExceeded = errors.New("decompressed size exceeds limit")

// BoundedDecompressor decompresses data that must not decode to more than
// maxSize bytes.
//
// Codecs check the limit before or while decoding, so a small corrupted or
// hostile input never allocates more than about maxSize bytes of output.
type BoundedDecompressor interface {
	DecompressBounded(data []byte, maxSize int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
	BoundedDecompressor
}

// CompressionStats describes a single payload compression.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType

	// OriginalSize is the size of the encoded payload before compression.
	OriginalSize int64

	// CompressedSize is the size of the payload after compression.
	CompressedSize int64

	// CompressionTimeNs is the wall time spent compressing, in nanoseconds.
	CompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size, or 0 for an empty payload.
//
// Values below 1.0 mean the codec saved space. Short category tables often
// land above 1.0 because of codec framing.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec returns a fresh Codec for compressionType.
//
// target names the payload in the error message, e.g. "label payload".
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
