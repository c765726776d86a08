//go:build cgo

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

// Compress compresses data with libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decompresses a zstd frame with libzstd.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressBounded decodes a zstd stream with libzstd and stops once it
// produces more than maxSize bytes.
func (c ZstdCompressor) DecompressBounded(data []byte, maxSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := checkZstdFrameSize(data, maxSize); err != nil {
		return nil, err
	}

	reader := gozstd.NewReader(bytes.NewReader(data))
	defer reader.Release()

	decompressed, err := io.ReadAll(io.LimitReader(reader, int64(maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) > maxSize {
		return nil, fmt.Errorf("%w: zstd stream exceeds %d bytes", ErrSizeLimitExceeded, maxSize)
	}

	return decompressed, nil
}
