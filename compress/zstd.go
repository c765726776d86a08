package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// ZstdCompressor compresses label payloads with Zstandard.
//
// Category tables with long shared prefixes compress best with this codec.
// With cgo enabled it is backed by gozstd; otherwise by the pure Go
// klauspost/compress implementation. Both produce standard zstd frames, so
// blobs written by one build decode in the other.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

const zstdLevel = 3

// zstdMinDecodeWindow is the smallest window the bounded decoder accepts.
// Frames for inputs below the encoder window still declare the full 8MB
// window of the default level.
const zstdMinDecodeWindow = 8 << 20

// checkZstdFrameSize rejects a frame whose header declares a content size
// above maxSize. Frames without a content size pass and are bounded while
// decoding.
func checkZstdFrameSize(data []byte, maxSize int) error {
	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return fmt.Errorf("zstd decompression failed: %w", err)
	}
	if header.HasFCS && header.FrameContentSize > uint64(max(maxSize, 0)) {
		return fmt.Errorf("%w: zstd frame declares %d bytes, limit %d",
			ErrSizeLimitExceeded, header.FrameContentSize, maxSize)
	}

	return nil
}

func zstdDecodeWindow(maxSize int) uint64 {
	return uint64(min(max(maxSize, zstdMinDecodeWindow), zstd.MaxWindowSize))
}
