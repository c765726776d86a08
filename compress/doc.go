// Package compress provides the payload codecs used by label blobs.
//
// A label blob payload is the category table followed by the code stream.
// After encoding, the payload is passed through one of these codecs:
//   - None: no compression, the payload is stored as is
//   - Zstd: best ratio, suited to large category tables
//   - S2: fast with a moderate ratio
//   - LZ4: fastest decompression
//
// Each codec implements Codec:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// The Zstd codec uses gozstd when cgo is available and falls back to the
// pure Go klauspost/compress implementation otherwise. Both read each
// other's output.
//
// All codecs are stateless values and safe for concurrent use.
package compress
