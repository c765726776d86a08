// Package encoding provides the columnar encoders and decoders for the two
// sections of a label blob payload.
//
// The category section is a sequence of length-prefixed strings:
//
//	uvarint(len(value)) | value bytes
//
// The code section holds one code per element in logical order, either as a
// fixed 4-byte integer in the blob byte order (format.TypeRaw, see
// CodeRawEncoder) or as an unsigned varint (format.TypeVarint, see
// CodeVarintEncoder). Varint codes take a single byte for tables with fewer
// than 128 categories, which is the common case for labels.
//
// Encoders draw their buffer from a shared pool. Call Finish once the bytes
// have been copied out:
//
//	enc := encoding.NewCodeVarintEncoder()
//	defer enc.Finish()
//	enc.WriteSlice(codes)
//	payload = append(payload, enc.Bytes()...)
//
// Decoders are stateless and validate their input; malformed data yields an
// error wrapping errs.ErrInvalidCategoryPayload or errs.ErrInvalidCodePayload.
package encoding
