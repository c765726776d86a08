package blob

import (
	"fmt"
	"time"

	"github.com/arloliu/labelarray"
	"github.com/arloliu/labelarray/compress"
	"github.com/arloliu/labelarray/encoding"
	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/format"
	"github.com/arloliu/labelarray/internal/options"
	"github.com/arloliu/labelarray/internal/pool"
	"github.com/arloliu/labelarray/section"
)

// LabelEncoder turns label arrays into blobs. A LabelEncoder is immutable
// after construction and safe for concurrent use.
type LabelEncoder struct {
	cfg   *LabelEncoderConfig
	codec compress.Codec
}

// NewLabelEncoder creates an encoder. Defaults are little-endian, varint codes
// and Zstd compression.
func NewLabelEncoder(opts ...LabelEncoderOption) (*LabelEncoder, error) {
	cfg := newLabelEncoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(cfg.flag.GetCompression(), "label payload")
	if err != nil {
		return nil, fmt.Errorf("failed to create payload codec: %w", err)
	}

	return &LabelEncoder{cfg: cfg, codec: codec}, nil
}

// Encode serializes arr.
//
// It fails with errs.ErrDirectConstruction for an array not created by
// labelarray.New or From, and with errs.ErrBlobTooLarge when a dimension,
// count or the payload does not fit in 32 bits.
func (e *LabelEncoder) Encode(arr *labelarray.Array) (LabelBlob, error) {
	table := arr.Categories()
	if table == nil {
		return LabelBlob{}, errs.ErrDirectConstruction
	}

	shape := arr.Shape()
	for _, dim := range shape {
		if uint64(dim) > section.MaxDimension {
			return LabelBlob{}, fmt.Errorf("%w: dimension %d", errs.ErrBlobTooLarge, dim)
		}
	}

	header, err := section.NewLabelHeader(len(shape), table.Len(), arr.Size())
	if err != nil {
		return LabelBlob{}, err
	}
	header.Flag = e.cfg.flag
	header.Fingerprint = table.Fingerprint()

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	if err := e.writePayload(buf, arr); err != nil {
		return LabelBlob{}, err
	}

	if uint64(buf.Len()) > section.MaxDimension {
		return LabelBlob{}, fmt.Errorf("%w: payload of %d bytes", errs.ErrBlobTooLarge, buf.Len())
	}
	header.PayloadSize = uint32(buf.Len()) //nolint:gosec

	start := time.Now()
	packed, err := e.codec.Compress(buf.Bytes())
	if err != nil {
		return LabelBlob{}, fmt.Errorf("failed to compress label payload: %w", err)
	}
	elapsed := time.Since(start)

	data := make([]byte, 0, section.HeaderSize+len(shape)*section.ShapeEntrySize+len(packed))
	data = header.AppendTo(data)
	for _, dim := range shape {
		data = e.cfg.engine.AppendUint32(data, uint32(dim)) //nolint:gosec
	}
	data = append(data, packed...)

	return LabelBlob{
		data: data,
		stats: compress.CompressionStats{
			Algorithm:         header.Flag.GetCompression(),
			OriginalSize:      int64(header.PayloadSize),
			CompressedSize:    int64(len(packed)),
			CompressionTimeNs: elapsed.Nanoseconds(),
		},
	}, nil
}

// writePayload appends the category section and the code section to buf.
func (e *LabelEncoder) writePayload(buf *pool.ByteBuffer, arr *labelarray.Array) error {
	categories := encoding.NewCategoryEncoder()
	defer categories.Finish()
	for _, v := range arr.Categories().All() {
		categories.Write(v)
	}

	var codes encoding.ColumnarEncoder[int64]
	switch enc := e.cfg.flag.GetCodeEncoding(); enc {
	case format.TypeRaw:
		codes = encoding.NewCodeRawEncoder(e.cfg.engine)
	case format.TypeVarint:
		codes = encoding.NewCodeVarintEncoder()
	default:
		return fmt.Errorf("invalid code encoding: %v", enc)
	}
	defer codes.Finish()

	count := int64(arr.Categories().Len())
	flat, release := pool.GetInt64Slice(arr.Size())
	defer release()
	for i, code := range arr.Codes().All() {
		if code < 0 || code >= count {
			return fmt.Errorf("%w: code %d at flat index %d, %d categories", errs.ErrCodeOutOfRange, code, i, count)
		}
		flat[i] = code
	}
	codes.WriteSlice(flat)

	buf.Grow(categories.Size() + codes.Size())
	_, _ = buf.Write(categories.Bytes())
	_, _ = buf.Write(codes.Bytes())

	return nil
}
