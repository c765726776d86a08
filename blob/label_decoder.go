package blob

import (
	"fmt"

	"github.com/arloliu/labelarray"
	"github.com/arloliu/labelarray/category"
	"github.com/arloliu/labelarray/compress"
	"github.com/arloliu/labelarray/encoding"
	"github.com/arloliu/labelarray/endian"
	"github.com/arloliu/labelarray/errs"
	"github.com/arloliu/labelarray/format"
	"github.com/arloliu/labelarray/internal/pool"
	"github.com/arloliu/labelarray/ndarray"
	"github.com/arloliu/labelarray/section"
)

// LabelDecoder reads a label blob back into a label array.
type LabelDecoder struct {
	data   []byte
	header section.LabelHeader
	engine endian.EndianEngine
}

// NewLabelDecoder creates a decoder over data. data is not modified and not
// retained by the decoded array.
func NewLabelDecoder(data []byte) *LabelDecoder {
	return &LabelDecoder{data: data}
}

// Header returns the parsed header. It is only meaningful after Decode.
func (d *LabelDecoder) Header() section.LabelHeader {
	return d.header
}

// Decode validates the blob and rebuilds the label array.
func (d *LabelDecoder) Decode() (*labelarray.Array, error) {
	if len(d.data) < section.HeaderSize {
		return nil, fmt.Errorf("%w: blob has %d bytes", errs.ErrInvalidHeaderSize, len(d.data))
	}
	if err := d.header.Parse(d.data[:section.HeaderSize]); err != nil {
		return nil, err
	}
	d.engine = d.header.GetEndianEngine()

	shape, err := d.parseShape()
	if err != nil {
		return nil, err
	}

	payload, err := d.decompress(d.data[section.HeaderSize+len(shape)*section.ShapeEntrySize:])
	if err != nil {
		return nil, err
	}

	table, rest, err := d.parseCategories(payload)
	if err != nil {
		return nil, err
	}

	codes, release, err := d.parseCodes(rest, table.Len())
	if err != nil {
		return nil, err
	}
	defer release()

	// codes were range checked by parseCodes
	strs := make([]string, len(codes))
	for i, code := range codes {
		strs[i], _ = table.At(code)
	}

	raw, err := ndarray.MustNew(strs).Reshape(shape...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidShape, err)
	}

	return labelarray.New(raw), nil
}

func (d *LabelDecoder) parseShape() ([]int, error) {
	ndim := int(d.header.NDim)
	if ndim > (len(d.data)-section.ShapeOffset)/section.ShapeEntrySize {
		return nil, fmt.Errorf("%w: %d dimensions exceed blob size", errs.ErrInvalidShape, ndim)
	}

	shape := make([]int, ndim)
	size := uint64(1)
	for i := range shape {
		off := section.ShapeOffset + i*section.ShapeEntrySize
		dim := d.engine.Uint32(d.data[off : off+section.ShapeEntrySize])
		shape[i] = int(dim)
		size *= uint64(dim)
		if size > section.MaxDimension {
			size = section.MaxDimension + 1
		}
	}

	if size != uint64(d.header.ElementCount) {
		return nil, fmt.Errorf("%w: shape %v holds %d elements, header says %d",
			errs.ErrInvalidShape, shape, size, d.header.ElementCount)
	}

	return shape, nil
}

func (d *LabelDecoder) decompress(packed []byte) ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.GetCompression())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidHeaderFlags, err)
	}

	payload, err := codec.DecompressBounded(packed, int(d.header.PayloadSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidCategoryPayload, err)
	}

	if uint64(len(payload)) != uint64(d.header.PayloadSize) {
		return nil, fmt.Errorf("%w: payload has %d bytes, header says %d",
			errs.ErrInvalidCategoryPayload, len(payload), d.header.PayloadSize)
	}

	return payload, nil
}

// parseCategories reads CategoryCount values and returns the table with the
// remaining bytes.
func (d *LabelDecoder) parseCategories(payload []byte) (*category.Table, []byte, error) {
	count := int(d.header.CategoryCount)
	// every value takes at least its one-byte length prefix
	if count > len(payload) {
		return nil, nil, fmt.Errorf("%w: %d categories in %d bytes",
			errs.ErrInvalidCategoryPayload, count, len(payload))
	}

	values := make([]string, count)

	rest, err := encoding.NewCategoryDecoder().DecodeInto(payload, values)
	if err != nil {
		return nil, nil, err
	}

	table, ok := category.FromSorted(values)
	if !ok {
		return nil, nil, fmt.Errorf("%w: categories are not strictly ascending", errs.ErrInvalidCategoryPayload)
	}

	if table.Fingerprint() != d.header.Fingerprint {
		return nil, nil, fmt.Errorf("%w: got 0x%016x, header says 0x%016x",
			errs.ErrHashMismatch, table.Fingerprint(), d.header.Fingerprint)
	}

	return table, rest, nil
}

// parseCodes reads ElementCount codes into a pooled slice. The caller must
// call release once the codes are no longer used.
func (d *LabelDecoder) parseCodes(payload []byte, categories int) ([]int64, func(), error) {
	var decoder encoding.ColumnarDecoder[int64]
	minSize := int(d.header.ElementCount)
	switch d.header.Flag.GetCodeEncoding() {
	case format.TypeRaw:
		decoder = encoding.NewCodeRawDecoder(d.engine)
		minSize *= encoding.CodeRawSize
	default:
		decoder = encoding.NewCodeVarintDecoder()
	}

	// reject impossible counts before allocating
	if minSize > len(payload) {
		return nil, nil, fmt.Errorf("%w: %d codes in %d bytes",
			errs.ErrInvalidCodePayload, d.header.ElementCount, len(payload))
	}

	codes, release := pool.GetInt64Slice(int(d.header.ElementCount))
	rest, err := decoder.DecodeInto(payload, codes)
	if err != nil {
		release()
		return nil, nil, err
	}

	if len(rest) != 0 {
		release()
		return nil, nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidCodePayload, len(rest))
	}

	for i, code := range codes {
		if code >= int64(categories) {
			release()
			return nil, nil, fmt.Errorf("%w: code %d at %d exceeds %d categories",
				errs.ErrInvalidCodePayload, code, i, categories)
		}
	}

	return codes, release, nil
}
