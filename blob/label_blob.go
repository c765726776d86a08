package blob

import "github.com/arloliu/labelarray/compress"

// LabelBlob is an encoded label array.
type LabelBlob struct {
	data  []byte
	stats compress.CompressionStats
}

// Bytes returns the serialized blob. The slice is owned by the blob.
func (b LabelBlob) Bytes() []byte {
	return b.data
}

// Len returns the blob size in bytes.
func (b LabelBlob) Len() int {
	return len(b.data)
}

// Stats reports how the payload compressed.
func (b LabelBlob) Stats() compress.CompressionStats {
	return b.stats
}
