// Package blob persists label arrays as compact binary blobs.
//
// A blob is a 32-byte section.LabelHeader, followed by the shape and then the
// payload. The payload holds the category table and the code stream and can be
// compressed with any codec from the compress package.
//
// Encoding:
//
//	encoder, err := blob.NewLabelEncoder(
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithCodeEncoding(format.TypeVarint),
//	)
//	if err != nil {
//	    return err
//	}
//	b, err := encoder.Encode(arr)
//	if err != nil {
//	    return err
//	}
//	data := b.Bytes()
//
// Decoding:
//
//	arr, err := blob.NewLabelDecoder(data).Decode()
//
// The decoder checks the header, the shape, the category order and the
// fingerprint, and it checks every code against the category count before
// anything is built. The array itself is rebuilt with labelarray.New, so a
// decoded array goes through the same encoding path as any other. Categories
// that no element references are therefore not restored.
package blob
