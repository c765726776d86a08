// Package section defines the fixed header of a label blob.
//
// Layout (32 bytes):
//
//	offset  size  field
//	0       2     options: magic 0xEC10 in bits 4-15, bit 1 = big-endian (always little-endian on disk)
//	2       1     code encoding (format.EncodingType)
//	3       1     compression (format.CompressionType)
//	4       4     ndim
//	8       4     category count
//	12      4     element count
//	16      4     uncompressed payload size
//	20      8     category table fingerprint
//	28      4     reserved, zero
//
// The shape section follows the header as ndim 4-byte dimensions, and the
// compressed payload follows the shape.
package section
