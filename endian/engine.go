// Package endian provides the byte-order engine used by the label blob format.
//
// An EndianEngine combines binary.ByteOrder and binary.AppendByteOrder so a
// single value can both patch fixed-size fields in place and append them to a
// growing buffer. The engines returned here are the stateless standard library
// byte orders and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the byte order of the host.
func Native() EndianEngine {
	var word uint16 = 0x0100
	if (*[2]byte)(unsafe.Pointer(&word))[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNative reports whether engine matches the host byte order.
func IsNative(engine EndianEngine) bool {
	return engine == Native()
}

// GetLittleEndianEngine returns the little-endian engine, the default for label blobs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
