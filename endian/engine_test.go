package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	le := GetLittleEndianEngine()
	be := GetBigEndianEngine()

	buf := le.AppendUint32(nil, 0x01020304)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	require.Equal(t, uint32(0x01020304), le.Uint32(buf))

	buf = be.AppendUint16(nil, 0xEC10)
	require.Equal(t, []byte{0xEC, 0x10}, buf)
	require.Equal(t, uint16(0xEC10), be.Uint16(buf))
}

func TestNative(t *testing.T) {
	native := Native()
	require.True(t, native == binary.LittleEndian || native == binary.BigEndian)
	require.True(t, IsNative(native))

	if native == binary.LittleEndian {
		require.False(t, IsNative(GetBigEndianEngine()))
	} else {
		require.False(t, IsNative(GetLittleEndianEngine()))
	}
}
