package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestIsNativeBigEndian(t *testing.T) {
	var probe uint16 = 0x0102
	first := (*[2]byte)(unsafe.Pointer(&probe))[0]

	switch first {
	case 0x01:
		require.True(t, IsNativeBigEndian())
		require.Equal(t, binary.BigEndian, GetNativeEngine())
	case 0x02:
		require.False(t, IsNativeBigEndian())
		require.Equal(t, binary.LittleEndian, GetNativeEngine())
	default:
		require.Failf(t, "unexpected byte value", "got: %v", first)
	}
}

func TestEngines(t *testing.T) {
	tests := []struct {
		name   string
		engine EndianEngine
		want   []byte
		big    bool
	}{
		{name: "little endian", engine: GetLittleEndianEngine(), want: []byte{0x10, 0xAC}, big: false},
		{name: "big endian", engine: GetBigEndianEngine(), want: []byte{0xAC, 0x10}, big: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.engine.AppendUint16(nil, 0xAC10)
			require.Equal(t, tt.want, buf)
			require.Equal(t, uint16(0xAC10), tt.engine.Uint16(buf))
			require.Equal(t, tt.big, IsBigEndian(tt.engine))

			buf = tt.engine.AppendUint64(buf[:0], 0x0102030405060708)
			require.Equal(t, uint64(0x0102030405060708), tt.engine.Uint64(buf))
		})
	}
}
