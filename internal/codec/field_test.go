package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSetInt32_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	PutInt32(buf, 2, -12345)
	require.Equal(t, int32(-12345), GetInt32(buf, 2))
}

func TestGetSetInt16_RoundTrip(t *testing.T) {
	buf := make([]byte, 8)
	PutInt16(buf, 4, -42)
	require.Equal(t, int16(-42), GetInt16(buf, 4))
}

func TestGetSetField_WidthDispatch(t *testing.T) {
	buf := make([]byte, 16)

	SetField(buf, 0, WidthI32, 1000000)
	require.Equal(t, int32(1000000), GetField(buf, 0, WidthI32))

	SetField(buf, 4, WidthI16, -7)
	require.Equal(t, int32(-7), GetField(buf, 4, WidthI16))
}

func TestBigEndianByteOrder(t *testing.T) {
	buf := make([]byte, 4)
	PutInt32(buf, 0, 1)
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, buf)
}
