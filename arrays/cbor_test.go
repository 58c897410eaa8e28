package arrays

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/require"
)

var (
	_ cbor.Marshaler   = (*ByteArrayList)(nil)
	_ cbor.Unmarshaler = (*ByteArrayList)(nil)
)

func TestCBOR_RoundTrip(t *testing.T) {
	l := mustList(t, 10, 1, 2, 3)

	data, err := l.MarshalCBOR()
	require.NoError(t, err)
	// Byte string of length 3.
	require.Equal(t, []byte{0x43, 0x01, 0x02, 0x03}, data)

	var out ByteArrayList
	require.NoError(t, out.UnmarshalCBOR(data))
	require.True(t, out.Equal(l))
	require.Equal(t, 3, out.Capacity())
}

func TestCBOR_Empty(t *testing.T) {
	data, err := New().MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, []byte{0x40}, data)

	var out ByteArrayList
	require.NoError(t, out.UnmarshalCBOR(data))
	require.True(t, out.IsEmpty())
	require.Equal(t, 1, out.Capacity())

	var zero ByteArrayList
	data, err = zero.MarshalCBOR()
	require.NoError(t, err)
	require.Equal(t, []byte{0x40}, data)
}

func TestCBOR_Embedded(t *testing.T) {
	type record struct {
		Name   string         `cbor:"1,keyasint"`
		Values *ByteArrayList `cbor:"2,keyasint"`
	}

	in := record{Name: "idx", Values: mustList(t, 1, 9, 8, 7)}
	data, err := cbor.Marshal(in)
	require.NoError(t, err)

	var out record
	require.NoError(t, cbor.Unmarshal(data, &out))
	require.Equal(t, "idx", out.Name)
	require.NotNil(t, out.Values)
	require.Equal(t, []byte{9, 8, 7}, out.Values.Values())
}

func TestCBOR_RejectsOtherItems(t *testing.T) {
	array, err := cbor.Marshal([]int{1, 2})
	require.NoError(t, err)

	l := mustList(t, 1, 4)
	require.ErrorIs(t, l.UnmarshalCBOR(array), ErrNotByteString)
	require.ErrorIs(t, l.UnmarshalCBOR(nil), ErrNotByteString)

	text, err := cbor.Marshal("abc")
	require.NoError(t, err)
	require.ErrorIs(t, l.UnmarshalCBOR(text), ErrNotByteString)

	require.Equal(t, []byte{4}, l.Values())
}
