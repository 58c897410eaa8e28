package arrays

import (
	"github.com/fxamacker/cbor/v2"
)

// cborMajorByteString is the major type of a CBOR byte string (RFC 8949 3.1).
const cborMajorByteString = 2

var (
	cborEncMode = mustEncMode(cbor.CoreDetEncOptions())
	cborDecMode = mustDecMode(cbor.DecOptions{})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}

// MarshalCBOR encodes the logical contents as a single CBOR byte string.
func (l *ByteArrayList) MarshalCBOR() ([]byte, error) {
	values := l.values[:l.size]
	if values == nil {
		// the zero value list, keep it a byte string rather than null
		values = []byte{}
	}
	return cborEncMode.Marshal(values)
}

// UnmarshalCBOR decodes a CBOR byte string produced by MarshalCBOR. Any other
// item, including an array of integers, is rejected with ErrNotByteString.
func (l *ByteArrayList) UnmarshalCBOR(data []byte) error {
	if len(data) == 0 || data[0]>>5 != cborMajorByteString {
		return ErrNotByteString
	}
	var values []byte
	if err := cborDecMode.Unmarshal(data, &values); err != nil {
		return err
	}
	l.setTight(values)
	return nil
}
