package arrays

import "bytes"

// EncodedBytesV1 returns the size of the V1 layout for a list holding size
// values.
func EncodedBytesV1(size int) int { return HeaderBytesV1 + size }

// DecodeHeaderV1 decodes a V1 header and returns the number of values that
// follow it.
//
// The region must hold at least the header and the values it announces.
func DecodeHeaderV1(region []byte) (uint64, error) {
	if len(region) < HeaderBytesV1 {
		return 0, ErrBadRegionSize
	}
	if !bytes.Equal(region[0:4], []byte(MagicV1)) {
		return 0, ErrBadMagic
	}
	if region[4] != VersionV1 {
		return 0, ErrBadVersion
	}
	size := readU64BE(region[8:16])
	if size > uint64(len(region)-HeaderBytesV1) {
		return 0, ErrBadRegionSize
	}
	return size, nil
}

// EncodeV1 writes the V1 layout of the list into dst, which must have at
// least EncodedBytesV1(l.Size()) bytes. Spare capacity is not written.
//
//	+--------------------------+  16B header
//	| magic "BAL1"             |  [0:4]
//	| version                  |  [4]
//	| reserved (zero)          |  [5:8]
//	| size, uint64 big endian  |  [8:16]
//	+--------------------------+
//	| values[0:size]           |
//	+--------------------------+
func (l *ByteArrayList) EncodeV1(dst []byte) error {
	if len(dst) < EncodedBytesV1(l.size) {
		return ErrBadRegionSize
	}
	copy(dst[0:4], []byte(MagicV1))
	dst[4] = VersionV1
	clear(dst[5:8])
	writeU64BE(dst[8:16], uint64(l.size))
	copy(dst[HeaderBytesV1:], l.values[:l.size])
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler using the V1 layout.
func (l *ByteArrayList) MarshalBinary() ([]byte, error) {
	data := make([]byte, EncodedBytesV1(l.size))
	if err := l.EncodeV1(data); err != nil {
		return nil, err
	}
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. The decoded list is
// tight, its capacity equals its size.
func (l *ByteArrayList) UnmarshalBinary(data []byte) error {
	size, err := DecodeHeaderV1(data)
	if err != nil {
		return err
	}
	l.setTight(data[HeaderBytesV1 : HeaderBytesV1+int(size)])
	return nil
}
