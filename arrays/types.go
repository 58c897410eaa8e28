package arrays

import "errors"

const (
	// DefaultInitialCapacity is the capacity of a list created with New.
	DefaultInitialCapacity = 1

	// HeaderBytesV1 is the fixed header size of the V1 binary layout.
	HeaderBytesV1 = 16

	MagicV1         = "BAL1"
	VersionV1 uint8 = 1
)

var (
	ErrIndexOutOfRange  = errors.New("arrays: index out of range")
	ErrBadCapacity      = errors.New("arrays: initial capacity must be at least 1")
	ErrCapacityOverflow = errors.New("arrays: capacity overflows supported range")

	ErrBadRegionSize = errors.New("arrays: region buffer too small")
	ErrBadMagic      = errors.New("arrays: header magic invalid")
	ErrBadVersion    = errors.New("arrays: header version invalid")
	ErrNotByteString = errors.New("arrays: cbor item is not a byte string")
)
