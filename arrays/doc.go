package arrays

/*

# Primitive array lists for index workloads

This package provides a growable array of single byte values and a binary
search that works directly over it.

It follows the same style as the other primitive packages in this repository:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- a burden of knowledge on the caller for hot paths

## Why not []byte and append?

A ByteArrayList is a []byte with a logical size tracked separately from the
physical capacity. The difference to a bare slice is that the growth rule is
fixed and observable, the buffer is never aliased by callers, and every index
is checked against the logical size rather than the capacity:

	+-------------------------------+-----------------------+
	| values[0:size] (valid)        | values[size:cap]      |
	+-------------------------------+-----------------------+
	                                  stale, never observable

The capacity is always at least 1, even for an empty list.

## Growth

When an insertion would exceed capacity the buffer is reallocated using

	newCapacity = oldCapacity + oldCapacity/2 + 1

Starting from the default capacity of 1 the sequence is 1, 2, 4, 7, 11, 17, ...
See GrowCapacity.

## Binary search

Search works over anything satisfying Searchable (a length and an indexed
read). Ordering is unsigned: 0x80 sorts after 0x7f. When the target is not
present the result is -(insertionPoint + 1), so a single int carries both "not
found" and "where it would go".

## Errors

Index violations are reported as ErrIndexOutOfRange, wrapped with the
offending index and the logical size. Use errors.Is to test for it. A failed
operation never changes the list.

## Concurrency

Nothing here is synchronized. Callers sharing a list across goroutines must
provide their own mutual exclusion, and must not mutate a list while ranging
over All().

## Serialized form

MarshalBinary produces a versioned layout (see EncodeV1). MarshalCBOR produces a
single CBOR byte string. Both carry only the logical contents, never the spare
capacity.

*/
