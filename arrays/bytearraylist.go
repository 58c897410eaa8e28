package arrays

import (
	"bytes"
	"fmt"
	"iter"
	"strconv"
	"strings"
	"unsafe"
)

// ByteArrayList is a growable array of byte values.
//
// It owns its buffer exclusively: nothing returned by its methods aliases the
// storage. Create lists with New, NewWithCapacity or NewCopy. The zero value
// is an empty list with no buffer, it allocates on the first insertion.
type ByteArrayList struct {
	values []byte
	size   int
}

// New returns an empty list with DefaultInitialCapacity.
func New() *ByteArrayList {
	return &ByteArrayList{values: make([]byte, DefaultInitialCapacity)}
}

// NewWithCapacity returns an empty list whose buffer holds initialCapacity
// values before it needs to grow.
func NewWithCapacity(initialCapacity int) (*ByteArrayList, error) {
	if initialCapacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, initialCapacity)
	}
	return &ByteArrayList{values: make([]byte, initialCapacity)}, nil
}

// NewCopy returns a tight copy of src: the copy's capacity is src.Size(), not
// src.Capacity(). An empty source produces a list of capacity 1.
func NewCopy(src *ByteArrayList) *ByteArrayList {
	l := &ByteArrayList{}
	l.setTight(src.values[:src.size])
	return l
}

// setTight replaces the contents with a copy of values, sized exactly.
func (l *ByteArrayList) setTight(values []byte) {
	l.values = make([]byte, max(len(values), DefaultInitialCapacity))
	l.size = copy(l.values, values)
}

func (l *ByteArrayList) Size() int     { return l.size }
func (l *ByteArrayList) IsEmpty() bool { return l.size == 0 }

// Capacity returns the number of values the list can hold before it must
// reallocate.
func (l *ByteArrayList) Capacity() int { return len(l.values) }

// Len and At make the list Searchable. At does not check index against the
// logical size, use Get for checked access.
func (l *ByteArrayList) Len() int      { return l.size }
func (l *ByteArrayList) At(i int) byte { return l.values[i] }

func (l *ByteArrayList) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	return nil
}

// Get returns the value at index.
func (l *ByteArrayList) Get(index int) (byte, error) {
	if err := l.checkIndex(index); err != nil {
		return 0, err
	}
	return l.values[index], nil
}

// Set overwrites the value at index. It never grows the list.
func (l *ByteArrayList) Set(index int, value byte) error {
	if err := l.checkIndex(index); err != nil {
		return err
	}
	l.values[index] = value
	return nil
}

// Add appends value, growing the buffer first if it is full.
func (l *ByteArrayList) Add(value byte) {
	l.grow(l.size + 1)
	l.values[l.size] = value
	l.size++
}

// Insert places value at index, shifting the values at [index, size) one slot
// to the right. index may equal Size(), in which case this is Add.
func (l *ByteArrayList) Insert(index int, value byte) error {
	if index < 0 || index > l.size {
		return fmt.Errorf("%w: insert at %d, size %d", ErrIndexOutOfRange, index, l.size)
	}
	l.grow(l.size + 1)
	copy(l.values[index+1:l.size+1], l.values[index:l.size])
	l.values[index] = value
	l.size++
	return nil
}

// Remove deletes and returns the value at index, shifting the values after it
// one slot to the left. Capacity is unchanged.
func (l *ByteArrayList) Remove(index int) (byte, error) {
	if err := l.checkIndex(index); err != nil {
		return 0, err
	}
	v := l.values[index]
	copy(l.values[index:l.size-1], l.values[index+1:l.size])
	l.size--
	return v, nil
}

// RemoveLast is Remove(Size()-1). On an empty list it returns
// ErrIndexOutOfRange.
func (l *ByteArrayList) RemoveLast() (byte, error) {
	return l.Remove(l.size - 1)
}

// Clear empties the list, keeping its capacity.
func (l *ByteArrayList) Clear() { l.size = 0 }

// IndexOf returns the lowest index holding value, or -1.
func (l *ByteArrayList) IndexOf(value byte) int {
	return bytes.IndexByte(l.values[:l.size], value)
}

// Search is Search(l, l.Size(), value). The list must be sorted.
func (l *ByteArrayList) Search(value byte) int {
	return Search(l, l.size, value)
}

// EnsureCapacity grows the buffer, following GrowCapacity, until it holds at
// least n values. It never shrinks.
func (l *ByteArrayList) EnsureCapacity(n int) error {
	newCap, err := CapacityFor(len(l.values), n)
	if err != nil {
		return err
	}
	l.resize(newCap)
	return nil
}

// grow makes room for need values. Overflowing int here means the host could
// never have allocated the buffer anyway.
func (l *ByteArrayList) grow(need int) {
	if need <= len(l.values) {
		return
	}
	newCap, err := CapacityFor(len(l.values), need)
	if err != nil {
		panic(err)
	}
	l.resize(newCap)
}

func (l *ByteArrayList) resize(newCap int) {
	if newCap == len(l.values) {
		return
	}
	values := make([]byte, newCap)
	copy(values, l.values[:l.size])
	l.values = values
}

// All returns the values in index order. Each range over the result starts at
// index 0 and sees the size the list had when that range began. Mutating the
// list while ranging is not supported.
func (l *ByteArrayList) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		values, size := l.values, l.size
		for i := 0; i < size; i++ {
			if !yield(values[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the logical contents.
func (l *ByteArrayList) Values() []byte {
	return bytes.Clone(l.values[:l.size])
}

// Equal reports whether both lists hold the same values in the same order.
// Capacity is not compared.
func (l *ByteArrayList) Equal(other *ByteArrayList) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.size == other.size && bytes.Equal(l.values[:l.size], other.values[:other.size])
}

// HeapSize estimates the memory held by the list, including spare capacity.
func (l *ByteArrayList) HeapSize() int {
	return int(unsafe.Sizeof(*l)) + cap(l.values)
}

func (l *ByteArrayList) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.values[:l.size] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(int(v)))
	}
	sb.WriteByte(']')
	return sb.String()
}
