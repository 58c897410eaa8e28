package arrays

// Searchable is the read only view Search needs: a logical length and an
// indexed read.
//
// At is only ever called with 0 <= i < Len(), implementations are free to
// panic outside that range.
type Searchable interface {
	Len() int
	At(i int) byte
}

// Bytes adapts a plain byte slice to Searchable.
type Bytes []byte

func (b Bytes) Len() int      { return len(b) }
func (b Bytes) At(i int) byte { return b[i] }
