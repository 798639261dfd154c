package bitvec

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrIndexOutOfRange indicates a bit index outside [0, Len).
var ErrIndexOutOfRange = errors.New("bitvec: index out of range")

// Vector is a fixed-length bit vector. The zero value is the empty vector.
type Vector struct {
	n    int
	bits string
}

// New returns a Vector of n zero bits.
func New(n int) Vector {
	return Vector{n: n, bits: string(make([]byte, bytesFor(n)))}
}

// FromIndices returns a Vector of length n with exactly the given bits set.
// Duplicate indices are allowed. Returns ErrIndexOutOfRange if any index
// falls outside [0, n).
func FromIndices(n int, indices ...int) (Vector, error) {
	packed := make([]byte, bytesFor(n))
	for _, i := range indices {
		if i < 0 || i >= n {
			return Vector{}, fmt.Errorf("%w: %d (length %d)", ErrIndexOutOfRange, i, n)
		}
		packed[i>>3] |= 1 << (i & 7)
	}

	return Vector{n: n, bits: string(packed)}, nil
}

// FromBools returns a Vector with bit i set exactly when vals[i] is true.
func FromBools(vals []bool) Vector {
	packed := make([]byte, bytesFor(len(vals)))
	for i, set := range vals {
		if set {
			packed[i>>3] |= 1 << (i & 7)
		}
	}

	return Vector{n: len(vals), bits: string(packed)}
}

// Len reports the number of bits.
func (v Vector) Len() int { return v.n }

// Bit reports whether bit i is set. Out-of-range indices report false.
func (v Vector) Bit(i int) bool {
	if i < 0 || i >= v.n {
		return false
	}

	return v.bits[i>>3]&(1<<(i&7)) != 0
}

// OnesCount returns the number of set bits.
func (v Vector) OnesCount() int {
	var total int
	for i := 0; i < len(v.bits); i++ {
		total += bits.OnesCount8(v.bits[i])
	}

	return total
}

// Xor returns a Vector with every bit of m toggled in v. Applying the same
// mask twice restores the original vector. Both vectors must have the same
// length; a mismatch is a programming error and panics.
func (v Vector) Xor(m Vector) Vector {
	if v.n != m.n {
		panic(fmt.Sprintf("bitvec: Xor length mismatch: %d vs %d", v.n, m.n))
	}
	packed := []byte(v.bits)
	for i := 0; i < len(packed); i++ {
		packed[i] ^= m.bits[i]
	}

	return Vector{n: v.n, bits: string(packed)}
}

// String renders the vector as '1'/'0' characters, bit 0 first.
func (v Vector) String() string {
	out := make([]byte, v.n)
	for i := 0; i < v.n; i++ {
		if v.Bit(i) {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}

	return string(out)
}

// bytesFor returns the byte count needed to hold n bits.
func bytesFor(n int) int { return (n + 7) / 8 }
