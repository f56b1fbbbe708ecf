package hypercube

import "strings"

// Coordinate is one vertex of the n-cube: n bits, most significant bit first.
type Coordinate []uint8

// String renders the bits, e.g. "0110".
func (c Coordinate) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, b := range c {
		sb.WriteByte('0' + b)
	}

	return sb.String()
}

// Index returns the integer whose binary form (MSB first) is c.
func (c Coordinate) Index() int {
	idx := 0
	for _, b := range c {
		idx = idx<<1 | int(b)
	}

	return idx
}

// valid reports whether every position holds 0 or 1.
func (c Coordinate) valid() bool {
	for _, b := range c {
		if b > 1 {
			return false
		}
	}

	return true
}

// Coordinates returns all 2^n bit vectors of length n in natural binary order
// of the integers 0..2^n-1, most significant bit first. Coordinates(0) is a
// single empty vector. Negative n yields nil.
//
// Complexity: Time O(n·2^n), Memory O(n·2^n).
func Coordinates(n int) []Coordinate {
	if n < 0 {
		return nil
	}

	size := 1 << n
	out := make([]Coordinate, size)
	for i := 0; i < size; i++ {
		bits := make(Coordinate, n)
		for j := 0; j < n; j++ {
			bits[n-j-1] = uint8((i >> j) & 1)
		}
		out[i] = bits
	}

	return out
}

// Hamming returns the number of positions at which a and b differ.
// Positions present in only one vector count as differences.
func Hamming(a, b Coordinate) int {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}

	dist := len(long) - len(short)
	for i := range short {
		if short[i] != long[i] {
			dist++
		}
	}

	return dist
}
