// SPDX-License-Identifier: MIT

// Package buffer - typed storage & narrowing conversions.
//
// Purpose:
//   - Hold exactly one typed slice selected by Kind; the other two stay nil.
//   - Keep Len() immutable: no method appends or truncates.
//   - Centralize the float64 → element narrowing rules in one place (narrow*).
//
// Complexity quicksheet:
//   - New*: O(n) zero-init; At/Set/Load/Store: O(1); Clone/Float64s: O(n).

package buffer

import "math"

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// Buffer is a fixed-length numeric array of a single element Kind.
type Buffer struct {
	kind Kind
	u8   []uint8
	i32  []int32
	f32  []float32
}

// New allocates a zero-filled buffer of n elements of the given kind.
// Errors: ErrNegativeLength, ErrUnknownKind.
func New(kind Kind, n int) (*Buffer, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b := &Buffer{kind: kind}
	switch kind {
	case Uint8:
		b.u8 = make([]uint8, n)
	case Int32:
		b.i32 = make([]int32, n)
	case Float32:
		b.f32 = make([]float32, n)
	default:
		return nil, ErrUnknownKind
	}

	return b, nil
}

// NewUint8 allocates n zeroed bytes. It panics on n < 0 like make.
func NewUint8(n int) *Buffer { return &Buffer{kind: Uint8, u8: make([]uint8, n)} }

// NewInt32 allocates n zeroed int32 values. It panics on n < 0 like make.
func NewInt32(n int) *Buffer { return &Buffer{kind: Int32, i32: make([]int32, n)} }

// NewFloat32 allocates n zeroed float32 values. It panics on n < 0 like make.
func NewFloat32(n int) *Buffer { return &Buffer{kind: Float32, f32: make([]float32, n)} }

// FromUint8 wraps data without copying; the buffer aliases the slice.
func FromUint8(data []uint8) *Buffer { return &Buffer{kind: Uint8, u8: data} }

// FromInt32 wraps data without copying; the buffer aliases the slice.
func FromInt32(data []int32) *Buffer { return &Buffer{kind: Int32, i32: data} }

// FromFloat32 wraps data without copying; the buffer aliases the slice.
func FromFloat32(data []float32) *Buffer { return &Buffer{kind: Float32, f32: data} }

// Kind returns the element kind fixed at construction.
func (b *Buffer) Kind() Kind { return b.kind }

// Len returns the element count.
func (b *Buffer) Len() int {
	switch b.kind {
	case Uint8:
		return len(b.u8)
	case Int32:
		return len(b.i32)
	default:
		return len(b.f32)
	}
}

// At returns element i widened to float64.
func (b *Buffer) At(i int) (float64, error) {
	if i < 0 || i >= b.Len() {
		return 0, bufferErrorf(ctxAt, i, b.Len(), ErrIndexOutOfRange)
	}

	return b.Load(i), nil
}

// Set narrows v into the element kind and stores it at i.
func (b *Buffer) Set(i int, v float64) error {
	if i < 0 || i >= b.Len() {
		return bufferErrorf(ctxSet, i, b.Len(), ErrIndexOutOfRange)
	}
	b.Store(i, v)

	return nil
}

// Load is the unchecked form of At. Out-of-range i panics like slice indexing;
// callers that already validated the index (matrix offsets) use it on hot paths.
func (b *Buffer) Load(i int) float64 {
	switch b.kind {
	case Uint8:
		return float64(b.u8[i])
	case Int32:
		return float64(b.i32[i])
	default:
		return float64(b.f32[i])
	}
}

// Store is the unchecked form of Set.
func (b *Buffer) Store(i int, v float64) {
	switch b.kind {
	case Uint8:
		b.u8[i] = narrowUint8(v)
	case Int32:
		b.i32[i] = narrowInt32(v)
	default:
		b.f32[i] = float32(v)
	}
}

// Clone returns a deep copy with the same kind and length.
func (b *Buffer) Clone() *Buffer {
	out := &Buffer{kind: b.kind}
	switch b.kind {
	case Uint8:
		out.u8 = append([]uint8(nil), b.u8...)
	case Int32:
		out.i32 = append([]int32(nil), b.i32...)
	default:
		out.f32 = append([]float32(nil), b.f32...)
	}

	return out
}

// Float64s copies the contents into a fresh []float64.
func (b *Buffer) Float64s() []float64 {
	n := b.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = b.Load(i)
	}

	return out
}

// Uint8s returns the live backing slice, or nil when Kind() != Uint8.
func (b *Buffer) Uint8s() []uint8 { return b.u8 }

// Int32s returns the live backing slice, or nil when Kind() != Int32.
func (b *Buffer) Int32s() []int32 { return b.i32 }

// Float32s returns the live backing slice, or nil when Kind() != Float32.
func (b *Buffer) Float32s() []float32 { return b.f32 }

const (
	mod8  = 1 << 8
	mod32 = 1 << 32
)

// narrowUint8 truncates toward zero and wraps modulo 256; non-finite → 0.
func narrowUint8(v float64) uint8 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), mod8)
	if m < 0 {
		m += mod8
	}

	return uint8(m)
}

// narrowInt32 truncates toward zero and wraps modulo 2^32 into the signed range.
func narrowInt32(v float64) int32 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(v), mod32)
	if m < 0 {
		m += mod32
	}

	return int32(uint32(m))
}
