// SPDX-License-Identifier: MIT

package buffer

// Kind tags the element type stored in a Buffer.
type Kind uint8

const (
	// Float32 stores IEEE-754 single precision values. It is the zero value.
	Float32 Kind = iota
	// Int32 stores signed 32-bit integers with two's complement wraparound.
	Int32
	// Uint8 stores unsigned bytes with modulo-256 wraparound.
	Uint8
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Uint8:
		return "uint8"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k <= Uint8 }
