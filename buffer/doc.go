// SPDX-License-Identifier: MIT

// Package buffer provides fixed-length, element-homogeneous numeric storage.
//
// A Buffer carries a Kind tag (Uint8, Int32 or Float32) chosen at construction
// and never changes length afterwards. Values cross the API as float64 and are
// narrowed into the element kind on write:
//
//   - Uint8:   NaN/±Inf store 0; otherwise truncate toward zero and wrap mod 256.
//   - Int32:   NaN/±Inf store 0; otherwise truncate toward zero and wrap mod 2^32.
//   - Float32: IEEE-754 narrowing.
//
// The wrapping rules are deliberate: callers that persisted data through a
// Uint8 buffer rely on 256 reading back as 0 and -1 as 255.
//
// Usage:
//
//	b := buffer.NewUint8(3)
//	_ = b.Set(0, 300) // stores 44
//	v, _ := b.At(0)   // 44
package buffer
