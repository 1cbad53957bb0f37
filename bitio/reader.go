// Copyright 2024 The Chuff Authors
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package bitio

import "io"

// Source supplies whole bytes to a Reader.
type Source interface {
	// ReadByte returns the next byte, or io.EOF when exhausted.
	ReadByte() (byte, error)
}

// Reader exposes a 63-bit high-order window over a byte source
// for MSB-first prefix matching. Bit 63 of the window is always
// zero: it is a guard bit reserved so that a single refill always
// leaves room for the longest codeword the huffman decoder needs
// to compare against.
//
// Create a Reader with NewReader; the zero value has no source, and
// Refill on it panics.
type Reader struct {
	src    Source
	value  uint64
	length uint // bits of value that are occupied, counted from the high end
	eof    bool
}

// NewReader returns a Reader that pulls bytes from src on Refill.
func NewReader(src Source) *Reader {
	return &Reader{src: src}
}

// Refill pulls whole bytes from the source into the high-order
// side of the window until there is no room left for another
// full byte under the guard bit, or the source is exhausted.
func (r *Reader) Refill() error {
	for r.length+8 <= Width-1 {
		b, err := r.src.ReadByte()
		if err != nil {
			if err == io.EOF {
				r.eof = true
				break
			}
			return err
		}
		r.value |= uint64(b) << (Width - 9 - r.length)
		r.length += 8
	}
	r.value &= (uint64(1) << (Width - 1)) - 1
	return nil
}

// Value returns the current window contents, right-padded with
// zeros below the occupied bits.
func (r *Reader) Value() uint64 { return r.value }

// Len returns the number of occupied bits in the window.
func (r *Reader) Len() uint { return r.length }

// EOF reports whether the underlying source has been exhausted.
// The window may still hold unconsumed bits after EOF.
func (r *Reader) EOF() bool { return r.eof }

// Peek9 returns the top nine bits of the window. Since bit 63 of
// the window (the guard bit) is always zero, the result is always
// in [0,256) and can be used directly as a dispatch table index.
func (r *Reader) Peek9() uint64 {
	return r.value >> (Width - 9)
}

// Consume removes the top n bits from the window.
func (r *Reader) Consume(n uint) {
	r.value <<= n
	if n >= r.length {
		r.length = 0
	} else {
		r.length -= n
	}
}
