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

// Package huffman implements a byte-oriented canonical Huffman
// codec: Encode and Decode transform an arbitrary finite byte
// stream into a self-describing compressed stream and back,
// using a 257-byte header (a length table plus a padding-bit
// count) and an MSB-first bit-packed body. See the package-level
// Encode and Decode docs for the container layout.
package huffman

import (
	"io"

	"github.com/bytepack/chuff/bitio"
)

func isEOF(err error) bool {
	return err == io.EOF
}

// headerSize is the fixed size, in bytes, of the length table
// plus the trailing ignore-bits byte that precedes every
// compressed stream's body.
const headerSize = numSymbols + 1

// Encode reads every byte of src exactly twice -- once to build a
// frequency histogram, once to emit the body -- and writes a
// self-describing compressed stream to dst:
//
//	offset 0..255   length table: 256 bytes, L[0]..L[255]
//	offset 256      ignore_bits : 1 byte, value 0..7
//	offset 257..end body        : MSB-first bit packing of codewords,
//	                              zero-padded on the low side of the
//	                              final byte
//
// src must support Rewind; Encode calls it exactly once, after
// counting and before emitting the body.
func Encode(src ByteSource, dst ByteSink) error {
	count, err := countFrequencies(src)
	if err != nil {
		return err
	}
	lengths := buildLengths(count)
	_, codes, err := canonicalize(lengths)
	if err != nil {
		return err
	}

	for _, l := range lengths {
		if err := dst.WriteByte(byte(l)); err != nil {
			return err
		}
	}

	var msgBits uint64
	for sym, c := range codes {
		msgBits += count[sym] * uint64(c.length)
	}
	ignoreBits := uint8((8 - msgBits%8) % 8)
	if err := dst.WriteByte(ignoreBits); err != nil {
		return err
	}

	if err := src.Rewind(); err != nil {
		return err
	}

	w := bitio.NewWriter(dst)
	for {
		b, err := src.ReadByte()
		if err != nil {
			if isEOF(err) {
				break
			}
			return err
		}
		c := codes[b]
		if err := w.Push(c.value, uint(c.length)); err != nil {
			return err
		}
	}
	_, err = w.Flush()
	return err
}
