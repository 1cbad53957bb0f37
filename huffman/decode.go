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

package huffman

import (
	"fmt"

	"github.com/bytepack/chuff/bitio"
)

// frame holds everything the decode loop needs once a stream's
// header has been parsed and its canonical codes rebuilt: the
// codes themselves, the symbol permutation and its inverse, and
// the per-length anchors and the leading-byte dispatch table that
// buildFrame fills in.
type frame struct {
	perm      [numSymbols]int
	invPerm   [numSymbols]int
	codes     [numSymbols]code
	maxLength uint8

	smallestChar     [numSymbols + 1]int
	smallestCode     [numSymbols + 1]uint64
	nextSmallestCode [numSymbols + 1]uint64
	start            [numSymbols]int
}

func buildFrame(lengths [numSymbols]uint8) (*frame, error) {
	perm, codes, err := canonicalize(lengths)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptHeader, err)
	}

	f := &frame{perm: perm, codes: codes}
	for i, s := range perm {
		f.invPerm[s] = i
	}

	var maxLength uint8
	for _, l := range lengths {
		if l > maxLength {
			maxLength = l
		}
	}
	f.maxLength = maxLength

	f.smallestChar[lengths[perm[0]]] = perm[0]
	f.smallestCode[lengths[perm[0]]] = codes[perm[0]].value
	for i := 1; i < numSymbols; i++ {
		cur := lengths[perm[i]]
		prev := lengths[perm[i-1]]
		if cur != prev {
			f.smallestChar[cur] = perm[i]
			f.smallestCode[cur] = codes[perm[i]].value
			f.nextSmallestCode[prev] = codes[perm[i]].value << (bitio.Width - 1 - uint(cur))
		}
	}
	f.nextSmallestCode[maxLength] = uint64(1) << (bitio.Width - 1)

	for i := range f.start {
		f.start[i] = numSymbols
	}
	for sym := 0; sym < numSymbols; sym++ {
		l := lengths[sym]
		if l == 0 {
			continue
		}
		v := codes[sym].value
		if l >= 8 {
			fb := int(v >> (l - 8))
			if int(l) < f.start[fb] {
				f.start[fb] = int(l)
			}
			continue
		}
		fb := int(v << (8 - l))
		for i := 0; i < (1 << (8 - l)); i++ {
			idx := fb | i
			if int(l) < f.start[idx] {
				f.start[idx] = int(l)
			}
		}
	}
	return f, nil
}

// Decode reads a compressed stream produced by Encode from src
// and writes the original bytes to dst. src is consumed strictly
// forward; Decode never calls Rewind.
//
// Decode returns ErrCorruptHeader if src is shorter than the
// 257-byte header or encodes an incomplete or overflowing length
// table, and ErrCorruptMessage if the body contains a bit
// sequence that cannot be resolved to a valid codeword under that
// header.
func Decode(src ByteSource, dst ByteSink) error {
	var lengths [numSymbols]uint8
	n := 0
	for ; n < numSymbols; n++ {
		b, err := src.ReadByte()
		if err != nil {
			return fmt.Errorf("%w: short header", ErrCorruptHeader)
		}
		lengths[n] = uint8(b)
	}
	ignoreByte, err := src.ReadByte()
	if err != nil {
		return fmt.Errorf("%w: missing ignore-bits byte", ErrCorruptHeader)
	}
	if ignoreByte >= 8 {
		return fmt.Errorf("%w: ignore_bits %d out of range", ErrCorruptHeader, ignoreByte)
	}
	ignoreBits := uint(ignoreByte)

	f, err := buildFrame(lengths)
	if err != nil {
		return err
	}

	r := bitio.NewReader(src)
	if err := r.Refill(); err != nil {
		return err
	}

	for !r.EOF() || r.Len() > ignoreBits {
		d9 := int(r.Peek9())
		length := f.start[d9]
		if length >= numSymbols {
			return fmt.Errorf("%w: no codeword starts with the leading bits", ErrCorruptMessage)
		}
		if length > 8 {
			for r.Value() >= f.nextSmallestCode[length] {
				length++
			}
		}
		offset := (r.Value() >> (bitio.Width - 1 - uint(length))) - f.smallestCode[length]
		idx := f.invPerm[f.smallestChar[length]] + int(offset)
		if idx >= numSymbols {
			return fmt.Errorf("%w: symbol offset out of range", ErrCorruptMessage)
		}
		if err := dst.WriteByte(byte(f.perm[idx])); err != nil {
			return err
		}
		r.Consume(uint(length))
		if err := r.Refill(); err != nil {
			return err
		}
	}
	return nil
}
