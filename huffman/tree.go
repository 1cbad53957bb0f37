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

import "github.com/bytepack/chuff/heap"

// numSymbols is the size of the alphabet: every possible byte
// value.
const numSymbols = 256

// node is a tagged Huffman-tree node: either a leaf carrying a
// symbol or an inner node carrying two children. Nodes exist only
// for the duration of length derivation in buildLengths; nothing
// downstream retains a pointer to one.
type node struct {
	count uint64
	leaf  bool
	sym   byte
	left  *node
	right *node
}

func nodeLess(a, b *node) bool {
	return a.count < b.count
}

// countFrequencies reads src to exhaustion, returning the
// occurrence count of every symbol. It does not rewind src.
func countFrequencies(src ByteSource) ([numSymbols]uint64, error) {
	var count [numSymbols]uint64
	for {
		b, err := src.ReadByte()
		if err != nil {
			if isEOF(err) {
				return count, nil
			}
			return count, err
		}
		count[b]++
	}
}

// buildLengths derives a code-length assignment per symbol from a
// frequency histogram: it builds a Huffman tree over a min-heap of
// leaf/inner nodes and walks the resulting tree to record each
// leaf's depth, discarding the tree itself. Symbols with a zero
// count keep length 0. A single distinct symbol is assigned length
// 1, never 0, so that it still produces a valid one-bit codeword.
func buildLengths(count [numSymbols]uint64) [numSymbols]uint8 {
	var lengths [numSymbols]uint8

	var pending []*node
	for sym := 0; sym < numSymbols; sym++ {
		if count[sym] > 0 {
			heap.PushSlice(&pending, &node{count: count[sym], leaf: true, sym: byte(sym)}, nodeLess)
		}
	}

	for len(pending) > 1 {
		a := heap.PopSlice(&pending, nodeLess)
		b := heap.PopSlice(&pending, nodeLess)
		heap.PushSlice(&pending, &node{count: a.count + b.count, left: a, right: b}, nodeLess)
	}

	if len(pending) == 1 {
		fillDepths(pending[0], 0, &lengths)
	}
	return lengths
}

func fillDepths(n *node, depth uint8, lengths *[numSymbols]uint8) {
	if n.leaf {
		if depth < 1 {
			depth = 1
		}
		lengths[n.sym] = depth
		return
	}
	fillDepths(n.left, depth+1, lengths)
	fillDepths(n.right, depth+1, lengths)
}
