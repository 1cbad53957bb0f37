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

import "sort"

// code is a canonical codeword: value holds the bits right-
// justified in its low-order length bits.
type code struct {
	value  uint64
	length uint8
}

// canonicalize assigns canonical codeword values to a length-per-
// symbol table and checks that the length multiset forms a
// complete binary prefix code.
//
// It returns the permutation of symbol indices sorted by
// (length, symbol) ascending -- the order in which canonical
// values grow monotonically -- and the populated code table.
// Both the encoder and the decoder call this on the same
// lengths table and must therefore compute the same result.
func canonicalize(lengths [numSymbols]uint8) (perm [numSymbols]int, codes [numSymbols]code, err error) {
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm[:], func(i, j int) bool {
		li, lj := lengths[perm[i]], lengths[perm[j]]
		if li != lj {
			return li < lj
		}
		return perm[i] < perm[j]
	})

	for i := range codes {
		codes[i].length = lengths[i]
	}

	used := 0
	for _, l := range lengths {
		if l > 0 {
			used++
		}
	}

	codes[perm[0]].value = 0
	for i := 1; i < numSymbols; i++ {
		cur := lengths[perm[i]]
		prev := lengths[perm[i-1]]
		if prev == 0 {
			codes[perm[i]].value = 0
		} else {
			codes[perm[i]].value = (codes[perm[i-1]].value + 1) << (cur - prev)
		}
		if cur > 0 && (codes[perm[i]].value>>cur) != 0 {
			return perm, codes, ErrCorruptHeader
		}
	}

	last := codes[perm[numSymbols-1]]
	switch {
	case used == 0:
		// empty input: no completeness constraint applies.
	case used == 1:
		if last.length > 1 {
			return perm, codes, ErrCorruptHeader
		}
	default:
		if last.value != (uint64(1)<<last.length)-1 {
			return perm, codes, ErrCorruptHeader
		}
	}
	return perm, codes, nil
}
