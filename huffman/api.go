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

// EncodeBytes is a convenience wrapper around Encode for callers
// that already hold the whole input in memory.
func EncodeBytes(src []byte) ([]byte, error) {
	sink := &SliceSink{}
	if err := Encode(NewSliceSource(src), sink); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

// DecodeBytes is a convenience wrapper around Decode for callers
// that already hold the whole compressed stream in memory.
func DecodeBytes(src []byte) ([]byte, error) {
	sink := &SliceSink{}
	if err := Decode(NewSliceSource(src), sink); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}
