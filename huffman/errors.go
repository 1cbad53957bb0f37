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

import "errors"

var (
	// ErrCorruptHeader is returned when a compressed stream's
	// 257-byte header is short, carries an out-of-range
	// ignore-bits byte, or encodes a length table that is not a
	// complete canonical prefix code.
	ErrCorruptHeader = errors.New("huffman: corrupt header")

	// ErrCorruptMessage is returned when the body of a
	// compressed stream contains a bit sequence that cannot be
	// resolved to a valid codeword under the stream's own
	// header.
	ErrCorruptMessage = errors.New("huffman: corrupt message")
)
