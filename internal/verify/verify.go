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

// Package verify implements the chuff CLI's --verify round trip
// check: decode a just-produced compressed stream back out and
// confirm it reproduces the original input exactly, without ever
// holding both the original and decoded copies' equality check in
// a way that depends on byte-slice comparison of arbitrarily large
// buffers living past the check.
package verify

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// ErrMismatch is returned when a round trip does not reproduce the
// original input.
var ErrMismatch = fmt.Errorf("verify: round-trip mismatch")

// Digest returns the unkeyed BLAKE2b-256 digest of data.
func Digest(data []byte) [32]byte {
	return blake2b.Sum256(data)
}

// RoundTrip compares the digest of original against the digest of
// decoded, the bytes produced by decompressing what Encode
// produced for original. It never retains either slice; only the
// two digests are compared.
func RoundTrip(original, decoded []byte) error {
	want := Digest(original)
	got := Digest(decoded)
	if subtle.ConstantTimeCompare(want[:], got[:]) != 1 {
		return ErrMismatch
	}
	return nil
}
