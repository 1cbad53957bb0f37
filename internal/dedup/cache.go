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

// Package dedup implements an in-process, SipHash-keyed content
// cache used by the chuff CLI's batch compress mode to skip
// re-encoding byte-identical inputs within a single invocation.
//
// The cache is never persisted and never shared across processes:
// its hash key is regenerated at Cache construction time, so a
// digest computed by one Cache is meaningless to another.
package dedup

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/dchest/siphash"
)

// entry records where a previously-encoded input's output came
// from, so a later byte-identical input can reuse it.
type entry struct {
	size int64
	path string
}

// Cache maps content digests to the output path that was produced
// the first time that content was seen in this invocation.
type Cache struct {
	k0, k1 uint64
	seen   map[uint64]entry
}

// New returns an empty Cache with a fresh, process-local SipHash
// key. Two Cache values with independently drawn keys agree on a
// digest for the same bytes only by chance; if crypto/rand fails,
// both use the same fixed key and do agree.
func New() *Cache {
	var key [16]byte
	if _, err := rand.Read(key[:]); err != nil {
		// crypto/rand failing is a fatal platform problem; fall
		// back to a fixed key rather than panic, since a
		// degraded cache (shared keys across runs) is still
		// safe -- Lookup always re-checks size before trusting
		// a hit.
		binary.LittleEndian.PutUint64(key[:8], 0x5bd1e995)
		binary.LittleEndian.PutUint64(key[8:], 0xc6a4a7935bd1e995)
	}
	return &Cache{
		k0:   binary.LittleEndian.Uint64(key[:8]),
		k1:   binary.LittleEndian.Uint64(key[8:]),
		seen: make(map[uint64]entry),
	}
}

// Digest returns the SipHash-2-4 digest of content under this
// Cache's key.
func (c *Cache) Digest(content []byte) uint64 {
	return siphash.Hash(c.k0, c.k1, content)
}

// Lookup returns the output path recorded for a previous input
// with this digest and size, and whether one was found. A digest
// collision between inputs of different sizes is never reported
// as a hit.
func (c *Cache) Lookup(digest uint64, size int64) (path string, ok bool) {
	e, found := c.seen[digest]
	if !found || e.size != size {
		return "", false
	}
	return e.path, true
}

// Record associates digest (and the content size it was computed
// from) with the output path produced for it, for later Lookup
// calls within the same Cache.
func (c *Cache) Record(digest uint64, size int64, path string) {
	c.seen[digest] = entry{size: size, path: path}
}
