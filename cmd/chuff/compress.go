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

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/bytepack/chuff/huffman"
	"github.com/bytepack/chuff/internal/config"
	"github.com/bytepack/chuff/internal/dedup"
	"github.com/bytepack/chuff/internal/verify"
)

func runCompress(args []string) {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	c := bindCommonFlags(fs)
	fs.Parse(args)

	profile := loadProfile(c.config, c.profile)
	files := fs.Args()
	if len(files) == 0 {
		compressOne(c.input, c.output, c.verify, profile)
		return
	}
	cache := dedup.New()
	for _, path := range files {
		out := path + ".huf"
		compressBatchEntry(path, out, c.verify, profile, cache)
	}
}

func compressOne(input, output string, verifyRoundtrip bool, profile config.Profile) {
	data, err := readInput(input)
	if err != nil {
		exitf("reading %s: %s", input, err)
	}
	compressed, err := huffman.EncodeBytes(data)
	if err != nil {
		exitf("encode: %s", err)
	}
	if verifyRoundtrip {
		if err := verifyCompress(data, compressed); err != nil {
			exitf("verify: %s", err)
		}
	}
	if err := writeOutput(output, compressed, profile.AtomicWritesEnabled()); err != nil {
		exitf("writing %s: %s", output, err)
	}
}

func compressBatchEntry(input, output string, verifyRoundtrip bool, profile config.Profile, cache *dedup.Cache) {
	content, release, err := loadFile(input)
	if err != nil {
		exitf("reading %s: %s", input, err)
	}
	defer release()

	digest := cache.Digest(content)
	if prior, ok := cache.Lookup(digest, int64(len(content))); ok {
		if err := reuseCachedOutput(prior, output); err != nil {
			exitf("reusing cached output %s: %s", prior, err)
		}
		return
	}

	compressed, err := huffman.EncodeBytes(content)
	if err != nil {
		exitf("encode %s: %s", input, err)
	}
	if verifyRoundtrip {
		if err := verifyCompress(content, compressed); err != nil {
			exitf("verify %s: %s", input, err)
		}
	}
	if err := writeFile(output, compressed, profile.AtomicWritesEnabled()); err != nil {
		exitf("writing %s: %s", output, err)
	}
	cache.Record(digest, int64(len(content)), output)
}

// reuseCachedOutput links output to a prior compress result, so a
// deduplicated batch entry costs a directory entry instead of a
// full copy. Link fails across filesystem boundaries and on
// filesystems without hard link support, so it falls back to a
// plain copy.
func reuseCachedOutput(prior, output string) error {
	if err := os.Link(prior, output); err == nil {
		return nil
	}
	data, err := os.ReadFile(prior)
	if err != nil {
		return err
	}
	return os.WriteFile(output, data, 0644)
}

// verifyCompress decodes compressed and compares a digest of the
// result against a digest of the original input, per -verify on
// the compress subcommand.
func verifyCompress(original, compressed []byte) error {
	decoded, err := huffman.DecodeBytes(compressed)
	if err != nil {
		return fmt.Errorf("round-trip decode: %w", err)
	}
	return verify.RoundTrip(original, decoded)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, release, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	defer release()
	return append([]byte(nil), data...), nil
}

func writeOutput(path string, data []byte, atomic bool) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return writeFile(path, data, atomic)
}
