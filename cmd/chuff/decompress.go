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
	"strings"

	"github.com/bytepack/chuff/huffman"
	"github.com/bytepack/chuff/internal/config"
	"github.com/bytepack/chuff/internal/verify"
)

func runDecompress(args []string) {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	c := bindCommonFlags(fs)
	fs.Parse(args)

	profile := loadProfile(c.config, c.profile)
	files := fs.Args()
	if len(files) == 0 {
		decompressOne(c.input, c.output, c.verify, profile)
		return
	}
	for _, path := range files {
		out := strings.TrimSuffix(path, ".huf")
		if out == path {
			out = path + ".out"
		}
		decompressOne(path, out, c.verify, profile)
	}
}

func decompressOne(input, output string, verifyRoundtrip bool, profile config.Profile) {
	compressed, err := readInput(input)
	if err != nil {
		exitf("reading %s: %s", input, err)
	}
	decoded, err := huffman.DecodeBytes(compressed)
	if err != nil {
		exitf("decode %s: %s", input, err)
	}
	if verifyRoundtrip {
		if err := verifyDecompress(compressed, decoded); err != nil {
			exitf("verify %s: %s", input, err)
		}
	}
	if err := writeOutput(output, decoded, profile.AtomicWritesEnabled()); err != nil {
		exitf("writing %s: %s", output, err)
	}
}

// verifyDecompress re-encodes decoded and compares a digest of the
// result against a digest of the compressed input, per -verify on
// the decompress subcommand.
func verifyDecompress(compressed, decoded []byte) error {
	reencoded, err := huffman.EncodeBytes(decoded)
	if err != nil {
		return fmt.Errorf("round-trip re-encode: %w", err)
	}
	return verify.RoundTrip(compressed, reencoded)
}
