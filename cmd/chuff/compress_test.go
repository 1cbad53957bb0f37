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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bytepack/chuff/huffman"
	"github.com/bytepack/chuff/internal/config"
	"github.com/bytepack/chuff/internal/dedup"
)

func TestCompressBatchEntryRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.txt")
	want := []byte("mississippi river mississippi river")
	if err := os.WriteFile(in, want, 0o644); err != nil {
		t.Fatal(err)
	}
	out := in + ".huf"
	compressBatchEntry(in, out, false, config.Profile{}, dedup.New())

	compressed, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := huffman.DecodeBytes(compressed)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, want) {
		t.Fatalf("got %q, want %q", decoded, want)
	}
}

func TestVerifyCompressAccepts(t *testing.T) {
	original := []byte("verify me please")
	compressed, err := huffman.EncodeBytes(original)
	if err != nil {
		t.Fatal(err)
	}
	if err := verifyCompress(original, compressed); err != nil {
		t.Fatalf("verifyCompress: %v", err)
	}
}

func TestVerifyCompressRejectsTamperedInput(t *testing.T) {
	original := []byte("verify me please")
	compressed, err := huffman.EncodeBytes(original)
	if err != nil {
		t.Fatal(err)
	}
	tampered := append([]byte{}, original...)
	tampered[0] ^= 0xff
	if err := verifyCompress(tampered, compressed); err == nil {
		t.Fatal("expected verifyCompress to reject a mismatched original")
	}
}

func TestCompressOneVerifyFlagRunsCheck(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.huf")
	if err := os.WriteFile(in, []byte("abcabcabc"), 0o644); err != nil {
		t.Fatal(err)
	}
	compressOne(in, out, true, config.Profile{})
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected output to be written: %v", err)
	}
}

func TestCompressBatchEntryDedupsIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	content := []byte("repeated payload repeated payload")
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(a, content, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(b, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cache := dedup.New()
	outA := a + ".huf"
	outB := b + ".huf"
	compressBatchEntry(a, outA, false, config.Profile{}, cache)
	compressBatchEntry(b, outB, false, config.Profile{}, cache)

	gotA, err := os.ReadFile(outA)
	if err != nil {
		t.Fatal(err)
	}
	gotB, err := os.ReadFile(outB)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(gotA, gotB) {
		t.Fatal("deduped outputs should be byte-identical")
	}

	infoA, err := os.Stat(outA)
	if err != nil {
		t.Fatal(err)
	}
	infoB, err := os.Stat(outB)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(infoA, infoB) {
		t.Fatal("deduped outputs should be hard-linked to the same inode")
	}
}

func TestReuseCachedOutputLinksWhenPossible(t *testing.T) {
	dir := t.TempDir()
	prior := filepath.Join(dir, "prior.huf")
	if err := os.WriteFile(prior, []byte("cached payload"), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "out.huf")

	if err := reuseCachedOutput(prior, output); err != nil {
		t.Fatalf("reuseCachedOutput: %v", err)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "cached payload" {
		t.Fatalf("got %q, want %q", got, "cached payload")
	}
	infoPrior, err := os.Stat(prior)
	if err != nil {
		t.Fatal(err)
	}
	infoOutput, err := os.Stat(output)
	if err != nil {
		t.Fatal(err)
	}
	if !os.SameFile(infoPrior, infoOutput) {
		t.Fatal("reuseCachedOutput should hard-link output to prior on a shared filesystem")
	}
}
