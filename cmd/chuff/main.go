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

// Command chuff is a CLI front end for the canonical Huffman byte
// codec implemented in the huffman package.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bytepack/chuff/internal/config"
)

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "    %s compress --input PATH --output PATH [--verify] [--profile NAME] [file...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        encode input(s) with the canonical Huffman codec\n")
	fmt.Fprintf(os.Stderr, "    %s decompress --input PATH --output PATH [--verify] [--profile NAME] [file...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        decode input(s) previously produced by compress\n")
	fmt.Fprintf(os.Stderr, "    %s report --input PATH [--baseline s2|zstd|zstd-better] [file...]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        compare compressed size against baseline compressors\n")
	fmt.Fprintf(os.Stderr, "    %s <subcommand> --help\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        show flag usage for a subcommand\n")
	os.Exit(1)
}

// commonFlags are the -input/-output/-verify/-profile/-config flags
// shared by the compress and decompress subcommands. Each
// subcommand binds its own flag.FlagSet so that, per SPEC_FULL,
// flags may follow the subcommand on the command line.
type commonFlags struct {
	input   string
	output  string
	verify  bool
	profile string
	config  string
}

func bindCommonFlags(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.input, "input", "-", "input file (or - for stdin)")
	fs.StringVar(&c.output, "output", "-", "output file (or - for stdout)")
	fs.BoolVar(&c.verify, "verify", false, "round-trip check the result before reporting success")
	fs.StringVar(&c.profile, "profile", "", "named profile to load defaults from")
	fs.StringVar(&c.config, "config", "", "path to profiles.yaml (default: "+config.DefaultPath()+")")
	return c
}

func loadProfile(configPath, profileName string) config.Profile {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	f, err := config.Load(path)
	if err != nil {
		exitf("loading config %s: %s", path, err)
	}
	return f.Profile(profileName)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "compress":
		runCompress(os.Args[2:])
	case "decompress":
		runDecompress(os.Args[2:])
	case "report":
		runReport(os.Args[2:])
	case "-h", "-help", "--help", "help":
		usage()
	default:
		exitf("unknown subcommand %q", os.Args[1])
	}
}
