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
	"os"

	"golang.org/x/exp/slices"

	"github.com/bytepack/chuff/compr"
	"github.com/bytepack/chuff/huffman"
	"github.com/bytepack/chuff/internal/config"
)

// resolveBaseline picks the report subcommand's baseline
// compressor name: an explicit -baseline flag wins, then the
// profile's reportBaseline, then "s2".
func resolveBaseline(flagValue, profileValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if profileValue != "" {
		return profileValue
	}
	return "s2"
}

type reportRow struct {
	path       string
	inputBytes int
	huffBytes  int
	huffRatio  float64
	baseBytes  int
	baseRatio  float64
}

func runReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	var input, baseline, profileName, configPath string
	fs.StringVar(&input, "input", "", "input file (may also be passed positionally; repeat on the command line for a batch)")
	fs.StringVar(&baseline, "baseline", "", "baseline compressor: s2, zstd, or zstd-better (default: the profile's reportBaseline, or s2)")
	fs.StringVar(&profileName, "profile", "", "named profile to load defaults from")
	fs.StringVar(&configPath, "config", "", "path to profiles.yaml (default: "+config.DefaultPath()+")")
	fs.Parse(args)

	profile := loadProfile(configPath, profileName)
	files := fs.Args()
	if input != "" {
		files = append([]string{input}, files...)
	}
	if len(files) == 0 {
		exitf("usage: report --input PATH [--baseline s2|zstd|zstd-better] [file...]")
	}

	name := resolveBaseline(baseline, profile.ReportBaseline)
	comp := compr.Compression(name)
	if comp == nil {
		exitf("unknown baseline compressor %q", name)
	}

	rows := make([]reportRow, 0, len(files))
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			exitf("reading %s: %s", path, err)
		}
		huffOut, err := huffman.EncodeBytes(data)
		if err != nil {
			exitf("encode %s: %s", path, err)
		}
		baseOut := comp.Compress(data, nil)
		rows = append(rows, reportRow{
			path:       path,
			inputBytes: len(data),
			huffBytes:  len(huffOut),
			huffRatio:  compr.Ratio(int64(len(data)), int64(len(huffOut))),
			baseBytes:  len(baseOut),
			baseRatio:  compr.Ratio(int64(len(data)), int64(len(baseOut))),
		})
	}

	// report the best Huffman win first, so an operator scanning a
	// large batch sees the most interesting rows without sorting
	// the output themselves.
	slices.SortFunc(rows, func(a, b reportRow) bool {
		return a.huffRatio > b.huffRatio
	})

	fmt.Printf("%-32s %12s %12s %8s %12s %8s\n", "file", "bytes", "huffman", "ratio", name, "ratio")
	for _, r := range rows {
		fmt.Printf("%-32s %12d %12d %8.2f %12d %8.2f\n",
			r.path, r.inputBytes, r.huffBytes, r.huffRatio, r.baseBytes, r.baseRatio)
	}
}
