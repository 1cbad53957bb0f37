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
	"testing"

	"golang.org/x/exp/slices"
)

func TestResolveBaseline(t *testing.T) {
	cases := []struct {
		flagValue, profileValue, want string
	}{
		{"", "", "s2"},
		{"", "zstd", "zstd"},
		{"zstd-better", "zstd", "zstd-better"},
		{"zstd-better", "", "zstd-better"},
	}
	for _, c := range cases {
		if got := resolveBaseline(c.flagValue, c.profileValue); got != c.want {
			t.Fatalf("resolveBaseline(%q, %q) = %q, want %q", c.flagValue, c.profileValue, got, c.want)
		}
	}
}

func TestReportRowsSortByHuffRatioDescending(t *testing.T) {
	rows := []reportRow{
		{path: "a", huffRatio: 1.5},
		{path: "b", huffRatio: 4.0},
		{path: "c", huffRatio: 2.5},
	}
	slices.SortFunc(rows, func(a, b reportRow) bool {
		return a.huffRatio > b.huffRatio
	})
	want := []string{"b", "c", "a"}
	for i, r := range rows {
		if r.path != want[i] {
			t.Fatalf("rows[%d].path = %q, want %q", i, r.path, want[i])
		}
	}
}
