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
	"errors"
	"io"
	"os"
)

var errUnsupportedPlatform = errors.New("mmap unsupported on this platform")

// loadFile reads the entire contents of path, preferring an
// mmap'd view for regular files on platforms that support it and
// falling back to a plain read otherwise. The returned bytes are
// only valid until release is called.
func loadFile(path string) (data []byte, release func(), err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if !info.Mode().IsRegular() {
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return nil, nil, err
		}
		return data, func() {}, nil
	}
	mem, err := mmap(f, info.Size())
	if err != nil {
		f.Close()
		if !errors.Is(err, errUnsupportedPlatform) {
			return nil, nil, err
		}
		f, err = os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		data, err = io.ReadAll(f)
		if err != nil {
			return nil, nil, err
		}
		return data, func() {}, nil
	}
	return mem, func() {
		munmap(mem)
		f.Close()
	}, nil
}
