// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small helpers shared by the daemon
package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - relative paths are taken from the directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if the name can be stat'ed
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
