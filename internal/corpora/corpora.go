// Copyright 2023-2026 The mzncompile Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package corpora provides a mechanism for managing golden test corpora:
// named test cases whose expected output lives in files under a testdata
// directory.
//
// Mismatches are reported as unified diffs. Setting the corpus's refresh
// environment variable to a glob selects cases whose golden files are
// rewritten from the current output instead of compared.
package corpora

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// A Corpus describes a golden test corpus. This is a way of doing
// table-driven tests where the expected outputs live in your file system.
type Corpus struct {
	// The root of the test data directory, relative to the file that
	// calls [Corpus.Run].
	Root string

	// An environment variable to check with regards to whether to run in
	// "refresh" mode or not. Its value is a doublestar glob matched
	// against case names.
	Refresh string

	// The file extension (without a dot) of golden files; the golden for
	// case "foo" is Root/foo.Extension.
	Extension string

	// The case names to run.
	Cases []string

	// Test executes one case and returns its output.
	Test func(t *testing.T, name string) string
}

// Run executes every case of the corpus as a subtest.
func (c Corpus) Run(t *testing.T) {
	root := filepath.Join(callerDir(0), c.Root)

	var refresh string
	if c.Refresh != "" {
		refresh = os.Getenv(c.Refresh)
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("corpora: invalid glob in %s: %q", c.Refresh, refresh)
		}
	}
	if refresh != "" {
		t.Logf("corpora: refreshing golden files because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, name := range c.Cases {
		t.Run(name, func(t *testing.T) {
			got := c.Test(t, name)
			path := filepath.Join(root, name+"."+c.Extension)

			refreshing, _ := doublestar.Match(refresh, name)
			if refreshing {
				if err := os.WriteFile(path, []byte(got), 0o660); err != nil {
					t.Errorf("corpora: error while writing golden file %q: %v", path, err)
				}
				return
			}

			want, err := os.ReadFile(path)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("corpora: error while loading golden file %q: %v", path, err)
			}

			if got != string(want) {
				diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(string(want)),
					B:        difflib.SplitLines(got),
					FromFile: "want " + path,
					ToFile:   "got",
					Context:  3,
				})
				t.Errorf("output mismatch for %q:\n%s", name, diff)
			}
		})
	}
}

// callerDir returns the directory of the file that called into this
// package, skip frames above Run.
func callerDir(skip int) string {
	_, file, _, ok := runtime.Caller(skip + 2)
	if !ok {
		return "."
	}
	return filepath.Dir(file)
}
