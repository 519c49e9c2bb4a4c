// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// writeFile writes a temporary file and returns its path
func writeFile(tst *testing.T, fn, content string) string {
	fnpath := filepath.Join(tst.TempDir(), fn)
	if err := os.WriteFile(fnpath, []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write %q: %v\n", fnpath, err)
	}
	return fnpath
}
