// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotne/gas"
	"github.com/cpmech/gotne/tne2"
	"github.com/sirupsen/logrus"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newEngine allocates an engine for a built-in mixture
func newEngine(tst *testing.T, name string, log logrus.FieldLogger) *tne2.Engine {
	mix, err := gas.Get(name)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	eng, err := tne2.NewEngine(mix, 2, nil, log)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	return eng
}
