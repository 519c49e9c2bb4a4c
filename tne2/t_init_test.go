// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotne/gas"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// newEngine allocates an engine for a built-in mixture
func newEngine(tst *testing.T, name string, ndim int, set *Settings) *Engine {
	mix, err := gas.Get(name)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	eng, err := NewEngine(mix, ndim, set, nil)
	if err != nil {
		tst.Fatalf("test failed: %v\n", err)
	}
	return eng
}

// strict returns settings with a full Newton step and tight tolerances
func strict() *Settings {
	set := DefaultSettings()
	set.NRscale = 1.0
	set.NRtol = 1e-10
	set.NRmaxit = 50
	set.Btol = 1e-10
	set.Bmaxit = 64
	return set
}

// buffers holds the output of conversions
type buffers struct {
	V, dPdU, dTdU, dTvedU, eves, cvves []float64
}

func newBuffers(eng *Engine) *buffers {
	lay := &eng.Lay
	return &buffers{
		V:      make([]float64, lay.Nprim),
		dPdU:   make([]float64, lay.Nvar),
		dTdU:   make([]float64, lay.Nvar),
		dTvedU: make([]float64, lay.Nvar),
		eves:   make([]float64, lay.Nsp),
		cvves:  make([]float64, lay.Nsp),
	}
}

func (o *buffers) convert(eng *Engine, U []float64) Result {
	return eng.Cons2Prim(U, o.V, o.dPdU, o.dTdU, o.dTvedU, o.eves, o.cvves)
}

// consState returns U from species densities, temperatures and velocity
func consState(eng *Engine, ρs []float64, T, Tve float64, vel []float64) (U []float64) {
	lay := &eng.Lay
	V := make([]float64, lay.Nprim)
	copy(V[lay.RHOS:], ρs)
	V[lay.T], V[lay.TVE] = T, Tve
	copy(V[lay.VEL:lay.VEL+lay.Ndim], vel)
	U = make([]float64, lay.Nvar)
	eng.Prim2Cons(V, U)
	return
}
