// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/gas"
)

// Prim2Cons computes conserved variables U from the species densities, temperatures and
// velocities stored in V
func (o *Engine) Prim2Cons(V, U []float64) {

	// auxiliary
	mix, lay := o.Mix, &o.Lay
	nsp, nhv := lay.Nsp, mix.Nheavy()
	T, Tve := V[lay.T], V[lay.TVE]

	// densities and momentum
	ρ := 0.0
	for s := 0; s < nsp; s++ {
		U[s] = V[lay.RHOS+s]
		ρ += U[s]
	}
	for i := 0; i < lay.Ndim; i++ {
		U[lay.MOM+i] = ρ * V[lay.VEL+i]
	}

	// energies
	ρEve := 0.0
	for s := 0; s < nsp; s++ {
		ρEve += U[s] * mix.Eve(s, Tve)
	}
	ρE := ρEve + 0.5*ρ*o.Velocity2(V)
	for s := 0; s < nhv; s++ {
		ρE += U[s] * (mix.Cvtr(s)*(T-mix.Tref(s)) + mix.Ef(s))
	}
	U[lay.ENE] = ρE
	U[lay.EVE] = ρEve
}

// FreeStream computes conserved variables U of a free-stream state
//
//	P    -- pressure
//	Y    -- mass fractions [nsp]
//	Mach -- Mach number components [ndim]
//	T    -- translational-rotational temperature
//	Tve  -- vibrational-electronic temperature
//	Note: the velocity is computed with the frozen sound speed a² = (1 + R̄/Cvtr) P/ρ
func (o *Engine) FreeStream(U []float64, P float64, Y, Mach []float64, T, Tve float64) (err error) {

	// check
	mix, lay := o.Mix, &o.Lay
	if len(Y) != lay.Nsp {
		return chk.Err("number of mass fractions must be equal to %d. %d is incorrect", lay.Nsp, len(Y))
	}
	if len(Mach) != lay.Ndim {
		return chk.Err("number of Mach components must be equal to %d. %d is incorrect", lay.Ndim, len(Mach))
	}
	if P <= 0 || T <= 0 || Tve <= 0 {
		return chk.Err("pressure and temperatures must be positive: P = %g, T = %g, Tve = %g", P, T, Tve)
	}

	// density
	den := 0.0
	for s := 0; s < lay.Nsp; s++ {
		if Y[s] < 0 {
			return chk.Err("mass fractions must be non-negative. Y[%d] = %g is invalid", s, Y[s])
		}
		if s == mix.Electron() {
			den += Y[s] * mix.R(s) * Tve
		} else {
			den += Y[s] * mix.R(s) * T
		}
	}
	if den <= 0 {
		return chk.Err("mass fractions must not be all zero")
	}
	ρ := P / den

	// frozen sound speed
	V := make([]float64, lay.Nprim)
	conc, ρCvtr := 0.0, 0.0
	for s := 0; s < lay.Nsp; s++ {
		V[lay.RHOS+s] = Y[s] * ρ
		conc += V[lay.RHOS+s] / mix.M(s)
	}
	for s := 0; s < mix.Nheavy(); s++ {
		ρCvtr += V[lay.RHOS+s] * mix.Cvtr(s)
	}
	a := math.Sqrt((1.0 + gas.Ru/ρCvtr*conc) * P / ρ)

	// state
	V[lay.T], V[lay.TVE] = T, Tve
	for i := 0; i < lay.Ndim; i++ {
		V[lay.VEL+i] = Mach[i] * a
	}
	o.Prim2Cons(V, U)
	return
}
