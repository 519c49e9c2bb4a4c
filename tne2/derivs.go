// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/gas"
)

// CalcdPdU computes ∂P/∂U at the primitive state V
//
//	eves -- species vibrational-electronic energies at V[TVE]
func (o *Engine) CalcdPdU(V, eves, dPdU []float64) {

	// auxiliary
	mix, lay := o.Mix, &o.Lay
	nsp, nhv := lay.Nsp, mix.Nheavy()
	T, Tve := V[lay.T], V[lay.TVE]
	ρCvtr, ρCvve := V[lay.RHOCVTR], V[lay.RHOCVVE]
	v2 := o.Velocity2(V)

	// R̄ = Ru Σ ρs / Ms
	conc := 0.0
	for s := 0; s < nsp; s++ {
		conc += V[lay.RHOS+s] / mix.M(s)
	}
	Rb := gas.Ru * conc

	// species
	for s := 0; s < nhv; s++ {
		dPdU[s] = T*mix.R(s) + Rb/ρCvtr*(-mix.Cvtr(s)*(T-mix.Tref(s))-mix.Ef(s)+0.5*v2)
	}
	ρelRe := 0.0
	if mix.Ionized() {
		iel := mix.Electron()
		Re := mix.R(iel)
		ρelRe = V[lay.RHOS+iel] * Re
		for s := 0; s < nhv; s++ {
			dPdU[s] -= ρelRe * eves[s] / ρCvve
		}
		dPdU[iel] = Rb/ρCvtr*(-mix.Ef(iel)+0.5*v2) + Re*Tve - ρelRe*(-1.5*Re*Tve)/ρCvve
	}

	// momentum
	for i := 0; i < lay.Ndim; i++ {
		dPdU[lay.MOM+i] = -Rb * V[lay.VEL+i] / ρCvtr
	}

	// energies
	dPdU[lay.ENE] = Rb / ρCvtr
	dPdU[lay.EVE] = -dPdU[lay.ENE]
	if mix.Ionized() {
		dPdU[lay.EVE] += ρelRe / ρCvve
	}
}

// CalcdTdU computes ∂T/∂U at the primitive state V
func (o *Engine) CalcdTdU(V, dTdU []float64) {

	// auxiliary
	mix, lay := o.Mix, &o.Lay
	if mix.Ionized() {
		chk.Panic("CalcdTdU: derivatives of T for ionized mixtures are not implemented yet")
	}
	T, ρCvtr := V[lay.T], V[lay.RHOCVTR]
	v2 := o.Velocity2(V)

	// species
	for s := 0; s < lay.Nsp; s++ {
		dTdU[s] = (-mix.Ef(s) + 0.5*v2 + mix.Cvtr(s)*(mix.Tref(s)-T)) / ρCvtr
	}

	// momentum
	for i := 0; i < lay.Ndim; i++ {
		dTdU[lay.MOM+i] = -V[lay.VEL+i] / ρCvtr
	}

	// energies
	dTdU[lay.ENE] = 1.0 / ρCvtr
	dTdU[lay.EVE] = -1.0 / ρCvtr
}

// CalcdTvedU computes ∂Tve/∂U at the primitive state V
//
//	eves -- species vibrational-electronic energies at V[TVE]
//	Note: all derivatives are zero if the mixture has no active vibrational-electronic mode
func (o *Engine) CalcdTvedU(V, eves, dTvedU []float64) {
	lay := &o.Lay
	for k := 0; k < lay.Nvar; k++ {
		dTvedU[k] = 0
	}
	ρCvve := V[lay.RHOCVVE]
	if ρCvve <= 0 {
		return
	}
	for s := 0; s < lay.Nsp; s++ {
		dTvedU[s] = -eves[s] / ρCvve
	}
	dTvedU[lay.EVE] = 1.0 / ρCvve
}

// SoundSpeed2 computes the squared sound speed a² = Σ_k (∂P/∂U_k) (∂U_k/∂ρ)|_entropy
func (o *Engine) SoundSpeed2(U, V, dPdU []float64) (a2 float64) {
	lay := &o.Lay
	ρ, P := V[lay.RHO], V[lay.P]
	for s := 0; s < lay.Nsp; s++ {
		a2 += V[lay.RHOS+s] / ρ * dPdU[s]
	}
	for i := 0; i < lay.Ndim; i++ {
		a2 += V[lay.VEL+i] * dPdU[lay.MOM+i]
	}
	a2 += (U[lay.ENE] + P) / ρ * dPdU[lay.ENE]
	a2 += U[lay.EVE] / ρ * dPdU[lay.EVE]
	return
}
