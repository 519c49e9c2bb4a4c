// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tne2 implements the conversion between conserved and primitive variables of a
// two-temperature (thermal non-equilibrium) gas mixture
package tne2

import "github.com/cpmech/gosl/io"

// Layout holds the positions of quantities in the conserved (U) and primitive (V) vectors
//
//	U = [ρ_1..ρ_ns, ρu_1..ρu_nd, ρE, ρEve]
//	V = [ρ_1..ρ_ns, T, Tve, u_1..u_nd, P, ρ, h, a, ρCvtr, ρCvve]
type Layout struct {
	Nsp   int // number of species
	Ndim  int // space dimension
	Nvar  int // length of U
	Nprim int // length of V

	// conserved
	MOM int // first momentum component
	ENE int // total energy
	EVE int // vibrational-electronic energy

	// primitive
	RHOS    int // first species density
	T       int // translational-rotational temperature
	TVE     int // vibrational-electronic temperature
	VEL     int // first velocity component
	P       int // pressure
	RHO     int // mixture density
	H       int // specific total enthalpy
	A       int // sound speed
	RHOCVTR int // translational-rotational heat capacity per volume
	RHOCVVE int // vibrational-electronic heat capacity per volume
}

// NewLayout returns the layout for nsp species in ndim dimensions
func NewLayout(nsp, ndim int) (o Layout) {
	o.Nsp, o.Ndim = nsp, ndim
	o.Nvar = nsp + ndim + 2
	o.Nprim = nsp + ndim + 8
	o.MOM = nsp
	o.ENE = nsp + ndim
	o.EVE = nsp + ndim + 1
	o.RHOS = 0
	o.T = nsp
	o.TVE = nsp + 1
	o.VEL = nsp + 2
	o.P = nsp + ndim + 2
	o.RHO = nsp + ndim + 3
	o.H = nsp + ndim + 4
	o.A = nsp + ndim + 5
	o.RHOCVTR = nsp + ndim + 6
	o.RHOCVVE = nsp + ndim + 7
	return
}

// PrimKeys returns the labels of the primitive variables
func (o Layout) PrimKeys(label func(s int) string) (keys []string) {
	keys = make([]string, o.Nprim)
	for s := 0; s < o.Nsp; s++ {
		keys[o.RHOS+s] = "ρ(" + label(s) + ")"
	}
	for i := 0; i < o.Ndim; i++ {
		keys[o.VEL+i] = io.Sf("u%d", i)
	}
	keys[o.T] = "T"
	keys[o.TVE] = "Tve"
	keys[o.P] = "P"
	keys[o.RHO] = "ρ"
	keys[o.H] = "h"
	keys[o.A] = "a"
	keys[o.RHOCVTR] = "ρCvtr"
	keys[o.RHOCVVE] = "ρCvve"
	return
}

// ConsKeys returns the labels of the conserved variables
func (o Layout) ConsKeys(label func(s int) string) (keys []string) {
	keys = make([]string, o.Nvar)
	for s := 0; s < o.Nsp; s++ {
		keys[s] = "ρ(" + label(s) + ")"
	}
	for i := 0; i < o.Ndim; i++ {
		keys[o.MOM+i] = io.Sf("ρu%d", i)
	}
	keys[o.ENE] = "ρE"
	keys[o.EVE] = "ρEve"
	return
}
