// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtrans

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/gas"
)

// GuptaYos implements the Gupta-Yos mixing rules based on collision integrals
type GuptaYos struct {
	mix *gas.Mixture
}

// add model to factory
func init() {
	allocators["gupta-yos"] = func() Model { return new(GuptaYos) }
}

// Init initialises model
func (o *GuptaYos) Init(mix *gas.Mixture) (err error) {
	if mix == nil {
		return chk.Err("mixture must be given")
	}
	o.mix = mix
	return
}

// Name returns the name of this model
func (o *GuptaYos) Name() string { return "gupta-yos" }

// Calc computes transport coefficients
//
//	Note: the thermal conductivity of ionized mixtures is not available
func (o *GuptaYos) Calc(res *Coeffs, in *Input) {
	c := o.collisions(in)
	o.diffusion(res, in, c)
	o.viscosity(res, c)
	o.conductivity(res, in, c)
}

// Diffusion computes the species-mixture diffusion coefficients only
func (o *GuptaYos) Diffusion(res *Coeffs, in *Input) {
	o.diffusion(res, in, o.collisions(in))
}

// Viscosity computes the mixture viscosity only
func (o *GuptaYos) Viscosity(res *Coeffs, in *Input) {
	o.viscosity(res, o.collisions(in))
}

// collisions holds molar concentrations and collision terms
type collisions struct {
	γ   []float64   // molar concentrations
	γt  float64     // total molar concentration
	Tij [][]float64 // temperatures of pairs
	Δ1  [][]float64 // Δ(1)_ij
	Δ2  [][]float64 // Δ(2)_ij
}

// collisions computes molar concentrations and collision terms. Pairs with electrons are
// evaluated at Tve
func (o *GuptaYos) collisions(in *Input) (c collisions) {
	mix := o.mix
	nsp, iel := mix.Nsp(), mix.Electron()
	c.γ = make([]float64, nsp)
	for s := 0; s < nsp; s++ {
		c.γ[s] = in.Rhos[s] / (in.Rho * mix.M(s))
		c.γt += c.γ[s]
	}
	c.Tij = make([][]float64, nsp)
	c.Δ1 = make([][]float64, nsp)
	c.Δ2 = make([][]float64, nsp)
	for i := 0; i < nsp; i++ {
		c.Tij[i] = make([]float64, nsp)
		c.Δ1[i] = make([]float64, nsp)
		c.Δ2[i] = make([]float64, nsp)
		for j := 0; j < nsp; j++ {
			T := in.T
			if i == iel || j == iel {
				T = in.Tve
			}
			Mi, Mj := mix.M(i), mix.M(j)
			c.Tij[i][j] = T
			c.Δ1[i][j] = Delta1(Mi, Mj, T, Omega(mix.Omega00(i, j), T))
			c.Δ2[i][j] = Delta2(Mi, Mj, T, Omega(mix.Omega11(i, j), T))
		}
	}
	return
}

// diffusion computes Di = γt² Mi (1 - Mi γi) / Σ_{j≠i} γj/Dij with Dij = kB T / (P Δ1_ij)
func (o *GuptaYos) diffusion(res *Coeffs, in *Input, c collisions) {
	nsp := o.mix.Nsp()
	for i := 0; i < nsp; i++ {
		den := 0.0
		for j := 0; j < nsp; j++ {
			if j != i {
				Dij := gas.KB * c.Tij[i][j] / (in.P * c.Δ1[i][j])
				den += c.γ[j] / Dij
			}
		}
		res.Ds[i] = 0
		if den > 0 {
			Mi := o.mix.M(i)
			res.Ds[i] = c.γt * c.γt * Mi * (1.0 - Mi*c.γ[i]) / den
		}
	}
}

// viscosity computes μ = Σ_i mi γi / Σ_j γj Δ2_ij
func (o *GuptaYos) viscosity(res *Coeffs, c collisions) {
	nsp := o.mix.Nsp()
	res.Mu = 0
	for i := 0; i < nsp; i++ {
		den := 0.0
		for j := 0; j < nsp; j++ {
			den += c.γ[j] * c.Δ2[i][j]
		}
		if den > 0 {
			res.Mu += o.mix.M(i) / gas.NA * c.γ[i] / den
		}
	}
}

// conductivity computes the translational-rotational and vibrational-electronic conductivities
func (o *GuptaYos) conductivity(res *Coeffs, in *Input, c collisions) {
	mix := o.mix
	if mix.Ionized() {
		chk.Panic("GuptaYos: thermal conductivity of ionized mixtures is not implemented yet")
	}
	nsp := mix.Nsp()
	R := gas.Ru * c.γt
	Cvve := in.RhoCvve / in.Rho
	res.Ktr, res.Kve = 0, 0
	for i := 0; i < nsp; i++ {
		dent, denr := 0.0, 0.0
		for j := 0; j < nsp; j++ {
			r := mix.M(i) / mix.M(j)
			aij := 1.0 + (1.0-r)*(0.45-2.54*r)/((1.0+r)*(1.0+r))
			dent += aij * c.γ[j] * c.Δ2[i][j]
			denr += c.γ[j] * c.Δ1[i][j]
		}
		if dent > 0 {
			res.Ktr += 15.0 / 4.0 * gas.KB * c.γ[i] / dent
		}
		if denr > 0 {
			if mix.Xi(i) != 0 {
				res.Ktr += gas.KB * c.γ[i] / denr
			}
			res.Kve += gas.KB * Cvve / R * c.γ[i] / denr
		}
	}
}
