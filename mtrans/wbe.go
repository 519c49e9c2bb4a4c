// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtrans

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/gas"
)

// WilkeBlottnerEucken implements Wilke's mixing rule with Blottner's species viscosities and
// Eucken's species conductivities
type WilkeBlottnerEucken struct {
	mix *gas.Mixture
}

// add model to factory
func init() {
	allocators["wbe"] = func() Model { return new(WilkeBlottnerEucken) }
}

// Init initialises model
func (o *WilkeBlottnerEucken) Init(mix *gas.Mixture) (err error) {
	if mix == nil {
		return chk.Err("mixture must be given")
	}
	o.mix = mix
	return
}

// Name returns the name of this model
func (o *WilkeBlottnerEucken) Name() string { return "wbe" }

// SpeciesViscosity computes Blottner's viscosity of species s [kg/(m s)]
func (o *WilkeBlottnerEucken) SpeciesViscosity(s int, T float64) float64 {
	c := o.mix.Blottner(s)
	lnT := math.Log(T)
	return 0.1 * math.Exp((c[0]*lnT+c[1])*lnT+c[2])
}

// Calc computes transport coefficients
func (o *WilkeBlottnerEucken) Calc(res *Coeffs, in *Input) {

	// auxiliary
	mix := o.mix
	nsp := mix.Nsp()
	T := in.T

	// mole fractions
	X := make([]float64, nsp)
	conc := 0.0
	for s := 0; s < nsp; s++ {
		X[s] = in.Rhos[s] / mix.M(s)
		conc += X[s]
	}
	for s := 0; s < nsp; s++ {
		X[s] /= conc
	}

	// mixture molar mass [kg/mol]
	M := 0.0
	for s := 0; s < nsp; s++ {
		M += mix.M(s) * X[s]
	}
	M *= 1e-3

	// diffusion
	for i := 0; i < nsp; i++ {
		Mi := mix.M(i) * 1e-3
		den := 0.0
		for j := 0; j < nsp; j++ {
			if j != i {
				Mj := mix.M(j) * 1e-3
				Ωij := Omega(mix.Omega00(i, j), T) / gas.PI_NUMBER
				Dij := 7.1613e-25 * M * math.Sqrt(T*(1.0/Mi+1.0/Mj)) / (in.Rho * Ωij)
				den += X[j] / Dij
			}
		}
		res.Ds[i] = 0
		if den > 0 {
			res.Ds[i] = (1.0 - X[i]) / den
		}
	}

	// species viscosities and Wilke's φ
	μ := make([]float64, nsp)
	for s := 0; s < nsp; s++ {
		μ[s] = o.SpeciesViscosity(s, T)
	}
	φ := make([]float64, nsp)
	for i := 0; i < nsp; i++ {
		for j := 0; j < nsp; j++ {
			a := 1.0 + math.Sqrt(μ[i]/μ[j])*math.Pow(mix.M(j)/mix.M(i), 0.25)
			b := math.Sqrt(8.0 * (1.0 + mix.M(i)/mix.M(j)))
			φ[i] += X[j] * a * a / b
		}
	}

	// mixture viscosity and conductivities
	res.Mu, res.Ktr, res.Kve = 0, 0, 0
	for s := 0; s < nsp; s++ {
		ks := μ[s] * (15.0/4.0 + mix.Xi(s)/2.0) * mix.R(s)
		kves := μ[s] * mix.Cvve(s, in.Tve)
		res.Mu += X[s] * μ[s] / φ[s]
		res.Ktr += X[s] * ks / φ[s]
		res.Kve += X[s] * kves / φ[s]
	}
}
