// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/gas"
)

// FrozenGas implements the closed-form state of a mixture at rest with frozen composition
// and frozen vibrational-electronic energy
//
//	a² = (1 + R̄/ρCvtr) P/ρ   with   R̄ = Ru Σ ρs/Ms
type FrozenGas struct {

	// input
	Rhos []float64 // species densities
	T    float64   // translational-rotational temperature
	Tve  float64   // vibrational-electronic temperature

	// derived
	Rho   float64 // ρ: mixture density
	P     float64 // pressure
	Rbar  float64 // R̄: Ru Σ ρs/Ms
	RhoCv float64 // ρCvtr: translational-rotational heat capacity per volume
}

// Init initialises this structure
func (o *FrozenGas) Init(mix *gas.Mixture, ρs []float64, T, Tve float64) (err error) {
	if len(ρs) != mix.Nsp() {
		return chk.Err("number of densities must be equal to %d. %d is incorrect", mix.Nsp(), len(ρs))
	}
	o.Rhos, o.T, o.Tve = append([]float64{}, ρs...), T, Tve
	o.Rho, o.P, o.Rbar, o.RhoCv = 0, 0, 0, 0
	for s := 0; s < mix.Nsp(); s++ {
		o.Rho += ρs[s]
		o.Rbar += gas.Ru * ρs[s] / mix.M(s)
		if s == mix.Electron() {
			o.P += ρs[s] * mix.R(s) * Tve
			continue
		}
		o.P += ρs[s] * mix.R(s) * T
		o.RhoCv += ρs[s] * mix.Cvtr(s)
	}
	return
}

// Gamma returns the frozen ratio of specific heats
func (o FrozenGas) Gamma() float64 {
	return 1.0 + o.Rbar/o.RhoCv
}

// SoundSpeed returns the frozen sound speed
func (o FrozenGas) SoundSpeed() float64 {
	return math.Sqrt(o.Gamma() * o.P / o.Rho)
}

// IdealSoundSpeed returns the sound speed of a calorically perfect gas
func IdealSoundSpeed(γ, R, T float64) float64 {
	return math.Sqrt(γ * R * T)
}

// HarmonicEnergy returns the energy of a harmonic oscillator with characteristic temperature θ
func HarmonicEnergy(R, θ, T float64) float64 {
	return R * θ / (math.Exp(θ/T) - 1.0)
}

// HarmonicCv returns the heat capacity of a harmonic oscillator with characteristic temperature θ
func HarmonicCv(R, θ, T float64) float64 {
	x := θ / T
	return R * x * x * math.Exp(x) / math.Pow(math.Exp(x)-1.0, 2)
}
