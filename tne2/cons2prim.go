// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import (
	"math"

	"github.com/cpmech/gotne/gas"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// TvePath indicates how Tve was found
type TvePath int

const (
	PathNewton     TvePath = iota // Newton-Raphson converged (or energy independent of Tve)
	PathBisection                 // bisection converged
	PathDegenerate                // both root-finders failed => Tve = T (non-physical)
	PathClampLow                  // energy below the bracket => Tve = Tvemin (non-physical)
	PathClampHigh                 // energy above the bracket => Tve = Tvemax (non-physical)
)

var pathNames = map[TvePath]string{
	PathNewton:     "newton",
	PathBisection:  "bisection",
	PathDegenerate: "degenerate",
	PathClampLow:   "clamp-low",
	PathClampHigh:  "clamp-high",
}

func (p TvePath) String() string { return pathNames[p] }

// Result holds the outcome of one conversion
type Result struct {
	NonPhys bool    // some quantity has been clipped or floored
	Path    TvePath // how Tve was found
	Iter    int     // number of iterations of the last root-finder
	ClipRho bool    // mixture density was not positive
	ClipT   bool    // T has been clipped
	ClipP   bool    // pressure has been floored
	ClipA   bool    // sound speed radicand was negative
}

// Cons2Prim converts conserved variables U into primitive variables V and computes the
// derivatives of P, T and Tve with respect to U
//
//	Output:
//	 V      -- primitive variables [nprim]
//	 dPdU   -- ∂P/∂U [nvar]
//	 dTdU   -- ∂T/∂U [nvar]
//	 dTvedU -- ∂Tve/∂U [nvar]
//	 eves   -- species vibrational-electronic energies at Tve [nsp]
//	 cvves  -- species vibrational-electronic heat capacities at Tve [nsp]
//	Note: negative species densities are floored in U as well; if the mixture density is not
//	      positive, all species densities are set to RhoMin (non-physical)
func (o *Engine) Cons2Prim(U, V, dPdU, dTdU, dTvedU, eves, cvves []float64) (res Result) {

	// auxiliary
	mix, lay, set := o.Mix, &o.Lay, &o.Set
	nsp, nhv := lay.Nsp, mix.Nheavy()

	// densities
	for s := 0; s < nsp; s++ {
		if !(U[s] >= 0) {
			U[s] = set.RhoMin
		}
		V[lay.RHOS+s] = U[s]
	}
	ρs := V[lay.RHOS : lay.RHOS+nsp]
	ρ := floats.Sum(ρs)
	if !(ρ > 0) {
		for s := 0; s < nsp; s++ {
			U[s] = set.RhoMin
			ρs[s] = set.RhoMin
		}
		ρ, res.ClipRho = floats.Sum(ρs), true
	}
	V[lay.RHO] = ρ

	// velocity
	v2 := 0.0
	for i := 0; i < lay.Ndim; i++ {
		V[lay.VEL+i] = U[lay.MOM+i] / ρ
		v2 += V[lay.VEL+i] * V[lay.VEL+i]
	}

	// translational-rotational temperature
	ρCvtr, ρEref, ρEf := 0.0, 0.0, 0.0
	for s := 0; s < nhv; s++ {
		ρCvtr += ρs[s] * mix.Cvtr(s)
		ρEref += ρs[s] * mix.Cvtr(s) * mix.Tref(s)
		ρEf += ρs[s] * mix.Ef(s)
	}
	T := (U[lay.ENE] - U[lay.EVE] - ρEf + ρEref - 0.5*ρ*v2) / ρCvtr
	if !(T >= set.Tmin) {
		T, res.ClipT = set.Tmin, true
	}
	if T > set.Tmax {
		T, res.ClipT = set.Tmax, true
	}
	V[lay.T] = T
	V[lay.RHOCVTR] = ρCvtr

	// vibrational-electronic temperature
	Tve := o.solveTve(&res, ρs, U[lay.EVE], T, eves, cvves)
	V[lay.TVE] = Tve
	for s := 0; s < nsp; s++ {
		eves[s] = mix.Eve(s, Tve)
		cvves[s] = mix.Cvve(s, Tve)
	}
	V[lay.RHOCVVE] = floats.Dot(ρs, cvves)

	// pressure
	P := 0.0
	for s := 0; s < nhv; s++ {
		P += ρs[s] * mix.R(s) * T
	}
	if mix.Ionized() {
		iel := mix.Electron()
		P += ρs[iel] * mix.R(iel) * Tve
	}
	if !(P >= 0) {
		P, res.ClipP = set.Pmin, true
	}
	V[lay.P] = P

	// derivatives
	o.CalcdPdU(V, eves, dPdU)
	o.CalcdTdU(V, dTdU)
	o.CalcdTvedU(V, eves, dTvedU)

	// sound speed
	a2 := o.SoundSpeed2(U, V, dPdU)
	if !(a2 >= 0) {
		V[lay.A], res.ClipA = gas.EPS, true
	} else {
		V[lay.A] = math.Sqrt(a2)
	}

	// enthalpy
	V[lay.H] = (U[lay.ENE] + P) / ρ

	// flag
	res.NonPhys = res.ClipRho || res.ClipT || res.ClipP || res.ClipA || res.Path > PathBisection
	if res.NonPhys {
		o.Log.WithFields(logrus.Fields{
			"T":     T,
			"Tve":   Tve,
			"P":     P,
			"path":  res.Path.String(),
			"clipρ": res.ClipRho,
			"clipT": res.ClipT,
			"clipP": res.ClipP,
			"clipA": res.ClipA,
		}).Debug("tne2: non-physical state")
	}
	return
}

// solveTve finds Tve such that Σ ρs eve(s,Tve) = ρEve
//
//	Note: eves and cvves are used as scratch
func (o *Engine) solveTve(res *Result, ρs []float64, ρEve, T float64, eves, cvves []float64) (Tve float64) {

	// auxiliary
	mix, set := o.Mix, &o.Set
	nsp := len(ρs)
	energy := func(Tve float64) (ρe float64) {
		for s := 0; s < nsp; s++ {
			eves[s] = mix.Eve(s, Tve)
		}
		return floats.Dot(ρs, eves)
	}

	// bracket
	ρEveMin, ρEveMax := energy(set.Tvemin), energy(set.Tvemax)
	if ρEveMax <= ρEveMin {
		res.Path = PathNewton // no active modes
		return T
	}
	if !(ρEve > ρEveMin) {
		res.Path = PathClampLow
		return set.Tvemin
	}
	if ρEve >= ρEveMax {
		res.Path = PathClampHigh
		return set.Tvemax
	}

	// Newton-Raphson
	Tve = T
	for res.Iter = 1; res.Iter <= set.NRmaxit; res.Iter++ {
		f := ρEve - energy(Tve)
		for s := 0; s < nsp; s++ {
			cvves[s] = mix.Cvve(s, Tve)
		}
		df := -floats.Dot(ρs, cvves)
		Tnew := Tve - set.NRscale*f/df
		if math.IsNaN(Tnew) || Tnew < set.Tvemin || Tnew > set.Tvemax {
			break
		}
		if math.Abs(Tnew-Tve) < set.NRtol {
			res.Path = PathNewton
			return Tnew
		}
		Tve = Tnew
	}

	// bisection
	lo, hi := set.Tvemin, set.Tvemax
	for res.Iter = 1; res.Iter <= set.Bmaxit; res.Iter++ {
		Tve = 0.5 * (lo + hi)
		ρe := energy(Tve)
		if ρe == ρEve || 0.5*(hi-lo) < set.Btol {
			res.Path = PathBisection
			return
		}
		if ρe > ρEve {
			hi = Tve
		} else {
			lo = Tve
		}
	}

	// degenerate
	res.Path = PathDegenerate
	o.Log.WithFields(logrus.Fields{"T": T, "ρEve": ρEve}).Debug("tne2: root-finders failed; setting Tve = T")
	return T
}
