// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotne/ana"
	"gonum.org/v1/gonum/floats"
)

func Test_cons2prim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim01. monatomic gas at 300 K")

	eng := newEngine(tst, "argon", 2, nil)
	mix, lay := eng.Mix, &eng.Lay

	// ρ = 1, u = 0, T = 300
	U := make([]float64, lay.Nvar)
	U[0] = 1.0
	U[lay.ENE] = 1.0 * mix.Cvtr(0) * 300.0
	b := newBuffers(eng)
	res := b.convert(eng, U)
	io.Pforan("V   = %v\n", b.V)
	io.Pforan("res = %+v\n", res)

	if res.NonPhys {
		tst.Errorf("state must be physical\n")
	}
	if res.Path != PathNewton {
		tst.Errorf("path must be %q. %q is incorrect\n", PathNewton, res.Path)
	}
	R := mix.R(0)
	chk.Float64(tst, "T", 1e-12, b.V[lay.T], 300)
	chk.Float64(tst, "Tve", 1e-6, b.V[lay.TVE], 300)
	chk.Float64(tst, "ρ", 1e-17, b.V[lay.RHO], 1)
	chk.Array(tst, "u", 1e-17, b.V[lay.VEL:lay.VEL+2], []float64{0, 0})
	chk.Float64(tst, "P", 1e-9, b.V[lay.P], R*300)
	chk.Float64(tst, "h", 1e-9, b.V[lay.H], 2.5*R*300)
	chk.Float64(tst, "a", 1e-9, b.V[lay.A], ana.IdealSoundSpeed(5.0/3.0, R, 300))
	chk.Float64(tst, "ρCvtr", 1e-12, b.V[lay.RHOCVTR], 1.5*R)
	chk.Float64(tst, "ρCvve", 1e-17, b.V[lay.RHOCVVE], 0)
	chk.Array(tst, "dTvedU", 1e-17, b.dTvedU, make([]float64, lay.Nvar))
}

func Test_cons2prim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim02. vibrating mixture at Tve = 3000 K")

	eng := newEngine(tst, "N2-N", 2, nil)
	lay := &eng.Lay

	U := consState(eng, []float64{0.09, 0.01}, 3000, 3000, []float64{100, -50})
	b := newBuffers(eng)
	res := b.convert(eng, U)
	io.Pforan("V   = %v\n", b.V)
	io.Pforan("res = %+v\n", res)

	if res.NonPhys {
		tst.Errorf("state must be physical\n")
	}
	if res.Path != PathNewton {
		tst.Errorf("path must be %q. %q is incorrect\n", PathNewton, res.Path)
	}
	chk.Float64(tst, "T", 1e-8, b.V[lay.T], 3000)
	chk.Float64(tst, "Tve", 1e-6, b.V[lay.TVE], 3000)
	chk.Array(tst, "u", 1e-12, b.V[lay.VEL:lay.VEL+2], []float64{100, -50})
	chk.Float64(tst, "ρ", 1e-15, b.V[lay.RHO], 0.1)

	// caches at Tve
	for s := 0; s < lay.Nsp; s++ {
		chk.Float64(tst, io.Sf("eve[%d]", s), 1e-6, b.eves[s], eng.Mix.Eve(s, b.V[lay.TVE]))
		chk.Float64(tst, io.Sf("cvve[%d]", s), 1e-9, b.cvves[s], eng.Mix.Cvve(s, b.V[lay.TVE]))
	}
}

func Test_cons2prim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim03. round trip")

	eng := newEngine(tst, "air-5", 3, nil)
	lay := &eng.Lay
	b := newBuffers(eng)
	U2 := make([]float64, lay.Nvar)

	ρs := []float64{7.0e-3, 1.5e-3, 5.0e-4, 8.0e-4, 2.0e-4}
	vel := []float64{2500, -300, 10}
	for _, Ts := range [][]float64{{300, 300}, {3000, 3000}, {8000, 8000}, {5000, 2000}, {2000, 6000}, {15000, 9000}} {
		U := consState(eng, ρs, Ts[0], Ts[1], vel)
		res := b.convert(eng, U)
		tol := 1e-6
		if res.Path == PathBisection {
			tol = 1e-4
		}
		io.Pforan("T=%5g Tve=%5g => T=%.10f Tve=%.10f (%v, %d iterations)\n", Ts[0], Ts[1], b.V[lay.T], b.V[lay.TVE], res.Path, res.Iter)
		if res.NonPhys {
			tst.Errorf("state must be physical\n")
			return
		}
		chk.Float64(tst, "T", 1e-8, b.V[lay.T], Ts[0])
		chk.Float64(tst, "Tve", tol, b.V[lay.TVE], Ts[1])

		// back and forth again
		T, Tve := b.V[lay.T], b.V[lay.TVE]
		eng.Prim2Cons(b.V, U2)
		res = b.convert(eng, U2)
		tol = 1e-6
		if res.Path == PathBisection {
			tol = 1e-4
		}
		chk.Float64(tst, "T again", 1e-8, b.V[lay.T], T)
		chk.Float64(tst, "Tve again", tol, b.V[lay.TVE], Tve)
	}
}

func Test_cons2prim04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim04. bracket of Tve")

	eng := newEngine(tst, "N2-N", 2, nil)
	mix, lay, set := eng.Mix, &eng.Lay, &eng.Set
	b := newBuffers(eng)

	// energies at the bounds
	ρs := []float64{0.09, 0.01}
	eves := make([]float64, lay.Nsp)
	for s := 0; s < lay.Nsp; s++ {
		eves[s] = mix.Eve(s, set.Tvemin)
	}
	ρEveMin := floats.Dot(ρs, eves)
	for s := 0; s < lay.Nsp; s++ {
		eves[s] = mix.Eve(s, set.Tvemax)
	}
	ρEveMax := floats.Dot(ρs, eves)
	io.Pforan("ρEve: min = %v  max = %v\n", ρEveMin, ρEveMax)

	for i, c := range []struct {
		ρEve float64
		Tve  float64
		path TvePath
	}{
		{ρEveMin, set.Tvemin, PathClampLow},
		{ρEveMin - 1, set.Tvemin, PathClampLow},
		{ρEveMax, set.Tvemax, PathClampHigh},
		{ρEveMax + 1, set.Tvemax, PathClampHigh},
	} {
		U := consState(eng, ρs, 300, 300, []float64{0, 0})
		U[lay.ENE] += c.ρEve - U[lay.EVE]
		U[lay.EVE] = c.ρEve
		res := b.convert(eng, U)
		io.Pforan("%d: Tve = %v  res = %+v\n", i, b.V[lay.TVE], res)
		if !res.NonPhys {
			tst.Errorf("%d: state must be non-physical\n", i)
		}
		if res.Path != c.path {
			tst.Errorf("%d: path must be %q. %q is incorrect\n", i, c.path, res.Path)
		}
		chk.Float64(tst, "Tve", 1e-17, b.V[lay.TVE], c.Tve)
		chk.Float64(tst, "T", 1e-8, b.V[lay.T], 300)
	}
}

func Test_cons2prim05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim05. clipping and floors")

	eng := newEngine(tst, "N2-N", 2, nil)
	lay, set := &eng.Lay, &eng.Set
	b := newBuffers(eng)

	// T below minimum
	U := consState(eng, []float64{0.09, 0.01}, 20, 500, []float64{10, 0})
	res := b.convert(eng, U)
	io.Pforan("res = %+v\n", res)
	if !res.NonPhys || !res.ClipT {
		tst.Errorf("T must have been clipped\n")
	}
	chk.Float64(tst, "T", 1e-17, b.V[lay.T], set.Tmin)
	chk.Float64(tst, "Tve", 1e-4, b.V[lay.TVE], 500)

	// T above maximum
	U = consState(eng, []float64{0.09, 0.01}, 1e5, 500, []float64{10, 0})
	res = b.convert(eng, U)
	if !res.NonPhys || !res.ClipT {
		tst.Errorf("T must have been clipped\n")
	}
	chk.Float64(tst, "T", 1e-17, b.V[lay.T], set.Tmax)

	// negative density: floored in U and V without flag
	U = consState(eng, []float64{0.1, 0}, 1000, 1000, []float64{10, 0})
	U[1] = -1e-12
	res = b.convert(eng, U)
	io.Pforan("res = %+v\n", res)
	if res.NonPhys {
		tst.Errorf("flooring densities must not set the flag\n")
	}
	chk.Float64(tst, "U[1]", 1e-17, U[1], set.RhoMin)
	chk.Float64(tst, "V[1]", 1e-17, b.V[lay.RHOS+1], set.RhoMin)
	chk.Float64(tst, "T", 1e-6, b.V[lay.T], 1000)
}

func Test_cons2prim06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim06. fallbacks of Tve")

	// damped Newton from a far seed runs out of iterations => bisection
	eng := newEngine(tst, "air-5", 2, nil)
	lay := &eng.Lay
	b := newBuffers(eng)
	ρs := []float64{7.0e-3, 1.5e-3, 5.0e-4, 8.0e-4, 2.0e-4}
	U := consState(eng, ρs, 9000, 1500, []float64{0, 0})
	res := b.convert(eng, U)
	io.Pforan("res = %+v  Tve = %v\n", res, b.V[lay.TVE])
	if res.Path != PathBisection || res.NonPhys {
		tst.Errorf("bisection should have converged: %+v\n", res)
	}
	chk.Float64(tst, "Tve", 1e-4, b.V[lay.TVE], 1500)

	// no iterations left => degenerate
	set := DefaultSettings()
	set.NRmaxit, set.Bmaxit = 0, 3
	eng = newEngine(tst, "air-5", 2, set)
	res = b.convert(eng, U)
	io.Pforan("res = %+v  Tve = %v\n", res, b.V[lay.TVE])
	if res.Path != PathDegenerate || !res.NonPhys {
		tst.Errorf("degenerate path should have been taken: %+v\n", res)
	}
	chk.Float64(tst, "Tve", 1e-17, b.V[lay.TVE], b.V[lay.T])
	for s := 0; s < lay.Nsp; s++ {
		chk.Float64(tst, io.Sf("eve[%d]", s), 1e-17, b.eves[s], eng.Mix.Eve(s, b.V[lay.T]))
	}
}

func Test_cons2prim07(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim07. sound speed")

	for _, name := range []string{"argon", "N2", "N2-N", "air-5"} {
		eng := newEngine(tst, name, 2, nil)
		lay, mix := &eng.Lay, eng.Mix
		b := newBuffers(eng)
		ρs := make([]float64, lay.Nsp)
		for s := range ρs {
			ρs[s] = 0.01 / float64(s+1)
		}
		for _, Ts := range [][]float64{{200, 200}, {1000, 4000}, {6000, 1000}, {20000, 15000}} {
			U := consState(eng, ρs, Ts[0], Ts[1], []float64{1000, 200})
			res := b.convert(eng, U)
			if res.NonPhys || res.ClipA {
				tst.Errorf("%s: state must be physical: %+v\n", name, res)
				return
			}
			a2 := eng.SoundSpeed2(U, b.V, b.dPdU)
			if a2 <= 0 {
				tst.Errorf("%s: squared sound speed must be positive. a² = %g\n", name, a2)
				return
			}
			var sol ana.FrozenGas
			sol.Init(mix, b.V[lay.RHOS:lay.RHOS+lay.Nsp], b.V[lay.T], b.V[lay.TVE])
			io.Pforan("%-6s a = %.8f  frozen = %.8f\n", name, b.V[lay.A], sol.SoundSpeed())
			if math.Abs(b.V[lay.A]-sol.SoundSpeed()) > 1e-8*sol.SoundSpeed() {
				tst.Errorf("%s: sound speed %v is different from frozen one %v\n", name, b.V[lay.A], sol.SoundSpeed())
			}
		}
	}
}

func Test_cons2prim08(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cons2prim08. empty and invalid states")

	// checkFinite checks that all primitive variables and derivatives are finite
	checkFinite := func(b *buffers) {
		for _, vals := range [][]float64{b.V, b.dPdU, b.dTdU, b.dTvedU} {
			for k, v := range vals {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					tst.Errorf("value %d is not finite: %v\n", k, vals)
					return
				}
			}
		}
	}

	for _, name := range []string{"argon", "N2", "air-5"} {
		eng := newEngine(tst, name, 2, nil)
		lay, set := &eng.Lay, &eng.Set
		b := newBuffers(eng)

		// zero density
		U := make([]float64, lay.Nvar)
		res := b.convert(eng, U)
		io.Pforan("%-6s: res = %+v\n", name, res)
		if !res.NonPhys || !res.ClipRho || !res.ClipT {
			tst.Errorf("%s: zero density must be flagged: %+v\n", name, res)
		}
		checkFinite(b)
		chk.Float64(tst, "ρ", 1e-30, b.V[lay.RHO], float64(lay.Nsp)*set.RhoMin)
		chk.Float64(tst, "U[0]", 1e-30, U[0], set.RhoMin)
		chk.Float64(tst, "T", 1e-17, b.V[lay.T], set.Tmin)
		if b.V[lay.TVE] < set.Tvemin || b.V[lay.TVE] > set.Tvemax {
			tst.Errorf("%s: Tve = %v is out of bounds\n", name, b.V[lay.TVE])
		}

		// NaN energy
		ρs := make([]float64, lay.Nsp)
		for s := range ρs {
			ρs[s] = 0.1
		}
		U = consState(eng, ρs, 1000, 1000, []float64{10, 0})
		U[lay.ENE] = math.NaN()
		res = b.convert(eng, U)
		io.Pforan("%-6s: res = %+v\n", name, res)
		if !res.NonPhys || !res.ClipT {
			tst.Errorf("%s: NaN energy must be flagged: %+v\n", name, res)
		}
		chk.Float64(tst, "T", 1e-17, b.V[lay.T], set.Tmin)
		if math.IsNaN(b.V[lay.TVE]) || math.IsNaN(b.V[lay.P]) {
			tst.Errorf("%s: Tve and P must not be NaN\n", name)
		}
	}
}
