// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import "math"

// Eve computes the vibrational-electronic energy of species s at Tve [J/kg]
//
//	heavy species: harmonic oscillator + Boltzmann distribution of electronic levels
//	electrons:     3/2 R (Tve - Tref) + formation energy
func (o *Mixture) Eve(s int, Tve float64) (eve float64) {
	sp := &o.sp[s]
	R := o.r[s]
	if sp.Electron {
		return 1.5*R*(Tve-sp.Tref) + o.ef[s]
	}
	if sp.ThetaV > 0 {
		ex := math.Exp(-sp.ThetaV / Tve)
		eve = R * sp.ThetaV * ex / (1.0 - ex)
	}
	if len(sp.G) > 0 {
		el := o.elec(s, Tve)
		eve += R * el.n / el.d
	}
	return
}

// Cvve computes the vibrational-electronic heat capacity of species s at Tve [J/(kg K)]
func (o *Mixture) Cvve(s int, Tve float64) (cv float64) {
	sp := &o.sp[s]
	R := o.r[s]
	if sp.Electron {
		return 1.5 * R
	}
	if sp.ThetaV > 0 {
		x := sp.ThetaV / Tve
		ex := math.Exp(-x)
		cv = R * x * x * ex / ((1.0 - ex) * (1.0 - ex))
	}
	if len(sp.G) > 0 {
		el := o.elec(s, Tve)
		cv += R * (el.n1/el.d - el.n*el.d1/(el.d*el.d))
	}
	return
}

// DCvveDT computes the derivative of Cvve with respect to Tve [J/(kg K²)]
func (o *Mixture) DCvveDT(s int, Tve float64) (dcv float64) {
	sp := &o.sp[s]
	R := o.r[s]
	if sp.Electron {
		return 0
	}
	if sp.ThetaV > 0 {
		x := sp.ThetaV / Tve
		ex := math.Exp(-x)
		cv := R * x * x * ex / ((1.0 - ex) * (1.0 - ex))
		dcv = cv * (-2.0 - x + 2.0*x/(1.0-ex)) / Tve
	}
	if len(sp.G) > 0 {
		el := o.elec(s, Tve)
		d, d2 := el.d, el.d*el.d
		dcv += R * (el.n2/d - 2.0*el.n1*el.d1/d2 - el.n*el.d2/d2 + 2.0*el.n*el.d1*el.d1/(d2*d))
	}
	return
}

// Hs computes the enthalpy of species s [J/kg]
//
//	eve -- vibrational-electronic energy of s at the current Tve
func (o *Mixture) Hs(s int, T, eve float64) float64 {
	R := o.r[s]
	return R*T + (1.5+o.sp[s].Xi/2.0)*R*T + o.sp[s].Hf + eve
}

// electronic holds the partition sums of the electronic levels and their derivatives w.r.t. Tve
type electronic struct {
	d, d1, d2 float64 // Σ_{k≥0} g exp(-θ/T) and its first and second derivatives
	n, n1, n2 float64 // Σ_{k≥1} g θ exp(-θ/T) and its first and second derivatives
}

func (o *Mixture) elec(s int, T float64) (el electronic) {
	sp := &o.sp[s]
	T2, T3, T4 := T*T, T*T*T, T*T*T*T
	for k, θ := range sp.ThetaE {
		e := sp.G[k] * math.Exp(-θ/T)
		el.d += e
		el.d1 += e * θ / T2
		el.d2 += e * (θ*θ/T4 - 2.0*θ/T3)
		if k == 0 {
			continue
		}
		el.n += e * θ
		el.n1 += e * θ * θ / T2
		el.n2 += e * (θ*θ*θ/T4 - 2.0*θ*θ/T3)
	}
	return
}
