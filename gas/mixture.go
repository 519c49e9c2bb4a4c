// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gas implements the thermodynamic tables of a two-temperature gas mixture
package gas

import "github.com/cpmech/gosl/chk"

// Species holds the data of one chemical species
type Species struct {
	Name     string     // label; e.g. "N2"
	M        float64    // molar mass [kg/kmol]
	ThetaV   float64    // θv: characteristic vibrational temperature [K]; 0 => no vibration
	Xi       float64    // ξ: number of rotational degrees of freedom
	Hf       float64    // formation enthalpy [J/kg]
	Tref     float64    // reference temperature [K]
	ThetaE   []float64  // θe: characteristic electronic temperatures [K]; k = 0 is the ground state
	G        []float64  // degeneracies of the electronic levels
	Blottner [3]float64 // A, B, C coefficients of Blottner's viscosity fit
	Electron bool       // free electron
}

// Mixture holds the (immutable) tables of a gas mixture. Electrons, if any, are the last species
type Mixture struct {
	name    string         // label of mixture
	sp      []Species      // species
	ionized bool           // the last species is a free electron
	omg00   [][][4]float64 // Ω(0,0) curve fits {A, B, C, D} of each pair
	omg11   [][][4]float64 // Ω(1,1) curve fits {A, B, C, D} of each pair

	// derived
	r    []float64 // R_s = Ru / M_s
	ef   []float64 // formation energies hf - R Tref
	cvtr []float64 // translational-rotational heat capacities (3/2 + ξ/2) R
}

// default collision-integral fits (N2-N2) used for pairs without data
var (
	DefaultOmega00 = [4]float64{-6.0614558e-03, 1.2689102e-01, -1.0616948e+00, 8.0955466e+02}
	DefaultOmega11 = [4]float64{-7.6303990e-03, 1.6878089e-01, -1.4004234e+00, 2.1427708e+03}
)

// NewMixture builds a new mixture. omg00 and omg11 may be nil; then default fits are used
func NewMixture(name string, species []Species, omg00, omg11 [][][4]float64) (o *Mixture, err error) {

	// check
	nsp := len(species)
	if nsp < 1 {
		return nil, chk.Err("mixture %q must have at least one species", name)
	}
	for s, sp := range species {
		if sp.M <= 0 {
			return nil, chk.Err("molar mass of species %q must be positive. M = %g is invalid", sp.Name, sp.M)
		}
		if len(sp.ThetaE) != len(sp.G) {
			return nil, chk.Err("species %q: number of electronic temperatures (%d) and degeneracies (%d) must be equal", sp.Name, len(sp.ThetaE), len(sp.G))
		}
		if sp.Electron && s != nsp-1 {
			return nil, chk.Err("electron species %q must be the last one in mixture %q", sp.Name, name)
		}
	}
	if species[nsp-1].Electron && nsp < 2 {
		return nil, chk.Err("mixture %q cannot be made of electrons only", name)
	}

	// copy data
	o = new(Mixture)
	o.name = name
	o.sp = make([]Species, nsp)
	for s, sp := range species {
		o.sp[s] = sp
		o.sp[s].ThetaE = append([]float64{}, sp.ThetaE...)
		o.sp[s].G = append([]float64{}, sp.G...)
	}
	o.ionized = o.sp[nsp-1].Electron

	// collision integrals
	if o.omg00, err = pairs(name, "Ω(0,0)", nsp, omg00, DefaultOmega00); err != nil {
		return
	}
	if o.omg11, err = pairs(name, "Ω(1,1)", nsp, omg11, DefaultOmega11); err != nil {
		return
	}

	// derived
	o.r = make([]float64, nsp)
	o.ef = make([]float64, nsp)
	o.cvtr = make([]float64, nsp)
	for s, sp := range o.sp {
		o.r[s] = Ru / sp.M
		o.ef[s] = sp.Hf - o.r[s]*sp.Tref
		o.cvtr[s] = (1.5 + sp.Xi/2.0) * o.r[s]
	}
	return
}

// pairs copies or generates the table of curve fits
func pairs(name, key string, nsp int, fits [][][4]float64, dflt [4]float64) (res [][][4]float64, err error) {
	if fits != nil && len(fits) != nsp {
		return nil, chk.Err("mixture %q: table %s must have %d rows. %d is incorrect", name, key, nsp, len(fits))
	}
	res = make([][][4]float64, nsp)
	for i := 0; i < nsp; i++ {
		res[i] = make([][4]float64, nsp)
		if fits == nil {
			for j := 0; j < nsp; j++ {
				res[i][j] = dflt
			}
			continue
		}
		if len(fits[i]) != nsp {
			return nil, chk.Err("mixture %q: row %d of table %s must have %d columns. %d is incorrect", name, i, key, nsp, len(fits[i]))
		}
		copy(res[i], fits[i])
	}
	return
}

// Name returns the label of this mixture
func (o *Mixture) Name() string { return o.name }

// Nsp returns the number of species
func (o *Mixture) Nsp() int { return len(o.sp) }

// Nheavy returns the number of heavy (non-electron) species
func (o *Mixture) Nheavy() int {
	if o.ionized {
		return len(o.sp) - 1
	}
	return len(o.sp)
}

// Ionized tells whether the mixture carries free electrons
func (o *Mixture) Ionized() bool { return o.ionized }

// Electron returns the index of the electron species or -1
func (o *Mixture) Electron() int {
	if o.ionized {
		return len(o.sp) - 1
	}
	return -1
}

// Label returns the name of species s
func (o *Mixture) Label(s int) string { return o.sp[s].Name }

// M returns the molar mass of species s [kg/kmol]
func (o *Mixture) M(s int) float64 { return o.sp[s].M }

// R returns the specific gas constant of species s [J/(kg K)]
func (o *Mixture) R(s int) float64 { return o.r[s] }

// Xi returns the rotational degrees of freedom of species s
func (o *Mixture) Xi(s int) float64 { return o.sp[s].Xi }

// Hf returns the formation enthalpy of species s [J/kg]
func (o *Mixture) Hf(s int) float64 { return o.sp[s].Hf }

// Tref returns the reference temperature of species s [K]
func (o *Mixture) Tref(s int) float64 { return o.sp[s].Tref }

// Ef returns the formation energy hf - R Tref of species s [J/kg]
func (o *Mixture) Ef(s int) float64 { return o.ef[s] }

// Cvtr returns the translational-rotational heat capacity of species s [J/(kg K)]
func (o *Mixture) Cvtr(s int) float64 { return o.cvtr[s] }

// Blottner returns the viscosity fit coefficients of species s
func (o *Mixture) Blottner(s int) [3]float64 { return o.sp[s].Blottner }

// Omega00 returns the Ω(0,0) fit of pair (i,j)
func (o *Mixture) Omega00(i, j int) [4]float64 { return o.omg00[i][j] }

// Omega11 returns the Ω(1,1) fit of pair (i,j)
func (o *Mixture) Omega11(i, j int) [4]float64 { return o.omg11[i][j] }

// Species returns a copy of the data of species s
func (o *Mixture) Species(s int) (sp Species) {
	sp = o.sp[s]
	sp.ThetaE = append([]float64{}, o.sp[s].ThetaE...)
	sp.G = append([]float64{}, o.sp[s].G...)
	return
}
