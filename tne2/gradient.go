// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

// GradCons2GradPrim computes the gradient of primitive variables from the gradient of
// conserved variables using the chain rule
//
//	Input:
//	 V      -- primitive variables
//	 eves   -- species vibrational-electronic energies at V[TVE]
//	 cvves  -- species vibrational-electronic heat capacities at V[TVE]
//	 gradU  -- ∇U [nvar][ndim]
//	Output:
//	 gradV  -- ∇V [nprim][ndim]. The row of the sound speed is set to zero
func (o *Engine) GradCons2GradPrim(V, eves, cvves []float64, gradU, gradV [][]float64) {

	// auxiliary
	mix, lay := o.Mix, &o.Lay
	nsp, nhv := lay.Nsp, mix.Nheavy()
	ρ, T, Tve := V[lay.RHO], V[lay.T], V[lay.TVE]
	ρCvtr, ρCvve := V[lay.RHOCVTR], V[lay.RHOCVVE]
	h, v2 := V[lay.H], o.Velocity2(V)
	dcvves := make([]float64, nsp)
	for s := 0; s < nsp; s++ {
		dcvves[s] = mix.DCvveDT(s, Tve)
	}

	for d := 0; d < lay.Ndim; d++ {

		// densities
		dρ := 0.0
		for s := 0; s < nsp; s++ {
			gradV[lay.RHOS+s][d] = gradU[s][d]
			dρ += gradU[s][d]
		}
		gradV[lay.RHO][d] = dρ

		// velocity. udm = Σ u·∇(ρu)
		udm := 0.0
		for i := 0; i < lay.Ndim; i++ {
			u := V[lay.VEL+i]
			gradV[lay.VEL+i][d] = (gradU[lay.MOM+i][d] - u*dρ) / ρ
			udm += u * gradU[lay.MOM+i][d]
		}

		// translational-rotational temperature
		dρCvtr, dρEf := 0.0, 0.0
		for s := 0; s < nhv; s++ {
			dρCvtr += gradU[s][d] * mix.Cvtr(s)
			dρEf += gradU[s][d] * (mix.Ef(s) - mix.Cvtr(s)*mix.Tref(s))
		}
		dT := (gradU[lay.ENE][d] - gradU[lay.EVE][d] - dρEf - udm + 0.5*v2*dρ - T*dρCvtr) / ρCvtr
		gradV[lay.T][d] = dT
		gradV[lay.RHOCVTR][d] = dρCvtr

		// vibrational-electronic temperature
		dTve := dT
		if ρCvve > 0 {
			dTve = gradU[lay.EVE][d]
			for s := 0; s < nsp; s++ {
				dTve -= eves[s] * gradU[s][d]
			}
			dTve /= ρCvve
		}
		gradV[lay.TVE][d] = dTve

		// pressure
		dP := 0.0
		for s := 0; s < nhv; s++ {
			dP += mix.R(s) * (gradU[s][d]*T + V[lay.RHOS+s]*dT)
		}
		if mix.Ionized() {
			iel := mix.Electron()
			dP += mix.R(iel) * (gradU[iel][d]*Tve + V[lay.RHOS+iel]*dTve)
		}
		gradV[lay.P][d] = dP

		// enthalpy
		gradV[lay.H][d] = (gradU[lay.ENE][d] + dP - h*dρ) / ρ

		// vibrational-electronic heat capacity
		dρCvve := 0.0
		for s := 0; s < nsp; s++ {
			dρCvve += gradU[s][d]*cvves[s] + V[lay.RHOS+s]*dcvves[s]*dTve
		}
		gradV[lay.RHOCVVE][d] = dρCvve
		gradV[lay.A][d] = 0
	}
}

// Vorticity computes the vorticity vector [3] from the gradient of primitive variables
func (o *Engine) Vorticity(gradV [][]float64, vort []float64) {
	lay := &o.Lay
	vort[0], vort[1], vort[2] = 0, 0, 0
	if lay.Ndim < 2 {
		return
	}
	u, v := lay.VEL, lay.VEL+1
	vort[2] = gradV[v][0] - gradV[u][1]
	if lay.Ndim == 3 {
		w := lay.VEL + 2
		vort[0] = gradV[w][1] - gradV[v][2]
		vort[1] = gradV[u][2] - gradV[w][0]
	}
}
