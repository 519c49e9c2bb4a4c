// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import (
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gotne/mtrans"
)

// Transport holds the transport capability of viscous cells
type Transport struct {
	Model  mtrans.Model   // transport model
	Coeffs *mtrans.Coeffs // current coefficients
	in     mtrans.Input   // input to model
}

// State holds the thermodynamic state of one control volume
type State struct {

	// essential
	U      []float64   // conserved variables [nvar]
	Uold   []float64   // conserved variables of the previous step (backup) [nvar]
	V      []float64   // primitive variables [nprim]
	DPdU   []float64   // ∂P/∂U [nvar]
	DTdU   []float64   // ∂T/∂U [nvar]
	DTvedU []float64   // ∂Tve/∂U [nvar]
	Eves   []float64   // species vibrational-electronic energies at Tve [nsp]
	Cvves  []float64   // species vibrational-electronic heat capacities at Tve [nsp]
	GradV  [][]float64 // ∇V [nprim][ndim]
	Res    Result      // outcome of the last conversion
	Revert bool        // the last update has restored U from Uold

	// optional
	Trans *Transport // transport capability (viscous cells only)

	// engine
	eng *Engine

	// auxiliary
	hasOld bool // Uold has been stored
}

// NewState allocates a new state
//
//	trans -- transport model; nil => inviscid cell
func (o *Engine) NewState(trans mtrans.Model) (state *State) {
	lay := &o.Lay
	state = new(State)
	state.U = make([]float64, lay.Nvar)
	state.Uold = make([]float64, lay.Nvar)
	state.V = make([]float64, lay.Nprim)
	state.DPdU = make([]float64, lay.Nvar)
	state.DTdU = make([]float64, lay.Nvar)
	state.DTvedU = make([]float64, lay.Nvar)
	state.Eves = make([]float64, lay.Nsp)
	state.Cvves = make([]float64, lay.Nsp)
	state.GradV = utl.Alloc(lay.Nprim, lay.Ndim)
	if trans != nil {
		state.Trans = &Transport{Model: trans, Coeffs: mtrans.NewCoeffs(lay.Nsp)}
	}
	state.eng = o
	return
}

// Engine returns the engine of this state
func (o *State) Engine() *Engine { return o.eng }

// StoreOld saves the current conserved variables as backup
func (o *State) StoreOld() {
	copy(o.Uold, o.U)
	o.hasOld = true
}

// SetPrimVar computes primitive variables, derivatives and (if available) transport
// coefficients from U. If the state is non-physical and a backup has been stored, U is restored
// from Uold and the conversion is repeated once; the second result is kept even if still
// non-physical. Without backup, the non-physical result is kept
//
//	nonPhys -- the first conversion was non-physical
func (o *State) SetPrimVar() (nonPhys bool) {
	o.Res = o.eng.Cons2Prim(o.U, o.V, o.DPdU, o.DTdU, o.DTvedU, o.Eves, o.Cvves)
	nonPhys, o.Revert = o.Res.NonPhys, false
	if nonPhys && !o.hasOld {
		o.eng.Log.Debug("tne2: non-physical state without backup")
	}
	if nonPhys && o.hasOld {
		copy(o.U, o.Uold)
		o.Res = o.eng.Cons2Prim(o.U, o.V, o.DPdU, o.DTdU, o.DTvedU, o.Eves, o.Cvves)
		o.Revert = true
		o.eng.Log.WithField("stillNonPhys", o.Res.NonPhys).Debug("tne2: restored conserved variables")
	}
	if o.Trans != nil {
		o.SetTransport()
	}
	return
}

// SetTransport computes transport coefficients at the current primitive state
func (o *State) SetTransport() {
	lay := &o.eng.Lay
	in := &o.Trans.in
	in.Rhos = o.V[lay.RHOS : lay.RHOS+lay.Nsp]
	in.Rho = o.V[lay.RHO]
	in.T = o.V[lay.T]
	in.Tve = o.V[lay.TVE]
	in.P = o.V[lay.P]
	in.RhoCvve = o.V[lay.RHOCVVE]
	o.Trans.Model.Calc(o.Trans.Coeffs, in)
}

// SetGradient computes the gradient of primitive variables from the gradient of conserved ones
//
//	gradU -- ∇U [nvar][ndim]
func (o *State) SetGradient(gradU [][]float64) {
	o.eng.GradCons2GradPrim(o.V, o.Eves, o.Cvves, gradU, o.GradV)
}

// SetGradientZero clears the gradient of primitive variables
func (o *State) SetGradientZero() {
	for k := range o.GradV {
		for d := range o.GradV[k] {
			o.GradV[k][d] = 0
		}
	}
}

// Velocity2 returns the squared velocity magnitude
func (o *State) Velocity2() float64 { return o.eng.Velocity2(o.V) }

// ProjVel returns the velocity projected onto (area) vector n
func (o *State) ProjVel(n []float64) float64 { return o.eng.ProjVel(o.V, n) }

// Vorticity computes the vorticity vector [3]
func (o *State) Vorticity(vort []float64) { o.eng.Vorticity(o.GradV, vort) }

// Set copies states
//
//	Note: 1) this and other states must have been allocated by the same engine
//	      2) the transport model is not copied; only coefficients are
func (o *State) Set(other *State) {
	copy(o.U, other.U)
	copy(o.Uold, other.Uold)
	copy(o.V, other.V)
	copy(o.DPdU, other.DPdU)
	copy(o.DTdU, other.DTdU)
	copy(o.DTvedU, other.DTvedU)
	copy(o.Eves, other.Eves)
	copy(o.Cvves, other.Cvves)
	for k := range o.GradV {
		copy(o.GradV[k], other.GradV[k])
	}
	o.Res = other.Res
	o.Revert = other.Revert
	o.hasOld = other.hasOld
	if o.Trans != nil && other.Trans != nil {
		o.Trans.Coeffs.Set(other.Trans.Coeffs)
	}
}

// GetCopy returns a copy of this state
func (o *State) GetCopy() *State {
	var trans mtrans.Model
	if o.Trans != nil {
		trans = o.Trans.Model
	}
	other := o.eng.NewState(trans)
	other.Set(o)
	return other
}
