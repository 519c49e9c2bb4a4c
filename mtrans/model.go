// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mtrans implements models for transport coefficients of gas mixtures in thermal
// non-equilibrium
package mtrans

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/gas"
)

// Input holds the thermodynamic state required by transport models
type Input struct {
	Rhos    []float64 // species densities [nsp]
	Rho     float64   // mixture density
	T       float64   // translational-rotational temperature
	Tve     float64   // vibrational-electronic temperature
	P       float64   // pressure
	RhoCvve float64   // vibrational-electronic heat capacity per volume
}

// Coeffs holds transport coefficients
type Coeffs struct {
	Ds  []float64 // species-mixture diffusion coefficients [nsp]
	Mu  float64   // μ: laminar viscosity
	Ktr float64   // translational-rotational thermal conductivity
	Kve float64   // vibrational-electronic thermal conductivity
}

// NewCoeffs allocates transport coefficients for nsp species
func NewCoeffs(nsp int) *Coeffs {
	return &Coeffs{Ds: make([]float64, nsp)}
}

// Set copies coefficients
func (o *Coeffs) Set(other *Coeffs) {
	copy(o.Ds, other.Ds)
	o.Mu, o.Ktr, o.Kve = other.Mu, other.Ktr, other.Kve
}

// Model defines transport models. Calc must not modify the model so that one model can
// serve many cells at the same time
type Model interface {
	Init(mix *gas.Mixture) error // initialises model
	Name() string                // returns the name of this model
	Calc(res *Coeffs, in *Input) // computes transport coefficients
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// aliases of model names
var aliases = map[string]string{
	"guptayos":              "gupta-yos",
	"gupta_yos":             "gupta-yos",
	"wilke-blottner-eucken": "wbe",
}

// New returns a new (not initialised) transport model
func New(name string) (model Model, err error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	allocator, ok := allocators[key]
	if !ok {
		return nil, chk.Err("transport model %q is not available in 'mtrans' database", name)
	}
	return allocator(), nil
}

// NewModel returns a new model initialised for mixture mix
func NewModel(name string, mix *gas.Mixture) (model Model, err error) {
	model, err = New(name)
	if err != nil {
		return
	}
	if err = model.Init(mix); err != nil {
		return nil, chk.Err("cannot initialise transport model %q:\n%v", name, err)
	}
	return
}

// Names returns the (sorted) names of the available models
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
