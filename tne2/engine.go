// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/gas"
	"github.com/sirupsen/logrus"
)

// Engine converts states of a given mixture. It is read-only after allocation and can be
// shared by all cells
type Engine struct {
	Mix *gas.Mixture       // mixture
	Lay Layout             // positions in U and V
	Set Settings           // bounds and root-finder parameters
	Log logrus.FieldLogger // logger
}

// NewEngine allocates a new engine
//
//	set -- settings; nil => default
//	log -- logger; nil => logrus standard logger
func NewEngine(mix *gas.Mixture, ndim int, set *Settings, log logrus.FieldLogger) (o *Engine, err error) {
	if mix == nil {
		return nil, chk.Err("mixture must be given")
	}
	if ndim < 1 || ndim > 3 {
		return nil, chk.Err("space dimension must be 1, 2 or 3. ndim = %d is invalid", ndim)
	}
	if set == nil {
		set = DefaultSettings()
	}
	if err = set.Check(); err != nil {
		return
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	o = &Engine{Mix: mix, Lay: NewLayout(mix.Nsp(), ndim), Set: *set, Log: log}
	return
}

// Velocity2 returns the squared velocity magnitude
func (o *Engine) Velocity2(V []float64) (v2 float64) {
	for i := 0; i < o.Lay.Ndim; i++ {
		v2 += V[o.Lay.VEL+i] * V[o.Lay.VEL+i]
	}
	return
}

// ProjVel returns the velocity projected onto (area) vector n
func (o *Engine) ProjVel(V, n []float64) (vn float64) {
	for i := 0; i < o.Lay.Ndim; i++ {
		vn += V[o.Lay.VEL+i] * n[i]
	}
	return
}
