// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tne2

import "github.com/cpmech/gosl/chk"

// Settings holds the admissibility bounds and the root-finder parameters of the converter
type Settings struct {
	Tmin    float64 // minimum translational-rotational temperature
	Tmax    float64 // maximum translational-rotational temperature
	Tvemin  float64 // minimum vibrational-electronic temperature
	Tvemax  float64 // maximum vibrational-electronic temperature
	NRtol   float64 // Newton-Raphson tolerance on Tve
	NRmaxit int     // Newton-Raphson maximum number of iterations
	NRscale float64 // damping of Newton-Raphson steps
	Btol    float64 // bisection tolerance on the half-width of the Tve bracket
	Bmaxit  int     // bisection maximum number of iterations
	RhoMin  float64 // floor for negative species densities
	Pmin    float64 // floor for negative pressures
}

// DefaultSettings returns the bounds used by the full (bracketed) conversion
func DefaultSettings() *Settings {
	return &Settings{
		Tmin:    50,
		Tmax:    8e4,
		Tvemin:  50,
		Tvemax:  8e4,
		NRtol:   1e-6,
		NRmaxit: 18,
		NRscale: 0.5,
		Btol:    1e-4,
		Bmaxit:  32,
		RhoMin:  1e-20,
		Pmin:    1e-20,
	}
}

// SimpleClipSettings returns the narrower bounds of the simple clipping rule
func SimpleClipSettings() *Settings {
	o := DefaultSettings()
	o.Tmin, o.Tmax = 100, 6e4
	o.Tvemin, o.Tvemax = 100, 4e4
	return o
}

// Check checks settings
func (o *Settings) Check() (err error) {
	if o.Tmin <= 0 || o.Tmax <= o.Tmin {
		return chk.Err("bounds of T are invalid: Tmin = %g, Tmax = %g", o.Tmin, o.Tmax)
	}
	if o.Tvemin <= 0 || o.Tvemax <= o.Tvemin {
		return chk.Err("bounds of Tve are invalid: Tvemin = %g, Tvemax = %g", o.Tvemin, o.Tvemax)
	}
	if o.NRtol <= 0 || o.Btol <= 0 {
		return chk.Err("tolerances must be positive: NRtol = %g, Btol = %g", o.NRtol, o.Btol)
	}
	if o.NRmaxit < 0 || o.Bmaxit < 0 {
		return chk.Err("maximum numbers of iterations must be non-negative: NRmaxit = %d, Bmaxit = %d", o.NRmaxit, o.Bmaxit)
	}
	if o.NRscale <= 0 || o.NRscale > 1 {
		return chk.Err("Newton-Raphson damping must be in (0,1]. NRscale = %g is invalid", o.NRscale)
	}
	if o.RhoMin <= 0 || o.Pmin <= 0 {
		return chk.Err("floors must be positive: RhoMin = %g, Pmin = %g", o.RhoMin, o.Pmin)
	}
	return
}
