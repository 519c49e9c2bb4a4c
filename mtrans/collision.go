// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtrans

import (
	"math"

	"github.com/cpmech/gotne/gas"
)

// Omega evaluates the collision cross-section curve fit: 1e-20 D T^(A ln²T + B lnT + C) [m²]
//
//	fit -- {A, B, C, D}
func Omega(fit [4]float64, T float64) float64 {
	lnT := math.Log(T)
	return 1e-20 * fit[3] * math.Pow(T, (fit[0]*lnT+fit[1])*lnT+fit[2])
}

// Delta1 computes Δ(1)_ij = 8/3 sqrt(2 Mi Mj / (π Ru T (Mi + Mj))) Ω(0,0)_ij
func Delta1(Mi, Mj, T, Ω00 float64) float64 {
	return 8.0 / 3.0 * math.Sqrt(2.0*Mi*Mj/(gas.PI_NUMBER*gas.Ru*T*(Mi+Mj))) * Ω00
}

// Delta2 computes Δ(2)_ij = 16/5 sqrt(2 Mi Mj / (π Ru T (Mi + Mj))) Ω(1,1)_ij
func Delta2(Mi, Mj, T, Ω11 float64) float64 {
	return 16.0 / 5.0 * math.Sqrt(2.0*Mi*Mj/(gas.PI_NUMBER*gas.Ru*T*(Mi+Mj))) * Ω11
}
