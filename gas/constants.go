// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import "math"

// physical constants (SI; amounts in kmol)
const (
	UNIVERSAL_GAS_CONSTANT = 8.314462175e3 // Ru: universal gas constant [J/(kmol K)]
	BOLTZMANN_CONSTANT     = 1.3806503e-23 // kB: Boltzmann constant [J/K]
	AVOGADRO_CONSTANT      = 6.0221415e26  // NA: Avogadro number [1/kmol]
	EPS                    = 1.0e-16       // machine tolerance used as floor for the sound speed
	PI_NUMBER              = math.Pi       // π
)

// short aliases
const (
	Ru = UNIVERSAL_GAS_CONSTANT
	KB = BOLTZMANN_CONSTANT
	NA = AVOGADRO_CONSTANT
)
