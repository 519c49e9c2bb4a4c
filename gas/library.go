// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gas

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// allocators holds all available built-in mixtures
var allocators = map[string]func() (*Mixture, error){}

// Get returns a built-in mixture
func Get(name string) (*Mixture, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("mixture %q is not available in the built-in database", name)
	}
	return allocator()
}

// Names returns the (sorted) names of the built-in mixtures
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// species data ///////////////////////////////////////////////////////////////////////////////////

// Ar: argon (ground electronic state only)
func spAr() Species {
	return Species{Name: "Ar", M: 39.948, ThetaE: []float64{0}, G: []float64{1},
		Blottner: [3]float64{0, 0.65, -12.12}}
}

// Ar+: singly ionised argon
func spArp() Species {
	return Species{Name: "Ar+", M: 39.9474514, Hf: 3.8066e+07, ThetaE: []float64{0, 2.0527e+03}, G: []float64{4, 2},
		Blottner: [3]float64{0, 0.65, -12.12}}
}

// e-: free electron
func spE() Species {
	return Species{Name: "e-", M: 5.4858e-04, Electron: true,
		Blottner: [3]float64{0, 0, -12.5}}
}

// N2: nitrogen
func spN2() Species {
	return Species{Name: "N2", M: 28.0134, ThetaV: 3395, Xi: 2,
		ThetaE: []float64{0, 7.2231565e+04, 8.5778626e+04}, G: []float64{1, 3, 6},
		Blottner: [3]float64{2.68142e-02, 3.177838e-01, -1.13155513e+01}}
}

// O2: oxygen
func spO2() Species {
	return Species{Name: "O2", M: 31.9988, ThetaV: 2239, Xi: 2,
		ThetaE: []float64{0, 1.1391560e+04, 1.8984739e+04}, G: []float64{3, 2, 1},
		Blottner: [3]float64{4.49290e-02, -8.26158e-02, -9.2019475e+00}}
}

// NO: nitric oxide
func spNO() Species {
	return Species{Name: "NO", M: 30.0061, ThetaV: 2817, Xi: 2, Hf: 3.0091e+06,
		ThetaE: []float64{0, 1.7493e+02}, G: []float64{2, 2},
		Blottner: [3]float64{4.36378e-02, -3.35511e-02, -9.5767430e+00}}
}

// N: atomic nitrogen
func spN() Species {
	return Species{Name: "N", M: 14.0067, Hf: 3.3747e+07,
		ThetaE: []float64{0, 2.7665e+04, 4.1495e+04}, G: []float64{4, 10, 6},
		Blottner: [3]float64{1.15572e-02, 6.031679e-01, -1.24327495e+01}}
}

// O: atomic oxygen
func spO() Species {
	return Species{Name: "O", M: 15.9994, Hf: 1.5574e+07,
		ThetaE: []float64{0, 2.2831e+02, 3.2691e+02}, G: []float64{5, 3, 1},
		Blottner: [3]float64{2.03144e-02, 4.294404e-01, -1.16031403e+01}}
}

// add mixtures to database
func init() {
	allocators["argon"] = func() (*Mixture, error) {
		return NewMixture("argon", []Species{spAr()}, nil, nil)
	}
	allocators["argon-ion"] = func() (*Mixture, error) {
		return NewMixture("argon-ion", []Species{spAr(), spArp(), spE()}, nil, nil)
	}
	allocators["N2"] = func() (*Mixture, error) {
		return NewMixture("N2", []Species{spN2()}, nil, nil)
	}
	allocators["N2-N"] = func() (*Mixture, error) {
		return NewMixture("N2-N", []Species{spN2(), spN()}, nil, nil)
	}
	allocators["air-5"] = func() (*Mixture, error) {
		return NewMixture("air-5", []Species{spN2(), spO2(), spNO(), spN(), spO()}, nil, nil)
	}
}
