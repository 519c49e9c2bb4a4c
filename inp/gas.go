// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from gas (.json, .toml or .yaml) and settings (.ini) files
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gotne/gas"
	"gopkg.in/yaml.v3"
)

// SpeciesData holds the input data of one species
type SpeciesData struct {
	Name     string    `json:"name" toml:"name" yaml:"name"`             // label; e.g. "N2"
	M        float64   `json:"m" toml:"m" yaml:"m"`                      // molar mass [kg/kmol]
	ThetaV   float64   `json:"thetav" toml:"thetav" yaml:"thetav"`       // characteristic vibrational temperature
	Xi       float64   `json:"xi" toml:"xi" yaml:"xi"`                   // number of rotational degrees of freedom
	Hf       float64   `json:"hf" toml:"hf" yaml:"hf"`                   // formation enthalpy [J/kg]
	Tref     float64   `json:"tref" toml:"tref" yaml:"tref"`             // reference temperature
	ThetaE   []float64 `json:"thetae" toml:"thetae" yaml:"thetae"`       // characteristic electronic temperatures
	G        []float64 `json:"g" toml:"g" yaml:"g"`                      // degeneracies of electronic levels
	Blottner []float64 `json:"blottner" toml:"blottner" yaml:"blottner"` // A, B, C; empty => zero
	Electron bool      `json:"electron" toml:"electron" yaml:"electron"` // free electron
}

// PairData holds collision-integral fits of one pair of species
type PairData struct {
	Sp      [2]string `json:"sp" toml:"sp" yaml:"sp"`                // labels of species; e.g. ["N2", "O"]
	Omega00 []float64 `json:"omega00" toml:"omega00" yaml:"omega00"` // Ω(0,0) fit {A, B, C, D}; empty => default
	Omega11 []float64 `json:"omega11" toml:"omega11" yaml:"omega11"` // Ω(1,1) fit {A, B, C, D}; empty => default
}

// GasData holds the input data of a gas mixture
type GasData struct {
	Name    string         `json:"name" toml:"name" yaml:"name"`          // name of mixture
	Desc    string         `json:"desc" toml:"desc" yaml:"desc"`          // description
	Species []*SpeciesData `json:"species" toml:"species" yaml:"species"` // species; electrons last
	Pairs   []*PairData    `json:"pairs" toml:"pairs" yaml:"pairs"`       // collision data; missing pairs use defaults
}

// ReadGas reads gas data from a .json, .toml or .yaml file
func ReadGas(fnpath string) (o *GasData, err error) {

	// read file
	b, err := readFile(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read gas file %q:\n%v", fnpath, err)
	}

	// decode
	o = new(GasData)
	switch ext := strings.ToLower(filepath.Ext(fnpath)); ext {
	case ".json":
		err = json.Unmarshal(b, o)
	case ".toml":
		_, err = toml.Decode(string(b), o)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, o)
	default:
		return nil, chk.Err("extension of gas file %q is not supported. Use .json, .toml or .yaml", fnpath)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal gas file %q:\n%v", fnpath, err)
	}

	// default name
	if o.Name == "" {
		o.Name = io.FnKey(filepath.Base(fnpath))
	}
	return
}

// Mixture builds the (immutable) mixture corresponding to this data
func (o *GasData) Mixture() (mix *gas.Mixture, err error) {

	// species
	nsp := len(o.Species)
	species := make([]gas.Species, nsp)
	index := make(map[string]int)
	for s, d := range o.Species {
		if d == nil {
			return nil, chk.Err("mixture %q: data of species %d is missing", o.Name, s)
		}
		if _, ok := index[d.Name]; ok {
			return nil, chk.Err("mixture %q: species %q is repeated", o.Name, d.Name)
		}
		index[d.Name] = s
		species[s] = gas.Species{
			Name:     d.Name,
			M:        d.M,
			ThetaV:   d.ThetaV,
			Xi:       d.Xi,
			Hf:       d.Hf,
			Tref:     d.Tref,
			ThetaE:   d.ThetaE,
			G:        d.G,
			Electron: d.Electron,
		}
		switch len(d.Blottner) {
		case 0:
		case 3:
			copy(species[s].Blottner[:], d.Blottner)
		default:
			return nil, chk.Err("mixture %q: species %q must have 3 Blottner coefficients. %d is incorrect", o.Name, d.Name, len(d.Blottner))
		}
	}

	// collision integrals
	var omg00, omg11 [][][4]float64
	if len(o.Pairs) > 0 {
		omg00 = table(nsp, gas.DefaultOmega00)
		omg11 = table(nsp, gas.DefaultOmega11)
		for _, p := range o.Pairs {
			i, ok := index[p.Sp[0]]
			j, okj := index[p.Sp[1]]
			if !ok || !okj {
				return nil, chk.Err("mixture %q: pair %v has unknown species", o.Name, p.Sp)
			}
			if err = setPair(omg00, i, j, p.Omega00); err != nil {
				return nil, chk.Err("mixture %q: pair %v: Ω(0,0): %v", o.Name, p.Sp, err)
			}
			if err = setPair(omg11, i, j, p.Omega11); err != nil {
				return nil, chk.Err("mixture %q: pair %v: Ω(1,1): %v", o.Name, p.Sp, err)
			}
		}
	}
	return gas.NewMixture(o.Name, species, omg00, omg11)
}

// LoadMixture returns a built-in mixture or reads one from a gas file
//
//	key -- name of built-in mixture or path to gas file
func LoadMixture(key string) (mix *gas.Mixture, err error) {
	if _, e := os.Stat(key); e != nil {
		return gas.Get(key)
	}
	data, err := ReadGas(key)
	if err != nil {
		return
	}
	return data.Mixture()
}

// auxiliary /////////////////////////////////////////////////////////////////////////////////////

// readFile reads a file with gosl/io, which panics on failure
func readFile(fnpath string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("%v", r)
		}
	}()
	b = io.ReadFile(fnpath)
	return
}

func table(nsp int, dflt [4]float64) (res [][][4]float64) {
	res = make([][][4]float64, nsp)
	for i := 0; i < nsp; i++ {
		res[i] = make([][4]float64, nsp)
		for j := 0; j < nsp; j++ {
			res[i][j] = dflt
		}
	}
	return
}

func setPair(tab [][][4]float64, i, j int, fit []float64) error {
	switch len(fit) {
	case 0:
		return nil
	case 4:
		copy(tab[i][j][:], fit)
		tab[j][i] = tab[i][j]
		return nil
	}
	return chk.Err("fit must have 4 coefficients. %d is incorrect", len(fit))
}
