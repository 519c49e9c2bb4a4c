// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/tne2"
	"gopkg.in/ini.v1"
)

// Config holds the converter settings and the transport model read from a .ini file
//
//	[converter]
//	clip    = full   # full or simple: selects the default bounds
//	Tmin    = 50
//	NRscale = 0.5
//	...
//	[transport]
//	model   = wbe    # empty => inviscid
type Config struct {
	Settings  *tne2.Settings // converter settings
	Clip      string         // "full" or "simple"
	Transport string         // name of transport model; empty => inviscid
}

// ReadConfig reads configuration from a .ini file
func ReadConfig(fnpath string) (o *Config, err error) {
	file, err := ini.Load(fnpath)
	if err != nil {
		return nil, chk.Err("cannot read settings file %q:\n%v", fnpath, err)
	}
	o, err = loadConfig(file)
	if err != nil {
		return nil, chk.Err("settings file %q is invalid:\n%v", fnpath, err)
	}
	return
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{Settings: tne2.DefaultSettings(), Clip: "full"}
}

func loadConfig(file *ini.File) (o *Config, err error) {

	// bounds
	o = new(Config)
	sec := file.Section("converter")
	o.Clip = strings.ToLower(sec.Key("clip").MustString("full"))
	var d *tne2.Settings
	switch o.Clip {
	case "full":
		d = tne2.DefaultSettings()
	case "simple":
		d = tne2.SimpleClipSettings()
	default:
		return nil, chk.Err("clip = %q is invalid. Use \"full\" or \"simple\"", o.Clip)
	}

	// converter
	o.Settings = &tne2.Settings{
		Tmin:    sec.Key("Tmin").MustFloat64(d.Tmin),
		Tmax:    sec.Key("Tmax").MustFloat64(d.Tmax),
		Tvemin:  sec.Key("Tvemin").MustFloat64(d.Tvemin),
		Tvemax:  sec.Key("Tvemax").MustFloat64(d.Tvemax),
		NRtol:   sec.Key("NRtol").MustFloat64(d.NRtol),
		NRmaxit: sec.Key("NRmaxit").MustInt(d.NRmaxit),
		NRscale: sec.Key("NRscale").MustFloat64(d.NRscale),
		Btol:    sec.Key("Btol").MustFloat64(d.Btol),
		Bmaxit:  sec.Key("Bmaxit").MustInt(d.Bmaxit),
		RhoMin:  sec.Key("RhoMin").MustFloat64(d.RhoMin),
		Pmin:    sec.Key("Pmin").MustFloat64(d.Pmin),
	}
	if err = o.Settings.Check(); err != nil {
		return nil, err
	}

	// transport
	o.Transport = strings.TrimSpace(file.Section("transport").Key("model").String())
	return
}
