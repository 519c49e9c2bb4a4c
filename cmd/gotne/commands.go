// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	goio "io"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/gotne/field"
	"github.com/cpmech/gotne/gas"
	"github.com/cpmech/gotne/inp"
	"github.com/cpmech/gotne/mtrans"
	"github.com/cpmech/gotne/tne2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// options holds the flags shared by all commands
type options struct {
	gas       string    // name of built-in mixture or gas file
	settings  string    // settings (.ini) file
	transport string    // transport model; overrides settings file
	ndim      int       // space dimension
	debug     bool      // log converter events
	P         float64   // free-stream pressure
	T         float64   // free-stream translational-rotational temperature
	Tve       float64   // free-stream vibrational-electronic temperature
	Y         []float64 // free-stream mass fractions; empty => equal fractions
	Mach      []float64 // free-stream Mach number components; empty => zero
}

// newRootCmd returns the root command with all subcommands
func newRootCmd() *cobra.Command {
	var opt options
	root := &cobra.Command{
		Use:   "gotne",
		Short: "Two-temperature thermochemical states of hypersonic flows.",
		Long: `gotne converts conserved variables of a two-temperature (T, Tve) gas mixture
into primitive variables, derivatives and transport coefficients. Mixtures are
either built-in or read from .json/.toml/.yaml files; converter bounds and tolerances
are read from an .ini file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&opt.gas, "gas", "air-5", "name of built-in mixture or path to gas (.json/.toml/.yaml/.yml) file")
	pf.StringVar(&opt.settings, "settings", "", "path to settings (.ini) file")
	pf.StringVar(&opt.transport, "transport", "", "transport model (wbe, gupta-yos); overrides settings file")
	pf.IntVar(&opt.ndim, "ndim", 2, "space dimension")
	pf.BoolVar(&opt.debug, "debug", false, "log converter events")
	pf.Float64Var(&opt.P, "p", 101325, "free-stream pressure [Pa]")
	pf.Float64Var(&opt.T, "t", 300, "free-stream translational-rotational temperature [K]")
	pf.Float64Var(&opt.Tve, "tve", 300, "free-stream vibrational-electronic temperature [K]")
	pf.Float64SliceVar(&opt.Y, "y", nil, "free-stream mass fractions (default: equal fractions)")
	pf.Float64SliceVar(&opt.Mach, "mach", nil, "free-stream Mach number components (default: zero)")
	root.AddCommand(newStateCmd(&opt), newSweepCmd(&opt), newFieldCmd(&opt), newListCmd())
	return root
}

// setup allocates the engine and the transport model
func (o *options) setup(w goio.Writer) (eng *tne2.Engine, model mtrans.Model, err error) {

	// mixture
	mix, err := inp.LoadMixture(o.gas)
	if err != nil {
		return
	}

	// settings
	cfg := inp.DefaultConfig()
	if o.settings != "" {
		if cfg, err = inp.ReadConfig(o.settings); err != nil {
			return
		}
	}
	if o.transport != "" {
		cfg.Transport = o.transport
	}

	// engine
	log := logrus.New()
	log.SetOutput(w)
	if o.debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if eng, err = tne2.NewEngine(mix, o.ndim, cfg.Settings, log); err != nil {
		return
	}
	if cfg.Transport != "" {
		model, err = mtrans.NewModel(cfg.Transport, mix)
	}
	return
}

// freeStream returns the free-stream data filled with defaults
func (o *options) freeStream(eng *tne2.Engine) (Y, Mach []float64) {
	nsp, ndim := eng.Lay.Nsp, eng.Lay.Ndim
	Y, Mach = o.Y, o.Mach
	if len(Y) == 0 {
		Y = make([]float64, nsp)
		for s := 0; s < eng.Mix.Nheavy(); s++ {
			Y[s] = 1.0 / float64(eng.Mix.Nheavy())
		}
	}
	if len(Mach) == 0 {
		Mach = make([]float64, ndim)
	}
	return
}

// state /////////////////////////////////////////////////////////////////////////////////////////

func newStateCmd(opt *options) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Convert one free-stream state",
		Long: `state builds the conserved variables of a free-stream state and prints the
primitive variables, the derivatives of P, T and Tve, the Tve path and, if a
transport model is given, the transport coefficients.`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			eng, model, err := opt.setup(w)
			if err != nil {
				return err
			}
			state := eng.NewState(model)
			Y, Mach := opt.freeStream(eng)
			if err = eng.FreeStream(state.U, opt.P, Y, Mach, opt.T, opt.Tve); err != nil {
				return err
			}
			state.StoreOld()
			state.SetPrimVar()

			// print
			mix, lay := eng.Mix, &eng.Lay
			fmt.Fprintf(w, "mixture   : %s\n", mix.Name())
			fmt.Fprintf(w, "path      : %v (%d iterations)\n", state.Res.Path, state.Res.Iter)
			fmt.Fprintf(w, "nonphys   : %v\n", state.Res.NonPhys)
			fmt.Fprintf(w, "\n%-12s %23s %23s %23s %23s\n", "U", "value", "dP/dU", "dT/dU", "dTve/dU")
			for k, key := range lay.ConsKeys(mix.Label) {
				fmt.Fprintf(w, "%-12s %23.15e %23.15e %23.15e %23.15e\n", key, state.U[k], state.DPdU[k], state.DTdU[k], state.DTvedU[k])
			}
			fmt.Fprintf(w, "\n%-12s %23s\n", "V", "value")
			for k, key := range lay.PrimKeys(mix.Label) {
				fmt.Fprintf(w, "%-12s %23.15e\n", key, state.V[k])
			}
			if state.Trans != nil {
				c := state.Trans.Coeffs
				fmt.Fprintf(w, "\ntransport : %s\n", state.Trans.Model.Name())
				fmt.Fprintf(w, "%-12s %23.15e\n%-12s %23.15e\n%-12s %23.15e\n", "mu", c.Mu, "ktr", c.Ktr, "kve", c.Kve)
				for s, D := range c.Ds {
					fmt.Fprintf(w, "%-12s %23.15e\n", "D_"+mix.Label(s), D)
				}
			}
			return nil
		},
	}
}

// sweep /////////////////////////////////////////////////////////////////////////////////////////

func newSweepCmd(opt *options) *cobra.Command {
	var Tmin, Tmax float64
	var n int
	cmd := &cobra.Command{
		Use:               "sweep",
		Short:             "Tabulate vibrational-electronic energies and heat capacities",
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 2 || Tmax <= Tmin || Tmin <= 0 {
				return chk.Err("sweep range is invalid: Tmin = %g, Tmax = %g, n = %d", Tmin, Tmax, n)
			}
			w := cmd.OutOrStdout()
			eng, _, err := opt.setup(w)
			if err != nil {
				return err
			}
			mix := eng.Mix
			nsp := mix.Nsp()
			var head strings.Builder
			fmt.Fprintf(&head, "%12s", "Tve")
			for s := 0; s < nsp; s++ {
				fmt.Fprintf(&head, " %16s %16s", "eve_"+mix.Label(s), "cvve_"+mix.Label(s))
			}
			fmt.Fprintln(w, head.String())
			for _, Tve := range utl.LinSpace(Tmin, Tmax, n) {
				fmt.Fprintf(w, "%12.4f", Tve)
				for s := 0; s < nsp; s++ {
					fmt.Fprintf(w, " %16.8e %16.8e", mix.Eve(s, Tve), mix.Cvve(s, Tve))
				}
				fmt.Fprintln(w)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&Tmin, "tmin", 200, "minimum Tve [K]")
	cmd.Flags().Float64Var(&Tmax, "tmax", 20000, "maximum Tve [K]")
	cmd.Flags().IntVar(&n, "n", 11, "number of points")
	return cmd
}

// field /////////////////////////////////////////////////////////////////////////////////////////

func newFieldCmd(opt *options) *cobra.Command {
	var ncells, workers, every int
	var metrics bool
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Update a set of free-stream cells in parallel",
		Long: `field allocates cells at the free-stream state, removes energy from every
n-th cell (--every) and updates all cells in parallel, printing the outcome.`,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			eng, model, err := opt.setup(w)
			if err != nil {
				return err
			}
			fld, err := field.New(eng, ncells, model)
			if err != nil {
				return err
			}
			reg := prometheus.NewRegistry()
			if fld.Metrics, err = field.NewMetrics(reg); err != nil {
				return err
			}
			fld.Workers = workers
			Y, Mach := opt.freeStream(eng)
			if err = fld.FreeStream(opt.P, Y, Mach, opt.T, opt.Tve); err != nil {
				return err
			}
			fld.StoreOld()
			if every > 0 {
				for i := 0; i < ncells; i += every {
					fld.States[i].U[eng.Lay.ENE] *= 1e-3
				}
			}
			sum, err := fld.SetPrimVar(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "cells     : %d\n", sum.Ncells)
			fmt.Fprintf(w, "reverted  : %d\n", sum.Nreverted)
			fmt.Fprintf(w, "nonphys   : %d\n", sum.NnonPhys)
			for _, p := range []tne2.TvePath{tne2.PathNewton, tne2.PathBisection, tne2.PathDegenerate, tne2.PathClampLow, tne2.PathClampHigh} {
				fmt.Fprintf(w, "%-10s: %d\n", p, sum.Paths[p])
			}
			if metrics {
				mfs, err := reg.Gather()
				if err != nil {
					return err
				}
				for _, mf := range mfs {
					if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&ncells, "cells", 1000, "number of cells")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of goroutines (0 => number of CPUs)")
	cmd.Flags().IntVar(&every, "every", 0, "remove energy from every n-th cell (0 => none)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "print metrics in text format")
	return cmd
}

// list //////////////////////////////////////////////////////////////////////////////////////////

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "list",
		Short:             "List built-in mixtures and transport models",
		DisableAutoGenTag: true,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "mixtures  : %s\n", strings.Join(gas.Names(), " "))
			fmt.Fprintf(w, "transport : %s\n", strings.Join(mtrans.Names(), " "))
		},
	}
}
