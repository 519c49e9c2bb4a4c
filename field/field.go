// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package field implements the parallel update of the states of a set of control volumes
package field

import (
	"context"
	"runtime"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gotne/mtrans"
	"github.com/cpmech/gotne/tne2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Field holds the states of all cells sharing one engine
type Field struct {
	Eng     *tne2.Engine       // engine
	States  []*tne2.State      // [ncells] states
	Workers int                // max number of goroutines; ≤ 0 => number of CPUs
	Log     logrus.FieldLogger // logger
	Metrics *Metrics           // metrics; may be nil
	nonPhys []bool             // [ncells] first conversion was non-physical
}

// Summary holds the outcome of one field update
type Summary struct {
	Ncells    int                  // number of cells
	Nreverted int                  // number of cells restored from backup
	NnonPhys  int                  // number of cells still non-physical after restoring
	Paths     map[tne2.TvePath]int // number of cells by Tve path
	Elapsed   time.Duration        // duration of update
}

// New allocates a new field
//
//	trans -- transport model; nil => inviscid cells
func New(eng *tne2.Engine, ncells int, trans mtrans.Model) (o *Field, err error) {
	if eng == nil {
		return nil, chk.Err("engine must be given")
	}
	if ncells < 1 {
		return nil, chk.Err("number of cells must be positive. ncells = %d is invalid", ncells)
	}
	o = new(Field)
	o.Eng = eng
	o.States = make([]*tne2.State, ncells)
	for i := 0; i < ncells; i++ {
		o.States[i] = eng.NewState(trans)
	}
	o.Log = eng.Log
	o.nonPhys = make([]bool, ncells)
	return
}

// FreeStream sets all cells to the same free-stream state and stores it as backup
func (o *Field) FreeStream(P float64, Y, Mach []float64, T, Tve float64) (err error) {
	for _, s := range o.States {
		if err = o.Eng.FreeStream(s.U, P, Y, Mach, T, Tve); err != nil {
			return
		}
		s.StoreOld()
	}
	return
}

// StoreOld backs up the conserved variables of all cells
func (o *Field) StoreOld() {
	for _, s := range o.States {
		s.StoreOld()
	}
}

// SetPrimVar updates the primitive variables of all cells in parallel
func (o *Field) SetPrimVar(ctx context.Context) (sum Summary, err error) {

	// workers
	start := time.Now()
	ncells := len(o.States)
	nw := o.Workers
	if nw <= 0 {
		nw = runtime.NumCPU()
	}
	if nw > ncells {
		nw = ncells
	}
	chunk := (ncells + nw - 1) / nw

	// run
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(nw)
	for a := 0; a < ncells; a += chunk {
		a := a
		b := a + chunk
		if b > ncells {
			b = ncells
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = chk.Err("cannot update cells [%d,%d):\n%v", a, b, r)
				}
			}()
			for i := a; i < b; i++ {
				if e := gctx.Err(); e != nil {
					return e
				}
				o.nonPhys[i] = o.States[i].SetPrimVar()
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return sum, chk.Err("field update failed:\n%v", err)
	}

	// summary
	sum.Ncells = ncells
	sum.Paths = make(map[tne2.TvePath]int)
	for i, s := range o.States {
		outcome := OutcomePhysical
		if o.nonPhys[i] {
			outcome = OutcomeReverted
			sum.Nreverted++
			if s.Res.NonPhys {
				outcome = OutcomeNonPhysical
				sum.NnonPhys++
			}
		}
		sum.Paths[s.Res.Path]++
		if o.Metrics != nil {
			o.Metrics.Cells.WithLabelValues(outcome).Inc()
			o.Metrics.Paths.WithLabelValues(s.Res.Path.String()).Inc()
		}
	}
	sum.Elapsed = time.Since(start)
	if o.Metrics != nil {
		o.Metrics.Duration.Observe(sum.Elapsed.Seconds())
	}
	if o.Log != nil {
		o.Log.WithFields(logrus.Fields{
			"cells":    sum.Ncells,
			"reverted": sum.Nreverted,
			"nonphys":  sum.NnonPhys,
			"workers":  nw,
			"elapsed":  sum.Elapsed,
		}).Info("field: primitive variables updated")
	}
	return
}
