// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"github.com/cpmech/gosl/chk"
	"github.com/prometheus/client_golang/prometheus"
)

// outcomes of the update of one cell
const (
	OutcomePhysical    = "physical"    // first conversion is physical
	OutcomeReverted    = "reverted"    // restored from the backup and then physical
	OutcomeNonPhysical = "nonphysical" // non-physical even after restoring the backup
)

// Metrics holds the counters of the field updates
type Metrics struct {
	Cells    *prometheus.CounterVec // number of cell updates by outcome
	Paths    *prometheus.CounterVec // number of cell updates by Tve path
	Duration prometheus.Histogram   // duration of field updates [s]
}

// NewMetrics allocates metrics and registers them with reg; reg may be nil
func NewMetrics(reg prometheus.Registerer) (o *Metrics, err error) {
	o = &Metrics{
		Cells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gotne",
			Subsystem: "field",
			Name:      "cells_total",
			Help:      "Number of cell updates by outcome.",
		}, []string{"outcome"}),
		Paths: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gotne",
			Subsystem: "field",
			Name:      "tve_paths_total",
			Help:      "Number of cell updates by path of the Tve solver.",
		}, []string{"path"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gotne",
			Subsystem: "field",
			Name:      "update_seconds",
			Help:      "Duration of field updates.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
	if reg == nil {
		return
	}
	for _, c := range []prometheus.Collector{o.Cells, o.Paths, o.Duration} {
		if err = reg.Register(c); err != nil {
			return nil, chk.Err("cannot register field metrics:\n%v", err)
		}
	}
	return
}
