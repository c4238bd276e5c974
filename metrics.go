/*
 * metrics.go, part of molset.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package molset

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const metricsNamespace = "molset"

//Metrics holds the counters updated while sets are built. A nil *Metrics
//is valid and records nothing.
type Metrics struct {
	SampleDraws      prometheus.Counter
	SampleRejections prometheus.Counter
	CenterFailures   prometheus.Counter
	AtomsRemoved     prometheus.Counter
}

//NewMetrics creates the counters and registers them with reg, if reg is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SampleDraws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sample_draws_total",
			Help:      "Random database positions drawn while sampling structures.",
		}),
		SampleRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sample_rejections_total",
			Help:      "Sampled structures rejected for having atoms without sites.",
		}),
		CenterFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "center_failures_total",
			Help:      "Structures left untranslated because their centroid could not be computed.",
		}),
		AtomsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "atoms_removed_total",
			Help:      "Atoms without sites removed from structures.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.SampleDraws, m.SampleRejections, m.CenterFailures, m.AtomsRemoved)
	}
	return m
}

func (m *Metrics) draw(rejected bool) {
	if m == nil {
		return
	}
	m.SampleDraws.Inc()
	if rejected {
		m.SampleRejections.Inc()
	}
}

func (m *Metrics) centered(res CenterResult) {
	if m == nil {
		return
	}
	m.AtomsRemoved.Add(float64(res.Removed))
	if res.Status != Centered {
		m.CenterFailures.Inc()
	}
}

//Snapshot returns the current value of every counter, keyed by metric name.
func (m *Metrics) Snapshot() map[string]float64 {
	ret := make(map[string]float64)
	if m == nil {
		return ret
	}
	counters := map[string]prometheus.Counter{
		"sample_draws_total":      m.SampleDraws,
		"sample_rejections_total": m.SampleRejections,
		"center_failures_total":   m.CenterFailures,
		"atoms_removed_total":     m.AtomsRemoved,
	}
	for name, c := range counters {
		var pb dto.Metric
		if err := c.Write(&pb); err != nil {
			continue
		}
		ret[metricsNamespace+"_"+name] = pb.GetCounter().GetValue()
	}
	return ret
}
