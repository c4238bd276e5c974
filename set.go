/*
 * set.go, part of molset.
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
	"fmt"
	"math/rand"
	"sort"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//DefaultSeed is the seed NewRand uses when none is configured.
const DefaultSeed int64 = 901

//NewRand returns the seeded generator used for sampling. Draw order decides
//the sample, so a generator must not be shared between goroutines.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

//Options tunes set construction. The zero value is valid.
type Options struct {
	//Workers is the maximum number of structures resolved or centered at
	//the same time. Values below 1 mean 1. With more than one worker, the
	//Database must allow concurrent reads of distinct keys.
	Workers int

	//MaxAttempts bounds the draws made by SampleSet. Zero means
	//max(1000, 100*count).
	MaxAttempts int

	//Defer skips computing the centered tables at construction.
	Defer bool

	Metrics *Metrics
}

func (o *Options) workers() int {
	if o == nil || o.Workers < 1 {
		return 1
	}
	return o.Workers
}

func (o *Options) maxAttempts(count int) int {
	if o != nil && o.MaxAttempts > 0 {
		return o.MaxAttempts
	}
	return max(1000, 100*count)
}

func (o *Options) metrics() *Metrics {
	if o == nil {
		return nil
	}
	return o.Metrics
}

//Set is a collection of structures keyed by identifier. XYZ holds the
//centered table of each member, computed at construction unless
//Options.Defer was set.
type Set struct {
	Mols map[string]*Mol
	XYZ  map[string]*Table
	opts Options
}

//NewSet builds a Set from explicit keys. Keys that resolve to the same
//identifier collapse into one member; the key that comes last wins.
//Any key that cannot be resolved aborts the construction.
func NewSet(db Database, keys []Key, o *Options) (*Set, error) {
	S := newSet(o)
	mols := make([]*Mol, len(keys))
	var g errgroup.Group
	g.SetLimit(S.opts.workers())
	for i, k := range keys {
		g.Go(func() error {
			m, err := NewMol(db, k)
			if err != nil {
				return decorate(err, "NewSet")
			}
			mols[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, m := range mols {
		S.Mols[m.Identifier()] = m
	}
	S.finish()
	return S, nil
}

//SampleSet builds a Set of count structures drawn at random positions of db
//with rng, keeping only those in which every atom has a site. A structure
//drawn twice counts once. It fails with ErrInsufficientStructures when the
//database cannot provide count such structures within the allowed attempts.
func SampleSet(db Database, count int, rng *rand.Rand, o *Options) (*Set, error) {
	if count < 0 {
		return nil, newError(ErrBadCount, true, fmt.Sprintf("requested %d structures", count), "SampleSet")
	}
	S := newSet(o)
	n := db.Len()
	if count > n {
		L().Warn("sample larger than database", zap.Int("count", count), zap.Int("size", n))
		return nil, newError(ErrInsufficientStructures, true, fmt.Sprintf("requested %d structures from a database of %d", count, n), "SampleSet")
	}
	if rng == nil {
		rng = NewRand(DefaultSeed)
	}
	metrics := S.opts.metrics()
	maxAttempts := S.opts.maxAttempts(count)
	attempts := 0
	for ; len(S.Mols) < count && attempts < maxAttempts; attempts++ {
		i := rng.Intn(n)
		m, err := NewMol(db, Index(i))
		if err != nil {
			return nil, decorate(err, "SampleSet")
		}
		ok := m.AllAtomsHaveSites()
		metrics.draw(!ok)
		if !ok {
			L().Debug("rejected structure", zap.String("id", m.Identifier()), zap.Int("index", i))
			continue
		}
		S.Mols[m.Identifier()] = m
	}
	if len(S.Mols) < count {
		L().Warn("sampling gave up", zap.Int("count", count), zap.Int("found", len(S.Mols)), zap.Int("attempts", attempts))
		return nil, newError(ErrInsufficientStructures, true, fmt.Sprintf("requested %d structures, found %d fully located in %d attempts", count, len(S.Mols), attempts), "SampleSet")
	}
	L().Debug("sampled structures", zap.Int("count", count), zap.Int("attempts", attempts))
	S.finish()
	return S, nil
}

func newSet(o *Options) *Set {
	S := &Set{Mols: make(map[string]*Mol)}
	if o != nil {
		S.opts = *o
	}
	return S
}

func (S *Set) finish() {
	if !S.opts.Defer {
		S.XYZ = S.CenteredXYZ()
	}
}

//Len returns the number of structures in the set.
func (S *Set) Len() int {
	return len(S.Mols)
}

//IDs returns the identifiers of the members, sorted.
func (S *Set) IDs() []string {
	ids := lo.Keys(S.Mols)
	sort.Strings(ids)
	return ids
}

//CenteredXYZ centers every member in place and returns their tables.
func (S *Set) CenteredXYZ() map[string]*Table {
	return S.each(func(m *Mol) *Table {
		S.center(m)
		return m.XYZ()
	})
}

//RawXYZ returns the tables of the members as they are, without centering.
func (S *Set) RawXYZ() map[string]*Table {
	return S.each(func(m *Mol) *Table {
		return m.XYZ()
	})
}

//CenterAll re-centers every member in place, and returns what was done
//to each.
func (S *Set) CenterAll() map[string]CenterResult {
	ids := S.IDs()
	res := make([]CenterResult, len(ids))
	S.forEach(ids, func(i int, m *Mol) {
		res[i] = S.center(m)
	})
	return lo.SliceToMap(lo.Range(len(ids)), func(i int) (string, CenterResult) {
		return ids[i], res[i]
	})
}

func (S *Set) center(m *Mol) CenterResult {
	res := m.Center()
	S.opts.metrics().centered(res)
	return res
}

func (S *Set) each(f func(*Mol) *Table) map[string]*Table {
	ids := S.IDs()
	tables := make([]*Table, len(ids))
	S.forEach(ids, func(i int, m *Mol) {
		tables[i] = f(m)
	})
	return lo.SliceToMap(lo.Range(len(ids)), func(i int) (string, *Table) {
		return ids[i], tables[i]
	})
}

//forEach runs f on every member named in ids, with at most
//Options.Workers running at once. Members hold distinct records, so
//they can be mutated concurrently.
func (S *Set) forEach(ids []string, f func(int, *Mol)) {
	var g errgroup.Group
	g.SetLimit(S.opts.workers())
	for i, id := range ids {
		m := S.Mols[id]
		g.Go(func() error {
			f(i, m)
			return nil
		})
	}
	g.Wait()
}
