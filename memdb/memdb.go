/*
 * memdb.go, part of molset.
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

//Package memdb is an in-memory, read-only molset.Database.
package memdb

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rmera/molset"
)

//DB keeps structure records in memory, in insertion order. Every lookup
//returns a fresh copy of the stored record, so callers can mutate what they
//get without changing the database. DB is safe for concurrent use.
type DB struct {
	mu    sync.RWMutex
	order []string
	mols  map[string]*molset.Molecule
}

//New returns a database holding mols.
func New(mols ...*molset.Molecule) *DB {
	D := &DB{mols: make(map[string]*molset.Molecule, len(mols))}
	for _, m := range mols {
		D.Add(m)
	}
	return D
}

//Add stores a copy of m. A record with an identifier already present
//replaces the stored one and keeps its position.
func (D *DB) Add(m *molset.Molecule) {
	D.mu.Lock()
	defer D.mu.Unlock()
	if _, ok := D.mols[m.ID]; !ok {
		D.order = append(D.order, m.ID)
	}
	D.mols[m.ID] = m.Copy()
}

//Molecule returns a copy of the record with identifier id.
func (D *DB) Molecule(id string) (molset.Record, error) {
	D.mu.RLock()
	defer D.mu.RUnlock()
	m, ok := D.mols[id]
	if !ok {
		return nil, errors.Wrapf(molset.ErrNotFound, "memdb: identifier %q", id)
	}
	return m.Copy(), nil
}

//Entry returns the ith entry.
func (D *DB) Entry(i int) (molset.Entry, error) {
	D.mu.RLock()
	defer D.mu.RUnlock()
	if i < 0 || i >= len(D.order) {
		return molset.Entry{}, errors.Wrap(molset.ErrIndexOutOfRange, fmt.Sprintf("memdb: index %d, size %d", i, len(D.order)))
	}
	return molset.Entry{Index: i, Identifier: D.order[i]}, nil
}

//Len returns the number of records.
func (D *DB) Len() int {
	D.mu.RLock()
	defer D.mu.RUnlock()
	return len(D.order)
}
