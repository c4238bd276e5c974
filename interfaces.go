/*
 * interfaces.go, part of molset.
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

import v3 "github.com/rmera/molset/v3"

//Database is the read-only structure repository molset consumes. It can be
//queried by identifier and by zero-based position.
type Database interface {

	//Molecule returns the record with the given identifier. The error
	//should satisfy errors.Is(err, ErrNotFound) if there is no such record.
	Molecule(id string) (Record, error)

	//Entry returns the ith entry of the database.
	Entry(i int) (Entry, error)

	//Len returns the number of entries in the database.
	Len() int
}

//Entry is a positional handle into a Database.
type Entry struct {
	Index      int
	Identifier string
}

//Record is the subset of a database record's capabilities that a Mol needs.
//Mutating methods act in place on the record.
type Record interface {
	Identifier() string

	//Atoms returns the current atoms of the record, in order.
	Atoms() []*Atom

	//Centroid returns a 1x3 matrix with the geometric center of the record.
	//It fails if no atom has a site.
	Centroid() (*v3.Matrix, error)

	//Translate shifts every located atom by the 1x3 vector vec.
	Translate(vec *v3.Matrix)

	//RemoveAtom deletes at from the record.
	RemoveAtom(at *Atom) error

	//AllAtomsHaveSites is true iff every atom of the record has coordinates.
	AllAtomsHaveSites() bool
}
