/*
 * mol.go, part of molset.
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

	v3 "github.com/rmera/molset/v3"
	"go.uber.org/zap"
)

//Decimals is the number of decimal places coordinates are rounded to, both
//in tables and in centering translations.
const Decimals = 4

//Mol wraps one structure record from a Database. The record's capabilities
//(atoms, centroid, translation, atom removal) are reachable directly on the
//Mol, and act on that record in place. A Mol never copies its record.
type Mol struct {
	Record
	resolved ResolutionKind
}

//NewMol resolves k against db and wraps the resulting record.
//The error names k when the key cannot be resolved.
func NewMol(db Database, k Key) (*Mol, error) {
	r := Resolve(db, k)
	switch {
	case r.Kind == LookupFailed:
		return nil, newError(r.Err, true, fmt.Sprintf("lookup of key %s failed", k), "NewMol")
	case !r.OK():
		return nil, newError(r.Err, true, fmt.Sprintf("no structure for key %s", k), "NewMol")
	}
	return &Mol{Record: r.Record, resolved: r.Kind}, nil
}

//WrapMol wraps an already obtained record.
func WrapMol(r Record) *Mol {
	return &Mol{Record: r, resolved: ByIdentifier}
}

//ResolvedBy tells whether the Mol was obtained by identifier or by position.
func (M *Mol) ResolvedBy() ResolutionKind {
	return M.resolved
}

//RemoveUnlocated removes from the record every atom without coordinates
//and returns how many were removed. Calling it again is a no-op.
func (M *Mol) RemoveUnlocated() (int, error) {
	removed := 0
	for _, at := range M.Atoms() {
		if at.HasSite() {
			continue
		}
		if err := M.RemoveAtom(at); err != nil {
			return removed, decorate(err, "Mol.RemoveUnlocated")
		}
		removed++
	}
	return removed, nil
}

//CenterStatus is the outcome of Mol.Center.
type CenterStatus int

const (
	Centered CenterStatus = iota
	LeftUnmodified
)

func (c CenterStatus) String() string {
	if c == Centered {
		return "Centered"
	}
	return "LeftUnmodified"
}

//CenterResult reports what Center did. Shift is the translation applied
//when Status is Centered; Reason is why nothing was applied otherwise.
type CenterResult struct {
	Status  CenterStatus
	Removed int
	Shift   [3]float64
	Reason  error
}

//Center removes the atoms without sites and then translates the record so
//its centroid lies at the origin. The translation components are rounded
//to Decimals places. If the centroid cannot be obtained (e.g. no atoms
//remain), the record is left filtered but untranslated and the result says
//so. Center never returns an error.
func (M *Mol) Center() CenterResult {
	removed, err := M.RemoveUnlocated()
	if err != nil {
		return CenterResult{Status: LeftUnmodified, Removed: removed, Reason: err}
	}
	c, err := M.Centroid()
	if err != nil {
		L().Debug("structure left uncentered", zap.String("id", M.Identifier()), zap.Error(err))
		return CenterResult{Status: LeftUnmodified, Removed: removed, Reason: err}
	}
	shift := v3.Zeros(1)
	shift.SubVec(shift, c)
	shift.Round(shift, Decimals)
	M.Translate(shift)
	return CenterResult{Status: Centered, Removed: removed, Shift: shift.Row3(0)}
}

//XYZ returns a snapshot of the current atoms of the record as a Table.
//Atoms without sites are included, with null coordinates.
func (M *Mol) XYZ() *Table {
	return NewTable(M.Identifier(), M.Atoms())
}

func (M *Mol) String() string {
	return fmt.Sprintf("Mol %s (%d atoms)", M.Identifier(), len(M.Atoms()))
}
