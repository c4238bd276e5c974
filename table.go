/*
 * table.go, part of molset.
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
	"encoding/json"
	"fmt"
	"strings"

	v3 "github.com/rmera/molset/v3"
	"gonum.org/v1/gonum/floats/scalar"
)

//Row is one atom of a Table. When Located is false, X, Y and Z are
//meaningless and are reported as null.
type Row struct {
	Symbol  string
	X, Y, Z float64
	Located bool
}

type jsonRow struct {
	Symbol string   `json:"element"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Z      *float64 `json:"z"`
}

func (R Row) MarshalJSON() ([]byte, error) {
	j := jsonRow{Symbol: R.Symbol}
	if R.Located {
		x, y, z := R.X, R.Y, R.Z
		j.X, j.Y, j.Z = &x, &y, &z
	}
	return json.Marshal(j)
}

func (R *Row) UnmarshalJSON(b []byte) error {
	var j jsonRow
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	*R = Row{Symbol: j.Symbol}
	if j.X != nil && j.Y != nil && j.Z != nil {
		R.X, R.Y, R.Z, R.Located = *j.X, *j.Y, *j.Z, true
	}
	return nil
}

//Table is a snapshot of the atoms of a structure, in the style of an xyz
//file: element symbol and cartesian coordinates, rounded to Decimals places.
//It is not linked to the record it was taken from.
type Table struct {
	ID   string `json:"id"`
	Rows []Row  `json:"rows"`
}

//NewTable builds a Table from atoms, one row per atom, in order.
func NewTable(id string, atoms []*Atom) *Table {
	T := &Table{ID: id, Rows: make([]Row, len(atoms))}
	for i, at := range atoms {
		T.Rows[i] = Row{Symbol: at.Symbol}
		if !at.HasSite() {
			continue
		}
		T.Rows[i].X = scalar.Round(at.Coords[0], Decimals)
		T.Rows[i].Y = scalar.Round(at.Coords[1], Decimals)
		T.Rows[i].Z = scalar.Round(at.Coords[2], Decimals)
		T.Rows[i].Located = true
	}
	return T
}

//Len returns the number of rows.
func (T *Table) Len() int {
	return len(T.Rows)
}

//Matrix returns the coordinates of the located rows. It returns nil if no
//row is located.
func (T *Table) Matrix() *v3.Matrix {
	data := make([]float64, 0, 3*len(T.Rows))
	for _, r := range T.Rows {
		if r.Located {
			data = append(data, r.X, r.Y, r.Z)
		}
	}
	m, err := v3.NewMatrix(data)
	if err != nil {
		return nil
	}
	return m
}

//Centroid returns the mean of the located rows.
func (T *Table) Centroid() (*v3.Matrix, error) {
	m := T.Matrix()
	if m == nil {
		return nil, newError(ErrNoSites, false, fmt.Sprintf("Table %s", T.ID), "Table.Centroid")
	}
	return m.Centroid()
}

//Equal returns true if both tables have the same rows.
func (T *Table) Equal(O *Table) bool {
	if T == nil || O == nil {
		return T == O
	}
	if len(T.Rows) != len(O.Rows) {
		return false
	}
	for i, r := range T.Rows {
		if r != O.Rows[i] {
			return false
		}
	}
	return true
}

//String returns the table with the columns of an xyz file.
func (T *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%s\n", len(T.Rows), T.ID)
	for _, r := range T.Rows {
		if !r.Located {
			fmt.Fprintf(&b, "%-2s %10s %10s %10s\n", r.Symbol, "-", "-", "-")
			continue
		}
		fmt.Fprintf(&b, "%-2s %10.4f %10.4f %10.4f\n", r.Symbol, r.X, r.Y, r.Z)
	}
	return b.String()
}
