/*
 * chem.go, part of molset.
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
	"math"

	v3 "github.com/rmera/molset/v3"
)

//Atom contains the information for one atom of a structure record.
type Atom struct {
	Symbol string
	Label  string    //The symbol plus a serial number, as in CSD records.
	Coords []float64 //nil if the atom has no site in the record.
}

//HasSite returns true if the atom has a full set of finite cartesian
//coordinates. Partial or non-finite coordinates count as no site.
func (A *Atom) HasSite() bool {
	if A == nil || len(A.Coords) != 3 {
		return false
	}
	for _, v := range A.Coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := &Atom{Symbol: A.Symbol, Label: A.Label}
	if A.Coords != nil {
		N.Coords = append(make([]float64, 0, len(A.Coords)), A.Coords...)
	}
	return N
}

func (A *Atom) String() string {
	if !A.HasSite() {
		return fmt.Sprintf("%s (no site)", A.Symbol)
	}
	return fmt.Sprintf("%s %.4f %.4f %.4f", A.Symbol, A.Coords[0], A.Coords[1], A.Coords[2])
}

/**Type Molecule**/

//Molecule is an in-memory structure record. It implements Record, and is what
//the database backends in this module hand out. A Molecule is not safe for
//concurrent mutation.
type Molecule struct {
	ID    string
	atoms []*Atom
}

//NewMolecule returns a Molecule with the given identifier and atoms.
//The atoms are not copied.
func NewMolecule(id string, atoms []*Atom) *Molecule {
	return &Molecule{ID: id, atoms: atoms}
}

//Identifier returns the identifier of the record.
func (M *Molecule) Identifier() string {
	return M.ID
}

//Atoms returns the atoms of the molecule. The slice is a copy, the atoms
//are not, so it can be iterated while atoms are removed from M.
func (M *Molecule) Atoms() []*Atom {
	return append(make([]*Atom, 0, len(M.atoms)), M.atoms...)
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.atoms)
}

//Atom returns the Atom corresponding to the index i.
//Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Molecule: Requested Atom out of bounds")
	}
	return M.atoms[i]
}

//AppendAtom adds at to the end of the molecule.
func (M *Molecule) AppendAtom(at *Atom) {
	M.atoms = append(M.atoms, at)
}

//Copy returns a deep copy of the molecule.
func (M *Molecule) Copy() *Molecule {
	N := &Molecule{ID: M.ID, atoms: make([]*Atom, len(M.atoms))}
	for i, v := range M.atoms {
		N.atoms[i] = v.Copy()
	}
	return N
}

//Coords returns a matrix with the coordinates of the located atoms, and the
//indexes of those atoms in the molecule. The matrix is nil if no atom has a site.
func (M *Molecule) Coords() (*v3.Matrix, []int) {
	index := make([]int, 0, len(M.atoms))
	for i, v := range M.atoms {
		if v.HasSite() {
			index = append(index, i)
		}
	}
	if len(index) == 0 {
		return nil, index
	}
	coords := v3.Zeros(len(index))
	for row, i := range index {
		c := M.atoms[i].Coords
		coords.Set(row, 0, c[0])
		coords.Set(row, 1, c[1])
		coords.Set(row, 2, c[2])
	}
	return coords, index
}

//Centroid returns the geometric center of the located atoms of M.
func (M *Molecule) Centroid() (*v3.Matrix, error) {
	coords, _ := M.Coords()
	if coords == nil {
		return nil, newError(ErrNoSites, false, fmt.Sprintf("Molecule %s", M.ID), "Molecule.Centroid")
	}
	c, err := coords.Centroid()
	if err != nil {
		return nil, newError(err, false, fmt.Sprintf("Molecule %s", M.ID), "Molecule.Centroid")
	}
	return c, nil
}

//Translate adds the 1x3 vector vec to the coordinates of every located atom.
func (M *Molecule) Translate(vec *v3.Matrix) {
	coords, index := M.Coords()
	if coords == nil {
		return
	}
	coords.AddVec(coords, vec)
	for row, i := range index {
		copy(M.atoms[i].Coords, coords.VecView(row).RawRowView(0))
	}
}

//RemoveAtom deletes at from the molecule. Atoms are compared by identity.
func (M *Molecule) RemoveAtom(at *Atom) error {
	for i, v := range M.atoms {
		if v == at {
			M.atoms = append(M.atoms[:i], M.atoms[i+1:]...)
			return nil
		}
	}
	label := "<nil>"
	if at != nil {
		label = at.Label
	}
	return newError(ErrAtomNotFound, false, fmt.Sprintf("Molecule %s: atom %s", M.ID, label), "Molecule.RemoveAtom")
}

//AllAtomsHaveSites returns true if every atom in M has coordinates.
//It is true for a molecule without atoms.
func (M *Molecule) AllAtomsHaveSites() bool {
	for _, v := range M.atoms {
		if !v.HasSite() {
			return false
		}
	}
	return true
}
