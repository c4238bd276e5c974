/*
 * fixtures_test.go, part of molset.
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

package molset_test

import (
	"fmt"

	"github.com/rmera/molset"
	"github.com/rmera/molset/memdb"
)

//at returns an atom with the given coordinates, or without a site if
//none are given.
func at(symbol string, coords ...float64) *molset.Atom {
	return &molset.Atom{Symbol: symbol, Label: symbol + "1", Coords: coords}
}

func testMolecules() []*molset.Molecule {
	return []*molset.Molecule{
		molset.NewMolecule("AABHTZ", []*molset.Atom{at("C", 1, 2, 3), at("N", 3, 2, 1), at("O", 2, 2, 2)}),
		molset.NewMolecule("ABEBUF", []*molset.Atom{at("C"), at("N", 1, 2, 3)}),
		molset.NewMolecule("ACANIL", []*molset.Atom{at("H", 0.5, -1.25, 2), at("H", 1.5, 1.25, -2.0001)}),
		molset.NewMolecule("ACEMID", []*molset.Atom{at("C"), at("O")}),
		molset.NewMolecule("ADMHEP", []*molset.Atom{at("C", 0.1234, 5.4321, -2.2), at("C", 1.7, -0.3333, 0.25), at("Cl", -3.01, 2.0002, 1.1111), at("S", 10.5, 7.25, -4.125)}),
	}
}

//testDB returns a small database:
//AABHTZ, ACANIL and ADMHEP are fully located, ABEBUF has one atom
//without a site, ACEMID has no sites at all.
func testDB() *memdb.DB {
	return memdb.New(testMolecules()...)
}

//bigMolecules returns n structures; every third one has an atom without a site.
func bigMolecules(n int) []*molset.Molecule {
	mols := make([]*molset.Molecule, n)
	for i := range mols {
		f := float64(i)
		atoms := []*molset.Atom{at("C", f, 0.5*f, -f), at("O", f+1.25, 2, 0.75*f)}
		if i%3 == 0 {
			atoms = append(atoms, at("H"))
		}
		mols[i] = molset.NewMolecule(fmt.Sprintf("MOL%03d", i), atoms)
	}
	return mols
}

func bigDB(n int) *memdb.DB {
	return memdb.New(bigMolecules(n)...)
}
