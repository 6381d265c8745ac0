/*
 * scan.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

package biotype

import (
	chem "github.com/rmera/gbchem"
)

// WaterOxygen is the atom name that always starts a new residue.
const WaterOxygen = "OW"

// residueWalker infers where residues start from the atom names alone. A residue starts
// when an atom has the same name as the first atom of the residue currently open, or
// when it is a water oxygen. The residue index never goes past the last residue.
type residueWalker struct {
	nres    int
	current int
	first   string
	started bool
}

// next returns the residue index for the atom named name, and whether the atom
// opened a new residue.
func (W *residueWalker) next(name string) (int, bool) {
	if !W.started {
		W.started = true
		W.first = name
		return W.current, true
	}
	if name == W.first || name == WaterOxygen {
		W.current++
		if W.current >= W.nres {
			W.current = W.nres - 1
		}
		W.first = name
		return W.current, true
	}
	return W.current, false
}

// Assignment contains, for each atom of a topology, the atom name used for the biotype lookup,
// the GROMACS and Tinker names of the residue it was assigned to, and its biotype.
type Assignment struct {
	AtomNames     []string
	Residues      []string
	TinkerResidue []string
	Biotypes      []int
}

// Len returns the number of atoms in the assignment.
func (A *Assignment) Len() int {
	return len(A.Biotypes)
}

// Unresolved returns the indexes of the atoms that got no biotype.
func (A *Assignment) Unresolved() []int {
	ret := make([]int, 0)
	for i, v := range A.Biotypes {
		if v == Unresolved {
			ret = append(ret, i)
		}
	}
	return ret
}

// Biotypes walks over all atoms in mol, assigning them to residues
// by their names (see the residue boundary rule of AtomResidueNames), mapping their names to Tinker's and resolving
// their biotypes. Unresolved atoms get the biotype Unresolved, and the walk continues.
func (R *Resolver) Biotypes(mol chem.AtomResiduer) *Assignment {
	n := mol.Len()
	A := &Assignment{
		AtomNames:     make([]string, n),
		Residues:      make([]string, n),
		TinkerResidue: make([]string, n),
		Biotypes:      make([]int, n),
	}
	if n == 0 || mol.NResidues() == 0 {
		for i := range A.Biotypes {
			A.Biotypes[i] = Unresolved
		}
		return A
	}
	w := &residueWalker{nres: mol.NResidues()}
	var resname, tinker string
	for i := 0; i < n; i++ {
		name := chem.SafeName(mol.Atom(i).Name)
		r, opened := w.next(name)
		if opened {
			resname = mol.ResidueName(r)
			tinker = R.residues.Canonical(resname)
		}
		tname := TinkerAtomName(name, r)
		A.AtomNames[i] = tname
		A.Residues[i] = resname
		A.TinkerResidue[i] = tinker
		A.Biotypes[i] = R.Resolve(resname, tname)
	}
	return A
}

// AtomResidueNames returns, for each atom in mol, the name of the residue it belongs to and
// the 1-based index of that residue. Residues are inferred from the atom names alone:
// a new residue starts when an atom has the name of the first atom in the residue currently
// open, or when it is a water oxygen (OW).
func AtomResidueNames(mol chem.AtomResiduer) ([]string, []int) {
	n := mol.Len()
	names := make([]string, n)
	indexes := make([]int, n)
	if mol.NResidues() == 0 {
		return names, indexes
	}
	w := &residueWalker{nres: mol.NResidues()}
	var resname string
	for i := 0; i < n; i++ {
		r, opened := w.next(chem.SafeName(mol.Atom(i).Name))
		if opened {
			resname = mol.ResidueName(r)
		}
		names[i] = resname
		indexes[i] = r + 1
	}
	return names, indexes
}
