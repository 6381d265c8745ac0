/*
 * chem.go, part of gochem.
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

package chem

import (
	"fmt"
	"strings"
)

/**Note: Many functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

// MaxNameLen is the longest atom or residue name that is taken at face value.
// Longer names, as well as empty ones, are reported as NoName.
const MaxNameLen = 100

// NoName is returned by the name accessors when the host gave no usable name.
const NoName = "NA"

// SafeName returns name, or NoName if name is empty or longer than MaxNameLen.
func SafeName(name string) string {
	if name == "" || len(name) > MaxNameLen {
		return NoName
	}
	return name
}

// Atom contains the per-atom data of a topology, except for coordinates and
// forces, which are kept in v3.Matrix objects.
type Atom struct {
	Name    string
	ID      int //ID as given in the topology file (1-based)
	Type    string
	MolName string  //residue name
	MolID   int     //0-based index of the residue the atom belongs to
	Mass    float64 //amu
	Charge  float64 //elementary charges
}

/*****Topology type***/

// Topology contains the information about a molecular system which is not expected
// to change during a run: atoms, residue names and the bonded interaction records.
// Interaction records are kept as flat streams of ints, and each kind has a fixed stride
// (see InteractionKind). Atom indexes in the records are 0-based.
type Topology struct {
	Atoms    []*Atom
	Residues []string
	ilist    map[InteractionKind][]int
}

// NewTopology returns a topology with the given atoms and residue names.
// Neither slice is copied.
func NewTopology(atoms []*Atom, residues []string) *Topology {
	T := new(Topology)
	T.Atoms = atoms
	T.Residues = residues
	T.ilist = make(map[InteractionKind][]int)
	return T
}

// Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the Topology. Panics if
// out of range.
func (T *Topology) Atom(i int) *Atom {
	if i >= T.Len() || i < 0 {
		panic(ErrAtomOutOfRange)
	}
	return T.Atoms[i]
}

// NResidues returns the number of residues in the topology.
func (T *Topology) NResidues() int {
	return len(T.Residues)
}

// ResidueName returns the name of the rth residue, or NoName if it is not usable.
// Panics if r is out of range.
func (T *Topology) ResidueName(r int) string {
	if r >= len(T.Residues) || r < 0 {
		panic(ErrResidueOutOfRange)
	}
	return SafeName(T.Residues[r])
}

// AtomName returns the name of the ith atom, or NoName if it is not usable.
func (T *Topology) AtomName(i int) string {
	return SafeName(T.Atom(i).Name)
}

// AddInteraction appends a record of the given kind, with function type funct
// and the given atoms, to the topology.
// It panics if the number of atoms does not match the kind.
func (T *Topology) AddInteraction(kind InteractionKind, funct int, atoms ...int) {
	if len(atoms) != kind.Stride()-1 {
		panic(fmt.Sprintf("Topology: a %s record needs %d atoms, got %d", kind, kind.Stride()-1, len(atoms)))
	}
	if T.ilist == nil {
		T.ilist = make(map[InteractionKind][]int)
	}
	T.ilist[kind] = append(T.ilist[kind], funct)
	T.ilist[kind] = append(T.ilist[kind], atoms...)
}

// Interactions returns the record stream of the given kind. The slice
// belongs to the topology and should not be modified.
func (T *Topology) Interactions(kind InteractionKind) []int {
	return T.ilist[kind]
}

// Charges returns a slice with the partial charges of all atoms.
func (T *Topology) Charges() []float64 {
	ret := make([]float64, T.Len())
	for i, v := range T.Atoms {
		ret[i] = v.Charge
	}
	return ret
}

// String returns a short summary of the topology.
func (T *Topology) String() string {
	ret := make([]string, 0, 4)
	ret = append(ret, fmt.Sprintf("Atoms: %d Residues: %d", T.Len(), T.NResidues()))
	for _, k := range []InteractionKind{Bonds, Constraints, Settles} {
		ret = append(ret, fmt.Sprintf("%s: %d", k, len(T.ilist[k])/k.Stride()))
	}
	return strings.Join(ret, " ")
}

// InteractionKind identifies one of the record streams of a topology.
type InteractionKind int

const (
	// Bonds are regular chemical bonds. Records are (type, i, j).
	Bonds InteractionKind = iota
	// Constraints are bonds replaced by a distance constraint. Records are (type, i, j).
	Constraints
	// Settles are rigid three-site waters. Records are (type, oxygen), the hydrogens
	// being the two atoms right after the oxygen.
	Settles
)

// Stride returns the number of ints that form one record of the kind.
func (K InteractionKind) Stride() int {
	if K == Settles {
		return 2
	}
	return 3
}

func (K InteractionKind) String() string {
	switch K {
	case Bonds:
		return "bonds"
	case Constraints:
		return "constraints"
	case Settles:
		return "settles"
	}
	return fmt.Sprintf("kind(%d)", int(K))
}
