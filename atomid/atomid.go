/*
 * atomid.go, part of gochem.
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

// Package atomid keeps the "residue_index atomname" labels used to identify
// atoms in diagnostics, so they are only formatted once per atom.
package atomid

import (
	"fmt"

	chem "github.com/rmera/gbchem"
)

// Cache memoizes atom labels for a topology. It is not safe for concurrent use.
// When the topology changes, the owner must call Reset.
type Cache struct {
	mol    chem.AtomResiduer
	labels []string
	set    []bool
}

// New returns an empty cache for labels of atoms in mol.
func New(mol chem.AtomResiduer) *Cache {
	return &Cache{mol: mol}
}

// Cap returns the number of atoms the cache can hold.
func (C *Cache) Cap() int {
	return len(C.labels)
}

// Reset drops all labels and leaves the cache with no capacity.
func (C *Cache) Reset() {
	C.labels = nil
	C.set = nil
}

// SetTopology resets the cache and makes it work on mol.
func (C *Cache) SetTopology(mol chem.AtomResiduer) {
	C.Reset()
	C.mol = mol
}

// EnsureCapacity makes sure the cache can hold maxAtoms atoms. If it
// can't, the storage is replaced with room for maxAtoms+1 atoms and all
// labels cached so far are lost.
func (C *Cache) EnsureCapacity(maxAtoms int) {
	if maxAtoms <= len(C.labels) && len(C.labels) > 0 {
		return
	}
	if maxAtoms <= 0 {
		return
	}
	C.labels = make([]string, maxAtoms+1)
	C.set = make([]bool, maxAtoms+1)
}

// Label returns "residue_resindex atomname" for the atom i. If pad is larger than
// the length of the label, the label is left-padded with blanks to pad characters.
// Labels for atoms within the capacity of the cache are stored, and later calls return
// the stored value, whatever pad is.
func (C *Cache) Label(i int, pad int) string {
	if i >= 0 && i < len(C.labels) && C.set[i] {
		return C.labels[i]
	}
	at := C.mol.Atom(i)
	l := fmt.Sprintf("%s_%d %s", C.mol.ResidueName(at.MolID), at.MolID, chem.SafeName(at.Name))
	if pad > 0 && len(l) < pad {
		l = fmt.Sprintf("%*s", pad, l)
	}
	if i >= 0 && i < len(C.labels) {
		C.labels[i] = l
		C.set[i] = true
	}
	return l
}

// Request behaves as the one-call interface some hosts expect: an index of -1
// resets the cache and returns an empty string. Otherwise, the cache is grown to
// maxAtoms if needed, and the label for atom i is returned.
func (C *Cache) Request(i, maxAtoms, pad int) string {
	if i == -1 {
		C.Reset()
		return ""
	}
	C.EnsureCapacity(maxAtoms)
	return C.Label(i, pad)
}
