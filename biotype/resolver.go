/*
 * resolver.go, part of gochem.
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
	"strings"

	chem "github.com/rmera/gbchem"
	"go.uber.org/zap"
)

// Resolver maps residue/atom name pairs to biotypes. It only reads its
// dictionaries, so the same Resolver always gives the same answer for a given pair.
type Resolver struct {
	residues *ResidueNames
	table    Table
	log      *zap.Logger
}

// NewResolver returns a Resolver using the default residue-name map and the
// embedded table for the force field ff.
func NewResolver(ff ForceField, lg *zap.Logger) (*Resolver, error) {
	t, err := NewTable(ff)
	if err != nil {
		err.(chem.Error).Decorate("NewResolver")
		return nil, err
	}
	return NewResolverWith(NewResidueNames(DefaultResidueEntries()), t, lg), nil
}

// NewResolverWith returns a Resolver using the given dictionaries, which must not be modified afterwards.
func NewResolverWith(residues *ResidueNames, table Table, lg *zap.Logger) *Resolver {
	if residues == nil || table == nil {
		panic("biotype: NewResolverWith needs a residue-name map and a table")
	}
	return &Resolver{residues: residues, table: table, log: chem.LoggerOrNop(lg)}
}

// ResidueNames returns the residue-name map of the resolver.
func (R *Resolver) ResidueNames() *ResidueNames {
	return R.residues
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (R *Resolver) probe(residue, atom string) (int, bool) {
	return R.table.Biotype(residue + "_" + atom)
}

// Lookup returns the biotype of the atom named atom in the Tinker residue residue.
// If the pair is not in the table, these changes to the atom name are made in order,
// and the table probed again after each one that changes the name:
//
//	names of 4 or more characters ending in 2 digits lose the last one
//	a lone "H" becomes "HN", except in water
//	names with 'W' as second character are truncated to their first character
//	a trailing digit is dropped
//
// If nothing is found, Unresolved is returned.
func (R *Resolver) Lookup(residue, atom string) int {
	if b, ok := R.probe(residue, atom); ok {
		return b
	}
	name := atom
	try := func(newname string) (int, bool) {
		if newname == name {
			return Unresolved, false
		}
		name = newname
		return R.probe(residue, name)
	}
	if l := len(name); l > 3 && isDigit(name[l-1]) && isDigit(name[l-2]) {
		if b, ok := try(name[:l-1]); ok {
			return b
		}
	}
	if name == "H" && residue != WaterResidue {
		if b, ok := try("HN"); ok {
			return b
		}
	}
	if len(name) > 1 && name[1] == 'W' {
		if b, ok := try(name[:1]); ok {
			return b
		}
	}
	if l := len(name); l > 0 && isDigit(name[l-1]) {
		if b, ok := try(name[:l-1]); ok {
			return b
		}
	}
	return Unresolved
}

// Resolve returns the biotype of the atom atom (already in Tinker naming, see TinkerAtomName) in the
// GROMACS residue residue. If the residue name, mapped to Tinker's, gives no biotype and it has
// exactly 4 characters, its first character is taken as a terminal/protonation prefix,
// removed, and the lookup is repeated once.
// Pairs that remain unresolved are reported to the logger only if residue is shorter than
// 4 characters.
func (R *Resolver) Resolve(residue, atom string) int {
	b := R.Lookup(R.residues.Canonical(residue), atom)
	if b == Unresolved && len(residue) == 4 {
		b = R.Lookup(R.residues.Canonical(residue[1:]), atom)
	}
	if b == Unresolved && len(residue) < 4 {
		R.log.Warn("missing biotype", zap.String("residue", residue), zap.String("tinkerResidue", R.residues.Canonical(residue)), zap.String("atom", atom))
	}
	return b
}

// TinkerAtomName returns the name that the GROMACS atom name should have in the
// Tinker tables. residue is the index of the residue the atom is in. Only the first of these
// rules that applies is used:
//
//	names starting with "OC" (carboxylate oxygens) become "OXT"
//	in the first residue, names starting with H1, H2 or H3 get an N as second character (H1 becomes HN)
//	solvent names, with a 'W' after an 'O' or 'H', are truncated to their first character
func TinkerAtomName(name string, residue int) string {
	switch {
	case strings.HasPrefix(name, "OC"):
		return "OXT"
	case residue == 0 && len(name) > 1 && name[0] == 'H' && (name[1] == '1' || name[1] == '2' || name[1] == '3'):
		return name[:1] + "N" + name[2:]
	case len(name) > 1 && name[1] == 'W' && (name[0] == 'O' || name[0] == 'H'):
		return name[:1]
	}
	return name
}
