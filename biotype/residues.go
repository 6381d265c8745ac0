/*
 * residues.go, part of gochem.
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
	"fmt"
	"sort"
	"strings"
)

// NotSet is the canonical name returned for residues that are not in the map.
const NotSet = "NotSet"

// WaterResidue is the canonical name for the solvent residue.
const WaterResidue = "AMOEBA_Water"

// ResidueEntry is one line of the residue-name map. If Override is not empty,
// it replaces Source in the name of the N-terminal variant.
type ResidueEntry struct {
	Source    string
	Canonical string
	Override  string
}

// DefaultResidueEntries returns the GROMACS to Tinker residue-name entries.
func DefaultResidueEntries() []ResidueEntry {
	return []ResidueEntry{
		{"ALA", "Alanine", ""},
		{"ARG", "Arginine", ""},
		{"ASN", "Asparagine", ""},
		{"ASP", "Aspartic_Acid", ""},
		{"CYS", "Cysteine_(-SH)", ""},
		{"CYX", "Cystine_(-SS-)", ""},
		{"CYS2", "Cystine_(-SS-)", ""},
		{"GLU", "Glutamic_Acid", ""},
		{"GLN", "Glutamine", ""},
		{"GLY", "Glycine", ""},
		{"HIP", "Histidine_(+)", ""},
		{"HID", "Histidine_(HD)", ""},
		{"HIE", "Histidine_(HE)", ""},
		{"ILE", "Isoleucine", ""},
		{"LEU", "Leucine", ""},
		{"NLE", "Lysine", "LYS"},
		{"LYS", "Lysine", ""},
		{"LYN", "Lysine", "LYS"},
		{"LYSH", "Lysine", "LYS"},
		{"LYP", "Lysine", "LYS"},
		{"MET", "Methionine", ""},
		{"AIB", "MethylAlanine_(AIB)", ""},
		{"PHE", "Phenylalanine", ""},
		{"PRO", "Proline", ""},
		{"SER", "Serine", ""},
		{"THR", "Threonine", ""},
		{"TRP", "Tryptophan", ""},
		{"TYR", "Tyrosine", ""},
		{"VAL", "Valine", ""},
		{"SOL", WaterResidue, ""},
	}
}

// ResidueNames maps GROMACS residue names to Tinker residue names.
// It is not modified after construction.
type ResidueNames struct {
	m map[string]string
}

// NewResidueNames builds the map from the given entries. For each entry,
// N<Source> maps to N-Terminal_<Override or Source>, and C<Source> maps to C-Terminal_<Source>.
// Later entries replace earlier ones with the same key.
func NewResidueNames(entries []ResidueEntry) *ResidueNames {
	R := &ResidueNames{m: make(map[string]string, 3*len(entries))}
	for _, e := range entries {
		R.m[e.Source] = e.Canonical
		nterm := e.Source
		if e.Override != "" {
			nterm = e.Override
		}
		R.m["N"+e.Source] = "N-Terminal_" + nterm
		R.m["C"+e.Source] = "C-Terminal_" + e.Source
	}
	return R
}

// Canonical returns the Tinker name for the GROMACS residue name, or NotSet.
func (R *ResidueNames) Canonical(name string) string {
	if c, ok := R.m[name]; ok {
		return c
	}
	return NotSet
}

// Len returns the number of names in the map.
func (R *ResidueNames) Len() int {
	return len(R.m)
}

// String returns the contents of the map, one numbered pair per line, sorted by source name.
func (R *ResidueNames) String() string {
	keys := make([]string, 0, len(R.m))
	for k := range R.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("ResidueNameMap\n")
	for i, k := range keys {
		fmt.Fprintf(&b, "%d <%s> <%s>\n", i+1, k, R.m[k])
	}
	return b.String()
}
