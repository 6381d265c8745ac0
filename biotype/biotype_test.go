/*
 * biotype_test.go, part of gochem.
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
	"testing"

	chem "github.com/rmera/gbchem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func mustResolver(Te *testing.T, ff ForceField, lg *zap.Logger) *Resolver {
	R, err := NewResolver(ff, lg)
	require.NoError(Te, err)
	return R
}

// a tiny peptide (NALA-CGLY) and two waters
func peptide() *chem.Topology {
	names := []string{"N", "H1", "H2", "H3", "CA", "HA", "CB", "HB1", "HB2", "HB3", "C", "O",
		"N", "H", "CA", "HA1", "HA2", "C", "OC1", "OC2",
		"OW", "HW1", "HW2", "OW", "HW1", "HW2"}
	resid := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 2, 2, 2, 3, 3, 3}
	ats := make([]*chem.Atom, len(names))
	for i, v := range names {
		ats[i] = &chem.Atom{Name: v, ID: i + 1, MolID: resid[i]}
	}
	return chem.NewTopology(ats, []string{"NALA", "CGLY", "SOL", "SOL"})
}

func TestTinkerAtomName(Te *testing.T) {
	cases := []struct {
		name string
		res  int
		want string
	}{
		{"OC1", 5, "OXT"},
		{"OC2", 0, "OXT"},
		{"H1", 0, "HN"},
		{"H3", 0, "HN"},
		{"H1", 1, "H1"},
		{"OW", 3, "O"},
		{"HW2", 3, "H"},
		{"CA", 0, "CA"},
		{"H", 0, "H"},
	}
	for _, c := range cases {
		assert.Equal(Te, c.want, TinkerAtomName(c.name, c.res), "%s in residue %d", c.name, c.res)
	}
}

func TestResidueNames(Te *testing.T) {
	R := NewResidueNames(DefaultResidueEntries())
	assert.Equal(Te, 3*len(DefaultResidueEntries()), R.Len())
	assert.Equal(Te, "Histidine_(+)", R.Canonical("HIP"))
	assert.Equal(Te, "Cystine_(-SS-)", R.Canonical("CYS2"))
	assert.Equal(Te, "N-Terminal_LEU", R.Canonical("NLEU"))
	assert.Equal(Te, "C-Terminal_LEU", R.Canonical("CLEU"))
	assert.Equal(Te, "N-Terminal_LYS", R.Canonical("NLYN"))
	assert.Equal(Te, "C-Terminal_LYN", R.Canonical("CLYN"))
	assert.Equal(Te, WaterResidue, R.Canonical("SOL"))
	assert.Equal(Te, NotSet, R.Canonical("XYZ"))
	s := R.String()
	assert.True(Te, strings.HasPrefix(s, "ResidueNameMap\n1 <AIB> <MethylAlanine_(AIB)>\n"), s)
	assert.Contains(Te, s, "<NLE> <Lysine>")
}

func TestTables(Te *testing.T) {
	amber, err := NewTable(Amber)
	require.NoError(Te, err)
	assert.Len(Te, amber, 912)
	b, ok := amber.Biotype("Leucine_CA")
	assert.True(Te, ok)
	assert.Equal(Te, 28, b)
	amoeba, err := NewTable(Amoeba)
	require.NoError(Te, err)
	assert.Len(Te, amoeba, 650)
	assert.Equal(Te, 202, amoeba["AMOEBA_Water_O"])
	ff, err := ParseForceField("AMOEBA")
	require.NoError(Te, err)
	assert.Equal(Te, Amoeba, ff)
	_, err = ParseForceField("charmm")
	assert.Error(Te, err)
	_, err = ReadTable(strings.NewReader("# comment\nRes_A 1\nRes_B two\n"))
	assert.Error(Te, err)
	t, err := ReadTable(strings.NewReader("# comment\n\nRes_A 1\n"))
	require.NoError(Te, err)
	assert.Equal(Te, Table{"Res_A": 1}, t)
}

func TestLookupCascade(Te *testing.T) {
	table := Table{"Res_HB1": 5, "Res_HN": 6, "Res_O": 7, "Res_CD": 8, "AMOEBA_Water_HN": 9, "Res_HB12": 10}
	R := NewResolverWith(NewResidueNames(DefaultResidueEntries()), table, nil)
	assert.Equal(Te, 10, R.Lookup("Res", "HB12"))
	assert.Equal(Te, 5, R.Lookup("Res", "HB13")) //two trailing digits
	assert.Equal(Te, 6, R.Lookup("Res", "H"))
	assert.Equal(Te, Unresolved, R.Lookup(WaterResidue, "H"))
	assert.Equal(Te, 7, R.Lookup("Res", "OW1")) //solvent alias
	assert.Equal(Te, 8, R.Lookup("Res", "CD2")) //trailing digit
	assert.Equal(Te, Unresolved, R.Lookup("Res", "ZZ"))
	assert.Equal(Te, Unresolved, R.Lookup("Res", ""))
}

func TestResolve(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	R := mustResolver(Te, Amber, zap.New(core))
	assert.Equal(Te, 28, R.Resolve("LEU", "CA"))
	assert.Equal(Te, 369, R.Resolve("NLEU", "CA"))
	assert.Equal(Te, 1, R.Resolve("GLY", "N"))
	//same answer every time
	for i := 0; i < 3; i++ {
		assert.Equal(Te, 28, R.Resolve("LEU", "CA"))
	}
	assert.Equal(Te, 0, logs.Len())
	assert.Equal(Te, Unresolved, R.Resolve("XYZ", "CA"))
	assert.Equal(Te, 1, logs.FilterMessage("missing biotype").Len())
	//4-letter residues are retried without their first letter, and not reported.
	assert.Equal(Te, Unresolved, R.Resolve("NXYZ", "CA"))
	assert.Equal(Te, 1, logs.Len())
	assert.Equal(Te, 28, R.Resolve("XLEU", "CA"))
}

func TestPrefixFallback(Te *testing.T) {
	//amoeba has the same biotype for the terminal and regular residue.
	R := mustResolver(Te, Amoeba, nil)
	assert.Equal(Te, R.Resolve("LEU", "CA"), R.Resolve("NLEU", "CA"))
	//with no terminal entries, NLEU can only be resolved by dropping the N.
	R = NewResolverWith(NewResidueNames(DefaultResidueEntries()), Table{"Leucine_CA": 28}, nil)
	assert.Equal(Te, 28, R.Resolve("NLEU", "CA"))
	assert.Equal(Te, R.Resolve("LEU", "CA"), R.Resolve("NLEU", "CA"))
}

func TestBiotypesScan(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	R := mustResolver(Te, Amber, zap.New(core))
	T := peptide()
	A := R.Biotypes(T)
	require.Equal(Te, T.Len(), A.Len())
	want := map[int]int{0: 356, 1: 359, 2: 359, 4: 357, 10: 358, 11: 360,
		12: 501, 13: 504, 14: 502, 15: 506, 16: 506, 17: 503, 18: 505, 19: 505}
	for i, b := range want {
		assert.Equal(Te, b, A.Biotypes[i], "atom %d (%s)", i, T.Atom(i).Name)
	}
	assert.Equal(Te, "HN", A.AtomNames[1])
	assert.Equal(Te, "OXT", A.AtomNames[18])
	assert.Equal(Te, "O", A.AtomNames[20])
	assert.Equal(Te, "H", A.AtomNames[25])
	assert.Equal(Te, "CGLY", A.Residues[12])
	assert.Equal(Te, "C-Terminal_GLY", A.TinkerResidue[12])
	assert.Equal(Te, "SOL", A.Residues[23])
	//there is no AMOEBA water in the amber table
	assert.Equal(Te, []int{20, 21, 22, 23, 24, 25}, A.Unresolved())
	assert.Equal(Te, 6, logs.Len())

	R = mustResolver(Te, Amoeba, nil)
	A = R.Biotypes(T)
	assert.Equal(Te, []int{202, 203, 203, 202, 203, 203}, A.Biotypes[20:])
}

func TestResidueBoundaries(Te *testing.T) {
	T := peptide()
	names, idx := AtomResidueNames(T)
	assert.Equal(Te, "NALA", names[3])
	assert.Equal(Te, 1, idx[11])
	assert.Equal(Te, "CGLY", names[12])
	assert.Equal(Te, 2, idx[19])
	assert.Equal(Te, 3, idx[20])
	assert.Equal(Te, 4, idx[25])
	//more waters than residues: the last residue is kept.
	T.Residues = T.Residues[:3]
	names, idx = AtomResidueNames(T)
	assert.Equal(Te, 3, idx[25])
	assert.Equal(Te, "SOL", names[25])
	A := mustResolver(Te, Amoeba, nil).Biotypes(T)
	assert.Equal(Te, 203, A.Biotypes[25])
}
