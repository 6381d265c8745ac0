/*
 * top_test.go, part of goChem
 *
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

package top

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	chem "github.com/rmera/gbchem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dipeptide = `; a tiny system
[ atomtypes ]
;name  at.num   mass    charge ptype  sigma   epsilon
  OW     8      15.9994  0.0000  A   3.15061e-01  6.36386e-01
  HW     1       1.0080  0.0000  A   0.00000e+00  0.00000e+00

[ moleculetype ]
; name nrexcl
 DIP   3

[ atoms ]
;  nr type resnr residue atom cgnr charge mass
    1   N3    1   NALA    N    1   0.14   14.01
    2   H     1   NALA    H1   2   0.20    1.008
    3   CT    1   NALA    CA   3   0.10   12.01
    4   C     1   NALA    C    4   0.61   12.01
    5   O     1   NALA    O    5  -0.57   16.00
    6   N     2   CGLY    N    6  -0.38   14.01
    7   CT    2   CGLY    CA   7  -0.25   12.01
    8   C     2   CGLY    C    8   0.72   12.01
    9   O2    2   CGLY    OC1  9  -0.80   16.00

[ bonds ]
    1   2   1
    1   3   1
    3   4   1
    4   5   1
    4   6   1
    6   7   1
    7   8   1
#ifdef FLEXIBLE
    8   9   1
#else
[ constraints ]
    8   9   1
#endif

[ moleculetype ]
SOL  2

[ atoms ]
  1  OW  1  SOL  OW  1  -0.834
  2  HW  1  SOL  HW1 1   0.417
  3  HW  1  SOL  HW2 1   0.417

#ifndef FLEXIBLE
[ settles ]
  1  1  0.09572  0.15139
#else
[ bonds ]
  1  2  1
  1  3  1
#endif

[ system ]
test

[ molecules ]
DIP   1
SOL   2`

func TestRead(Te *testing.T) {
	T, err := Read(strings.NewReader(dipeptide), Options{})
	require.NoError(Te, err)
	assert.Equal(Te, 15, T.Len())
	if d := cmp.Diff([]string{"NALA", "CGLY", "SOL", "SOL"}, T.Residues); d != "" {
		Te.Errorf("unexpected residues (-want +got):\n%s", d)
	}
	assert.Equal(Te, 1, T.Atom(5).MolID)
	assert.Equal(Te, 3, T.Atom(12).MolID)
	assert.Equal(Te, "HW2", T.Atom(14).Name)
	assert.Equal(Te, 15, T.Atom(14).ID)
	//masses not in the atoms section come from the atom types.
	assert.Equal(Te, 15.9994, T.Atom(9).Mass)
	assert.Equal(Te, 1.008, T.Atom(10).Mass)
	assert.Equal(Te, -0.834, T.Atom(12).Charge)
	assert.Len(Te, T.Interactions(chem.Bonds), 7*3)
	assert.Equal(Te, []int{1, 7, 8}, T.Interactions(chem.Constraints))
	//settles point to the global oxygen index
	assert.Equal(Te, []int{1, 9, 1, 12}, T.Interactions(chem.Settles))

	B, nerr := chem.CovalentBonds(T.Len(), T, nil)
	assert.Equal(Te, 0, nerr)
	assert.Len(Te, B.Molecules(), 3)
	assert.True(Te, B.Bonded(12, 14))
}

func TestReadDefines(Te *testing.T) {
	T, err := Read(strings.NewReader(dipeptide), Options{Defines: []string{"FLEXIBLE"}})
	require.NoError(Te, err)
	assert.Len(Te, T.Interactions(chem.Bonds), (8+2+2)*3)
	assert.Empty(Te, T.Interactions(chem.Constraints))
	assert.Empty(Te, T.Interactions(chem.Settles))
	//a define in the file itself works as well.
	T, err = Read(strings.NewReader("#define FLEXIBLE\n"+dipeptide), Options{})
	require.NoError(Te, err)
	assert.Empty(Te, T.Interactions(chem.Settles))
}

func TestReadIncludes(Te *testing.T) {
	dir := Te.TempDir()
	i := strings.Index(dipeptide, "[ moleculetype ]\nSOL")
	require.True(Te, i > 0)
	water := dipeptide[i:strings.Index(dipeptide, "[ system ]")]
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "water.itp"), []byte(water), 0644))
	main := dipeptide[:i] + "#include \"water.itp\"\n" + dipeptide[strings.Index(dipeptide, "[ system ]"):]
	name := filepath.Join(dir, "topol.top")
	require.NoError(Te, os.WriteFile(name, []byte(main), 0644))
	T, err := ReadFile(name, Options{FollowIncludes: true})
	require.NoError(Te, err)
	assert.Equal(Te, 15, T.Len())
	//without following the include, SOL is not known.
	_, err = ReadFile(name, Options{})
	assert.Error(Te, err)
	_, err = ReadFile(filepath.Join(dir, "nothere.top"), Options{})
	assert.Error(Te, err)
}

func TestReadErrors(Te *testing.T) {
	bad := []string{
		"[ atoms ]\n1 N 1 ALA N 1 0.1\n",
		"[ moleculetype ]\nA 1\n[ atoms ]\n2 N 1 ALA N 1 0.1\n",
		"[ moleculetype ]\nA 1\n[ atoms ]\n1 N 1 ALA N 1 zero\n",
		"[ moleculetype ]\nA 1\n[ bonds ]\n1 x 1\n",
		"[ moleculetype ]\nA 1\n[ moleculetype ]\nA 1\n",
		"[ moleculetype ]\nA 1\n[ molecules ]\nB 1\n",
	}
	for _, v := range bad {
		_, err := Read(strings.NewReader(v), Options{})
		assert.Error(Te, err, v)
	}
	//no molecules section: one of each type.
	T, err := Read(strings.NewReader("[ moleculetype ]\nA 1\n[ atoms ]\n1 N 1 ALA N 1 0.1 14.0"), Options{})
	require.NoError(Te, err)
	assert.Equal(Te, 1, T.Len())
	assert.Equal(Te, 14.0, T.Atom(0).Mass)
}

func TestConditionals(Te *testing.T) {
	c := newCond([]string{"A"})
	lines := []string{"#ifdef A", "1", "#ifdef B", "2", "#else", "3", "#endif", "#else", "4", "#endif", "5"}
	var read []string
	for _, l := range lines {
		if c.read(l) {
			read = append(read, l)
		}
	}
	assert.Equal(Te, []string{"1", "3", "5"}, read)
	h := newTopHeader()
	assert.Equal(Te, "settles", h.Which("[ settles ] ; comment"))
	assert.Equal(Te, "", h.Which("[ angles ]"))
	assert.True(Te, h.Is("[angles]"))
	assert.False(Te, h.Is("1 2 3"))
}
