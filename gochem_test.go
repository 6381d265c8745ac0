/*
 * gochem_test.go, part of gochem.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	v3 "github.com/rmera/gbchem/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// two waters, the second one with settles.
func waters() *Topology {
	names := []string{"OW", "HW1", "HW2", "OW", "HW1", "HW2"}
	masses := []float64{15.9994, 1.008, 1.008, 15.9994, 1.008, 1.008}
	ats := make([]*Atom, 0, len(names))
	for i, v := range names {
		ats = append(ats, &Atom{Name: v, ID: i + 1, MolName: "SOL", MolID: i / 3, Mass: masses[i]})
	}
	T := NewTopology(ats, []string{"SOL", "SOL"})
	T.AddInteraction(Bonds, 1, 0, 1)
	T.AddInteraction(Constraints, 1, 0, 2)
	T.AddInteraction(Settles, 1, 3)
	return T
}

func TestMassClassifier(Te *testing.T) {
	cases := []struct {
		mass  float64
		z     int
		scale float64
		ok    bool
	}{
		{1.0, 1, 0.85, true},
		{1.199999, 1, 0.85, true},
		{1.2, 0, 0.8, false},
		{12.011, 6, 0.72, true},
		{11.8, 0, 0.8, false},
		{14.007, 7, 0.79, true},
		{15.9994, 8, 0.85, true},
		{32.06, 16, 0.96, true},
		{30.0, 15, 0.86, true},
		{30.97, 0, 0.8, false},
		{13.0, 0, 0.8, false},
	}
	for _, c := range cases {
		z, ok := ElementFromMass(c.mass)
		assert.Equal(Te, c.z, z, "mass %f", c.mass)
		assert.Equal(Te, c.ok, ok, "mass %f", c.mass)
		s, ok := ScaleFactorFromMass(c.mass)
		assert.Equal(Te, c.scale, s, "mass %f", c.mass)
		assert.Equal(Te, c.ok, ok, "mass %f", c.mass)
	}
	assert.Equal(Te, "O", ElementSymbol(8))
	assert.Equal(Te, "X", ElementSymbol(92))
}

func TestMassDiagnostics(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	lg := zap.New(core)
	T := waters()
	T.Atoms[1].Mass = 13.0
	T.Atoms[4].Mass = 0
	z := Elements(T, lg)
	assert.Equal(Te, []int{8, 0, 1, 8, 0, 1}, z)
	assert.Equal(Te, 2, logs.FilterMessage("mass not recognized").Len())
	sc := ScaleFactors(T, nil)
	assert.Equal(Te, []float64{0.85, 0.8, 0.85, 0.85, 0.8, 0.85}, sc)
}

func TestCovalentBonds(Te *testing.T) {
	T := waters()
	g, nerr := CovalentBonds(T.Len(), T, nil)
	require.Equal(Te, 0, nerr)
	assert.Equal(Te, 4, g.NBonds())
	assert.Equal(Te, []int{1, 2}, g.Neighbors(0))
	assert.Equal(Te, []int{0}, g.Neighbors(1))
	//settles
	assert.Equal(Te, []int{4, 5}, g.Neighbors(3))
	assert.Equal(Te, []int{3}, g.Neighbors(4))
	assert.Equal(Te, []int{3}, g.Neighbors(5))
	assert.False(Te, g.Bonded(4, 5))
	//symmetry
	for i := 0; i < T.Len(); i++ {
		for _, j := range g.Neighbors(i) {
			assert.Contains(Te, g.Neighbors(j), i)
		}
	}
	assert.Equal(Te, [][]int{{0, 1, 2}, {3, 4, 5}}, g.Molecules())
	assert.Empty(Te, g.Neighbors(T.Len()))
}

func TestCovalentBondsBadRecords(Te *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	lg := zap.New(core)
	T := waters()
	T.AddInteraction(Bonds, 1, 1, T.Len()+5)
	T.AddInteraction(Bonds, 1, -1, T.Len())
	T.AddInteraction(Bonds, 1, 4, 5)
	T.AddInteraction(Settles, 1, 4)
	g, nerr := CovalentBonds(T.Len(), T, lg)
	assert.Equal(Te, 4, nerr)
	assert.Equal(Te, 4, logs.Len())
	assert.True(Te, g.Bonded(4, 5))
	assert.Equal(Te, []int{0}, g.Neighbors(1))
	assert.Empty(Te, g.Neighbors(T.Len()))
}

func TestTopology(Te *testing.T) {
	T := waters()
	T.Atoms[0].Name = ""
	T.Residues[1] = strings.Repeat("X", MaxNameLen+1)
	assert.Equal(Te, NoName, T.AtomName(0))
	assert.Equal(Te, "HW1", T.AtomName(1))
	assert.Equal(Te, NoName, T.ResidueName(1))
	assert.Panics(Te, func() { T.Atom(6) })
	assert.Panics(Te, func() { T.ResidueName(2) })
	assert.Panics(Te, func() { T.AddInteraction(Settles, 1, 0, 1) })
	assert.Equal(Te, []int{1, 3}, T.Interactions(Settles))
	assert.Len(Te, T.Charges(), 6)
}

func TestTinkerXYZ(Te *testing.T) {
	T := waters()
	g, _ := CovalentBonds(T.Len(), T, nil)
	coords := v3.Zeros(T.Len())
	for i := 0; i < T.Len(); i++ {
		coords.SetVec(i, [3]float64{0.1 * float64(i), 0.2, -0.05})
	}
	names := []string{"O", "H", "H", "O", "H", "H"}
	bt := []int{2001, 2002, 2002, 2001, 2002, 2002}
	var buf bytes.Buffer
	require.NoError(Te, WriteTinkerXYZ(&buf, coords, "waters", names, bt, g))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(Te, lines, 7)
	assert.Equal(Te, "6 waters", lines[0])
	assert.Equal(Te, "     1  O         0.000000000      2.000000000     -0.500000000   2001      2      3 ", lines[1])
	assert.Equal(Te, "     5  H         4.000000000      2.000000000     -0.500000000   2002      4 ", lines[5])
	read, err := ReadTinkerXYZ(strings.NewReader(buf.String()), T.Len())
	require.NoError(Te, err)
	for i := 0; i < T.Len(); i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(Te, coords.At(i, j), read.At(i, j), 1e-9)
		}
	}
	_, err = ReadTinkerXYZ(strings.NewReader(buf.String()), T.Len()+1)
	assert.Error(Te, err)
	_, err = ReadTinkerXYZ(strings.NewReader("1 bad\n 1 O 0.0 0.0\n"), 1)
	assert.Error(Te, err)
	assert.Error(Te, WriteTinkerXYZ(&buf, coords, "", names[:2], bt, g))
	assert.Error(Te, WriteTinkerXYZ(&buf, nil, "", nil, nil, nil))
	//no atoms is an error, not a panic.
	_, err = ReadTinkerXYZ(strings.NewReader("0 empty\n"), 0)
	var cerr Error
	require.ErrorAs(Te, err, &cerr)
	assert.True(Te, cerr.Critical())
	assert.Equal(Te, []string{"ReadTinkerXYZ", "TestTinkerXYZ"}, cerr.Decorate("TestTinkerXYZ"))
}

func TestCompressedFiles(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"a.xyz", "a.xyz.gz", "a.xyz.zst"} {
		name = filepath.Join(dir, name)
		w, err := CreateFile(name)
		require.NoError(Te, err)
		_, err = w.Write([]byte("1 one\n     1  C   1.0 2.0 3.0 5\n"))
		require.NoError(Te, err)
		require.NoError(Te, w.Close())
		c, err := ReadTinkerXYZFile(name, 1)
		require.NoError(Te, err, name)
		assert.InDelta(Te, 0.3, c.At(0, 2), 1e-12)
	}
	assert.Equal(Te, Zstd, CompressionFromName("x.ZST"))
	_, err := OpenFile(filepath.Join(dir, "nothere"))
	assert.Error(Te, err)
}
