/*
 * xyz.go, part of gochem.
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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	v3 "github.com/rmera/gbchem/v3"
)

// Tinker XYZ files are in Angstrom, while topologies and coordinates here are in nm.
const (
	nm2A = 10.0
	A2nm = 0.1
)

// WriteTinkerXYZ writes coords (in nm) to w in Tinker XYZ format. The first line has
// the number of atoms and label. Each atom line has the 1-based index, the name,
// the coordinates in Angstrom, the biotype and the 1-based indexes of the atoms bonded to it.
// names and biotypes must have one element per vector in coords. g can be nil, in which case no
// connectivity is written.
func WriteTinkerXYZ(w io.Writer, coords *v3.Matrix, label string, names []string, biotypes []int, g *BondGraph) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewError(fmt.Sprintf("%v", r), true, nil, "WriteTinkerXYZ")
		}
	}()
	if coords == nil || coords.Dense == nil {
		return NewError("No coordinates to write", true, nil, "WriteTinkerXYZ")
	}
	n := coords.NVecs()
	if len(names) != n || len(biotypes) != n {
		return NewError(fmt.Sprintf("Got %d coordinates, %d names and %d biotypes", n, len(names), len(biotypes)), true, nil, "WriteTinkerXYZ")
	}
	bw := bufio.NewWriter(w)
	_, err = fmt.Fprintf(bw, "%d %s\n", n, label)
	qerr(err)
	for i := 0; i < n; i++ {
		_, err = fmt.Fprintf(bw, "%6d  %-4s %16.9f %16.9f %16.9f %6d ", i+1, names[i], nm2A*coords.At(i, 0), nm2A*coords.At(i, 1), nm2A*coords.At(i, 2), biotypes[i])
		qerr(err)
		if g != nil && i < g.Len() {
			for _, v := range g.Neighbors(i) {
				_, err = fmt.Fprintf(bw, "%6d ", v+1)
				qerr(err)
			}
		}
		_, err = bw.WriteString("\n")
		qerr(err)
	}
	return bw.Flush()
}

// ReadTinkerXYZ reads natoms coordinates from a Tinker XYZ file, returning them in nm.
// The first line is skipped. Each atom line needs at least 5 fields, the coordinates being
// fields 3 to 5. natoms must be positive.
func ReadTinkerXYZ(r io.Reader, natoms int) (*v3.Matrix, error) {
	if natoms <= 0 {
		return nil, NewError(fmt.Sprintf("Can't read %d atoms", natoms), true, nil, "ReadTinkerXYZ")
	}
	br := bufio.NewReader(r)
	_, err := br.ReadString('\n')
	if err != nil {
		return nil, NewError("Can't read header of Tinker XYZ file", true, err, "ReadTinkerXYZ")
	}
	coords := v3.Zeros(natoms)
	read := 0
	line := 1
	for read < natoms {
		s, err := br.ReadString('\n')
		if s == "" && err != nil {
			break
		}
		line++
		f := strings.Fields(s)
		if len(f) < 5 {
			return nil, NewError(fmt.Sprintf("Problem with line %d <%s>", line, strings.TrimSpace(s)), true, nil, "ReadTinkerXYZ")
		}
		for j := 0; j < 3; j++ {
			c, err := strconv.ParseFloat(f[2+j], 64)
			if err != nil {
				return nil, NewError(fmt.Sprintf("Problem with line %d <%s>", line, strings.TrimSpace(s)), true, err, "ReadTinkerXYZ")
			}
			coords.Set(read, j, A2nm*c)
		}
		read++
		if err != nil {
			break
		}
	}
	if read != natoms {
		return nil, NewError(fmt.Sprintf("Read %d atoms, expected %d", read, natoms), true, nil, "ReadTinkerXYZ")
	}
	return coords, nil
}

// ReadTinkerXYZFile opens name (maybe compressed) and reads natoms coordinates from it.
func ReadTinkerXYZFile(name string, natoms int) (*v3.Matrix, error) {
	f, err := OpenFile(name)
	if err != nil {
		return nil, errDecorate(err, "ReadTinkerXYZFile")
	}
	defer f.Close()
	c, err := ReadTinkerXYZ(f, natoms)
	return c, errDecorate(err, "ReadTinkerXYZFile")
}

func qerr(err error) {
	if err != nil {
		panic(err.Error())
	}
}
