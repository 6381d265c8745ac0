/*
 * radii.go, part of gochem.
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

package gbsa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	chem "github.com/rmera/gbchem"
	"go.uber.org/zap"
)

// MissingRadius is given to atoms with a type not in the radius table.
const MissingRadius = 1e-6

// RadiusTable maps atom types to radii, as read from a parameter file.
type RadiusTable map[string]float64

// ParseRadii builds a table from the lines of a radius parameter file. Each line
// has an atom type and a radius. Lines starting with a "#" or "@" token are comments.
// Comments, as well as lines that can't be read, are skipped and reported to lg.
func ParseRadii(lines []string, lg *zap.Logger) RadiusTable {
	lg = chem.LoggerOrNop(lg)
	R := make(RadiusTable)
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) == 0 {
			continue
		}
		if f[0] == "#" || f[0] == "@" {
			lg.Debug("radius file line skipped", zap.Int("line", i+1), zap.String("content", l))
			continue
		}
		if len(f) < 2 {
			lg.Warn("radius file line skipped", zap.Int("line", i+1), zap.String("content", l))
			continue
		}
		r, err := strconv.ParseFloat(f[1], 64)
		if err != nil {
			lg.Warn("radius file line skipped", zap.Int("line", i+1), zap.String("content", l), zap.Error(err))
			continue
		}
		R[f[0]] = r
	}
	return R
}

// ReadRadii reads all lines from r and parses them with ParseRadii.
func ReadRadii(r io.Reader, lg *zap.Logger) (RadiusTable, error) {
	s := bufio.NewScanner(r)
	lines := make([]string, 0, 64)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, chem.NewError("Can't read radius parameters", true, err, "ReadRadii")
	}
	return ParseRadii(lines, lg), nil
}

// ReadRadiusFile reads the radius table from the file name, which may be compressed.
func ReadRadiusFile(name string, lg *zap.Logger) (RadiusTable, error) {
	f, err := chem.OpenFile(name)
	if err != nil {
		err.(chem.Error).Decorate("ReadRadiusFile")
		return nil, err
	}
	defer f.Close()
	R, err := ReadRadii(f, lg)
	if err != nil {
		err.(chem.Error).Decorate("ReadRadiusFile")
		return nil, err
	}
	chem.LoggerOrNop(lg).Debug("radius parameters read", zap.String("file", name), zap.Int("types", len(R)))
	return R, nil
}

// Radii returns the radius of each atom in mol, looked up by its type and multiplied by scale.
// Atoms whose type is not in the table get MissingRadius, and are reported to lg.
func (R RadiusTable) Radii(mol chem.Atomer, scale float64, lg *zap.Logger) []float64 {
	lg = chem.LoggerOrNop(lg)
	ret := make([]float64, mol.Len())
	for i := range ret {
		at := mol.Atom(i)
		r, ok := R[at.Type]
		if !ok {
			lg.Warn("no radius for atom type", zap.Int("index", i), zap.String("atom", chem.SafeName(at.Name)), zap.String("type", at.Type))
			ret[i] = MissingRadius
			continue
		}
		ret[i] = scale * r
	}
	return ret
}

// AtomTypesString returns a line with the 1-based index, the name and the type for
// each atom in mol.
func AtomTypesString(mol chem.Atomer) string {
	var b strings.Builder
	for i := 0; i < mol.Len(); i++ {
		at := mol.Atom(i)
		fmt.Fprintf(&b, "%d %s %s\n", i+1, chem.SafeName(at.Name), at.Type)
	}
	return b.String()
}
