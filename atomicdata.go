/*
 * atomicdata.go, part of gochem.
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

import "go.uber.org/zap"

// massRange identifies an element from the mass of an atom.
// lowClosed marks the lower bound as inclusive (only hydrogen).
type massRange struct {
	low, high float64
	lowClosed bool
	element   int
	scale     float64
}

func (m massRange) has(mass float64) bool {
	if m.lowClosed {
		return mass >= m.low && mass < m.high
	}
	return mass > m.low && mass < m.high
}

// Mass ranges (amu) with their element and implicit-solvent scale factor. H is the only
// range closed at its lower end.
var massRanges = [...]massRange{
	{1.0, 1.2, true, 1, 0.85},
	{11.8, 12.2, false, 6, 0.72},
	{14.0, 15.0, false, 7, 0.79},
	{15.5, 16.5, false, 8, 0.85},
	{31.5, 32.5, false, 16, 0.96},
	{29.5, 30.5, false, 15, 0.86},
}

const (
	// UnknownElement is the atomic number given to atoms whose mass is not recognized.
	UnknownElement = 0
	// DefaultScaleFactor is the implicit-solvent scale factor for atoms whose mass is not recognized.
	DefaultScaleFactor = 0.8
)

// symbols for the atomic numbers the mass classifier can return.
var elementSymbol = map[int]string{
	UnknownElement: "X",
	1:              "H",
	6:              "C",
	7:              "N",
	8:              "O",
	15:             "P",
	16:             "S",
}

func classify(mass float64) (massRange, bool) {
	for _, v := range massRanges {
		if v.has(mass) {
			return v, true
		}
	}
	return massRange{element: UnknownElement, scale: DefaultScaleFactor}, false
}

// ElementFromMass returns the atomic number of an atom with the given mass (in amu),
// and true. If the mass is not recognized, it returns UnknownElement and false.
func ElementFromMass(mass float64) (int, bool) {
	r, ok := classify(mass)
	return r.element, ok
}

// ScaleFactorFromMass returns the implicit-solvent scale factor for an atom with
// the given mass, and true. If the mass is not recognized, it returns DefaultScaleFactor and false.
func ScaleFactorFromMass(mass float64) (float64, bool) {
	r, ok := classify(mass)
	return r.scale, ok
}

// ElementSymbol returns the symbol for the atomic number z, as far as the
// mass classifier is concerned, or "X".
func ElementSymbol(z int) string {
	if s, ok := elementSymbol[z]; ok {
		return s
	}
	return "X"
}

// Elements returns the atomic number of each atom in mol, as inferred from its mass.
// Unrecognized masses are reported to lg, and get UnknownElement.
func Elements(mol Atomer, lg *zap.Logger) []int {
	lg = LoggerOrNop(lg)
	ret := make([]int, mol.Len())
	for i := range ret {
		at := mol.Atom(i)
		var ok bool
		ret[i], ok = ElementFromMass(at.Mass)
		if !ok {
			lg.Warn("mass not recognized", zap.Int("index", i), zap.String("atom", SafeName(at.Name)), zap.Float64("mass", at.Mass))
		}
	}
	return ret
}

// ScaleFactors returns the implicit-solvent scale factor of each atom in mol, as inferred from its mass.
// Unrecognized masses are reported to lg, and get DefaultScaleFactor.
func ScaleFactors(mol Atomer, lg *zap.Logger) []float64 {
	lg = LoggerOrNop(lg)
	ret := make([]float64, mol.Len())
	for i := range ret {
		at := mol.Atom(i)
		var ok bool
		ret[i], ok = ScaleFactorFromMass(at.Mass)
		if !ok {
			lg.Warn("mass not recognized", zap.Int("index", i), zap.String("atom", SafeName(at.Name)), zap.Float64("mass", at.Mass))
		}
	}
	return ret
}
