/*
 * engine.go, part of gochem.
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
	chem "github.com/rmera/gbchem"
	v3 "github.com/rmera/gbchem/v3"
)

// Engine is an implicit-solvent force engine. It works in A and kcal/mol.
// After SetParameters, the engine owns the parameter buffers.
type Engine interface {
	Initialized() bool
	NumberOfAtoms() int
	SetParameters(p *Parameters) error
	//ComputeForces puts the forces for the coordinates in coords in forces and returns the energy.
	ComputeForces(coords *v3.Matrix, charges []float64, forces *v3.Matrix, updateBornRadii bool) (float64, error)
}

// Source is what the bridge needs from a topology.
type Source interface {
	chem.Atomer
	Charges() []float64
}
