/*
 * doc.go, part of gochem.
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

/*
Package chem is the main package of gbchem. It provides the atom and topology structures
shared by the other packages, the covalent bond graph of a topology, the classification
of atoms by their mass, and reading/writing of Tinker XYZ files.

Subpackages:

	v3:         Nx3 matrices, used for coordinates and forces.
	biotype:    maps GROMACS residue/atom names to force-field biotypes.
	atomid:     a cache of per-atom labels.
	gbsa:       the bridge between a simulation host and an implicit-solvent force engine.
	top:        a reader for GROMACS topologies.
	chemplot:   histograms of per-atom parameters.
	cmd/gbchem: the command line tool.

Diagnostics for recoverable problems (unknown masses, bad bond records) are
sent to a *zap.Logger given by the caller. A nil logger discards them.
Programmer errors (out of range indexes and the like) cause panics.
*/
package chem
