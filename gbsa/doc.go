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

// Package gbsa connects a host simulation with an external generalized-Born
// implicit-solvent engine.
//
// The host calls Bridge.Setup once, which reads the atomic radii, obtains the
// scale factors from the atom masses and hands the parameters to the engine.
// Then Bridge.Compute is called every step. It converts the coordinates to
// the engine units, and adds the engine forces, converted back, to the host forces.
package gbsa
