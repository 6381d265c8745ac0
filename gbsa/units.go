/*
 * units.go, part of gochem.
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

// The host works in nm and kJ/(mol nm), the engine in A and kcal/(mol A).
const (
	DistanceScale = 10.0   //nm to A
	ForceScale    = 0.4184 //kcal/(mol A) to kJ/(mol nm)
)

// ToEngineLength converts a host length (nm) to an engine length (A).
func ToEngineLength(nm float64) float64 { return nm * DistanceScale }

// ToHostForce converts an engine force component to host units.
func ToHostForce(f float64) float64 { return f * ForceScale }
