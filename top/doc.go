/*
 * doc.go, part of goChem
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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
Package top reads Gromacs topologies (top/itp files) into a chem.Topology.
Only the sections needed to know the atoms and their covalent connectivity are
read: atomtypes (for masses), moleculetype, atoms, bonds, constraints, settles
and molecules. #ifdef/#ifndef blocks are honored, and #include statements
can be followed.
*/
package top
