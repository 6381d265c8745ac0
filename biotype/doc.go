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
Package biotype maps the residue and atom names of a GROMACS topology to the
Tinker biotypes of a force field.

A Resolver owns two read-only dictionaries: the residue-name map (ResidueNames), which
takes GROMACS residue names (including N- and C-terminal variants) to the
residue names used by Tinker, and a biotype Table, which takes "residue_atom" keys
to integer biotypes. Tables for the AMBER and AMOEBA force fields are embedded.

When a name pair is not found, a few name transformations are tried in turn (see
Resolver.Lookup). Pairs that can't be resolved get the biotype Unresolved (-1).
*/
package biotype
