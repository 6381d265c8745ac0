/*
 * table.go, part of gochem.
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

package biotype

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	chem "github.com/rmera/gbchem"
)

// Unresolved is the biotype of atoms whose names could not be mapped.
const Unresolved = -1

//go:embed data/amber.dat
var amberData []byte

//go:embed data/amoeba.dat
var amoebaData []byte

// ForceField selects one of the embedded biotype tables.
type ForceField int

const (
	Amber ForceField = iota
	Amoeba
)

func (F ForceField) String() string {
	switch F {
	case Amber:
		return "amber"
	case Amoeba:
		return "amoeba"
	}
	return fmt.Sprintf("forcefield(%d)", int(F))
}

// ParseForceField returns the ForceField with the given name (amber or amoeba, case-insensitive).
func ParseForceField(name string) (ForceField, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "amber", "":
		return Amber, nil
	case "amoeba":
		return Amoeba, nil
	}
	return Amber, chem.NewError(fmt.Sprintf("Unknown force field %q", name), true, nil, "ParseForceField")
}

// Table maps "<tinker residue>_<atom>" keys to biotypes.
type Table map[string]int

// Biotype returns the biotype for the given key, and whether it was found.
func (T Table) Biotype(key string) (int, bool) {
	b, ok := T[key]
	return b, ok
}

// NewTable returns a fresh copy of the embedded table for the force field.
func NewTable(ff ForceField) (Table, error) {
	var data []byte
	switch ff {
	case Amber:
		data = amberData
	case Amoeba:
		data = amoebaData
	default:
		return nil, chem.NewError(fmt.Sprintf("No biotype table for %s", ff), true, nil, "NewTable")
	}
	T, err := ReadTable(bytes.NewReader(data))
	if err != nil {
		err.(chem.Error).Decorate("NewTable")
		return nil, err
	}
	return T, nil
}

// ReadTable reads a table from r. Each line has a key and a biotype, separated by blanks.
// Empty lines and lines starting with '#' are skipped.
func ReadTable(r io.Reader) (Table, error) {
	T := make(Table)
	s := bufio.NewScanner(r)
	line := 0
	for s.Scan() {
		line++
		l := strings.TrimSpace(s.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		f := strings.Fields(l)
		if len(f) != 2 {
			return nil, chem.NewError(fmt.Sprintf("Line %d of biotype table ill-formed: %q", line, l), true, nil, "ReadTable")
		}
		b, err := strconv.Atoi(f[1])
		if err != nil {
			return nil, chem.NewError(fmt.Sprintf("Line %d of biotype table ill-formed: %q", line, l), true, err, "ReadTable")
		}
		T[f[0]] = b
	}
	if err := s.Err(); err != nil {
		return nil, chem.NewError("Can't read biotype table", true, err, "ReadTable")
	}
	return T, nil
}

// ReadTableFile reads a table from the file name, which may be compressed.
func ReadTableFile(name string) (Table, error) {
	f, err := chem.OpenFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	T, err := ReadTable(f)
	if err != nil {
		err.(chem.Error).Decorate("ReadTableFile")
	}
	return T, err
}
