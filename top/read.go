/*
 * read.go, part of goChem
 *
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

package top

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	chem "github.com/rmera/gbchem"
	"go.uber.org/zap"
)

// maximum depth of nested #include statements.
const maxIncludeDepth = 16

// Options control how a topology is read.
type Options struct {
	Defines        []string //flags for #ifdef blocks
	FollowIncludes bool     //open and read #include'd files
	Dir            string   //relative includes are looked for here
	Log            *zap.Logger
}

type StringReader interface {
	ReadString(byte) (string, error)
}

type atomRec struct {
	typ     string
	resnr   int
	resname string
	name    string
	charge  float64
	mass    float64
}

// a [ moleculetype ] block. Records use local, 0-based, atom indexes.
type molType struct {
	name  string
	atoms []atomRec
	recs  map[chem.InteractionKind][]int
}

type molCount struct {
	name string
	n    int
}

type reader struct {
	opts    Options
	log     *zap.Logger
	h       *topHeader
	c       *cond
	header  string
	types   map[string]*molType
	order   []string
	current *molType
	masses  map[string]float64
	system  []molCount
	depth   int
}

// Read reads a Gromacs topology from r and returns the whole system, with
// the molecule types replicated as the [ molecules ] section says. If there is no
// [ molecules ] section, one copy of each molecule type is returned, in the
// order they were read. Bonds, constraints and settles are kept as interactions.
func Read(r io.Reader, opts Options) (*chem.Topology, error) {
	R := &reader{
		opts:   opts,
		log:    chem.LoggerOrNop(opts.Log),
		h:      newTopHeader(),
		c:      newCond(opts.Defines),
		types:  make(map[string]*molType),
		masses: make(map[string]float64),
	}
	sr, ok := r.(StringReader)
	if !ok {
		sr = bufio.NewReader(r)
	}
	if err := R.fill(sr, opts.Dir); err != nil {
		return nil, err
	}
	return R.build()
}

// ReadFile reads the Gromacs topology in the file name, which may be compressed.
// Relative includes are looked for in the directory of the file, unless opts.Dir is set.
func ReadFile(name string, opts Options) (*chem.Topology, error) {
	f, err := chem.OpenFile(name)
	if err != nil {
		err.(chem.Error).Decorate("top.ReadFile")
		return nil, err
	}
	defer f.Close()
	if opts.Dir == "" {
		opts.Dir = filepath.Dir(name)
	}
	T, err := Read(f, opts)
	if err != nil {
		return nil, chem.NewError("Can't read topology "+name, true, err, "top.ReadFile")
	}
	return T, nil
}

func (R *reader) fill(r StringReader, dir string) error {
	var s string
	var err error
	var lineno int
	for {
		s, err = r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return chem.NewError("Can't read topology", true, err, "top.Read")
		}
		eof := err != nil
		lineno++
		s = cleanString(s)
		if s != "" && R.c.read(s) {
			if e := R.line(s, dir); e != nil {
				return chem.NewError(fmt.Sprintf("Error in line %d, header %s: %s", lineno, R.header, s), true, e, "top.Read")
			}
		}
		if eof {
			return nil
		}
	}
}

func (R *reader) include(s, dir string) error {
	f := fi(s)
	fname := strings.Trim(f[len(f)-1], "\"'<>")
	if !R.opts.FollowIncludes {
		R.log.Debug("include not followed", zap.String("file", fname))
		return nil
	}
	if R.depth >= maxIncludeDepth {
		return fmt.Errorf("too many nested includes at %s", fname)
	}
	if !filepath.IsAbs(fname) {
		fname = filepath.Join(dir, fname)
	}
	file, err := chem.OpenFile(fname)
	if err != nil {
		return err
	}
	defer file.Close()
	R.depth++
	defer func() { R.depth-- }()
	header := R.header
	err = R.fill(bufio.NewReader(file), filepath.Dir(fname))
	//an included file doesn't change the section we are in.
	R.header = header
	return err
}

// line processes one clean, non-empty line.
func (R *reader) line(s, dir string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s", r)
		}
	}()
	if strings.HasPrefix(s, "#include") {
		return R.include(s, dir)
	}
	if strings.HasPrefix(s, "#") {
		return nil
	}
	if R.h.Is(s) {
		R.header = R.h.Which(s)
		return nil
	}
	l := fi(s)
	switch R.header {
	case "moleculetype":
		if _, ok := R.types[l[0]]; ok {
			return fmt.Errorf("molecule type %s defined twice", l[0])
		}
		R.current = &molType{name: l[0], recs: make(map[chem.InteractionKind][]int)}
		R.types[l[0]] = R.current
		R.order = append(R.order, l[0])
	case "atoms":
		R.atom(l)
	case "bonds":
		R.pair(chem.Bonds, l)
	case "constraints":
		R.pair(chem.Constraints, l)
	case "settles":
		m := R.mol()
		if len(l) < 2 {
			panic("settle record needs at least 2 fields")
		}
		v, err := parseints(l[:2]...)
		qerr(err)
		m.recs[chem.Settles] = append(m.recs[chem.Settles], v[1], v[0]-1)
	case "atomtypes":
		//name [bond_type] [at.num] mass charge ptype V W
		if len(l) < 6 {
			return nil
		}
		mass, err := strconv.ParseFloat(l[len(l)-5], 64)
		if err != nil {
			R.log.Debug("no mass in atom type", zap.String("line", s))
			return nil
		}
		R.masses[l[0]] = mass
	case "molecules":
		if len(l) < 2 {
			panic("molecules record needs 2 fields")
		}
		n, err := strconv.Atoi(l[1])
		qerr(err)
		R.system = append(R.system, molCount{name: l[0], n: n})
	}
	return nil
}

func (R *reader) mol() *molType {
	if R.current == nil {
		panic(fmt.Sprintf("[ %s ] outside of a moleculetype", R.header))
	}
	return R.current
}

// nr type resnr residue atom cgnr charge [mass]
func (R *reader) atom(l []string) {
	m := R.mol()
	if len(l) < 7 {
		panic("atom record needs at least 7 fields")
	}
	ints, err := parseints(l[0], l[2])
	qerr(err)
	if ints[0] != len(m.atoms)+1 {
		panic(fmt.Sprintf("atom %d out of sequence in %s", ints[0], m.name))
	}
	fl, err := parsefloats(l[6:min(len(l), 8)]...)
	qerr(err)
	a := atomRec{typ: l[1], resnr: ints[1], resname: l[3], name: l[4], charge: fl[0]}
	if len(fl) > 1 {
		a.mass = fl[1]
	}
	m.atoms = append(m.atoms, a)
}

// i j funct ...
func (R *reader) pair(kind chem.InteractionKind, l []string) {
	m := R.mol()
	if len(l) < 3 {
		panic(fmt.Sprintf("%s record needs at least 3 fields", kind))
	}
	v, err := parseints(l[:3]...)
	qerr(err)
	m.recs[kind] = append(m.recs[kind], v[2], v[0]-1, v[1]-1)
}

func (R *reader) build() (*chem.Topology, error) {
	system := R.system
	if len(system) == 0 {
		for _, v := range R.order {
			system = append(system, molCount{name: v, n: 1})
		}
	}
	T := chem.NewTopology(nil, nil)
	for _, mc := range system {
		m, ok := R.types[mc.name]
		if !ok {
			return nil, chem.NewError("Unknown molecule type "+mc.name, true, nil, "top.Read")
		}
		for c := 0; c < mc.n; c++ {
			R.replicate(T, m)
		}
		R.log.Debug("molecules added", zap.String("type", mc.name), zap.Int("copies", mc.n))
	}
	return T, nil
}

// replicate adds one copy of m to T. Record indexes are shifted to global indexes.
// Each change of residue number opens a new residue.
func (R *reader) replicate(T *chem.Topology, m *molType) {
	offset := T.Len()
	prev := 0
	started := false
	for _, a := range m.atoms {
		if !started || a.resnr != prev {
			T.Residues = append(T.Residues, a.resname)
			prev = a.resnr
			started = true
		}
		mass := a.mass
		if mass == 0 {
			mass = R.masses[a.typ]
		}
		T.Atoms = append(T.Atoms, &chem.Atom{
			Name:    a.name,
			ID:      T.Len() + 1,
			Type:    a.typ,
			MolName: a.resname,
			MolID:   len(T.Residues) - 1,
			Mass:    mass,
			Charge:  a.charge,
		})
	}
	for _, kind := range []chem.InteractionKind{chem.Bonds, chem.Constraints, chem.Settles} {
		recs := m.recs[kind]
		st := kind.Stride()
		for r := 0; r+st <= len(recs); r += st {
			atoms := make([]int, st-1)
			for i := range atoms {
				atoms[i] = recs[r+1+i] + offset
			}
			T.AddInteraction(kind, recs[r], atoms...)
		}
	}
}
