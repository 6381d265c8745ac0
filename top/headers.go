/*
 * headers.go, part of goChem
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
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Utility functions

func qerr(err error) {
	if err != nil {
		panic(err.Error())
	}
}

var fi = strings.Fields

func parseints(s ...string) ([]int, error) {
	r := make([]int, 0, len(s))
	for _, v := range s {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}

func parsefloats(s ...string) ([]float64, error) {
	r := make([]float64, 0, len(s))
	for _, v := range s {
		i, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}

// Returns a string without gromacs comments (sequences starting with ';'),
// trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	f := strings.Split(s, ";")[0]
	return strings.Trim(f, "\r\n\t ")
}

type topHeader struct {
	wany *regexp.Regexp
	spec map[string]*regexp.Regexp
}

func newTopHeader() *topHeader {
	T := new(topHeader)
	T.wany = regexp.MustCompile(`^\[\p{Zs}*.*\p{Zs}*\]$`)
	T.spec = map[string]*regexp.Regexp{
		"atoms":        regexp.MustCompile(`\[\p{Zs}*atoms\p{Zs}*\]`),
		"constraints":  regexp.MustCompile(`\[\p{Zs}*constraints\p{Zs}*\]`),
		"bonds":        regexp.MustCompile(`\[\p{Zs}*bonds\p{Zs}*\]`),
		"settles":      regexp.MustCompile(`\[\p{Zs}*settles\p{Zs}*\]`),
		"molecules":    regexp.MustCompile(`\[\p{Zs}*molecules\p{Zs}*\]`),
		"moleculetype": regexp.MustCompile(`\[\p{Zs}*moleculetype\p{Zs}*\]`),
		"atomtypes":    regexp.MustCompile(`\[\p{Zs}*atomtypes\p{Zs}*\]`),
		"system":       regexp.MustCompile(`\[\p{Zs}*system\p{Zs}*\]`),
	}
	return T
}

// Is returns true if the line is a Gromacs header. It discards comments.
func (T *topHeader) Is(line string) bool {
	return T.wany.MatchString(cleanString(line))
}

// Which returns a string indicating which Gromacs top file header
// the line is, or an empty string if the line is not a header, or
// is one we don't read.
func (T *topHeader) Which(line string) string {
	line = cleanString(line)
	if !T.wany.MatchString(line) {
		return ""
	}
	for k, v := range T.spec {
		if v.MatchString(line) {
			return k
		}
	}
	return ""
}

// cond reads conditional parts of gromacs topologies, depending on
// the defined flags. Conditionals can be nested.
type cond struct {
	stack   []bool
	defines []string
}

func newCond(defines []string) *cond {
	return &cond{defines: slices.Clone(defines)}
}

func (c *cond) reading() bool {
	for _, v := range c.stack {
		if !v {
			return false
		}
	}
	return true
}

// read returns true if line is to be processed. Preprocessor lines are
// consumed here, and read returns false for them.
func (c *cond) read(line string) bool {
	f := fi(line)
	switch f[0] {
	case "#ifdef", "#ifndef":
		def := len(f) > 1 && slices.Contains(c.defines, f[1])
		c.stack = append(c.stack, def == (f[0] == "#ifdef"))
		return false
	case "#else":
		if n := len(c.stack); n > 0 {
			c.stack[n-1] = !c.stack[n-1]
		}
		return false
	case "#endif":
		if n := len(c.stack); n > 0 {
			c.stack = c.stack[:n-1]
		}
		return false
	case "#define":
		if c.reading() && len(f) > 1 {
			c.defines = append(c.defines, f[1])
		}
		return false
	case "#undef":
		if c.reading() && len(f) > 1 {
			c.defines = slices.DeleteFunc(c.defines, func(s string) bool { return s == f[1] })
		}
		return false
	}
	return c.reading()
}
