/*
 * bonds.go, part of gochem.
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

import (
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// BondGraph is the covalent connectivity of a topology. Since it is built
// on an undirected graph, if atom i is bonded to j, j is bonded to i.
type BondGraph struct {
	g        *simple.UndirectedGraph
	maxAtoms int
}

// NewBondGraph returns a graph with nodes for the atoms 0 to maxAtoms (both included)
// and no bonds.
func NewBondGraph(maxAtoms int) *BondGraph {
	B := &BondGraph{g: simple.NewUndirectedGraph(), maxAtoms: maxAtoms}
	for i := 0; i <= maxAtoms; i++ {
		B.g.AddNode(simple.Node(i))
	}
	return B
}

// Len returns the number of atoms the graph was built for.
func (B *BondGraph) Len() int {
	return B.maxAtoms
}

// NBonds returns the number of distinct bonds in the graph.
func (B *BondGraph) NBonds() int {
	return B.g.Edges().Len()
}

// AddBond bonds atoms i and j. It panics if either is out of range.
// Bonding an atom to itself does nothing.
func (B *BondGraph) AddBond(i, j int) {
	if i < 0 || j < 0 || i > B.maxAtoms || j > B.maxAtoms {
		panic(ErrAtomOutOfRange)
	}
	if i == j {
		return
	}
	B.g.SetEdge(simple.Edge{F: simple.Node(i), T: simple.Node(j)})
}

// Bonded returns whether atoms i and j share a bond.
func (B *BondGraph) Bonded(i, j int) bool {
	return B.g.HasEdgeBetween(int64(i), int64(j))
}

// Neighbors returns the indexes of the atoms bonded to i, in increasing order.
func (B *BondGraph) Neighbors(i int) []int {
	if i < 0 || i > B.maxAtoms {
		panic(ErrAtomOutOfRange)
	}
	ret := nodeIDs(B.g.From(int64(i)))
	sort.Ints(ret)
	return ret
}

// Molecules returns the connected components of the graph among the atoms
// 0 to Len()-1, each as a sorted list of atom indexes. The molecules are sorted by their
// first atom.
func (B *BondGraph) Molecules() [][]int {
	cc := topo.ConnectedComponents(B.g)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		ids := make([]int, 0, len(c))
		for _, n := range c {
			if id := int(n.ID()); id < B.maxAtoms {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			continue
		}
		sort.Ints(ids)
		ret = append(ret, ids)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

func nodeIDs(it graph.Nodes) []int {
	ret := make([]int, 0, it.Len())
	for it.Next() {
		ret = append(ret, int(it.Node().ID()))
	}
	return ret
}

// CovalentBonds builds the bond graph of a topology with maxAtoms atoms from its
// Bonds, Constraints and Settles records.
// Records that refer to atoms out of range are dropped and reported to lg. For
// pair records each offending index counts as one error. A Settles record
// counts one error if its oxygen, or the last of its hydrogens, is out of range.
// The number of errors is returned along with the graph, which contains every
// valid record.
func CovalentBonds(maxAtoms int, top Interactioner, lg *zap.Logger) (*BondGraph, int) {
	lg = LoggerOrNop(lg)
	B := NewBondGraph(maxAtoms)
	nerr := 0
	invalid := func(i int) bool { return i < 0 || i >= maxAtoms }
	for _, kind := range []InteractionKind{Bonds, Constraints} {
		recs := top.Interactions(kind)
		stride := kind.Stride()
		for r := 0; r+stride <= len(recs); r += stride {
			i, j := recs[r+1], recs[r+2]
			bad := false
			for _, v := range []int{i, j} {
				if invalid(v) {
					lg.Warn("atom index out of range in bond record", zap.Stringer("kind", kind), zap.Int("record", r/stride), zap.Int("atom", v), zap.Int("maxAtoms", maxAtoms))
					nerr++
					bad = true
				}
			}
			if bad {
				continue
			}
			B.AddBond(i, j)
		}
	}
	recs := top.Interactions(Settles)
	stride := Settles.Stride()
	for r := 0; r+stride <= len(recs); r += stride {
		o := recs[r+1]
		if o < 0 || o+2 >= maxAtoms {
			lg.Warn("atom index out of range in settle record", zap.Int("record", r/stride), zap.Int("atom", o), zap.Int("maxAtoms", maxAtoms))
			nerr++
			continue
		}
		B.AddBond(o, o+1)
		B.AddBond(o, o+2)
	}
	return B, nerr
}
