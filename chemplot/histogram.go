/*
 * histogram.go, part of gochem
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 *
*/

// Package chemplot produces plots of per-atom parameters.
package chemplot

import (
	"fmt"
	"image/color"
	"sort"

	chem "github.com/rmera/gbchem"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot side, in inches.
const Side = 5

// Set is a named group of values to be plotted together.
type Set struct {
	Name   string
	Values []float64
}

func basicPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Atoms"
	p.Add(plotter.NewGrid())
	return p
}

// Histograms plots one histogram for each set in sets, with bins bins, in the file
// plotname. The format is taken from the extension of plotname (png, svg, pdf...).
// Empty sets are skipped, but at least one set must have values.
func Histograms(sets []Set, bins int, title, xlabel, plotname string) error {
	if bins <= 0 {
		bins = 10
	}
	p := basicPlot(title, xlabel)
	var plotted int
	for key, s := range sets {
		if len(s.Values) == 0 {
			continue
		}
		h, err := plotter.NewHist(plotter.Values(s.Values), bins)
		if err != nil {
			return chem.NewError("Can't build histogram for "+s.Name, true, err, "Histograms")
		}
		r, g, b := colors(key, len(sets))
		h.FillColor = color.NRGBA{R: r, G: g, B: b, A: 128}
		h.LineStyle.Color = color.NRGBA{R: r, G: g, B: b, A: 255}
		p.Add(h)
		p.Legend.Add(s.Name, h)
		plotted++
	}
	if plotted == 0 {
		return chem.NewError("No values to plot", true, nil, "Histograms")
	}
	if err := p.Save(Side*vg.Inch, Side*vg.Inch, plotname); err != nil {
		return chem.NewError(fmt.Sprintf("Can't save plot %s", plotname), true, err, "Histograms")
	}
	return nil
}

// Histogram plots the values in vals as a single histogram.
func Histogram(vals []float64, bins int, title, xlabel, plotname string) error {
	return Histograms([]Set{{Name: xlabel, Values: vals}}, bins, title, xlabel, plotname)
}

// ByElement groups vals, one per atom in mol, by the element inferred from each atom's mass.
// The sets are ordered by atomic number.
func ByElement(mol chem.Atomer, vals []float64) []Set {
	if len(vals) != mol.Len() {
		panic(chem.ErrAtomOutOfRange)
	}
	els := chem.Elements(mol, nil)
	idx := make(map[int]int)
	order := make([]int, 0, 6)
	groups := make([][]float64, 0, 6)
	for i, z := range els {
		k, ok := idx[z]
		if !ok {
			k = len(groups)
			idx[z] = k
			order = append(order, z)
			groups = append(groups, nil)
		}
		groups[k] = append(groups[k], vals[i])
	}
	sets := make([]Set, 0, len(groups))
	sort.Ints(order)
	for _, z := range order {
		sets = append(sets, Set{Name: chem.ElementSymbol(z), Values: groups[idx[z]]})
	}
	return sets
}
