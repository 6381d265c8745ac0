/*
 * summary.go, part of gochem.
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

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary contains simple statistics for a set of per-atom parameters.
type Summary struct {
	N       int
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64
	Missing int //values equal to MissingRadius
}

// Summarize returns the statistics for vals. Values equal to MissingRadius are
// counted in Missing, and left out of the rest.
func Summarize(vals []float64) Summary {
	ok := make([]float64, 0, len(vals))
	S := Summary{N: len(vals)}
	for _, v := range vals {
		if v == MissingRadius {
			S.Missing++
			continue
		}
		ok = append(ok, v)
	}
	if len(ok) == 0 {
		return S
	}
	S.Min = floats.Min(ok)
	S.Max = floats.Max(ok)
	if len(ok) == 1 {
		S.Mean = ok[0]
		return S
	}
	S.Mean, S.StdDev = stat.MeanStdDev(ok, nil)
	return S
}

func (S Summary) String() string {
	return fmt.Sprintf("n: %d min: %.4f max: %.4f mean: %.4f sd: %.4f missing: %d", S.N, S.Min, S.Max, S.Mean, S.StdDev, S.Missing)
}
