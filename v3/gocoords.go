/*
 * gocoords.go, part of gochem.
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

package v3

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Zeros returns a zero-filled Matrix with vecs vectors and 3 in the other dimension.
// It panics if vecs is not positive.
func Zeros(vecs int) *Matrix {
	const cols int = 3
	if vecs <= 0 {
		panic(ErrNoVecs)
	}
	f := make([]float64, cols*vecs)
	return &Matrix{mat.NewDense(vecs, cols, f)}
}

// NVecs returns the number of vecs in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return r
}

// SetVec puts the 3 values of v in the ith vector of F.
func (F *Matrix) SetVec(i int, v [3]float64) {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	F.SetRow(i, v[:])
}

// Vec returns a copy of the ith vector of F.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

// SetFromFloat32 fills F with the vectors in v, passing each coordinate through
// conv. v is expected to have as many elements as F has vectors.
func (F *Matrix) SetFromFloat32(v [][3]float32, conv func(float64) float64) {
	if len(v) != F.NVecs() {
		panic(ErrShape)
	}
	raw := F.RawMatrix()
	for i, vec := range v {
		row := raw.Data[i*raw.Stride : i*raw.Stride+3]
		for j := 0; j < 3; j++ {
			row[j] = conv(float64(vec[j]))
		}
	}
}

// AddToFloat32 adds each element of F, passed through conv, to the
// corresponding element of v. Nothing in v is overwritten.
func (F *Matrix) AddToFloat32(v [][3]float32, conv func(float64) float64) {
	if len(v) != F.NVecs() {
		panic(ErrShape)
	}
	raw := F.RawMatrix()
	for i := range v {
		row := raw.Data[i*raw.Stride : i*raw.Stride+3]
		for j := 0; j < 3; j++ {
			v[i][j] += float32(conv(row[j]))
		}
	}
}

// DistancesSquared returns the squared distance between point and each vector of F.
func (F *Matrix) DistancesSquared(point [3]float64) []float64 {
	n := F.NVecs()
	p := mat.NewDense(1, 3, point[:])
	tmp := mat.NewDense(1, 3, nil)
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		tmp.Sub(F.VecView(i), p)
		d := tmp.RawRowView(0)
		ret[i] = floats.Dot(d, d)
	}
	return ret
}

// DistancesSquaredFrom returns the squared distance between the ith vector of F
// and each vector of F, the ith included. Panics if i is out of range.
func (F *Matrix) DistancesSquaredFrom(i int) []float64 {
	return F.DistancesSquared(F.Vec(i))
}

// String returns a string representation of F with one vector per line.
func (F *Matrix) String() string {
	if F == nil || F.Dense == nil {
		return "<nil>"
	}
	r := F.NVecs()
	lines := make([]string, 0, r)
	for i := 0; i < r; i++ {
		lines = append(lines, fmt.Sprintf("[%8.5f %8.5f %8.5f]", F.At(i, 0), F.At(i, 1), F.At(i, 2)))
	}
	return strings.Join(lines, "\n")
}
