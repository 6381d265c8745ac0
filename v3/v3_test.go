/*
 * v3_test.go, part of gochem.
 *
 * Copyright 2013 Raul Mera <rmera@zinc>
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeros(Te *testing.T) {
	A := Zeros(4)
	assert.Equal(Te, 4, A.NVecs())
	A.SetVec(2, [3]float64{1, 2, 3})
	v := A.VecView(2)
	v.Scale(2, v.Dense)
	assert.Equal(Te, [3]float64{2, 4, 6}, A.Vec(2))
	assert.Panics(Te, func() { A.Vec(4) })
	assert.Panics(Te, func() { A.SetVec(-1, [3]float64{}) })
	assert.PanicsWithValue(Te, ErrNoVecs, func() { Zeros(0) })
}

func TestDistancesSquared(Te *testing.T) {
	A := Zeros(3)
	A.SetVec(1, [3]float64{1, 2, 2})
	A.SetVec(2, [3]float64{0, 0, -3})
	d := A.DistancesSquared([3]float64{1, 0, 0})
	assert.InDeltaSlice(Te, []float64{1, 8, 10}, d, 1e-12)
	d = A.DistancesSquaredFrom(1)
	assert.InDeltaSlice(Te, []float64{9, 0, 30}, d, 1e-12)
	//the matrix is not changed
	assert.Equal(Te, [3]float64{1, 2, 2}, A.Vec(1))
	assert.Panics(Te, func() { A.DistancesSquaredFrom(3) })
}

func TestFloat32RoundTrip(Te *testing.T) {
	host := [][3]float32{{1.0, 2.0, 3.0}, {-0.5, 0.25, 10}}
	A := Zeros(len(host))
	A.SetFromFloat32(host, func(x float64) float64 { return x * 10 })
	assert.InDelta(Te, 20.0, A.At(0, 1), 1e-6)
	back := make([][3]float32, len(host))
	tenth := func(x float64) float64 { return x * 0.1 }
	A.AddToFloat32(back, tenth)
	for i := range host {
		for j := 0; j < 3; j++ {
			assert.InDelta(Te, host[i][j], back[i][j], 1e-5)
		}
	}
	//accumulates, never overwrites
	A.AddToFloat32(back, tenth)
	assert.InDelta(Te, 6.0, back[0][2], 1e-5)
	assert.Panics(Te, func() { A.SetFromFloat32(host[:1], tenth) })
}
