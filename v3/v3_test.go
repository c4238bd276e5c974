/*
 * v3_test.go, part of molset.
 *
 * Copyright 2013 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())

	_, err = NewMatrix([]float64{1, 2, 3, 4})
	require.Error(Te, err)
	var verr Error
	require.ErrorAs(Te, err, &verr)
	assert.True(Te, verr.Critical())
	assert.Equal(Te, []string{"NewMatrix", "TestNewMatrix"}, verr.Decorate("TestNewMatrix"))

	_, err = NewMatrix(nil)
	assert.Error(Te, err)
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
	assert.Equal(Te, [3]float64{100, 5, 6}, A.Row3(1))
}

func TestAddSubVec(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	Row, err := NewMatrix([]float64{10, 20, 30})
	require.NoError(Te, err)
	A.AddVec(A, Row)
	want := mat.NewDense(2, 3, []float64{11, 22, 33, 14, 25, 36})
	assert.True(Te, mat.Equal(A, want), "got %v", A)
	B := Zeros(2)
	B.SubVec(A, Row)
	want = mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	assert.True(Te, mat.Equal(B, want), "got %v", B)

	assert.Panics(Te, func() { A.AddVec(A, A) })
}

func TestCentroid(Te *testing.T) {
	A, err := NewMatrix([]float64{0, 0, 0, 2, 4, 6, 4, 2, -3})
	require.NoError(Te, err)
	c, err := A.Centroid()
	require.NoError(Te, err)
	r := c.Row3(0)
	assert.InDeltaSlice(Te, []float64{2, 2, 1}, r[:], 1e-12)

	empty := &Matrix{&mat.Dense{}}
	_, err = empty.Centroid()
	assert.Error(Te, err)
}

func TestRound(Te *testing.T) {
	A, err := NewMatrix([]float64{1.23456, -1.23456, 0.00004})
	require.NoError(Te, err)
	A.Round(A, 4)
	assert.Equal(Te, [3]float64{1.2346, -1.2346, 0}, A.Row3(0))
}
