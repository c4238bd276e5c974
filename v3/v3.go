/*
 * v3.go, part of molset.
 *
 * Copyright 2015 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const cols int = 3

//Matrix is a set of vectors in 3D space. Within the package it is understood
//that a "vector" is a row vector, i.e. the cartesian coordinates of a point in
//3D space.
type Matrix struct {
	*mat.Dense
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
//The slice is used as backing storage, not copied.
func NewMatrix(data []float64) (*Matrix, error) {
	l := len(data)
	if l == 0 || l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(l/cols, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, cols, nil)}
}

//NVecs returns the number of vectors in F.
func (F *Matrix) NVecs() int {
	r, c := F.Dims()
	if c != cols {
		panic(ErrNotXx3Matrix)
	}
	return r
}

//VecView returns a view of the ith vector of F. Changes in the view are
//reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, cols).(*mat.Dense)
	return &Matrix{r}
}

//AddVec adds the row vector vec to every vector of A, putting the result in the receiver.
func (F *Matrix) AddVec(A, vec *Matrix) {
	F.vecOp(A, vec, 1)
}

//SubVec subtracts the row vector vec from every vector of A, putting the result in the receiver.
func (F *Matrix) SubVec(A, vec *Matrix) {
	F.vecOp(A, vec, -1)
}

func (F *Matrix) vecOp(A, vec *Matrix, sign float64) {
	ar, ac := A.Dims()
	vr, vc := vec.Dims()
	fr, fc := F.Dims()
	if ac != vc || vr != 1 || ac != fc || ar != fr {
		panic(ErrShape)
	}
	v := mat.Row(nil, 0, vec)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			F.Set(i, j, A.At(i, j)+sign*v[j])
		}
	}
}

//Centroid returns a 1x3 Matrix with the geometric mean of the vectors in F.
//It returns an error if F has no vectors.
func (F *Matrix) Centroid() (*Matrix, error) {
	r, _ := F.Dims()
	if r == 0 {
		return nil, Error{string(ErrNotEnoughElements), []string{"Centroid"}, false}
	}
	ret := Zeros(1)
	col := make([]float64, r)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, F)
		ret.Set(0, j, stat.Mean(col, nil))
	}
	return ret, nil
}

//Round puts in the receiver the elements of A rounded to prec decimal places,
//half away from zero.
func (F *Matrix) Round(A *Matrix, prec int) {
	ar, ac := A.Dims()
	fr, fc := F.Dims()
	if ar != fr || ac != fc {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			F.Set(i, j, scalar.Round(A.At(i, j), prec))
		}
	}
}

//Row3 returns the ith vector of F as an array.
func (F *Matrix) Row3(i int) [3]float64 {
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

//String returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, _ := F.Dims()
	v := make([]string, 0, r)
	for i := 0; i < r; i++ {
		row := F.Row3(i)
		v = append(v, fmt.Sprintf("%9.4f %9.4f %9.4f", row[0], row[1], row[2]))
	}
	return "[" + strings.Join(v, "\n ") + "]"
}

//Errors

//Error is the error type of the package. The Decorate method allows to add
//the name of the callers as the error goes up.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

//Decorate adds dec to the decoration slice of the error, and returns the
//resulting slice. An empty dec just returns the current slice.
func (err Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("molset/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("molset/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("molset/v3: Dimension mismatch")
)
