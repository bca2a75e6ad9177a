/*
 * Licensed to the Apache Software Foundation (ASF) under one or more
 * contributor license agreements.  See the NOTICE file distributed with
 * this work for additional information regarding copyright ownership.
 * The ASF licenses this file to You under the Apache License, Version 2.0
 * (the "License"); you may not use this file except in compliance with
 * the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sparse

import "github.com/aryamanjeendgar/RandBLAS/internal"

// CSRMatrix is a sparse matrix in compressed-row format. RowPtr has length
// NRows+1, is non-decreasing, and RowPtr[NRows] == NNZ; the column indices
// within a row span need not be sorted.
type CSRMatrix struct {
	NRows   int
	NCols   int
	Base    IndexBase
	NNZ     int
	Vals    []float64
	RowPtr  []int
	ColIdxs []int

	ownMemory  bool
	canReserve bool
}

// NewCSRMatrix returns an empty owning matrix; Reserve allocates it.
func NewCSRMatrix(nRows, nCols int) *CSRMatrix {
	internal.Require(nRows >= 0 && nCols >= 0, "NewCSRMatrix: negative dimension (%d, %d)", nRows, nCols)
	return &CSRMatrix{
		NRows:      nRows,
		NCols:      nCols,
		ownMemory:  true,
		canReserve: true,
	}
}

// WrapCSR wraps caller-owned compressed-row arrays without copying.
func WrapCSR(nRows, nCols, nnz int, vals []float64, rowPtr, colIdxs []int, base IndexBase) *CSRMatrix {
	internal.Require(len(rowPtr) >= nRows+1, "WrapCSR: rowPtr has length %d, need %d", len(rowPtr), nRows+1)
	internal.Require(len(vals) >= nnz && len(colIdxs) >= nnz, "WrapCSR: arrays shorter than nnz=%d", nnz)
	return &CSRMatrix{
		NRows:   nRows,
		NCols:   nCols,
		Base:    base,
		NNZ:     nnz,
		Vals:    vals,
		RowPtr:  rowPtr,
		ColIdxs: colIdxs,
	}
}

// Reserve allocates the arrays of an owning matrix, once.
func (m *CSRMatrix) Reserve(nnz int) {
	internal.Require(m.ownMemory, "CSRMatrix.Reserve: matrix does not own its memory")
	internal.Require(m.canReserve, "CSRMatrix.Reserve: already reserved")
	internal.Require(nnz >= 0, "CSRMatrix.Reserve: negative nnz %d", nnz)
	m.NNZ = nnz
	m.RowPtr = make([]int, m.NRows+1)
	m.ColIdxs = make([]int, nnz)
	m.Vals = make([]float64, nnz)
	m.canReserve = false
}

// OwnsMemory reports whether the matrix owns its backing arrays.
func (m *CSRMatrix) OwnsMemory() bool { return m.ownMemory }

// CSRFromDiag builds the matrix whose offset-th diagonal holds vals[:nnz];
// every other entry is structurally zero.
func CSRFromDiag(vals []float64, nnz int, offset int, m *CSRMatrix) {
	m.Reserve(nnz)
	ell := 0
	if offset >= 0 {
		internal.Require(nnz <= m.NRows, "CSRFromDiag: nnz=%d exceeds n_rows=%d", nnz, m.NRows)
		for ; ell < nnz; ell++ {
			m.RowPtr[ell] = ell
			m.ColIdxs[ell] = ell + offset
			m.Vals[ell] = vals[ell]
		}
	} else {
		internal.Require(nnz <= m.NCols, "CSRFromDiag: nnz=%d exceeds n_cols=%d", nnz, m.NCols)
		for i := 0; i < -offset; i++ {
			m.RowPtr[i] = 0
		}
		for ; ell < nnz; ell++ {
			m.RowPtr[ell-offset] = ell
			m.ColIdxs[ell] = ell
			m.Vals[ell] = vals[ell]
		}
		ell -= offset
	}
	for ; ell <= m.NRows; ell++ {
		m.RowPtr[ell] = nnz
	}
}
