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

// CSCMatrix is a sparse matrix in compressed-column format, the column-wise
// mirror of CSRMatrix: ColPtr has length NCols+1 with ColPtr[NCols] == NNZ.
type CSCMatrix struct {
	NRows   int
	NCols   int
	Base    IndexBase
	NNZ     int
	Vals    []float64
	ColPtr  []int
	RowIdxs []int

	ownMemory  bool
	canReserve bool
}

// NewCSCMatrix returns an empty owning matrix; Reserve allocates it.
func NewCSCMatrix(nRows, nCols int) *CSCMatrix {
	internal.Require(nRows >= 0 && nCols >= 0, "NewCSCMatrix: negative dimension (%d, %d)", nRows, nCols)
	return &CSCMatrix{
		NRows:      nRows,
		NCols:      nCols,
		ownMemory:  true,
		canReserve: true,
	}
}

// WrapCSC wraps caller-owned compressed-column arrays without copying.
func WrapCSC(nRows, nCols, nnz int, vals []float64, colPtr, rowIdxs []int, base IndexBase) *CSCMatrix {
	internal.Require(len(colPtr) >= nCols+1, "WrapCSC: colPtr has length %d, need %d", len(colPtr), nCols+1)
	internal.Require(len(vals) >= nnz && len(rowIdxs) >= nnz, "WrapCSC: arrays shorter than nnz=%d", nnz)
	return &CSCMatrix{
		NRows:   nRows,
		NCols:   nCols,
		Base:    base,
		NNZ:     nnz,
		Vals:    vals,
		ColPtr:  colPtr,
		RowIdxs: rowIdxs,
	}
}

// Reserve allocates the arrays of an owning matrix, once.
func (m *CSCMatrix) Reserve(nnz int) {
	internal.Require(m.ownMemory, "CSCMatrix.Reserve: matrix does not own its memory")
	internal.Require(m.canReserve, "CSCMatrix.Reserve: already reserved")
	internal.Require(nnz >= 0, "CSCMatrix.Reserve: negative nnz %d", nnz)
	m.NNZ = nnz
	m.ColPtr = make([]int, m.NCols+1)
	m.RowIdxs = make([]int, nnz)
	m.Vals = make([]float64, nnz)
	m.canReserve = false
}

// OwnsMemory reports whether the matrix owns its backing arrays.
func (m *CSCMatrix) OwnsMemory() bool { return m.ownMemory }
