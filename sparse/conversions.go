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

import (
	"github.com/aryamanjeendgar/RandBLAS/blasx"
	"github.com/aryamanjeendgar/RandBLAS/internal"
)

// COOToCSR compresses coo into csr. The coordinate data is re-sorted to CSR
// order in place as a side effect; dimensions and index base must match, and
// csr must be owning and unreserved.
func COOToCSR(coo *COOMatrix, csr *CSRMatrix) {
	internal.Require(coo.NRows == csr.NRows && coo.NCols == csr.NCols,
		"COOToCSR: dimension mismatch (%d, %d) vs (%d, %d)", coo.NRows, coo.NCols, csr.NRows, csr.NCols)
	SortCOOData(SortCSR, coo)
	csr.Base = coo.Base
	csr.Reserve(coo.NNZ)
	base := int(coo.Base)
	ell := 0
	for i := 0; i < coo.NRows; i++ {
		for ell < coo.NNZ && coo.Rows[ell]-base == i {
			csr.ColIdxs[ell] = coo.Cols[ell]
			csr.Vals[ell] = coo.Vals[ell]
			ell++
		}
		csr.RowPtr[i+1] = ell
	}
}

// CSRToCOO expands csr into coo, which must be owning, unreserved and of
// matching shape. The result is tagged SortCSR.
func CSRToCOO(csr *CSRMatrix, coo *COOMatrix) {
	internal.Require(csr.NRows == coo.NRows && csr.NCols == coo.NCols,
		"CSRToCOO: dimension mismatch (%d, %d) vs (%d, %d)", csr.NRows, csr.NCols, coo.NRows, coo.NCols)
	coo.Base = csr.Base
	coo.Reserve(csr.NNZ)
	base := int(csr.Base)
	for i := 0; i < csr.NRows; i++ {
		for ell := csr.RowPtr[i]; ell < csr.RowPtr[i+1]; ell++ {
			coo.Vals[ell] = csr.Vals[ell]
			coo.Rows[ell] = i + base
			coo.Cols[ell] = csr.ColIdxs[ell]
		}
	}
	coo.Sort = SortCSR
}

// COOToCSC compresses coo into csc, re-sorting the coordinate data to CSC
// order in place.
func COOToCSC(coo *COOMatrix, csc *CSCMatrix) {
	internal.Require(coo.NRows == csc.NRows && coo.NCols == csc.NCols,
		"COOToCSC: dimension mismatch (%d, %d) vs (%d, %d)", coo.NRows, coo.NCols, csc.NRows, csc.NCols)
	SortCOOData(SortCSC, coo)
	csc.Base = coo.Base
	csc.Reserve(coo.NNZ)
	base := int(coo.Base)
	ell := 0
	for j := 0; j < coo.NCols; j++ {
		for ell < coo.NNZ && coo.Cols[ell]-base == j {
			csc.RowIdxs[ell] = coo.Rows[ell]
			csc.Vals[ell] = coo.Vals[ell]
			ell++
		}
		csc.ColPtr[j+1] = ell
	}
}

// CSCToCOO expands csc into coo; the result is tagged SortCSC.
func CSCToCOO(csc *CSCMatrix, coo *COOMatrix) {
	internal.Require(csc.NRows == coo.NRows && csc.NCols == coo.NCols,
		"CSCToCOO: dimension mismatch (%d, %d) vs (%d, %d)", csc.NRows, csc.NCols, coo.NRows, coo.NCols)
	coo.Base = csc.Base
	coo.Reserve(csc.NNZ)
	base := int(csc.Base)
	for j := 0; j < csc.NCols; j++ {
		for ell := csc.ColPtr[j]; ell < csc.ColPtr[j+1]; ell++ {
			coo.Vals[ell] = csc.Vals[ell]
			coo.Rows[ell] = csc.RowIdxs[ell]
			coo.Cols[ell] = j + base
		}
	}
	coo.Sort = SortCSC
}

// CSRToDense scatters csr into the dense buffer (mat, ld), zeroing the full
// extent first.
func CSRToDense(csr *CSRMatrix, layout blasx.Layout, mat []float64, ld int) {
	strideRow, strideCol := denseStrides(layout, csr.NRows, csr.NCols, ld)
	for i := 0; i < csr.NRows; i++ {
		for j := 0; j < csr.NCols; j++ {
			mat[i*strideRow+j*strideCol] = 0
		}
	}
	base := int(csr.Base)
	for i := 0; i < csr.NRows; i++ {
		for ell := csr.RowPtr[i]; ell < csr.RowPtr[i+1]; ell++ {
			j := csr.ColIdxs[ell] - base
			mat[i*strideRow+j*strideCol] = csr.Vals[ell]
		}
	}
}

// CSCToDense scatters csc into the dense buffer (mat, ld), zeroing the full
// extent first.
func CSCToDense(csc *CSCMatrix, layout blasx.Layout, mat []float64, ld int) {
	strideRow, strideCol := denseStrides(layout, csc.NRows, csc.NCols, ld)
	for i := 0; i < csc.NRows; i++ {
		for j := 0; j < csc.NCols; j++ {
			mat[i*strideRow+j*strideCol] = 0
		}
	}
	base := int(csc.Base)
	for j := 0; j < csc.NCols; j++ {
		for ell := csc.ColPtr[j]; ell < csc.ColPtr[j+1]; ell++ {
			i := csc.RowIdxs[ell] - base
			mat[i*strideRow+j*strideCol] = csc.Vals[ell]
		}
	}
}

// DenseToCSR gathers the entries of (mat, ld) with absolute value above
// absTol into csr, which supplies the shape and must be owning and
// unreserved.
func DenseToCSR(layout blasx.Layout, mat []float64, ld int, absTol float64, csr *CSRMatrix) {
	strideRow, strideCol := denseStrides(layout, csr.NRows, csr.NCols, ld)
	nnz := nnzInDense(csr.NRows, csr.NCols, strideRow, strideCol, mat, absTol)
	csr.Reserve(nnz)
	nnz = 0
	for i := 0; i < csr.NRows; i++ {
		for j := 0; j < csr.NCols; j++ {
			v := mat[i*strideRow+j*strideCol]
			if internal.Abs(v) > absTol {
				csr.Vals[nnz] = v
				csr.ColIdxs[nnz] = j
				nnz++
			}
		}
		csr.RowPtr[i+1] = nnz
	}
}

// DenseToCSC is the column-wise mirror of DenseToCSR.
func DenseToCSC(layout blasx.Layout, mat []float64, ld int, absTol float64, csc *CSCMatrix) {
	strideRow, strideCol := denseStrides(layout, csc.NRows, csc.NCols, ld)
	nnz := nnzInDense(csc.NRows, csc.NCols, strideRow, strideCol, mat, absTol)
	csc.Reserve(nnz)
	nnz = 0
	for j := 0; j < csc.NCols; j++ {
		for i := 0; i < csc.NRows; i++ {
			v := mat[i*strideRow+j*strideCol]
			if internal.Abs(v) > absTol {
				csc.Vals[nnz] = v
				csc.RowIdxs[nnz] = i
				nnz++
			}
		}
		csc.ColPtr[j+1] = nnz
	}
}

func nnzInDense(nRows, nCols, strideRow, strideCol int, mat []float64, absTol float64) int {
	nnz := 0
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			if internal.Abs(mat[i*strideRow+j*strideCol]) > absTol {
				nnz++
			}
		}
	}
	return nnz
}
