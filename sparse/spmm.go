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
	"runtime"
	"sync"

	"github.com/aryamanjeendgar/RandBLAS/blasx"
	"github.com/aryamanjeendgar/RandBLAS/internal"
)

// filteredColPtr walks column-sorted coordinate data once and emits the
// boundary pointers of the columns in [colStart, colEnd): colPtr[j] is the
// position of the first entry whose column is >= colStart+j. Columns with no
// entries get an empty span. colPtr must have length colEnd-colStart+1.
func filteredColPtr(nnz int, cols []int, colStart, colEnd int, colPtr []int) {
	prev := colStart - 1
	for ell := 0; ell < nnz; ell++ {
		c := cols[ell]
		if c < colStart {
			continue
		}
		limit := internal.Min(c, colEnd)
		for j := prev + 1; j <= limit; j++ {
			colPtr[j-colStart] = ell
		}
		if c >= colEnd {
			return
		}
		prev = c
	}
	for j := prev + 1; j <= colEnd; j++ {
		colPtr[j-colStart] = nnz
	}
}

// FilteredCSCFromCOO extracts the submatrix with rows [rowStart, rowEnd) and
// columns [colStart, colEnd) from CSC-sorted coordinate data, writing a
// compressed-column representation whose indices are zero-relative within
// the submatrix. newVals and newRows must have capacity for nnz entries and
// newColPtr for colEnd-colStart+1 boundaries. Returns the submatrix nnz.
// The pass is O(nnz): entries outside the window are skipped, never stored.
func FilteredCSCFromCOO(vals []float64, rows, cols []int, nnz int, colStart, colEnd, rowStart, rowEnd int, newVals []float64, newRows, newColPtr []int) int {
	filteredColPtr(nnz, cols, colStart, colEnd, newColPtr)
	newNNZ := 0
	for j := 0; j < colEnd-colStart; j++ {
		begin, end := newColPtr[j], newColPtr[j+1]
		newColPtr[j] = newNNZ
		for k := begin; k < end; k++ {
			i := rows[k]
			if i < rowStart {
				continue
			}
			if i >= rowEnd {
				// Rows ascend within a CSC-sorted column.
				break
			}
			newVals[newNNZ] = vals[k]
			newRows[newNNZ] = i - rowStart
			newNNZ++
		}
	}
	newColPtr[colEnd-colStart] = newNNZ
	return newNNZ
}

// applyCSCToVectorFromLeft accumulates sv += S*v for a compressed-column S,
// reading v and writing sv through the given strides.
func applyCSCToVectorFromLeft(v []float64, incV int, sv []float64, incSV int, nCols int, vals []float64, rowIdxs, colPtr []int) {
	for c := 0; c < nCols; c++ {
		scale := v[c*incV]
		for i := colPtr[c]; i < colPtr[c+1]; i++ {
			sv[rowIdxs[i]*incSV] += vals[i] * scale
		}
	}
}

// ApplyCOOLeft accumulates B += alpha * submat(S) * A, where submat(S) is
// the d-by-m window of S whose upper-left corner is (rowOffset, colOffset),
// A is m-by-n in layoutA and B is d-by-n in layoutB.
//
// If S is not CSC-sorted it is sorted transiently and the original order is
// restored before returning; only the tag and array order are touched, never
// the triple multiset. The index base must be zero. Accumulation order for a
// fixed output element follows the coordinate order and is therefore
// unspecified; callers compare results with a floating-point tolerance.
func ApplyCOOLeft(alpha float64, layoutA, layoutB blasx.Layout, d, n, m int, s *COOMatrix, rowOffset, colOffset int, a []float64, lda int, b []float64, ldb int) {
	internal.Require(s.Base == Zero, "ApplyCOOLeft: index base must be zero")

	if s.Sort != SortCSC {
		origSort := s.Sort
		SortCOOData(SortCSC, s)
		ApplyCOOLeft(alpha, layoutA, layoutB, d, n, m, s, rowOffset, colOffset, a, lda, b, ldb)
		SortCOOData(origSort, s)
		return
	}

	// Filter to the requested window, rebasing indices to the submatrix,
	// and fold alpha into the filtered values so the scatter below is an
	// unscaled accumulate.
	subVals := make([]float64, s.NNZ)
	subRows := make([]int, s.NNZ)
	subColPtr := make([]int, m+1)
	subNNZ := FilteredCSCFromCOO(
		s.Vals, s.Rows, s.Cols, s.NNZ,
		colOffset, colOffset+m,
		rowOffset, rowOffset+d,
		subVals, subRows, subColPtr,
	)
	blasx.Scal(subNNZ, alpha, subVals, 1)

	var aInterCol, aIntraCol int
	if layoutA == blasx.ColMajor {
		aInterCol, aIntraCol = lda, 1
	} else {
		aInterCol, aIntraCol = 1, lda
	}
	var bInterCol, bIntraCol int
	if layoutB == blasx.ColMajor {
		bInterCol, bIntraCol = ldb, 1
	} else {
		bInterCol, bIntraCol = 1, ldb
	}

	// Fork-join over the columns of A with a static partition. Each worker
	// owns a disjoint set of output columns, so no locking is needed.
	workers := internal.Min(runtime.GOMAXPROCS(0), n)
	if workers <= 1 {
		for k := 0; k < n; k++ {
			applyCSCToVectorFromLeft(a[aInterCol*k:], aIntraCol, b[bInterCol*k:], bIntraCol, m, subVals, subRows, subColPtr)
		}
		return
	}
	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := internal.Min(lo+chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for k := lo; k < hi; k++ {
				applyCSCToVectorFromLeft(a[aInterCol*k:], aIntraCol, b[bInterCol*k:], bIntraCol, m, subVals, subRows, subColPtr)
			}
		}(lo, hi)
	}
	wg.Wait()
}

// scaleDense applies B *= beta over the d-by-n matrix (b, ldb) in layout.
// beta == 0 stores zeros outright, so B need not be initialized.
func scaleDense(layout blasx.Layout, d, n int, beta float64, b []float64, ldb int) {
	lines, lineLen := d, n
	if layout == blasx.ColMajor {
		lines, lineLen = n, d
	}
	for i := 0; i < lines; i++ {
		line := b[i*ldb : i*ldb+lineLen]
		if beta == 0 {
			for j := range line {
				line[j] = 0
			}
		} else if beta != 1 {
			blasx.Scal(lineLen, beta, line, 1)
		}
	}
}

// LeftSpmm computes B = alpha*op(submat(S))*op(A) + beta*B, where op(submat(S))
// is d-by-m, op(A) is m-by-n, and B is d-by-n in the given layout. submat(S)
// is addressed at (roS, coS) in S; its shape is implied by (opS, d, m).
func LeftSpmm(layout blasx.Layout, opS, opA blasx.Transpose, d, n, m int, alpha float64, s *COOMatrix, roS, coS int, a []float64, lda int, beta float64, b []float64, ldb int) {
	if opS == blasx.Trans {
		// submat(S)^T is the (coS, roS) window of S^T; the view shares S's
		// arrays with the row and column roles relabeled.
		LeftSpmm(layout, blasx.NoTrans, opA, d, n, m, alpha, transposeView(s), coS, roS, a, lda, beta, b, ldb)
		return
	}
	internal.Require(s.NRows >= d+roS, "LeftSpmm: S has %d rows, submatrix needs %d+%d", s.NRows, d, roS)
	internal.Require(s.NCols >= m+coS, "LeftSpmm: S has %d cols, submatrix needs %d+%d", s.NCols, m, coS)

	rowsA, colsA := m, n
	if opA == blasx.Trans {
		rowsA, colsA = n, m
	}
	if layout == blasx.ColMajor {
		internal.Require(lda >= rowsA, "LeftSpmm: lda=%d < %d", lda, rowsA)
		internal.Require(ldb >= d, "LeftSpmm: ldb=%d < %d", ldb, d)
	} else {
		internal.Require(lda >= colsA, "LeftSpmm: lda=%d < %d", lda, colsA)
		internal.Require(ldb >= n, "LeftSpmm: ldb=%d < %d", ldb, n)
	}

	// Reading op(A) = A^T amounts to reading A in the flipped layout.
	layoutA := layout
	if opA == blasx.Trans {
		layoutA = layout.Flip()
	}
	scaleDense(layout, d, n, beta, b, ldb)
	ApplyCOOLeft(alpha, layoutA, layout, d, n, m, s, roS, coS, a, lda, b, ldb)
}

// RightSpmm computes B = alpha*op(A)*op(submat(S)) + beta*B, where op(A) is
// m-by-n, op(submat(S)) is n-by-d, and B is m-by-d in the given layout.
//
// It reduces to LeftSpmm through the transpose identity
// B^T = alpha*op(submat(S))^T*op(A)^T + beta*B^T: flipping the layout reads
// every buffer as its transpose, flipping opS supplies op(S)^T, and opA is
// passed through because the layout flip already transposes A.
func RightSpmm(layout blasx.Layout, opA, opS blasx.Transpose, m, d, n int, alpha float64, a []float64, lda int, s *COOMatrix, roS, coS int, beta float64, b []float64, ldb int) {
	LeftSpmm(layout.Flip(), blasx.FlipTranspose(opS), opA, d, m, n, alpha, s, roS, coS, a, lda, beta, b, ldb)
}
