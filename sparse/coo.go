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

// Package sparse provides the coordinate and compressed sparse matrix
// representations that the sparse sketching kernels are built on, together
// with the conversion, submatrix-filtering and multiplication routines that
// operate on them.
//
// Matrix values are float64 and indices are ints. A matrix either owns its
// backing slices (allocated once through Reserve) or borrows caller slices
// (constructed through one of the Wrap functions); borrowed slices must
// outlive every operation on the wrapping matrix.
package sparse

import (
	"sort"

	"github.com/aryamanjeendgar/RandBLAS/blasx"
	"github.com/aryamanjeendgar/RandBLAS/internal"
)

// IndexBase is the origin of the stored indices: zero-based or one-based.
type IndexBase int

const (
	Zero IndexBase = 0
	One  IndexBase = 1
)

// SortOrder records what ordering, if any, the nonzero triples of a
// coordinate matrix are known to satisfy.
type SortOrder byte

const (
	// SortNone makes no ordering claim.
	SortNone SortOrder = 'N'
	// SortCSR means triples ascend lexicographically by (row, col).
	SortCSR SortOrder = 'R'
	// SortCSC means triples ascend lexicographically by (col, row).
	SortCSC SortOrder = 'C'
)

// Flip exchanges the CSR and CSC orderings; SortNone is its own flip.
func (s SortOrder) Flip() SortOrder {
	switch s {
	case SortCSR:
		return SortCSC
	case SortCSC:
		return SortCSR
	}
	return SortNone
}

// COOMatrix is a sparse matrix in coordinate format: NNZ parallel
// (row, col, value) triples plus a tag recording their known sort order.
type COOMatrix struct {
	NRows int
	NCols int
	Base  IndexBase
	NNZ   int
	Vals  []float64
	Rows  []int
	Cols  []int
	Sort  SortOrder

	ownMemory  bool
	canReserve bool
}

// NewCOOMatrix returns an empty owning matrix. Call Reserve exactly once to
// allocate its triple arrays.
func NewCOOMatrix(nRows, nCols int) *COOMatrix {
	internal.Require(nRows >= 0 && nCols >= 0, "NewCOOMatrix: negative dimension (%d, %d)", nRows, nCols)
	return &COOMatrix{
		NRows:      nRows,
		NCols:      nCols,
		Sort:       SortNone,
		ownMemory:  true,
		canReserve: true,
	}
}

// WrapCOO wraps caller-owned triple arrays without copying. When
// computeSort is true the arrays are scanned once to detect an existing
// sort order; otherwise the matrix is tagged SortNone.
func WrapCOO(nRows, nCols, nnz int, vals []float64, rows, cols []int, computeSort bool, base IndexBase) *COOMatrix {
	internal.Require(nRows >= 0 && nCols >= 0, "WrapCOO: negative dimension (%d, %d)", nRows, nCols)
	internal.Require(len(vals) >= nnz && len(rows) >= nnz && len(cols) >= nnz,
		"WrapCOO: triple arrays shorter than nnz=%d", nnz)
	m := &COOMatrix{
		NRows: nRows,
		NCols: nCols,
		Base:  base,
		NNZ:   nnz,
		Vals:  vals,
		Rows:  rows,
		Cols:  cols,
		Sort:  SortNone,
	}
	if computeSort {
		m.Sort = COOSortType(nnz, rows, cols)
	}
	return m
}

// Reserve allocates the triple arrays of an owning matrix. It may be called
// once; reserving a borrowed matrix or reserving twice is a contract
// violation.
func (m *COOMatrix) Reserve(nnz int) {
	internal.Require(m.ownMemory, "COOMatrix.Reserve: matrix does not own its memory")
	internal.Require(m.canReserve, "COOMatrix.Reserve: already reserved")
	internal.Require(nnz >= 0, "COOMatrix.Reserve: negative nnz %d", nnz)
	m.NNZ = nnz
	m.Vals = make([]float64, nnz)
	m.Rows = make([]int, nnz)
	m.Cols = make([]int, nnz)
	m.canReserve = false
}

// OwnsMemory reports whether the matrix owns its backing arrays.
func (m *COOMatrix) OwnsMemory() bool { return m.ownMemory }

// COOSortType scans nnz coordinate pairs and reports the strongest sort
// order they satisfy, preferring SortCSR when both hold (e.g. a diagonal).
func COOSortType(nnz int, rows, cols []int) SortOrder {
	csrOK, cscOK := true, true
	for ell := 1; ell < nnz; ell++ {
		i0, j0 := rows[ell-1], cols[ell-1]
		i1, j1 := rows[ell], cols[ell]
		if csrOK {
			csrOK = i0 < i1 || (i0 == i1 && j0 <= j1)
		}
		if cscOK {
			cscOK = j0 < j1 || (j0 == j1 && i0 <= i1)
		}
		if !csrOK && !cscOK {
			break
		}
	}
	switch {
	case csrOK:
		return SortCSR
	case cscOK:
		return SortCSC
	}
	return SortNone
}

// SortCOOData reorders the triples of m into the requested order and
// re-tags the matrix. The sort is stable in content: only the array order
// and the tag change, never the multiset of triples. Sorting to SortNone is
// a no-op.
func SortCOOData(order SortOrder, m *COOMatrix) {
	if order == SortNone || m.Sort == order {
		m.Sort = order
		return
	}
	perm := make([]int, m.NNZ)
	for i := range perm {
		perm[i] = i
	}
	rows, cols := m.Rows, m.Cols
	if order == SortCSR {
		sort.SliceStable(perm, func(a, b int) bool {
			pa, pb := perm[a], perm[b]
			if rows[pa] != rows[pb] {
				return rows[pa] < rows[pb]
			}
			return cols[pa] < cols[pb]
		})
	} else {
		sort.SliceStable(perm, func(a, b int) bool {
			pa, pb := perm[a], perm[b]
			if cols[pa] != cols[pb] {
				return cols[pa] < cols[pb]
			}
			return rows[pa] < rows[pb]
		})
	}
	applyPermutation(perm, m.Vals, m.Rows, m.Cols)
	m.Sort = order
}

func applyPermutation(perm []int, vals []float64, rows, cols []int) {
	n := len(perm)
	newVals := make([]float64, n)
	newRows := make([]int, n)
	newCols := make([]int, n)
	for i, p := range perm {
		newVals[i] = vals[p]
		newRows[i] = rows[p]
		newCols[i] = cols[p]
	}
	copy(vals, newVals)
	copy(rows, newRows)
	copy(cols, newCols)
}

// TransposeCOO returns the transpose of m. For a borrowed matrix this is a
// zero-copy relabeling: the returned matrix shares m's arrays with the row
// and column roles exchanged and the sort tag flipped. For an owning matrix
// the arrays are copied so the two matrices stay independent.
func TransposeCOO(m *COOMatrix) *COOMatrix {
	if !m.ownMemory {
		return transposeView(m)
	}
	t := NewCOOMatrix(m.NCols, m.NRows)
	t.Base = m.Base
	t.Reserve(m.NNZ)
	copy(t.Vals, m.Vals)
	copy(t.Rows, m.Cols)
	copy(t.Cols, m.Rows)
	t.Sort = m.Sort.Flip()
	return t
}

// transposeView relabels m as its transpose without copying, regardless of
// ownership. Kernel-internal: the view aliases m's arrays.
func transposeView(m *COOMatrix) *COOMatrix {
	return &COOMatrix{
		NRows: m.NCols,
		NCols: m.NRows,
		Base:  m.Base,
		NNZ:   m.NNZ,
		Vals:  m.Vals,
		Rows:  m.Cols,
		Cols:  m.Rows,
		Sort:  m.Sort.Flip(),
	}
}

// COOFromDiag builds the matrix whose k-th stored diagonal (k = offset,
// positive meaning above the main diagonal) holds vals[:nnz]. The matrix
// must be owning and unreserved.
func COOFromDiag(vals []float64, nnz int, offset int, m *COOMatrix) {
	m.Reserve(nnz)
	if offset >= 0 {
		internal.Require(nnz <= m.NRows, "COOFromDiag: nnz=%d exceeds n_rows=%d", nnz, m.NRows)
		for ell := 0; ell < nnz; ell++ {
			m.Rows[ell] = ell
			m.Cols[ell] = ell + offset
			m.Vals[ell] = vals[ell]
		}
	} else {
		internal.Require(nnz <= m.NCols, "COOFromDiag: nnz=%d exceeds n_cols=%d", nnz, m.NCols)
		for ell := 0; ell < nnz; ell++ {
			m.Rows[ell] = ell - offset
			m.Cols[ell] = ell
			m.Vals[ell] = vals[ell]
		}
	}
	m.Sort = SortCSR
}

// COOToDense scatters m into the dense buffer (mat, ld) with the given
// layout, zeroing the full NRows-by-NCols extent first.
func COOToDense(m *COOMatrix, layout blasx.Layout, mat []float64, ld int) {
	strideRow, strideCol := denseStrides(layout, m.NRows, m.NCols, ld)
	for i := 0; i < m.NRows; i++ {
		for j := 0; j < m.NCols; j++ {
			mat[i*strideRow+j*strideCol] = 0
		}
	}
	for ell := 0; ell < m.NNZ; ell++ {
		i := m.Rows[ell] - int(m.Base)
		j := m.Cols[ell] - int(m.Base)
		mat[i*strideRow+j*strideCol] = m.Vals[ell]
	}
}

// denseStrides translates (layout, ld) into row and column strides,
// checking that ld is large enough for the logical extent.
func denseStrides(layout blasx.Layout, nRows, nCols, ld int) (strideRow, strideCol int) {
	if layout == blasx.ColMajor {
		internal.Require(ld >= nRows, "leading dimension %d < n_rows %d", ld, nRows)
		return 1, ld
	}
	internal.Require(ld >= nCols, "leading dimension %d < n_cols %d", ld, nCols)
	return ld, 1
}
