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

// Package blasx exposes the small set of dense linear algebra primitives the
// sketching kernels delegate to, layered over gonum's pure-Go BLAS.
//
// gonum's BLAS surface is row-major only. blasx adds the storage Layout
// dimension that the classic C interfaces carry: column-major calls are
// rewritten into equivalent row-major calls on the swapped operands, which
// is an exact identity, not a data movement.
package blasx

import (
	"github.com/aryamanjeendgar/RandBLAS/internal"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/gonum"
)

// Layout identifies how a dense matrix is linearized into a flat buffer,
// following the BLAS convention.
type Layout byte

const (
	RowMajor Layout = 'R'
	ColMajor Layout = 'C'
)

func (l Layout) String() string {
	if l == RowMajor {
		return "RowMajor"
	}
	return "ColMajor"
}

// Flip returns the opposite storage layout.
func (l Layout) Flip() Layout {
	if l == RowMajor {
		return ColMajor
	}
	return RowMajor
}

// Transpose is re-exported from gonum so that callers of this module need a
// single import for the operator flags.
type Transpose = blas.Transpose

const (
	NoTrans = blas.NoTrans
	Trans   = blas.Trans
)

// FlipTranspose exchanges NoTrans and Trans.
func FlipTranspose(t Transpose) Transpose {
	if t == NoTrans {
		return Trans
	}
	return NoTrans
}

var impl gonum.Implementation

// Gemm computes c = alpha*op(a)*op(b) + beta*c, where op(a) is m-by-k,
// op(b) is k-by-n and c is m-by-n, all addressed through their leading
// dimensions in the given layout. Shape violations panic, per the BLAS
// contract.
func Gemm(layout Layout, tA, tB Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) {
	if layout == RowMajor {
		impl.Dgemm(tA, tB, m, n, k, alpha, a, lda, b, ldb, beta, c, ldc)
		return
	}
	// Column-major data read row-major is the transpose, so
	// C = op(A)*op(B) becomes C^T = op(B)^T * op(A)^T.
	impl.Dgemm(tB, tA, n, m, k, alpha, b, ldb, a, lda, beta, c, ldc)
}

// Scal scales x by alpha: x[i*incX] *= alpha for i in [0, n).
func Scal(n int, alpha float64, x []float64, incX int) {
	impl.Dscal(n, alpha, x, incX)
}

// Swap exchanges the elements of two strided vectors.
func Swap(n int, x []float64, incX int, y []float64, incY int) {
	impl.Dswap(n, x, incX, y, incY)
}

// Lacpy copies the m-by-n matrix addressed by (a, lda) into (b, ldb). Both
// matrices use the same layout; the leading dimensions may differ.
func Lacpy(layout Layout, m, n int, a []float64, lda int, b []float64, ldb int) {
	internal.Require(m >= 0 && n >= 0, "Lacpy: negative dimension (m=%d, n=%d)", m, n)
	if m == 0 || n == 0 {
		return
	}
	rows, cols := m, n
	if layout == ColMajor {
		// Columns are contiguous; walk them instead of rows.
		rows, cols = n, m
	}
	internal.Require(lda >= cols, "Lacpy: lda=%d < %d", lda, cols)
	internal.Require(ldb >= cols, "Lacpy: ldb=%d < %d", ldb, cols)
	internal.Require(len(a) >= (rows-1)*lda+cols, "Lacpy: source buffer too short")
	internal.Require(len(b) >= (rows-1)*ldb+cols, "Lacpy: destination buffer too short")
	for i := 0; i < rows; i++ {
		copy(b[i*ldb:i*ldb+cols], a[i*lda:i*lda+cols])
	}
}
