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

package sketch

import (
	"github.com/aryamanjeendgar/RandBLAS/blasx"
	"github.com/aryamanjeendgar/RandBLAS/internal"
)

// scaleMatrix applies B *= beta to the rows-by-cols matrix (b, ldb) in
// layout. It is the degenerate branch of the kernels when the inner
// dimension is zero and no product term exists.
func scaleMatrix(layout blasx.Layout, rows, cols int, beta float64, b []float64, ldb int) {
	lines, lineLen := rows, cols
	if layout == blasx.ColMajor {
		lines, lineLen = cols, rows
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

// Lskge3 computes B = alpha*op(submat(S))*op(A) + beta*B for a dense
// sketching operator S, where op(submat(S)) is d-by-m, op(A) is m-by-n and
// B is d-by-n. submat(S) is the window of S rooted at (roS, coS); its shape
// before opS is implied by (opS, d, m). A and B share the given layout; S's
// buffer keeps its own layout, which is reconciled by flipping opS when the
// two disagree.
//
// If S is unmaterialized, exactly the addressed window is synthesized for
// the duration of the call and S itself is left untouched.
func Lskge3(layout blasx.Layout, opS, opA blasx.Transpose, d, n, m int, alpha float64, s *DenseSkOp, roS, coS int, a []float64, lda int, beta float64, b []float64, ldb int) {
	rowsS, colsS := DimsBeforeOp(d, m, opS)
	if s.Buf == nil {
		sub := submatrixAsBlackbox(s, rowsS, colsS, roS, coS)
		Lskge3(layout, opS, opA, d, n, m, alpha, sub, 0, 0, a, lda, beta, b, ldb)
		return
	}
	internal.Require(roS >= 0 && coS >= 0, "Lskge3: negative submatrix offset (%d, %d)", roS, coS)
	internal.Require(s.NRows >= rowsS+roS, "Lskge3: S has %d rows, submatrix needs %d+%d", s.NRows, rowsS, roS)
	internal.Require(s.NCols >= colsS+coS, "Lskge3: S has %d cols, submatrix needs %d+%d", s.NCols, colsS, coS)

	rowsA, colsA := DimsBeforeOp(m, n, opA)
	if layout == blasx.ColMajor {
		internal.Require(lda >= rowsA, "Lskge3: lda=%d < %d", lda, rowsA)
		internal.Require(ldb >= d, "Lskge3: ldb=%d < %d", ldb, d)
	} else {
		internal.Require(lda >= colsA, "Lskge3: lda=%d < %d", lda, colsA)
		internal.Require(ldb >= n, "Lskge3: ldb=%d < %d", ldb, n)
	}

	if d == 0 || n == 0 {
		return
	}
	if m == 0 {
		scaleMatrix(layout, d, n, beta, b, ldb)
		return
	}

	pos, lds := OffsetAndLeadingDim(s.Layout, s.NRows, s.NCols, roS, coS)
	opS2 := opS
	if s.Layout != layout {
		// Reading S's buffer in the caller's layout transposes it; flip the
		// operator flag to compensate.
		opS2 = blasx.FlipTranspose(opS)
	}
	blasx.Gemm(layout, opS2, opA, d, n, m, alpha, s.Buf[pos:], lds, a, lda, beta, b, ldb)
}

// Rskge3 computes B = alpha*op(A)*op(submat(S)) + beta*B for a dense
// sketching operator S, where op(A) is m-by-n, op(submat(S)) is n-by-d and
// B is m-by-d. Addressing and lazy materialization follow Lskge3.
func Rskge3(layout blasx.Layout, opA, opS blasx.Transpose, m, d, n int, alpha float64, a []float64, lda int, s *DenseSkOp, roS, coS int, beta float64, b []float64, ldb int) {
	rowsS, colsS := DimsBeforeOp(n, d, opS)
	if s.Buf == nil {
		sub := submatrixAsBlackbox(s, rowsS, colsS, roS, coS)
		Rskge3(layout, opA, opS, m, d, n, alpha, a, lda, sub, 0, 0, beta, b, ldb)
		return
	}
	internal.Require(roS >= 0 && coS >= 0, "Rskge3: negative submatrix offset (%d, %d)", roS, coS)
	internal.Require(s.NRows >= rowsS+roS, "Rskge3: S has %d rows, submatrix needs %d+%d", s.NRows, rowsS, roS)
	internal.Require(s.NCols >= colsS+coS, "Rskge3: S has %d cols, submatrix needs %d+%d", s.NCols, colsS, coS)

	rowsA, colsA := DimsBeforeOp(m, n, opA)
	if layout == blasx.ColMajor {
		internal.Require(lda >= rowsA, "Rskge3: lda=%d < %d", lda, rowsA)
		internal.Require(ldb >= m, "Rskge3: ldb=%d < %d", ldb, m)
	} else {
		internal.Require(lda >= colsA, "Rskge3: lda=%d < %d", lda, colsA)
		internal.Require(ldb >= d, "Rskge3: ldb=%d < %d", ldb, d)
	}

	if m == 0 || d == 0 {
		return
	}
	if n == 0 {
		scaleMatrix(layout, m, d, beta, b, ldb)
		return
	}

	pos, lds := OffsetAndLeadingDim(s.Layout, s.NRows, s.NCols, roS, coS)
	opS2 := opS
	if s.Layout != layout {
		opS2 = blasx.FlipTranspose(opS)
	}
	blasx.Gemm(layout, opA, opS2, m, d, n, alpha, a, lda, s.Buf[pos:], lds, beta, b, ldb)
}
