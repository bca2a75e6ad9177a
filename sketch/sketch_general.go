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

// SketchingOperator is the common surface of dense and sparse sketching
// operators, as accepted by SketchLeft and SketchRight.
type SketchingOperator interface {
	// Dims returns the operator's (rows, cols) shape.
	Dims() (nRows, nCols int)
}

var (
	_ SketchingOperator = (*DenseSkOp)(nil)
	_ SketchingOperator = (*SparseSkOp)(nil)
)

// SketchLeftSubmat computes B = alpha*op(submat(S))*op(A) + beta*B,
// dispatching on the concrete operator kind. op(submat(S)) is d-by-m,
// op(A) is m-by-n and B is d-by-n; (roS, coS) addresses the window of S.
func SketchLeftSubmat(layout blasx.Layout, opS, opA blasx.Transpose, d, n, m int, alpha float64, s SketchingOperator, roS, coS int, a []float64, lda int, beta float64, b []float64, ldb int) {
	switch op := s.(type) {
	case *DenseSkOp:
		Lskge3(layout, opS, opA, d, n, m, alpha, op, roS, coS, a, lda, beta, b, ldb)
	case *SparseSkOp:
		Lskges(layout, opS, opA, d, n, m, alpha, op, roS, coS, a, lda, beta, b, ldb)
	default:
		internal.Require(false, "SketchLeftSubmat: unsupported operator type %T", s)
	}
}

// SketchRightSubmat computes B = alpha*op(A)*op(submat(S)) + beta*B,
// dispatching on the concrete operator kind. op(A) is m-by-n,
// op(submat(S)) is n-by-d and B is m-by-d.
func SketchRightSubmat(layout blasx.Layout, opA, opS blasx.Transpose, m, d, n int, alpha float64, a []float64, lda int, s SketchingOperator, roS, coS int, beta float64, b []float64, ldb int) {
	switch op := s.(type) {
	case *DenseSkOp:
		Rskge3(layout, opA, opS, m, d, n, alpha, a, lda, op, roS, coS, beta, b, ldb)
	case *SparseSkOp:
		Rskges(layout, opA, opS, m, d, n, alpha, a, lda, op, roS, coS, beta, b, ldb)
	default:
		internal.Require(false, "SketchRightSubmat: unsupported operator type %T", s)
	}
}

// SketchLeft computes B = alpha*op(S)*op(A) + beta*B using the whole
// operator, checking that S's shape matches the problem exactly:
// op(S) must be d-by-m.
func SketchLeft(layout blasx.Layout, opS, opA blasx.Transpose, d, n, m int, alpha float64, s SketchingOperator, a []float64, lda int, beta float64, b []float64, ldb int) {
	rows, cols := s.Dims()
	wantRows, wantCols := DimsBeforeOp(d, m, opS)
	internal.Require(rows == wantRows && cols == wantCols,
		"SketchLeft: operator is %d-by-%d, need %d-by-%d", rows, cols, wantRows, wantCols)
	SketchLeftSubmat(layout, opS, opA, d, n, m, alpha, s, 0, 0, a, lda, beta, b, ldb)
}

// SketchRight computes B = alpha*op(A)*op(S) + beta*B using the whole
// operator; op(S) must be n-by-d.
func SketchRight(layout blasx.Layout, opA, opS blasx.Transpose, m, d, n int, alpha float64, a []float64, lda int, s SketchingOperator, beta float64, b []float64, ldb int) {
	rows, cols := s.Dims()
	wantRows, wantCols := DimsBeforeOp(n, d, opS)
	internal.Require(rows == wantRows && cols == wantCols,
		"SketchRight: operator is %d-by-%d, need %d-by-%d", rows, cols, wantRows, wantCols)
	SketchRightSubmat(layout, opA, opS, m, d, n, alpha, a, lda, s, 0, 0, beta, b, ldb)
}
