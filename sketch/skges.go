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
	"github.com/aryamanjeendgar/RandBLAS/sparse"
)

// Lskges computes B = alpha*op(submat(S))*op(A) + beta*B for a sparse
// sketching operator S, where op(submat(S)) is d-by-m, op(A) is m-by-n and
// B is d-by-n in the given layout.
//
// If S has not been sampled, a call-scoped copy is sampled from S's seed
// state and used instead; S itself is left unsampled.
func Lskges(layout blasx.Layout, opS, opA blasx.Transpose, d, n, m int, alpha float64, s *SparseSkOp, roS, coS int, a []float64, lda int, beta float64, b []float64, ldb int) {
	if s.NNZ < 0 {
		scratch := NewSparseSkOp(s.Dist, s.SeedState)
		FillSparse(scratch)
		Lskges(layout, opS, opA, d, n, m, alpha, scratch, roS, coS, a, lda, beta, b, ldb)
		return
	}
	sparse.LeftSpmm(layout, opS, opA, d, n, m, alpha, s.COOView(), roS, coS, a, lda, beta, b, ldb)
}

// Rskges computes B = alpha*op(A)*op(submat(S)) + beta*B for a sparse
// sketching operator S, where op(A) is m-by-n, op(submat(S)) is n-by-d and
// B is m-by-d in the given layout. Lazy sampling follows Lskges.
func Rskges(layout blasx.Layout, opA, opS blasx.Transpose, m, d, n int, alpha float64, a []float64, lda int, s *SparseSkOp, roS, coS int, beta float64, b []float64, ldb int) {
	if s.NNZ < 0 {
		scratch := NewSparseSkOp(s.Dist, s.SeedState)
		FillSparse(scratch)
		Rskges(layout, opA, opS, m, d, n, alpha, a, lda, scratch, roS, coS, beta, b, ldb)
		return
	}
	sparse.RightSpmm(layout, opA, opS, m, d, n, alpha, a, lda, s.COOView(), roS, coS, beta, b, ldb)
}
