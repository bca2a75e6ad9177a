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

import "github.com/aryamanjeendgar/RandBLAS/blasx"

// DimsBeforeOp maps the shape (rows, cols) of op(X) back to the shape of X
// itself: the identity for NoTrans, the swap for Trans.
func DimsBeforeOp(rows, cols int, op blasx.Transpose) (int, int) {
	if op == blasx.NoTrans {
		return rows, cols
	}
	return cols, rows
}

// OffsetAndLeadingDim returns the linear offset of element (ro, co) in an
// nRows-by-nCols matrix stored contiguously in the given layout, together
// with the leading dimension that addresses the submatrix rooted there.
func OffsetAndLeadingDim(layout blasx.Layout, nRows, nCols, ro, co int) (offset, ld int) {
	if layout == blasx.ColMajor {
		return ro + co*nRows, nRows
	}
	return ro*nCols + co, nCols
}
