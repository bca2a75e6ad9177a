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
	"fmt"
	"testing"

	"github.com/aryamanjeendgar/RandBLAS/blasx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at reads element (i, j) of a matrix stored in layout with leading
// dimension ld.
func at(layout blasx.Layout, buf []float64, ld, i, j int) float64 {
	if layout == blasx.ColMajor {
		return buf[i+j*ld]
	}
	return buf[i*ld+j]
}

// setAt writes element (i, j).
func setAt(layout blasx.Layout, buf []float64, ld, i, j int, v float64) {
	if layout == blasx.ColMajor {
		buf[i+j*ld] = v
	} else {
		buf[i*ld+j] = v
	}
}

// spmmTestCOO builds a 7x6 matrix with a deterministic scattered pattern.
func spmmTestCOO(t *testing.T) *COOMatrix {
	t.Helper()
	m := NewCOOMatrix(7, 6)
	var rows, cols []int
	var vals []float64
	for i := 0; i < 7; i++ {
		for j := 0; j < 6; j++ {
			if (i*5+j*3)%4 == 0 {
				rows = append(rows, i)
				cols = append(cols, j)
				vals = append(vals, float64(i-j)+0.5)
			}
		}
	}
	m.Reserve(len(vals))
	copy(m.Rows, rows)
	copy(m.Cols, cols)
	copy(m.Vals, vals)
	m.Sort = COOSortType(m.NNZ, m.Rows, m.Cols)
	return m
}

// denseOf expands m and applies op, returning a rows-by-cols row-major
// matrix.
func denseOf(m *COOMatrix, op blasx.Transpose) (d []float64, rows, cols int) {
	full := make([]float64, m.NRows*m.NCols)
	COOToDense(m, blasx.RowMajor, full, m.NCols)
	if op == blasx.NoTrans {
		return full, m.NRows, m.NCols
	}
	tr := make([]float64, len(full))
	for i := 0; i < m.NRows; i++ {
		for j := 0; j < m.NCols; j++ {
			tr[j*m.NRows+i] = full[i*m.NCols+j]
		}
	}
	return tr, m.NCols, m.NRows
}

// fillSeq fills buf with a deterministic non-repeating pattern.
func fillSeq(buf []float64, scale float64) {
	for i := range buf {
		buf[i] = scale * (float64(i%11) - 5)
	}
}

func TestLeftSpmmMatchesDense(t *testing.T) {
	s := spmmTestCOO(t)
	const n = 4
	const alpha, beta = 1.25, -0.5
	for _, layout := range []blasx.Layout{blasx.RowMajor, blasx.ColMajor} {
		for _, opS := range []blasx.Transpose{blasx.NoTrans, blasx.Trans} {
			for _, opA := range []blasx.Transpose{blasx.NoTrans, blasx.Trans} {
				name := fmt.Sprintf("%v_opS=%v_opA=%v", layout, opS, opA)
				t.Run(name, func(t *testing.T) {
					sOp, d, m := denseOf(s, opS)

					// op(A) is m-by-n; store A per opA in the test layout.
					rowsA, colsA := m, n
					if opA == blasx.Trans {
						rowsA, colsA = n, m
					}
					lda := colsA
					if layout == blasx.ColMajor {
						lda = rowsA
					}
					a := make([]float64, rowsA*colsA)
					fillSeq(a, 0.5)

					ldb := n
					if layout == blasx.ColMajor {
						ldb = d
					}
					b := make([]float64, d*n)
					fillSeq(b, 2)

					want := make([]float64, d*n)
					for i := 0; i < d; i++ {
						for j := 0; j < n; j++ {
							sum := 0.0
							for k := 0; k < m; k++ {
								ak := 0.0
								if opA == blasx.NoTrans {
									ak = at(layout, a, lda, k, j)
								} else {
									ak = at(layout, a, lda, j, k)
								}
								sum += sOp[i*m+k] * ak
							}
							want[i*n+j] = alpha*sum + beta*at(layout, b, ldb, i, j)
						}
					}

					LeftSpmm(layout, opS, opA, d, n, m, alpha, s, 0, 0, a, lda, beta, b, ldb)
					for i := 0; i < d; i++ {
						for j := 0; j < n; j++ {
							assert.InDelta(t, want[i*n+j], at(layout, b, ldb, i, j), 1e-12, "entry (%d, %d)", i, j)
						}
					}
				})
			}
		}
	}
}

func TestLeftSpmmSubmatrix(t *testing.T) {
	s := spmmTestCOO(t)
	const d, m, n = 3, 2, 4
	const roS, coS = 2, 1

	full := make([]float64, s.NRows*s.NCols)
	COOToDense(s, blasx.RowMajor, full, s.NCols)

	a := make([]float64, m*n)
	fillSeq(a, 1)
	b := make([]float64, d*n)

	want := make([]float64, d*n)
	for i := 0; i < d; i++ {
		for j := 0; j < n; j++ {
			sum := 0.0
			for k := 0; k < m; k++ {
				sum += full[(roS+i)*s.NCols+(coS+k)] * a[k*n+j]
			}
			want[i*n+j] = sum
		}
	}

	LeftSpmm(blasx.RowMajor, blasx.NoTrans, blasx.NoTrans, d, n, m, 1, s, roS, coS, a, n, 0, b, n)
	for i := range want {
		assert.InDelta(t, want[i], b[i], 1e-12)
	}
}

func TestLeftSpmmRestoresSortOrder(t *testing.T) {
	s := spmmTestCOO(t)
	SortCOOData(SortCSR, s)
	before := cooTriples(s)

	a := make([]float64, s.NCols*2)
	fillSeq(a, 1)
	b := make([]float64, s.NRows*2)
	LeftSpmm(blasx.RowMajor, blasx.NoTrans, blasx.NoTrans, s.NRows, 2, s.NCols, 1, s, 0, 0, a, 2, 0, b, 2)

	assert.Equal(t, SortCSR, s.Sort)
	assert.Equal(t, SortCSR, COOSortType(s.NNZ, s.Rows, s.Cols))
	assert.Equal(t, before, cooTriples(s))
}

func TestLeftSpmmBetaZeroIgnoresGarbage(t *testing.T) {
	s := spmmTestCOO(t)
	a := make([]float64, s.NCols*3)
	fillSeq(a, 1)

	clean := make([]float64, s.NRows*3)
	LeftSpmm(blasx.RowMajor, blasx.NoTrans, blasx.NoTrans, s.NRows, 3, s.NCols, 1, s, 0, 0, a, 3, 0, clean, 3)

	dirty := make([]float64, s.NRows*3)
	for i := range dirty {
		dirty[i] = 1e300
	}
	LeftSpmm(blasx.RowMajor, blasx.NoTrans, blasx.NoTrans, s.NRows, 3, s.NCols, 1, s, 0, 0, a, 3, 0, dirty, 3)
	assert.Equal(t, clean, dirty)
}

func TestRightSpmmMatchesDense(t *testing.T) {
	s := spmmTestCOO(t)
	const m = 3
	const alpha, beta = 0.75, 2.0
	for _, layout := range []blasx.Layout{blasx.RowMajor, blasx.ColMajor} {
		for _, opS := range []blasx.Transpose{blasx.NoTrans, blasx.Trans} {
			for _, opA := range []blasx.Transpose{blasx.NoTrans, blasx.Trans} {
				name := fmt.Sprintf("%v_opS=%v_opA=%v", layout, opS, opA)
				t.Run(name, func(t *testing.T) {
					// op(A) is m-by-n, op(S) is n-by-d, B is m-by-d.
					sOp, n, d := denseOf(s, opS)

					rowsA, colsA := m, n
					if opA == blasx.Trans {
						rowsA, colsA = n, m
					}
					lda := colsA
					if layout == blasx.ColMajor {
						lda = rowsA
					}
					a := make([]float64, rowsA*colsA)
					fillSeq(a, 0.25)

					ldb := d
					if layout == blasx.ColMajor {
						ldb = m
					}
					b := make([]float64, m*d)
					fillSeq(b, 3)

					want := make([]float64, m*d)
					for i := 0; i < m; i++ {
						for j := 0; j < d; j++ {
							sum := 0.0
							for k := 0; k < n; k++ {
								ak := 0.0
								if opA == blasx.NoTrans {
									ak = at(layout, a, lda, i, k)
								} else {
									ak = at(layout, a, lda, k, i)
								}
								sum += ak * sOp[k*d+j]
							}
							want[i*d+j] = alpha*sum + beta*at(layout, b, ldb, i, j)
						}
					}

					RightSpmm(layout, opA, opS, m, d, n, alpha, a, lda, s, 0, 0, beta, b, ldb)
					for i := 0; i < m; i++ {
						for j := 0; j < d; j++ {
							assert.InDelta(t, want[i*d+j], at(layout, b, ldb, i, j), 1e-12, "entry (%d, %d)", i, j)
						}
					}
				})
			}
		}
	}
}

func TestApplyCOOLeftRejectsOneBasedIndices(t *testing.T) {
	m := NewCOOMatrix(2, 2)
	m.Base = One
	m.Reserve(1)
	m.Rows[0], m.Cols[0], m.Vals[0] = 1, 1, 2.5
	assert.Panics(t, func() {
		ApplyCOOLeft(1, blasx.RowMajor, blasx.RowMajor, 2, 1, 2, m, 0, 0, make([]float64, 2), 1, make([]float64, 2), 1)
	})
}

func TestFilteredCSCFromCOO(t *testing.T) {
	s := spmmTestCOO(t)
	SortCOOData(SortCSC, s)

	const rowStart, rowEnd, colStart, colEnd = 1, 5, 2, 5
	newVals := make([]float64, s.NNZ)
	newRows := make([]int, s.NNZ)
	newColPtr := make([]int, colEnd-colStart+1)
	nnz := FilteredCSCFromCOO(s.Vals, s.Rows, s.Cols, s.NNZ, colStart, colEnd, rowStart, rowEnd, newVals, newRows, newColPtr)

	full := make([]float64, s.NRows*s.NCols)
	COOToDense(s, blasx.RowMajor, full, s.NCols)

	require.Equal(t, 0, newColPtr[0])
	require.Equal(t, nnz, newColPtr[colEnd-colStart])
	got := make([]float64, (rowEnd-rowStart)*(colEnd-colStart))
	for j := 0; j < colEnd-colStart; j++ {
		for ell := newColPtr[j]; ell < newColPtr[j+1]; ell++ {
			got[newRows[ell]*(colEnd-colStart)+j] = newVals[ell]
		}
	}
	for i := 0; i < rowEnd-rowStart; i++ {
		for j := 0; j < colEnd-colStart; j++ {
			assert.Equal(t, full[(rowStart+i)*s.NCols+(colStart+j)], got[i*(colEnd-colStart)+j], "entry (%d, %d)", i, j)
		}
	}
}
