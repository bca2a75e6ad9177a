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
	"testing"

	"github.com/aryamanjeendgar/RandBLAS/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vectorCounts tallies nonzeros per index along the given axis.
func vectorCounts(s *SparseSkOp, byCols bool) map[int]int {
	counts := map[int]int{}
	for ell := 0; ell < s.NNZ; ell++ {
		if byCols {
			counts[s.Cols[ell]]++
		} else {
			counts[s.Rows[ell]]++
		}
	}
	return counts
}

func TestNewSparseSkOpIsUnsampled(t *testing.T) {
	s := NewSparseSkOp(SparseDist{NRows: 6, NCols: 20, VecNNZ: 3, Major: ShortAxis}, rng.NewState(1))
	assert.False(t, s.IsSampled())
	assert.Equal(t, -1, s.NNZ)
	r, c := s.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 20, c)
}

func TestNewSparseSkOpVecNNZOutOfRangePanics(t *testing.T) {
	// Wide short-axis operator: vectors have length NRows.
	assert.Panics(t, func() {
		NewSparseSkOp(SparseDist{NRows: 6, NCols: 20, VecNNZ: 7, Major: ShortAxis}, rng.NewState(1))
	})
	assert.Panics(t, func() {
		NewSparseSkOp(SparseDist{NRows: 6, NCols: 20, VecNNZ: 0, Major: ShortAxis}, rng.NewState(1))
	})
}

func TestFillSparseWideShortAxis(t *testing.T) {
	// Wide + short axis: every column is a sparse vector with VecNNZ
	// entries at distinct rows.
	dist := SparseDist{NRows: 6, NCols: 20, VecNNZ: 3, Major: ShortAxis}
	s := NewSparseSkOp(dist, rng.NewState(77))
	FillSparse(s)
	require.True(t, s.IsSampled())
	require.Equal(t, 3*20, s.NNZ)

	counts := vectorCounts(s, true)
	for j := 0; j < 20; j++ {
		assert.Equal(t, 3, counts[j], "column %d", j)
	}
	perCol := map[int]map[int]bool{}
	for ell := 0; ell < s.NNZ; ell++ {
		require.GreaterOrEqual(t, s.Rows[ell], 0)
		require.Less(t, s.Rows[ell], 6)
		if perCol[s.Cols[ell]] == nil {
			perCol[s.Cols[ell]] = map[int]bool{}
		}
		require.False(t, perCol[s.Cols[ell]][s.Rows[ell]], "duplicate row in column %d", s.Cols[ell])
		perCol[s.Cols[ell]][s.Rows[ell]] = true
		assert.True(t, s.Vals[ell] == 1 || s.Vals[ell] == -1)
	}
}

func TestFillSparseTallShortAxis(t *testing.T) {
	// Tall + short axis: every row is a sparse vector with VecNNZ entries.
	dist := SparseDist{NRows: 20, NCols: 6, VecNNZ: 3, Major: ShortAxis}
	s := NewSparseSkOp(dist, rng.NewState(77))
	FillSparse(s)
	require.Equal(t, 3*20, s.NNZ)
	counts := vectorCounts(s, false)
	for i := 0; i < 20; i++ {
		assert.Equal(t, 3, counts[i], "row %d", i)
	}
	for ell := 0; ell < s.NNZ; ell++ {
		require.GreaterOrEqual(t, s.Cols[ell], 0)
		require.Less(t, s.Cols[ell], 6)
	}
}

func TestFillSparseLongAxis(t *testing.T) {
	// Wide + long axis: every row is a sparse vector of length NCols.
	dist := SparseDist{NRows: 6, NCols: 20, VecNNZ: 5, Major: LongAxis}
	s := NewSparseSkOp(dist, rng.NewState(81))
	FillSparse(s)
	require.Equal(t, 5*6, s.NNZ)
	counts := vectorCounts(s, false)
	for i := 0; i < 6; i++ {
		assert.Equal(t, 5, counts[i], "row %d", i)
	}
}

func TestFillSparseDeterministic(t *testing.T) {
	dist := SparseDist{NRows: 8, NCols: 30, VecNNZ: 4, Major: ShortAxis}
	a := NewSparseSkOp(dist, rng.NewState(101))
	b := NewSparseSkOp(dist, rng.NewState(101))
	FillSparse(a)
	FillSparse(b)
	assert.Equal(t, a.Rows, b.Rows)
	assert.Equal(t, a.Cols, b.Cols)
	assert.Equal(t, a.Vals, b.Vals)
	assert.Equal(t, a.NextState, b.NextState)
}

func TestCOOViewSharesArrays(t *testing.T) {
	dist := SparseDist{NRows: 4, NCols: 10, VecNNZ: 2, Major: ShortAxis}
	s := NewSparseSkOp(dist, rng.NewState(7))
	FillSparse(s)
	view := s.COOView()
	assert.Equal(t, s.NNZ, view.NNZ)
	assert.False(t, view.OwnsMemory())
	view.Vals[0] = 42
	assert.Equal(t, 42.0, s.Vals[0])
}

func TestCOOViewUnsampledPanics(t *testing.T) {
	s := NewSparseSkOp(SparseDist{NRows: 4, NCols: 10, VecNNZ: 2, Major: ShortAxis}, rng.NewState(7))
	assert.Panics(t, func() { s.COOView() })
}
