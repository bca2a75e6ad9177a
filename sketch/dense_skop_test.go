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

	"github.com/aryamanjeendgar/RandBLAS/blasx"
	"github.com/aryamanjeendgar/RandBLAS/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDenseSkOpIsLazy(t *testing.T) {
	s := NewDenseSkOp(DenseDist{NRows: 5, NCols: 3, Family: Gaussian}, rng.NewState(1))
	assert.False(t, s.IsMaterialized())
	r, c := s.Dims()
	assert.Equal(t, 5, r)
	assert.Equal(t, 3, c)
}

func TestNewDenseSkOpBadFamilyPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDenseSkOp(DenseDist{NRows: 2, NCols: 2, Family: 'X'}, rng.NewState(1))
	})
}

func TestFillDenseDeterministic(t *testing.T) {
	dist := DenseDist{NRows: 6, NCols: 7, Family: Gaussian}
	a := NewDenseSkOp(dist, rng.NewState(99))
	b := NewDenseSkOp(dist, rng.NewState(99))
	FillDense(a)
	FillDense(b)
	assert.Equal(t, a.Buf, b.Buf)
	assert.Equal(t, a.NextState, b.NextState)
	assert.True(t, a.IsMaterialized())
	// 42 values, four per block.
	assert.Equal(t, uint64(11), a.NextState.BlocksFrom(a.SeedState))
}

func TestFillDenseMatchesStream(t *testing.T) {
	dist := DenseDist{NRows: 3, NCols: 4, Family: Uniform}
	s := NewDenseSkOp(dist, rng.NewState(7))
	FillDense(s)
	want := make([]float64, 12)
	rng.Uniforms(want, rng.NewState(7))
	assert.Equal(t, want, s.Buf)
	assert.Equal(t, blasx.RowMajor, s.Layout)
}

func TestFillDenseUnpacked(t *testing.T) {
	dist := DenseDist{NRows: 2, NCols: 5, Family: Gaussian}
	buf := make([]float64, 10)
	layout, next := FillDenseUnpacked(dist, buf, rng.NewState(13))
	assert.Equal(t, blasx.RowMajor, layout)

	s := NewDenseSkOp(dist, rng.NewState(13))
	FillDense(s)
	assert.Equal(t, s.Buf, buf)
	assert.Equal(t, s.NextState, next)
}

func TestWrapDenseSkOp(t *testing.T) {
	buf := []float64{1, 2, 3, 4, 5, 6}
	s := WrapDenseSkOp(DenseDist{NRows: 2, NCols: 3, Family: Uniform}, rng.NewState(0), blasx.ColMajor, buf)
	assert.True(t, s.IsMaterialized())
	assert.Equal(t, blasx.ColMajor, s.Layout)

	assert.Panics(t, func() {
		WrapDenseSkOp(DenseDist{NRows: 4, NCols: 4, Family: Uniform}, rng.NewState(0), blasx.RowMajor, buf)
	})
}

func TestSubmatrixAsBlackboxMatchesFill(t *testing.T) {
	dist := DenseDist{NRows: 6, NCols: 5, Family: Gaussian}
	full := NewDenseSkOp(dist, rng.NewState(21))
	FillDense(full)

	lazy := NewDenseSkOp(dist, rng.NewState(21))
	const nRows, nCols, ro, co = 3, 2, 2, 1
	sub := submatrixAsBlackbox(lazy, nRows, nCols, ro, co)
	require.True(t, sub.IsMaterialized())
	require.Equal(t, blasx.RowMajor, sub.Layout)
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			assert.Equal(t, full.Buf[(ro+i)*dist.NCols+(co+j)], sub.Buf[i*nCols+j], "entry (%d, %d)", i, j)
		}
	}
	// The source operator stays lazy.
	assert.False(t, lazy.IsMaterialized())
}

func TestSubmatrixAsBlackboxOutOfRangePanics(t *testing.T) {
	s := NewDenseSkOp(DenseDist{NRows: 4, NCols: 4, Family: Uniform}, rng.NewState(1))
	assert.Panics(t, func() { submatrixAsBlackbox(s, 3, 3, 2, 0) })
}
