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
	"github.com/aryamanjeendgar/RandBLAS/rng"
)

// DenseDistName selects the scalar distribution of a dense operator's
// entries.
type DenseDistName byte

const (
	// Gaussian entries are i.i.d. standard normal.
	Gaussian DenseDistName = 'G'
	// Uniform entries are i.i.d. uniform over (-1, 1).
	Uniform DenseDistName = 'U'
)

// DenseDist describes a distribution over dense sketching operators: a
// shape plus a scalar entry distribution. Entry (i, j) of an operator drawn
// from the distribution is value number i*NCols+j of the seed state's
// random stream, so any window of the operator can be synthesized without
// generating the rest.
type DenseDist struct {
	NRows  int
	NCols  int
	Family DenseDistName
}

// DenseSkOp is a dense sketching operator. Buf is nil until the operator is
// materialized; the entries are defined by (Dist, SeedState) either way.
// NextState is meaningful once the operator has been filled.
type DenseSkOp struct {
	Dist      DenseDist
	SeedState rng.State
	NextState rng.State
	NRows     int
	NCols     int
	// Layout is how Buf is linearized when non-nil. FillDense materializes
	// row-major; wrapped operators may use either layout.
	Layout blasx.Layout
	Buf    []float64
}

// NewDenseSkOp returns an unmaterialized operator. Its entries are fully
// determined already; FillDense, or any kernel that needs them, realizes
// them on demand.
func NewDenseSkOp(dist DenseDist, state rng.State) *DenseSkOp {
	internal.Require(dist.NRows >= 0 && dist.NCols >= 0,
		"NewDenseSkOp: negative dimension (%d, %d)", dist.NRows, dist.NCols)
	internal.Require(dist.Family == Gaussian || dist.Family == Uniform,
		"NewDenseSkOp: unknown distribution family %q", dist.Family)
	return &DenseSkOp{
		Dist:      dist,
		SeedState: state,
		NRows:     dist.NRows,
		NCols:     dist.NCols,
		Layout:    blasx.RowMajor,
	}
}

// WrapDenseSkOp returns a materialized operator over a caller-owned buffer,
// which must hold at least NRows*NCols values in the given layout and must
// outlive the operator.
func WrapDenseSkOp(dist DenseDist, state rng.State, layout blasx.Layout, buf []float64) *DenseSkOp {
	internal.Require(len(buf) >= dist.NRows*dist.NCols,
		"WrapDenseSkOp: buffer holds %d values, need %d", len(buf), dist.NRows*dist.NCols)
	s := NewDenseSkOp(dist, state)
	s.Layout = layout
	s.Buf = buf
	return s
}

// Dims returns the operator's (rows, cols) shape.
func (s *DenseSkOp) Dims() (int, int) { return s.NRows, s.NCols }

// IsMaterialized reports whether the operator has a backing buffer.
func (s *DenseSkOp) IsMaterialized() bool { return s.Buf != nil }

// fillStream writes consecutive stream values for the family into dst.
func fillStream(family DenseDistName, dst []float64, state rng.State) rng.State {
	if family == Gaussian {
		return rng.Normals(dst, state)
	}
	return rng.Uniforms(dst, state)
}

// streamValueAt reads a single stream position for the family.
func streamValueAt(family DenseDistName, state rng.State, p uint64) float64 {
	if family == Gaussian {
		return rng.NormalAt(state, p)
	}
	return rng.UniformAt(state, p)
}

// FillDenseUnpacked fills buf with an operator drawn from dist, reading the
// stream seeded by state, and returns the layout of the filled data
// (row-major) along with the advanced state. Chaining the returned state
// into further fills continues the stream; refilling with the same input
// state reproduces the same operator.
func FillDenseUnpacked(dist DenseDist, buf []float64, state rng.State) (blasx.Layout, rng.State) {
	n := dist.NRows * dist.NCols
	internal.Require(len(buf) >= n, "FillDenseUnpacked: buffer holds %d values, need %d", len(buf), n)
	next := fillStream(dist.Family, buf[:n], state)
	return blasx.RowMajor, next
}

// FillDense materializes s from its own seed state, allocating the buffer
// if needed, and returns the advanced state. The result is the same no
// matter how often it is called; concurrent calls on one operator require
// external synchronization.
func FillDense(s *DenseSkOp) rng.State {
	if s.Buf == nil {
		s.Buf = make([]float64, s.NRows*s.NCols)
	}
	layout, next := FillDenseUnpacked(s.Dist, s.Buf, s.SeedState)
	s.Layout = layout
	s.NextState = next
	return next
}

// submatrixAsBlackbox synthesizes the nRows-by-nCols window of s rooted at
// (ro, co) as a freshly materialized operator with zero offsets. It reads
// only the stream positions inside the window, so the cost is proportional
// to the window, not to s. Nothing is cached: every call recomputes the
// window, keeping unmaterialized operators safe for concurrent reads.
func submatrixAsBlackbox(s *DenseSkOp, nRows, nCols, ro, co int) *DenseSkOp {
	internal.Require(ro >= 0 && co >= 0, "submatrix offset (%d, %d) is negative", ro, co)
	internal.Require(s.NRows >= nRows+ro, "operator has %d rows, submatrix needs %d+%d", s.NRows, nRows, ro)
	internal.Require(s.NCols >= nCols+co, "operator has %d cols, submatrix needs %d+%d", s.NCols, nCols, co)
	buf := make([]float64, nRows*nCols)
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			p := uint64((ro+i)*s.NCols + (co + j))
			buf[i*nCols+j] = streamValueAt(s.Dist.Family, s.SeedState, p)
		}
	}
	sub := NewDenseSkOp(DenseDist{NRows: nRows, NCols: nCols, Family: s.Dist.Family}, s.SeedState)
	sub.Buf = buf
	return sub
}
