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
	"github.com/aryamanjeendgar/RandBLAS/internal"
	"github.com/aryamanjeendgar/RandBLAS/rng"
	"github.com/aryamanjeendgar/RandBLAS/sparse"
)

// MajorAxis selects which axis of a sparse operator carries the structured
// sparse vectors.
type MajorAxis byte

const (
	// ShortAxis places one sparse vector along each short-axis fiber: a
	// wide operator gets sparse columns, a tall one sparse rows. This is
	// the SASO family.
	ShortAxis MajorAxis = 'S'
	// LongAxis places the vectors along the long axis instead, as in
	// LESS-uniform operators.
	LongAxis MajorAxis = 'L'
)

// SparseDist describes a distribution over sparse sketching operators. The
// operator is a bundle of dimMinor independent sparse vectors, each of
// length dimMajor with exactly VecNNZ nonzero entries placed without
// replacement and valued with independent Rademacher signs.
type SparseDist struct {
	NRows  int
	NCols  int
	VecNNZ int
	Major  MajorAxis
}

// dims resolves the major-axis convention against the shape. majorIsRows
// reports that the sparse vectors run down the rows, i.e. each of the NCols
// columns is one sparse vector.
func (d SparseDist) dims() (dimMajor, dimMinor int, majorIsRows bool) {
	wide := d.NCols >= d.NRows
	if (d.Major == ShortAxis) == wide {
		return d.NRows, d.NCols, true
	}
	return d.NCols, d.NRows, false
}

// SparseSkOp is a sparse sketching operator. NNZ < 0 marks the operator as
// unsampled: the coordinate arrays are nil and the structure is defined by
// (Dist, SeedState) alone until FillSparse realizes it. NextState is
// meaningful once the operator has been sampled.
type SparseSkOp struct {
	Dist      SparseDist
	SeedState rng.State
	NextState rng.State
	NRows     int
	NCols     int
	NNZ       int
	Rows      []int
	Cols      []int
	Vals      []float64
}

// NewSparseSkOp returns an unsampled operator drawn from dist.
func NewSparseSkOp(dist SparseDist, state rng.State) *SparseSkOp {
	internal.Require(dist.NRows > 0 && dist.NCols > 0,
		"NewSparseSkOp: dimensions (%d, %d) must be positive", dist.NRows, dist.NCols)
	internal.Require(dist.Major == ShortAxis || dist.Major == LongAxis,
		"NewSparseSkOp: unknown major axis %q", dist.Major)
	dimMajor, _, _ := dist.dims()
	internal.Require(0 < dist.VecNNZ && dist.VecNNZ <= dimMajor,
		"NewSparseSkOp: VecNNZ=%d out of range (0, %d]", dist.VecNNZ, dimMajor)
	return &SparseSkOp{
		Dist:      dist,
		SeedState: state,
		NRows:     dist.NRows,
		NCols:     dist.NCols,
		NNZ:       -1,
	}
}

// Dims returns the operator's (rows, cols) shape.
func (s *SparseSkOp) Dims() (int, int) { return s.NRows, s.NCols }

// IsSampled reports whether the operator's coordinate data has been
// realized.
func (s *SparseSkOp) IsSampled() bool { return s.NNZ >= 0 }

// FillSparse samples s from its seed state and returns the advanced state.
// Resampling is deterministic: a second call reproduces the same structure.
// The realized operator has Dist.VecNNZ nonzeros in every one of its
// dimMinor sparse vectors.
func FillSparse(s *SparseSkOp) rng.State {
	dimMajor, dimMinor, majorIsRows := s.Dist.dims()
	total := s.Dist.VecNNZ * dimMinor
	idxsMajor := make([]int, total)
	idxsMinor := make([]int, total)
	vals := make([]float64, total)
	next := rng.RepeatedFisherYates(s.SeedState, s.Dist.VecNNZ, dimMajor, dimMinor, idxsMajor, idxsMinor, vals)
	if majorIsRows {
		s.Rows, s.Cols = idxsMajor, idxsMinor
	} else {
		s.Rows, s.Cols = idxsMinor, idxsMajor
	}
	s.Vals = vals
	s.NNZ = total
	s.NextState = next
	return next
}

// COOView wraps the sampled coordinate data as a borrowed COO matrix; the
// view shares s's arrays. The operator must be sampled.
func (s *SparseSkOp) COOView() *sparse.COOMatrix {
	internal.Require(s.NNZ >= 0, "COOView: operator has not been sampled")
	return sparse.WrapCOO(s.NRows, s.NCols, s.NNZ, s.Vals, s.Rows, s.Cols, true, sparse.Zero)
}
