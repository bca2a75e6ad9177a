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

package rng

import "github.com/aryamanjeendgar/RandBLAS/internal"

// SampleIndicesIIDUniform fills idxs with independent uniform draws from
// [0, n) and returns the advanced state. One 32-bit word is consumed per
// draw, so the counter advances by ceil(len(idxs)/4).
func SampleIndicesIIDUniform(n int, idxs []int, s State) State {
	internal.Require(n > 0 || len(idxs) == 0, "SampleIndicesIIDUniform: empty range with %d requested draws", len(idxs))
	ws := newWordStream(s)
	for i := range idxs {
		idxs[i] = int(ws.next() % uint32(n))
	}
	return ws.state()
}

// RepeatedFisherYates runs dimMinor independent partial Fisher-Yates
// shuffles, each sampling k distinct indices from [0, dimMajor) without
// replacement. For sample j of vector i, written at position i*k+j:
//
//   - idxsMajor receives the sampled major-axis index,
//   - idxsMinor receives i,
//   - vals, if non-nil, receives an independent Rademacher sign.
//
// The working array is repaired after every vector instead of reallocated,
// so the cost is O(dimMinor*k + dimMajor). Index and sign draws consume one
// word each from a single stream; the returned state reflects the total
// number of words consumed, rounded up to a whole block.
func RepeatedFisherYates(s State, k, dimMajor, dimMinor int, idxsMajor, idxsMinor []int, vals []float64) State {
	internal.Require(0 <= k && k <= dimMajor, "RepeatedFisherYates: k=%d out of range for dimMajor=%d", k, dimMajor)
	total := k * dimMinor
	internal.Require(len(idxsMajor) >= total, "RepeatedFisherYates: idxsMajor has length %d, need %d", len(idxsMajor), total)
	internal.Require(len(idxsMinor) >= total, "RepeatedFisherYates: idxsMinor has length %d, need %d", len(idxsMinor), total)
	internal.Require(vals == nil || len(vals) >= total, "RepeatedFisherYates: vals has length %d, need %d", len(vals), total)

	work := make([]int, dimMajor)
	for i := range work {
		work[i] = i
	}
	pivots := make([]int, k)
	ws := newWordStream(s)
	for i := 0; i < dimMinor; i++ {
		for j := 0; j < k; j++ {
			ell := j + int(ws.next()%uint32(dimMajor-j))
			pivots[j] = ell
			sampled := work[ell]
			work[ell] = work[j]
			work[j] = sampled
			idxsMajor[i*k+j] = sampled
			idxsMinor[i*k+j] = i
			if vals != nil {
				if ws.next()&1 == 0 {
					vals[i*k+j] = 1
				} else {
					vals[i*k+j] = -1
				}
			}
		}
		// Undo the swaps so the next vector samples from the identity again.
		for j := k - 1; j >= 0; j-- {
			ell := pivots[j]
			work[j], work[ell] = work[ell], work[j]
		}
	}
	return ws.state()
}
