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

import "math"

// u01 maps a 32-bit word to the open interval (0, 1).
func u01(x uint32) float64 {
	return (float64(x) + 0.5) * (1.0 / (1 << 32))
}

// uneg11 maps a 32-bit word to the open interval (-1, 1).
func uneg11(x uint32) float64 {
	return 2*u01(x) - 1
}

// boxMuller turns a pair of (0,1) uniforms into a pair of standard normals.
func boxMuller(u0, u1 float64) (float64, float64) {
	r := math.Sqrt(-2 * math.Log(u0))
	sin, cos := math.Sincos(2 * math.Pi * u1)
	return r * cos, r * sin
}

// normalsFromBlock expands one generator block into four standard normals.
func normalsFromBlock(blk [4]uint32) [4]float64 {
	z0, z1 := boxMuller(u01(blk[0]), u01(blk[1]))
	z2, z3 := boxMuller(u01(blk[2]), u01(blk[3]))
	return [4]float64{z0, z1, z2, z3}
}

// Uniforms fills dst with consecutive values of the uniform(-1, 1) stream
// seeded by s and returns the advanced state. Each counter increment yields
// four values, so filling k values advances the counter by ceil(k/4); a
// request split into two calls at a multiple of four continues the stream
// exactly, and in general advances the counter by at most one extra block.
func Uniforms(dst []float64, s State) State {
	for len(dst) > 0 {
		blk := s.Block()
		s = s.AdvanceBlocks(1)
		for i := 0; i < 4 && len(dst) > 0; i++ {
			dst[0] = uneg11(blk[i])
			dst = dst[1:]
		}
	}
	return s
}

// Normals fills dst with consecutive values of the standard normal stream
// seeded by s and returns the advanced state. Counter accounting matches
// Uniforms: four values per block, ceil(k/4) blocks for k values.
func Normals(dst []float64, s State) State {
	for len(dst) > 0 {
		z := normalsFromBlock(s.Block())
		s = s.AdvanceBlocks(1)
		for i := 0; i < 4 && len(dst) > 0; i++ {
			dst[0] = z[i]
			dst = dst[1:]
		}
	}
	return s
}

// UniformAt returns the value at position p of the uniform(-1, 1) stream
// seeded by s, without touching any other position. UniformAt(s, p) equals
// the p-th value written by Uniforms from the same state.
func UniformAt(s State, p uint64) float64 {
	blk := s.AdvanceBlocks(p / 4).Block()
	return uneg11(blk[p%4])
}

// NormalAt returns the value at position p of the standard normal stream
// seeded by s. NormalAt(s, p) equals the p-th value written by Normals from
// the same state.
func NormalAt(s State, p uint64) float64 {
	z := normalsFromBlock(s.AdvanceBlocks(p / 4).Block())
	return z[p%4]
}
