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

// Package rng implements the counter-based random state that threads through
// every fill and sampling operation in this module.
//
// A State is a (counter, key) pair for the Philox-4x32 generator. Advancing
// the counter by one yields an independent block of four 32-bit words, so a
// stream of random values is addressable: the value at stream position p
// depends only on the seed state and p. Every operation that consumes
// randomness returns the advanced state, which makes random streams exactly
// resumable and splittable.
package rng

import (
	"encoding/binary"
	"fmt"

	"github.com/twmb/murmur3"
)

// State is the seed state of a counter-based random stream. The zero value
// is a valid state (counter zero, key zero).
type State struct {
	Ctr [4]uint32
	Key [2]uint32
}

// NewState returns a State with the given key seed and a zero counter.
func NewState(seed uint32) State {
	return State{Key: [2]uint32{seed, 0}}
}

// KeyFromBytes derives a Philox key from arbitrary bytes, using the 128-bit
// murmur3 sum so that distinct inputs land on well-separated keys.
func KeyFromBytes(b []byte) [2]uint32 {
	h1, h2 := murmur3.Sum128(b)
	return [2]uint32{uint32(h1), uint32(h2)}
}

// StateFromBytes returns a zero-counter State keyed from arbitrary bytes.
func StateFromBytes(b []byte) State {
	return State{Key: KeyFromBytes(b)}
}

// AdvanceBlocks returns the state with its 128-bit counter advanced by n.
func (s State) AdvanceBlocks(n uint64) State {
	lo := uint64(s.Ctr[0]) | uint64(s.Ctr[1])<<32
	hi := uint64(s.Ctr[2]) | uint64(s.Ctr[3])<<32
	sum := lo + n
	if sum < lo {
		hi++
	}
	s.Ctr = [4]uint32{uint32(sum), uint32(sum >> 32), uint32(hi), uint32(hi >> 32)}
	return s
}

// BlocksFrom reports how many blocks ahead s is of the earlier state from.
// Both states must share a key and from must not be ahead of s.
func (s State) BlocksFrom(from State) uint64 {
	lo0 := uint64(from.Ctr[0]) | uint64(from.Ctr[1])<<32
	lo1 := uint64(s.Ctr[0]) | uint64(s.Ctr[1])<<32
	return lo1 - lo0
}

// Block evaluates the generator at the current counter without advancing it.
func (s State) Block() [4]uint32 {
	return Philox4x32(s.Ctr, s.Key)
}

const stateWireSize = 24

// MarshalBinary encodes the counter and key as 24 little-endian bytes, so a
// stream position can be persisted and resumed exactly.
func (s State) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 0, stateWireSize)
	for _, w := range s.Ctr {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	for _, w := range s.Key {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf, nil
}

// UnmarshalBinary decodes a state written by MarshalBinary.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != stateWireSize {
		return fmt.Errorf("rng: serialized state has %d bytes, want %d", len(data), stateWireSize)
	}
	for i := range s.Ctr {
		s.Ctr[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	for i := range s.Key {
		s.Key[i] = binary.LittleEndian.Uint32(data[16+i*4:])
	}
	return nil
}

const (
	philoxM0 = 0xD2511F53
	philoxM1 = 0xCD9E8D57
	philoxW0 = 0x9E3779B9
	philoxW1 = 0xBB67AE85
)

// Philox4x32 applies the ten-round Philox-4x32 bijection to ctr under key.
// It is a pure function: equal inputs always produce equal outputs, which is
// what makes counter-based streams reproducible and resumable.
func Philox4x32(ctr [4]uint32, key [2]uint32) [4]uint32 {
	c0, c1, c2, c3 := ctr[0], ctr[1], ctr[2], ctr[3]
	k0, k1 := key[0], key[1]
	for r := 0; r < 10; r++ {
		p0 := uint64(philoxM0) * uint64(c0)
		p1 := uint64(philoxM1) * uint64(c2)
		hi0, lo0 := uint32(p0>>32), uint32(p0)
		hi1, lo1 := uint32(p1>>32), uint32(p1)
		c0, c1, c2, c3 = hi1^c1^k0, lo1, hi0^c3^k1, lo0
		k0 += philoxW0
		k1 += philoxW1
	}
	return [4]uint32{c0, c1, c2, c3}
}

// wordStream hands out the 32-bit words of a counter-based stream one at a
// time. The counter advances when a block is fetched, so the final state of
// a stream that consumed w words is ceil(w/4) blocks past the seed state.
type wordStream struct {
	s   State
	blk [4]uint32
	idx int
}

func newWordStream(s State) *wordStream {
	return &wordStream{s: s, idx: 4}
}

func (w *wordStream) next() uint32 {
	if w.idx == 4 {
		w.blk = w.s.Block()
		w.s = w.s.AdvanceBlocks(1)
		w.idx = 0
	}
	v := w.blk[w.idx]
	w.idx++
	return v
}

func (w *wordStream) state() State {
	return w.s
}
