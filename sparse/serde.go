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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Serialized layout, all little-endian:
//
//	bytes 0-3   magic "RBCO"
//	byte  4     format version (1)
//	byte  5     index base (0 or 1)
//	byte  6     sort tag ('N', 'R' or 'C')
//	byte  7     unused (0)
//	bytes 8-31  n_rows, n_cols, nnz as int64
//	payload     rows, cols as int64, vals as float64 bits
//	trailer     xxhash64 of everything above
const (
	serdeMagic    = "RBCO"
	serdeVersion  = 1
	serdeHeaderSz = 32
)

// EncodeCOO serializes m into a self-describing byte slice with an xxhash64
// integrity checksum.
func EncodeCOO(m *COOMatrix) []byte {
	size := serdeHeaderSz + m.NNZ*(8+8+8) + 8
	buf := make([]byte, 0, size)
	buf = append(buf, serdeMagic...)
	buf = append(buf, serdeVersion, byte(m.Base), byte(m.Sort), 0)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(m.NRows))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(m.NCols))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(m.NNZ))
	for _, r := range m.Rows[:m.NNZ] {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(r))
	}
	for _, c := range m.Cols[:m.NNZ] {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(c))
	}
	for _, v := range m.Vals[:m.NNZ] {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	buf = binary.LittleEndian.AppendUint64(buf, xxhash.Sum64(buf))
	return buf
}

// DecodeCOO reconstructs an owning COOMatrix from bytes produced by
// EncodeCOO, verifying the checksum before trusting any field lengths.
func DecodeCOO(buf []byte) (*COOMatrix, error) {
	if len(buf) < serdeHeaderSz+8 {
		return nil, fmt.Errorf("sparse: serialized COO too short (%d bytes)", len(buf))
	}
	payload, trailer := buf[:len(buf)-8], buf[len(buf)-8:]
	if got, want := xxhash.Sum64(payload), binary.LittleEndian.Uint64(trailer); got != want {
		return nil, fmt.Errorf("sparse: COO checksum mismatch (got %#x, want %#x)", got, want)
	}
	if string(payload[:4]) != serdeMagic {
		return nil, fmt.Errorf("sparse: bad COO magic %q", payload[:4])
	}
	if payload[4] != serdeVersion {
		return nil, fmt.Errorf("sparse: unsupported COO format version %d", payload[4])
	}
	base := IndexBase(payload[5])
	if base != Zero && base != One {
		return nil, fmt.Errorf("sparse: invalid index base %d", payload[5])
	}
	sortTag := SortOrder(payload[6])
	switch sortTag {
	case SortNone, SortCSR, SortCSC:
	default:
		return nil, fmt.Errorf("sparse: invalid sort tag %q", payload[6])
	}
	nRows := int(int64(binary.LittleEndian.Uint64(payload[8:])))
	nCols := int(int64(binary.LittleEndian.Uint64(payload[16:])))
	nnz := int(int64(binary.LittleEndian.Uint64(payload[24:])))
	if nRows < 0 || nCols < 0 || nnz < 0 {
		return nil, fmt.Errorf("sparse: negative COO dimension (%d, %d, nnz=%d)", nRows, nCols, nnz)
	}
	if want := serdeHeaderSz + nnz*24; len(payload) != want {
		return nil, fmt.Errorf("sparse: serialized COO has %d payload bytes, want %d", len(payload), want)
	}
	m := NewCOOMatrix(nRows, nCols)
	m.Base = base
	m.Reserve(nnz)
	off := serdeHeaderSz
	for i := 0; i < nnz; i++ {
		m.Rows[i] = int(int64(binary.LittleEndian.Uint64(payload[off+i*8:])))
	}
	off += nnz * 8
	for i := 0; i < nnz; i++ {
		m.Cols[i] = int(int64(binary.LittleEndian.Uint64(payload[off+i*8:])))
	}
	off += nnz * 8
	for i := 0; i < nnz; i++ {
		m.Vals[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[off+i*8:]))
	}
	for i := 0; i < nnz; i++ {
		r, c := m.Rows[i]-int(base), m.Cols[i]-int(base)
		if r < 0 || r >= nRows || c < 0 || c >= nCols {
			return nil, fmt.Errorf("sparse: COO entry %d has out-of-bounds index (%d, %d)", i, m.Rows[i], m.Cols[i])
		}
	}
	m.Sort = sortTag
	return m, nil
}
