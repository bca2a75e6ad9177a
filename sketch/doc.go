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

// Package sketch applies randomized sketching operators to dense data in
// GEMM-like operations:
//
//	B = alpha*op(submat(S))*op(A) + beta*B   (sketch from the left)
//	B = alpha*op(A)*op(submat(S)) + beta*B   (sketch from the right)
//
// where S is a dense or sparse sketching operator whose entries are defined
// by a distribution and a counter-based random state rather than by stored
// data. Operators materialize lazily: a dense operator with no backing
// buffer has exactly the requested submatrix synthesized on demand, and an
// unsampled sparse operator is sampled into a call-scoped copy, so callers
// never pay for entries they do not touch.
//
// SketchLeft and SketchRight (and their Submat variants, which address a
// window of S at explicit row/column offsets) dispatch on the operator kind
// and are the intended entry points; the kernels Lskge3, Rskge3, Lskges and
// Rskges are exported for callers that want to name the operator kind
// statically.
//
// All buffer arguments follow BLAS conventions: a storage layout shared by
// A and B, per-matrix leading dimensions, and transpose flags resolved
// before any dimension is interpreted. Violated preconditions panic;
// zero-sized dimensions, alpha == 0 and beta == 0 are valid degenerate
// cases, not errors.
package sketch
