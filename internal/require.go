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

package internal

import "fmt"

// Require panics with a descriptive message when cond is false.
//
// The sketching kernels treat violated preconditions (mismatched shapes,
// short leading dimensions, out-of-bounds submatrix offsets) as caller
// programming errors rather than recoverable runtime conditions, the same
// contract the reference BLAS implementations use. Panicking immediately is
// preferred over returning a wrong answer.
func Require(cond bool, format string, args ...any) {
	if !cond {
		panic("randblas: requirement failed: " + fmt.Sprintf(format, args...))
	}
}
