// +build !debug

//
// Corvid - a UCI-compatible chess engine written in Go
//
// MIT License
//
// Copyright (c) 2020-2026 Corvid Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package assert provides build-tag gated invariant checks. In release
// builds (the default) Assert compiles down to a no-op so callers pay
// nothing for checks guarded by assert.DEBUG.
package assert

// DEBUG is true only when built with the "debug" build tag.
const DEBUG = false

// Assert panics with msg if test is false. Callers should additionally
// guard the call site with "if assert.DEBUG { ... }" since Go still
// evaluates the variadic arguments even when Assert itself is a no-op.
//
//	if assert.DEBUG {
//		assert.Assert(sq.IsValid(), "invalid square %d", sq)
//	}
func Assert(test bool, msg string, a ...interface{}) {}
