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

package types

import (
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/util"
)

// Value is a signed search/evaluation score in milli-pawns.
type Value int32

// Value constants. ValueInf bounds the signed score range the search and
// transposition table operate in; ValueNA marks "no value" and sits just
// outside it so it can never be confused with a real score.
const (
	ValueZero               Value = 0
	ValueDraw               Value = 0
	ValueOne                Value = 1
	ValueInf                Value = 2_000_000
	ValueNA                 Value = -ValueInf - 1
	ValueMax                Value = 1_500_000
	ValueMin                Value = -ValueMax
	ValueCheckMate          Value = ValueMax
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// IsValid reports whether v falls within the valid score range.
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue reports whether v encodes a mate distance rather than a
// material/positional score.
func (v Value) IsCheckMateValue() bool {
	return util.Abs32(int32(v)) > int32(ValueCheckMateThreshold) && util.Abs32(int32(v)) <= int32(ValueCheckMate)
}

// String formats v as a UCI score: "cp <n>", "mate <n>", or "N/A".
func (v Value) String() string {
	var sb strings.Builder
	switch {
	case v.IsCheckMateValue():
		sb.WriteString("mate ")
		if v < ValueZero {
			sb.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - int(util.Abs32(int32(v)))
		sb.WriteString(strconv.Itoa((pliesToMate + 1) / 2))
	case v == ValueNA:
		sb.WriteString("N/A")
	default:
		sb.WriteString("cp ")
		sb.WriteString(strconv.Itoa(int(v) / 10))
	}
	return sb.String()
}
