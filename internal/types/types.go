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

// Package types contains the primitive data types shared across the engine:
// squares, pieces, bitboards, moves and their packed encodings. Most of
// these would be enums in another language; Go expresses them as small
// integer types with named constants instead.
package types

import (
	"github.com/corvidchess/corvid/internal/logging"
)

var log = logging.GetLog()

var initialized = false

// init pre-computes the bitboard attack/mask tables and piece-square tables
// used throughout move generation and evaluation. Guarded by initialized so
// re-importing the package from tests never redoes the work.
func init() {
	if initialized {
		return
	}
	log.Debug("initializing types package data")
	initBb()
	initPosValues()
	initialized = true
}

// Board and engine-wide size constants.
const (
	// SqLength is the number of squares on a board.
	SqLength int = 64

	// MaxDepth is the maximum search depth the engine supports.
	MaxDepth = 128

	// MaxMoves is the maximum number of moves tracked for a single game.
	MaxMoves = 512

	// KB is 1024 bytes.
	KB uint64 = 1024
	// MB is 1024 KB.
	MB uint64 = KB * KB
	// GB is 1024 MB.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game-phase value, reached with a full
	// complement of officers on the board.
	GamePhaseMax = 24
)
