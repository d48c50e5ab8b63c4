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

// Package zobrist holds the random keys used to incrementally hash a
// Position: one key per piece/square combination, one per castling
// rights state, one per en passant file and one for the side to move.
// Position XORs these in and out as moves are made and unmade so its
// hash key never needs to be recomputed from scratch.
package zobrist

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// Key is the hash key type used throughout the engine for position
// identity: transposition table probing, repetition detection and
// pawn structure caching.
type Key uint64

// keys holds all zobrist random numbers, indexed by piece/square,
// castling rights state, en passant file and side to move.
type keys struct {
	Pieces         [PieceLength][SqLength]Key
	CastlingRights [CastlingRightsLength]Key
	EnPassantFile  [8]Key
	NextPlayer     Key
}

// Keys is the single shared table of zobrist random numbers. It is
// initialized once at package init from a fixed seed so that keys
// are reproducible across runs and processes.
var Keys keys

// prng is the xorshift generator used to fill Keys. It uses the same
// multiplier as the xorshift64star magic bitboard generator in the
// types package, but applies the three shift steps in a different
// order; it is kept as a small, independent copy here since zobrist keys are
// seeded once at init and have no need to share generator state with
// magic number search.
type prng struct {
	s uint64
}

func newPrng(seed uint64) *prng {
	return &prng{s: seed}
}

func (r *prng) rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * uint64(2685821657736338717)
}

func init() {
	r := newPrng(1070372)
	for pc := PieceNone; pc < PieceLength; pc++ {
		for sq := SqA1; sq <= SqH8; sq++ {
			Keys.Pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := CastlingNone; cr <= CastlingAny; cr++ {
		Keys.CastlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		Keys.EnPassantFile[f] = Key(r.rand64())
	}
	Keys.NextPlayer = Key(r.rand64())
}
