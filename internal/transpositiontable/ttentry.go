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

package transpositiontable

import (
	. "github.com/corvidchess/corvid/internal/types"
	"github.com/corvidchess/corvid/internal/zobrist"
)

// TtEntry is one slot of the transposition table. It does not keep the
// full 64-bit zobrist key, only a 16-bit verifier (the key's high bits)
// - enough to reject almost all collisions at a fraction of the
// footprint. The table groups entries into 65536-entry units; each
// entry itself stays at 16 bytes.
type TtEntry struct {
	Move       Move      // best/refutation move as given to Put; readers strip the sort value with MoveOf()
	Value      int32     // search value, corrected for mate distance
	verifier   uint16    // high 16 bits of the zobrist key
	Depth      int8      // depth this entry was stored at
	Type       ValueType // EXACT, ALPHA (upper bound) or BETA (lower bound)
	Ancient    bool      // set by SetAncient, cleared on next write
	MateThreat bool
}

// TtEntrySize is the size in bytes for each TtEntry.
const TtEntrySize = 16

func verifierOf(key zobrist.Key) uint16 {
	return uint16(key >> 48)
}

// matches reports whether this entry's verifier matches the given key.
// An empty slot (Type == Vnone) never matches.
func (e *TtEntry) matches(key zobrist.Key) bool {
	return e.Type != Vnone && e.verifier == verifierOf(key)
}

func (e *TtEntry) empty() bool {
	return e.Type == Vnone
}
