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

package config

type evalConfiguration struct {
	// evaluation values
	UseLazyEval       bool
	LazyEvalThreshold int32

	Tempo int32

	UseAttacksInEval bool

	UseMobility   bool
	MobilityBonus int32

	UseAdvancedPieceEval bool
	BishopPairBonus      int32
	MinorBehindPawnBonus int32
	BishopPawnMalus      int32
	BishopCenterAimBonus int32
	BishopBlockedMalus   int32
	RookOnQueenFileBonus int32
	RookOnOpenFileBonus  int32
	RookTrappedMalus     int32
	KingRingAttacksBonus int32

	UseKingEval               bool
	KingCastlePawnShieldBonus int32
	KingDangerMalus           int32
	KingDefenderBonus         int32

	UseSpace   bool
	SpaceBonus int32

	// pawns
	UsePawnEval   bool
	UsePawnCache  bool
	PawnCacheSize int

	PawnIsolatedMidMalus  int32
	PawnIsolatedEndMalus  int32
	PawnDoubledMidMalus   int32
	PawnDoubledEndMalus   int32
	PawnPassedMidBonus    int32
	PawnPassedEndBonus    int32
	PawnBlockedMidMalus   int32
	PawnBlockedEndMalus   int32
	PawnPhalanxMidBonus   int32
	PawnPhalanxEndBonus   int32
	PawnSupportedMidBonus int32
	PawnSupportedEndBonus int32

	// back rank
	UseBackRank      bool
	BackRankMalus    int32
}

// sets defaults which might be overwritten by config file.
func init() {
	Settings.Eval.UseLazyEval = false
	Settings.Eval.LazyEvalThreshold = 700

	Settings.Eval.Tempo = 34

	Settings.Eval.UseAttacksInEval = true

	Settings.Eval.UseMobility = true
	Settings.Eval.MobilityBonus = 5

	Settings.Eval.UseAdvancedPieceEval = true
	Settings.Eval.KingCastlePawnShieldBonus = 15
	Settings.Eval.KingRingAttacksBonus = 10
	Settings.Eval.MinorBehindPawnBonus = 15
	Settings.Eval.BishopPairBonus = 20
	Settings.Eval.BishopPawnMalus = 5
	Settings.Eval.BishopCenterAimBonus = 20
	Settings.Eval.BishopBlockedMalus = 40
	Settings.Eval.RookOnQueenFileBonus = 6
	Settings.Eval.RookOnOpenFileBonus = 25
	Settings.Eval.RookTrappedMalus = 40

	Settings.Eval.UseKingEval = true
	Settings.Eval.KingDangerMalus = 50
	Settings.Eval.KingDefenderBonus = 10

	Settings.Eval.UseSpace = true
	Settings.Eval.SpaceBonus = 2

	Settings.Eval.UsePawnEval = true
	Settings.Eval.UsePawnCache = true
	Settings.Eval.PawnCacheSize = 64

	Settings.Eval.PawnIsolatedMidMalus = -10
	Settings.Eval.PawnIsolatedEndMalus = -20
	Settings.Eval.PawnDoubledMidMalus = -10
	Settings.Eval.PawnDoubledEndMalus = -30
	Settings.Eval.PawnPassedMidBonus = 20
	Settings.Eval.PawnPassedEndBonus = 40
	Settings.Eval.PawnBlockedMidMalus = -2
	Settings.Eval.PawnBlockedEndMalus = -20
	Settings.Eval.PawnPhalanxMidBonus = 4
	Settings.Eval.PawnPhalanxEndBonus = 4
	Settings.Eval.PawnSupportedMidBonus = 10
	Settings.Eval.PawnSupportedEndBonus = 15

	Settings.Eval.UseBackRank = true
	Settings.Eval.BackRankMalus = 20
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {}
