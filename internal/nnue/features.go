package nnue

import "github.com/chessevalcore/evalcore/internal/board"

// FeatureIndex computes the HalfKA feature index for a piece of color
// pieceColor and kind pieceType on pieceSq, as seen by perspective, whose
// king stands on kingSq.
//
// For the black perspective the board is flipped vertically (flip_rank)
// and piece color is inverted, so the feature space is always expressed
// relative to "my king, my/their pieces" rather than white/black.
func FeatureIndex(perspective board.Color, kingSq board.Square, pieceColor board.Color, pieceType board.PieceType, pieceSq board.Square) int {
	if perspective == board.Black {
		kingSq = kingSq.Mirror()
		pieceSq = pieceSq.Mirror()
		pieceColor = pieceColor.Other()
	}
	k := int(kingSq)
	c := int(pieceColor)
	t := int(pieceType)
	s := int(pieceSq)
	return ((k*2+c)*6+t)*64 + s
}
