// Package layers implements the fixed-point primitives sitting between the
// feature transformer and the output layer of a HalfKA network.
package layers

// FtScale is the clip ceiling applied to feature-transformer outputs before
// they are squared.
const FtScale = 255

// Shift is the right-shift applied after squaring.
const Shift = 8

// SqrClippedReLU clamps each accumulator value to [0, FtScale], squares it,
// and shifts the result down to fit in a byte. This is the activation
// between the feature transformer and the output layer; squaring
// concentrates gradient magnitude near saturation and the 8-bit output is
// required by the int8 matmul that follows.
func SqrClippedReLU(input []int16, output []uint8) {
	for i, x := range input {
		if x < 0 {
			x = 0
		} else if x > FtScale {
			x = FtScale
		}
		v := uint16(x)
		output[i] = uint8((v * v) >> Shift)
	}
}
