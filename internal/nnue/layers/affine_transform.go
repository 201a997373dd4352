package layers

// AffineTransform is a fully connected layer with int8 weights, int32
// biases, and uint8 inputs. Product magnitude is bounded by
// inputDims * 127 * 255, comfortably under the int32 range, so no
// intermediate scaling is required.
type AffineTransform struct {
	InputDimensions  int
	OutputDimensions int
	Biases           []int32
	// Weights is row-major [OutputDimensions][InputDimensions].
	Weights []int8
}

// NewAffineTransform allocates a layer with zeroed parameters; callers
// populate Biases/Weights from a loaded weight file.
func NewAffineTransform(inputDims, outputDims int) *AffineTransform {
	return &AffineTransform{
		InputDimensions:  inputDims,
		OutputDimensions: outputDims,
		Biases:           make([]int32, outputDims),
		Weights:          make([]int8, outputDims*inputDims),
	}
}

// Propagate computes out[j] = bias[j] + sum_i weight[j][i] * input[i].
func (a *AffineTransform) Propagate(input []uint8, output []int32) {
	for j := 0; j < a.OutputDimensions; j++ {
		row := a.Weights[j*a.InputDimensions : (j+1)*a.InputDimensions]
		var sum int32
		for i, in := range input {
			sum += int32(row[i]) * int32(in)
		}
		output[j] = a.Biases[j] + sum
	}
}
