package nnue

import "github.com/chessevalcore/evalcore/internal/nnue/layers"

// FeatureTransformer holds the HalfKA feature weights and biases. It is
// heap-allocated and immutable after load so it can be shared by every
// search thread without copying; a typical Mid of 256 over 49152 features
// is tens of megabytes and would blow a stack frame.
type FeatureTransformer struct {
	Mid int
	// Weights is row-major [Input][Mid].
	Weights []int16
	Biases  []int16
}

// Row returns the weight row for a feature index.
func (ft *FeatureTransformer) Row(index int) []int16 {
	return ft.Weights[index*ft.Mid : (index+1)*ft.Mid]
}

// Network is a loaded NNUE: a feature transformer feeding a single affine
// output layer over the concatenated, activated accumulators of both
// perspectives.
type Network struct {
	Arch Architecture
	FT   *FeatureTransformer
	L1   *layers.AffineTransform
}

func newNetwork(arch Architecture) *Network {
	mid := int(arch.Mid)
	return &Network{
		Arch: arch,
		FT: &FeatureTransformer{
			Mid:     mid,
			Weights: make([]int16, int(arch.Input)*mid),
			Biases:  make([]int16, mid),
		},
		L1: layers.NewAffineTransform(mid*2, int(arch.Output)),
	}
}
