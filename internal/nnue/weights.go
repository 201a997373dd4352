package nnue

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrInvalidData is returned when a weight file is short or declares an
// architecture that doesn't match the compile-time constants. This is the
// one recoverable error in the evaluation core: callers are expected to
// surface it at startup and abort, since a running engine must always have
// valid weights.
var ErrInvalidData = errors.New("nnue: invalid data")

// LoadWeightsFile opens path and loads a Network from it.
func LoadWeightsFile(path string) (*Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("nnue: open weights file: %w", err)
	}
	defer f.Close()
	return LoadWeights(f)
}

// LoadWeights reads a little-endian NNUE weight stream: a three-word
// architecture header (Input, Mid, Output), row-major feature-transformer
// weights, feature-transformer biases, row-major output-layer weights, and
// output-layer biases (stored as int16, widened to int32 here).
func LoadWeights(r io.Reader) (*Network, error) {
	var arch Architecture
	if err := binary.Read(r, binary.LittleEndian, &arch); err != nil {
		return nil, fmt.Errorf("%w: reading architecture header: %v", ErrInvalidData, err)
	}

	if arch.Input != RequiredInput {
		return nil, fmt.Errorf("%w: input mismatch: expected %d, got %d", ErrInvalidData, RequiredInput, arch.Input)
	}
	if arch.Output != RequiredOutput {
		return nil, fmt.Errorf("%w: output mismatch: expected %d, got %d", ErrInvalidData, RequiredOutput, arch.Output)
	}
	if arch.Mid == 0 || arch.Mid > MaxMid {
		return nil, fmt.Errorf("%w: mid size out of range: %d", ErrInvalidData, arch.Mid)
	}

	net := newNetwork(arch)

	if err := binary.Read(r, binary.LittleEndian, net.FT.Weights); err != nil {
		return nil, fmt.Errorf("%w: reading feature-transformer weights: %v", ErrInvalidData, err)
	}
	if err := binary.Read(r, binary.LittleEndian, net.FT.Biases); err != nil {
		return nil, fmt.Errorf("%w: reading feature-transformer biases: %v", ErrInvalidData, err)
	}
	if err := binary.Read(r, binary.LittleEndian, net.L1.Weights); err != nil {
		return nil, fmt.Errorf("%w: reading output-layer weights: %v", ErrInvalidData, err)
	}

	rawBiases := make([]int16, arch.Output)
	if err := binary.Read(r, binary.LittleEndian, rawBiases); err != nil {
		return nil, fmt.Errorf("%w: reading output-layer biases: %v", ErrInvalidData, err)
	}
	for i, b := range rawBiases {
		net.L1.Biases[i] = int32(b)
	}

	return net, nil
}

// SaveWeights writes net back out in the same format LoadWeights expects,
// so a round trip through Save/Load reproduces every weight exactly.
func SaveWeights(w io.Writer, net *Network) error {
	if err := binary.Write(w, binary.LittleEndian, net.Arch); err != nil {
		return fmt.Errorf("nnue: writing architecture header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, net.FT.Weights); err != nil {
		return fmt.Errorf("nnue: writing feature-transformer weights: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, net.FT.Biases); err != nil {
		return fmt.Errorf("nnue: writing feature-transformer biases: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, net.L1.Weights); err != nil {
		return fmt.Errorf("nnue: writing output-layer weights: %w", err)
	}
	rawBiases := make([]int16, len(net.L1.Biases))
	for i, b := range net.L1.Biases {
		rawBiases[i] = int16(b)
	}
	if err := binary.Write(w, binary.LittleEndian, rawBiases); err != nil {
		return fmt.Errorf("nnue: writing output-layer biases: %w", err)
	}
	return nil
}
