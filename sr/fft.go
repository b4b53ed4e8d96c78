package sr

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// forward computes the discrete Fourier transform of a real-valued
// series at its exact length. The spectral residual arithmetic depends on
// the bin layout of the unpadded transform, so no power-of-2 padding is
// applied.
func forward(values []float64) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(values))
	if err != nil {
		return nil, fmt.Errorf("sr: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, len(values))
	for i, v := range values {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, len(values))
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("sr: forward FFT: %w", err)
	}
	return out, nil
}

// inverse computes the normalized inverse transform of freq into a new
// slice.
func inverse(freq []complex128) ([]complex128, error) {
	plan, err := algofft.NewPlan64(len(freq))
	if err != nil {
		return nil, fmt.Errorf("sr: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, len(freq))
	if err := plan.Inverse(out, freq); err != nil {
		return nil, fmt.Errorf("sr: inverse FFT: %w", err)
	}
	return out, nil
}
