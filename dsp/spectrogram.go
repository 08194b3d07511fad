// SPDX-License-Identifier: EPL-2.0

package dsp

import (
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Spectrogram computes magnitude spectra of Hann-windowed frames. Each row
// holds fftSize/2+1 bins for one frame; rows advance by hop samples.
func Spectrogram(samples []float64, fftSize, hop int) ([][]float64, error) {
	frames, err := Frame(samples, fftSize, hop)
	if err != nil {
		return nil, err
	}
	if frames == nil {
		return nil, nil
	}

	fft := fourier.NewFFT(fftSize)
	window := HannWindow(fftSize)
	coeffs := make([]complex128, fftSize/2+1)

	spec := make([][]float64, len(frames))
	for f, frame := range frames {
		for i := range frame {
			frame[i] *= window[i]
		}
		coeffs = fft.Coefficients(coeffs, frame)

		row := make([]float64, len(coeffs))
		for i, c := range coeffs {
			row[i] = cmplx.Abs(c)
		}
		spec[f] = row
	}

	return spec, nil
}

// PowerSpectrogram computes squared-magnitude spectra of Hann-windowed frames.
func PowerSpectrogram(samples []float64, fftSize, hop int) ([][]float64, error) {
	spec, err := Spectrogram(samples, fftSize, hop)
	if err != nil {
		return nil, err
	}

	for _, row := range spec {
		for i, m := range row {
			row[i] = m * m
		}
	}
	return spec, nil
}

// BinFrequencies returns the center frequency in Hz of each spectrum bin
// produced by Spectrogram for the given FFT size and sample rate.
func BinFrequencies(fftSize, rate int) []float64 {
	bins := make([]float64, fftSize/2+1)
	for i := range bins {
		bins[i] = float64(i) * float64(rate) / float64(fftSize)
	}
	return bins
}
