// SPDX-License-Identifier: EPL-2.0

// Package dsp provides the spectral building blocks used by feature
// extraction: window functions, signal framing, short-time Fourier
// magnitude/power spectra (via gonum's fourier package), mel filterbanks,
// and an orthonormal DCT-II.
//
// A typical analysis chain frames the signal, windows each frame, takes
// magnitude spectra, and projects them onto a mel filterbank:
//
//	spec, _ := dsp.PowerSpectrogram(samples, 2048, 512)
//	bank, _ := dsp.MelFilterbank(26, 2048, rate, 0, float64(rate)/2)
//
// All functions are pure and operate on float64 slices.
package dsp
