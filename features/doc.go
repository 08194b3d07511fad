// SPDX-License-Identifier: EPL-2.0

// Package features extracts the acoustic descriptors used to tell
// AI-generated music from human recordings.
//
// Four families of descriptors are implemented, following the feature sets
// of the Sunday and Afchar detection papers:
//
//   - MFCC: mel-frequency cepstral coefficients capturing timbre. Generated
//     music often shows subtly different MFCC statistics.
//   - Spectral: centroid, rolloff, bandwidth, flatness, and per-band
//     contrast describing the shape of the frequency content.
//   - Temporal: zero-crossing rate and frame RMS energy.
//   - Chroma: energy folded onto the 12 pitch classes, capturing harmony.
//
// Every extractor takes a float64 sample buffer in [-1, 1] (as produced by
// audio.Collect), a sample rate, and a Config, and returns per-frame raw
// values along with mean/std summaries over time. ExtractAll gathers every
// summary statistic into one flat map for feeding a classifier:
//
//	vec, err := features.ExtractAll(clip.Samples, clip.Rate, features.DefaultConfig())
package features
