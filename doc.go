// SPDX-License-Identifier: EPL-2.0

// Package aimdkit is a research toolkit for detecting AI-generated music.
//
// It covers the three stages of a detection experiment: loading audio
// files into normalized sample buffers (this package, with per-format
// decoders under formats/), extracting acoustic features from those
// buffers (features/), and scoring a trained classifier's output against
// ground-truth labels (eval/, with chart rendering in plot/).
//
// The root package is the convenience entry point for audio I/O: Load
// decodes a file by extension into a mono float64 Clip, optionally
// resampled to a target rate, and Save writes samples back out as
// 16-bit PCM WAV.
package aimdkit
