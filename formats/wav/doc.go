// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes RIFF/WAVE audio.
//
// Decoding wraps go-audio/wav and supports PCM at 8, 16, 24, and 32 bits
// per sample, any channel count and sample rate. The decoder returns an
// audio.Source producing normalized float32 samples:
//
//	src, err := wav.Decoder{}.Decode(file)
//
// Non-seekable readers are buffered in memory because go-audio requires
// an io.ReadSeeker.
//
// Encoding writes PCM 16-bit from normalized float64 samples, which is the
// save path for processed clips:
//
//	err := wav.Encode(outFile, samples, 16000, 1)
package wav
