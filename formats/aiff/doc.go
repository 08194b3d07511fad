// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF audio via go-audio/aiff.
//
// Only 16-bit PCM AIFF files are supported. The decoder returns an
// audio.Source producing normalized float32 samples:
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// Non-seekable readers are buffered in memory because go-audio requires
// an io.ReadSeeker.
package aiff
