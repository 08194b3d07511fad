// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis audio via jfreymuth/oggvorbis.
//
// The decoder returns an audio.Source producing normalized float32
// samples at the stream's native sample rate and channel count:
//
//	src, err := vorbis.Decoder{}.Decode(file)
//
// Vorbis decodes directly to float samples, so no PCM conversion step
// is involved.
package vorbis
