// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1 Layer III audio via hajimehoshi/go-mp3.
//
// The decoder returns an audio.Source producing normalized float32
// samples. go-mp3 always emits stereo 16-bit PCM, so Channels() is 2
// regardless of the source; chain an audio.MonoMixer for mono analysis:
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
package mp3
