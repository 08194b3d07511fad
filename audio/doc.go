// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio primitives the toolkit is
// built on.
//
// The streaming side mirrors how decoders produce data:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - MonoMixer for channel downmix
//   - Registry for decoder registration by format name or file extension
//
// The buffer side operates on collected float64 sample slices, the
// representation consumed by the features and eval packages:
//   - Collect drains a Source into a float64 buffer
//   - Split cuts a buffer into fixed-duration, zero-padded segments
//   - Normalize applies peak or RMS level normalization
//
// # Sample Format
//
// Streaming samples are float32 in [-1.0, 1.0]; collected buffers are
// float64 in the same range. 0.0 is silence and ±1.0 is full scale. The
// normalized representation keeps processing independent of source bit
// depth and avoids clipping in intermediate stages.
//
// # Pipelines
//
// Sources chain: decode, resample, downmix, collect.
//
//	src, _ := wav.Decoder{}.Decode(f)
//	mono := audio.NewMonoMixer(audio.NewResampler(src, 16000))
//	samples, _ := audio.Collect(mono, 4096)
//
// # Error Handling
//
// Streaming reads return io.EOF when the stream is finished. Buffer
// operations return sentinel errors (ErrInvalidSegmentDuration,
// ErrUnknownNormMethod) for invalid arguments.
package audio
