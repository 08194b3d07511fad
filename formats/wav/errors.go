package wav

import "errors"

var (
	// ErrNotWavFile indicates the input is not a valid RIFF/WAVE stream.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedWavLayout indicates a WAV layout go-audio cannot describe.
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")

	// ErrUnsupportedBitDepth indicates a bit depth other than 8/16/24/32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrInvalidChannelCount indicates a non-positive channel count.
	ErrInvalidChannelCount = errors.New("channel count must be positive")
)
