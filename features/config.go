// SPDX-License-Identifier: EPL-2.0

package features

// Config holds analysis parameters shared by all extractors.
type Config struct {
	// FFTSize is the analysis window length in samples; it sets the
	// frequency resolution.
	FFTSize int
	// HopLength is the step between frames in samples; it sets the time
	// resolution.
	HopLength int
	// NumMFCC is the number of cepstral coefficients to keep.
	NumMFCC int
	// NumMels is the mel filterbank size used for MFCC.
	NumMels int
	// NumContrastBands is the number of octave bands for spectral contrast
	// (one extra sub-band below the first octave is always included).
	NumContrastBands int
	// RolloffPercent is the cumulative-energy fraction for spectral rolloff.
	RolloffPercent float64
}

// DefaultConfig returns the parameters used throughout the detection
// experiments: 2048-point FFT, 512-sample hop, 13 MFCCs over a 26-filter
// mel bank.
func DefaultConfig() Config {
	return Config{
		FFTSize:          2048,
		HopLength:        512,
		NumMFCC:          13,
		NumMels:          26,
		NumContrastBands: 6,
		RolloffPercent:   0.85,
	}
}

// NumChromaBins is the number of pitch classes chroma folds onto.
const NumChromaBins = 12

func (c Config) validate(samples []float64, rate int) error {
	if len(samples) == 0 {
		return ErrEmptySignal
	}
	if rate <= 0 {
		return ErrInvalidRate
	}
	if c.FFTSize <= 0 || c.HopLength <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
