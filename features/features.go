// SPDX-License-Identifier: EPL-2.0

package features

import "fmt"

// FeatureVector is a flat name → value map of summary statistics, the
// form a downstream classifier consumes.
type FeatureVector map[string]float64

// ExtractAll runs every extractor and gathers the summary statistics into
// one FeatureVector. Keys follow the pattern <feature>_<stat> with an
// index suffix for multi-coefficient features, e.g. "mfcc_mean_0",
// "spectral_centroid_mean", "chroma_std_11".
func ExtractAll(samples []float64, rate int, cfg Config) (FeatureVector, error) {
	if err := cfg.validate(samples, rate); err != nil {
		return nil, err
	}

	vec := make(FeatureVector)

	mfcc, err := MFCC(samples, rate, cfg)
	if err != nil {
		return nil, fmt.Errorf("mfcc: %w", err)
	}
	putIndexed(vec, "mfcc", mfcc.Mean, mfcc.Std)

	centroid, err := SpectralCentroid(samples, rate, cfg)
	if err != nil {
		return nil, fmt.Errorf("spectral centroid: %w", err)
	}
	putSeries(vec, "spectral_centroid", centroid)

	rolloff, err := SpectralRolloff(samples, rate, cfg)
	if err != nil {
		return nil, fmt.Errorf("spectral rolloff: %w", err)
	}
	putSeries(vec, "spectral_rolloff", rolloff)

	bandwidth, err := SpectralBandwidth(samples, rate, cfg)
	if err != nil {
		return nil, fmt.Errorf("spectral bandwidth: %w", err)
	}
	putSeries(vec, "spectral_bandwidth", bandwidth)

	flatness, err := SpectralFlatness(samples, rate, cfg)
	if err != nil {
		return nil, fmt.Errorf("spectral flatness: %w", err)
	}
	putSeries(vec, "spectral_flatness", flatness)

	contrast, err := SpectralContrast(samples, rate, cfg)
	if err != nil {
		return nil, fmt.Errorf("spectral contrast: %w", err)
	}
	putIndexed(vec, "spectral_contrast", contrast.Mean, contrast.Std)

	zcr, err := ZeroCrossingRate(samples, cfg)
	if err != nil {
		return nil, fmt.Errorf("zcr: %w", err)
	}
	putSeries(vec, "zcr", zcr)

	rms, err := RMSEnergy(samples, cfg)
	if err != nil {
		return nil, fmt.Errorf("rms: %w", err)
	}
	putSeries(vec, "rms", rms)

	chroma, err := Chroma(samples, rate, cfg)
	if err != nil {
		return nil, fmt.Errorf("chroma: %w", err)
	}
	putIndexed(vec, "chroma", chroma.Mean, chroma.Std)

	return vec, nil
}

func putSeries(vec FeatureVector, name string, s SeriesResult) {
	vec[name+"_mean"] = s.Mean
	vec[name+"_std"] = s.Std
}

func putIndexed(vec FeatureVector, name string, mean, std []float64) {
	for i, m := range mean {
		vec[fmt.Sprintf("%s_mean_%d", name, i)] = m
	}
	for i, s := range std {
		vec[fmt.Sprintf("%s_std_%d", name, i)] = s
	}
}
