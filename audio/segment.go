// SPDX-License-Identifier: EPL-2.0

package audio

// Split cuts samples into fixed-duration segments of segmentDur seconds at
// the given sample rate. Every segment has identical length; the final
// segment is zero-padded when the signal does not divide evenly. Detection
// models typically use 3s or 10s segments.
func Split(samples []float64, rate int, segmentDur float64) ([][]float64, error) {
	if segmentDur <= 0 || rate <= 0 {
		return nil, ErrInvalidSegmentDuration
	}

	segmentLen := int(segmentDur * float64(rate))
	if segmentLen <= 0 {
		return nil, ErrInvalidSegmentDuration
	}

	segments := make([][]float64, 0, (len(samples)+segmentLen-1)/segmentLen)
	for start := 0; start < len(samples); start += segmentLen {
		end := start + segmentLen
		segment := make([]float64, segmentLen)
		if end > len(samples) {
			end = len(samples)
		}
		copy(segment, samples[start:end])
		segments = append(segments, segment)
	}

	return segments, nil
}
