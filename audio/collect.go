// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Collect drains src and returns every sample as float64, the representation
// the feature-extraction and evaluation packages work with. bufSize controls
// the read chunk size; values around 4096 are a good default.
func Collect(src Source, bufSize int) ([]float64, error) {
	if bufSize <= 0 {
		bufSize = 4096
	}

	// Round down to a whole number of frames so ReadSamples never sees a
	// partial frame.
	channels := src.Channels()
	if channels > 0 && bufSize%channels != 0 {
		bufSize -= bufSize % channels
		if bufSize == 0 {
			bufSize = channels
		}
	}

	samples := make([]float64, 0, bufSize*4)
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		for i := range n {
			samples = append(samples, float64(buf[i]))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("collecting samples: %w", err)
		}
	}

	return samples, nil
}
