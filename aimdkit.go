// SPDX-License-Identifier: EPL-2.0

package aimdkit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sunjik/aimdkit/audio"
	"github.com/sunjik/aimdkit/formats/aiff"
	"github.com/sunjik/aimdkit/formats/mp3"
	"github.com/sunjik/aimdkit/formats/vorbis"
	"github.com/sunjik/aimdkit/formats/wav"
)

// ErrUnsupportedFormat indicates a file extension no registered decoder
// handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

var codecs = audio.NewRegistry()

func init() {
	codecs.Register(wav.Decoder{}, "wav")
	codecs.Register(mp3.Decoder{}, "mp3")
	codecs.Register(vorbis.Decoder{}, "ogg", "oga")
	codecs.Register(aiff.Decoder{}, "aiff", "aif", "aifc")
}

// Clip is a fully decoded audio buffer. Samples are interleaved when
// Channels > 1, though Load produces mono clips unless asked otherwise.
type Clip struct {
	Samples  []float64
	Rate     int
	Channels int
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.Rate <= 0 || c.Channels <= 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.Rate*c.Channels)
}

// Split cuts the clip into fixed-length segments of segmentDur seconds,
// zero-padding the final segment. See audio.Split.
func (c *Clip) Split(segmentDur float64) ([][]float64, error) {
	return audio.Split(c.Samples, c.Rate, segmentDur)
}

// Normalize rescales the clip's samples in place using the given method.
func (c *Clip) Normalize(method audio.NormMethod) error {
	samples, err := audio.Normalize(c.Samples, method)
	if err != nil {
		return err
	}
	c.Samples = samples
	return nil
}

// LoadOptions controls decoding in Load and LoadReader. The zero value
// decodes at the file's native sample rate, downmixed to mono.
type LoadOptions struct {
	// SampleRate resamples the clip to this rate when nonzero.
	SampleRate int

	// KeepChannels retains the source channel layout instead of
	// downmixing to mono.
	KeepChannels bool

	// BufSize sets the read chunk size in samples; 0 uses a default.
	BufSize int
}

// Load decodes the audio file at path into a Clip. The decoder is picked
// by file extension; wav, mp3, ogg, oga, aiff, aif and aifc are known.
func Load(path string, opts LoadOptions) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return LoadReader(f, filepath.Ext(path), opts)
}

// LoadReader decodes audio from r, with the format given explicitly
// ("wav", ".WAV" and similar all work). Unknown formats return
// ErrUnsupportedFormat.
func LoadReader(r io.Reader, format string, opts LoadOptions) (*Clip, error) {
	decoder, ok := codecs.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	src, err := decoder.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if !opts.KeepChannels && src.Channels() > 1 {
		src = audio.NewMonoMixer(src)
	}
	if opts.SampleRate > 0 && opts.SampleRate != src.SampleRate() {
		src = audio.NewResampler(src, opts.SampleRate)
	}
	defer src.Close()

	samples, err := audio.Collect(src, opts.BufSize)
	if err != nil {
		return nil, err
	}
	return &Clip{
		Samples:  samples,
		Rate:     src.SampleRate(),
		Channels: src.Channels(),
	}, nil
}

// Save writes mono samples to path as a 16-bit PCM WAV file.
func Save(path string, samples []float64, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if err := wav.Encode(f, samples, rate, 1); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
