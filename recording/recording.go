// Package recording models multichannel recordings as supplied by an
// ingestion backend.
//
// The core never parses acquisition file formats itself; backends implement
// [Source] and hand over a channels x samples view plus metadata.
package recording

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-spectral/dsp/fourier"
	"github.com/cwbudde/algo-spectral/dsp/stft"
	"github.com/cwbudde/algo-spectral/stats/covariance"
)

// ErrInvalid reports a recording whose data and metadata disagree.
var ErrInvalid = errors.New("invalid recording")

// Metadata describes a multichannel recording.
type Metadata struct {
	ChannelCount   int
	SamplingRateHz float64
	// ChannelLabels and Units are optional; when present they must have
	// one entry per channel.
	ChannelLabels []string
	Units         []string
}

// Recording is a channels x samples view of a multichannel signal. Rows are
// channels. The core treats Data as read-only; ownership stays with the
// ingestion backend.
type Recording struct {
	Data [][]float64
	Meta Metadata
}

// Source supplies recordings from some storage or acquisition backend.
type Source interface {
	Read() (*Recording, error)
}

// Channels returns the number of channels.
func (r *Recording) Channels() int { return len(r.Data) }

// Samples returns the number of samples per channel, or 0 for an empty
// recording.
func (r *Recording) Samples() int {
	if len(r.Data) == 0 {
		return 0
	}
	return len(r.Data[0])
}

// Channel returns the sample sequence of one channel. The returned slice is
// backing storage, not a copy.
func (r *Recording) Channel(i int) []float64 { return r.Data[i] }

// Validate checks that data and metadata are consistent: equal-length
// channels, a positive sampling rate, a matching channel count, and label
// and unit lists sized to the channel count when present.
func (r *Recording) Validate() error {
	if len(r.Data) == 0 {
		return fmt.Errorf("%w: no channels", ErrInvalid)
	}

	n := len(r.Data[0])
	for i, ch := range r.Data {
		if len(ch) != n {
			return fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrInvalid, i, len(ch), n)
		}
	}

	if r.Meta.SamplingRateHz <= 0 {
		return fmt.Errorf("%w: sampling rate must be > 0: %v", ErrInvalid, r.Meta.SamplingRateHz)
	}

	if r.Meta.ChannelCount != len(r.Data) {
		return fmt.Errorf("%w: metadata declares %d channels, data has %d",
			ErrInvalid, r.Meta.ChannelCount, len(r.Data))
	}

	if len(r.Meta.ChannelLabels) != 0 && len(r.Meta.ChannelLabels) != len(r.Data) {
		return fmt.Errorf("%w: %d channel labels for %d channels",
			ErrInvalid, len(r.Meta.ChannelLabels), len(r.Data))
	}

	if len(r.Meta.Units) != 0 && len(r.Meta.Units) != len(r.Data) {
		return fmt.Errorf("%w: %d units for %d channels",
			ErrInvalid, len(r.Meta.Units), len(r.Data))
	}

	return nil
}

// Covariance estimates the channel covariance matrix of the recording.
func (r *Recording) Covariance(mode covariance.Mode) (*mat.SymDense, error) {
	return covariance.Estimate(r.Data, mode)
}

// STFT computes the sine-windowed spectrogram of one channel.
func (r *Recording) STFT(channel, frameSize, hopSize int) (*stft.Spectrogram, error) {
	if channel < 0 || channel >= len(r.Data) {
		return nil, fmt.Errorf("%w: channel %d out of range [0,%d)", ErrInvalid, channel, len(r.Data))
	}

	return stft.Compute(r.Data[channel], frameSize, hopSize)
}

// BinFrequencies returns the center frequency in Hz of each bin of an
// n-point transform at the recording's sampling rate.
func (r *Recording) BinFrequencies(n int) []float64 {
	return fourier.Freqs(n, r.Meta.SamplingRateHz)
}
