package stft

// Spectrogram holds one complex spectrum per analysis frame. Conceptually
// it is a bins x frames matrix: frequency bin k of frame t is At(k, t).
type Spectrogram struct {
	bins    int
	hopSize int
	frames  [][]complex128
}

// NumFrames returns the number of frames.
func (s *Spectrogram) NumFrames() int { return len(s.frames) }

// Bins returns the number of frequency bins per frame (the frame size).
func (s *Spectrogram) Bins() int { return s.bins }

// HopSize returns the hop that produced the frames; frame t starts at
// sample t*HopSize of the source signal.
func (s *Spectrogram) HopSize() int { return s.hopSize }

// Frame returns the spectrum of frame t. The returned slice is backing
// storage, not a copy.
func (s *Spectrogram) Frame(t int) []complex128 { return s.frames[t] }

// At returns frequency bin k of frame t.
func (s *Spectrogram) At(k, t int) complex128 { return s.frames[t][k] }
