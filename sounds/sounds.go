// Package sounds provides WAV-backed audio buffers with per-sample access,
// the audio counterpart of the picture buffer: a fixed vector of signed
// 16-bit samples plus cursors for indexed read/write.
package sounds

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/mediacomp/mediacomp"
)

// DefaultRate is the sampling rate used when the caller does not pick one.
const DefaultRate = 22050

// MaxSeconds caps how long an empty sound may be at construction time.
const MaxSeconds = 600.0

// Sound is a sequence of signed 16-bit samples at a fixed sampling rate.
// Unlike pictures, size violations here are rejected at construction
// rather than clamped.
type Sound struct {
	rate    int
	samples []int16
}

// Open decodes the WAV file at path, resolving relative names against the
// media path. Stereo files keep their interleaved sample order; samples
// wider than 16 bits are clamped on ingest.
func Open(path string) (*Sound, error) {
	f, err := os.Open(mediacomp.MediaPath(path))
	if err != nil {
		return nil, fmt.Errorf("opening sound: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding wav: %w", err)
	}
	s := &Sound{
		rate:    buf.Format.SampleRate,
		samples: make([]int16, len(buf.Data)),
	}
	for i, v := range buf.Data {
		s.samples[i] = Clamp(v)
	}
	return s, nil
}

// NewEmpty returns a silent sound of numSamples samples. A negative
// count, a non-positive rate, or a duration over MaxSeconds is a
// value-range error, checked before any allocation.
func NewEmpty(numSamples, rate int) (*Sound, error) {
	if numSamples < 0 {
		return nil, fmt.Errorf("sounds: negative sample count %d", numSamples)
	}
	if rate <= 0 {
		return nil, fmt.Errorf("sounds: non-positive sampling rate %d", rate)
	}
	if float64(numSamples)/float64(rate) > MaxSeconds {
		return nil, fmt.Errorf("sounds: %d samples at %d Hz exceeds %.0f seconds", numSamples, rate, MaxSeconds)
	}
	return &Sound{rate: rate, samples: make([]int16, numSamples)}, nil
}

// NewEmptySeconds is NewEmpty with the length given as a duration.
// Fractional sample counts round up.
func NewEmptySeconds(seconds float64, rate int) (*Sound, error) {
	if rate <= 0 {
		return nil, fmt.Errorf("sounds: non-positive sampling rate %d", rate)
	}
	return NewEmpty(int(seconds*float64(rate)+0.5), rate)
}

// Copy returns an independent duplicate of the sound.
func (s *Sound) Copy() *Sound {
	samples := make([]int16, len(s.samples))
	copy(samples, s.samples)
	return &Sound{rate: s.rate, samples: samples}
}

// Len returns the number of samples.
func (s *Sound) Len() int { return len(s.samples) }

// Rate returns the sampling rate in samples per second.
func (s *Sound) Rate() int { return s.rate }

// Duration returns the length of the sound in seconds.
func (s *Sound) Duration() float64 {
	return float64(len(s.samples)) / float64(s.rate)
}

// Get returns the sample at index. Out-of-range indexes are errors, not
// clamped; sounds are strict where pictures are tolerant.
func (s *Sound) Get(index int) (int, error) {
	if err := s.check(index); err != nil {
		return 0, err
	}
	return int(s.samples[index]), nil
}

// Set stores value at index, clamped to the signed 16-bit range.
func (s *Sound) Set(index, value int) error {
	if err := s.check(index); err != nil {
		return err
	}
	s.samples[index] = Clamp(value)
	return nil
}

func (s *Sound) check(index int) error {
	if index < 0 {
		return fmt.Errorf("sounds: negative index %d", index)
	}
	if index >= len(s.samples) {
		return fmt.Errorf("sounds: index %d out of range, max %d", index, len(s.samples)-1)
	}
	return nil
}

// Clamp forces value into the signed 16-bit sample range.
func Clamp(value int) int16 {
	if value > 32767 {
		return 32767
	}
	if value < -32768 {
		return -32768
	}
	return int16(value)
}

// SampleAt returns a cursor bound to the sample at index.
func (s *Sound) SampleAt(index int) (Sample, error) {
	if err := s.check(index); err != nil {
		return Sample{}, err
	}
	return Sample{index: index, sound: s}, nil
}

// Samples returns cursors for every sample in index order, built fresh on
// each call.
func (s *Sound) Samples() []Sample {
	out := make([]Sample, len(s.samples))
	for i := range out {
		out[i] = Sample{index: i, sound: s}
	}
	return out
}

// Save encodes the sound as 16-bit mono PCM WAV at path, resolving
// relative names against the media path.
func (s *Sound) Save(path string) error {
	f, err := os.Create(mediacomp.MediaPath(path))
	if err != nil {
		return fmt.Errorf("creating sound file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, s.rate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: s.rate},
		SourceBitDepth: 16,
		Data:           make([]int, len(s.samples)),
	}
	for i, v := range s.samples {
		buf.Data[i] = int(v)
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}

func (s *Sound) String() string {
	return fmt.Sprintf("Sound: %d samples at %d samples/second", len(s.samples), s.rate)
}

// Sample is a cursor bound to one index of a Sound. It borrows the sound
// and must not outlive it.
type Sample struct {
	index int
	sound *Sound
}

// Index returns the sample's position within its sound.
func (sm Sample) Index() int { return sm.index }

// Value returns the current sample value.
func (sm Sample) Value() int {
	return int(sm.sound.samples[sm.index])
}

// SetValue stores v, clamped to the signed 16-bit range.
func (sm Sample) SetValue(v int) {
	sm.sound.samples[sm.index] = Clamp(v)
}

// Sound returns the sound this sample belongs to.
func (sm Sample) Sound() *Sound { return sm.sound }
