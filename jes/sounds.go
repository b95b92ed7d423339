package jes

import "github.com/mediacomp/mediacomp/sounds"

// MakeSound reads the WAV file at path and returns it as a sound.
func MakeSound(path string) (*sounds.Sound, error) {
	return sounds.Open(path)
}

// MakeEmptySound returns a silent sound of numSamples samples at 22050 Hz
// unless a rate is given. Negative counts, non-positive rates, and sounds
// over 600 seconds are rejected.
func MakeEmptySound(numSamples int, rate ...int) (*sounds.Sound, error) {
	return sounds.NewEmpty(numSamples, optRate(rate))
}

// MakeEmptySoundBySeconds is MakeEmptySound with the length given as a
// duration; fractional sample counts round up.
func MakeEmptySoundBySeconds(seconds float64, rate ...int) (*sounds.Sound, error) {
	return sounds.NewEmptySeconds(seconds, optRate(rate))
}

// DuplicateSound returns an independent copy.
func DuplicateSound(s *sounds.Sound) *sounds.Sound {
	return s.Copy()
}

// WriteSoundTo saves the sound as a 16-bit mono WAV file.
func WriteSoundTo(s *sounds.Sound, path string) error {
	return s.Save(path)
}

func GetLength(s *sounds.Sound) int { return s.Len() }
func GetNumSamples(s *sounds.Sound) int { return s.Len() }
func GetSamplingRate(s *sounds.Sound) int { return s.Rate() }
func GetDuration(s *sounds.Sound) float64 { return s.Duration() }

// GetSamples returns cursors for every sample in index order.
func GetSamples(s *sounds.Sound) []sounds.Sample { return s.Samples() }

// GetSampleObjectAt returns a cursor for the sample at index.
func GetSampleObjectAt(s *sounds.Sound, index int) (sounds.Sample, error) {
	return s.SampleAt(index)
}

// GetSampleValueAt reads the sample value at index.
func GetSampleValueAt(s *sounds.Sound, index int) (int, error) {
	return s.Get(index)
}

// SetSampleValueAt stores value at index, clamped to the 16-bit range.
func SetSampleValueAt(s *sounds.Sound, index, value int) error {
	return s.Set(index, value)
}

func GetSampleValue(sm sounds.Sample) int { return sm.Value() }
func SetSampleValue(sm sounds.Sample, v int) { sm.SetValue(v) }
func GetSound(sm sounds.Sample) *sounds.Sound { return sm.Sound() }

func optRate(rate []int) int {
	if len(rate) > 0 {
		return rate[0]
	}
	return sounds.DefaultRate
}
