package audio

import (
	"errors"
	"math"
	"time"
)

// Notification chime: A4 and D5 played together with a linear fade-out.
const (
	chimeFreqA     = 440.0
	chimeFreqD     = 587.33
	chimeAmplitude = 0.8
)

// Chime synthesizes a short two-tone notification chime as a WAV clip with
// the given PCM parameters. Only 16-bit samples are supported.
func Chime(p Params, duration time.Duration) ([]byte, error) {
	if p.BitsPerSample != 16 {
		return nil, errors.New("chime synthesis requires 16-bit samples")
	}
	n := int(float64(p.SampleRate) * duration.Seconds())
	frames := make([]byte, 0, n*p.frameSize())
	for i := 0; i < n; i++ {
		t := float64(i) / float64(p.SampleRate)
		fade := 1.0 - float64(i)/float64(n)
		s1 := math.Sin(2 * math.Pi * chimeFreqA * t)
		s2 := math.Sin(2 * math.Pi * chimeFreqD * t)
		sample := int16(chimeAmplitude * fade * (s1 + s2) / 2 * 32767)
		for ch := 0; ch < p.Channels; ch++ {
			frames = append(frames, byte(sample), byte(uint16(sample)>>8))
		}
	}
	return EncodeWAV(p, frames), nil
}

// Silence synthesizes a silent WAV clip with the given PCM parameters.
func Silence(p Params, duration time.Duration) ([]byte, error) {
	if p.BitsPerSample != 16 {
		return nil, errors.New("silence synthesis requires 16-bit samples")
	}
	n := int(float64(p.SampleRate) * duration.Seconds())
	frames := make([]byte, n*p.frameSize())
	return EncodeWAV(p, frames), nil
}
