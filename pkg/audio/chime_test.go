package audio

import (
	"testing"
	"time"
)

func TestChimeMatchesRequestedParameters(t *testing.T) {
	p := Params{SampleRate: 44100, Channels: 1, BitsPerSample: 16}
	clip, err := Chime(p, time.Second)
	if err != nil {
		t.Fatalf("chime: %v", err)
	}
	gotParams, frames, err := DecodeWAV(clip)
	if err != nil {
		t.Fatalf("decode chime: %v", err)
	}
	if gotParams != p {
		t.Fatalf("params mismatch: %+v", gotParams)
	}
	if got := len(frames) / p.frameSize(); got != 44100 {
		t.Fatalf("expected 44100 frames for 1s, got %d", got)
	}
	// a chime is not silence
	allZero := true
	for _, b := range frames {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatalf("chime produced silence")
	}
}

func TestChimeStereoFrames(t *testing.T) {
	p := Params{SampleRate: 8000, Channels: 2, BitsPerSample: 16}
	clip, err := Chime(p, 500*time.Millisecond)
	if err != nil {
		t.Fatalf("chime: %v", err)
	}
	_, frames, err := DecodeWAV(clip)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := len(frames) / p.frameSize(); got != 4000 {
		t.Fatalf("expected 4000 stereo frames, got %d", got)
	}
}

func TestSilenceIsAllZero(t *testing.T) {
	p := Params{SampleRate: 16000, Channels: 1, BitsPerSample: 16}
	clip, err := Silence(p, 300*time.Millisecond)
	if err != nil {
		t.Fatalf("silence: %v", err)
	}
	_, frames, err := DecodeWAV(clip)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := len(frames) / p.frameSize(); got != 4800 {
		t.Fatalf("expected 4800 frames, got %d", got)
	}
	for i, b := range frames {
		if b != 0 {
			t.Fatalf("non-zero sample at %d", i)
		}
	}
}

func TestChimeRejectsUnsupportedWidth(t *testing.T) {
	p := Params{SampleRate: 16000, Channels: 1, BitsPerSample: 8}
	if _, err := Chime(p, time.Second); err == nil {
		t.Fatalf("expected error for 8-bit samples")
	}
	if _, err := Silence(p, time.Second); err == nil {
		t.Fatalf("expected error for 8-bit samples")
	}
}
