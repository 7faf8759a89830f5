package audio

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := Params{SampleRate: 24000, Channels: 2, BitsPerSample: 16}
	frames := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	wav := EncodeWAV(p, frames)
	gotParams, gotFrames, err := DecodeWAV(wav)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if gotParams != p {
		t.Fatalf("params mismatch: %+v != %+v", gotParams, p)
	}
	if !bytes.Equal(gotFrames, frames) {
		t.Fatalf("frames mismatch")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, err := DecodeWAV([]byte("definitely not audio")); err == nil {
		t.Fatalf("expected error for non-wav payload")
	}
	if _, _, err := DecodeWAV(nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestDecodeRejectsTruncatedChunk(t *testing.T) {
	p := Params{SampleRate: 8000, Channels: 1, BitsPerSample: 16}
	wav := EncodeWAV(p, make([]byte, 32))
	if _, _, err := DecodeWAV(wav[:len(wav)-8]); err == nil {
		t.Fatalf("expected error for truncated data chunk")
	}
}

func TestConcatWAV(t *testing.T) {
	p := Params{SampleRate: 16000, Channels: 1, BitsPerSample: 16}
	a := EncodeWAV(p, []byte{1, 1, 2, 2})
	b := EncodeWAV(p, []byte{3, 3})

	combined, err := ConcatWAV(a, b)
	if err != nil {
		t.Fatalf("concat: %v", err)
	}
	gotParams, frames, err := DecodeWAV(combined)
	if err != nil {
		t.Fatalf("decode combined: %v", err)
	}
	if gotParams != p {
		t.Fatalf("params changed: %+v", gotParams)
	}
	if !bytes.Equal(frames, []byte{1, 1, 2, 2, 3, 3}) {
		t.Fatalf("unexpected combined frames %v", frames)
	}
}

func TestConcatWAVParameterMismatch(t *testing.T) {
	a := EncodeWAV(Params{SampleRate: 16000, Channels: 1, BitsPerSample: 16}, []byte{0, 0})
	b := EncodeWAV(Params{SampleRate: 44100, Channels: 1, BitsPerSample: 16}, []byte{0, 0})
	if _, err := ConcatWAV(a, b); err == nil {
		t.Fatalf("expected parameter mismatch error")
	}
}

func TestConcatWAVEmpty(t *testing.T) {
	if _, err := ConcatWAV(); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
