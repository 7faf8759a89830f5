package audio

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Params describes the PCM layout of a WAV payload.
type Params struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
}

func (p Params) frameSize() int {
	return p.Channels * p.BitsPerSample / 8
}

func (p Params) byteRate() int {
	return p.SampleRate * p.frameSize()
}

var errNotWAV = errors.New("not a RIFF/WAVE payload")

// EncodeWAV wraps raw PCM frames in a canonical WAV container.
func EncodeWAV(p Params, frames []byte) []byte {
	buf := make([]byte, 0, 44+len(frames))
	le := binary.LittleEndian

	buf = append(buf, "RIFF"...)
	buf = le.AppendUint32(buf, uint32(36+len(frames)))
	buf = append(buf, "WAVE"...)

	buf = append(buf, "fmt "...)
	buf = le.AppendUint32(buf, 16)
	buf = le.AppendUint16(buf, 1) // PCM
	buf = le.AppendUint16(buf, uint16(p.Channels))
	buf = le.AppendUint32(buf, uint32(p.SampleRate))
	buf = le.AppendUint32(buf, uint32(p.byteRate()))
	buf = le.AppendUint16(buf, uint16(p.frameSize()))
	buf = le.AppendUint16(buf, uint16(p.BitsPerSample))

	buf = append(buf, "data"...)
	buf = le.AppendUint32(buf, uint32(len(frames)))
	buf = append(buf, frames...)
	return buf
}

// DecodeWAV extracts PCM parameters and raw frames from a WAV payload.
// Only uncompressed PCM is understood; unknown chunks are skipped.
func DecodeWAV(data []byte) (Params, []byte, error) {
	le := binary.LittleEndian
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return Params{}, nil, errNotWAV
	}

	var p Params
	var frames []byte
	sawFmt := false
	off := 12
	for off+8 <= len(data) {
		id := string(data[off : off+4])
		size := int(le.Uint32(data[off+4 : off+8]))
		body := off + 8
		if body+size > len(data) {
			return Params{}, nil, fmt.Errorf("wav chunk %q overruns payload", id)
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return Params{}, nil, errors.New("wav fmt chunk too short")
			}
			if format := le.Uint16(data[body : body+2]); format != 1 {
				return Params{}, nil, fmt.Errorf("unsupported wav format code %d", format)
			}
			p.Channels = int(le.Uint16(data[body+2 : body+4]))
			p.SampleRate = int(le.Uint32(data[body+4 : body+8]))
			p.BitsPerSample = int(le.Uint16(data[body+14 : body+16]))
			sawFmt = true
		case "data":
			frames = data[body : body+size]
		}
		// chunks are word-aligned
		off = body + size + size%2
	}
	if !sawFmt {
		return Params{}, nil, errors.New("wav payload has no fmt chunk")
	}
	if frames == nil {
		return Params{}, nil, errors.New("wav payload has no data chunk")
	}
	return p, frames, nil
}

// ConcatWAV joins WAV clips into one, in order. All clips must share the
// same sample rate, channel count and sample width.
func ConcatWAV(clips ...[]byte) ([]byte, error) {
	if len(clips) == 0 {
		return nil, errors.New("no clips to concatenate")
	}
	var ref Params
	var frames []byte
	for i, clip := range clips {
		p, f, err := DecodeWAV(clip)
		if err != nil {
			return nil, fmt.Errorf("clip %d: %w", i, err)
		}
		if i == 0 {
			ref = p
		} else if p != ref {
			return nil, fmt.Errorf("clip %d parameters %+v do not match %+v", i, p, ref)
		}
		frames = append(frames, f...)
	}
	return EncodeWAV(ref, frames), nil
}
