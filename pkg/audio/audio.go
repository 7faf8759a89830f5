package audio

// Clip holds one finished piece of synthesized audio. The platform treats
// the payload as opaque bytes; WAV helpers in this package are available for
// callers that need to inspect or stitch clips.
type Clip struct {
	Data []byte
}

func NewClip(data []byte) Clip { return Clip{Data: data} }

// Empty reports whether the clip carries no audio.
func (c Clip) Empty() bool { return len(c.Data) == 0 }
