package audio

const (
	// DefaultPlaybackSampleRate matches the synthesized speech frames the
	// backend streams unless a frame says otherwise: 24kHz, mono, 16-bit.
	DefaultPlaybackSampleRate = 24000
	// DefaultCaptureSampleRate is the microphone rate the backend expects.
	DefaultCaptureSampleRate = 16000
	DefaultFormat            = "linear16"
)

func GetDefaultPlaybackEncodingInfo() EncodingInfo {
	return EncodingInfo{SampleRate: DefaultPlaybackSampleRate, Format: encodingFormat(DefaultFormat)}
}

func GetDefaultCaptureEncodingInfo() EncodingInfo {
	return EncodingInfo{SampleRate: DefaultCaptureSampleRate, Format: encodingFormat(DefaultFormat)}
}

type EncodingInfo struct {
	SampleRate int
	Format     encodingFormat
}

func (e EncodingInfo) IsZero() bool {
	return e.SampleRate == 0 || e.Format.Name() == ""
}

func (e EncodingInfo) SilenceValue() byte {
	switch e.Format {
	case EncodingALaw:
		return 0x55
	case EncodingMulaw:
		return 0xFF
	case EncodingLinear16:
		return 0
	}

	return 0
}

type encodingFormat string

func (e encodingFormat) Name() string {
	return string(e)
}

func (e encodingFormat) ByteSize() int {
	switch e {
	case EncodingMulaw, EncodingALaw:
		return 1
	case EncodingLinear16:
		return 2
	}
	return -1
}

const (
	EncodingMulaw    encodingFormat = "mulaw"
	EncodingALaw     encodingFormat = "alaw"
	EncodingLinear16 encodingFormat = "linear16"
)
