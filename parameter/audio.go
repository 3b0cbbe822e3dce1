package parameter

// Audio Defaults
const (
	AudioEnabled    = false
	AudioVolume     = 0.4
	AudioSampleRate = 44100
)
