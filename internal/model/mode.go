package model

// Mode selects what is kept from the source: the full video or an audio track
type Mode string

const (
	ModeVideo    Mode = "video"
	ModeAudioMP3 Mode = "audio_mp3"
	ModeAudioWAV Mode = "audio_wav"
)

// IsAudio reports whether the mode extracts audio through ffmpeg
func (m Mode) IsAudio() bool {
	return m == ModeAudioMP3 || m == ModeAudioWAV
}

// AudioCodec returns the yt-dlp audio format for audio modes, or "" for video
func (m Mode) AudioCodec() string {
	switch m {
	case ModeAudioMP3:
		return "mp3"
	case ModeAudioWAV:
		return "wav"
	default:
		return ""
	}
}
