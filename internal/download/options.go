package download

import (
	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/source"
)

// Audio extraction constants
const (
	MP3Quality    = "320K"
	DefaultFormat = "best"
)

// Options is the set of yt-dlp flags used for one run
type Options struct {
	Format        string
	Output        string
	NoPlaylist    bool
	EmbedMetadata bool
	ExtractAudio  bool
	AudioFormat   string
	AudioQuality  string
	Headers       []source.Header

	SkipDownload bool
	PrintJSON    bool
	Quiet        bool
	NoWarnings   bool
	IgnoreErrors bool
}

// BuildInfoOptions returns the flags for a metadata-only run
func BuildInfoOptions(profile source.Profile) Options {
	return Options{
		NoPlaylist:   true,
		SkipDownload: true,
		PrintJSON:    true,
		Quiet:        true,
		NoWarnings:   true,
		IgnoreErrors: true,
		Headers:      profile.InfoHeaders,
	}
}

// BuildDownloadOptions returns the flags that download task with profile
func BuildDownloadOptions(task *model.DownloadTask, profile source.Profile) Options {
	format := task.Format
	if format == "" {
		format = profile.FixedFormat
	}
	if format == "" {
		format = DefaultFormat
	}

	opts := Options{
		Format:        format,
		Output:        task.OutputTemplate(),
		NoPlaylist:    true,
		EmbedMetadata: profile.EmbedMetadata,
		Headers:       profile.DownloadHeaders,
	}

	if profile.HasMenus && task.Mode.IsAudio() {
		opts.ExtractAudio = true
		opts.AudioFormat = task.Mode.AudioCodec()
		if task.Mode == model.ModeAudioMP3 {
			opts.AudioQuality = MP3Quality
		}
	}

	return opts
}

// Command converts the options into a go-ytdlp command. Headers are not
// part of it: the builder keeps a single --add-headers value, so they are
// passed through Args.
func (o Options) Command() *ytdlp.Command {
	dl := ytdlp.New()

	if o.Format != "" {
		dl = dl.Format(o.Format)
	}
	if o.Output != "" {
		dl = dl.Output(o.Output)
	}
	if o.NoPlaylist {
		dl = dl.NoPlaylist()
	}
	if o.EmbedMetadata {
		dl = dl.EmbedMetadata()
	}
	if o.ExtractAudio {
		dl = dl.ExtractAudio()
	}
	if o.AudioFormat != "" {
		dl = dl.AudioFormat(o.AudioFormat)
	}
	if o.AudioQuality != "" {
		dl = dl.AudioQuality(o.AudioQuality)
	}
	if o.SkipDownload {
		dl = dl.SkipDownload()
	}
	if o.PrintJSON {
		dl = dl.PrintJSON()
	}
	if o.Quiet {
		dl = dl.Quiet()
	}
	if o.NoWarnings {
		dl = dl.NoWarnings()
	}
	if o.IgnoreErrors {
		dl = dl.IgnoreErrors()
	}

	return dl
}

// Args returns the positional arguments for a run of url: one --add-headers
// pair per header, then the URL
func (o Options) Args(url string) []string {
	args := make([]string, 0, len(o.Headers)*2+1)
	for _, h := range o.Headers {
		args = append(args, "--add-headers", h.Name+":"+h.Value)
	}
	return append(args, url)
}
