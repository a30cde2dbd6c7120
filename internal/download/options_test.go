package download

import (
	"testing"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/source"
)

func mustProfile(t *testing.T, p source.Platform) source.Profile {
	t.Helper()
	profile, ok := source.ProfileFor(p)
	if !ok {
		t.Fatalf("Expected profile for %s", p)
	}
	return profile
}

func TestBuildDownloadOptions(t *testing.T) {
	tests := []struct {
		name        string
		platform    source.Platform
		mode        model.Mode
		format      string
		wantFormat  string
		wantAudio   string
		wantQuality string
		wantEmbed   bool
		wantHeaders int
	}{
		{"youtube video", source.PlatformYouTube, model.ModeVideo, "best[height<=720]/best", "best[height<=720]/best", "", "", true, 1},
		{"youtube mp3", source.PlatformYouTube, model.ModeAudioMP3, "bestaudio", "bestaudio", "mp3", MP3Quality, true, 1},
		{"youtube wav", source.PlatformYouTube, model.ModeAudioWAV, "bestaudio[abr<=128]", "bestaudio[abr<=128]", "wav", "", true, 1},
		{"youtube no format", source.PlatformYouTube, model.ModeVideo, "", DefaultFormat, "", "", true, 1},
		{"facebook", source.PlatformFacebook, model.ModeVideo, "", source.FacebookFormat, "", "", false, 0},
		{"instagram", source.PlatformInstagram, model.ModeVideo, "", source.InstagramFormat, "", "", false, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := model.NewDownloadTask("https://x", tt.platform, "/tmp/out", "clip")
			task.Mode = tt.mode
			task.Format = tt.format

			opts := BuildDownloadOptions(task, mustProfile(t, tt.platform))

			if opts.Format != tt.wantFormat {
				t.Errorf("Expected format %q, got %q", tt.wantFormat, opts.Format)
			}
			if opts.ExtractAudio != (tt.wantAudio != "") {
				t.Errorf("Expected ExtractAudio %v, got %v", tt.wantAudio != "", opts.ExtractAudio)
			}
			if opts.AudioFormat != tt.wantAudio {
				t.Errorf("Expected audio format %q, got %q", tt.wantAudio, opts.AudioFormat)
			}
			if opts.AudioQuality != tt.wantQuality {
				t.Errorf("Expected audio quality %q, got %q", tt.wantQuality, opts.AudioQuality)
			}
			if opts.EmbedMetadata != tt.wantEmbed {
				t.Errorf("Expected EmbedMetadata %v, got %v", tt.wantEmbed, opts.EmbedMetadata)
			}
			if len(opts.Headers) != tt.wantHeaders {
				t.Errorf("Expected %d headers, got %d", tt.wantHeaders, len(opts.Headers))
			}
			if !opts.NoPlaylist {
				t.Error("Expected NoPlaylist to be set")
			}
			if opts.Output != task.OutputTemplate() {
				t.Errorf("Expected output %q, got %q", task.OutputTemplate(), opts.Output)
			}
		})
	}
}

func TestBuildInfoOptions(t *testing.T) {
	opts := BuildInfoOptions(mustProfile(t, source.PlatformInstagram))

	if !opts.SkipDownload || !opts.PrintJSON || !opts.Quiet || !opts.NoWarnings || !opts.IgnoreErrors || !opts.NoPlaylist {
		t.Errorf("Expected all metadata flags set, got %+v", opts)
	}
	if opts.Format != "" || opts.Output != "" {
		t.Errorf("Expected no format or output for metadata run, got %+v", opts)
	}
	if len(opts.Headers) != 1 {
		t.Errorf("Expected 1 metadata header for Instagram, got %d", len(opts.Headers))
	}
}

func TestOptionsArgs(t *testing.T) {
	opts := BuildDownloadOptions(
		model.NewDownloadTask("https://instagram.com/p/1", source.PlatformInstagram, "/tmp", "clip"),
		mustProfile(t, source.PlatformInstagram),
	)

	args := opts.Args("https://instagram.com/p/1")

	if len(args) != len(opts.Headers)*2+1 {
		t.Fatalf("Expected %d args, got %d: %v", len(opts.Headers)*2+1, len(args), args)
	}
	for i, h := range opts.Headers {
		if args[2*i] != "--add-headers" || args[2*i+1] != h.Name+":"+h.Value {
			t.Errorf("Header %d: expected --add-headers %s:%s, got %s %s", i, h.Name, h.Value, args[2*i], args[2*i+1])
		}
	}
	if args[len(args)-1] != "https://instagram.com/p/1" {
		t.Errorf("Expected URL last, got %q", args[len(args)-1])
	}

	if got := (Options{}).Args("u"); len(got) != 1 || got[0] != "u" {
		t.Errorf("Expected only the URL without headers, got %v", got)
	}
}
