package download

import (
	"errors"
	"strings"
	"testing"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/source"
)

func TestParseInfo(t *testing.T) {
	long := strings.Repeat("a", 150)

	tests := []struct {
		name     string
		platform source.Platform
		output   string
		want     model.MediaInfo
	}{
		{
			name:     "youtube full",
			platform: source.PlatformYouTube,
			output:   `{"title":"T","uploader":"U","description":"D","duration":61,"view_count":10,"like_count":3}`,
			want:     model.MediaInfo{Platform: source.PlatformYouTube, Title: "T", Author: "U", Description: "D", DurationSec: 61, Views: 10, Likes: 3},
		},
		{
			name:     "title falls back to fulltitle",
			platform: source.PlatformYouTube,
			output:   `{"title":"","fulltitle":"Full","channel":"C"}`,
			want:     model.MediaInfo{Platform: source.PlatformYouTube, Title: "Full", Author: "C"},
		},
		{
			name:     "facebook skips counters",
			platform: source.PlatformFacebook,
			output:   `{"title":"F","uploader_id":"42","alt_title":"Alt","duration":"12.5","view_count":99}`,
			want:     model.MediaInfo{Platform: source.PlatformFacebook, Title: "F", Author: "42", Description: "Alt", DurationSec: 12},
		},
		{
			name:     "instagram channel and long description",
			platform: source.PlatformInstagram,
			output:   "[debug] noise\n" + `{"title":"I","channel":"ch","description":"` + long + `","like_count":-1}`,
			want:     model.MediaInfo{Platform: source.PlatformInstagram, Title: "I", Author: "ch", Description: strings.Repeat("a", model.MaxDescriptionRunes) + model.TruncationSuffix},
		},
		{
			name:     "null duration",
			platform: source.PlatformYouTube,
			output:   `{"title":"T","duration":null}`,
			want:     model.MediaInfo{Platform: source.PlatformYouTube, Title: "T"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, _ := source.ProfileFor(tt.platform)
			got, err := ParseInfo([]byte(tt.output), profile)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if *got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}

func TestParseInfo_Errors(t *testing.T) {
	profile, _ := source.ProfileFor(source.PlatformYouTube)

	if _, err := ParseInfo([]byte("no json here"), profile); !errors.Is(err, ErrNoMetadata) {
		t.Errorf("Expected ErrNoMetadata, got %v", err)
	}
	if _, err := ParseInfo([]byte("{broken"), profile); err == nil {
		t.Error("Expected parse error, got nil")
	}
}
