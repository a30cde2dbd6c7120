package source

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Platform
	}{
		{"youtube watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", PlatformYouTube},
		{"youtube short link", "https://youtu.be/dQw4w9WgXcQ", PlatformYouTube},
		{"youtube upper case", "HTTPS://WWW.YOUTUBE.COM/watch?v=abc", PlatformYouTube},
		{"youtube shorts", "https://youtube.com/shorts/abc123", PlatformYouTube},
		{"facebook video", "https://www.facebook.com/watch/?v=123", PlatformFacebook},
		{"facebook fb.watch", "https://fb.watch/abcdEF/", PlatformFacebook},
		{"facebook fb.me", "https://fb.me/xyz", PlatformFacebook},
		{"instagram reel", "https://www.instagram.com/reel/Cxyz/", PlatformInstagram},
		{"instagram short host", "https://instagr.am/p/Cxyz/", PlatformInstagram},
		{"unknown host", "https://vimeo.com/123456", PlatformUnknown},
		{"empty", "", PlatformUnknown},
		{"no scheme", "youtube.com/watch?v=1", PlatformYouTube},
		// substring match, not a host parse
		{"host in query string", "https://example.com/?next=instagram.com", PlatformInstagram},
		{"youtube wins over facebook", "https://youtube.com/redirect?q=facebook.com", PlatformYouTube},
		{"dot is literal", "https://youtubeXcom/watch", PlatformUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.url); got != tt.expected {
				t.Errorf("Detect(%q) = %s, expected %s", tt.url, got, tt.expected)
			}
		})
	}
}

func TestPlatform_IsKnown(t *testing.T) {
	for _, p := range Supported() {
		if !p.IsKnown() {
			t.Errorf("%s should be known", p)
		}
	}
	if PlatformUnknown.IsKnown() {
		t.Error("unknown platform should not be known")
	}
}

func TestPlatform_Upper(t *testing.T) {
	if got := PlatformInstagram.Upper(); got != "INSTAGRAM" {
		t.Errorf("Upper() = %s, expected INSTAGRAM", got)
	}
}

func TestProfileFor(t *testing.T) {
	yt, ok := ProfileFor(PlatformYouTube)
	if !ok {
		t.Fatal("expected youtube profile")
	}
	if !yt.HasMenus || !yt.EmbedMetadata {
		t.Error("youtube should offer menus and embed metadata")
	}
	if yt.FixedFormat != "" {
		t.Errorf("youtube should not have a fixed format, got %q", yt.FixedFormat)
	}

	fb, _ := ProfileFor(PlatformFacebook)
	if fb.FixedFormat != FacebookFormat {
		t.Errorf("facebook format = %q, expected %q", fb.FixedFormat, FacebookFormat)
	}
	if len(fb.DownloadHeaders) != 0 {
		t.Errorf("facebook should not send extra headers, got %d", len(fb.DownloadHeaders))
	}
	if fb.ShowCounters {
		t.Error("facebook should not show counters")
	}

	ig, _ := ProfileFor(PlatformInstagram)
	if ig.FixedFormat != InstagramFormat {
		t.Errorf("instagram format = %q, expected %q", ig.FixedFormat, InstagramFormat)
	}
	if len(ig.DownloadHeaders) != 7 {
		t.Errorf("instagram should send 7 download headers, got %d", len(ig.DownloadHeaders))
	}
	if len(ig.AuthorFields) != 3 || ig.AuthorFields[2] != "channel" {
		t.Errorf("unexpected instagram author chain: %v", ig.AuthorFields)
	}

	if _, ok := ProfileFor(PlatformUnknown); ok {
		t.Error("unknown platform should not have a profile")
	}
}

func TestPlatform_DisplayName(t *testing.T) {
	tests := []struct {
		platform Platform
		expected string
	}{
		{PlatformYouTube, "YouTube"},
		{PlatformFacebook, "Facebook"},
		{PlatformInstagram, "Instagram"},
		{PlatformUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.platform.DisplayName(); got != tt.expected {
			t.Errorf("DisplayName(%s) = %s, expected %s", tt.platform, got, tt.expected)
		}
	}
}
