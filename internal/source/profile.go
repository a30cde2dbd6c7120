package source

// Desktop browser identities sent to the platforms
const (
	ChromeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
	ShortUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Fixed format selectors for platforms without a quality menu
const (
	FacebookFormat  = "best[height<=720]/best"
	InstagramFormat = "best[height<=1080]/best"
)

// Header is a single HTTP header passed through to yt-dlp
type Header struct {
	Name  string
	Value string
}

// Profile describes how a platform is fetched, downloaded and presented
type Profile struct {
	Platform    Platform
	DisplayName string

	// FixedFormat is used when the platform has no quality menu
	FixedFormat string
	// HasMenus enables the download mode and quality menus
	HasMenus bool
	// EmbedMetadata asks yt-dlp to write tags into the output file
	EmbedMetadata bool

	InfoHeaders     []Header
	DownloadHeaders []Header

	// Metadata field fallback chains, first non-empty wins
	TitleFields       []string
	AuthorFields      []string
	DescriptionFields []string

	// ShowCounters prints view and like counts when present
	ShowCounters bool
}

var instagramDownloadHeaders = []Header{
	{"User-Agent", ChromeUserAgent},
	{"Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"},
	{"Accept-Language", "en-us,en;q=0.5"},
	{"Accept-Encoding", "gzip,deflate"},
	{"Accept-Charset", "ISO-8859-1,utf-8;q=0.7,*;q=0.7"},
	{"Keep-Alive", "115"},
	{"Connection", "keep-alive"},
}

var profiles = map[Platform]Profile{
	PlatformYouTube: {
		Platform:          PlatformYouTube,
		DisplayName:       "YouTube",
		HasMenus:          true,
		EmbedMetadata:     true,
		DownloadHeaders:   []Header{{"User-Agent", ChromeUserAgent}},
		TitleFields:       []string{"title", "fulltitle"},
		AuthorFields:      []string{"uploader", "channel"},
		DescriptionFields: []string{"description"},
		ShowCounters:      true,
	},
	PlatformFacebook: {
		Platform:          PlatformFacebook,
		DisplayName:       "Facebook",
		FixedFormat:       FacebookFormat,
		TitleFields:       []string{"title", "fulltitle"},
		AuthorFields:      []string{"uploader", "uploader_id"},
		DescriptionFields: []string{"description", "alt_title"},
	},
	PlatformInstagram: {
		Platform:          PlatformInstagram,
		DisplayName:       "Instagram",
		FixedFormat:       InstagramFormat,
		InfoHeaders:       []Header{{"User-Agent", ShortUserAgent}},
		DownloadHeaders:   instagramDownloadHeaders,
		TitleFields:       []string{"title", "fulltitle"},
		AuthorFields:      []string{"uploader", "uploader_id", "channel"},
		DescriptionFields: []string{"description", "alt_title"},
		ShowCounters:      true,
	},
}

// ProfileFor returns the profile of p. The second value is false for
// unsupported platforms.
func ProfileFor(p Platform) (Profile, bool) {
	prof, ok := profiles[p]
	return prof, ok
}

// DisplayName returns the human readable platform name
func (p Platform) DisplayName() string {
	if prof, ok := profiles[p]; ok {
		return prof.DisplayName
	}
	return string(p)
}
