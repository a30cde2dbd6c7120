package source

import (
	"regexp"
	"strings"
)

// Platform identifies a supported video platform
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformFacebook  Platform = "facebook"
	PlatformInstagram Platform = "instagram"
	PlatformUnknown   Platform = "unknown"
)

// Host patterns, checked in declaration order
var (
	youtubePattern   = regexp.MustCompile(`youtube\.com|youtu\.be`)
	facebookPattern  = regexp.MustCompile(`facebook\.com|fb\.watch|fb\.me`)
	instagramPattern = regexp.MustCompile(`instagram\.com|instagr\.am`)
)

var detectors = []struct {
	platform Platform
	pattern  *regexp.Regexp
}{
	{PlatformYouTube, youtubePattern},
	{PlatformFacebook, facebookPattern},
	{PlatformInstagram, instagramPattern},
}

// Detect returns the platform whose host pattern appears anywhere in url.
func Detect(url string) Platform {
	lower := strings.ToLower(url)
	for _, d := range detectors {
		if d.pattern.MatchString(lower) {
			return d.platform
		}
	}
	return PlatformUnknown
}

// String returns the string representation of Platform
func (p Platform) String() string {
	return string(p)
}

// IsKnown reports whether p is one of the supported platforms
func (p Platform) IsKnown() bool {
	return p == PlatformYouTube || p == PlatformFacebook || p == PlatformInstagram
}

// Upper returns the platform name in capitals, as shown in prompts
func (p Platform) Upper() string {
	return strings.ToUpper(string(p))
}

// Supported returns the supported platforms in detection order
func Supported() []Platform {
	out := make([]Platform, 0, len(detectors))
	for _, d := range detectors {
		out = append(out, d.platform)
	}
	return out
}
