package model

import (
	"fmt"

	"github.com/ytget/media-downloader/internal/source"
)

// Metadata presentation limits
const (
	MaxDescriptionRunes = 100
	TruncationSuffix    = "..."
	NotAvailable        = "N/A"
)

// MediaInfo is the metadata shown before a download. Empty strings and zero
// counters mean the platform did not report the field.
type MediaInfo struct {
	Platform    source.Platform
	Title       string
	Author      string
	Description string
	DurationSec int
	Views       int64
	Likes       int64

	// Unavailable is set when metadata could not be fetched at all
	Unavailable bool
}

// FallbackInfo returns placeholder metadata used when fetching failed
func FallbackInfo(platform source.Platform) *MediaInfo {
	return &MediaInfo{Platform: platform, Unavailable: true}
}

// DurationString returns the duration as M:SS, or N/A when unknown
func (m *MediaInfo) DurationString() string {
	return FormatDuration(m.DurationSec)
}

// FormatDuration formats seconds as M:SS. Minutes are not wrapped into hours.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return NotAvailable
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// TruncateDescription shortens s to MaxDescriptionRunes runes plus a suffix
func TruncateDescription(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxDescriptionRunes {
		return s
	}
	return string(runes[:MaxDescriptionRunes]) + TruncationSuffix
}
