// Package hints turns a failed download's error text into remediation tips.
// yt-dlp reports failures as free text, so classification is a first-match
// substring search over ordered per-platform rule tables.
package hints

import (
	"strings"

	"github.com/ytget/media-downloader/internal/i18n"
	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/source"
)

// Style controls the prefix a hint line is printed with
type Style int

const (
	StyleTip Style = iota
	StyleAction
	StyleNote
	StyleHeading
	StyleItem
)

// Line is one localized remediation line
type Line struct {
	Style Style
	Key   string
}

// Rule matches when any of its substrings occurs in the lower-cased error
// text. A rule without substrings always matches.
type Rule struct {
	ID        string
	Any       []string
	AudioOnly bool
	Lines     []Line
}

func (r Rule) matches(text string, mode model.Mode) bool {
	if r.AudioOnly && !mode.IsAudio() {
		return false
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, s := range r.Any {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// Hint is the classification result
type Hint struct {
	RuleID string
	Lines  []Line
}

var youtubeRules = []Rule{
	{ID: "ffmpeg", Any: []string{"ffmpeg"}, AudioOnly: true, Lines: []Line{
		{StyleTip, i18n.KeyHintFFmpegRequired},
		{StyleAction, i18n.KeyHintFFmpegInstall},
		{StyleTip, i18n.KeyHintFFmpegVideo},
	}},
	{ID: "private", Any: []string{"private", "unavailable"}, Lines: []Line{
		{StyleTip, i18n.KeyHintYTPrivate},
	}},
	{ID: "age", Any: []string{"age", "restricted"}, Lines: []Line{
		{StyleTip, i18n.KeyHintYTAge},
		{StyleNote, i18n.KeyHintYTAgeAccount},
	}},
	{ID: "region", Any: []string{"region", "blocked"}, Lines: []Line{
		{StyleTip, i18n.KeyHintYTRegion},
	}},
	{ID: "copyright", Any: []string{"copyright"}, Lines: []Line{
		{StyleTip, i18n.KeyHintYTCopyright},
	}},
	{ID: "live", Any: []string{"live"}, Lines: []Line{
		{StyleTip, i18n.KeyHintYTLive},
	}},
	{ID: "premium", Any: []string{"premium"}, Lines: []Line{
		{StyleTip, i18n.KeyHintYTPremium},
	}},
	{ID: "sign_in", Any: []string{"sign in", "login"}, Lines: []Line{
		{StyleTip, i18n.KeyHintYTSignIn},
	}},
	{ID: "unknown", Lines: []Line{
		{StyleTip, i18n.KeyHintYTUnknown},
		{StyleHeading, i18n.KeyHintYTSolutions},
		{StyleItem, i18n.KeyHintYTSolPublic},
		{StyleItem, i18n.KeyHintYTSolCopyURL},
		{StyleItem, i18n.KeyHintYTSolOther},
		{StyleItem, i18n.KeyHintYTSolUpdate},
	}},
}

var facebookRules = []Rule{
	{ID: "private", Any: []string{"private", "login"}, Lines: []Line{
		{StyleTip, i18n.KeyHintFBPrivate},
	}},
	{ID: "removed", Any: []string{"not available", "removed"}, Lines: []Line{
		{StyleTip, i18n.KeyHintFBRemoved},
	}},
	{ID: "unknown", Lines: []Line{
		{StyleTip, i18n.KeyHintFBDefault},
	}},
}

var instagramRules = []Rule{
	{ID: "private", Any: []string{"private", "login"}, Lines: []Line{
		{StyleTip, i18n.KeyHintIGPrivate},
	}},
	{ID: "removed", Any: []string{"not available", "removed"}, Lines: []Line{
		{StyleTip, i18n.KeyHintIGRemoved},
	}},
	{ID: "rate_limited", Any: []string{"rate", "too many"}, Lines: []Line{
		{StyleTip, i18n.KeyHintIGRateLimited},
	}},
	{ID: "unknown", Lines: []Line{
		{StyleTip, i18n.KeyHintIGDefault},
	}},
}

// RulesFor returns the ordered rule table of a platform
func RulesFor(platform source.Platform) []Rule {
	switch platform {
	case source.PlatformYouTube:
		return youtubeRules
	case source.PlatformFacebook:
		return facebookRules
	case source.PlatformInstagram:
		return instagramRules
	default:
		return nil
	}
}

// Classify returns the first matching hint for errText. The zero Hint is
// returned for platforms without rules.
func Classify(platform source.Platform, mode model.Mode, errText string) Hint {
	text := strings.ToLower(errText)
	for _, rule := range RulesFor(platform) {
		if rule.matches(text, mode) {
			return Hint{RuleID: rule.ID, Lines: rule.Lines}
		}
	}
	return Hint{}
}
