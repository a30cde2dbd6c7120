package menu

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ytget/media-downloader/internal/i18n"
	"github.com/ytget/media-downloader/internal/model"
)

// Choice validation errors
var (
	ErrNotNumber  = errors.New("choice is not a number")
	ErrOutOfRange = errors.New("choice is out of range")
)

// Option is one numbered menu entry. Value is a mode or a yt-dlp format
// selector; LabelKey is the localized description.
type Option struct {
	Value    string
	LabelKey string
}

// Menu is an ordered list of options shown as 1..N
type Menu struct {
	TitleKey  string
	PromptKey string
	Options   []Option
}

// Len returns the number of options
func (m Menu) Len() int {
	return len(m.Options)
}

// Pick returns the option for a 1-based choice
func (m Menu) Pick(choice int) (Option, error) {
	if choice < 1 || choice > len(m.Options) {
		return Option{}, ErrOutOfRange
	}
	return m.Options[choice-1], nil
}

// Validate parses input as a choice for this menu
func (m Menu) Validate(input string) (Option, error) {
	n, err := ParseChoice(input, len(m.Options))
	if err != nil {
		return Option{}, err
	}
	return m.Pick(n)
}

// ParseChoice parses a 1-based menu choice in the range 1..n
func ParseChoice(input string, n int) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotNumber
	}
	if value < 1 || value > n {
		return 0, ErrOutOfRange
	}
	return value, nil
}

// affirmativeAnswers are the accepted "yes" replies, Spanish and English
var affirmativeAnswers = map[string]bool{
	"s":   true,
	"si":  true,
	"sí":  true,
	"y":   true,
	"yes": true,
}

// IsAffirmative reports whether answer means yes
func IsAffirmative(answer string) bool {
	return affirmativeAnswers[strings.ToLower(strings.TrimSpace(answer))]
}

// ModeMenu selects what a YouTube download keeps
var ModeMenu = Menu{
	TitleKey:  i18n.KeyModeMenuTitle,
	PromptKey: i18n.KeyPromptMode,
	Options: []Option{
		{Value: string(model.ModeVideo), LabelKey: i18n.KeyModeVideo},
		{Value: string(model.ModeAudioMP3), LabelKey: i18n.KeyModeMP3},
		{Value: string(model.ModeAudioWAV), LabelKey: i18n.KeyModeWAV},
	},
}

// VideoQualityMenu maps choices to video format selectors
var VideoQualityMenu = Menu{
	TitleKey:  i18n.KeyVideoQualityTitle,
	PromptKey: i18n.KeyPromptQuality,
	Options: []Option{
		{Value: "best[height<=1080]/best", LabelKey: i18n.KeyQuality1080},
		{Value: "best[height<=720]/best", LabelKey: i18n.KeyQuality720},
		{Value: "best[height<=480]/best", LabelKey: i18n.KeyQuality480},
		{Value: "best[height<=360]/best", LabelKey: i18n.KeyQuality360},
		{Value: "best", LabelKey: i18n.KeyQualityBest},
		{Value: "worst", LabelKey: i18n.KeyQualityWorst},
	},
}

// AudioQualityMenu maps choices to audio format selectors
var AudioQualityMenu = Menu{
	TitleKey:  i18n.KeyAudioQualityTitle,
	PromptKey: i18n.KeyPromptAudioQuality,
	Options: []Option{
		{Value: "bestaudio", LabelKey: i18n.KeyAudioBest},
		{Value: "bestaudio[abr<=320]", LabelKey: i18n.KeyAudio320},
		{Value: "bestaudio[abr<=192]", LabelKey: i18n.KeyAudio192},
		{Value: "bestaudio[abr<=128]", LabelKey: i18n.KeyAudio128},
	},
}

// QualityMenuFor returns the quality menu matching mode
func QualityMenuFor(mode model.Mode) Menu {
	if mode.IsAudio() {
		return AudioQualityMenu
	}
	return VideoQualityMenu
}
