package menu

import (
	"errors"
	"testing"

	"github.com/ytget/media-downloader/internal/i18n"
	"github.com/ytget/media-downloader/internal/model"
)

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		n        int
		expected int
		err      error
	}{
		{"first", "1", 3, 1, nil},
		{"last", "3", 3, 3, nil},
		{"surrounding spaces", "  2 \n", 3, 2, nil},
		{"zero", "0", 3, 0, ErrOutOfRange},
		{"above range", "4", 3, 0, ErrOutOfRange},
		{"negative", "-1", 3, 0, ErrOutOfRange},
		{"letters", "two", 3, 0, ErrNotNumber},
		{"empty", "", 3, 0, ErrNotNumber},
		{"decimal", "1.5", 3, 0, ErrNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChoice(tt.input, tt.n)
			if !errors.Is(err, tt.err) {
				t.Fatalf("ParseChoice(%q, %d) error = %v, expected %v", tt.input, tt.n, err, tt.err)
			}
			if got != tt.expected {
				t.Errorf("ParseChoice(%q, %d) = %d, expected %d", tt.input, tt.n, got, tt.expected)
			}
		})
	}
}

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		answer   string
		expected bool
	}{
		{"s", true},
		{"S", true},
		{"si", true},
		{"sí", true},
		{"SÍ", true},
		{"y", true},
		{" yes ", true},
		{"YES", true},
		{"n", false},
		{"no", false},
		{"", false},
		{"sure", false},
		{"yep", false},
	}

	for _, tt := range tests {
		if got := IsAffirmative(tt.answer); got != tt.expected {
			t.Errorf("IsAffirmative(%q) = %v, expected %v", tt.answer, got, tt.expected)
		}
	}
}

func TestMenus(t *testing.T) {
	if ModeMenu.Len() != 3 {
		t.Errorf("Expected 3 modes, got %d", ModeMenu.Len())
	}
	if VideoQualityMenu.Len() != 6 {
		t.Errorf("Expected 6 video qualities, got %d", VideoQualityMenu.Len())
	}
	if AudioQualityMenu.Len() != 4 {
		t.Errorf("Expected 4 audio qualities, got %d", AudioQualityMenu.Len())
	}

	opt, err := VideoQualityMenu.Pick(2)
	if err != nil {
		t.Fatalf("Pick(2) failed: %v", err)
	}
	if opt.Value != "best[height<=720]/best" || opt.LabelKey != i18n.KeyQuality720 {
		t.Errorf("Unexpected option: %+v", opt)
	}

	if _, err := AudioQualityMenu.Pick(5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestMenu_Validate(t *testing.T) {
	opt, err := ModeMenu.Validate("2")
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if model.Mode(opt.Value) != model.ModeAudioMP3 {
		t.Errorf("Expected audio_mp3, got %s", opt.Value)
	}

	if _, err := ModeMenu.Validate("x"); !errors.Is(err, ErrNotNumber) {
		t.Errorf("Expected ErrNotNumber, got %v", err)
	}
	if _, err := ModeMenu.Validate("9"); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange, got %v", err)
	}
}

func TestQualityMenuFor(t *testing.T) {
	tests := []struct {
		mode     model.Mode
		expected string
	}{
		{model.ModeVideo, i18n.KeyVideoQualityTitle},
		{model.ModeAudioMP3, i18n.KeyAudioQualityTitle},
		{model.ModeAudioWAV, i18n.KeyAudioQualityTitle},
	}
	for _, tt := range tests {
		if got := QualityMenuFor(tt.mode).TitleKey; got != tt.expected {
			t.Errorf("QualityMenuFor(%s) = %s, expected %s", tt.mode, got, tt.expected)
		}
	}
}
