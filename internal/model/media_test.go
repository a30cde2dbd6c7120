package model

import (
	"strings"
	"testing"

	"github.com/ytget/media-downloader/internal/source"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{-5, "N/A"},
		{0, "N/A"},
		{5, "0:05"},
		{65, "1:05"},
		{600, "10:00"},
		{3725, "62:05"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.expected {
			t.Errorf("FormatDuration(%d) = %s, expected %s", tt.seconds, got, tt.expected)
		}
	}
}

func TestTruncateDescription(t *testing.T) {
	short := "short description"
	if got := TruncateDescription(short); got != short {
		t.Errorf("short description changed: %q", got)
	}

	exact := strings.Repeat("a", MaxDescriptionRunes)
	if got := TruncateDescription(exact); got != exact {
		t.Errorf("description of exactly %d runes should be kept", MaxDescriptionRunes)
	}

	long := strings.Repeat("ñ", MaxDescriptionRunes+20)
	got := TruncateDescription(long)
	if !strings.HasSuffix(got, TruncationSuffix) {
		t.Errorf("expected suffix %q, got %q", TruncationSuffix, got)
	}
	if n := len([]rune(strings.TrimSuffix(got, TruncationSuffix))); n != MaxDescriptionRunes {
		t.Errorf("expected %d runes before suffix, got %d", MaxDescriptionRunes, n)
	}
}

func TestFallbackInfo(t *testing.T) {
	info := FallbackInfo(source.PlatformInstagram)
	if !info.Unavailable {
		t.Error("fallback info should be marked unavailable")
	}
	if info.Platform != source.PlatformInstagram {
		t.Errorf("expected instagram, got %s", info.Platform)
	}
	if info.DurationString() != NotAvailable {
		t.Errorf("expected N/A duration, got %s", info.DurationString())
	}
}
