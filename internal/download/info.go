package download

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/source"
)

// ErrNoMetadata is returned when yt-dlp printed no info JSON
var ErrNoMetadata = errors.New("yt-dlp returned no metadata")

// maxInfoLine bounds a single JSON line; info documents with full format
// lists exceed bufio's default
const maxInfoLine = 64 << 20

// ParseInfo reads the first info JSON document from yt-dlp output and maps it
// through the platform's fallback chains
func ParseInfo(output []byte, profile source.Profile) (*model.MediaInfo, error) {
	raw, err := firstJSONObject(output)
	if err != nil {
		return nil, err
	}

	info := &model.MediaInfo{
		Platform:    profile.Platform,
		Title:       firstString(raw, profile.TitleFields),
		Author:      firstString(raw, profile.AuthorFields),
		Description: model.TruncateDescription(firstString(raw, profile.DescriptionFields)),
		DurationSec: durationSeconds(raw["duration"]),
	}

	if profile.ShowCounters {
		info.Views = positiveCount(raw["view_count"])
		info.Likes = positiveCount(raw["like_count"])
	}

	return info, nil
}

func firstJSONObject(output []byte) (map[string]any, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxInfoLine)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 || line[0] != '{' {
			continue
		}
		var raw map[string]any
		if err := json.Unmarshal(line, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse yt-dlp metadata: %w", err)
		}
		return raw, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read yt-dlp output: %w", err)
	}
	return nil, ErrNoMetadata
}

func firstString(raw map[string]any, fields []string) string {
	for _, field := range fields {
		if s, ok := raw[field].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// toFloat accepts JSON numbers and numeric strings
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// durationSeconds truncates fractional durations; unknown or invalid values are 0
func durationSeconds(v any) int {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	return int(f)
}

func positiveCount(v any) int64 {
	f, ok := toFloat(v)
	if !ok || f <= 0 || math.IsInf(f, 0) {
		return 0
	}
	return int64(f)
}
