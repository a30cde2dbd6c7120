package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/media-downloader/internal/source"
)

// TaskIDPrefix prefixes every generated task ID
const TaskIDPrefix = "task-"

// DownloadTask represents a single download request and its runtime state
type DownloadTask struct {
	ID       string
	URL      string
	Platform source.Platform
	Mode     Mode
	Format   string // yt-dlp format selector
	Dir      string // destination folder
	FileName string // sanitized name without extension

	Status     TaskStatus
	Percent    int       // 0 to 100
	Speed      string    // human readable speed (e.g., "1.2MB/s")
	ETASec     int       // ETA in seconds, -1 if unknown
	Title      string    // video title reported by yt-dlp
	LastError  string    // error text used for hint classification
	OutputPath string    // path to downloaded file
	StartedAt  time.Time // when download started
	FinishedAt time.Time // when download finished
}

// NewTaskID generates a unique task ID
func NewTaskID() string {
	return TaskIDPrefix + uuid.NewString()
}

// NewDownloadTask creates a pending task for url
func NewDownloadTask(url string, platform source.Platform, dir, fileName string) *DownloadTask {
	return &DownloadTask{
		ID:       NewTaskID(),
		URL:      url,
		Platform: platform,
		Mode:     ModeVideo,
		Dir:      dir,
		FileName: fileName,
		Status:   TaskStatusPending,
		ETASec:   -1,
	}
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		// support both / and \ separators
		parts := strings.FieldsFunc(dt.OutputPath, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		if len(parts) > 0 {
			filename := parts[len(parts)-1]
			if idx := strings.LastIndex(filename, "."); idx > 0 {
				filename = filename[:idx]
			}
			return filename
		}
	}

	if dt.FileName != "" {
		return dt.FileName
	}
	return dt.URL
}

// OutputTemplate returns the yt-dlp output template for the task
func (dt *DownloadTask) OutputTemplate() string {
	return filepath.Join(dt.Dir, dt.FileName+".%(ext)s")
}
