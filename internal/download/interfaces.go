package download

import (
	"context"

	"github.com/ytget/media-downloader/internal/model"
	"github.com/ytget/media-downloader/internal/source"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	SetUpdateCallback(func(*model.DownloadTask))

	// ToolVersion returns the yt-dlp version, failing when it is not installed
	ToolVersion(ctx context.Context) (string, error)

	// InstallTool downloads a yt-dlp binary into the library cache
	InstallTool(ctx context.Context) (string, error)

	// FetchInfo extracts metadata without downloading
	FetchInfo(ctx context.Context, platform source.Platform, url string) (*model.MediaInfo, error)

	// Download runs the task to completion, updating it in place
	Download(ctx context.Context, task *model.DownloadTask) error
}
