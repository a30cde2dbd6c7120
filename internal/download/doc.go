package download

// Package download implements the metadata fetch and download pipeline built
// on top of yt-dlp (via github.com/lrstanley/go-ytdlp). It builds per-platform
// yt-dlp options, propagates progress into the task, retries failed runs and
// keeps yt-dlp's error text for hint classification.
