package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, file name sanitizing, ffmpeg detection, and OS reveal.
