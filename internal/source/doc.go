package source

// Package source classifies media URLs by platform and holds the per-platform
// download profile: fixed formats, headers, metadata fallbacks and notes.
