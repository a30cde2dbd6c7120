package menu

// Package menu defines the numbered option lists offered for YouTube
// downloads and validates the numeric answers typed by the user.
