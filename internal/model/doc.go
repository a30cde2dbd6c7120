package model

// Package model defines domain data structures used across the app: the
// download task and its status, the download mode, and fetched media metadata.
