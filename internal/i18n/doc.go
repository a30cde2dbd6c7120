package i18n

// Package i18n holds the console text tables. Every user-visible string is
// looked up by key; missing keys fall back to English and then to the key.
