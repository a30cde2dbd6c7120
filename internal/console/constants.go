package console

import "strings"

// Icons (emojis/symbols)
const (
	IconOK       = "✅"
	IconError    = "❌"
	IconWarning  = "⚠️ "
	IconTarget   = "🎯"
	IconAntenna  = "📡"
	IconTag      = "🏷️ "
	IconVideo    = "📹"
	IconAuthor   = "👤"
	IconClock    = "⏱️ "
	IconViews    = "👁️ "
	IconLikes    = "❤️ "
	IconNote     = "📝"
	IconFolder   = "📁"
	IconList     = "📋"
	IconLink     = "🔗"
	IconDownload = "📥"
	IconQuality  = "📊"
	IconInfo     = "ℹ️ "
	IconTip      = "💡"
	IconPackage  = "📦"
)

// Text fragments
const (
	Indent       = "   "
	BulletIndent = "      • "
	ItemIndent   = "      - "
	MenuFormat   = "   %d. %s"
)

// Separators
var (
	LongSeparator  = strings.Repeat("=", 70)
	ShortSeparator = strings.Repeat("-", 50)
)
