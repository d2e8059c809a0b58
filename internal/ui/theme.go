package ui

import "github.com/gdamore/tcell/v2"

// TokyoNight color palette
var (
	// Background colors
	ColorBg          = tcell.NewRGBColor(0x1a, 0x1b, 0x26) // #1a1b26 - Dark background
	ColorBgDark      = tcell.NewRGBColor(0x16, 0x16, 0x1e) // #16161e - Darker background
	ColorBgHighlight = tcell.NewRGBColor(0x29, 0x2e, 0x42) // #292e42 - Highlighted background

	// Foreground colors
	ColorFg       = tcell.NewRGBColor(0xc0, 0xca, 0xf5) // #c0caf5 - Default text
	ColorFgDark   = tcell.NewRGBColor(0x56, 0x5f, 0x89) // #565f89 - Dimmed text
	ColorFgGutter = tcell.NewRGBColor(0x3b, 0x42, 0x61) // #3b4261 - Gutter/border

	// Accent colors
	ColorBlue    = tcell.NewRGBColor(0x7a, 0xa2, 0xf7) // #7aa2f7 - Primary blue
	ColorCyan    = tcell.NewRGBColor(0x7d, 0xcf, 0xff) // #7dcfff - Cyan
	ColorGreen   = tcell.NewRGBColor(0x9e, 0xce, 0x6a) // #9ece6a - Green
	ColorTeal    = tcell.NewRGBColor(0x73, 0xda, 0xca) // #73daca - Teal
	ColorMagenta = tcell.NewRGBColor(0xbb, 0x9a, 0xf7) // #bb9af7 - Purple/Magenta
	ColorOrange  = tcell.NewRGBColor(0xff, 0x9e, 0x64) // #ff9e64 - Orange
	ColorRed     = tcell.NewRGBColor(0xf7, 0x76, 0x8e) // #f7768e - Red
	ColorYellow  = tcell.NewRGBColor(0xe0, 0xaf, 0x68) // #e0af68 - Yellow

	// UI-specific color mappings
	ColorSelection = ColorBgHighlight // Selected text background
	ColorCursor    = ColorFg          // Caret cell
	ColorHeading   = ColorBlue        // Markup headings
	ColorBullet    = ColorOrange      // List bullets in preview
	ColorCode      = ColorTeal        // Inline code
	ColorLink      = ColorCyan        // Links
	ColorHighlight = ColorYellow      // Search highlights
	ColorError     = ColorRed         // Error messages
	ColorSuccess   = ColorGreen       // Success messages
	ColorInfo      = ColorBlue        // Info messages
	ColorDimmed    = ColorFgDark      // Dimmed text (placeholder, markers)
)
