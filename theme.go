package markup

// Theme defines semantic color mappings for terminal previews using ANSI
// color indices (0-15). The user's terminal theme determines the actual RGB
// values. A negative index means no color.
type Theme struct {
	Accent  int // Code block language labels
	Muted   int // Quote bars, code gutters
	Code    int // Inline code
	Spoiler int // Spoiler foreground and background
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Accent:  5,
		Muted:   8,
		Code:    3,
		Spoiler: 8,
	}
}
