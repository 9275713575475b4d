package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// namedColors maps the color names accepted in environment metadata to
// their ANSI palette indices. Anything not listed passes through to
// lipgloss as-is, so hex values and raw ANSI numbers also work.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// styleFor returns the display style for an environment color. An empty
// color yields an unstyled style.
func styleFor(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle()
	}

	c, ok := namedColors[strings.ToLower(color)]
	if !ok {
		c = color
	}

	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// shellQuote renders value as a double-quoted shell word safe to place in
// an export statement.
func shellQuote(value string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range value {
		switch r {
		case '"', '\\', '$', '`':
			sb.WriteByte('\\')
			sb.WriteRune(r)

		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// dotenvQuote renders value for a dotenv line, quoting only when the value
// contains characters that would not survive a round trip unquoted.
func dotenvQuote(value string) string {
	if value != "" && !strings.ContainsAny(value, " \t\n\r\"'#\\$") {
		return value
	}

	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range value {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}
