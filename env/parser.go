package env

import (
	"fmt"
	"strings"
)

// InvalidFormatError reports a line that is not a well-formed assignment.
type InvalidFormatError struct {
	Content string
	Line    int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format at line %d: %q", e.Line, e.Content)
}

// UnterminatedQuoteError reports a quoted value with no closing quote.
type UnterminatedQuoteError struct {
	Line int
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated quote at line %d", e.Line)
}

// ParseOptions controls env-file parsing behavior.
type ParseOptions struct {
	// ExpandVariables enables in-file ${NAME} expansion against variables
	// committed earlier in the same parse. Undefined names expand to the
	// empty string. Disabled when parsing on behalf of a [Resolver] so
	// cross-source references survive to the merge stage.
	ExpandVariables bool
}

// DefaultParseOptions returns the options used by [Parse].
func DefaultParseOptions() ParseOptions {
	return ParseOptions{ExpandVariables: true}
}

// Parse parses env-file content into an ordered mapping with in-file
// expansion enabled.
func Parse(content string) (*Vars, error) {
	return ParseWithOptions(content, DefaultParseOptions())
}

// ParseWithOptions parses env-file content into an ordered mapping.
//
// Parsing is line-oriented, but a quoted value may span several physical
// lines. Blank lines and lines whose trimmed content starts with '#' are
// skipped. Keys must be non-empty and contain only letters, digits, or
// underscore. A key repeated later in the content overwrites the value at
// its original position.
func ParseWithOptions(content string, opts ParseOptions) (*Vars, error) {
	vars := NewVars()
	lines := splitLines(content)

	for idx := 0; idx < len(lines); {
		lineNum := idx + 1
		line := lines[idx]
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			idx++

			continue
		}

		eq := findAssignment(line)
		if eq < 0 {
			return nil, &InvalidFormatError{Line: lineNum, Content: line}
		}

		key := strings.TrimSpace(line[:eq])
		if !validKey(key) {
			return nil, &InvalidFormatError{Line: lineNum, Content: line}
		}

		value, consumed, err := parseValue(line[eq+1:], lines[idx:], lineNum)
		if err != nil {
			return nil, err
		}

		if opts.ExpandVariables {
			value = expandInFile(value, vars)
		}

		vars.Set(key, value)
		idx += consumed
	}

	return vars, nil
}

// findAssignment returns the index of the first '=' not nested inside a
// quoted span, or -1 if none exists. Backslash escapes are honored only
// inside double quotes.
func findAssignment(line string) int {
	var inSingle, inDouble, escaped bool

	for i := 0; i < len(line); i++ {
		if escaped {
			escaped = false

			continue
		}

		switch line[i] {
		case '\\':
			if inDouble {
				escaped = true
			}
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '=':
			if !inSingle && !inDouble {
				return i
			}
		}
	}

	return -1
}

// validKey reports whether key is non-empty and contains only letters,
// digits, or underscore.
func validKey(key string) bool {
	if key == "" {
		return false
	}

	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}

	return true
}

// parseValue determines the value beginning at valuePart (the text after
// '='), consuming additional physical lines for multi-line quoted values.
// It returns the decoded value and the number of lines consumed.
func parseValue(
	valuePart string,
	remaining []string,
	lineNum int,
) (string, int, error) {
	lead := strings.TrimLeft(valuePart, " \t")

	switch {
	case strings.HasPrefix(lead, `"`):
		return parseQuoted(valuePart, remaining, lineNum, '"')

	case strings.HasPrefix(lead, "'"):
		return parseQuoted(valuePart, remaining, lineNum, '\'')
	}

	// Unquoted: cut at an unescaped '#' (inline comment) with trailing
	// whitespace trimmed. With no comment the value is taken verbatim,
	// including internal and trailing spaces.
	if pos := findComment(valuePart); pos >= 0 {
		return strings.TrimRight(valuePart[:pos], " \t"), 1, nil
	}

	return valuePart, 1, nil
}

// findComment returns the index of the first '#' not preceded by a
// backslash, or -1.
func findComment(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '#' && (i == 0 || s[i-1] != '\\') {
			return i
		}
	}

	return -1
}

// parseQuoted consumes a quoted value starting in valuePart and spanning
// zero or more continuation lines. Physical lines inside the quotes are
// joined with '\n'. Double-quoted content is unescaped afterward;
// single-quoted content is fully literal.
func parseQuoted(
	valuePart string,
	remaining []string,
	lineNum int,
	quote byte,
) (string, int, error) {
	open := strings.IndexByte(valuePart, quote)
	rest := valuePart[open+1:]

	var sb strings.Builder

	if end := findClosingQuote(rest, quote); end >= 0 {
		sb.WriteString(rest[:end])
	} else {
		sb.WriteString(rest)

		for i, line := range remaining[1:] {
			if end := findClosingQuote(line, quote); end >= 0 {
				if sb.Len() > 0 {
					sb.WriteByte('\n')
				}

				sb.WriteString(line[:end])

				if quote == '"' {
					return unescape(sb.String()), i + 2, nil
				}

				return sb.String(), i + 2, nil
			}

			if sb.Len() > 0 {
				sb.WriteByte('\n')
			}

			sb.WriteString(line)
		}

		return "", 0, &UnterminatedQuoteError{Line: lineNum}
	}

	if quote == '"' {
		return unescape(sb.String()), 1, nil
	}

	return sb.String(), 1, nil
}

// findClosingQuote returns the index of the first closing quote in content,
// honoring backslash escapes only for double quotes, or -1.
func findClosingQuote(content string, quote byte) int {
	escaped := false

	for i := 0; i < len(content); i++ {
		if escaped {
			escaped = false

			continue
		}

		switch {
		case content[i] == '\\' && quote == '"':
			escaped = true
		case content[i] == quote:
			return i
		}
	}

	return -1
}

// unescape decodes the escape sequences recognized inside double-quoted
// values. Unknown sequences are kept literally, backslash included.
func unescape(value string) string {
	var sb strings.Builder

	sb.Grow(len(value))

	for i := 0; i < len(value); i++ {
		if value[i] != '\\' {
			sb.WriteByte(value[i])

			continue
		}

		if i+1 == len(value) {
			sb.WriteByte('\\') // trailing backslash

			break
		}

		i++

		switch value[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case '\\':
			sb.WriteByte('\\')
		case '"':
			sb.WriteByte('"')
		case '\'':
			sb.WriteByte('\'')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(value[i])
		}
	}

	return sb.String()
}

// splitLines splits content on '\n', dropping a trailing '\r' from each
// line so CRLF input parses identically to LF input.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	// A trailing newline produces one empty trailing element; it is
	// harmless (blank lines are skipped).
	return lines
}
