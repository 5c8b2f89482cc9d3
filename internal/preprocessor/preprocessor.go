// Package preprocessor strips comments from source text before parsing.
// It is a pure text transformation with no syntactic awareness: malformed
// delimiters are handled best-effort and never produce an error.
package preprocessor

import "strings"

const docstringDelimiter = `"""`

// StripComments removes '#' line comments and triple-quoted docstring
// blocks. Everything before a '#' is kept, so line structure survives for
// the scanner. Docstring removal elides alternating segments between
// `"""` delimiters; an unterminated delimiter drops the trailing segment,
// leaving the parser to report whatever syntax error remains.
func StripComments(source string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			lines[i] = line[:idx]
		}
	}

	segments := strings.Split(strings.Join(lines, "\n"), docstringDelimiter)
	if len(segments) == 1 {
		return segments[0]
	}

	var b strings.Builder
	for i, segment := range segments {
		if i%2 == 0 {
			b.WriteString(segment)
		}
	}
	return b.String()
}
