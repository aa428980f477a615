// Package deindent lays out multi-line code templates.
//
// A template is written indented to match the Go source around it. Deindent
// takes the indentation of the first indented line as the template's own
// margin and strips it from every line.
package deindent

import "strings"

// Deindent removes the leading newline, strips the margin (the run of tabs
// starting the first line after a newline) from the start of every line and
// trims surrounding whitespace.
// Text without an indented line is only trimmed.
func Deindent(text string) string {
	margin := marginOf(text)
	if margin == "" {
		return strings.TrimSpace(text)
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, margin)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func marginOf(text string) string {
	nl := strings.IndexByte(text, '\n')
	if nl < 0 {
		return ""
	}
	rest := text[nl+1:]
	end := 0
	for end < len(rest) && rest[end] == '\t' {
		end++
	}
	return rest[:end]
}
