package moji

import "strings"

// CommentMarker starts an end-of-line comment in moji source.
const CommentMarker = "💬"

// PrepareSource turns raw source text into the statement-line sequence the
// interpreter consumes: per physical line, everything from the first 💬
// onward is stripped, the line is trimmed, and blank lines are dropped.
func PrepareSource(src string) []string {
	var lines []string
	for _, line := range strings.Split(src, "\n") {
		if i := strings.Index(line, CommentMarker); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
