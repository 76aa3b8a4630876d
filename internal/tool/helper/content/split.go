// Package content holds small text helpers shared by the tools.
package content

import "strings"

// SplitLines splits content on \n, dropping a trailing \r from each line. A final
// line terminator does not produce a trailing empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Head returns the first n lines of content with their terminators intact, and
// whether anything was cut off.
func Head(content string, n int) (string, bool) {
	if n <= 0 {
		return "", content != ""
	}
	idx := 0
	for i := 0; i < n; i++ {
		next := strings.IndexByte(content[idx:], '\n')
		if next < 0 {
			return content, false
		}
		idx += next + 1
	}
	return content[:idx], idx < len(content)
}
