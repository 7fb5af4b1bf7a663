package cli

import "strings"

const maxHistoryLines = 100

// inputHistory recalls earlier chat lines with the arrow keys. It lives
// for one chat and is never written to disk.
type inputHistory struct {
	lines []string
	// pos indexes lines while browsing; len(lines) means "not browsing".
	pos int
}

func (h *inputHistory) push(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if n := len(h.lines); n == 0 || h.lines[n-1] != line {
		h.lines = append(h.lines, line)
	}
	if len(h.lines) > maxHistoryLines {
		h.lines = h.lines[len(h.lines)-maxHistoryLines:]
	}
	h.pos = len(h.lines)
}

// prev steps back and returns the line to show. ok is false when there is
// nothing older.
func (h *inputHistory) prev() (string, bool) {
	if h.pos == 0 {
		return "", false
	}
	h.pos--
	return h.lines[h.pos], true
}

// next steps forward; past the newest entry it returns an empty line.
func (h *inputHistory) next() (string, bool) {
	if h.pos >= len(h.lines) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.lines) {
		return "", true
	}
	return h.lines[h.pos], true
}
