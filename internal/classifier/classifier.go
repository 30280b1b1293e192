// Package classifier implements the single-line classification heuristic:
// every line of a file is code, comment, or blank, and independently may be
// a technical-debt line. Block comments, string literals, and embedded
// languages are intentionally not understood.
package classifier

import (
	"bytes"
	"strings"

	"github.com/polyscan-dev/polyscan/domain"
	"github.com/polyscan-dev/polyscan/internal/syntax"
)

// DecodeText converts raw file bytes to a string, dropping bytes that are
// not valid UTF-8 so mixed or foreign encodings never abort a run.
func DecodeText(b []byte) string {
	return strings.ToValidUTF8(string(b), "")
}

// IsBinary reports whether content looks binary. A NUL byte is treated as a
// reliable indicator of a binary file masquerading as text.
func IsBinary(b []byte) bool {
	return bytes.IndexByte(b, 0) >= 0
}

// Classify tallies the lines of a file's decoded content. The extension
// selects the comment marker; extensions without a marker classify every
// non-blank line as code.
func Classify(content string, ext string) domain.LineStats {
	var stats domain.LineStats
	if content == "" {
		return stats
	}

	marker := syntax.CommentMarker(ext)

	for _, line := range SplitLines(content) {
		// Debt tags are scanned on the raw line, independent of the
		// code/comment/blank classification below.
		if syntax.HasDebtTag(line) {
			stats.Todo++
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			stats.Blank++
		case marker != "" && strings.HasPrefix(trimmed, marker):
			stats.Comment++
		default:
			stats.Code++
		}
	}

	return stats
}

// SplitLines splits text on any of the three common line-ending conventions.
// A single trailing terminator does not produce an extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
