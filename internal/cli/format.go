package cli

import (
	"io"
	"strings"
)

// messageGroupWidth is the historical output grouping: five symbols per
// group, groups separated by a single space.
const messageGroupWidth = 5

// FormatMessageLine renders converted text in fixed-width groups of five
// symbols separated by single spaces, terminated by CRLF. An empty message
// renders as a bare CRLF, preserving blank input lines.
func FormatMessageLine(msg string) string {
	var out strings.Builder
	for i := 0; i < len(msg); i += messageGroupWidth {
		if i > 0 {
			out.WriteByte(' ')
		}
		end := i + messageGroupWidth
		if end > len(msg) {
			end = len(msg)
		}
		out.WriteString(msg[i:end])
	}
	out.WriteString("\r\n")
	return out.String()
}

// WriteMessageLine writes a formatted message line to w.
func WriteMessageLine(w io.Writer, msg string) error {
	_, err := io.WriteString(w, FormatMessageLine(msg))
	return err
}

// StripBlanks removes spaces and tabs from a message line before
// conversion; they carry no signal.
func StripBlanks(line string) string {
	line = strings.ReplaceAll(line, " ", "")
	return strings.ReplaceAll(line, "\t", "")
}
