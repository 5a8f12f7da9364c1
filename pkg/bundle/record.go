package bundle

import (
	"bufio"
	"strings"
)

// Markers delimiting the relative path on a record header line.
const (
	headerPrefix = "--- "
	headerSuffix = " ---"
)

// formatHeader builds the header line for one record.
func formatHeader(relPath string) string {
	return headerPrefix + relPath + headerSuffix + "\n"
}

// writeRecord appends one record to the bundle: header line, the file's
// verbatim content, and a blank-line separator.
func writeRecord(w *bufio.Writer, relPath string, content []byte) error {
	if _, err := w.WriteString(formatHeader(relPath)); err != nil {
		return err
	}
	if _, err := w.Write(content); err != nil {
		return err
	}
	_, err := w.WriteString("\n\n")
	return err
}

// Record is one (relative path, content) pair recovered from a bundle.
type Record struct {
	Path    string
	Content string
}

// ParseBundle splits a bundle back into its records, in file order.
// Colliding relative paths are returned as separate records, matching
// how they were written. Content lines that themselves look like
// record headers cannot be distinguished from real ones; the format
// has no escaping.
func ParseBundle(data string) []Record {
	var records []Record
	var current *Record
	var body strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Content = strings.TrimSuffix(body.String(), "\n\n")
		records = append(records, *current)
		current = nil
		body.Reset()
	}

	for _, line := range strings.SplitAfter(data, "\n") {
		trimmed := strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(trimmed, headerPrefix) && strings.HasSuffix(trimmed, headerSuffix) &&
			len(trimmed) >= len(headerPrefix)+len(headerSuffix) {
			flush()
			current = &Record{Path: trimmed[len(headerPrefix) : len(trimmed)-len(headerSuffix)]}
			continue
		}
		if current != nil {
			body.WriteString(line)
		}
	}
	flush()

	return records
}
