package config

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// LineSpan is an inclusive 1-based line range. A single line N is the span
// [N, N].
type LineSpan struct {
	First int
	Last  int
}

// Contains reports whether the 1-based line falls inside the span.
func (s LineSpan) Contains(line int) bool {
	return line >= s.First && line <= s.Last
}

// Suppression is one <suppress/> record from a suppressions.xml file.
type Suppression struct {
	// Files is a glob pattern matched against the file path.
	// Empty matches every file.
	Files string

	// Checks is a glob pattern matched against the diagnostic code.
	// Empty matches every check.
	Checks string

	// Lines restricts the suppression to specific line spans.
	// Empty means all lines.
	Lines []LineSpan
}

type xmlSuppressions struct {
	XMLName  xml.Name      `xml:"suppressions"`
	Suppress []xmlSuppress `xml:"suppress"`
}

type xmlSuppress struct {
	Files  string `xml:"files,attr"`
	Checks string `xml:"checks,attr"`
	ID     string `xml:"id,attr"`
	Lines  string `xml:"lines,attr"`
}

// ParseSuppressions parses a suppressions.xml document into records.
//
// The lines attribute accepts comma-separated entries, each either a single
// line number or an inclusive "first-last" range: "12,30-45,80".
func ParseSuppressions(data []byte) ([]Suppression, error) {
	var doc xmlSuppressions
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse suppressions: %w", err)
	}

	out := make([]Suppression, 0, len(doc.Suppress))
	for _, s := range doc.Suppress {
		spans, err := parseLineSpans(s.Lines)
		if err != nil {
			return nil, fmt.Errorf("parse suppressions: %w", err)
		}
		out = append(out, Suppression{
			Files:  s.Files,
			Checks: s.Checks,
			Lines:  spans,
		})
	}
	return out, nil
}

func parseLineSpans(attr string) ([]LineSpan, error) {
	attr = strings.TrimSpace(attr)
	if attr == "" {
		return nil, nil
	}

	var spans []LineSpan
	for _, part := range strings.Split(attr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if first, last, ok := strings.Cut(part, "-"); ok {
			lo, err := strconv.Atoi(strings.TrimSpace(first))
			if err != nil {
				return nil, fmt.Errorf("lines entry %q: bad range start", part)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(last))
			if err != nil {
				return nil, fmt.Errorf("lines entry %q: bad range end", part)
			}
			if hi < lo {
				return nil, fmt.Errorf("lines entry %q: range end before start", part)
			}
			spans = append(spans, LineSpan{First: lo, Last: hi})
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("lines entry %q: not a line number", part)
		}
		spans = append(spans, LineSpan{First: n, Last: n})
	}
	return spans, nil
}
