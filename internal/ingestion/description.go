// Package ingestion prepares raw role descriptions for text mining.
package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	htmlTagPattern        = regexp.MustCompile(`<[A-Za-z/!][^>]*>`)
	excessiveBlankPattern = regexp.MustCompile(`\n\n\n+`)
	spaceRunPattern       = regexp.MustCompile(`[ \t]+`)
)

// CleanDescription normalizes a raw job description for the skill extractor.
// HTML fragments are reduced to their text content; line endings are
// normalized, space runs collapsed, and excessive blank lines removed.
// Empty input yields an empty string.
func CleanDescription(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := raw
	if looksLikeHTML(raw) {
		text = StripHTML(raw)
	}

	// Normalize line endings (CRLF -> LF)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimSpace(spaceRunPattern.ReplaceAllString(line, " ")))
	}

	text = strings.Join(cleaned, "\n")
	text = excessiveBlankPattern.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// StripHTML extracts the text content of an HTML fragment. Block elements are
// separated so that adjacent list items do not run together. On a parse
// failure the input is returned unchanged.
func StripHTML(fragment string) string {
	// Ensure block boundaries survive as whitespace before text extraction.
	spaced := blockBoundaryPattern.ReplaceAllString(fragment, "$0\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(spaced))
	if err != nil {
		return fragment
	}
	return doc.Text()
}

// blockBoundaryPattern matches closing tags of common block-level elements.
var blockBoundaryPattern = regexp.MustCompile(`(?i)</(p|div|li|ul|ol|h[1-6]|br|tr|section)>`)

// looksLikeHTML reports whether the text contains at least one HTML tag.
func looksLikeHTML(s string) bool {
	return htmlTagPattern.MatchString(s)
}
