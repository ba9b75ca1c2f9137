// Package ingestion loads job-posting text from files or URLs and
// normalizes it before requirement extraction.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var (
	multiSpace      = regexp.MustCompile(`\s+`)
	excessiveBlanks = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes text content while preserving structure: line
// endings become LF, trailing whitespace is stripped, runs of spaces
// collapse, and blank-line runs shrink to at most one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = excessiveBlanks.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes a single line, keeping headings and bullet markers
// intact so requirement context windows stay readable.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "#") {
		return trimmed
	}
	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "• ") {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + trimmed
	}

	indent := len(line) - len(trimmed)
	content := multiSpace.ReplaceAllString(strings.TrimSpace(line), " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// FromFile reads a job posting from a text file and cleans it.
func FromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := CleanText(string(content))
	return cleaned, NewMetadata(cleaned, ""), nil
}
