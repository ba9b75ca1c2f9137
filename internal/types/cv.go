package types

import "strings"

// CVData represents a parsed resume.
type CVData struct {
	RawText  string            `json:"raw_text"`
	Sections map[string]string `json:"sections"`
	Metadata CVMetadata        `json:"metadata"`
	// WorkEntries is the number of work-experience entries detected during
	// section segmentation. Zero when no experience section was found.
	WorkEntries int `json:"work_entries,omitempty"`
}

// CVMetadata describes the source document of a parsed resume.
type CVMetadata struct {
	Format string `json:"format"`
	Length int    `json:"length"`
	Lines  int    `json:"lines"`
}

// IsEmpty reports whether the resume has no usable content.
func (c *CVData) IsEmpty() bool {
	return c == nil || strings.TrimSpace(c.RawText) == ""
}
