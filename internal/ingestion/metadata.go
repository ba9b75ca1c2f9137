package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata describes an ingested job posting.
type Metadata struct {
	URL       string `json:"url,omitempty"`
	Timestamp string `json:"timestamp"` // RFC3339
	Hash      string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Length    int    `json:"length"`
}

// NewMetadata creates metadata for cleaned posting text.
func NewMetadata(content, url string) *Metadata {
	hash := sha256.Sum256([]byte(content))
	return &Metadata{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      hex.EncodeToString(hash[:]),
		Length:    len(content),
	}
}

// ToJSON marshals the metadata as pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}
