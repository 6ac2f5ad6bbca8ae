package repo

import (
	"encoding/json"

	"github.com/pkordes/traivel/internal/domain"
)

// encodeLinks serializes reference links for the reference_links TEXT column.
// A nil slice is stored as "[]".
func encodeLinks(links []domain.ReferenceLink) string {
	if links == nil {
		return "[]"
	}
	b, err := json.Marshal(links)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeLinks parses the stored reference_links text. Empty or malformed
// text yields an empty, non-nil slice rather than an error.
func decodeLinks(raw string) []domain.ReferenceLink {
	links := []domain.ReferenceLink{}
	if raw == "" {
		return links
	}
	if err := json.Unmarshal([]byte(raw), &links); err != nil || links == nil {
		return []domain.ReferenceLink{}
	}
	return links
}
