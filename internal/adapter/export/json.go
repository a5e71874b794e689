package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/heartmarshall/bulu-dictionary/internal/domain"
)

// WriteJSON writes records as one indented JSON array. Non-ASCII text and
// HTML characters are written as-is.
func WriteJSON(w io.Writer, records []domain.TranslationRecord) error {
	if records == nil {
		records = []domain.TranslationRecord{}
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

// ReadJSON decodes a JSON array of records as written by WriteJSON.
func ReadJSON(r io.Reader) ([]domain.TranslationRecord, error) {
	var records []domain.TranslationRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}
