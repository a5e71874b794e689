package domain

import "time"

// TranslationRecord is one word-pair translation with provenance metadata.
// Field names and JSON keys match the columns of the dictionary table.
type TranslationRecord struct {
	OriginalWord        string    `json:"original_word"`
	OriginalLanguage    Language  `json:"original_language"`
	Translation         string    `json:"translation"`
	TranslationLanguage Language  `json:"translation_language"`
	ExampleSentence     *string   `json:"example_sentence"`
	Notes               string    `json:"notes"`
	ContributorName     string    `json:"contributor_name"`
	ContributorEmail    *string   `json:"contributor_email"`
	IsVerified          bool      `json:"is_verified"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// RecordColumns is the dictionary table column list in record field order.
var RecordColumns = []string{
	"original_word",
	"original_language",
	"translation",
	"translation_language",
	"example_sentence",
	"notes",
	"contributor_name",
	"contributor_email",
	"is_verified",
	"created_at",
	"updated_at",
}

// Provenance holds the metadata stamped onto every extracted record.
type Provenance struct {
	Notes            string
	ContributorName  string
	ContributorEmail *string
	Verified         bool
	Timestamp        time.Time
}

// NewTranslationRecord builds a source→bulu record from raw cell values.
// The words are normalized; ok is false when either is empty after normalization.
func NewTranslationRecord(word string, lang Language, bulu string, p Provenance) (TranslationRecord, bool) {
	word = NormalizeWord(word)
	bulu = NormalizeWord(bulu)
	if word == "" || bulu == "" {
		return TranslationRecord{}, false
	}
	return TranslationRecord{
		OriginalWord:        word,
		OriginalLanguage:    lang,
		Translation:         bulu,
		TranslationLanguage: LanguageBulu,
		Notes:               p.Notes,
		ContributorName:     p.ContributorName,
		ContributorEmail:    p.ContributorEmail,
		IsVerified:          p.Verified,
		CreatedAt:           p.Timestamp,
		UpdatedAt:           p.Timestamp,
	}, true
}

// Validate checks the record invariants. It is applied to records read back
// from JSON before they are imported.
func (r TranslationRecord) Validate() error {
	var errs []FieldError
	if r.OriginalWord == "" || r.OriginalWord != NormalizeWord(r.OriginalWord) {
		errs = append(errs, FieldError{Field: "original_word", Message: "must be non-empty, trimmed and lower-case"})
	}
	if !r.OriginalLanguage.IsSource() {
		errs = append(errs, FieldError{Field: "original_language", Message: "must be french or english"})
	}
	if r.Translation == "" || r.Translation != NormalizeWord(r.Translation) {
		errs = append(errs, FieldError{Field: "translation", Message: "must be non-empty, trimmed and lower-case"})
	}
	if r.TranslationLanguage != LanguageBulu {
		errs = append(errs, FieldError{Field: "translation_language", Message: "must be bulu"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
