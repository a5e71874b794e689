package domain

// Language identifies one of the three dictionary languages.
type Language string

const (
	LanguageFrench  Language = "french"
	LanguageEnglish Language = "english"
	LanguageBulu    Language = "bulu"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageFrench, LanguageEnglish, LanguageBulu:
		return true
	}
	return false
}

// IsSource reports whether l may appear as a record's original_language.
func (l Language) IsSource() bool {
	return l == LanguageFrench || l == LanguageEnglish
}

// SourceLanguages lists source languages in extraction order.
var SourceLanguages = []Language{LanguageFrench, LanguageEnglish}
