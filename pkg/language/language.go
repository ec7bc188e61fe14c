// Package language detects the language of caption text.
//
// Detection is informational: the result is recorded on the annotation and
// logged as a distribution, but classification never branches on it.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector wraps a lingua detector restricted to a handful of languages
// common on the platform. Restricting the set keeps model loading cheap.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a Detector. Loading the language models is the
// expensive part, so construct once per run and reuse.
func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.Portuguese,
		lingua.French,
		lingua.German,
		lingua.Japanese,
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the detected language name for text, or "" when the text
// is empty or detection is inconclusive.
func (d *Detector) Detect(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return lang.String()
}
