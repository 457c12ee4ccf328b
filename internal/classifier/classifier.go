// Package classifier scores whether extracted text plausibly is a resume.
// The verdict is advisory: the pipeline uses it to decide how much to
// trust downstream parsing, never to reject the user's input outright.
package classifier

import (
	"regexp"
	"strings"
)

// minTextLength is the minimum number of characters needed before the
// text carries enough signal to classify at all.
const minTextLength = 200

// minKeywordMatches is the number of distinct resume keywords that, on
// their own, mark the text as plausible.
const minKeywordMatches = 3

// minStructuralMatches is the number of structural patterns (email,
// phone, date range) that mark the text as plausible independently of
// keywords. Documents with unusual section headers still tend to carry
// contact and date structure.
const minStructuralMatches = 2

// Keywords are resume-indicative terms scanned case-insensitively, in the
// product locale and English. The list is data, not logic: deployments
// may extend it without touching the classifier.
var Keywords = []string{
	"currículo",
	"curriculum",
	"experiência",
	"experiencia",
	"profissional",
	"formação",
	"educação",
	"escolaridade",
	"habilidades",
	"competências",
	"qualificações",
	"certificações",
	"idiomas",
	"objetivo",
	"experience",
	"education",
	"skills",
	"languages",
	"objective",
	"summary",
	"employment",
	"professional",
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\(?\d{2,3}\)?[\s.\-]?\d{4,5}[\s.\-]?\d{4}`)
	// Date ranges like "03/2020 - 05/2022", "2019 – 2021", "01/2021 a atual",
	// "2020 - present".
	dateRangePattern = regexp.MustCompile(`(?i)(\d{1,2}/\d{4}|\d{4})\s*(?:-|–|a|to)\s*(\d{1,2}/\d{4}|\d{4}|atual|presente|present|o momento)`)
)

// Verdict is the classification result: the boolean the pipeline acts on
// plus the raw signal counts behind it.
type Verdict struct {
	Plausible      bool
	KeywordHits    int
	StructuralHits int
}

// Classify scores resume-likeness of extracted text. It is pure and
// deterministic: no I/O, no external calls, same input same verdict.
func Classify(text string) Verdict {
	if len(text) < minTextLength {
		return Verdict{}
	}

	lower := strings.ToLower(text)

	keywordHits := 0
	for _, keyword := range Keywords {
		if strings.Contains(lower, keyword) {
			keywordHits++
			if keywordHits >= minKeywordMatches {
				break
			}
		}
	}

	structuralHits := 0
	if emailPattern.MatchString(text) {
		structuralHits++
	}
	if phonePattern.MatchString(text) {
		structuralHits++
	}
	if dateRangePattern.MatchString(text) {
		structuralHits++
	}

	return Verdict{
		Plausible:      keywordHits >= minKeywordMatches || structuralHits >= minStructuralMatches,
		KeywordHits:    keywordHits,
		StructuralHits: structuralHits,
	}
}
