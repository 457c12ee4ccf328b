package heuristics

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	// Tolerant of country code, parentheses, dots, hyphens and spaces:
	// "(11) 98765-4321", "+55 11 98765 4321", "11.3456.7890".
	phonePattern = regexp.MustCompile(`(?:\+?55[\s.\-]?)?\(?\d{2}\)?[\s.\-]?\d{4,5}[\s.\-]?\d{4}`)
)

// personalInfo assembles identity and contact data. Caller hints win over
// anything scanned from the text; they come from the account, which is
// more trustworthy than OCR-adjacent extraction.
func (p *Parser) personalInfo(text string, hints types.Hints) types.PersonalInfo {
	info := types.PersonalInfo{
		Name: strings.TrimSpace(hints.Name),
		Contact: types.Contact{
			Email: strings.TrimSpace(hints.Email),
		},
	}

	if info.Name == "" {
		info.Name = p.findName(text)
	}
	if info.Contact.Email == "" {
		info.Contact.Email = emailPattern.FindString(text)
	}
	info.Contact.Phone = strings.TrimSpace(phonePattern.FindString(text))
	info.Contact.Location = p.findLocation(text)

	if info.Name == "" {
		info.Name = types.PlaceholderName
	}
	return info
}

// findName picks the first line that plausibly is a person's name: two to
// six words, letters only, near the top of the document, and not a
// section header.
func (p *Parser) findName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) > 60 {
			continue
		}
		if !looksLikeName(line) {
			continue
		}
		if p.isHeaderLine(line) {
			continue
		}
		return line
	}
	return ""
}

func looksLikeName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 6 {
		return false
	}
	for _, r := range line {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && r != '.' {
			return false
		}
	}
	first, _ := firstRune(line)
	return unicode.IsUpper(first)
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// isHeaderLine reports whether the line matches any known section header.
func (p *Parser) isHeaderLine(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	lower = strings.TrimRight(lower, ":")
	for _, hk := range p.universe {
		if strings.ToLower(hk.keyword) == lower {
			return true
		}
	}
	return false
}

// findLocation scans the gazetteer and returns the first city mentioned.
// The gazetteer is deliberately small; an empty location is acceptable.
func (p *Parser) findLocation(text string) string {
	lower := strings.ToLower(text)
	for _, city := range p.tables.Cities {
		if strings.Contains(lower, strings.ToLower(city)) {
			return city
		}
	}
	return ""
}
