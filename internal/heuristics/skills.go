package heuristics

import (
	"strings"

	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

const (
	minTokenLength = 3
	maxTokenLength = 30
)

// tokenize splits a list-like section on commas, semicolons, bullets and
// newlines, keeping tokens within plausible length bounds.
func tokenize(section string) []string {
	cleaned := strings.NewReplacer(";", ",", "\n", ",", "•", ",", "◦", ",", "▪", ",").Replace(section)
	var out []string
	for _, token := range strings.Split(cleaned, ",") {
		token = strings.TrimSpace(token)
		token = strings.Trim(token, "-–: ")
		if len(token) < minTokenLength || len(token) > maxTokenLength {
			continue
		}
		out = append(out, token)
	}
	return out
}

// splitInlineLevel recognizes "Inglês - Avançado" and "Excel (avançado)"
// forms, returning the bare name and the level word when present.
func splitInlineLevel(token string) (name, level string) {
	if open := strings.Index(token, "("); open >= 0 {
		if end := strings.Index(token[open:], ")"); end > 0 {
			return strings.TrimSpace(token[:open]), strings.ToLower(strings.TrimSpace(token[open+1 : open+end]))
		}
	}
	for _, sep := range entrySeparators {
		if idx := strings.LastIndex(token, sep); idx > 0 {
			candidate := strings.ToLower(strings.TrimSpace(token[idx+len(sep):]))
			if _, ok := skillLevelWords[candidate]; ok {
				return strings.TrimSpace(token[:idx]), candidate
			}
			if _, ok := languageLevelWords[candidate]; ok {
				return strings.TrimSpace(token[:idx]), candidate
			}
		}
	}
	return token, ""
}

// parseSkills routes each token into interpersonal, tool or technical
// buckets by keyword lookup, defaulting the level when no inline marker
// is present.
func (p *Parser) parseSkills(section string) types.Skills {
	var skills types.Skills
	for _, token := range tokenize(section) {
		name, levelWord := splitInlineLevel(token)
		if p.isLanguageName(name) {
			// Spoken languages sometimes live inside a skills list;
			// they belong to the languages group instead.
			continue
		}
		level := defaultSkillLevel
		if mapped, ok := skillLevelWords[levelWord]; ok {
			level = mapped
		}
		skill := types.Skill{Name: name, Level: level}
		switch {
		case containsAnyFold(name, p.tables.InterpersonalSkills):
			skills.Interpersonal = append(skills.Interpersonal, skill)
		case containsAnyFold(name, p.tables.ToolSkills):
			skills.Tools = append(skills.Tools, skill)
		default:
			skills.Technical = append(skills.Technical, skill)
		}
	}
	return skills
}

// parseLanguages reads the languages section; when the section is absent
// it falls back to scanning the whole text for known language names.
func (p *Parser) parseLanguages(section, fullText string) []types.Language {
	var out []types.Language
	seen := make(map[string]bool)

	add := func(name string, level types.LanguageLevel) {
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, types.Language{Name: name, Level: level})
	}

	for _, token := range tokenize(section) {
		name, levelWord := splitInlineLevel(token)
		if !p.isLanguageName(name) {
			continue
		}
		level := defaultLanguageLevel
		if mapped, ok := languageLevelWords[levelWord]; ok {
			level = mapped
		}
		add(name, level)
	}

	if len(out) == 0 {
		lower := strings.ToLower(fullText)
		for _, name := range p.tables.LanguageNames {
			if strings.Contains(lower, strings.ToLower(name)) {
				add(title(name), defaultLanguageLevel)
			}
		}
	}
	return out
}

func (p *Parser) isLanguageName(name string) bool {
	for _, known := range p.tables.LanguageNames {
		if strings.EqualFold(known, name) {
			return true
		}
	}
	return false
}

// parseCertifications treats each token line of the section as one
// certification, splitting an inline issuer when an entry separator is
// present ("AWS Certified - Amazon").
func (p *Parser) parseCertifications(section string) []types.Certification {
	var out []types.Certification
	for _, line := range nonEmptyLines(section) {
		line, _ = stripBullet(line)
		if len(line) < minTokenLength {
			continue
		}
		cert := types.Certification{Name: line}
		for _, sep := range entrySeparators {
			if idx := strings.Index(line, sep); idx > 0 {
				cert.Name = strings.TrimSpace(line[:idx])
				cert.Issuer = strings.TrimSpace(line[idx+len(sep):])
				break
			}
		}
		if year := yearPattern.FindString(line); year != "" {
			cert.Year = year
			cert.Name = strings.TrimSpace(strings.TrimSuffix(cert.Name, year))
			cert.Issuer = strings.TrimSpace(strings.TrimSuffix(cert.Issuer, year))
			cert.Name = strings.Trim(cert.Name, "-–,( ")
			cert.Issuer = strings.Trim(cert.Issuer, "-–,( ")
		}
		out = append(out, cert)
	}
	return out
}

func containsAnyFold(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// title uppercases the first rune only; good enough for language names.
func title(s string) string {
	for i, r := range s {
		return strings.ToUpper(string(r)) + s[i+len(string(r)):]
	}
	return s
}
