package heuristics

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

// periodPattern matches date ranges like "03/2020 - 05/2022", "2019 – 2021"
// and open-ended forms like "01/2021 a atual" or "2020 - present".
var periodPattern = regexp.MustCompile(`(?i)(\d{1,2}/\d{4}|\d{4})\s*(?:-|–|a|to)\s*(\d{1,2}/\d{4}|\d{4}|atual|presente|present|o momento|now)`)

// yearPattern picks up lone years for certification entries.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var presentWords = map[string]bool{
	"atual":     true,
	"presente":  true,
	"present":   true,
	"o momento": true,
	"now":       true,
}

// parsePeriod extracts a date range from a line, normalizing "still here"
// markers to the canonical present value.
func parsePeriod(line string) (types.Period, bool) {
	m := periodPattern.FindStringSubmatch(line)
	if m == nil {
		return types.Period{}, false
	}
	end := strings.ToLower(m[2])
	if presentWords[end] {
		end = types.PeriodPresent
	}
	return types.Period{Start: m[1], End: end}, true
}

var entrySeparators = []string{" - ", " – ", " — ", ": "}

// splitOrgLine recognizes the entry-header pattern: a proper-noun-led
// phrase, a separator, then a role or degree. "Acme Corp - Engenheiro"
// yields ("Acme Corp", "Engenheiro"). Bullet lines and date-range lines
// never match.
func splitOrgLine(line string) (org, detail string, ok bool) {
	first, found := firstRune(line)
	if !found || !(unicode.IsUpper(first) || unicode.IsDigit(first)) {
		return "", "", false
	}
	if periodPattern.MatchString(line) {
		return "", "", false
	}
	for _, sep := range entrySeparators {
		idx := strings.Index(line, sep)
		if idx < 0 {
			continue
		}
		org = strings.TrimSpace(line[:idx])
		detail = strings.TrimSpace(line[idx+len(sep):])
		if len(org) < 2 || len(org) > 60 || detail == "" {
			continue
		}
		// A period inside the left side means prose, not an org name.
		if strings.Contains(org, ". ") {
			continue
		}
		return org, detail, true
	}
	return "", "", false
}

var bulletPrefixes = []string{"•", "◦", "▪", "*", "- ", "– "}

func stripBullet(line string) (string, bool) {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(line, prefix)), true
		}
	}
	return line, false
}

// parseExperience walks an experience section line by line. Entry-header
// lines open a new entry; date ranges set its period; bullets become
// achievements; everything else accumulates into the description.
func (p *Parser) parseExperience(section string) []types.Experience {
	var out []types.Experience
	var cur *types.Experience

	flush := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}

	for _, line := range nonEmptyLines(section) {
		if org, role, ok := splitOrgLine(line); ok {
			flush()
			cur = &types.Experience{Company: org, Role: role}
			if period, ok := parsePeriod(line); ok {
				cur.Period = period
			}
			continue
		}
		if cur == nil {
			// Orphan text before the first recognizable header; an
			// employer name alone still opens an entry.
			if first, found := firstRune(line); found && unicode.IsUpper(first) && len(line) <= 60 {
				cur = &types.Experience{Company: line}
			}
			continue
		}
		if period, ok := parsePeriod(line); ok && cur.Period == (types.Period{}) {
			cur.Period = period
			continue
		}
		if achievement, isBullet := stripBullet(line); isBullet {
			cur.Achievements = append(cur.Achievements, achievement)
			continue
		}
		if cur.Description == "" {
			cur.Description = line
		} else {
			cur.Description += " " + line
		}
	}
	flush()
	return out
}

// parseEducation mirrors parseExperience for the education section. A
// detail like "Bacharelado em Ciência da Computação" splits into degree
// and field on the locale's "in" connective.
func (p *Parser) parseEducation(section string) []types.Education {
	var out []types.Education
	var cur *types.Education

	flush := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}

	for _, line := range nonEmptyLines(section) {
		if org, detail, ok := splitOrgLine(line); ok {
			flush()
			cur = &types.Education{Institution: org}
			cur.Degree, cur.Field = splitDegree(detail)
			if period, ok := parsePeriod(line); ok {
				cur.Period = period
			}
			continue
		}
		if cur == nil {
			if first, found := firstRune(line); found && unicode.IsUpper(first) && len(line) <= 60 {
				cur = &types.Education{Institution: line}
			}
			continue
		}
		if period, ok := parsePeriod(line); ok && cur.Period == (types.Period{}) {
			cur.Period = period
			continue
		}
		if cur.Degree == "" {
			cur.Degree, cur.Field = splitDegree(line)
		}
	}
	flush()
	return out
}

var degreeConnectives = []string{" em ", " de ", " in "}

func splitDegree(detail string) (degree, field string) {
	for _, conn := range degreeConnectives {
		if idx := strings.Index(strings.ToLower(detail), conn); idx > 0 {
			return strings.TrimSpace(detail[:idx]), strings.TrimSpace(detail[idx+len(conn):])
		}
	}
	return detail, ""
}
