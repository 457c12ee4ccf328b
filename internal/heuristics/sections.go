package heuristics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isolateSection returns the body of a section: the text between the
// earliest line-anchored occurrence of one of the section's header
// keywords and the nearest following header of any other section. An
// absent header means an absent section, not an error.
func (p *Parser) isolateSection(text string, section Section) string {
	_, body, ok := findHeader(text, p.tables.SectionHeaders[section], 0)
	if !ok {
		return ""
	}

	end := len(text)
	for _, hk := range p.universe {
		if hk.section == section {
			continue
		}
		if start, _, ok := findHeader(text, []string{hk.keyword}, body); ok && start < end {
			end = start
		}
	}

	return strings.TrimSpace(text[body:end])
}

// findHeader scans text from the given byte offset for the earliest
// line-anchored occurrence of any keyword, returning the byte offsets of
// the match and of the first byte after it. On one line the longest
// matching keyword wins, so "experiência profissional" is consumed whole
// rather than leaving "profissional" inside the body. Mid-line
// occurrences never match; ordinary prose ("tenho experiência com...")
// must not truncate sections.
func findHeader(text string, keywords []string, from int) (start, bodyStart int, ok bool) {
	offset := from
	for _, line := range strings.Split(text[from:], "\n") {
		trimmed := strings.TrimLeft(line, " \t")
		indent := len(line) - len(trimmed)

		best := -1
		for _, kw := range keywords {
			if n, match := foldHasPrefix(trimmed, kw); match && n > best {
				best = n
			}
		}
		if best >= 0 {
			return offset + indent, offset + indent + best, true
		}
		offset += len(line) + 1
	}
	return 0, 0, false
}

// foldHasPrefix reports whether s starts with kw under per-rune case
// folding and returns the byte length of the matched prefix in s. The
// offset is measured in s itself, so it stays valid for slicing even
// where lowercasing would change a rune's encoded length.
func foldHasPrefix(s, kw string) (int, bool) {
	var n int
	for _, kr := range kw {
		r, size := utf8.DecodeRuneInString(s[n:])
		if size == 0 {
			return 0, false
		}
		if unicode.ToLower(r) != unicode.ToLower(kr) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		// Leading header punctuation like ":" left over from isolation.
		line = strings.TrimLeft(line, ":")
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
