// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/pedrohmarconato/curriculo-ingest/internal/classifier"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintVerdict outputs the plausibility classification result.
func (p *Printer) PrintVerdict(verdict classifier.Verdict) {
	var sb strings.Builder
	if verdict.Plausible {
		sb.WriteString("Plausible:  yes\n")
	} else {
		sb.WriteString("Plausible:  no\n")
	}
	sb.WriteString(fmt.Sprintf("Keywords:   %d hits\n", verdict.KeywordHits))
	sb.WriteString(fmt.Sprintf("Structure:  %d hits", verdict.StructuralHits))

	p.printBox("PLAUSIBILITY VERDICT", sb.String())
}

// PrintResume outputs a human-readable summary of the structured resume.
func (p *Printer) PrintResume(resume *types.ResumeData) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.PersonalInfo.Name))
	if resume.PersonalInfo.Contact.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.PersonalInfo.Contact.Email))
	}
	if resume.PersonalInfo.Contact.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", resume.PersonalInfo.Contact.Location))
	}
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := resume.Experience[i]
			entry := exp.Company
			if exp.Role != "" {
				entry = fmt.Sprintf("%s — %s", exp.Company, exp.Role)
			}
			if len(entry) > 45 {
				entry = entry[:42] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", entry))
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	skillCount := len(resume.Skills.Technical) + len(resume.Skills.Interpersonal) + len(resume.Skills.Tools)
	sb.WriteString(fmt.Sprintf("Education:      %d entries\n", len(resume.Education)))
	sb.WriteString(fmt.Sprintf("Skills:         %d entries\n", skillCount))
	sb.WriteString(fmt.Sprintf("Languages:      %d entries\n", len(resume.Languages)))
	sb.WriteString(fmt.Sprintf("Certifications: %d entries", len(resume.Certifications)))

	p.printBox("STRUCTURED RESUME", sb.String())
}

// PrintProvenance outputs which parsing path produced the resume and any
// warnings collected along the way.
func (p *Printer) PrintProvenance(provenance types.Provenance, warnings []string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Source:   %s\n", provenance.Source))
	sb.WriteString(fmt.Sprintf("Warnings: %d", len(warnings)))

	count := min(len(warnings), maxItemsToShow)
	for i := 0; i < count; i++ {
		warning := warnings[i]
		if len(warning) > 50 {
			warning = warning[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n  ⚠ %s", warning))
	}
	if len(warnings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n  ... and %d more", len(warnings)-maxItemsToShow))
	}

	p.printBox("PROVENANCE", sb.String())
}

// PrintMarketExperience outputs the enrichment projection summary.
func (p *Printer) PrintMarketExperience(market *types.MarketExperience) {
	if market == nil || len(market.Details) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Enriched %d entries:\n\n", len(market.Details)))

	count := min(len(market.Details), maxItemsToShow)
	for i := 0; i < count; i++ {
		detail := market.Details[i]
		sb.WriteString(fmt.Sprintf("• %s\n", detail.Company))
		if len(detail.Keywords) > 0 {
			keywords := strings.Join(detail.Keywords, ", ")
			if len(keywords) > 40 {
				keywords = keywords[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  [%s]\n", keywords))
		}
	}
	if len(market.Details) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(market.Details)-maxItemsToShow))
	}

	p.printBox("MARKET EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}
