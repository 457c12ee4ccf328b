package heuristics

import (
	"strings"

	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

// Parser is the deterministic local parser. It holds only immutable
// keyword tables, so a single instance is safe for concurrent use.
type Parser struct {
	tables   *Tables
	universe []headerKeyword
}

// NewParser returns a parser backed by the built-in keyword tables.
func NewParser() *Parser {
	return NewParserWithTables(DefaultTables())
}

// NewParserWithTables returns a parser backed by custom keyword tables.
func NewParserWithTables(tables *Tables) *Parser {
	return &Parser{
		tables:   tables,
		universe: tables.headerUniverse(),
	}
}

// Parse converts raw resume text into structured data. It never fails
// and never returns nil: groups whose sections are missing or empty are
// filled with explicit placeholder entries, so the result always passes
// validation. Certifications are the exception and stay empty when
// absent.
func (p *Parser) Parse(text string, hints types.Hints) *types.ResumeData {
	resume := &types.ResumeData{
		PersonalInfo: p.personalInfo(text, hints),
	}

	resume.Experience = p.parseExperience(p.isolateSection(text, SectionExperience))
	resume.Education = p.parseEducation(p.isolateSection(text, SectionEducation))
	resume.Skills = p.parseSkills(p.isolateSection(text, SectionSkills))
	resume.Languages = p.parseLanguages(p.isolateSection(text, SectionLanguages), text)
	resume.Certifications = p.parseCertifications(p.isolateSection(text, SectionCertifications))

	if objective := p.parseObjective(p.isolateSection(text, SectionObjective)); objective != "" {
		resume.Objective = &types.Objective{Summary: objective}
	}

	p.applyDefaults(resume)
	return resume
}

// parseObjective takes the first paragraph of the objective section.
func (p *Parser) parseObjective(section string) string {
	lines := nonEmptyLines(section)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, " ")
}

// applyDefaults fills every empty mandatory group with placeholder
// entries. Downstream consumers rely on placeholders being explicit,
// recognizable values rather than empty strings.
func (p *Parser) applyDefaults(resume *types.ResumeData) {
	for i := range resume.Experience {
		applyExperienceDefaults(&resume.Experience[i])
	}
	if len(resume.Experience) == 0 {
		resume.Experience = []types.Experience{{
			Company:     types.PlaceholderCompany,
			Role:        types.PlaceholderRole,
			Period:      types.Period{Start: "2020", End: types.PeriodPresent},
			Description: types.PlaceholderDescription,
		}}
	}

	for i := range resume.Education {
		applyEducationDefaults(&resume.Education[i])
	}
	if len(resume.Education) == 0 {
		resume.Education = []types.Education{{
			Institution: types.PlaceholderInstitution,
			Degree:      types.PlaceholderDegree,
			Field:       types.PlaceholderField,
		}}
	}

	if len(resume.Skills.Technical) == 0 {
		resume.Skills.Technical = []types.Skill{{Name: "Informática", Level: defaultSkillLevel}}
	}
	if len(resume.Skills.Interpersonal) == 0 {
		resume.Skills.Interpersonal = []types.Skill{{Name: "Comunicação", Level: defaultSkillLevel}}
	}
	if len(resume.Skills.Tools) == 0 {
		resume.Skills.Tools = []types.Skill{{Name: "Pacote Office", Level: defaultSkillLevel}}
	}

	if len(resume.Languages) == 0 {
		resume.Languages = []types.Language{{Name: "Português", Level: types.LanguageNativo}}
	}
}

func applyExperienceDefaults(exp *types.Experience) {
	if exp.Company == "" {
		exp.Company = types.PlaceholderCompany
	}
	if exp.Role == "" {
		exp.Role = types.PlaceholderRole
	}
	if exp.Period.Start == "" {
		exp.Period.Start = "2020"
	}
	if exp.Period.End == "" {
		exp.Period.End = types.PeriodPresent
	}
	if exp.Description == "" {
		exp.Description = types.PlaceholderDescription
	}
}

func applyEducationDefaults(edu *types.Education) {
	if edu.Institution == "" {
		edu.Institution = types.PlaceholderInstitution
	}
	if edu.Degree == "" {
		edu.Degree = types.PlaceholderDegree
	}
	if edu.Field == "" {
		edu.Field = types.PlaceholderField
	}
}
