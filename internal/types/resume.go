// Package types provides type definitions for the structured resume data
// produced by the ingestion pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillLevel is the ordinal proficiency scale for skills and tools.
type SkillLevel string

// Skill proficiency levels, from lowest to highest.
const (
	SkillBasico        SkillLevel = "básico"
	SkillIntermediario SkillLevel = "intermediário"
	SkillAvancado      SkillLevel = "avançado"
	SkillEspecialista  SkillLevel = "especialista"
)

// LanguageLevel is the ordinal proficiency scale for spoken languages.
// It is distinct from SkillLevel: languages top out at fluency/native.
type LanguageLevel string

// Language proficiency levels, from lowest to highest.
const (
	LanguageBasico        LanguageLevel = "básico"
	LanguageIntermediario LanguageLevel = "intermediário"
	LanguageAvancado      LanguageLevel = "avançado"
	LanguageFluente       LanguageLevel = "fluente"
	LanguageNativo        LanguageLevel = "nativo"
)

// PeriodPresent marks an open-ended period (current position).
const PeriodPresent = "atual"

// Contact holds optional contact details. Email is validated for format
// when present; phone and location are free text.
type Contact struct {
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// PersonalInfo identifies the resume owner. Name is always non-empty:
// the pipeline substitutes a placeholder when no name is detected.
type PersonalInfo struct {
	Name    string  `json:"name" validate:"required"`
	Contact Contact `json:"contact"`
}

// Period is a date range. End is either a date string or PeriodPresent.
type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Experience is one professional experience entry.
type Experience struct {
	Company      string   `json:"company" validate:"required"`
	Role         string   `json:"role"`
	Period       Period   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

// Education is one education entry.
type Education struct {
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Period      Period `json:"period"`
}

// Skill is a named skill with an ordinal proficiency level.
type Skill struct {
	Name  string     `json:"name" validate:"required"`
	Level SkillLevel `json:"level" validate:"required,oneof=básico intermediário avançado especialista"`
}

// Skills groups skills into three independent categories.
type Skills struct {
	Technical     []Skill `json:"technical" validate:"min=1,dive"`
	Interpersonal []Skill `json:"interpersonal" validate:"min=1,dive"`
	Tools         []Skill `json:"tools" validate:"min=1,dive"`
}

// Language is a spoken language with its proficiency level.
type Language struct {
	Name  string        `json:"name" validate:"required"`
	Level LanguageLevel `json:"level" validate:"required,oneof=básico intermediário avançado fluente nativo"`
}

// Certification is an optional certification entry. Unlike the other
// groups, certifications may be empty with no placeholder required.
type Certification struct {
	Name   string `json:"name" validate:"required"`
	Issuer string `json:"issuer,omitempty"`
	Year   string `json:"year,omitempty"`
}

// Objective is a short professional summary, populated by enrichment
// when absent.
type Objective struct {
	Summary string `json:"summary"`
}

// MarketDetail expands one experience entry with an elaborated
// description and keyword tags for market-fit presentation.
type MarketDetail struct {
	Company             string   `json:"company"`
	ExtendedDescription string   `json:"extendedDescription"`
	Keywords            []string `json:"keywords,omitempty"`
}

// MarketExperience is derived 1:1 from Experience by the enrichment step.
type MarketExperience struct {
	Details []MarketDetail `json:"details"`
}

// ResumeData is the canonical structured resume record produced once per
// ingestion run. After the pipeline returns it, ownership passes to the
// editing layer; the pipeline never mutates a returned value.
type ResumeData struct {
	PersonalInfo     PersonalInfo      `json:"personalInfo" validate:"required"`
	Experience       []Experience      `json:"experience" validate:"min=1,dive"`
	Education        []Education       `json:"education" validate:"min=1,dive"`
	Skills           Skills            `json:"skills" validate:"required"`
	Languages        []Language        `json:"languages" validate:"min=1,dive"`
	Certifications   []Certification   `json:"certifications"`
	Objective        *Objective        `json:"objective,omitempty"`
	MarketExperience *MarketExperience `json:"marketExperience,omitempty"`
}
