// Package structuring turns raw resume text into structured data through
// the remote LLM. One request, one response: a failure at any point is
// returned to the caller, which decides whether to fall back to the
// local parser. Retrying here would double cost and latency for a path
// that already has a deterministic fallback.
package structuring

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pedrohmarconato/curriculo-ingest/internal/llm"
	"github.com/pedrohmarconato/curriculo-ingest/internal/prompts"
	"github.com/pedrohmarconato/curriculo-ingest/internal/schemas"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

// Structurer drives the remote structuring call.
type Structurer struct {
	client llm.Client
	tier   llm.ModelTier
}

// New returns a Structurer on the standard tier.
func New(client llm.Client) *Structurer {
	return &Structurer{client: client, tier: llm.TierStandard}
}

// Structure sends the resume text to the remote model and decodes the
// response into validated resume data. Exactly one request is made.
func (s *Structurer) Structure(ctx context.Context, text string, hints types.Hints) (*types.ResumeData, error) {
	prompt := buildStructuringPrompt(text, hints)

	raw, err := s.client.GenerateJSON(ctx, prompt, s.tier)
	if err != nil {
		return nil, &APICallError{Message: "failed to generate structured resume", Cause: err}
	}

	cleaned := llm.CleanJSONBlock(raw)

	var resume types.ResumeData
	if err := json.Unmarshal([]byte(cleaned), &resume); err != nil {
		return nil, &ParseError{Message: "response is not valid JSON", Cause: err}
	}

	normalizeLevels(&resume)
	applyHints(&resume, hints)

	canonical, err := json.Marshal(&resume)
	if err != nil {
		return nil, &ParseError{Message: "failed to re-encode resume", Cause: err}
	}
	if err := schemas.ValidateResumeJSON(string(canonical)); err != nil {
		return nil, &ValidationError{Message: "resume does not match schema", Cause: err}
	}
	if err := resume.Validate(); err != nil {
		return nil, &ValidationError{Message: "resume failed field validation", Cause: err}
	}

	return &resume, nil
}

func buildStructuringPrompt(text string, hints types.Hints) string {
	template := prompts.MustGet("structuring.json", "structure-resume")
	return prompts.Format(template, map[string]string{
		"ResumeText": text,
		"Name":       hints.Name,
		"Email":      hints.Email,
	})
}

// normalizeLevels lowercases and trims ordinal levels so responses like
// "Avançado" pass the enum checks.
func normalizeLevels(resume *types.ResumeData) {
	normalizeSkills := func(skills []types.Skill) {
		for i := range skills {
			skills[i].Name = strings.TrimSpace(skills[i].Name)
			skills[i].Level = types.SkillLevel(strings.ToLower(strings.TrimSpace(string(skills[i].Level))))
		}
	}
	normalizeSkills(resume.Skills.Technical)
	normalizeSkills(resume.Skills.Interpersonal)
	normalizeSkills(resume.Skills.Tools)

	for i := range resume.Languages {
		resume.Languages[i].Name = strings.TrimSpace(resume.Languages[i].Name)
		resume.Languages[i].Level = types.LanguageLevel(strings.ToLower(strings.TrimSpace(string(resume.Languages[i].Level))))
	}
}

// applyHints overrides identity fields with account-provided values.
func applyHints(resume *types.ResumeData, hints types.Hints) {
	if name := strings.TrimSpace(hints.Name); name != "" {
		resume.PersonalInfo.Name = name
	}
	if email := strings.TrimSpace(hints.Email); email != "" {
		resume.PersonalInfo.Contact.Email = email
	}
	if resume.PersonalInfo.Name == "" {
		resume.PersonalInfo.Name = types.PlaceholderName
	}
}
