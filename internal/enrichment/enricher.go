// Package enrichment augments structured resume data with generated
// content: a professional objective when the resume lacks one, extended
// experience descriptions and market keywords. Enrichment is strictly
// additive and soft-failing: it never removes or rewrites user data, and
// a failed generation leaves the resume usable, reported as a warning.
package enrichment

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pedrohmarconato/curriculo-ingest/internal/llm"
	"github.com/pedrohmarconato/curriculo-ingest/internal/prompts"
	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

// objectiveSeedLength bounds how much raw text seeds the objective
// prompt. The opening of a resume carries the identity and summary; the
// tail is mostly lists.
const objectiveSeedLength = 1500

// shortDescriptionLength is the threshold under which a description is
// considered too thin and worth elaborating.
const shortDescriptionLength = 150

// maxParallelCalls caps concurrent model calls per enrichment run.
const maxParallelCalls = 4

// Enricher runs the enrichment stage against the lite model tier.
type Enricher struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewEnricher returns an Enricher on the lite tier.
func NewEnricher(client llm.Client) *Enricher {
	return &Enricher{client: client, tier: llm.TierLite}
}

// Enrich augments the resume in place and returns warnings for every
// generation that had to fall back. rawText is the extracted document
// text used to seed the objective prompt.
func (e *Enricher) Enrich(ctx context.Context, resume *types.ResumeData, rawText string) []string {
	var warnings []string

	if resume.Objective == nil || strings.TrimSpace(resume.Objective.Summary) == "" {
		summary, err := e.generateObjective(ctx, resume.PersonalInfo.Name, rawText)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("objective generation failed, using generic objective: %v", err))
			summary = types.PlaceholderObjective
		}
		resume.Objective = &types.Objective{Summary: summary}
	}

	if resume.MarketExperience == nil && len(resume.Experience) > 0 {
		details, detailWarnings := e.buildMarketDetails(ctx, resume.Experience)
		resume.MarketExperience = &types.MarketExperience{Details: details}
		warnings = append(warnings, detailWarnings...)
	}

	return warnings
}

func (e *Enricher) generateObjective(ctx context.Context, name, rawText string) (string, error) {
	template := prompts.MustGet("enrichment.json", "generate-objective")
	prompt := prompts.Format(template, map[string]string{
		"Name":       name,
		"ResumeText": prefix(rawText, objectiveSeedLength),
	})

	summary, err := e.client.GenerateContent(ctx, prompt, e.tier)
	if err != nil {
		return "", err
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("empty objective from model")
	}
	return summary, nil
}

// buildMarketDetails projects each experience entry into a market detail,
// elaborating thin descriptions and extracting keywords. Entries are
// processed concurrently; a failure in one entry never affects another.
func (e *Enricher) buildMarketDetails(ctx context.Context, experience []types.Experience) ([]types.MarketDetail, []string) {
	details := make([]types.MarketDetail, len(experience))

	var mu sync.Mutex
	var warnings []string
	warn := func(format string, args ...any) {
		mu.Lock()
		warnings = append(warnings, fmt.Sprintf(format, args...))
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelCalls)

	for i := range experience {
		g.Go(func() error {
			exp := experience[i]
			detail := types.MarketDetail{
				Company:             exp.Company,
				ExtendedDescription: exp.Description,
				Keywords:            baselineKeywords(exp),
			}

			if len([]rune(exp.Description)) < shortDescriptionLength {
				extended, err := e.elaborateDescription(ctx, exp)
				if err != nil {
					warn("description elaboration failed for %s: %v", exp.Company, err)
				} else {
					detail.ExtendedDescription = extended
				}
			}

			keywords, err := e.extractKeywords(ctx, exp)
			if err != nil {
				warn("keyword extraction failed for %s: %v", exp.Company, err)
			} else if len(keywords) > 0 {
				detail.Keywords = keywords
			}

			details[i] = detail
			return nil
		})
	}
	// Workers always return nil; failures surface as warnings.
	_ = g.Wait()

	return details, warnings
}

func (e *Enricher) elaborateDescription(ctx context.Context, exp types.Experience) (string, error) {
	template := prompts.MustGet("enrichment.json", "elaborate-experience")
	prompt := prompts.Format(template, map[string]string{
		"Company":     exp.Company,
		"Role":        exp.Role,
		"Description": exp.Description,
	})

	extended, err := e.client.GenerateContent(ctx, prompt, e.tier)
	if err != nil {
		return "", err
	}
	extended = strings.TrimSpace(extended)
	if extended == "" {
		return "", fmt.Errorf("empty elaboration from model")
	}
	return extended, nil
}

func (e *Enricher) extractKeywords(ctx context.Context, exp types.Experience) ([]string, error) {
	template := prompts.MustGet("enrichment.json", "extract-keywords")
	prompt := prompts.Format(template, map[string]string{
		"Company":     exp.Company,
		"Role":        exp.Role,
		"Description": exp.Description,
	})

	raw, err := e.client.GenerateJSON(ctx, prompt, e.tier)
	if err != nil {
		return nil, err
	}

	var keywords []string
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &keywords); err != nil {
		return nil, fmt.Errorf("keyword response is not a JSON array: %w", err)
	}
	return keywords, nil
}

// Fallback fills the enrichment fields without calling the completion
// service: a generic objective and a plain projection of each experience
// entry with role+company keywords. Used when the service is
// unavailable, so the output contract holds even fully offline.
func Fallback(resume *types.ResumeData) {
	if resume.Objective == nil || strings.TrimSpace(resume.Objective.Summary) == "" {
		resume.Objective = &types.Objective{Summary: types.PlaceholderObjective}
	}

	if resume.MarketExperience == nil && len(resume.Experience) > 0 {
		details := make([]types.MarketDetail, len(resume.Experience))
		for i, exp := range resume.Experience {
			details[i] = types.MarketDetail{
				Company:             exp.Company,
				ExtendedDescription: exp.Description,
				Keywords:            baselineKeywords(exp),
			}
		}
		resume.MarketExperience = &types.MarketExperience{Details: details}
	}
}

// baselineKeywords derives keyword tags from the role and company
// tokens. Every market detail carries these even when the completion
// service cannot refine them.
func baselineKeywords(exp types.Experience) []string {
	seen := make(map[string]bool)
	var out []string
	for _, tok := range strings.Fields(exp.Role + " " + exp.Company) {
		tok = strings.ToLower(strings.Trim(tok, ".,;:()"))
		if len([]rune(tok)) < 3 || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

// prefix cuts a string to at most n runes without splitting a character.
func prefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
