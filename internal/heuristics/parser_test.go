package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohmarconato/curriculo-ingest/internal/types"
)

const sampleResume = `João da Silva
joao.silva@example.com
(11) 98765-4321
São Paulo

Objetivo
Atuar como engenheiro de software em projetos desafiadores.

Experiência Profissional
Acme Corp - Engenheiro de Software
03/2020 - atual
Desenvolvimento de sistemas internos.
- Reduziu custos de infraestrutura
Beta Ltda - Analista
2018 - 2020

Formação Acadêmica
USP - Bacharelado em Ciência da Computação
2014 - 2018

Habilidades
Python, Excel (avançado), Comunicação, Liderança

Idiomas
Inglês - Avançado, Espanhol (básico)

Certificações
AWS Certified Solutions Architect - Amazon 2021
`

func TestParse_FullResume(t *testing.T) {
	resume := NewParser().Parse(sampleResume, types.Hints{})

	assert.Equal(t, "João da Silva", resume.PersonalInfo.Name)
	assert.Equal(t, "joao.silva@example.com", resume.PersonalInfo.Contact.Email)
	assert.Equal(t, "(11) 98765-4321", resume.PersonalInfo.Contact.Phone)
	assert.Equal(t, "São Paulo", resume.PersonalInfo.Contact.Location)

	require.NotNil(t, resume.Objective)
	assert.Equal(t, "Atuar como engenheiro de software em projetos desafiadores.", resume.Objective.Summary)

	require.Len(t, resume.Experience, 2)
	first := resume.Experience[0]
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Engenheiro de Software", first.Role)
	assert.Equal(t, types.Period{Start: "03/2020", End: types.PeriodPresent}, first.Period)
	assert.Equal(t, "Desenvolvimento de sistemas internos.", first.Description)
	assert.Equal(t, []string{"Reduziu custos de infraestrutura"}, first.Achievements)

	second := resume.Experience[1]
	assert.Equal(t, "Beta Ltda", second.Company)
	assert.Equal(t, "Analista", second.Role)
	assert.Equal(t, types.Period{Start: "2018", End: "2020"}, second.Period)

	require.Len(t, resume.Education, 1)
	edu := resume.Education[0]
	assert.Equal(t, "USP", edu.Institution)
	assert.Equal(t, "Bacharelado", edu.Degree)
	assert.Equal(t, "Ciência da Computação", edu.Field)
	assert.Equal(t, types.Period{Start: "2014", End: "2018"}, edu.Period)

	assert.Equal(t, []types.Skill{{Name: "Python", Level: types.SkillIntermediario}}, resume.Skills.Technical)
	assert.Equal(t, []types.Skill{{Name: "Excel", Level: types.SkillAvancado}}, resume.Skills.Tools)
	assert.Equal(t, []types.Skill{
		{Name: "Comunicação", Level: types.SkillIntermediario},
		{Name: "Liderança", Level: types.SkillIntermediario},
	}, resume.Skills.Interpersonal)

	assert.Equal(t, []types.Language{
		{Name: "Inglês", Level: types.LanguageAvancado},
		{Name: "Espanhol", Level: types.LanguageBasico},
	}, resume.Languages)

	require.Len(t, resume.Certifications, 1)
	cert := resume.Certifications[0]
	assert.Equal(t, "AWS Certified Solutions Architect", cert.Name)
	assert.Equal(t, "Amazon", cert.Issuer)
	assert.Equal(t, "2021", cert.Year)

	assert.NoError(t, resume.Validate())
}

func TestParse_EmptyTextYieldsPlaceholders(t *testing.T) {
	resume := NewParser().Parse("", types.Hints{})

	assert.Equal(t, types.PlaceholderName, resume.PersonalInfo.Name)

	require.Len(t, resume.Experience, 1)
	assert.Equal(t, types.PlaceholderCompany, resume.Experience[0].Company)
	assert.Equal(t, types.PlaceholderRole, resume.Experience[0].Role)
	assert.Equal(t, types.PeriodPresent, resume.Experience[0].Period.End)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, types.PlaceholderInstitution, resume.Education[0].Institution)

	assert.NotEmpty(t, resume.Skills.Technical)
	assert.NotEmpty(t, resume.Skills.Interpersonal)
	assert.NotEmpty(t, resume.Skills.Tools)
	assert.Equal(t, []types.Language{{Name: "Português", Level: types.LanguageNativo}}, resume.Languages)
	assert.Empty(t, resume.Certifications)
	assert.Nil(t, resume.Objective)

	assert.NoError(t, resume.Validate())
}

func TestParse_HintsWinOverScannedValues(t *testing.T) {
	resume := NewParser().Parse(sampleResume, types.Hints{
		Name:  "Maria Oliveira",
		Email: "maria@example.com",
	})

	assert.Equal(t, "Maria Oliveira", resume.PersonalInfo.Name)
	assert.Equal(t, "maria@example.com", resume.PersonalInfo.Contact.Email)
}

func TestParse_MissingSectionsStillValid(t *testing.T) {
	text := `Carlos Pereira
carlos@example.com

Experiência Profissional
Loja Central - Vendedor
2021 a atual
`
	resume := NewParser().Parse(text, types.Hints{})

	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Loja Central", resume.Experience[0].Company)
	assert.Equal(t, "Vendedor", resume.Experience[0].Role)
	assert.Equal(t, types.Period{Start: "2021", End: types.PeriodPresent}, resume.Experience[0].Period)
	assert.Equal(t, types.PlaceholderDescription, resume.Experience[0].Description)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, types.PlaceholderInstitution, resume.Education[0].Institution)

	assert.NoError(t, resume.Validate())
}

func TestParse_Deterministic(t *testing.T) {
	parser := NewParser()
	first := parser.Parse(sampleResume, types.Hints{})
	for range 5 {
		assert.Equal(t, first, parser.Parse(sampleResume, types.Hints{}))
	}
}

func TestSplitOrgLine(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		org        string
		detail     string
		shouldFind bool
	}{
		{"hyphen separator", "Acme Corp - Engenheiro", "Acme Corp", "Engenheiro", true},
		{"en dash separator", "Acme Corp – Engenheiro", "Acme Corp", "Engenheiro", true},
		{"colon separator", "Acme Corp: Engenheiro", "Acme Corp", "Engenheiro", true},
		{"bullet line is not an entry", "- Reduziu custos", "", "", false},
		{"date range is not an entry", "03/2020 - 05/2022", "", "", false},
		{"lowercase lead is not an entry", "trabalhei na acme - engenheiro", "", "", false},
		{"prose left side is not an entry", "Trabalhei muito. Depois - saí", "", "", false},
		{"plain line without separator", "Desenvolvimento de sistemas", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			org, detail, ok := splitOrgLine(tt.line)
			assert.Equal(t, tt.shouldFind, ok)
			assert.Equal(t, tt.org, org)
			assert.Equal(t, tt.detail, detail)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name       string
		line       string
		period     types.Period
		shouldFind bool
	}{
		{"month slash year range", "03/2020 - 05/2022", types.Period{Start: "03/2020", End: "05/2022"}, true},
		{"year range with en dash", "2019 – 2021", types.Period{Start: "2019", End: "2021"}, true},
		{"open ended atual", "01/2021 a atual", types.Period{Start: "01/2021", End: types.PeriodPresent}, true},
		{"open ended presente", "2020 - presente", types.Period{Start: "2020", End: types.PeriodPresent}, true},
		{"open ended english", "2020 to present", types.Period{Start: "2020", End: types.PeriodPresent}, true},
		{"no dates", "Engenheiro de Software", types.Period{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, ok := parsePeriod(tt.line)
			assert.Equal(t, tt.shouldFind, ok)
			assert.Equal(t, tt.period, period)
		})
	}
}

func TestIsolateSection(t *testing.T) {
	parser := NewParser()

	t.Run("header inside prose does not anchor", func(t *testing.T) {
		text := "tenho experiência com vendas e atendimento ao público em lojas"
		assert.Empty(t, parser.isolateSection(text, SectionExperience))
	})

	t.Run("longest synonym consumed on tie", func(t *testing.T) {
		text := "Experiência Profissional\nAcme - Engenheiro"
		body := parser.isolateSection(text, SectionExperience)
		assert.Equal(t, "Acme - Engenheiro", body)
	})

	t.Run("bounded by the next section header", func(t *testing.T) {
		text := "Experiência\nAcme - Engenheiro\nFormação\nUSP - Bacharelado"
		body := parser.isolateSection(text, SectionExperience)
		assert.Equal(t, "Acme - Engenheiro", body)
	})

	t.Run("runes that shrink under lowercasing keep offsets aligned", func(t *testing.T) {
		// U+1E9E (ẞ) lowercases to the shorter U+00DF (ß); the body must
		// still be sliced at the right byte.
		text := "STRAẞE COMÉRCIO LTDA\n\nHabilidades\nPython, SQL\n\nIdiomas\nInglês"
		body := parser.isolateSection(text, SectionSkills)
		assert.Equal(t, "Python, SQL", body)
	})
}
