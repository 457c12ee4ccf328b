// Package heuristics provides the local, deterministic resume parser used
// when the remote structuring service is unavailable. It segments raw text
// into canonical sections by header-keyword anchoring and extracts entries
// with permissive regex patterns. It never fails: the worst outcome is an
// all-placeholder resume.
package heuristics

import "github.com/pedrohmarconato/curriculo-ingest/internal/types"

// Section identifies one canonical resume section.
type Section string

// Canonical sections recognized by the parser.
const (
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionLanguages      Section = "languages"
	SectionCertifications Section = "certifications"
	SectionObjective      Section = "objective"
)

// Tables holds the keyword data the parser matches against. Header
// synonyms and the city gazetteer are inherently incomplete heuristics;
// keeping them as data lets deployments swap in broader lists without
// touching parser logic.
type Tables struct {
	// SectionHeaders maps each section to its header synonyms, in the
	// product locale and English. Matching is case-insensitive.
	SectionHeaders map[Section][]string

	// Cities is the location gazetteer. Incomplete by design; it must at
	// least cover common metropolitan areas.
	Cities []string

	// InterpersonalSkills and ToolSkills route skill tokens into their
	// categories; anything unmatched is treated as technical.
	InterpersonalSkills []string
	ToolSkills          []string

	// LanguageNames are the spoken languages recognized inside a
	// languages section or anywhere in the text.
	LanguageNames []string
}

// DefaultTables returns the built-in keyword data.
func DefaultTables() *Tables {
	return &Tables{
		SectionHeaders: map[Section][]string{
			SectionExperience: {
				"experiência profissional",
				"experiências profissionais",
				"experiência",
				"histórico profissional",
				"professional experience",
				"work experience",
				"employment history",
				"experience",
			},
			SectionEducation: {
				"formação acadêmica",
				"formação",
				"educação",
				"escolaridade",
				"education",
				"academic background",
			},
			SectionSkills: {
				"habilidades técnicas",
				"habilidades",
				"competências",
				"conhecimentos",
				"qualificações",
				"skills",
				"technical skills",
				"competencies",
			},
			SectionLanguages: {
				"idiomas",
				"línguas",
				"languages",
			},
			SectionCertifications: {
				"certificações",
				"certificados",
				"cursos",
				"certifications",
				"courses",
			},
			SectionObjective: {
				"objetivo profissional",
				"objetivo",
				"resumo profissional",
				"resumo",
				"sobre mim",
				"objective",
				"summary",
				"about me",
			},
		},
		Cities: []string{
			"São Paulo", "Rio de Janeiro", "Belo Horizonte", "Brasília",
			"Salvador", "Fortaleza", "Curitiba", "Recife", "Porto Alegre",
			"Manaus", "Belém", "Goiânia", "Campinas", "Florianópolis",
			"Vitória", "Natal", "João Pessoa", "Maceió", "Campo Grande",
			"Cuiabá", "São Luís", "Teresina", "Aracaju", "Londrina",
			"Joinville", "Niterói", "Santos", "Sorocaba", "Uberlândia",
			"Ribeirão Preto", "Osasco", "Guarulhos", "São Bernardo do Campo",
			"Lisboa", "Porto", "New York", "London", "Toronto", "Miami",
		},
		InterpersonalSkills: []string{
			"comunicação", "liderança", "trabalho em equipe", "negociação",
			"empatia", "proatividade", "organização", "criatividade",
			"resiliência", "flexibilidade", "relacionamento interpessoal",
			"gestão de pessoas", "gestão de conflitos", "oratória",
			"communication", "leadership", "teamwork", "negotiation",
		},
		ToolSkills: []string{
			"excel", "word", "powerpoint", "pacote office", "office",
			"photoshop", "illustrator", "figma", "canva", "autocad",
			"sap", "totvs", "power bi", "tableau", "jira", "trello",
			"slack", "git", "docker", "kubernetes", "postman",
		},
		LanguageNames: []string{
			"português", "inglês", "espanhol", "francês", "alemão",
			"italiano", "mandarim", "japonês", "coreano", "russo", "árabe",
			"english", "spanish", "french", "german", "italian", "portuguese",
		},
	}
}

// headerUniverse returns every known header keyword with its owning
// section, used to find where one section ends and the next begins.
func (t *Tables) headerUniverse() []headerKeyword {
	var all []headerKeyword
	for section, keywords := range t.SectionHeaders {
		for _, kw := range keywords {
			all = append(all, headerKeyword{section: section, keyword: kw})
		}
	}
	return all
}

type headerKeyword struct {
	section Section
	keyword string
}

// defaultSkillLevel is assigned when a skill has no inline level marker.
const defaultSkillLevel = types.SkillIntermediario

// defaultLanguageLevel is assigned when a language has no inline level.
const defaultLanguageLevel = types.LanguageIntermediario

// skillLevelWords maps inline level markers to the skill ordinal scale.
var skillLevelWords = map[string]types.SkillLevel{
	"básico":        types.SkillBasico,
	"basico":        types.SkillBasico,
	"iniciante":     types.SkillBasico,
	"basic":         types.SkillBasico,
	"intermediário": types.SkillIntermediario,
	"intermediario": types.SkillIntermediario,
	"intermediate":  types.SkillIntermediario,
	"avançado":      types.SkillAvancado,
	"avancado":      types.SkillAvancado,
	"advanced":      types.SkillAvancado,
	"especialista":  types.SkillEspecialista,
	"expert":        types.SkillEspecialista,
}

// languageLevelWords maps inline level markers to the language scale.
var languageLevelWords = map[string]types.LanguageLevel{
	"básico":        types.LanguageBasico,
	"basico":        types.LanguageBasico,
	"basic":         types.LanguageBasico,
	"intermediário": types.LanguageIntermediario,
	"intermediario": types.LanguageIntermediario,
	"intermediate":  types.LanguageIntermediario,
	"avançado":      types.LanguageAvancado,
	"avancado":      types.LanguageAvancado,
	"advanced":      types.LanguageAvancado,
	"fluente":       types.LanguageFluente,
	"fluent":        types.LanguageFluente,
	"nativo":        types.LanguageNativo,
	"nativa":        types.LanguageNativo,
	"native":        types.LanguageNativo,
}
