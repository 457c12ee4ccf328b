package types

// Placeholder literals used by the safe-default template and by the
// heuristic parser when a group comes out empty. The editing layer shows
// these as illustrative entries for the user to replace.
const (
	PlaceholderName        = "Seu Nome"
	PlaceholderCompany     = "Empresa"
	PlaceholderRole        = "Cargo"
	PlaceholderInstitution = "Instituição"
	PlaceholderDegree      = "Graduação"
	PlaceholderField       = "Área de Estudo"
	PlaceholderDescription = "Descreva suas principais responsabilidades e conquistas nesta posição."
	PlaceholderObjective   = "Profissional dedicado em busca de novas oportunidades para aplicar e expandir minhas habilidades."
)

// DefaultResume builds the static safe-default template, optionally seeded
// with caller-supplied identity hints. It is the last tier of the fallback
// ladder and must always pass ResumeData validation.
func DefaultResume(name, email string) *ResumeData {
	if name == "" {
		name = PlaceholderName
	}

	return &ResumeData{
		PersonalInfo: PersonalInfo{
			Name: name,
			Contact: Contact{
				Email: email,
			},
		},
		Experience: []Experience{
			{
				Company:      PlaceholderCompany,
				Role:         PlaceholderRole,
				Period:       Period{Start: "2020", End: PeriodPresent},
				Description:  PlaceholderDescription,
				Achievements: []string{},
			},
		},
		Education: []Education{
			{
				Institution: PlaceholderInstitution,
				Degree:      PlaceholderDegree,
				Field:       PlaceholderField,
				Period:      Period{Start: "2016", End: "2020"},
			},
		},
		Skills: Skills{
			Technical:     []Skill{{Name: "Informática", Level: SkillIntermediario}},
			Interpersonal: []Skill{{Name: "Comunicação", Level: SkillIntermediario}},
			Tools:         []Skill{{Name: "Pacote Office", Level: SkillIntermediario}},
		},
		Languages: []Language{
			{Name: "Português", Level: LanguageNativo},
		},
		Certifications: []Certification{},
	}
}
