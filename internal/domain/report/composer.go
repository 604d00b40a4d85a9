package report

import (
	"talent-pulse/internal/domain/jobs"
	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"
)

type SectionKind string

const (
	SectionDominantTraits SectionKind = "dominant_traits"
	SectionPairDynamics   SectionKind = "pair_dynamics"
	SectionCareers        SectionKind = "career_suggestions"
	SectionBehavioral     SectionKind = "behavioral_analysis"
)

const (
	missingDimensionText = "No description available for this dimension."
	missingPairText      = "Combination description not found."
)

// TraitBlock is one dominant dimension rendered for display.
type TraitBlock struct {
	Dimension   riasec.Dimension `json:"dimension"`
	Name        string           `json:"name"`
	Score       int              `json:"score"`
	Description string           `json:"description"`
	Adjectives  []string         `json:"adjectives,omitempty"`
	Quotes      []string         `json:"quotes,omitempty"`
}

// PairBlock is one pairwise dynamic among the dominant dimensions.
type PairBlock struct {
	Key       string `json:"key"`
	Narrative string `json:"narrative"`
}

// BehavioralBlock carries interview-derived insights. Absent
// sub-fields are omitted, never rendered as empty placeholders.
type BehavioralBlock struct {
	Summary       string   `json:"summary,omitempty"`
	Seniority     string   `json:"seniority,omitempty"`
	SoftSkills    []string `json:"soft_skills,omitempty"`
	PrimaryValues []string `json:"primary_values,omitempty"`
	RiskFactors   []string `json:"risk_factors,omitempty"`
}

// Section is one block of the final report, JSON-serializable for any
// consumer.
type Section struct {
	Kind       SectionKind       `json:"kind"`
	Title      string            `json:"title"`
	Traits     []TraitBlock      `json:"traits,omitempty"`
	Pairs      []PairBlock       `json:"pairs,omitempty"`
	Careers    []jobs.Suggestion `json:"careers,omitempty"`
	Behavioral *BehavioralBlock  `json:"behavioral,omitempty"`
}

// Composer assembles report sections from a score vector, the job
// bank and an optional person record. Every lookup degrades to
// placeholder text; Compose never fails.
type Composer struct {
	content Content
}

func NewComposer() *Composer {
	return &Composer{content: DefaultContent()}
}

// NewComposerWithContent lets callers supply alternative narrative
// tables (localization, sparse test fixtures).
func NewComposerWithContent(content Content) *Composer {
	return &Composer{content: content}
}

// Compose produces the report sections in fixed order: dominant
// traits, pairwise dynamics, career suggestions, then behavioral
// analysis only when interview data exists.
func (c *Composer) Compose(v riasec.ScoreVector, db jobs.Database, p *person.Person) []Section {
	top := riasec.TopThree(v)

	sections := []Section{
		c.dominantTraits(v, top),
		c.pairDynamics(top),
		c.careerSuggestions(top, db),
	}

	if p != nil && p.Karma != nil {
		sections = append(sections, behavioralSection(p.Karma))
	}
	return sections
}

func (c *Composer) dominantTraits(v riasec.ScoreVector, top [3]riasec.Dimension) Section {
	traits := make([]TraitBlock, 0, len(top))
	for _, d := range top {
		block := TraitBlock{
			Dimension:   d,
			Name:        d.Name(),
			Score:       v[d],
			Description: missingDimensionText,
		}
		if profile, ok := c.content.Dimensions[d]; ok {
			block.Description = profile.Description
			block.Adjectives = profile.Adjectives
			block.Quotes = profile.Quotes
		}
		traits = append(traits, block)
	}
	return Section{Kind: SectionDominantTraits, Title: "Dominant traits", Traits: traits}
}

func (c *Composer) pairDynamics(top [3]riasec.Dimension) Section {
	pairs := make([]PairBlock, 0, 3)
	for i := 0; i < len(top); i++ {
		for j := i + 1; j < len(top); j++ {
			key := PairKey(top[i], top[j])
			narrative, ok := c.content.PairNarratives[key]
			if !ok {
				narrative = missingPairText
			}
			pairs = append(pairs, PairBlock{Key: key, Narrative: narrative})
		}
	}
	return Section{Kind: SectionPairDynamics, Title: "Trait dynamics", Pairs: pairs}
}

func (c *Composer) careerSuggestions(top [3]riasec.Dimension, db jobs.Database) Section {
	// The matcher normalizes to the alphabetically sorted key; handing
	// it the ranked code keeps both sides of the convention in one
	// place.
	code := string(top[0]) + riasec.CodeDelimiter + string(top[1]) + riasec.CodeDelimiter + string(top[2])
	return Section{
		Kind:    SectionCareers,
		Title:   "Career suggestions",
		Careers: jobs.Suggest(code, db),
	}
}

func behavioralSection(k *person.KarmaData) Section {
	return Section{
		Kind:  SectionBehavioral,
		Title: "Behavioral analysis",
		Behavioral: &BehavioralBlock{
			Summary:       k.Summary,
			Seniority:     k.SeniorityAssessment,
			SoftSkills:    k.SoftSkills,
			PrimaryValues: k.PrimaryValues,
			RiskFactors:   k.RiskFactors,
		},
	}
}
