package report

import (
	"sort"

	"talent-pulse/internal/domain/riasec"
)

// DimensionProfile is the static narrative content for one dimension.
type DimensionProfile struct {
	Description string   `json:"description"`
	Adjectives  []string `json:"adjectives"`
	Quotes      []string `json:"quotes"`
}

// Content holds the canned narrative tables the composer draws from.
// Missing entries degrade to placeholders, never to errors.
type Content struct {
	Dimensions map[riasec.Dimension]DimensionProfile
	// PairNarratives is keyed by the two dimension letters sorted
	// alphabetically, e.g. "IR".
	PairNarratives map[string]string
}

// PairKey builds the alphabetically sorted two-letter lookup key.
func PairKey(a, b riasec.Dimension) string {
	letters := []string{string(a), string(b)}
	sort.Strings(letters)
	return letters[0] + letters[1]
}

// DefaultContent returns the built-in narrative tables.
func DefaultContent() Content {
	return Content{
		Dimensions: map[riasec.Dimension]DimensionProfile{
			riasec.Realistic: {
				Description: "Drawn to tangible work: tools, machines, materials and physical results. Prefers doing over discussing.",
				Adjectives:  []string{"practical", "hands-on", "persistent", "grounded"},
				Quotes:      []string{"Show me, don't tell me.", "If it works, it ships."},
			},
			riasec.Investigative: {
				Description: "Motivated by understanding. Analyzes before acting, trusts evidence over opinion, enjoys hard open problems.",
				Adjectives:  []string{"analytical", "curious", "precise", "independent"},
				Quotes:      []string{"What does the data say?", "Let me check before we decide."},
			},
			riasec.Artistic: {
				Description: "Seeks expression and originality. Works best with loose constraints and resists rigid procedure.",
				Adjectives:  []string{"imaginative", "expressive", "intuitive", "unconventional"},
				Quotes:      []string{"There has to be a better way to say this.", "Rules are a starting point."},
			},
			riasec.Social: {
				Description: "Energized by helping and developing people. Reads rooms quickly and keeps teams connected.",
				Adjectives:  []string{"empathetic", "cooperative", "patient", "communicative"},
				Quotes:      []string{"How is the team actually doing?", "Let's hear everyone first."},
			},
			riasec.Enterprising: {
				Description: "Moves towards influence and outcomes. Comfortable persuading, deciding and taking calculated risks.",
				Adjectives:  []string{"persuasive", "ambitious", "decisive", "energetic"},
				Quotes:      []string{"Who owns this?", "We can win this if we move now."},
			},
			riasec.Conventional: {
				Description: "Brings order to work: structure, accuracy and dependable follow-through on established processes.",
				Adjectives:  []string{"organized", "meticulous", "reliable", "efficient"},
				Quotes:      []string{"Where is that written down?", "Let's not skip the checklist."},
			},
		},
		PairNarratives: map[string]string{
			"IR": "Builds and verifies: practical execution backed by rigorous analysis. Strong in engineering and diagnostics, may under-invest in communication.",
			"AR": "Craft meets invention: makes original things that actually work. Thrives in workshops and product labs, chafes under heavy process.",
			"RS": "Practical helper: teaches by doing and keeps teams unblocked. Natural fit for field leadership and training roles.",
			"ER": "Gets things built and sold: operational drive with commercial instinct. Watch for shortcuts under time pressure.",
			"CR": "Dependable operator: runs physical and administrative systems with few surprises. Can resist change longer than it should.",
			"AI": "Explores and imagines: generates novel ideas and stress-tests them. Excellent at research with a creative edge; delivery needs structure around it.",
			"IS": "Understands people systematically: pairs evidence with empathy. Strong in coaching, people analytics and clinical work.",
			"EI": "Strategic analyst: spots opportunities in data and acts on them. Effective in product and consulting; may overload on parallel bets.",
			"CI": "Precision thinker: deep analysis within disciplined structure. Well suited to audit, quality and compliance-heavy research.",
			"AS": "Expressive connector: moves people through stories and design. Strong in teaching, brand and community roles.",
			"AE": "Creative promoter: sells original ideas with conviction. High visibility work; consistency is the risk to manage.",
			"AC": "Structured creative: original output delivered on schedule. Rare and valuable in production design and editorial operations.",
			"ES": "People-first leader: persuades through relationships. Natural in sales leadership and partnerships; guard against over-promising.",
			"CS": "Service backbone: supports people through reliable systems. Strong in HR operations and customer care.",
			"CE": "Executive organizer: ambition channeled through planning and control. Effective in operations and program leadership.",
		},
	}
}
