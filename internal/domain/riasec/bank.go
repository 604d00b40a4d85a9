package riasec

type SectionKind string

const (
	SectionForcedChoice SectionKind = "forced_choice"
	SectionChecklist    SectionKind = "checklist"
)

// Item is a single selectable option. Selecting it adds +1 to every
// dimension it is tagged with; an item with no impacts is a valid
// neutral answer and contributes nothing.
type Item struct {
	ID      string      `json:"id"`
	Prompt  string      `json:"prompt"`
	Impacts []Dimension `json:"impacts"`
}

// ForcedChoiceQuestion holds exactly two mutually exclusive options.
// Exclusivity is enforced by the intake surface, not the scorer.
type ForcedChoiceQuestion struct {
	Prompt  string  `json:"prompt"`
	Options [2]Item `json:"options"`
}

type Section struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Kind  SectionKind `json:"kind"`

	// Questions is set for forced-choice sections, Items for checklists.
	Questions []ForcedChoiceQuestion `json:"questions,omitempty"`
	Items     []Item                 `json:"items,omitempty"`

	// MaxSelection caps simultaneous checklist selections. 0 means
	// unlimited. Informational for intake; the scorer ignores it.
	MaxSelection int `json:"max_selection,omitempty"`
}

// Bank is the static, versioned catalog of test items. It is read-only
// configuration; item IDs are unique across all sections.
type Bank struct {
	Version  string    `json:"version"`
	Sections []Section `json:"sections"`
}

// ItemIndex flattens every item across all sections, both kinds, into
// an id -> impacts lookup.
func (b Bank) ItemIndex() map[string][]Dimension {
	idx := make(map[string][]Dimension)
	for _, sec := range b.Sections {
		for _, q := range sec.Questions {
			for _, opt := range q.Options {
				idx[opt.ID] = opt.Impacts
			}
		}
		for _, it := range sec.Items {
			idx[it.ID] = it.Impacts
		}
	}
	return idx
}
