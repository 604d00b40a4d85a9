package dto

import (
	"talent-pulse/internal/domain/riasec"
	"talent-pulse/internal/usecase"
)

type ItemResponse struct {
	ID     string `json:"id"`
	Prompt string `json:"prompt"`
}

type ForcedChoiceQuestionResponse struct {
	Prompt  string          `json:"prompt"`
	Options [2]ItemResponse `json:"options"`
}

type SectionResponse struct {
	ID           string                         `json:"id"`
	Kind         string                         `json:"kind"`
	Title        string                         `json:"title"`
	Questions    []ForcedChoiceQuestionResponse `json:"questions,omitempty"`
	Items        []ItemResponse                 `json:"items,omitempty"`
	MaxSelection int                            `json:"max_selection,omitempty"`
}

type BankResponse struct {
	Version  string            `json:"version"`
	Sections []SectionResponse `json:"sections"`
}

// FromBank strips dimension impacts so clients cannot game answers.
func FromBank(b riasec.Bank) BankResponse {
	out := BankResponse{Version: b.Version, Sections: make([]SectionResponse, 0, len(b.Sections))}
	for _, s := range b.Sections {
		sec := SectionResponse{
			ID:           s.ID,
			Kind:         string(s.Kind),
			Title:        s.Title,
			MaxSelection: s.MaxSelection,
		}
		for _, q := range s.Questions {
			sec.Questions = append(sec.Questions, ForcedChoiceQuestionResponse{
				Prompt: q.Prompt,
				Options: [2]ItemResponse{
					{ID: q.Options[0].ID, Prompt: q.Options[0].Prompt},
					{ID: q.Options[1].ID, Prompt: q.Options[1].Prompt},
				},
			})
		}
		for _, it := range s.Items {
			sec.Items = append(sec.Items, ItemResponse{ID: it.ID, Prompt: it.Prompt})
		}
		out.Sections = append(out.Sections, sec)
	}
	return out
}

type AssessmentResultResponse struct {
	PersonID    string         `json:"person_id"`
	ProfileCode string         `json:"profile_code"`
	Scores      map[string]int `json:"scores"`
	Ranking     []string       `json:"ranking"`
}

func FromAssessmentResult(res usecase.AssessmentResult) AssessmentResultResponse {
	scores := make(map[string]int, len(riasec.CanonicalOrder))
	for _, d := range riasec.CanonicalOrder {
		scores[string(d)] = res.Scores[d]
	}
	ranking := make([]string, 0, len(res.Ranking))
	for _, d := range res.Ranking {
		ranking = append(ranking, string(d))
	}
	return AssessmentResultResponse{
		PersonID:    res.PersonID.String(),
		ProfileCode: res.ProfileCode,
		Scores:      scores,
		Ranking:     ranking,
	}
}
