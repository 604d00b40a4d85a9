package dto

import (
	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"
)

type PersonResponse struct {
	ID           string         `json:"id"`
	FullName     string         `json:"full_name"`
	JobTitle     string         `json:"job_title,omitempty"`
	DepartmentID string         `json:"department_id,omitempty"`
	ProfileCode  string         `json:"profile_code,omitempty"`
	Scores       map[string]int `json:"scores,omitempty"`
	HasInterview bool           `json:"has_interview"`
	HasClimate   bool           `json:"has_climate"`
}

func FromPerson(p person.Person) PersonResponse {
	out := PersonResponse{
		ID:           p.ID,
		FullName:     p.FullName,
		JobTitle:     p.JobTitle,
		DepartmentID: p.DepartmentID,
		ProfileCode:  p.ProfileCode,
		HasInterview: p.Karma != nil,
		HasClimate:   p.Climate != nil,
	}
	if len(p.Scores) > 0 {
		out.Scores = make(map[string]int, len(riasec.CanonicalOrder))
		for _, d := range riasec.CanonicalOrder {
			out.Scores[string(d)] = p.Scores[d]
		}
	}
	return out
}

func FromPeople(people []person.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, FromPerson(p))
	}
	return out
}
