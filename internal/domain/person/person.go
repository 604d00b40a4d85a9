package person

import "talent-pulse/internal/domain/riasec"

// KarmaData is the resolved result of the external interview-analysis
// service. The engine consumes it as already-validated data; boundary
// layers substitute a fallback object when the call fails.
type KarmaData struct {
	Summary             string   `json:"summary"`
	SeniorityAssessment string   `json:"seniority_assessment,omitempty"`
	SoftSkills          []string `json:"soft_skills,omitempty"`
	PrimaryValues       []string `json:"primary_values,omitempty"`
	RiskFactors         []string `json:"risk_factors,omitempty"`
}

// ClimateData is one person's satisfaction-survey snapshot.
type ClimateData struct {
	SectionAverages map[string]float64 `json:"section_averages"`
	OverallAverage  float64            `json:"overall_average"`
}

// Person is an immutable assessment snapshot handed to the analytics
// engines. A new submission produces a new snapshot; the engine never
// mutates one.
type Person struct {
	ID           string             `json:"id"`
	FullName     string             `json:"full_name,omitempty"`
	ProfileCode  string             `json:"profile_code,omitempty"`
	Scores       riasec.ScoreVector `json:"scores,omitempty"`
	DepartmentID string             `json:"department_id,omitempty"`
	JobTitle     string             `json:"job_title,omitempty"`
	Karma        *KarmaData         `json:"karma,omitempty"`
	Climate      *ClimateData       `json:"climate,omitempty"`
}

// HasProfile reports whether the person completed an assessment.
func (p Person) HasProfile() bool { return p.ProfileCode != "" }

// HasValues reports whether interview data with at least one primary
// value is present.
func (p Person) HasValues() bool {
	return p.Karma != nil && len(p.Karma.PrimaryValues) > 0
}
