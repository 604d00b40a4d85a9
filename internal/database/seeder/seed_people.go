package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"talent-pulse/internal/database"
	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"
)

// PeopleSeeder inserts demo people with assessment, interview and
// climate snapshots so the analytics endpoints return data out of the
// box.
type PeopleSeeder struct{}

func (PeopleSeeder) Name() string { return "people" }

func (PeopleSeeder) Run(ctx context.Context, db database.DB) error {
	people := []struct {
		ID          string
		FullName    string
		JobTitle    string
		Department  string
		ProfileCode string
		Scores      riasec.ScoreVector
		Karma       *person.KarmaData
		Climate     *person.ClimateData
	}{
		{
			ID: ceoPersonID, FullName: "Marta Illes", JobTitle: "CEO", Department: rootUnitID,
			ProfileCode: "E-C-S",
			Scores:      riasec.ScoreVector{riasec.Realistic: 4, riasec.Investigative: 8, riasec.Artistic: 3, riasec.Social: 11, riasec.Enterprising: 19, riasec.Conventional: 13},
			Karma: &person.KarmaData{
				Summary:             "Decisive, communicates direction clearly, delegates late.",
				SeniorityAssessment: "executive",
				SoftSkills:          []string{"negotiation", "public speaking"},
				PrimaryValues:       []string{"ownership", "speed", "candor"},
				RiskFactors:         []string{"impatience"},
			},
			Climate: &person.ClimateData{SectionAverages: map[string]float64{"autonomy": 4.8, "identity": 4.9}, OverallAverage: 4.8},
		},
		{
			ID: engMgrID, FullName: "Priya Raman", JobTitle: "Engineering Manager", Department: engUnitID,
			ProfileCode: "I-C-R",
			Scores:      riasec.ScoreVector{riasec.Realistic: 10, riasec.Investigative: 17, riasec.Artistic: 2, riasec.Social: 7, riasec.Enterprising: 6, riasec.Conventional: 12},
			Karma: &person.KarmaData{
				Summary:             "Methodical planner, shields the team well.",
				SeniorityAssessment: "senior",
				SoftSkills:          []string{"facilitation"},
				PrimaryValues:       []string{"rigor", "candor"},
				RiskFactors:         []string{"risk aversion"},
			},
			Climate: &person.ClimateData{SectionAverages: map[string]float64{"management": 4.1, "team": 4.4}, OverallAverage: 4.2},
		},
		{
			ID: devOneID, FullName: "Jonas Weiss", JobTitle: "Software Engineer", Department: platformUnitID,
			ProfileCode: "I-R-C",
			Scores:      riasec.ScoreVector{riasec.Realistic: 13, riasec.Investigative: 16, riasec.Artistic: 4, riasec.Social: 5, riasec.Enterprising: 3, riasec.Conventional: 11},
			Climate:     &person.ClimateData{SectionAverages: map[string]float64{"team": 4.0, "pay": 3.2}, OverallAverage: 3.7},
		},
		{
			ID: devTwoID, FullName: "Aiko Tanaka", JobTitle: "Software Engineer", Department: platformUnitID,
			ProfileCode: "A-I-S",
			Scores:      riasec.ScoreVector{riasec.Realistic: 3, riasec.Investigative: 12, riasec.Artistic: 15, riasec.Social: 9, riasec.Enterprising: 4, riasec.Conventional: 5},
			Climate:     &person.ClimateData{SectionAverages: map[string]float64{"team": 4.6, "autonomy": 4.1}, OverallAverage: 4.3},
		},
		{
			ID: salesHeadID, FullName: "Tomas Herrera", JobTitle: "Head of Sales", Department: salesUnitID,
			ProfileCode: "E-S-C",
			Scores:      riasec.ScoreVector{riasec.Realistic: 2, riasec.Investigative: 5, riasec.Artistic: 6, riasec.Social: 13, riasec.Enterprising: 18, riasec.Conventional: 10},
			Karma: &person.KarmaData{
				Summary:             "Relationship-driven closer, strong on follow-through.",
				SeniorityAssessment: "senior",
				SoftSkills:          []string{"negotiation", "listening"},
				PrimaryValues:       []string{"speed", "ownership"},
				RiskFactors:         []string{"over-promising"},
			},
			Climate: &person.ClimateData{SectionAverages: map[string]float64{"supervisor": 4.5}, OverallAverage: 4.4},
		},
		{
			ID: hrPartnerID, FullName: "Lena Kovac", JobTitle: "People Partner", Department: peopleOpsUnitID,
			ProfileCode: "S-C-E",
			Scores:      riasec.ScoreVector{riasec.Realistic: 1, riasec.Investigative: 6, riasec.Artistic: 7, riasec.Social: 17, riasec.Enterprising: 9, riasec.Conventional: 12},
			Climate:     &person.ClimateData{SectionAverages: map[string]float64{"belonging": 4.2, "job_content": 4.0}, OverallAverage: 4.1},
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, p := range people {
		scores, err := json.Marshal(p.Scores)
		if err != nil {
			return fmt.Errorf("marshal scores for %s: %w", p.FullName, err)
		}
		var karma, climate *string
		if p.Karma != nil {
			b, err := json.Marshal(p.Karma)
			if err != nil {
				return fmt.Errorf("marshal karma for %s: %w", p.FullName, err)
			}
			s := string(b)
			karma = &s
		}
		if p.Climate != nil {
			b, err := json.Marshal(p.Climate)
			if err != nil {
				return fmt.Errorf("marshal climate for %s: %w", p.FullName, err)
			}
			s := string(b)
			climate = &s
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO people (id, full_name, job_title, department_id, profile_code, scores, karma, climate)
			 VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7::jsonb, $8::jsonb)
			 ON CONFLICT (id) DO NOTHING`,
			p.ID, p.FullName, p.JobTitle, p.Department, p.ProfileCode, string(scores), karma, climate)
		if err != nil {
			return fmt.Errorf("insert person %s: %w", p.FullName, err)
		}
	}

	return tx.Commit(ctx)
}
