package seeder

import (
	"context"
	"fmt"

	"talent-pulse/internal/database"
)

// JobBankSeeder installs the starter career-suggestion table. Keys are
// the alphabetically sorted three-letter profile keys the matcher
// expects.
type JobBankSeeder struct{}

func (JobBankSeeder) Name() string { return "job_bank" }

func (JobBankSeeder) Run(ctx context.Context, db database.DB) error {
	entries := []struct {
		Key    string
		Title  string
		Sector string
	}{
		{Key: "CIR", Title: "Systems Auditor", Sector: "Finance"},
		{Key: "CIR", Title: "Quality Engineer", Sector: "Manufacturing"},
		{Key: "CIR", Title: "Data Operations Analyst", Sector: "Technology"},
		{Key: "IRS", Title: "Clinical Researcher", Sector: "Health"},
		{Key: "IRS", Title: "Field Scientist", Sector: "Science"},
		{Key: "AIR", Title: "Industrial Designer", Sector: "Design"},
		{Key: "AIR", Title: "Prototyping Engineer", Sector: "Product"},
		{Key: "AIS", Title: "UX Researcher", Sector: "Technology"},
		{Key: "AIS", Title: "Art Therapist", Sector: "Health"},
		{Key: "CES", Title: "Account Manager", Sector: "Sales"},
		{Key: "CES", Title: "Customer Success Lead", Sector: "Services"},
		{Key: "CES", Title: "Operations Coordinator", Sector: "Operations"},
		{Key: "EIS", Title: "Product Manager", Sector: "Technology"},
		{Key: "EIS", Title: "Management Consultant", Sector: "Consulting"},
		{Key: "AES", Title: "Brand Strategist", Sector: "Marketing"},
		{Key: "AES", Title: "Communications Lead", Sector: "Media"},
		{Key: "CER", Title: "Logistics Manager", Sector: "Supply Chain"},
		{Key: "ERS", Title: "Sales Engineer", Sector: "Technology"},
		{Key: "CIS", Title: "People Analytics Specialist", Sector: "Human Resources"},
	}

	for i, e := range entries {
		_, err := db.Exec(ctx,
			`INSERT INTO job_bank (profile_key, title, sector, position)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (profile_key, title) DO NOTHING`,
			e.Key, e.Title, e.Sector, i)
		if err != nil {
			return fmt.Errorf("insert job %q: %w", e.Title, err)
		}
	}
	return nil
}
