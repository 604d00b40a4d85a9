package seeder

import (
	"context"

	"talent-pulse/internal/database"
)

// SchemaSeeder bootstraps the tables. Statements are idempotent so the
// runner can execute on every start.
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS org_units (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			is_cultural_driver BOOLEAN NOT NULL DEFAULT FALSE,
			parent_id UUID REFERENCES org_units(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS people (
			id UUID PRIMARY KEY,
			full_name TEXT NOT NULL,
			job_title TEXT,
			department_id UUID REFERENCES org_units(id),
			profile_code TEXT,
			scores JSONB,
			karma JSONB,
			climate JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS assessment_snapshots (
			id UUID PRIMARY KEY,
			person_id UUID NOT NULL REFERENCES people(id),
			profile_code TEXT NOT NULL,
			scores JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS job_bank (
			profile_key TEXT NOT NULL,
			title TEXT NOT NULL,
			sector TEXT,
			ideal_score JSONB,
			position INT NOT NULL DEFAULT 0,
			PRIMARY KEY (profile_key, title)
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_people_department ON people (department_id)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_person ON assessment_snapshots (person_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
