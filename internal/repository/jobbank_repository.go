package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"talent-pulse/internal/database"
	"talent-pulse/internal/domain/jobs"
	"talent-pulse/internal/domain/riasec"
)

type JobBankRepository interface {
	Load(ctx context.Context) (jobs.Database, error)
	Upsert(ctx context.Context, key string, position int, s jobs.Suggestion) error
}

type PostgresJobBankRepository struct {
	db database.DB
}

func NewPostgresJobBankRepository(db database.DB) *PostgresJobBankRepository {
	return &PostgresJobBankRepository{db: db}
}

// Load reads the whole job bank into the matcher's map form.
// Per-key insertion order is preserved via the position column.
func (r *PostgresJobBankRepository) Load(ctx context.Context) (jobs.Database, error) {
	rows, err := r.db.Query(ctx,
		`SELECT profile_key, title, COALESCE(sector, ''), ideal_score
		 FROM job_bank
		 ORDER BY profile_key ASC, position ASC, title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	db := make(jobs.Database)
	for rows.Next() {
		var (
			key      string
			title    string
			sector   string
			idealRaw []byte
		)
		if err := rows.Scan(&key, &title, &sector, &idealRaw); err != nil {
			return nil, err
		}
		s := jobs.Suggestion{Title: title, Sector: sector}
		if len(idealRaw) > 0 {
			var v riasec.ScoreVector
			if err := json.Unmarshal(idealRaw, &v); err != nil {
				return nil, fmt.Errorf("unmarshal ideal score for %q: %w", title, err)
			}
			s.IdealScore = v
		}
		db[key] = append(db[key], s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return db, nil
}

func (r *PostgresJobBankRepository) Upsert(ctx context.Context, key string, position int, s jobs.Suggestion) error {
	key = jobs.NormalizeKey(key)
	title := strings.TrimSpace(s.Title)
	if key == "" || title == "" {
		return fmt.Errorf("job bank upsert requires key and title")
	}

	var idealJSON *string
	if s.IdealScore != nil {
		b, err := json.Marshal(s.IdealScore)
		if err != nil {
			return fmt.Errorf("marshal ideal score: %w", err)
		}
		str := string(b)
		idealJSON = &str
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO job_bank (profile_key, title, sector, ideal_score, position)
		 VALUES ($1, $2, NULLIF($3, ''), $4::jsonb, $5)
		 ON CONFLICT (profile_key, title)
		 DO UPDATE SET sector = EXCLUDED.sector, ideal_score = EXCLUDED.ideal_score, position = EXCLUDED.position`,
		key, title, strings.TrimSpace(s.Sector), idealJSON, position)
	return err
}
