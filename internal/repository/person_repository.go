package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"talent-pulse/internal/database"
	"talent-pulse/internal/domain/person"
	"talent-pulse/internal/domain/riasec"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PersonRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (person.Person, error)
	List(ctx context.Context) ([]person.Person, error)
	Create(ctx context.Context, fullName, jobTitle string, departmentID *uuid.UUID) (uuid.UUID, error)
	SaveAssessment(ctx context.Context, personID uuid.UUID, profileCode string, scores riasec.ScoreVector) error
	SaveKarma(ctx context.Context, personID uuid.UUID, k person.KarmaData) error
	SaveClimate(ctx context.Context, personID uuid.UUID, c person.ClimateData) error
}

type PostgresPersonRepository struct {
	db database.DB
}

func NewPostgresPersonRepository(db database.DB) *PostgresPersonRepository {
	return &PostgresPersonRepository{db: db}
}

const personColumns = `id, full_name, COALESCE(job_title, ''), department_id, COALESCE(profile_code, ''), scores, karma, climate`

func (r *PostgresPersonRepository) GetByID(ctx context.Context, id uuid.UUID) (person.Person, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+personColumns+` FROM people WHERE id = $1`, id)

	p, err := scanPerson(row)
	if err != nil {
		if isNoRows(err) {
			return person.Person{}, ErrNotFound
		}
		return person.Person{}, err
	}
	return p, nil
}

func (r *PostgresPersonRepository) List(ctx context.Context) ([]person.Person, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+personColumns+` FROM people ORDER BY full_name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]person.Person, 0)
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPersonRepository) Create(ctx context.Context, fullName, jobTitle string, departmentID *uuid.UUID) (uuid.UUID, error) {
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO people (id, full_name, job_title, department_id) VALUES ($1, $2, NULLIF($3, ''), $4)`,
		id, strings.TrimSpace(fullName), strings.TrimSpace(jobTitle), departmentID)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// SaveAssessment appends a snapshot row and promotes it to the
// person's current profile. History is never mutated.
func (r *PostgresPersonRepository) SaveAssessment(ctx context.Context, personID uuid.UUID, profileCode string, scores riasec.ScoreVector) error {
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO assessment_snapshots (id, person_id, profile_code, scores) VALUES (gen_random_uuid(), $1, $2, $3::jsonb)`,
		personID, profileCode, string(scoresJSON))
	if err != nil {
		return err
	}

	affected, err := tx.Exec(ctx,
		`UPDATE people SET profile_code = $2, scores = $3::jsonb WHERE id = $1`,
		personID, profileCode, string(scoresJSON))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *PostgresPersonRepository) SaveKarma(ctx context.Context, personID uuid.UUID, k person.KarmaData) error {
	return r.saveJSONField(ctx, personID, "karma", k)
}

func (r *PostgresPersonRepository) SaveClimate(ctx context.Context, personID uuid.UUID, c person.ClimateData) error {
	return r.saveJSONField(ctx, personID, "climate", c)
}

func (r *PostgresPersonRepository) saveJSONField(ctx context.Context, personID uuid.UUID, column string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", column, err)
	}
	affected, err := r.db.Exec(ctx,
		`UPDATE people SET `+column+` = $2::jsonb WHERE id = $1`,
		personID, string(b))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPerson(row database.Row) (person.Person, error) {
	var (
		id           uuid.UUID
		fullName     string
		jobTitle     string
		departmentID *uuid.UUID
		profileCode  string
		scoresRaw    []byte
		karmaRaw     []byte
		climateRaw   []byte
	)
	if err := row.Scan(&id, &fullName, &jobTitle, &departmentID, &profileCode, &scoresRaw, &karmaRaw, &climateRaw); err != nil {
		return person.Person{}, err
	}

	p := person.Person{
		ID:          id.String(),
		FullName:    fullName,
		JobTitle:    jobTitle,
		ProfileCode: profileCode,
	}
	if departmentID != nil {
		p.DepartmentID = departmentID.String()
	}
	if len(scoresRaw) > 0 {
		var v riasec.ScoreVector
		if err := json.Unmarshal(scoresRaw, &v); err != nil {
			return person.Person{}, fmt.Errorf("unmarshal scores: %w", err)
		}
		p.Scores = v
	}
	if len(karmaRaw) > 0 {
		var k person.KarmaData
		if err := json.Unmarshal(karmaRaw, &k); err != nil {
			return person.Person{}, fmt.Errorf("unmarshal karma: %w", err)
		}
		p.Karma = &k
	}
	if len(climateRaw) > 0 {
		var c person.ClimateData
		if err := json.Unmarshal(climateRaw, &c); err != nil {
			return person.Person{}, fmt.Errorf("unmarshal climate: %w", err)
		}
		p.Climate = &c
	}
	return p, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
