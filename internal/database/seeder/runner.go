package seeder

import (
	"context"
	"fmt"

	"talent-pulse/internal/database"
)

type Runner struct {
	Seeders []Seeder
}

// Default returns the runner with every built-in seeder in dependency
// order: schema first, org units before people.
func Default() Runner {
	return Runner{Seeders: []Seeder{
		SchemaSeeder{},
		OrgSeeder{},
		PeopleSeeder{},
		JobBankSeeder{},
		AdminSeeder{},
	}}
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}
