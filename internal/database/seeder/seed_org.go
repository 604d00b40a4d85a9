package seeder

import (
	"context"
	"fmt"

	"talent-pulse/internal/database"
	"talent-pulse/internal/domain/org"
)

// OrgSeeder inserts a small demo organization: one root, three
// departments, one team, with the sales department flagged as a
// cultural driver.
type OrgSeeder struct{}

func (OrgSeeder) Name() string { return "org_units" }

func (OrgSeeder) Run(ctx context.Context, db database.DB) error {
	units := []struct {
		ID       string
		Name     string
		Type     org.NodeType
		Driver   bool
		ParentID string
	}{
		{ID: rootUnitID, Name: "Vantria Group", Type: org.TypeRoot, Driver: true},
		{ID: engUnitID, Name: "Engineering", Type: org.TypeDepartment, ParentID: rootUnitID},
		{ID: platformUnitID, Name: "Platform", Type: org.TypeTeam, ParentID: engUnitID},
		{ID: salesUnitID, Name: "Sales", Type: org.TypeDepartment, Driver: true, ParentID: rootUnitID},
		{ID: peopleOpsUnitID, Name: "People Operations", Type: org.TypeDepartment, ParentID: rootUnitID},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range units {
		var parent any
		if u.ParentID != "" {
			parent = u.ParentID
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO org_units (id, name, type, is_cultural_driver, parent_id)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (id) DO NOTHING`,
			u.ID, u.Name, string(u.Type), u.Driver, parent)
		if err != nil {
			return fmt.Errorf("insert unit %s: %w", u.Name, err)
		}
	}

	return tx.Commit(ctx)
}
