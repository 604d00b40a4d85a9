package repository

import (
	"context"
	"fmt"

	"talent-pulse/internal/database"
	"talent-pulse/internal/domain/org"

	"github.com/google/uuid"
)

type OrgRepository interface {
	GetTree(ctx context.Context) (*org.Node, error)
}

type PostgresOrgRepository struct {
	db database.DB
}

func NewPostgresOrgRepository(db database.DB) *PostgresOrgRepository {
	return &PostgresOrgRepository{db: db}
}

// GetTree loads every org unit and assembles the single-rooted tree.
// Children attach in name order so traversal output is stable.
func (r *PostgresOrgRepository) GetTree(ctx context.Context) (*org.Node, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, type, is_cultural_driver, parent_id
		 FROM org_units
		 ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type unit struct {
		node     *org.Node
		parentID *uuid.UUID
	}

	units := make([]unit, 0)
	byID := make(map[string]*org.Node)
	for rows.Next() {
		var (
			id       uuid.UUID
			name     string
			typ      string
			driver   bool
			parentID *uuid.UUID
		)
		if err := rows.Scan(&id, &name, &typ, &driver, &parentID); err != nil {
			return nil, err
		}
		n := &org.Node{
			ID:               id.String(),
			Name:             name,
			Type:             org.NodeType(typ),
			IsCulturalDriver: driver,
		}
		units = append(units, unit{node: n, parentID: parentID})
		byID[n.ID] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return nil, ErrNotFound
	}

	var root *org.Node
	for _, u := range units {
		if u.parentID == nil {
			if root != nil {
				return nil, fmt.Errorf("org tree has multiple roots: %s and %s", root.ID, u.node.ID)
			}
			root = u.node
			continue
		}
		parent, ok := byID[u.parentID.String()]
		if !ok {
			return nil, fmt.Errorf("org unit %s references unknown parent %s", u.node.ID, u.parentID)
		}
		parent.Children = append(parent.Children, u.node)
	}
	if root == nil {
		return nil, fmt.Errorf("org tree has no root")
	}
	return root, nil
}
