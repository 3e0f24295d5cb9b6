package postgres

import (
	"context"
	"database/sql"

	"contributorsboard/internal/domain"
)

type roleRepository struct {
	DB *sql.DB
}

// NewRoleRepository returns a domain.RoleRepository implemented with Postgres.
func NewRoleRepository(db *sql.DB) domain.RoleRepository {
	return &roleRepository{DB: db}
}

func (r *roleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT name FROM roles ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		roles = append(roles, domain.Role(name))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}
