package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/traits"
)

type GroupsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewGroupsRepo(db *sql.DB, d Dialect) *GroupsRepo {
	return &GroupsRepo{db: db, d: d}
}

func (r *GroupsRepo) List(ctx context.Context, filter groups.ListFilter) ([]groups.Group, int, error) {
	c := conn{q: r.db, d: r.d}

	var total int
	if err := c.queryRow(ctx, `SELECT COUNT(*) FROM animal_groups`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("sqlstore: count groups: %w", err)
	}

	rows, err := c.query(ctx, `
		SELECT id, scientific_name, created_at
		FROM animal_groups
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlstore: list groups: %w", err)
	}
	defer rows.Close()

	out := make([]groups.Group, 0, filter.Limit)
	for rows.Next() {
		var g groups.Group
		if err := rows.Scan(&g.ID, &g.ScientificName, &g.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("sqlstore: scan group: %w", err)
		}
		out = append(out, g)
	}
	return out, total, rows.Err()
}

type TraitsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewTraitsRepo(db *sql.DB, d Dialect) *TraitsRepo {
	return &TraitsRepo{db: db, d: d}
}

func (r *TraitsRepo) List(ctx context.Context, filter traits.ListFilter) ([]traits.Trait, int, error) {
	c := conn{q: r.db, d: r.d}

	where := ""
	var args []any
	if filter.Name != "" {
		where = ` WHERE name_key LIKE ? ESCAPE '\'`
		args = append(args, likePattern(filter.Name))
	}

	var total int
	if err := c.queryRow(ctx, `SELECT COUNT(*) FROM traits`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("sqlstore: count traits: %w", err)
	}

	rows, err := c.query(ctx, `
		SELECT id, name, created_at
		FROM traits`+where+`
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlstore: list traits: %w", err)
	}
	defer rows.Close()

	out := make([]traits.Trait, 0, filter.Limit)
	for rows.Next() {
		var t traits.Trait
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("sqlstore: scan trait: %w", err)
		}
		out = append(out, t)
	}
	return out, total, rows.Err()
}
