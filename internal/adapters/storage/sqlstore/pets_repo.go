package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pets-api/internal/domain/groups"
	"pets-api/internal/domain/pets"
	"pets-api/internal/domain/traits"
)

const petColumns = `
	p.id, p.name, p.age, p.weight, p.sex,
	g.id, g.scientific_name, g.created_at`

const petFrom = `
	FROM pets p
	JOIN animal_groups g ON g.id = p.group_id`

const traitFilter = `
	EXISTS (
		SELECT 1 FROM pet_traits pt
		JOIN traits t ON t.id = pt.trait_id
		WHERE pt.pet_id = p.id AND t.name_key LIKE ? ESCAPE '\'
	)`

type PetsRepo struct {
	db *sql.DB
	d  Dialect
}

func NewPetsRepo(db *sql.DB, d Dialect) *PetsRepo {
	return &PetsRepo{db: db, d: d}
}

func (r *PetsRepo) conn() conn { return conn{q: r.db, d: r.d} }

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, int, error) {
	c := r.conn()

	where := ""
	var args []any
	if filter.Trait != "" {
		where = " WHERE " + traitFilter
		args = append(args, likePattern(filter.Trait))
	}

	var total int
	if err := c.queryRow(ctx, `SELECT COUNT(*) FROM pets p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("sqlstore: count pets: %w", err)
	}
	if total == 0 {
		return []pets.Pet{}, 0, nil
	}

	rows, err := c.query(ctx, `SELECT `+petColumns+petFrom+where+`
		ORDER BY p.id ASC
		LIMIT ? OFFSET ?`, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("sqlstore: list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0, filter.Limit)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("sqlstore: scan pet: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("sqlstore: list pets: %w", err)
	}
	rows.Close()

	if err := loadTraits(ctx, c, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	return getPet(ctx, r.conn(), id)
}

// Delete borra la mascota y sus asociaciones. Grupo y traits no se tocan.
func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	return r.inTx(ctx, func(c conn) error {
		if _, err := c.exec(ctx, `DELETE FROM pet_traits WHERE pet_id = ?`, id); err != nil {
			return fmt.Errorf("sqlstore: delete pet traits: %w", err)
		}
		res, err := c.exec(ctx, `DELETE FROM pets WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("sqlstore: delete pet: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return pets.ErrNotFound
		}
		return nil
	})
}

// WithTx corre fn dentro de una transacción de base.
func (r *PetsRepo) WithTx(ctx context.Context, fn func(tx pets.Tx) error) error {
	return r.inTx(ctx, func(c conn) error {
		return fn(&petTx{c: c})
	})
}

// inTx hace rollback si fn o el commit fallan.
func (r *PetsRepo) inTx(ctx context.Context, fn func(c conn) error) error {
	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sqlstore: begin: %w", err)
	}
	defer func() { _ = sqlTx.Rollback() }()

	if err := fn(conn{q: sqlTx, d: r.d}); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("sqlstore: commit: %w", err)
	}
	return nil
}

// petTx implementa pets.Tx sobre una *sql.Tx.
type petTx struct {
	c conn
}

func (t *petTx) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	return getPet(ctx, t.c, id)
}

func (t *petTx) Insert(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	err := t.c.queryRow(ctx, `
		INSERT INTO pets (name, age, weight, sex, group_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`, p.Name, p.Age, p.Weight, string(p.Sex), p.Group.ID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("sqlstore: insert pet: %w", err)
	}
	return id, nil
}

func (t *petTx) Update(ctx context.Context, p pets.Pet) error {
	res, err := t.c.exec(ctx, `
		UPDATE pets
		SET
			name = ?,
			age = ?,
			weight = ?,
			sex = ?,
			group_id = ?
		WHERE id = ?
	`, p.Name, p.Age, p.Weight, string(p.Sex), p.Group.ID, p.ID)
	if err != nil {
		return fmt.Errorf("sqlstore: update pet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (t *petTx) AddTraits(ctx context.Context, petID int64, traitIDs ...int64) error {
	for _, id := range traitIDs {
		if _, err := t.c.exec(ctx, `
			INSERT INTO pet_traits (pet_id, trait_id) VALUES (?, ?)
			ON CONFLICT (pet_id, trait_id) DO NOTHING
		`, petID, id); err != nil {
			return fmt.Errorf("sqlstore: link trait %d: %w", id, err)
		}
	}
	return nil
}

// GetOrCreateGroup: select por key; si no está, insert con ON CONFLICT DO NOTHING y, si
// otra tx ganó la carrera, se relee la fila que quedó.
func (t *petTx) GetOrCreateGroup(ctx context.Context, g groups.Group) (groups.Group, bool, error) {
	key := groups.Key(g.ScientificName)

	out, err := t.findGroup(ctx, key)
	if err == nil {
		return out, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return groups.Group{}, false, fmt.Errorf("sqlstore: find group: %w", err)
	}

	var id int64
	err = t.c.queryRow(ctx, `
		INSERT INTO animal_groups (scientific_name, scientific_name_key, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (scientific_name_key) DO NOTHING
		RETURNING id
	`, g.ScientificName, key, g.CreatedAt.UTC()).Scan(&id)
	created := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return groups.Group{}, false, fmt.Errorf("sqlstore: insert group: %w", err)
	}

	out, err = t.findGroup(ctx, key)
	if err != nil {
		return groups.Group{}, false, fmt.Errorf("sqlstore: refetch group: %w", err)
	}
	return out, created, nil
}

func (t *petTx) findGroup(ctx context.Context, key string) (groups.Group, error) {
	var g groups.Group
	err := t.c.queryRow(ctx, `
		SELECT id, scientific_name, created_at
		FROM animal_groups
		WHERE scientific_name_key = ?
	`, key).Scan(&g.ID, &g.ScientificName, &g.CreatedAt)
	return g, err
}

func (t *petTx) GetOrCreateTrait(ctx context.Context, tr traits.Trait) (traits.Trait, bool, error) {
	key := traits.Key(tr.Name)

	out, err := t.findTrait(ctx, key)
	if err == nil {
		return out, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return traits.Trait{}, false, fmt.Errorf("sqlstore: find trait: %w", err)
	}

	var id int64
	err = t.c.queryRow(ctx, `
		INSERT INTO traits (name, name_key, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (name_key) DO NOTHING
		RETURNING id
	`, tr.Name, key, tr.CreatedAt.UTC()).Scan(&id)
	created := err == nil
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return traits.Trait{}, false, fmt.Errorf("sqlstore: insert trait: %w", err)
	}

	out, err = t.findTrait(ctx, key)
	if err != nil {
		return traits.Trait{}, false, fmt.Errorf("sqlstore: refetch trait: %w", err)
	}
	return out, created, nil
}

func (t *petTx) findTrait(ctx context.Context, key string) (traits.Trait, error) {
	var tr traits.Trait
	err := t.c.queryRow(ctx, `
		SELECT id, name, created_at
		FROM traits
		WHERE name_key = ?
	`, key).Scan(&tr.ID, &tr.Name, &tr.CreatedAt)
	return tr, err
}

// ---- helpers ----

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var sex string
	if err := s.Scan(
		&p.ID,
		&p.Name,
		&p.Age,
		&p.Weight,
		&sex,
		&p.Group.ID,
		&p.Group.ScientificName,
		&p.Group.CreatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.Sex = pets.Sex(sex)
	p.Traits = []traits.Trait{}
	return p, nil
}

func getPet(ctx context.Context, c conn, id int64) (pets.Pet, error) {
	row := c.queryRow(ctx, `SELECT `+petColumns+petFrom+` WHERE p.id = ?`, id)
	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("sqlstore: get pet: %w", err)
	}

	list := []pets.Pet{p}
	if err := loadTraits(ctx, c, list); err != nil {
		return pets.Pet{}, err
	}
	return list[0], nil
}

// loadTraits completa Traits de cada mascota con una sola query (ordenados por id).
func loadTraits(ctx context.Context, c conn, list []pets.Pet) error {
	if len(list) == 0 {
		return nil
	}

	idx := make(map[int64]int, len(list))
	args := make([]any, 0, len(list))
	for i, p := range list {
		idx[p.ID] = i
		args = append(args, p.ID)
	}

	rows, err := c.query(ctx, `
		SELECT pt.pet_id, t.id, t.name, t.created_at
		FROM pet_traits pt
		JOIN traits t ON t.id = pt.trait_id
		WHERE pt.pet_id IN (`+placeholders(len(args))+`)
		ORDER BY pt.pet_id ASC, t.id ASC
	`, args...)
	if err != nil {
		return fmt.Errorf("sqlstore: load traits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var petID int64
		var t traits.Trait
		if err := rows.Scan(&petID, &t.ID, &t.Name, &t.CreatedAt); err != nil {
			return fmt.Errorf("sqlstore: scan trait: %w", err)
		}
		i := idx[petID]
		list[i].Traits = append(list[i].Traits, t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("sqlstore: load traits: %w", err)
	}
	return nil
}
