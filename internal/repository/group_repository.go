package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/mentorhub-backend/internal/model"
)

const groupColumns = `id, group_name, group_token, teacher_id, avatar_id, created_at, updated_at`

// GroupRepository handles group data access.
type GroupRepository struct {
	pool *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository.
func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

func scanGroup(row pgx.Row) (*model.Group, error) {
	g := &model.Group{}
	err := row.Scan(&g.ID, &g.GroupName, &g.GroupToken, &g.TeacherID, &g.AvatarID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return g, nil
}

// GetByID retrieves a group by its ID.
func (r *GroupRepository) GetByID(ctx context.Context, id int) (*model.Group, error) {
	return scanGroup(r.pool.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE id = $1`, id))
}

// GetByToken resolves an enrollment token to its group.
func (r *GroupRepository) GetByToken(ctx context.Context, token string) (*model.Group, error) {
	return scanGroup(r.pool.QueryRow(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE group_token = $1`, token))
}

// ListByTeacher retrieves all groups owned by one teacher.
func (r *GroupRepository) ListByTeacher(ctx context.Context, teacherID int) ([]model.Group, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+groupColumns+` FROM groups WHERE teacher_id = $1 ORDER BY group_name`, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectGroups(rows)
}

// ListRefs retrieves id/owner projections for all groups. Used by the
// teacher report builder.
func (r *GroupRepository) ListRefs(ctx context.Context) ([]model.GroupRef, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, teacher_id FROM groups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []model.GroupRef
	for rows.Next() {
		var ref model.GroupRef
		if err := rows.Scan(&ref.ID, &ref.TeacherID); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// Create inserts a new group.
func (r *GroupRepository) Create(ctx context.Context, g *model.Group) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO groups (group_name, group_token, teacher_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		g.GroupName, g.GroupToken, g.TeacherID,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateGroupToken
		}
		return err
	}
	return nil
}

// UpdateName renames a group.
func (r *GroupRepository) UpdateName(ctx context.Context, id int, name string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE groups SET group_name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		name, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a group by its ID. Member students fall back to a null
// group via the schema's ON DELETE SET NULL.
func (r *GroupRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectGroups(rows pgx.Rows) ([]model.Group, error) {
	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.GroupName, &g.GroupToken, &g.TeacherID, &g.AvatarID, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
