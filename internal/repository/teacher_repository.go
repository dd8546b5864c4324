package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/mentorhub-backend/internal/model"
)

const teacherColumns = `t.id, t.first_name, t.last_name, t.email, t.password_hash, t.is_admin,
	t.avatar_id, a.avatar_link, t.reset_password_token, t.reset_password_expires,
	t.created_at, t.updated_at`

// TeacherRepository handles teacher data access.
type TeacherRepository struct {
	pool *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(pool *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{pool: pool}
}

func scanTeacher(row pgx.Row) (*model.Teacher, error) {
	t := &model.Teacher{}
	err := row.Scan(
		&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.PasswordHash, &t.IsAdmin,
		&t.AvatarID, &t.AvatarLink, &t.ResetPasswordToken, &t.ResetPasswordExpires,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return t, nil
}

// GetByID retrieves a teacher by ID with the avatar link joined.
func (r *TeacherRepository) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+`
		 FROM teachers t LEFT JOIN avatars a ON t.avatar_id = a.id
		 WHERE t.id = $1`, id,
	))
}

// GetByEmail retrieves a teacher by their unique email.
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+`
		 FROM teachers t LEFT JOIN avatars a ON t.avatar_id = a.id
		 WHERE t.email = $1`, email,
	))
}

// GetByResetToken retrieves the teacher holding an outstanding reset token.
func (r *TeacherRepository) GetByResetToken(ctx context.Context, token string) (*model.Teacher, error) {
	return scanTeacher(r.pool.QueryRow(ctx,
		`SELECT `+teacherColumns+`
		 FROM teachers t LEFT JOIN avatars a ON t.avatar_id = a.id
		 WHERE t.reset_password_token = $1`, token,
	))
}

// Count returns the total number of teachers.
func (r *TeacherRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&total)
	return total, err
}

// List retrieves a page of teachers ordered by creation time.
func (r *TeacherRepository) List(ctx context.Context, limit, offset int) ([]model.Teacher, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+teacherColumns+`
		 FROM teachers t LEFT JOIN avatars a ON t.avatar_id = a.id
		 ORDER BY t.created_at, t.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []model.Teacher
	for rows.Next() {
		var t model.Teacher
		if err := rows.Scan(
			&t.ID, &t.FirstName, &t.LastName, &t.Email, &t.PasswordHash, &t.IsAdmin,
			&t.AvatarID, &t.AvatarLink, &t.ResetPasswordToken, &t.ResetPasswordExpires,
			&t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, t)
	}
	return teachers, rows.Err()
}

// Create inserts a new teacher.
func (r *TeacherRepository) Create(ctx context.Context, t *model.Teacher) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO teachers (first_name, last_name, email, password_hash, is_admin)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		t.FirstName, t.LastName, t.Email, t.PasswordHash, t.IsAdmin,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// UpdateProfile applies the allow-listed profile fields inside a single
// transaction. When an avatar payload is present, the avatar row is inserted
// and attached first. Returns the re-read record.
func (r *TeacherRepository) UpdateProfile(ctx context.Context, id int, upd model.UpdateTeacherRequest) (*model.Teacher, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if upd.Avatar != nil {
		if err := attachAvatar(ctx, tx, "teachers", id, upd.Avatar); err != nil {
			return nil, err
		}
	}

	sets := []string{"updated_at = CURRENT_TIMESTAMP"}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if upd.FirstName != nil {
		add("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		add("last_name", *upd.LastName)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}

	args = append(args, id)
	tag, err := tx.Exec(ctx,
		`UPDATE teachers SET `+strings.Join(sets, ", ")+` WHERE id = $`+strconv.Itoa(len(args)),
		args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	teacher, err := scanTeacher(tx.QueryRow(ctx,
		`SELECT `+teacherColumns+`
		 FROM teachers t LEFT JOIN avatars a ON t.avatar_id = a.id
		 WHERE t.id = $1`, id,
	))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return teacher, nil
}

// UpdatePassword replaces the password hash. Any outstanding reset token is
// cleared and its expiry stamped to now.
func (r *TeacherRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE teachers
		 SET password_hash = $1, reset_password_token = NULL,
		     reset_password_expires = NOW(), updated_at = CURRENT_TIMESTAMP
		 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetResetToken stores a freshly issued password-reset token with its expiry.
func (r *TeacherRepository) SetResetToken(ctx context.Context, id int, token string, expires time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE teachers
		 SET reset_password_token = $1, reset_password_expires = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`, token, expires, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a teacher by ID.
func (r *TeacherRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
