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

const studentColumns = `s.id, s.first_name, s.last_name, s.email, s.password_hash, s.phone_number,
	s.is_mentor, s.group_id, s.avatar_id, a.avatar_link, s.reset_password_token,
	s.reset_password_expires, s.created_at, s.updated_at`

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row pgx.Row) (*model.Student, error) {
	s := &model.Student{}
	err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.PasswordHash, &s.PhoneNumber,
		&s.IsMentor, &s.GroupID, &s.AvatarID, &s.AvatarLink, &s.ResetPasswordToken,
		&s.ResetPasswordExpires, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return s, nil
}

// GetByID retrieves a student by ID with the avatar link joined.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM students s LEFT JOIN avatars a ON s.avatar_id = a.id
		 WHERE s.id = $1`, id,
	))
}

// GetByEmail retrieves a student by their unique email.
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM students s LEFT JOIN avatars a ON s.avatar_id = a.id
		 WHERE s.email = $1`, email,
	))
}

// GetByResetToken retrieves the student holding an outstanding reset token.
func (r *StudentRepository) GetByResetToken(ctx context.Context, token string) (*model.Student, error) {
	return scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM students s LEFT JOIN avatars a ON s.avatar_id = a.id
		 WHERE s.reset_password_token = $1`, token,
	))
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (first_name, last_name, email, password_hash, phone_number, group_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		s.FirstName, s.LastName, s.Email, s.PasswordHash, s.PhoneNumber, s.GroupID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// UpdateProfile applies the allow-listed profile fields inside a single
// transaction, attaching an avatar first when one is supplied. Returns the
// re-read record.
func (r *StudentRepository) UpdateProfile(ctx context.Context, id int, upd model.UpdateStudentRequest) (*model.Student, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if upd.Avatar != nil {
		if err := attachAvatar(ctx, tx, "students", id, upd.Avatar); err != nil {
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
	if upd.PhoneNumber != nil {
		add("phone_number", *upd.PhoneNumber)
	}

	args = append(args, id)
	tag, err := tx.Exec(ctx,
		`UPDATE students SET `+strings.Join(sets, ", ")+` WHERE id = $`+strconv.Itoa(len(args)),
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

	student, err := scanStudent(tx.QueryRow(ctx,
		`SELECT `+studentColumns+`
		 FROM students s LEFT JOIN avatars a ON s.avatar_id = a.id
		 WHERE s.id = $1`, id,
	))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdatePassword replaces the password hash. Any outstanding reset token is
// cleared and its expiry stamped to now.
func (r *StudentRepository) UpdatePassword(ctx context.Context, id int, passwordHash string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students
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
func (r *StudentRepository) SetResetToken(ctx context.Context, id int, token string, expires time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students
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

// Delete removes a student by ID.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListRefsByGroupIDs retrieves id/group projections for the given group ids.
// Used by the teacher report builder.
func (r *StudentRepository) ListRefsByGroupIDs(ctx context.Context, groupIDs []int) ([]model.StudentRef, error) {
	if len(groupIDs) == 0 {
		return []model.StudentRef{}, nil
	}

	ids := make([]int32, len(groupIDs))
	for i, id := range groupIDs {
		ids[i] = int32(id)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, group_id FROM students WHERE group_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []model.StudentRef
	for rows.Next() {
		var ref model.StudentRef
		if err := rows.Scan(&ref.ID, &ref.GroupID); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// ListByGroupID retrieves all students of one group.
func (r *StudentRepository) ListByGroupID(ctx context.Context, groupID int) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+`
		 FROM students s LEFT JOIN avatars a ON s.avatar_id = a.id
		 WHERE s.group_id = $1 ORDER BY s.last_name, s.first_name`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.PasswordHash, &s.PhoneNumber,
			&s.IsMentor, &s.GroupID, &s.AvatarID, &s.AvatarLink, &s.ResetPasswordToken,
			&s.ResetPasswordExpires, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}
