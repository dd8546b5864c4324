package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/mentorhub-backend/internal/model"
)

// CommentRepository handles comment data access.
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository.
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

// ListBySolutionID retrieves all comments on one solution, oldest first.
func (r *CommentRepository) ListBySolutionID(ctx context.Context, solutionID int) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, solution_id, student_id, teacher_id, text, created_at, updated_at
		 FROM comments WHERE solution_id = $1 ORDER BY created_at, id`, solutionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.SolutionID, &c.StudentID, &c.TeacherID, &c.Text, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Create inserts a new comment.
func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO comments (solution_id, student_id, teacher_id, text)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		c.SolutionID, c.StudentID, c.TeacherID, c.Text,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}
