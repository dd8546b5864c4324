package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mentorhub/mentorhub-backend/internal/model"
)

// SolutionRepository handles solution data access.
type SolutionRepository struct {
	pool *pgxpool.Pool
}

// NewSolutionRepository creates a new SolutionRepository.
func NewSolutionRepository(pool *pgxpool.Pool) *SolutionRepository {
	return &SolutionRepository{pool: pool}
}

// GetByID retrieves a solution by ID.
func (r *SolutionRepository) GetByID(ctx context.Context, id int) (*model.Solution, error) {
	s := &model.Solution{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, task_name, student_id, created_at, updated_at
		 FROM solutions WHERE id = $1`, id,
	).Scan(&s.ID, &s.TaskName, &s.StudentID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return s, nil
}

// ListByStudentID retrieves a student's submissions, newest first.
func (r *SolutionRepository) ListByStudentID(ctx context.Context, studentID int) ([]model.Solution, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, task_name, student_id, created_at, updated_at
		 FROM solutions WHERE student_id = $1
		 ORDER BY created_at DESC`, studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solutions []model.Solution
	for rows.Next() {
		var s model.Solution
		if err := rows.Scan(&s.ID, &s.TaskName, &s.StudentID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		solutions = append(solutions, s)
	}
	return solutions, rows.Err()
}

// Create inserts a new solution.
func (r *SolutionRepository) Create(ctx context.Context, s *model.Solution) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO solutions (task_name, student_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		s.TaskName, s.StudentID,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}
