package service

import (
	"context"

	"github.com/mentorhub/mentorhub-backend/internal/model"
)

// SolutionService handles solution submissions. A solution always belongs to
// the student who submitted it.
type SolutionService struct {
	store SolutionStore
}

// NewSolutionService creates a new SolutionService.
func NewSolutionService(store SolutionStore) *SolutionService {
	return &SolutionService{store: store}
}

// Create records a submission for the acting student.
func (s *SolutionService) Create(ctx context.Context, req model.CreateSolutionRequest, acting model.AuthUser) (*model.Solution, error) {
	studentID := acting.ID
	solution := &model.Solution{
		TaskName:  req.TaskName,
		StudentID: &studentID,
	}
	if err := s.store.Create(ctx, solution); err != nil {
		return nil, err
	}
	return solution, nil
}

// GetByID retrieves a solution by ID.
func (s *SolutionService) GetByID(ctx context.Context, id int) (*model.Solution, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.store.GetByID(ctx, id)
}

// ListMine retrieves the acting student's submissions.
func (s *SolutionService) ListMine(ctx context.Context, acting model.AuthUser) ([]model.Solution, error) {
	return s.store.ListByStudentID(ctx, acting.ID)
}
