package service

import (
	"context"

	"github.com/mentorhub/mentorhub-backend/internal/model"
)

// CommentService handles comments on solutions. The author reference is
// taken from the authenticated user: exactly one of student/teacher is set.
type CommentService struct {
	store     CommentStore
	solutions SolutionStore
}

// NewCommentService creates a new CommentService.
func NewCommentService(store CommentStore, solutions SolutionStore) *CommentService {
	return &CommentService{store: store, solutions: solutions}
}

// ListBySolutionID retrieves all comments on one solution.
func (s *CommentService) ListBySolutionID(ctx context.Context, solutionID int) ([]model.Comment, error) {
	if solutionID <= 0 {
		return nil, ErrInvalidID
	}
	return s.store.ListBySolutionID(ctx, solutionID)
}

// Create attaches a comment to a solution, recording whichever of
// student/teacher authored it. Fails when the solution does not exist.
func (s *CommentService) Create(ctx context.Context, req model.CreateCommentRequest, acting model.AuthUser, role TokenType) (*model.Comment, error) {
	if _, err := s.solutions.GetByID(ctx, req.SolutionID); err != nil {
		return nil, err
	}

	authorID := acting.ID
	comment := &model.Comment{
		SolutionID: &req.SolutionID,
		Text:       req.Text,
	}
	if role == TokenTypeTeacher {
		comment.TeacherID = &authorID
	} else {
		comment.StudentID = &authorID
	}

	if err := s.store.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
