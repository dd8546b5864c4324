package service

import (
	"context"
	"errors"
	"time"

	"github.com/mentorhub/mentorhub-backend/internal/config"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// StudentService handles student business logic: self-registration via group
// tokens, profile updates, password flows, and group projections.
type StudentService struct {
	cfg      *config.Config
	store    StudentStore
	groups   GroupStore
	accounts AccountLookup
}

// NewStudentService creates a new StudentService.
func NewStudentService(cfg *config.Config, store StudentStore, groups GroupStore, accounts AccountLookup) *StudentService {
	return &StudentService{cfg: cfg, store: store, groups: groups, accounts: accounts}
}

// Create registers a new student. The email must be unused across both
// teachers and students, and the group token must resolve to an existing
// group; the student is enrolled into that group.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	if err := s.checkEmailFree(ctx, req.Email, 0, 0); err != nil {
		return nil, err
	}

	group, err := s.groups.GetByToken(ctx, req.GroupToken)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	student := &model.Student{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		GroupID:      &group.ID,
	}
	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}

	student.PasswordHash = ""
	return student, nil
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.store.GetByID(ctx, id)
}

// GetByEmail retrieves a student by email.
func (s *StudentService) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	return s.store.GetByEmail(ctx, email)
}

// Update applies a profile update. A student may only edit their own
// profile; there is no admin override on the student side.
func (s *StudentService) Update(ctx context.Context, id int, req model.UpdateStudentRequest, acting model.AuthUser) (*model.Student, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if id != acting.ID {
		return nil, ErrPermissionDenied
	}

	if req.Email != nil {
		if err := s.checkEmailFree(ctx, *req.Email, 0, id); err != nil {
			return nil, err
		}
	}

	return s.store.UpdateProfile(ctx, id, req)
}

// UpdatePassword replaces the acting student's password after verifying the
// old one. Any outstanding reset token is invalidated with the write.
func (s *StudentService) UpdatePassword(ctx context.Context, req model.UpdatePasswordRequest, acting model.AuthUser) error {
	student, err := s.store.GetByID(ctx, acting.ID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(student.PasswordHash), []byte(req.OldPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, acting.ID, string(hash))
}

// IssueResetToken generates a reset token for the account behind email and
// stores it with the configured validity window.
func (s *StudentService) IssueResetToken(ctx context.Context, email string) (string, error) {
	student, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := GenerateResetToken()
	if err != nil {
		return "", err
	}

	expires := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.store.SetResetToken(ctx, student.ID, token, expires); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword redeems a reset token. Single use, expiry enforced.
func (s *StudentService) ResetPassword(ctx context.Context, password, token string) error {
	student, err := s.store.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}

	if student.ResetPasswordExpires != nil && time.Now().After(*student.ResetPasswordExpires) {
		return ErrResetTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, student.ID, string(hash))
}

// Delete removes a student. Mentors only; a missing student is a bad
// request, not a not-found, to match the enrollment-facing API shape.
func (s *StudentService) Delete(ctx context.Context, id int, acting model.AuthUser) error {
	if !acting.IsMentor {
		return ErrForbidden
	}
	if id <= 0 {
		return ErrInvalidID
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStudentNotFound
		}
		return err
	}
	return nil
}

// ListRefsByGroupIDs retrieves id/group projections for teacher-side
// reporting.
func (s *StudentService) ListRefsByGroupIDs(ctx context.Context, groupIDs []int) ([]model.StudentRef, error) {
	return s.store.ListRefsByGroupIDs(ctx, groupIDs)
}

// ListByGroupID retrieves the members of one group.
func (s *StudentService) ListByGroupID(ctx context.Context, groupID int) ([]model.Student, error) {
	if groupID <= 0 {
		return nil, ErrInvalidID
	}
	students, err := s.store.ListByGroupID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	for i := range students {
		students[i].PasswordHash = ""
	}
	return students, nil
}

func (s *StudentService) checkEmailFree(ctx context.Context, email string, excludeTeacher, excludeStudent int) error {
	inUse, err := s.accounts.TeacherEmailInUse(ctx, email, excludeTeacher)
	if err != nil {
		return err
	}
	if !inUse {
		inUse, err = s.accounts.StudentEmailInUse(ctx, email, excludeStudent)
		if err != nil {
			return err
		}
	}
	if inUse {
		return repository.ErrDuplicateEmail
	}
	return nil
}
