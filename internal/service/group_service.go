package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mentorhub/mentorhub-backend/internal/model"
)

// GroupService handles group business logic. All mutating operations are
// scoped to the owning teacher; admins may act on any group.
type GroupService struct {
	store GroupStore
}

// NewGroupService creates a new GroupService.
func NewGroupService(store GroupStore) *GroupService {
	return &GroupService{store: store}
}

// Create opens a new group owned by the acting teacher. The join token is
// generated here and never accepted from the payload.
func (s *GroupService) Create(ctx context.Context, req model.CreateGroupRequest, acting model.AuthUser) (*model.Group, error) {
	ownerID := acting.ID
	group := &model.Group{
		GroupName:  req.GroupName,
		GroupToken: uuid.New().String(),
		TeacherID:  &ownerID,
	}
	if err := s.store.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// Get retrieves one group, enforcing ownership.
func (s *GroupService) Get(ctx context.Context, id int, acting model.AuthUser) (*model.Group, error) {
	group, err := s.getOwned(ctx, id, acting)
	if err != nil {
		return nil, err
	}
	return group, nil
}

// GetByToken resolves an enrollment token to its group.
func (s *GroupService) GetByToken(ctx context.Context, token string) (*model.Group, error) {
	return s.store.GetByToken(ctx, token)
}

// Update renames a group, enforcing ownership. Returns the re-read record.
func (s *GroupService) Update(ctx context.Context, id int, req model.UpdateGroupRequest, acting model.AuthUser) (*model.Group, error) {
	group, err := s.getOwned(ctx, id, acting)
	if err != nil {
		return nil, err
	}

	if req.GroupName == nil || *req.GroupName == group.GroupName {
		return group, nil
	}
	if err := s.store.UpdateName(ctx, id, *req.GroupName); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, id)
}

// Delete removes a group, enforcing ownership. Member students fall back to
// a null group via ON DELETE SET NULL.
func (s *GroupService) Delete(ctx context.Context, id int, acting model.AuthUser) error {
	if _, err := s.getOwned(ctx, id, acting); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// ListForTeacher retrieves the acting teacher's groups.
func (s *GroupService) ListForTeacher(ctx context.Context, acting model.AuthUser) ([]model.Group, error) {
	return s.store.ListByTeacher(ctx, acting.ID)
}

func (s *GroupService) getOwned(ctx context.Context, id int, acting model.AuthUser) (*model.Group, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	group, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !acting.IsAdmin && (group.TeacherID == nil || *group.TeacherID != acting.ID) {
		return nil, ErrPermissionDenied
	}
	return group, nil
}
