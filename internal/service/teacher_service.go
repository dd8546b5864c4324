package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mentorhub/mentorhub-backend/internal/config"
	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/pagination"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
	"github.com/mentorhub/mentorhub-backend/internal/response"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// reportCacheTTL bounds staleness of the cached teacher listing.
const reportCacheTTL = 30 * time.Second

// TeacherService handles teacher business logic: account lifecycle, password
// flows, and the group/student count report.
type TeacherService struct {
	cfg      *config.Config
	store    TeacherStore
	students StudentStore
	groups   GroupStore
	accounts AccountLookup
	cache    *redis.Client // optional; nil disables report caching
}

// NewTeacherService creates a new TeacherService.
func NewTeacherService(
	cfg *config.Config,
	store TeacherStore,
	students StudentStore,
	groups GroupStore,
	accounts AccountLookup,
	cache *redis.Client,
) *TeacherService {
	return &TeacherService{
		cfg:      cfg,
		store:    store,
		students: students,
		groups:   groups,
		accounts: accounts,
		cache:    cache,
	}
}

// Create registers a new teacher. Only admins may create teachers; the
// payload's is_admin flag is honored on this admin-driven path. The email
// must be unused across both teachers and students.
func (s *TeacherService) Create(ctx context.Context, req model.CreateTeacherRequest, acting model.AuthUser) (*model.Teacher, error) {
	if !acting.IsAdmin {
		return nil, ErrPermissionDenied
	}

	if err := s.checkEmailFree(ctx, req.Email, 0, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	teacher := &model.Teacher{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		IsAdmin:      req.IsAdmin,
	}
	if err := s.store.Create(ctx, teacher); err != nil {
		return nil, err
	}

	teacher.PasswordHash = ""
	return teacher, nil
}

// GetByID retrieves a teacher by ID.
func (s *TeacherService) GetByID(ctx context.Context, id int) (*model.Teacher, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.store.GetByID(ctx, id)
}

// GetByEmail retrieves a teacher by email.
func (s *TeacherService) GetByEmail(ctx context.Context, email string) (*model.Teacher, error) {
	return s.store.GetByEmail(ctx, email)
}

// Update applies a profile update. Teachers may edit their own profile;
// admins may edit anyone's. An email change must not collide with any
// existing account.
func (s *TeacherService) Update(ctx context.Context, id int, req model.UpdateTeacherRequest, acting model.AuthUser) (*model.Teacher, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	if id != acting.ID && !acting.IsAdmin {
		return nil, ErrPermissionDenied
	}

	if req.Email != nil {
		if err := s.checkEmailFree(ctx, *req.Email, id, 0); err != nil {
			return nil, err
		}
	}

	return s.store.UpdateProfile(ctx, id, req)
}

// UpdatePassword replaces the acting teacher's password after verifying the
// old one.
func (s *TeacherService) UpdatePassword(ctx context.Context, req model.UpdatePasswordRequest, acting model.AuthUser) error {
	teacher, err := s.store.GetByID(ctx, acting.ID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(teacher.PasswordHash), []byte(req.OldPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, acting.ID, string(hash))
}

// AdminSetPassword replaces another teacher's password without verifying the
// old one. Admin only.
func (s *TeacherService) AdminSetPassword(ctx context.Context, id int, newPassword string, acting model.AuthUser) error {
	if !acting.IsAdmin {
		return ErrPermissionDenied
	}
	if id <= 0 {
		return ErrInvalidID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, id, string(hash))
}

// IssueResetToken generates a reset token for the account behind email and
// stores it with the configured validity window. Returns the token for
// delivery.
func (s *TeacherService) IssueResetToken(ctx context.Context, email string) (string, error) {
	teacher, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := GenerateResetToken()
	if err != nil {
		return "", err
	}

	expires := time.Now().Add(s.cfg.ResetTokenTTL)
	if err := s.store.SetResetToken(ctx, teacher.ID, token, expires); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword redeems a reset token. The token is single use: storing the
// new hash clears it and stamps its expiry to now. Expired tokens are
// rejected.
func (s *TeacherService) ResetPassword(ctx context.Context, password, token string) error {
	teacher, err := s.store.GetByResetToken(ctx, token)
	if err != nil {
		return err
	}

	if teacher.ResetPasswordExpires != nil && time.Now().After(*teacher.ResetPasswordExpires) {
		return ErrResetTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, teacher.ID, string(hash))
}

// Delete removes a teacher. Admin only; the owned groups fall back to a null
// owner via the schema's ON DELETE SET NULL.
func (s *TeacherService) Delete(ctx context.Context, id int, acting model.AuthUser) error {
	if !acting.IsAdmin {
		return ErrPermissionDenied
	}
	if id <= 0 {
		return ErrInvalidID
	}
	return s.store.Delete(ctx, id)
}

// teacherReport is the cached shape of one listing page.
type teacherReport struct {
	Teachers   []model.TeacherWithCounts `json:"teachers"`
	Pagination response.Pagination       `json:"pagination"`
}

// List retrieves a page of teachers, each decorated with the count of groups
// it owns and the total students across those groups. The counts are built
// with a single grouping pass over id projections, and pages are cached
// briefly in Redis.
func (s *TeacherService) List(ctx context.Context, page, limit int) ([]model.TeacherWithCounts, *response.Pagination, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if page < 1 {
		page = 1
	}

	cacheKey := config.CacheKey.TeacherReportKey(page, limit)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, cacheKey).Bytes(); err == nil {
			var cached teacherReport
			if json.Unmarshal(raw, &cached) == nil {
				return cached.Teachers, &cached.Pagination, nil
			}
		}
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	off := pagination.GetOffset(page, limit, total)
	teachers, err := s.store.List(ctx, limit, off.Offset)
	if err != nil {
		return nil, nil, err
	}

	report, err := s.buildReport(ctx, teachers)
	if err != nil {
		return nil, nil, err
	}

	pg := &response.Pagination{
		Page:       off.ActualPage,
		PerPage:    limit,
		TotalItems: total,
		TotalPages: (total + limit - 1) / limit,
	}

	if s.cache != nil {
		if raw, err := json.Marshal(teacherReport{Teachers: report, Pagination: *pg}); err == nil {
			s.cache.Set(ctx, cacheKey, raw, reportCacheTTL)
		}
	}

	return report, pg, nil
}

// buildReport decorates the page's teachers with group and student counts.
// One pass over the group projections buckets groups by owner; one pass over
// the student projections counts members per group.
func (s *TeacherService) buildReport(ctx context.Context, teachers []model.Teacher) ([]model.TeacherWithCounts, error) {
	groupRefs, err := s.groups.ListRefs(ctx)
	if err != nil {
		return nil, err
	}

	onPage := make(map[int]bool, len(teachers))
	for _, t := range teachers {
		onPage[t.ID] = true
	}

	groupsByTeacher := make(map[int][]int)
	var groupIDs []int
	for _, g := range groupRefs {
		if g.TeacherID == nil || !onPage[*g.TeacherID] {
			continue
		}
		groupsByTeacher[*g.TeacherID] = append(groupsByTeacher[*g.TeacherID], g.ID)
		groupIDs = append(groupIDs, g.ID)
	}

	studentRefs, err := s.students.ListRefsByGroupIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}

	studentsPerGroup := make(map[int]int, len(groupIDs))
	for _, ref := range studentRefs {
		if ref.GroupID != nil {
			studentsPerGroup[*ref.GroupID]++
		}
	}

	report := make([]model.TeacherWithCounts, 0, len(teachers))
	for _, t := range teachers {
		t.PasswordHash = ""
		row := model.TeacherWithCounts{Teacher: t}
		for _, gid := range groupsByTeacher[t.ID] {
			row.StudentsCount += studentsPerGroup[gid]
		}
		row.GroupsCount = len(groupsByTeacher[t.ID])
		report = append(report, row)
	}
	return report, nil
}

// checkEmailFree fails with the duplicate sentinel when the email is held by
// any teacher (other than excludeTeacher) or student (other than
// excludeStudent).
func (s *TeacherService) checkEmailFree(ctx context.Context, email string, excludeTeacher, excludeStudent int) error {
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

// IsNotFound reports whether err is the repositories' missing-record
// sentinel. Convenience for handlers.
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}
