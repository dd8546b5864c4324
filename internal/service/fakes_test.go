package service

import (
	"context"
	"time"

	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
)

// In-memory store fakes for exercising the services without a database.
// They reproduce the repository contracts the services rely on: not-found
// sentinels, reset-token clearing on password writes, and allow-listed
// profile updates.

type fakeTeacherStore struct {
	nextID   int
	teachers map[int]*model.Teacher
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{nextID: 1, teachers: make(map[int]*model.Teacher)}
}

func (f *fakeTeacherStore) add(t model.Teacher) *model.Teacher {
	if t.ID == 0 {
		t.ID = f.nextID
	}
	if t.ID >= f.nextID {
		f.nextID = t.ID + 1
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.teachers[t.ID] = &t
	return &t
}

func (f *fakeTeacherStore) GetByID(_ context.Context, id int) (*model.Teacher, error) {
	if t, ok := f.teachers[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeacherStore) GetByEmail(_ context.Context, email string) (*model.Teacher, error) {
	for _, t := range f.teachers {
		if t.Email == email {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeacherStore) GetByResetToken(_ context.Context, token string) (*model.Teacher, error) {
	for _, t := range f.teachers {
		if t.ResetPasswordToken != nil && *t.ResetPasswordToken == token {
			copied := *t
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTeacherStore) Count(_ context.Context) (int, error) {
	return len(f.teachers), nil
}

func (f *fakeTeacherStore) List(_ context.Context, limit, offset int) ([]model.Teacher, error) {
	var out []model.Teacher
	for id := 1; id < f.nextID; id++ {
		if t, ok := f.teachers[id]; ok {
			out = append(out, *t)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeTeacherStore) Create(_ context.Context, t *model.Teacher) error {
	for _, existing := range f.teachers {
		if existing.Email == t.Email {
			return repository.ErrDuplicateEmail
		}
	}
	created := f.add(*t)
	*t = *created
	return nil
}

func (f *fakeTeacherStore) UpdateProfile(_ context.Context, id int, upd model.UpdateTeacherRequest) (*model.Teacher, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.FirstName != nil {
		t.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		t.LastName = *upd.LastName
	}
	if upd.Email != nil {
		t.Email = *upd.Email
	}
	if upd.Avatar != nil {
		link := upd.Avatar.Link
		t.AvatarLink = &link
	}
	t.UpdatedAt = time.Now()
	copied := *t
	return &copied, nil
}

func (f *fakeTeacherStore) UpdatePassword(_ context.Context, id int, hash string) error {
	t, ok := f.teachers[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	t.PasswordHash = hash
	t.ResetPasswordToken = nil
	t.ResetPasswordExpires = &now
	return nil
}

func (f *fakeTeacherStore) SetResetToken(_ context.Context, id int, token string, expires time.Time) error {
	t, ok := f.teachers[id]
	if !ok {
		return repository.ErrNotFound
	}
	t.ResetPasswordToken = &token
	t.ResetPasswordExpires = &expires
	return nil
}

func (f *fakeTeacherStore) Delete(_ context.Context, id int) error {
	if _, ok := f.teachers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.teachers, id)
	return nil
}

type fakeStudentStore struct {
	nextID   int
	students map[int]*model.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{nextID: 1, students: make(map[int]*model.Student)}
}

func (f *fakeStudentStore) add(s model.Student) *model.Student {
	if s.ID == 0 {
		s.ID = f.nextID
	}
	if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	f.students[s.ID] = &s
	return &s
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int) (*model.Student, error) {
	if s, ok := f.students[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudentStore) GetByResetToken(_ context.Context, token string) (*model.Student, error) {
	for _, s := range f.students {
		if s.ResetPasswordToken != nil && *s.ResetPasswordToken == token {
			copied := *s
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStudentStore) Create(_ context.Context, s *model.Student) error {
	for _, existing := range f.students {
		if existing.Email == s.Email {
			return repository.ErrDuplicateEmail
		}
	}
	created := f.add(*s)
	*s = *created
	return nil
}

func (f *fakeStudentStore) UpdateProfile(_ context.Context, id int, upd model.UpdateStudentRequest) (*model.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.FirstName != nil {
		s.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		s.LastName = *upd.LastName
	}
	if upd.Email != nil {
		s.Email = *upd.Email
	}
	if upd.PhoneNumber != nil {
		s.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Avatar != nil {
		link := upd.Avatar.Link
		s.AvatarLink = &link
	}
	s.UpdatedAt = time.Now()
	copied := *s
	return &copied, nil
}

func (f *fakeStudentStore) UpdatePassword(_ context.Context, id int, hash string) error {
	s, ok := f.students[id]
	if !ok {
		return repository.ErrNotFound
	}
	now := time.Now()
	s.PasswordHash = hash
	s.ResetPasswordToken = nil
	s.ResetPasswordExpires = &now
	return nil
}

func (f *fakeStudentStore) SetResetToken(_ context.Context, id int, token string, expires time.Time) error {
	s, ok := f.students[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.ResetPasswordToken = &token
	s.ResetPasswordExpires = &expires
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int) error {
	if _, ok := f.students[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.students, id)
	return nil
}

func (f *fakeStudentStore) ListRefsByGroupIDs(_ context.Context, groupIDs []int) ([]model.StudentRef, error) {
	wanted := make(map[int]bool, len(groupIDs))
	for _, id := range groupIDs {
		wanted[id] = true
	}
	var refs []model.StudentRef
	for _, s := range f.students {
		if s.GroupID != nil && wanted[*s.GroupID] {
			refs = append(refs, model.StudentRef{ID: s.ID, GroupID: s.GroupID})
		}
	}
	return refs, nil
}

func (f *fakeStudentStore) ListByGroupID(_ context.Context, groupID int) ([]model.Student, error) {
	var out []model.Student
	for _, s := range f.students {
		if s.GroupID != nil && *s.GroupID == groupID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeGroupStore struct {
	nextID int
	groups map[int]*model.Group
}

func newFakeGroupStore() *fakeGroupStore {
	return &fakeGroupStore{nextID: 1, groups: make(map[int]*model.Group)}
}

func (f *fakeGroupStore) add(g model.Group) *model.Group {
	if g.ID == 0 {
		g.ID = f.nextID
	}
	if g.ID >= f.nextID {
		f.nextID = g.ID + 1
	}
	f.groups[g.ID] = &g
	return &g
}

func (f *fakeGroupStore) GetByID(_ context.Context, id int) (*model.Group, error) {
	if g, ok := f.groups[id]; ok {
		copied := *g
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeGroupStore) GetByToken(_ context.Context, token string) (*model.Group, error) {
	for _, g := range f.groups {
		if g.GroupToken == token {
			copied := *g
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeGroupStore) ListByTeacher(_ context.Context, teacherID int) ([]model.Group, error) {
	var out []model.Group
	for _, g := range f.groups {
		if g.TeacherID != nil && *g.TeacherID == teacherID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGroupStore) ListRefs(_ context.Context) ([]model.GroupRef, error) {
	var refs []model.GroupRef
	for _, g := range f.groups {
		refs = append(refs, model.GroupRef{ID: g.ID, TeacherID: g.TeacherID})
	}
	return refs, nil
}

func (f *fakeGroupStore) Create(_ context.Context, g *model.Group) error {
	for _, existing := range f.groups {
		if existing.GroupToken == g.GroupToken {
			return repository.ErrDuplicateGroupToken
		}
	}
	created := f.add(*g)
	*g = *created
	return nil
}

func (f *fakeGroupStore) UpdateName(_ context.Context, id int, name string) error {
	g, ok := f.groups[id]
	if !ok {
		return repository.ErrNotFound
	}
	g.GroupName = name
	return nil
}

func (f *fakeGroupStore) Delete(_ context.Context, id int) error {
	if _, ok := f.groups[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.groups, id)
	return nil
}

type fakeCommentStore struct {
	nextID   int
	comments []model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{nextID: 1}
}

func (f *fakeCommentStore) ListBySolutionID(_ context.Context, solutionID int) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range f.comments {
		if c.SolutionID != nil && *c.SolutionID == solutionID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Create(_ context.Context, c *model.Comment) error {
	c.ID = f.nextID
	f.nextID++
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	f.comments = append(f.comments, *c)
	return nil
}

type fakeSolutionStore struct {
	nextID    int
	solutions map[int]*model.Solution
}

func newFakeSolutionStore() *fakeSolutionStore {
	return &fakeSolutionStore{nextID: 1, solutions: make(map[int]*model.Solution)}
}

func (f *fakeSolutionStore) GetByID(_ context.Context, id int) (*model.Solution, error) {
	if s, ok := f.solutions[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeSolutionStore) ListByStudentID(_ context.Context, studentID int) ([]model.Solution, error) {
	var out []model.Solution
	for _, s := range f.solutions {
		if s.StudentID != nil && *s.StudentID == studentID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSolutionStore) Create(_ context.Context, s *model.Solution) error {
	if s.ID == 0 {
		s.ID = f.nextID
	}
	if s.ID >= f.nextID {
		f.nextID = s.ID + 1
	}
	s.CreatedAt = time.Now()
	s.UpdatedAt = s.CreatedAt
	copied := *s
	f.solutions[s.ID] = &copied
	return nil
}

// fakeAccounts implements AccountLookup over the two store fakes.
type fakeAccounts struct {
	teachers *fakeTeacherStore
	students *fakeStudentStore
}

func (f *fakeAccounts) TeacherEmailInUse(_ context.Context, email string, excludeID int) (bool, error) {
	for _, t := range f.teachers.teachers {
		if t.Email == email && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAccounts) StudentEmailInUse(_ context.Context, email string, excludeID int) (bool, error) {
	for _, s := range f.students.students {
		if s.Email == email && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
