package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type studentFixture struct {
	svc      *StudentService
	teachers *fakeTeacherStore
	students *fakeStudentStore
	groups   *fakeGroupStore
}

func newStudentFixture() *studentFixture {
	teachers := newFakeTeacherStore()
	students := newFakeStudentStore()
	groups := newFakeGroupStore()
	accounts := &fakeAccounts{teachers: teachers, students: students}
	return &studentFixture{
		svc:      NewStudentService(testConfig(), students, groups, accounts),
		teachers: teachers,
		students: students,
		groups:   groups,
	}
}

func TestStudentCreateEnrollsViaGroupToken(t *testing.T) {
	f := newStudentFixture()
	group := f.groups.add(model.Group{GroupName: "Algebra", GroupToken: "join-me-1234"})

	created, err := f.svc.Create(context.Background(), model.CreateStudentRequest{
		FirstName:  "Eva",
		LastName:   "Toth",
		Email:      "eva@example.com",
		Password:   "secret123",
		GroupToken: "join-me-1234",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.GroupID == nil || *created.GroupID != group.ID {
		t.Fatalf("group id = %v, want %d", created.GroupID, group.ID)
	}
	if created.PasswordHash != "" {
		t.Fatal("password hash leaked on create")
	}
}

func TestStudentCreateUnknownGroupToken(t *testing.T) {
	f := newStudentFixture()

	_, err := f.svc.Create(context.Background(), model.CreateStudentRequest{
		FirstName:  "Eva",
		LastName:   "Toth",
		Email:      "eva@example.com",
		Password:   "secret123",
		GroupToken: "no-such-token",
	})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestStudentCreateRejectsEmailHeldByTeacher(t *testing.T) {
	f := newStudentFixture()
	f.groups.add(model.Group{GroupToken: "join-me-1234"})
	f.teachers.add(model.Teacher{Email: "taken@example.com"})

	_, err := f.svc.Create(context.Background(), model.CreateStudentRequest{
		FirstName:  "Eva",
		LastName:   "Toth",
		Email:      "taken@example.com",
		Password:   "secret123",
		GroupToken: "join-me-1234",
	})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}
}

func TestStudentUpdateSelfOnly(t *testing.T) {
	f := newStudentFixture()
	me := f.students.add(model.Student{FirstName: "Old", Email: "s@example.com"})

	first := "New"
	req := model.UpdateStudentRequest{FirstName: &first}

	if _, err := f.svc.Update(context.Background(), me.ID, req, model.AuthUser{ID: me.ID + 1}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("update by other student: got %v, want ErrPermissionDenied", err)
	}

	// There is no admin override for student profiles.
	if _, err := f.svc.Update(context.Background(), me.ID, req, model.AuthUser{ID: me.ID + 1, IsAdmin: true}); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("update by admin: got %v, want ErrPermissionDenied", err)
	}

	updated, err := f.svc.Update(context.Background(), me.ID, req, model.AuthUser{ID: me.ID})
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if updated.FirstName != "New" {
		t.Fatalf("first name = %q", updated.FirstName)
	}
}

func TestStudentUpdateEmailCollision(t *testing.T) {
	f := newStudentFixture()
	me := f.students.add(model.Student{Email: "me@example.com"})
	f.students.add(model.Student{Email: "other@example.com"})

	taken := "other@example.com"
	if _, err := f.svc.Update(context.Background(), me.ID, model.UpdateStudentRequest{Email: &taken}, model.AuthUser{ID: me.ID}); !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("got %v, want ErrDuplicateEmail", err)
	}

	same := "me@example.com"
	if _, err := f.svc.Update(context.Background(), me.ID, model.UpdateStudentRequest{Email: &same}, model.AuthUser{ID: me.ID}); err != nil {
		t.Fatalf("re-submitting own email: %v", err)
	}
}

func TestStudentUpdatePassword(t *testing.T) {
	f := newStudentFixture()
	me := f.students.add(model.Student{Email: "s@example.com", PasswordHash: mustHash(t, "oldpass")})

	err := f.svc.UpdatePassword(context.Background(), model.UpdatePasswordRequest{
		OldPassword: "wrongpass",
		NewPassword: "newpass1",
	}, model.AuthUser{ID: me.ID})
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("got %v, want ErrWrongPassword", err)
	}

	err = f.svc.UpdatePassword(context.Background(), model.UpdatePasswordRequest{
		OldPassword: "oldpass",
		NewPassword: "newpass1",
	}, model.AuthUser{ID: me.ID})
	if err != nil {
		t.Fatalf("update password: %v", err)
	}
	stored, _ := f.students.GetByID(context.Background(), me.ID)
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass1")) != nil {
		t.Fatal("new password does not verify")
	}
}

func TestStudentResetTokenRoundTrip(t *testing.T) {
	f := newStudentFixture()
	me := f.students.add(model.Student{Email: "s@example.com"})

	token, err := f.svc.IssueResetToken(context.Background(), "s@example.com")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if err := f.svc.ResetPassword(context.Background(), "newpass1", token); err != nil {
		t.Fatalf("reset password: %v", err)
	}
	stored, _ := f.students.GetByID(context.Background(), me.ID)
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass1")) != nil {
		t.Fatal("new password does not verify")
	}

	if err := f.svc.ResetPassword(context.Background(), "another1", token); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("second redemption: got %v, want ErrNotFound", err)
	}
}

func TestStudentResetTokenExpired(t *testing.T) {
	f := newStudentFixture()
	me := f.students.add(model.Student{Email: "s@example.com"})

	past := time.Now().Add(-time.Second)
	if err := f.students.SetResetToken(context.Background(), me.ID, "stale-token", past); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	if err := f.svc.ResetPassword(context.Background(), "newpass1", "stale-token"); !errors.Is(err, ErrResetTokenExpired) {
		t.Fatalf("got %v, want ErrResetTokenExpired", err)
	}
}

func TestStudentDeleteRequiresMentor(t *testing.T) {
	f := newStudentFixture()
	target := f.students.add(model.Student{Email: "s@example.com"})

	if err := f.svc.Delete(context.Background(), target.ID, model.AuthUser{ID: 2}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("delete by non-mentor: got %v, want ErrForbidden", err)
	}

	mentor := model.AuthUser{ID: 2, IsMentor: true}
	if err := f.svc.Delete(context.Background(), target.ID, mentor); err != nil {
		t.Fatalf("delete by mentor: %v", err)
	}
	if err := f.svc.Delete(context.Background(), target.ID, mentor); !errors.Is(err, ErrStudentNotFound) {
		t.Fatalf("delete missing student: got %v, want ErrStudentNotFound", err)
	}
}

func TestStudentListByGroupStripsHashes(t *testing.T) {
	f := newStudentFixture()
	group := f.groups.add(model.Group{GroupToken: "join-me-1234"})
	f.students.add(model.Student{Email: "a@example.com", PasswordHash: "hash-a", GroupID: &group.ID})
	f.students.add(model.Student{Email: "b@example.com", PasswordHash: "hash-b", GroupID: &group.ID})
	f.students.add(model.Student{Email: "c@example.com", PasswordHash: "hash-c"})

	members, err := f.svc.ListByGroupID(context.Background(), group.ID)
	if err != nil {
		t.Fatalf("list by group: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("members = %d, want 2", len(members))
	}
	for _, m := range members {
		if m.PasswordHash != "" {
			t.Fatal("password hash leaked in group listing")
		}
	}
}
