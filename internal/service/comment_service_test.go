package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
)

func newCommentFixture() (*CommentService, *fakeCommentStore, *fakeSolutionStore) {
	comments := newFakeCommentStore()
	solutions := newFakeSolutionStore()
	return NewCommentService(comments, solutions), comments, solutions
}

func TestCommentCreateSetsAuthorByRole(t *testing.T) {
	svc, _, solutions := newCommentFixture()
	solutions.solutions[10] = &model.Solution{ID: 10, TaskName: "homework-1"}

	req := model.CreateCommentRequest{SolutionID: 10, Text: "looks good"}

	asTeacher, err := svc.Create(context.Background(), req, model.AuthUser{ID: 7}, TokenTypeTeacher)
	if err != nil {
		t.Fatalf("create as teacher: %v", err)
	}
	if asTeacher.TeacherID == nil || *asTeacher.TeacherID != 7 {
		t.Fatalf("teacher author = %v, want 7", asTeacher.TeacherID)
	}
	if asTeacher.StudentID != nil {
		t.Fatal("teacher comment also carries a student author")
	}

	asStudent, err := svc.Create(context.Background(), req, model.AuthUser{ID: 3}, TokenTypeStudent)
	if err != nil {
		t.Fatalf("create as student: %v", err)
	}
	if asStudent.StudentID == nil || *asStudent.StudentID != 3 {
		t.Fatalf("student author = %v, want 3", asStudent.StudentID)
	}
	if asStudent.TeacherID != nil {
		t.Fatal("student comment also carries a teacher author")
	}
}

func TestCommentCreateMissingSolution(t *testing.T) {
	svc, _, _ := newCommentFixture()

	req := model.CreateCommentRequest{SolutionID: 404, Text: "orphan"}
	if _, err := svc.Create(context.Background(), req, model.AuthUser{ID: 1}, TokenTypeStudent); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestCommentListBySolution(t *testing.T) {
	svc, comments, solutions := newCommentFixture()
	solutions.solutions[10] = &model.Solution{ID: 10, TaskName: "homework-1"}
	solutions.solutions[11] = &model.Solution{ID: 11, TaskName: "homework-2"}

	for _, c := range []model.CreateCommentRequest{
		{SolutionID: 10, Text: "first"},
		{SolutionID: 10, Text: "second"},
		{SolutionID: 11, Text: "elsewhere"},
	} {
		if _, err := svc.Create(context.Background(), c, model.AuthUser{ID: 1}, TokenTypeStudent); err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}

	got, err := svc.ListBySolutionID(context.Background(), 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("comments = %d, want 2", len(got))
	}
	if len(comments.comments) != 3 {
		t.Fatalf("stored = %d, want 3", len(comments.comments))
	}

	if _, err := svc.ListBySolutionID(context.Background(), 0); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("got %v, want ErrInvalidID", err)
	}
}
