package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mentorhub/mentorhub-backend/internal/model"
)

func TestSolutionCreateBindsSubmitter(t *testing.T) {
	store := newFakeSolutionStore()
	svc := NewSolutionService(store)

	created, err := svc.Create(context.Background(), model.CreateSolutionRequest{TaskName: "homework-1"}, model.AuthUser{ID: 5})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.StudentID == nil || *created.StudentID != 5 {
		t.Fatalf("student id = %v, want 5", created.StudentID)
	}

	mine, err := svc.ListMine(context.Background(), model.AuthUser{ID: 5})
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 || mine[0].TaskName != "homework-1" {
		t.Fatalf("mine = %+v", mine)
	}

	theirs, err := svc.ListMine(context.Background(), model.AuthUser{ID: 6})
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(theirs) != 0 {
		t.Fatalf("other student sees %d submissions", len(theirs))
	}
}

func TestSolutionGetInvalidID(t *testing.T) {
	svc := NewSolutionService(newFakeSolutionStore())
	if _, err := svc.GetByID(context.Background(), 0); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("got %v, want ErrInvalidID", err)
	}
}
