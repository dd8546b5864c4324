package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mentorhub/mentorhub-backend/internal/model"
	"github.com/mentorhub/mentorhub-backend/internal/repository"
)

func TestGroupCreateGeneratesToken(t *testing.T) {
	store := newFakeGroupStore()
	svc := NewGroupService(store)

	g1, err := svc.Create(context.Background(), model.CreateGroupRequest{GroupName: "Algebra"}, regular(3))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if g1.GroupToken == "" {
		t.Fatal("no join token generated")
	}
	if g1.TeacherID == nil || *g1.TeacherID != 3 {
		t.Fatalf("owner = %v, want 3", g1.TeacherID)
	}

	g2, err := svc.Create(context.Background(), model.CreateGroupRequest{GroupName: "Geometry"}, regular(3))
	if err != nil {
		t.Fatalf("create second: %v", err)
	}
	if g1.GroupToken == g2.GroupToken {
		t.Fatal("join tokens collide")
	}
}

func TestGroupOwnershipEnforced(t *testing.T) {
	store := newFakeGroupStore()
	svc := NewGroupService(store)
	owner := 3
	group := store.add(model.Group{GroupName: "Algebra", GroupToken: "tok-a", TeacherID: &owner})

	if _, err := svc.Get(context.Background(), group.ID, regular(4)); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("get by non-owner: got %v, want ErrPermissionDenied", err)
	}
	if _, err := svc.Get(context.Background(), group.ID, regular(owner)); err != nil {
		t.Fatalf("get by owner: %v", err)
	}
	if _, err := svc.Get(context.Background(), group.ID, admin(9)); err != nil {
		t.Fatalf("get by admin: %v", err)
	}
}

func TestGroupUpdateRename(t *testing.T) {
	store := newFakeGroupStore()
	svc := NewGroupService(store)
	owner := 3
	group := store.add(model.Group{GroupName: "Algebra", GroupToken: "tok-a", TeacherID: &owner})

	name := "Algebra II"
	updated, err := svc.Update(context.Background(), group.ID, model.UpdateGroupRequest{GroupName: &name}, regular(owner))
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if updated.GroupName != "Algebra II" {
		t.Fatalf("name = %q", updated.GroupName)
	}
	if updated.GroupToken != "tok-a" {
		t.Fatal("rename touched the join token")
	}

	if _, err := svc.Update(context.Background(), group.ID, model.UpdateGroupRequest{GroupName: &name}, regular(owner+1)); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("rename by non-owner: got %v, want ErrPermissionDenied", err)
	}
}

func TestGroupDelete(t *testing.T) {
	store := newFakeGroupStore()
	svc := NewGroupService(store)
	owner := 3
	group := store.add(model.Group{GroupName: "Algebra", GroupToken: "tok-a", TeacherID: &owner})

	if err := svc.Delete(context.Background(), group.ID, regular(owner+1)); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("delete by non-owner: got %v, want ErrPermissionDenied", err)
	}
	if err := svc.Delete(context.Background(), group.ID, regular(owner)); err != nil {
		t.Fatalf("delete by owner: %v", err)
	}
	if _, err := store.GetByID(context.Background(), group.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatal("group still present after delete")
	}
}

func TestGroupInvalidID(t *testing.T) {
	svc := NewGroupService(newFakeGroupStore())

	if _, err := svc.Get(context.Background(), 0, admin(1)); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("got %v, want ErrInvalidID", err)
	}
	if err := svc.Delete(context.Background(), -4, admin(1)); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("got %v, want ErrInvalidID", err)
	}
}

func TestGroupGetByToken(t *testing.T) {
	store := newFakeGroupStore()
	svc := NewGroupService(store)
	store.add(model.Group{GroupName: "Algebra", GroupToken: "tok-a"})

	group, err := svc.GetByToken(context.Background(), "tok-a")
	if err != nil {
		t.Fatalf("get by token: %v", err)
	}
	if group.GroupName != "Algebra" {
		t.Fatalf("name = %q", group.GroupName)
	}
	if _, err := svc.GetByToken(context.Background(), "tok-missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
