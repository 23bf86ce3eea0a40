package service

import (
	"context"
	"errors"
	"testing"

	"quill/internal/models"
)

func TestProfileServiceStats(t *testing.T) {
	userRepo := namedUserRepo(7, "ada")

	postRepo := noopPostRepo()
	postRepo.countByAuthorFn = func(_ context.Context, authorID uint) (int64, error) {
		if authorID != 7 {
			t.Fatalf("expected post count for user 7, got %d", authorID)
		}
		return 12, nil
	}

	followRepo := noopFollowRepo()
	followRepo.countFollowersFn = func(context.Context, uint) (int64, error) { return 3, nil }
	followRepo.countFollowingFn = func(context.Context, uint) (int64, error) { return 5, nil }
	followRepo.existsFn = func(_ context.Context, followerID, followedID uint) (bool, error) {
		return followerID == 2 && followedID == 7, nil
	}

	svc := NewProfileService(userRepo, postRepo, followRepo)

	stats, err := svc.Stats(context.Background(), "ada", 2)
	if err != nil {
		t.Fatal(err)
	}
	if stats.PostCount != 12 || stats.FollowerCount != 3 || stats.FollowingCount != 5 {
		t.Fatalf("unexpected counts: %#v", stats)
	}
	if !stats.IsFollowing {
		t.Fatal("expected visitor 2 to be following ada")
	}
	if stats.IsVisitorsProfile {
		t.Fatal("visitor 2 is not ada")
	}
}

func TestProfileServiceStatsOwnProfile(t *testing.T) {
	followRepo := noopFollowRepo()
	followRepo.existsFn = func(context.Context, uint, uint) (bool, error) {
		t.Fatal("no follow check against yourself")
		return false, nil
	}
	svc := NewProfileService(namedUserRepo(7, "ada"), noopPostRepo(), followRepo)

	stats, err := svc.Stats(context.Background(), "ada", 7)
	if err != nil {
		t.Fatal(err)
	}
	if !stats.IsVisitorsProfile {
		t.Fatal("expected IsVisitorsProfile for the owner")
	}
	if stats.IsFollowing {
		t.Fatal("a user never follows themselves")
	}
}

func TestProfileServiceStatsAnonymous(t *testing.T) {
	followRepo := noopFollowRepo()
	followRepo.existsFn = func(context.Context, uint, uint) (bool, error) {
		t.Fatal("no follow check for anonymous visitors")
		return false, nil
	}
	svc := NewProfileService(namedUserRepo(7, "ada"), noopPostRepo(), followRepo)

	stats, err := svc.Stats(context.Background(), "ada", 0)
	if err != nil {
		t.Fatal(err)
	}
	if stats.IsFollowing || stats.IsVisitorsProfile {
		t.Fatalf("anonymous stats should carry no visitor flags: %#v", stats)
	}
}

func TestProfileServiceStatsUnknownUser(t *testing.T) {
	svc := NewProfileService(namedUserRepo(7, "ada"), noopPostRepo(), noopFollowRepo())
	_, err := svc.Stats(context.Background(), "ghost", 0)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "NOT_FOUND" {
		t.Fatalf("expected not-found app error, got %#v", err)
	}
}

func TestProfileServiceStatsCountFailure(t *testing.T) {
	followRepo := noopFollowRepo()
	followRepo.countFollowersFn = func(context.Context, uint) (int64, error) {
		return 0, models.NewInternalError(errors.New("db down"))
	}
	svc := NewProfileService(namedUserRepo(7, "ada"), noopPostRepo(), followRepo)

	_, err := svc.Stats(context.Background(), "ada", 0)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != "INTERNAL_ERROR" {
		t.Fatalf("expected internal app error, got %#v", err)
	}
}
