package service

import (
	"context"
	"time"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"

	"golang.org/x/sync/errgroup"
)

type ProfileService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

func NewProfileService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *ProfileService {
	return &ProfileService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// Stats assembles the profile header numbers for the user named username, as
// seen by visitorID (zero for anonymous). The three counts and the follow
// check are independent queries, so they run concurrently; any failure fails
// the whole profile rather than rendering partial numbers.
func (s *ProfileService) Stats(ctx context.Context, username string, visitorID uint) (*models.ProfileStats, error) {
	start := time.Now()
	defer func() {
		middleware.ProfileStatsLatency.Observe(time.Since(start).Seconds())
	}()

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	stats := &models.ProfileStats{
		IsVisitorsProfile: visitorID != 0 && visitorID == user.ID,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.PostCount, err = s.postRepo.CountByAuthor(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.FollowerCount, err = s.followRepo.CountFollowers(gctx, user.ID)
		return err
	})
	g.Go(func() error {
		var err error
		stats.FollowingCount, err = s.followRepo.CountFollowing(gctx, user.ID)
		return err
	})
	if visitorID != 0 && visitorID != user.ID {
		g.Go(func() error {
			var err error
			stats.IsFollowing, err = s.followRepo.Exists(gctx, visitorID, user.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
