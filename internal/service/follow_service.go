package service

import (
	"context"

	"quill/internal/models"
	"quill/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// resolve maps a username to its user, turning a miss into a not-found error.
func (s *FollowService) resolve(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}

// Follow adds an edge from followerID to the user named username.
func (s *FollowService) Follow(ctx context.Context, followerID uint, username string) error {
	target, err := s.resolve(ctx, username)
	if err != nil {
		return err
	}
	if target.ID == followerID {
		return models.NewValidationError("You cannot follow yourself")
	}
	return s.followRepo.Create(ctx, &models.Follow{
		FollowerID: followerID,
		FollowedID: target.ID,
	})
}

// Unfollow removes the edge from followerID to the user named username.
// Removing an edge that does not exist is reported as a validation error.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, username string) error {
	target, err := s.resolve(ctx, username)
	if err != nil {
		return err
	}
	affected, err := s.followRepo.Delete(ctx, followerID, target.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewValidationError("You are not following this user")
	}
	return nil
}

// IsFollowing reports whether followerID follows followedID. An anonymous
// visitor (id zero) follows nobody, without touching the database.
func (s *FollowService) IsFollowing(ctx context.Context, followerID, followedID uint) (bool, error) {
	if followerID == 0 {
		return false, nil
	}
	return s.followRepo.Exists(ctx, followerID, followedID)
}

// Followers lists the users following the user named username.
func (s *FollowService) Followers(ctx context.Context, username string) ([]models.UserSummary, error) {
	user, err := s.resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	users, err := s.followRepo.Followers(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return summariesOf(users), nil
}

// Following lists the users the user named username follows.
func (s *FollowService) Following(ctx context.Context, username string) ([]models.UserSummary, error) {
	user, err := s.resolve(ctx, username)
	if err != nil {
		return nil, err
	}
	users, err := s.followRepo.Following(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return summariesOf(users), nil
}

func summariesOf(users []models.User) []models.UserSummary {
	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries
}
