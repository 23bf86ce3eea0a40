package service

import (
	"context"

	"quill/internal/models"
)

type postRepoStub struct {
	createFn        func(context.Context, *models.Post) error
	getByIDFn       func(context.Context, uint) (*models.Post, error)
	getByAuthorIDFn func(context.Context, uint) ([]*models.Post, error)
	searchFn        func(context.Context, string) ([]*models.Post, error)
	feedFn          func(context.Context, uint) ([]*models.Post, error)
	countByAuthorFn func(context.Context, uint) (int64, error)
	updateOwnedFn   func(context.Context, uint, uint, string, string) (int64, error)
	deleteOwnedFn   func(context.Context, uint, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) GetByAuthorID(ctx context.Context, authorID uint) ([]*models.Post, error) {
	return s.getByAuthorIDFn(ctx, authorID)
}
func (s *postRepoStub) Search(ctx context.Context, term string) ([]*models.Post, error) {
	return s.searchFn(ctx, term)
}
func (s *postRepoStub) Feed(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.feedFn(ctx, userID)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.countByAuthorFn(ctx, authorID)
}
func (s *postRepoStub) UpdateOwned(ctx context.Context, postID, authorID uint, title, body string) (int64, error) {
	return s.updateOwnedFn(ctx, postID, authorID, title, body)
}
func (s *postRepoStub) DeleteOwned(ctx context.Context, postID, authorID uint) (int64, error) {
	return s.deleteOwnedFn(ctx, postID, authorID)
}

type followRepoStub struct {
	createFn         func(context.Context, *models.Follow) error
	deleteFn         func(context.Context, uint, uint) (int64, error)
	existsFn         func(context.Context, uint, uint) (bool, error)
	followersFn      func(context.Context, uint) ([]models.User, error)
	followingFn      func(context.Context, uint) ([]models.User, error)
	countFollowersFn func(context.Context, uint) (int64, error)
	countFollowingFn func(context.Context, uint) (int64, error)
}

func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followedID uint) (int64, error) {
	return s.deleteFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Exists(ctx context.Context, followerID, followedID uint) (bool, error) {
	return s.existsFn(ctx, followerID, followedID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) CountFollowers(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowersFn(ctx, userID)
}
func (s *followRepoStub) CountFollowing(ctx context.Context, userID uint) (int64, error) {
	return s.countFollowingFn(ctx, userID)
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:        func(context.Context, *models.Post) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		getByAuthorIDFn: func(context.Context, uint) ([]*models.Post, error) { return nil, nil },
		searchFn:        func(context.Context, string) ([]*models.Post, error) { return nil, nil },
		feedFn:          func(context.Context, uint) ([]*models.Post, error) { return nil, nil },
		countByAuthorFn: func(context.Context, uint) (int64, error) { return 0, nil },
		updateOwnedFn:   func(context.Context, uint, uint, string, string) (int64, error) { return 1, nil },
		deleteOwnedFn:   func(context.Context, uint, uint) (int64, error) { return 1, nil },
	}
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:         func(context.Context, *models.Follow) error { return nil },
		deleteFn:         func(context.Context, uint, uint) (int64, error) { return 1, nil },
		existsFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		followersFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		followingFn:      func(context.Context, uint) ([]models.User, error) { return nil, nil },
		countFollowersFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFollowingFn: func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
	}
}
