package repository

import (
	"context"
	"errors"

	"quill/internal/cache"
	"quill/internal/models"

	"gorm.io/gorm"
)

// searchVector is the expression matched and ranked by full-text search.
const searchVector = "to_tsvector('english', title || ' ' || body)"

// PostRepository defines the interface for post data operations. Every read
// returns posts with the Author association loaded so callers can shape them
// into views without extra round-trips.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	GetByAuthorID(ctx context.Context, authorID uint) ([]*models.Post, error)
	Search(ctx context.Context, term string) ([]*models.Post, error)
	Feed(ctx context.Context, userID uint) ([]*models.Post, error)
	CountByAuthor(ctx context.Context, authorID uint) (int64, error)
	UpdateOwned(ctx context.Context, postID, authorID uint, title, body string) (int64, error)
	DeleteOwned(ctx context.Context, postID, authorID uint) (int64, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	key := cache.PostKey(id)

	err := cache.Aside(ctx, key, &post, cache.PostTTL, func() error {
		if err := r.db.WithContext(ctx).Preload("Author").First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID uint) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Search performs a Postgres full-text match over title and body, ranked by
// relevance.
func (r *postRepository) Search(ctx context.Context, term string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where(searchVector+" @@ plainto_tsquery('english', ?)", term).
		Order(gorm.Expr("ts_rank("+searchVector+", plainto_tsquery('english', ?)) DESC", term)).
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// Feed returns the posts authored by everyone userID follows, newest first.
func (r *postRepository) Feed(ctx context.Context, userID uint) ([]*models.Post, error) {
	followed := r.db.Model(&models.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id IN (?)", followed).
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

// UpdateOwned applies the new title and body as a single conditional write
// filtered on both post id and author id, so the ownership check cannot race
// a concurrent mutation. Returns the number of rows affected: zero means the
// post does not exist or is not owned by authorID.
func (r *postRepository) UpdateOwned(ctx context.Context, postID, authorID uint, title, body string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND author_id = ?", postID, authorID).
		Updates(map[string]interface{}{"title": title, "body": body})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return result.RowsAffected, nil
}

// DeleteOwned removes the post as a single conditional delete filtered on
// both post id and author id. Returns the number of rows affected.
func (r *postRepository) DeleteOwned(ctx context.Context, postID, authorID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", postID, authorID).
		Delete(&models.Post{})
	if result.Error != nil {
		return 0, models.NewInternalError(result.Error)
	}
	if result.RowsAffected > 0 {
		cache.InvalidatePost(ctx, postID)
	}
	return result.RowsAffected, nil
}
