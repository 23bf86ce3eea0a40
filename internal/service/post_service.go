package service

import (
	"context"
	"strings"

	"quill/internal/middleware"
	"quill/internal/models"
	"quill/internal/repository"
	"quill/internal/sanitize"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	AuthorID uint
	Title    string
	Body     string
}

type UpdatePostInput struct {
	AuthorID uint
	PostID   uint
	Title    string
	Body     string
}

// UpdateResult reports the outcome of an edit: "success" when the post was
// rewritten, "fail" with per-field messages when the new content did not
// validate. Ownership failures surface as errors instead.
type UpdateResult struct {
	Status   string   `json:"status"`
	Messages []string `json:"messages,omitempty"`
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// validatePostContent sanitizes the title and body and collects one message
// per missing field. Both returned values are safe to persist.
func validatePostContent(title, body string) (cleanTitle, cleanBody string, messages []string) {
	cleanTitle = sanitize.Plain(title)
	cleanBody = sanitize.Plain(body)
	if cleanTitle == "" {
		messages = append(messages, "You must provide a title.")
	}
	if cleanBody == "" {
		messages = append(messages, "You must provide post content.")
	}
	return cleanTitle, cleanBody, messages
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.PostView, error) {
	title, body, messages := validatePostContent(in.Title, in.Body)
	if len(messages) > 0 {
		return nil, models.NewValidationErrors(messages...)
	}

	post := &models.Post{
		Title:    title,
		Body:     body,
		AuthorID: in.AuthorID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Re-read so the Author association is loaded for the view.
	stored, err := s.postRepo.GetByID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	view := stored.View(in.AuthorID)
	return &view, nil
}

func (s *PostService) GetPost(ctx context.Context, postID, visitorID uint) (*models.PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	view := post.View(visitorID)
	return &view, nil
}

func (s *PostService) GetPostsByAuthor(ctx context.Context, authorID, visitorID uint) ([]models.PostView, error) {
	posts, err := s.postRepo.GetByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	return viewsOf(posts, visitorID), nil
}

// SearchPosts matches the term against post titles and bodies, most relevant
// first. A blank term matches nothing rather than everything.
func (s *PostService) SearchPosts(ctx context.Context, term string, visitorID uint) ([]models.PostView, error) {
	if strings.TrimSpace(term) == "" {
		return []models.PostView{}, nil
	}
	posts, err := s.postRepo.Search(ctx, strings.TrimSpace(term))
	if err != nil {
		return nil, err
	}
	return viewsOf(posts, visitorID), nil
}

// Feed returns the posts written by everyone userID follows, newest first.
func (s *PostService) Feed(ctx context.Context, userID uint) ([]models.PostView, error) {
	posts, err := s.postRepo.Feed(ctx, userID)
	if err != nil {
		middleware.FeedAssemblies.WithLabelValues("error").Inc()
		return nil, err
	}
	middleware.FeedAssemblies.WithLabelValues("ok").Inc()
	return viewsOf(posts, userID), nil
}

func (s *PostService) CountByAuthor(ctx context.Context, authorID uint) (int64, error) {
	return s.postRepo.CountByAuthor(ctx, authorID)
}

// UpdatePost rewrites the post's title and body. The write is filtered on
// both post id and author id in one statement, so a non-owner can never win
// a race against the ownership check.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*UpdateResult, error) {
	title, body, messages := validatePostContent(in.Title, in.Body)
	if len(messages) > 0 {
		return &UpdateResult{Status: "fail", Messages: messages}, nil
	}

	affected, err := s.postRepo.UpdateOwned(ctx, in.PostID, in.AuthorID, title, body)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, models.NewUnauthorizedError("You can only update your own posts")
	}
	return &UpdateResult{Status: "success"}, nil
}

// DeletePost removes the post if it belongs to authorID, as a single
// conditional delete.
func (s *PostService) DeletePost(ctx context.Context, postID, authorID uint) error {
	affected, err := s.postRepo.DeleteOwned(ctx, postID, authorID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.NewUnauthorizedError("You can only delete your own posts")
	}
	return nil
}

func viewsOf(posts []*models.Post, visitorID uint) []models.PostView {
	views := make([]models.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, p.View(visitorID))
	}
	return views
}
