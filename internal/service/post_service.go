package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/campus-hub/community-service/internal/domain"
	"github.com/campus-hub/community-service/internal/events"
	"github.com/campus-hub/community-service/internal/repository"
)

type PostService struct {
	posts  repository.PostRepository
	users  repository.UserRepository
	router *events.Router
}

func NewPostService(posts repository.PostRepository, users repository.UserRepository, router *events.Router) *PostService {
	return &PostService{posts: posts, users: users, router: router}
}

func (s *PostService) AddComment(ctx context.Context, postID string, authorID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: empty comment", domain.ErrValidation)
	}

	post, err := s.posts.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	commenter, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	c := &domain.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  html.EscapeString(content),
	}
	if err := s.posts.AddComment(ctx, c); err != nil {
		return nil, err
	}

	s.router.Dispatch(ctx, events.EventPostCommented, events.Payload{
		"post_id":        post.ID,
		"post_author_id": post.AuthorID,
		"commenter_id":   commenter.ID,
		"commenter_name": commenter.Name(),
		"comment_id":     c.ID,
	})
	return c, nil
}
